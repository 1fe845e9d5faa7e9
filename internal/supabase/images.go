package supabase

import (
	"net/url"
	"strings"
)

// PublicImageURL resolves a storage object path to its public URL,
// percent-encoding each path segment independently. An empty path
// resolves to an empty string; the caller substitutes its placeholder
// image.
func (c *Client) PublicImageURL(imagePath string) string {
	p := strings.TrimSpace(imagePath)
	if p == "" {
		return ""
	}

	segments := strings.Split(p, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(strings.TrimSpace(seg))
	}

	return c.baseURL + "/storage/v1/object/public/" + c.bucket + "/" + strings.Join(segments, "/")
}
