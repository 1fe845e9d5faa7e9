// Package supabase fetches the menu catalog from a Supabase project:
// items through the PostgREST endpoint, images through public storage
// object URLs.
package supabase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/errgroup"

	"github.com/adimenu/menucart/internal/menu"
)

const (
	DefaultTable       = "menu_items_csv"
	DefaultImageBucket = "menu-images-test"

	defaultPageSize = 100

	// The only columns the presentation needs; availability is
	// filtered server-side so unavailable items never leave the
	// database.
	selectColumns = "id,category,subcategory,subcategory_order,name,description,price,image_path,is_available"
)

type ClientOpts struct {
	BaseURL     string
	AnonKey     string
	Table       string
	ImageBucket string
	PageSize    int
}

type Client struct {
	httpClient *resty.Client
	baseURL    string
	table      string
	bucket     string
	pageSize   int
}

func NewClient(opts ClientOpts) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		table:    opts.Table,
		bucket:   opts.ImageBucket,
		pageSize: opts.PageSize,
	}
	if c.table == "" {
		c.table = DefaultTable
	}
	if c.bucket == "" {
		c.bucket = DefaultImageBucket
	}
	if c.pageSize <= 0 {
		c.pageSize = defaultPageSize
	}

	c.httpClient = resty.New().
		SetDebug(false).
		SetBaseURL(c.baseURL).
		SetHeaders(map[string]string{
			"apikey":        opts.AnonKey,
			"Authorization": "Bearer " + opts.AnonKey,
			"Accept":        "application/json",
		})

	return c
}

func (c *Client) req(ctx context.Context, result any) *resty.Request {
	request := c.httpClient.NewRequest().SetContext(ctx)
	if result != nil {
		request.SetResult(result)
	}
	return request
}

// FetchMenu retrieves every available menu item, paging through
// PostgREST with Range headers. The first page carries the total row
// count; any remaining pages are fetched concurrently and reassembled
// in order. There is no retry and no deadline beyond ctx: a failed
// load is terminal for this attempt.
func (c *Client) FetchMenu(ctx context.Context) ([]menu.Item, error) {
	first, total, err := c.fetchPage(ctx, 0)
	if err != nil {
		return nil, err
	}
	if total <= len(first) {
		return first, nil
	}

	pageCount := (total + c.pageSize - 1) / c.pageSize
	pages := make([][]menu.Item, pageCount)
	pages[0] = first

	g, ctx := errgroup.WithContext(ctx)
	for page := 1; page < pageCount; page++ {
		g.Go(func() error {
			items, _, err := c.fetchPage(ctx, page)
			if err != nil {
				return err
			}
			pages[page] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]menu.Item, 0, total)
	for _, p := range pages {
		items = append(items, p...)
	}
	return items, nil
}

func (c *Client) fetchPage(ctx context.Context, page int) ([]menu.Item, int, error) {
	from := page * c.pageSize
	to := from + c.pageSize - 1

	var items []menu.Item
	res, err := handleError(c.req(ctx, &items).
		SetHeader("Range-Unit", "items").
		SetHeader("Range", fmt.Sprintf("%d-%d", from, to)).
		SetHeader("Prefer", "count=exact").
		SetQueryParams(map[string]string{
			"select":       selectColumns,
			"is_available": "eq.true",
			"order":        "id",
		}).
		Get("/rest/v1/" + c.table))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch menu: %w", err)
	}

	total := parseContentRangeTotal(res.Header().Get("Content-Range"))
	if total < 0 {
		total = len(items)
	}
	return items, total, nil
}

// parseContentRangeTotal extracts the total row count from a PostgREST
// Content-Range header such as "0-99/231". Returns -1 when the total
// is absent or unparseable.
func parseContentRangeTotal(header string) int {
	_, totalPart, ok := strings.Cut(header, "/")
	if !ok || totalPart == "*" {
		return -1
	}
	n, err := strconv.Atoi(strings.TrimSpace(totalPart))
	if err != nil {
		return -1
	}
	return n
}

// handleError is a generic error handler for failing responses (>399
// status code). Without this, failing responses would have nil error.
func handleError(res *resty.Response, err error) (*resty.Response, error) {
	if err != nil {
		return res, err
	}
	if res.IsError() {
		return res, fmt.Errorf("request failed: %s %s (status: %d)", res.Request.Method, res.Request.URL, res.StatusCode())
	}
	return res, nil
}
