package menu

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ItemID is an opaque catalog identifier. Depending on the column type
// the backend may return ids as JSON numbers or strings; the id is
// normalized to its string form on decode so lookups never mix the two.
type ItemID string

func (id *ItemID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ItemID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ItemID(n.String())
	return nil
}

func (id ItemID) String() string {
	return string(id)
}

// Decimal is a float64 that tolerates string-typed or malformed JSON
// numbers, decoding them to 0 instead of failing the whole payload.
type Decimal float64

func (d *Decimal) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		*d = 0
		return nil
	}
	*d = Decimal(ParseFloat(s, 0))
	return nil
}

// ParseFloat parses s as a decimal number, returning def when s is not
// a finite number. Used at every ingestion boundary so malformed
// prices and order fields degrade instead of propagating errors.
func ParseFloat(s string, def float64) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return def
	}
	return n
}

// Item is one catalog entry. Only available items ever reach this
// model: the fetch filters on is_available server-side.
type Item struct {
	ID               ItemID   `json:"id"`
	Category         string   `json:"category"`
	Subcategory      string   `json:"subcategory"`
	SubcategoryOrder *Decimal `json:"subcategory_order"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Price            Decimal  `json:"price"`
	ImagePath        string   `json:"image_path"`
	IsAvailable      bool     `json:"is_available"`
}
