package menu

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemIDUnmarshalsNumbersAndStrings(t *testing.T) {
	var it Item
	err := json.Unmarshal([]byte(`{"id": 42}`), &it)
	assert.NoError(t, err)
	assert.Equal(t, "42", it.ID.String())

	err = json.Unmarshal([]byte(`{"id": "abc-7"}`), &it)
	assert.NoError(t, err)
	assert.Equal(t, "abc-7", it.ID.String())
}

func TestDecimalToleratesMalformedNumbers(t *testing.T) {
	tests := []struct {
		payload string
		want    float64
	}{
		{`{"price": 12.5}`, 12.5},
		{`{"price": "12.5"}`, 12.5},
		{`{"price": null}`, 0},
		{`{"price": "not a number"}`, 0},
		{`{"price": ""}`, 0},
	}
	for _, tt := range tests {
		var it Item
		err := json.Unmarshal([]byte(tt.payload), &it)
		assert.NoError(t, err, tt.payload)
		assert.Equal(t, tt.want, float64(it.Price), tt.payload)
	}
}

func TestSubcategoryOrderNullStaysAbsent(t *testing.T) {
	var it Item
	err := json.Unmarshal([]byte(`{"subcategory_order": null}`), &it)
	assert.NoError(t, err)
	assert.Nil(t, it.SubcategoryOrder)

	err = json.Unmarshal([]byte(`{"subcategory_order": 3}`), &it)
	assert.NoError(t, err)
	if assert.NotNil(t, it.SubcategoryOrder) {
		assert.Equal(t, 3.0, float64(*it.SubcategoryOrder))
	}
}

func TestParseFloat(t *testing.T) {
	assert.Equal(t, 3.5, ParseFloat("3.5", 0))
	assert.Equal(t, 3.5, ParseFloat("  3.5  ", 0))
	assert.Equal(t, 0.0, ParseFloat("abc", 0))
	assert.Equal(t, 999.0, ParseFloat("", 999))
	assert.Equal(t, 0.0, ParseFloat("NaN", 0))
}
