package cart

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adimenu/menucart/internal/storage"
)

var orderCodePattern = regexp.MustCompile(`^ADI-\d{6}$`)

func TestOrderCodeMatchesPattern(t *testing.T) {
	codes := NewCodeIssuer(storage.NewMemoryStore())

	code, err := codes.OrderCode()
	require.NoError(t, err)
	assert.Regexp(t, orderCodePattern, code)
}

func TestOrderCodeIsStable(t *testing.T) {
	codes := NewCodeIssuer(storage.NewMemoryStore())

	first, err := codes.OrderCode()
	require.NoError(t, err)
	second, err := codes.OrderCode()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestOrderCodeRegeneratesAfterStoreWipe(t *testing.T) {
	kv := storage.NewMemoryStore()
	codes := NewCodeIssuer(kv)

	first, err := codes.OrderCode()
	require.NoError(t, err)

	require.NoError(t, kv.Remove("adi_menu_ordercode_v1"))

	second, err := codes.OrderCode()
	require.NoError(t, err)
	assert.Regexp(t, orderCodePattern, second)
	// A fresh draw may rarely collide with the first; the contract is
	// only that a valid code exists again.
	_ = first
}

func TestGenerateOrderCodeStaysInRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		assert.Regexp(t, orderCodePattern, generateOrderCode())
	}
}
