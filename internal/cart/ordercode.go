package cart

import (
	"fmt"
	"math/rand/v2"

	"github.com/adimenu/menucart/internal/storage"
)

const orderCodePrefix = "ADI-"

// CodeIssuer hands out the stable per-installation order code used to
// reference a cart at the counter.
type CodeIssuer struct {
	kv storage.Store
}

func NewCodeIssuer(kv storage.Store) *CodeIssuer {
	return &CodeIssuer{kv: kv}
}

// OrderCode returns the persisted order code, generating and
// persisting one on first use. Clearing the cart does not rotate the
// code; only wiping the store does.
func (ci *CodeIssuer) OrderCode() (string, error) {
	code, ok, err := ci.kv.Get(orderCodeKey)
	if err != nil {
		return "", fmt.Errorf("failed to read order code: %w", err)
	}
	if ok && code != "" {
		return code, nil
	}

	code = generateOrderCode()
	if err := ci.kv.Set(orderCodeKey, code); err != nil {
		return "", fmt.Errorf("failed to persist order code: %w", err)
	}
	return code, nil
}

// generateOrderCode draws a uniform six-digit code, ADI-100000 through
// ADI-999999.
func generateOrderCode() string {
	return fmt.Sprintf("%s%d", orderCodePrefix, 100000+rand.IntN(900000))
}
