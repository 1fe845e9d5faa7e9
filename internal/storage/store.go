// Package storage provides the key-value persistence port that owns
// the cart and order-code state across sessions.
package storage

// Store is the persistence port injected into the cart store and the
// order code issuer. Implementations must report a missing key as
// ok == false rather than an error.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
	Close() error
}
