// Package cart implements the persisted shopping cart and the order
// code issuer. The persisted payload is the single source of truth:
// every operation reloads it, mutates it and writes it back.
package cart

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/adimenu/menucart/internal/menu"
	"github.com/adimenu/menucart/internal/storage"
)

// Persisted key names, carried over from the original deployment so an
// upgrade keeps existing carts.
const (
	cartKey      = "adi_menu_cart_v1"
	orderCodeKey = "adi_menu_ordercode_v1"
)

// Line is one cart entry. Name, price and image are snapshotted from
// the catalog when the line is created; later catalog edits do not
// touch existing lines.
type Line struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Price     menu.Decimal `json:"price"`
	ImagePath string       `json:"image_path"`
	Qty       int          `json:"qty"`
}

// Cart maps string item ids to lines. No persisted line ever has
// Qty <= 0.
type Cart map[string]Line

// Total sums price * qty over all lines, counting non-finite prices
// and negative quantities as 0.
func (c Cart) Total() float64 {
	var sum float64
	for _, line := range c {
		price := float64(line.Price)
		if math.IsNaN(price) || math.IsInf(price, 0) {
			price = 0
		}
		qty := line.Qty
		if qty < 0 {
			qty = 0
		}
		sum += price * float64(qty)
	}
	return sum
}

// Count sums the quantities over all lines.
func (c Cart) Count() int {
	total := 0
	for _, line := range c {
		if line.Qty > 0 {
			total += line.Qty
		}
	}
	return total
}

// Lines returns the cart's lines ordered by name, then id, for stable
// rendering.
func (c Cart) Lines() []Line {
	lines := make([]Line, 0, len(c))
	for _, line := range c {
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Name != lines[j].Name {
			return lines[i].Name < lines[j].Name
		}
		return lines[i].ID < lines[j].ID
	})
	return lines
}

// Store owns the persisted cart.
type Store struct {
	kv storage.Store
}

func NewStore(kv storage.Store) *Store {
	return &Store{kv: kv}
}

// Load returns the current cart. A missing, unreadable or corrupt
// payload degrades to an empty cart instead of propagating an error.
func (s *Store) Load() Cart {
	raw, ok, err := s.kv.Get(cartKey)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read cart, treating as empty")
		return Cart{}
	}
	if !ok {
		return Cart{}
	}

	var c Cart
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		log.Warn().Err(err).Msg("corrupt cart payload, treating as empty")
		return Cart{}
	}
	if c == nil {
		c = Cart{}
	}
	return c
}

func (s *Store) save(c Cart) error {
	b, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := s.kv.Set(cartKey, string(b)); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Add puts one unit of item into the cart. The first add of an id
// creates its line and captures the catalog snapshot; subsequent adds
// only increment the quantity.
func (s *Store) Add(item menu.Item) (Cart, error) {
	c := s.Load()
	id := item.ID.String()

	line, ok := c[id]
	if !ok {
		line = Line{
			ID:        id,
			Name:      item.Name,
			Price:     item.Price,
			ImagePath: item.ImagePath,
		}
	}
	line.Qty++
	c[id] = line

	return c, s.save(c)
}

// ChangeQty adjusts the quantity of the identified line by delta. An
// unknown id is a no-op. A resulting quantity <= 0 removes the line
// entirely, so no persisted quantity is ever zero or negative.
func (s *Store) ChangeQty(id string, delta int) (Cart, error) {
	c := s.Load()
	line, ok := c[id]
	if !ok {
		return c, nil
	}

	line.Qty += delta
	if line.Qty <= 0 {
		delete(c, id)
	} else {
		c[id] = line
	}

	return c, s.save(c)
}

// Clear removes the whole cart. The order code is left alone: it stays
// valid across successive carts until the store itself is wiped.
func (s *Store) Clear() error {
	if err := s.kv.Remove(cartKey); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// Total recomputes the cart total from the persisted cart.
func (s *Store) Total() float64 {
	return s.Load().Total()
}

// Count recomputes the total quantity from the persisted cart.
func (s *Store) Count() int {
	return s.Load().Count()
}
