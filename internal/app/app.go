// Package app holds the application state explicitly and turns
// presentation intents into catalog and cart operations. The
// presentation layer stays a thin adapter: it dispatches intents and
// renders the snapshots View produces.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/adimenu/menucart/internal/cart"
	"github.com/adimenu/menucart/internal/menu"
	"github.com/adimenu/menucart/internal/storage"
	"github.com/adimenu/menucart/internal/supabase"
)

// DefaultCategory is the category shown before any selection.
const DefaultCategory = "Food"

// App is the application state: the fetched catalog, the active
// category and the persisted cart/order-code stores.
type App struct {
	client *supabase.Client
	cart   *cart.Store
	codes  *cart.CodeIssuer

	items    []menu.Item
	category string
}

func New(client *supabase.Client, kv storage.Store) *App {
	return &App{
		client:   client,
		cart:     cart.NewStore(kv),
		codes:    cart.NewCodeIssuer(kv),
		category: DefaultCategory,
	}
}

// LoadCatalog fetches the catalog once. A failed fetch is terminal for
// this attempt; no retry happens here.
func (a *App) LoadCatalog(ctx context.Context) error {
	items, err := a.client.FetchMenu(ctx)
	if err != nil {
		return err
	}
	a.items = items
	log.Info().Int("items", len(items)).Msg("catalog loaded")
	return nil
}

// SelectCategory switches the active category.
func (a *App) SelectCategory(name string) {
	a.category = name
}

// AddItem adds one unit of the identified catalog item to the cart.
// Returns false when the id matches nothing in the loaded catalog.
func (a *App) AddItem(id string) (bool, error) {
	for _, it := range a.items {
		if it.ID.String() == id {
			_, err := a.cart.Add(it)
			return true, err
		}
	}
	return false, nil
}

// ChangeQty adjusts a cart line's quantity; the line is removed when
// the quantity drops to zero or below.
func (a *App) ChangeQty(id string, delta int) error {
	_, err := a.cart.ChangeQty(id, delta)
	return err
}

// ClearCart empties the cart. The order code survives.
func (a *App) ClearCart() error {
	return a.cart.Clear()
}

// CartLine pairs a stored cart line with its derived rendering fields.
type CartLine struct {
	cart.Line
	ImageURL  string
	LineTotal float64
}

// View is the render-ready projection handed to the presentation
// layer. Everything in it is derived; nothing is persisted.
type View struct {
	Category      string
	Sections      []menu.Section
	Subcategories []string
	Cart          []CartLine
	Total         float64
	Count         int
	OrderCode     string
}

// View builds the current snapshot: ordered sections for the active
// category, the cart with resolved image URLs and totals, and the
// order code.
func (a *App) View() (View, error) {
	code, err := a.codes.OrderCode()
	if err != nil {
		return View{}, err
	}

	sections := menu.Organize(a.items, a.category)
	subcats := make([]string, len(sections))
	for i, s := range sections {
		subcats[i] = s.Title
	}

	c := a.cart.Load()
	lines := make([]CartLine, 0, len(c))
	for _, line := range c.Lines() {
		lines = append(lines, CartLine{
			Line:      line,
			ImageURL:  a.client.PublicImageURL(line.ImagePath),
			LineTotal: float64(line.Price) * float64(line.Qty),
		})
	}

	return View{
		Category:      a.category,
		Sections:      sections,
		Subcategories: subcats,
		Cart:          lines,
		Total:         c.Total(),
		Count:         c.Count(),
		OrderCode:     code,
	}, nil
}
