package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lithammer/dedent"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/adimenu/menucart/config"
	"github.com/adimenu/menucart/internal/app"
	"github.com/adimenu/menucart/internal/menu"
	"github.com/adimenu/menucart/internal/storage"
	"github.com/adimenu/menucart/internal/supabase"
)

const defaultDBPath = "menucart.db"

var helpText = dedent.Dedent(`
	Commands:
	  menu           show the current category
	  cat <name>     switch category (e.g. cat Drinks)
	  add <id>       add an item to the cart
	  inc <id>       one more of an item
	  dec <id>       one less of an item (removes at zero)
	  cart           show the cart
	  clear          empty the cart
	  quit           exit
`)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	config.LoadEnvFile()
	if missing := config.CheckRequired(); len(missing) > 0 {
		log.Fatal().Str("missing", strings.Join(missing, ", ")).Msg("missing required config")
	}

	dbPath := os.Getenv("MENUCART_DB_PATH")
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	kv, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize store")
	}
	defer kv.Close()
	log.Info().Str("dbPath", dbPath).Msg("store initialized")

	client := supabase.NewClient(supabase.ClientOpts{
		BaseURL:     os.Getenv("SUPABASE_URL"),
		AnonKey:     os.Getenv("SUPABASE_ANON_KEY"),
		Table:       os.Getenv("MENU_TABLE"),
		ImageBucket: os.Getenv("IMAGE_BUCKET"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a := app.New(client, kv)
	if err := a.LoadCatalog(ctx); err != nil {
		log.Fatal().Err(err).Msg("could not load menu")
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return runPrompt(ctx, a)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		log.Error().Err(err).Msg("shutdown with error")
	} else {
		log.Info().Msg("shutdown complete")
	}
}

// runPrompt reads intents from stdin and renders snapshots until the
// context is cancelled or the user quits.
func runPrompt(ctx context.Context, a *app.App) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	printMenu(a)
	fmt.Print("> ")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if quit := dispatch(a, line); quit {
				return nil
			}
			fmt.Print("> ")
		}
	}
}

// dispatch maps one input line to an intent. Returns true on quit.
func dispatch(a *app.App, line string) bool {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "":
	case "help":
		fmt.Print(helpText)
	case "menu":
		printMenu(a)
	case "cat":
		a.SelectCategory(arg)
		printMenu(a)
	case "add":
		added, err := a.AddItem(arg)
		if err != nil {
			log.Error().Err(err).Msg("failed to add item")
		} else if !added {
			fmt.Printf("no item with id %q\n", arg)
		} else {
			printCart(a)
		}
	case "inc", "dec":
		delta := 1
		if cmd == "dec" {
			delta = -1
		}
		if err := a.ChangeQty(arg, delta); err != nil {
			log.Error().Err(err).Msg("failed to change quantity")
		} else {
			printCart(a)
		}
	case "cart":
		printCart(a)
	case "clear":
		if err := a.ClearCart(); err != nil {
			log.Error().Err(err).Msg("failed to clear cart")
		} else {
			printCart(a)
		}
	case "quit", "exit":
		return true
	default:
		fmt.Printf("unknown command %q, try help\n", cmd)
	}
	return false
}

func printMenu(a *app.App) {
	view, err := a.View()
	if err != nil {
		log.Error().Err(err).Msg("failed to build view")
		return
	}

	fmt.Printf("== %s ==\n", view.Category)
	if len(view.Sections) == 0 {
		fmt.Printf("No items found in %s.\n", view.Category)
		return
	}

	fmt.Printf("Jump to: %s\n", strings.Join(view.Subcategories, " | "))
	for _, section := range view.Sections {
		fmt.Printf("\n-- %s (#%s) --\n", section.Title, section.ID)
		for _, it := range section.Items {
			fmt.Printf("  [%s] %-30s %s\n", it.ID, it.Name, menu.FormatPrice(float64(it.Price)))
		}
	}
}

func printCart(a *app.App) {
	view, err := a.View()
	if err != nil {
		log.Error().Err(err).Msg("failed to build view")
		return
	}

	fmt.Printf("Order Code: %s\n", view.OrderCode)
	if len(view.Cart) == 0 {
		fmt.Println("Your cart is empty.")
		return
	}

	for _, line := range view.Cart {
		fmt.Printf("  %dx %-30s %s each  %s\n",
			line.Qty, line.Name,
			menu.FormatPrice(float64(line.Price)),
			menu.FormatPrice(line.LineTotal))
	}
	fmt.Printf("Total (%d items): %s\n", view.Count, menu.FormatPrice(view.Total))
}
