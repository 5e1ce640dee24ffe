package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/hiddenhaul/haul/internal/client/models"
)

// parseID extracts a numeric id from the first argument. A missing or
// malformed argument prints the usage line and returns ok=false; the
// command should then bail out without an error, keeping the REPL quiet.
func (a *App) parseID(args []string, usage string) (int, bool) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage:", usage)
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Usage:", usage)
		return 0, false
	}
	return id, true
}

func (a *App) printProducts(products []models.Product) {
	if len(products) == 0 {
		fmt.Fprintln(a.out, "Nothing here yet.")
		return
	}
	for _, p := range products {
		note := ""
		if a.soldOut.IsMarked(p.ID) {
			note = "  [SOLD OUT]"
		}
		fmt.Fprintf(a.out, "  #%d  %-30s %8.2f  %s%s\n", p.ID, p.Name, p.Price, p.Type, note)
	}
}

// Home shows a storefront overview: the freshest items across both
// catalog sections.
func (a *App) Home(ctx context.Context) error {
	products, err := a.client.Products(ctx, models.ProductAll)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Hidden Haul — second-hand finds, first-hand joy.")
	fmt.Fprintln(a.out, "Latest arrivals:")
	a.printProducts(products)
	return nil
}

func (a *App) About(ctx context.Context) error {
	fmt.Fprintln(a.out, "Hidden Haul is a second-hand marketplace for books and clothes.")
	fmt.Fprintln(a.out, "Sellers list their pre-loved items, admins keep the catalog tidy,")
	fmt.Fprintln(a.out, "and every purchase gives something old a new home.")
	return nil
}

func (a *App) Books(ctx context.Context) error {
	products, err := a.client.Products(ctx, models.ProductBook)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Books:")
	a.printProducts(products)
	return nil
}

func (a *App) Clothes(ctx context.Context) error {
	products, err := a.client.Products(ctx, models.ProductClothes)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Clothes:")
	a.printProducts(products)
	return nil
}

// Show prints the detail page of a single product.
func (a *App) Show(ctx context.Context, args []string) error {
	id, ok := a.parseID(args, "show <id>")
	if !ok {
		return nil
	}

	p, err := a.client.Product(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "#%d %s\n", p.ID, p.Name)
	if a.soldOut.IsMarked(p.ID) {
		fmt.Fprintln(a.out, "SOLD OUT")
	}
	fmt.Fprintf(a.out, "Price:     %.2f\n", p.Price)
	fmt.Fprintf(a.out, "Rating:    %.1f\n", p.Rating)
	fmt.Fprintf(a.out, "Category:  %s\n", p.Category)
	fmt.Fprintf(a.out, "Condition: %s\n", p.Condition)
	if p.Description != "" {
		fmt.Fprintln(a.out, p.Description)
	}
	return nil
}

// Favorite adds a product to the buyer's favorites list.
func (a *App) Favorite(ctx context.Context, args []string) error {
	id, ok := a.parseID(args, "fav <id>")
	if !ok {
		return nil
	}

	if err := a.client.AddFavorite(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Added to favorites.")
	return nil
}

// Comment prompts for a review text and rating and attaches them to a
// product.
func (a *App) Comment(ctx context.Context, args []string) error {
	id, ok := a.parseID(args, "comment <id>")
	if !ok {
		return nil
	}

	text, err := getMultiline(a.reader, "Your comment", os.Stdout)
	if err != nil {
		return err
	}
	ratingStr, err := getSimpleText(a.reader, "Rating (1-5)", os.Stdout)
	if err != nil {
		return err
	}
	rating, err := strconv.Atoi(ratingStr)
	if err != nil || rating < 1 || rating > 5 {
		fmt.Fprintln(a.out, "Rating must be a number from 1 to 5")
		return nil
	}

	if _, err := a.client.AddComment(ctx, id, text, rating); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Comment posted.")
	return nil
}
