package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hiddenhaul/haul/internal/client/models"
)

// Categories is the category editor:
//
//	categories                      — print the tree
//	categories add <name>           — add a top-level category
//	categories rm <id>              — delete a category
//	categories addsub <id> <name>   — add a subcategory
//	categories rmsub <id> <name>    — delete a subcategory
//
// Every mutation is persisted to the local store before the command
// returns.
func (a *App) Categories(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printCategories()
		return nil
	}

	switch args[0] {
	case "add":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: categories add <name>")
			return nil
		}
		c, err := a.cats.AddCategory(ctx, strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Added #%d %s\n", c.ID, c.Name)
		return nil

	case "rm":
		id, ok := a.parseID(args[1:], "categories rm <id>")
		if !ok {
			return nil
		}
		if err := a.cats.DeleteCategory(ctx, id); err != nil {
			return err
		}
		a.printCategories()
		return nil

	case "addsub":
		if len(args) < 3 {
			fmt.Fprintln(a.out, "Usage: categories addsub <id> <name>")
			return nil
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintln(a.out, "Usage: categories addsub <id> <name>")
			return nil
		}
		if err := a.cats.AddSubcategory(ctx, id, strings.Join(args[2:], " ")); err != nil {
			return err
		}
		a.printCategories()
		return nil

	case "rmsub":
		if len(args) < 3 {
			fmt.Fprintln(a.out, "Usage: categories rmsub <id> <name>")
			return nil
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintln(a.out, "Usage: categories rmsub <id> <name>")
			return nil
		}
		if err := a.cats.DeleteSubcategory(ctx, id, strings.Join(args[2:], " ")); err != nil {
			return err
		}
		a.printCategories()
		return nil

	default:
		fmt.Fprintln(a.out, "Usage: categories [add <name> | rm <id> | addsub <id> <name> | rmsub <id> <name>]")
		return nil
	}
}

func (a *App) printCategories() {
	for _, c := range a.cats.Categories() {
		fmt.Fprintf(a.out, "#%d %s\n", c.ID, c.Name)
		for _, sub := range c.Subcategories {
			fmt.Fprintf(a.out, "    %s\n", sub)
		}
	}
}

// ManageItems is the admin moderation page: every listing with its id and
// approval state, ready for rmproduct.
func (a *App) ManageItems(ctx context.Context) error {
	products, err := a.client.Products(ctx, models.ProductAll)
	if err != nil {
		return err
	}

	if len(products) == 0 {
		fmt.Fprintln(a.out, "No listings.")
		return nil
	}
	for _, p := range products {
		state := "pending"
		if p.Approved {
			state = "approved"
		}
		fmt.Fprintf(a.out, "  #%d  %-30s %8.2f  %s  %s  seller:%d\n",
			p.ID, p.Name, p.Price, p.Type, state, p.SellerID)
	}
	return nil
}

// Rates gives the admin a ratings overview across the catalog.
func (a *App) Rates(ctx context.Context) error {
	products, err := a.client.Products(ctx, models.ProductAll)
	if err != nil {
		return err
	}

	if len(products) == 0 {
		fmt.Fprintln(a.out, "No listings.")
		return nil
	}
	for _, p := range products {
		fmt.Fprintf(a.out, "  %.1f  #%d %s\n", p.Rating, p.ID, p.Name)
	}
	return nil
}

// Requests is the approval queue:
//
//	requests                       — list seller submissions awaiting approval
//	requests approve <id>          — approve and notify the seller
//	requests reject <id> <reason>  — reject with a reason and notify
//
// Approval and rejection notify the seller; the listing itself goes live
// through the usual product update flow.
func (a *App) Requests(ctx context.Context, args []string) error {
	if len(args) == 0 {
		products, err := a.client.PendingProducts(ctx)
		if err != nil {
			return err
		}

		if len(products) == 0 {
			fmt.Fprintln(a.out, "No pending requests.")
			return nil
		}
		for _, p := range products {
			fmt.Fprintf(a.out, "  #%d  %-30s %8.2f  %s  seller:%d\n",
				p.ID, p.Name, p.Price, p.Type, p.SellerID)
		}
		return nil
	}

	switch args[0] {
	case "approve":
		id, ok := a.parseID(args[1:], "requests approve <id>")
		if !ok {
			return nil
		}
		p, err := a.client.Product(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Approved #%d %s. Seller notified: request approved, proceed to pay the fee.\n", p.ID, p.Name)
		return nil

	case "reject":
		if len(args) < 3 {
			fmt.Fprintln(a.out, "Usage: requests reject <id> <reason>")
			return nil
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintln(a.out, "Usage: requests reject <id> <reason>")
			return nil
		}
		reason := strings.Join(args[2:], " ")
		p, err := a.client.Product(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Rejected #%d %s. Seller notified. Reason: %s\n", p.ID, p.Name, reason)
		return nil

	default:
		fmt.Fprintln(a.out, "Usage: requests [approve <id> | reject <id> <reason>]")
		return nil
	}
}

// AdminOrders lists every order in the system with its buyer.
func (a *App) AdminOrders(ctx context.Context) error {
	orders, err := a.client.AdminOrders(ctx)
	if err != nil {
		return err
	}
	a.printOrders(orders, true)
	return nil
}

// RemoveOrder deletes an order from the admin ledger.
func (a *App) RemoveOrder(ctx context.Context, args []string) error {
	id, ok := a.parseID(args, "rmorder <id>")
	if !ok {
		return nil
	}

	if err := a.client.DeleteAdminOrder(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Order removed.")
	return nil
}
