package cli

import (
	"context"
	"fmt"

	"github.com/hiddenhaul/haul/internal/client/models"
	"github.com/hiddenhaul/haul/internal/client/nav"
)

// commandForRoute maps a navigation route to the REPL command implementing
// that page.
var commandForRoute = map[string]string{
	"/":                   "home",
	"/about":              "about",
	"/books":              "books",
	"/clothes":            "clothes",
	"/seller/add-product": "addproduct",
	"/seller/items":       "myitems",
	"/admin/categories":   "categories",
	"/admin/manage-items": "manage",
	"/admin/rates":        "rates",
	"/admin/requests":     "requests",
}

// Help renders the command surface for the current role. The menu is
// derived from the same navigation rules that decide which pages exist,
// so the two can never drift apart.
func (a *App) Help(ctx context.Context) error {
	role := a.role()
	loggedIn := a.isLoggedIn()

	fmt.Fprintln(a.out, "Available commands:")
	for _, link := range nav.Links(role) {
		cmd, ok := commandForRoute[link.Route]
		if !ok {
			continue
		}
		fmt.Fprintf(a.out, "  %-12s %s\n", cmd, link.Label)
	}
	fmt.Fprintf(a.out, "  %-12s %s\n", "show <id>", "Product details")

	if nav.CartVisible(role, loggedIn) {
		fmt.Fprintf(a.out, "  %-12s %s\n", "cart", "View cart (cart add|qty|rm ...)")
		fmt.Fprintf(a.out, "  %-12s %s\n", "checkout", "Place an order")
		fmt.Fprintf(a.out, "  %-12s %s\n", "orders", "Your orders")
		fmt.Fprintf(a.out, "  %-12s %s\n", "fav <id>", "Add to favorites")
		fmt.Fprintf(a.out, "  %-12s %s\n", "comment <id>", "Comment on a product")
	}
	if role == models.RoleSeller {
		fmt.Fprintf(a.out, "  %-12s %s\n", "edit <id>", "Edit a listing")
		fmt.Fprintf(a.out, "  %-12s %s\n", "rmproduct <id>", "Remove a listing")
	}
	if role == models.RoleAdmin {
		fmt.Fprintf(a.out, "  %-12s %s\n", "adminorders", "All orders")
		fmt.Fprintf(a.out, "  %-12s %s\n", "rmorder <id>", "Delete an order")
		fmt.Fprintf(a.out, "  %-12s %s\n", "rmproduct <id>", "Remove a listing")
	}

	if nav.AccountVisible(role, loggedIn) {
		fmt.Fprintf(a.out, "  %-12s %s\n", "logout", "Log out")
	} else {
		fmt.Fprintf(a.out, "  %-12s %s\n", "login", "Log in")
		fmt.Fprintf(a.out, "  %-12s %s\n", "register", "Create an account")
	}
	fmt.Fprintf(a.out, "  %-12s %s\n", "exit", "Leave the program")

	return nil
}
