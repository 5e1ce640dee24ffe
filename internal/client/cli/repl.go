package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/hiddenhaul/haul/internal/client/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate. The
// real App type satisfies this interface; tests can provide a lightweight
// stub.
type execIface interface {
	isLoggedIn() bool
	role() models.Role

	Help(ctx context.Context) error
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error

	Home(ctx context.Context) error
	About(ctx context.Context) error
	Books(ctx context.Context) error
	Clothes(ctx context.Context) error
	Show(ctx context.Context, args []string) error

	Cart(ctx context.Context, args []string) error
	Checkout(ctx context.Context) error
	Orders(ctx context.Context) error
	Favorite(ctx context.Context, args []string) error
	Comment(ctx context.Context, args []string) error

	AddProduct(ctx context.Context) error
	MyItems(ctx context.Context) error
	EditProduct(ctx context.Context, args []string) error
	RemoveProduct(ctx context.Context, args []string) error

	Categories(ctx context.Context, args []string) error
	ManageItems(ctx context.Context) error
	Rates(ctx context.Context) error
	Requests(ctx context.Context, args []string) error
	AdminOrders(ctx context.Context) error
	RemoveOrder(ctx context.Context, args []string) error
}

// commandRoles gates each command on the session role, mirroring the
// role-gated navigation surface. Commands absent from the map are open to
// everyone.
var commandRoles = map[string][]models.Role{
	"books":       {models.RoleGuest, models.RoleUser},
	"clothes":     {models.RoleGuest, models.RoleUser},
	"cart":        {models.RoleUser},
	"checkout":    {models.RoleUser},
	"orders":      {models.RoleUser},
	"fav":         {models.RoleUser},
	"comment":     {models.RoleUser},
	"addproduct":  {models.RoleSeller},
	"myitems":     {models.RoleSeller},
	"edit":        {models.RoleSeller},
	"rmproduct":   {models.RoleSeller, models.RoleAdmin},
	"categories":  {models.RoleAdmin},
	"manage":      {models.RoleAdmin},
	"rates":       {models.RoleAdmin},
	"requests":    {models.RoleAdmin},
	"adminorders": {models.RoleAdmin},
	"rmorder":     {models.RoleAdmin},
}

func roleAllowed(cmd string, role models.Role) bool {
	allowed, gated := commandRoles[cmd]
	if !gated {
		return true
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// runREPL starts the read–eval–print loop of the storefront CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands and commands
// outside the current role's surface are reported back to the user. The
// loop exits on scanner EOF or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are printed here and never kill
// the loop; a failed page leaves the session exactly where it was.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("haul %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		if !roleAllowed(cmd, a.role()) {
			printlnFn("Command not available for your role:", cmd)
			continue
		}

		var err error
		switch cmd {
		case "help":
			err = a.Help(ctx)
		case "login":
			err = a.Login(ctx)
		case "register":
			err = a.Register(ctx)
		case "logout":
			err = a.Logout(ctx)

		case "home":
			err = a.Home(ctx)
		case "about":
			err = a.About(ctx)
		case "books":
			err = a.Books(ctx)
		case "clothes":
			err = a.Clothes(ctx)
		case "show":
			err = a.Show(ctx, args)

		case "cart":
			err = a.Cart(ctx, args)
		case "checkout":
			err = a.Checkout(ctx)
		case "orders":
			err = a.Orders(ctx)
		case "fav":
			err = a.Favorite(ctx, args)
		case "comment":
			err = a.Comment(ctx, args)

		case "addproduct":
			err = a.AddProduct(ctx)
		case "myitems":
			err = a.MyItems(ctx)
		case "edit":
			err = a.EditProduct(ctx, args)
		case "rmproduct":
			err = a.RemoveProduct(ctx, args)

		case "categories":
			err = a.Categories(ctx, args)
		case "manage":
			err = a.ManageItems(ctx)
		case "rates":
			err = a.Rates(ctx)
		case "requests":
			err = a.Requests(ctx, args)
		case "adminorders":
			err = a.AdminOrders(ctx)
		case "rmorder":
			err = a.RemoveOrder(ctx, args)

		default:
			printlnFn("Unknown command:", cmd)
			continue
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
