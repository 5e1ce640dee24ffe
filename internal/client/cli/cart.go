package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/hiddenhaul/haul/internal/client/api"
	"github.com/hiddenhaul/haul/internal/client/models"
)

// readFile is a test seam for os.ReadFile.
var readFile = os.ReadFile

// Cart is the cart page and its row actions in one command:
//
//	cart              — list the cart
//	cart add <id>     — add a product
//	cart qty <id> <n> — change a line's quantity
//	cart rm <id>      — remove a line
func (a *App) Cart(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.listCart(ctx)
	}

	switch args[0] {
	case "add":
		id, ok := a.parseID(args[1:], "cart add <product-id>")
		if !ok {
			return nil
		}
		if err := a.client.AddToCart(ctx, id); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Added to cart.")
		return nil

	case "qty":
		if len(args) < 3 {
			fmt.Fprintln(a.out, "Usage: cart qty <item-id> <quantity>")
			return nil
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintln(a.out, "Usage: cart qty <item-id> <quantity>")
			return nil
		}
		qty, err := strconv.Atoi(args[2])
		if err != nil || qty < 1 {
			fmt.Fprintln(a.out, "Quantity must be a positive number")
			return nil
		}
		if err := a.client.UpdateCartItem(ctx, id, qty); err != nil {
			return err
		}
		return a.listCart(ctx)

	case "rm":
		id, ok := a.parseID(args[1:], "cart rm <item-id>")
		if !ok {
			return nil
		}
		if err := a.client.RemoveCartItem(ctx, id); err != nil {
			return err
		}
		return a.listCart(ctx)

	default:
		fmt.Fprintln(a.out, "Usage: cart [add <id> | qty <id> <n> | rm <id>]")
		return nil
	}
}

func (a *App) listCart(ctx context.Context) error {
	items, err := a.client.Cart(ctx)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty.")
		return nil
	}

	var total float64
	fmt.Fprintln(a.out, "Cart:")
	for _, item := range items {
		line := item.Price * float64(item.Quantity)
		total += line
		fmt.Fprintf(a.out, "  #%d  %-30s %d x %.2f = %.2f\n",
			item.ID, item.Name, item.Quantity, item.Price, line)
	}
	fmt.Fprintf(a.out, "Total: %.2f\n", total)
	return nil
}

// Checkout collects the payment method and contact, and places the order
// for the whole cart. Cash orders go out as plain JSON; instapay orders
// require a payment-proof file and go out as multipart. Purchased products
// are marked sold out by the shop service on success.
func (a *App) Checkout(ctx context.Context) error {
	method, err := getSimpleText(a.reader, "Payment method (cash/instapay)", os.Stdout)
	if err != nil {
		return err
	}
	if method != "cash" && method != "instapay" {
		fmt.Fprintln(a.out, "Payment method must be cash or instapay")
		return nil
	}
	contact, err := getSimpleText(a.reader, "Contact (email or phone)", os.Stdout)
	if err != nil {
		return err
	}

	details := models.PaymentDetails{PaymentMethod: method, Contact: contact}

	var proof *api.Upload
	if method == "instapay" {
		details.InstaPayNumber, err = getSimpleText(a.reader, "InstaPay number", os.Stdout)
		if err != nil {
			return err
		}
		proofPath, err := getSimpleText(a.reader, "Payment proof file", os.Stdout)
		if err != nil {
			return err
		}
		if proofPath == "" {
			fmt.Fprintln(a.out, "InstaPay orders need a payment proof file")
			return nil
		}
		content, err := readFile(proofPath)
		if err != nil {
			return fmt.Errorf("failed to read payment proof: %w", err)
		}
		proof = &api.Upload{FieldName: "payment_proof", FileName: proofPath, Content: content}
	}

	order, err := a.shop.Checkout(ctx, details, proof)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Order #%d placed. Total: %.2f\n", order.ID, order.Total)
	return nil
}
