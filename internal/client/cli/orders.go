package cli

import (
	"context"
	"fmt"

	"github.com/hiddenhaul/haul/internal/client/models"
)

func (a *App) printOrders(orders []models.Order, withUser bool) {
	if len(orders) == 0 {
		fmt.Fprintln(a.out, "No orders yet.")
		return
	}
	for _, o := range orders {
		if withUser {
			fmt.Fprintf(a.out, "Order #%d  %s  %.2f  %s  %s <%s>\n",
				o.ID, o.Status, o.Total, o.CreatedAt, o.User.Name, o.User.Email)
		} else {
			fmt.Fprintf(a.out, "Order #%d  %s  %.2f  %s\n",
				o.ID, o.Status, o.Total, o.CreatedAt)
		}
		for _, item := range o.Items {
			fmt.Fprintf(a.out, "  %-30s %d x %.2f\n", item.Name, item.Quantity, item.Price)
		}
	}
}

// Orders lists the buyer's own order history.
func (a *App) Orders(ctx context.Context) error {
	orders, err := a.client.Orders(ctx)
	if err != nil {
		return err
	}
	a.printOrders(orders, false)
	return nil
}
