package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hiddenhaul/haul/internal/client/models"
)

func (c *HTTPClient) Cart(ctx context.Context) ([]models.CartItem, error) {
	raw, err := c.do(ctx, http.MethodGet, "/cart", "", nil)
	if err != nil {
		return nil, err
	}
	return decodeData[[]models.CartItem](raw)
}

func (c *HTTPClient) AddToCart(ctx context.Context, productID int) error {
	_, err := c.doJSON(ctx, http.MethodPost, "/cart", map[string]int{"product_id": productID})
	return err
}

func (c *HTTPClient) UpdateCartItem(ctx context.Context, id, quantity int) error {
	_, err := c.doJSON(ctx, http.MethodPut, "/cart/"+strconv.Itoa(id), map[string]int{"quantity": quantity})
	return err
}

func (c *HTTPClient) RemoveCartItem(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, "/cart/"+strconv.Itoa(id), "", nil)
	return err
}
