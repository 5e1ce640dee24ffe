package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/hiddenhaul/haul/internal/client/models"
)

func (c *HTTPClient) CreateOrder(ctx context.Context, details models.PaymentDetails) (models.Order, error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/orders", details)
	if err != nil {
		return models.Order{}, err
	}
	return decodeData[models.Order](raw)
}

// CreateOrderWithProof submits the order as multipart form data so the
// payment-proof image travels with the payment details.
func (c *HTTPClient) CreateOrderWithProof(ctx context.Context, details models.PaymentDetails, proof Upload) (models.Order, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	products, err := json.Marshal(details.Products)
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to serialize order products: %w", err)
	}

	fields := map[string]string{
		"payment_method":  details.PaymentMethod,
		"contact":         details.Contact,
		"delivery_charge": strconv.FormatFloat(details.DeliveryCharge, 'f', -1, 64),
		"total_amount":    strconv.FormatFloat(details.TotalAmount, 'f', -1, 64),
		"products":        string(products),
		"instapay_number": details.InstaPayNumber,
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return models.Order{}, fmt.Errorf("failed to write form field %s: %w", k, err)
		}
	}

	part, err := w.CreateFormFile(proof.FieldName, proof.FileName)
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(proof.Content); err != nil {
		return models.Order{}, fmt.Errorf("failed to write payment proof: %w", err)
	}

	if err := w.Close(); err != nil {
		return models.Order{}, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	raw, err := c.do(ctx, http.MethodPost, "/orders", w.FormDataContentType(), &buf)
	if err != nil {
		return models.Order{}, err
	}
	return decodeData[models.Order](raw)
}

func (c *HTTPClient) Orders(ctx context.Context) ([]models.Order, error) {
	raw, err := c.do(ctx, http.MethodGet, "/orders", "", nil)
	if err != nil {
		return nil, err
	}
	return decodeData[[]models.Order](raw)
}

func (c *HTTPClient) AdminOrders(ctx context.Context) ([]models.Order, error) {
	raw, err := c.do(ctx, http.MethodGet, "/admin-orders", "", nil)
	if err != nil {
		return nil, err
	}
	return decodeData[[]models.Order](raw)
}

func (c *HTTPClient) DeleteAdminOrder(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, "/admin-orders/"+strconv.Itoa(id), "", nil)
	return err
}
