package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/hiddenhaul/haul/internal/client/models"
)

func (c *HTTPClient) Products(ctx context.Context, typ models.ProductType) ([]models.Product, error) {
	if typ == "" {
		typ = models.ProductAll
	}

	raw, err := c.do(ctx, http.MethodGet, "/products?type="+string(typ), "", nil)
	if err != nil {
		return nil, err
	}
	return decodeData[[]models.Product](raw)
}

func (c *HTTPClient) Product(ctx context.Context, id int) (models.Product, error) {
	raw, err := c.do(ctx, http.MethodGet, "/products/"+strconv.Itoa(id), "", nil)
	if err != nil {
		return models.Product{}, err
	}
	return decodeData[models.Product](raw)
}

// CreateProduct submits a new listing as multipart form data: the text
// fields plus each image as its own file part. The multipart content type
// must survive the pipeline untouched.
func (c *HTTPClient) CreateProduct(ctx context.Context, p models.NewProduct, images []Upload) (models.Product, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":        p.Name,
		"description": p.Description,
		"category":    p.Category,
		"condition":   p.Condition,
		"price":       strconv.FormatFloat(p.Price, 'f', -1, 64),
		"type":        string(p.Type),
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return models.Product{}, fmt.Errorf("failed to write form field %s: %w", k, err)
		}
	}

	for _, img := range images {
		part, err := w.CreateFormFile(img.FieldName, img.FileName)
		if err != nil {
			return models.Product{}, fmt.Errorf("failed to create form file: %w", err)
		}
		if _, err := part.Write(img.Content); err != nil {
			return models.Product{}, fmt.Errorf("failed to write image: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return models.Product{}, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	raw, err := c.do(ctx, http.MethodPost, "/products", w.FormDataContentType(), &buf)
	if err != nil {
		return models.Product{}, err
	}
	return decodeData[models.Product](raw)
}

func (c *HTTPClient) UpdateProduct(ctx context.Context, id int, payload models.UpdateProductPayload) (models.Product, error) {
	raw, err := c.doJSON(ctx, http.MethodPut, "/products/"+strconv.Itoa(id), payload)
	if err != nil {
		return models.Product{}, err
	}
	return decodeData[models.Product](raw)
}

func (c *HTTPClient) DeleteProduct(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, "/products/"+strconv.Itoa(id), "", nil)
	return err
}

// PendingProducts lists listings awaiting admin approval.
func (c *HTTPClient) PendingProducts(ctx context.Context) ([]models.Product, error) {
	raw, err := c.do(ctx, http.MethodGet, "/products/pending", "", nil)
	if err != nil {
		return nil, err
	}
	return decodeData[[]models.Product](raw)
}
