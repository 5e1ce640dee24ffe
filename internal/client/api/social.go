package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/hiddenhaul/haul/internal/client/models"
)

func (c *HTTPClient) AddFavorite(ctx context.Context, productID int) error {
	_, err := c.doJSON(ctx, http.MethodPost, "/favorites", map[string]int{"productId": productID})
	return err
}

// AddComment posts a review. The comments endpoint answers with the bare
// comment record, not the data envelope the other resources use.
func (c *HTTPClient) AddComment(ctx context.Context, productID int, text string, rating int) (models.Comment, error) {
	body := map[string]any{"comment": text, "rating": rating}

	raw, err := c.doJSON(ctx, http.MethodPost, "/products/"+strconv.Itoa(productID)+"/comments", body)
	if err != nil {
		return models.Comment{}, err
	}

	var comment models.Comment
	if err := json.Unmarshal(raw, &comment); err != nil {
		return models.Comment{}, fmt.Errorf("failed to parse comment response: %w", err)
	}
	return comment, nil
}
