package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hiddenhaul/haul/internal/client/models"
)

// authResponse is the one endpoint family that does not use the data
// envelope: the body carries the token and the user side by side.
type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// intoUser folds the top-level token into the user record and resolves the
// optional role once, at the boundary: an absent role means a plain buyer.
func (r authResponse) intoUser() models.User {
	u := r.User
	u.Token = r.Token
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	return u
}

func (c *HTTPClient) LoginUser(ctx context.Context, email, password string) (models.User, error) {
	body := map[string]string{"email": email, "password": password}

	raw, err := c.doJSON(ctx, http.MethodPost, "/auth/login", body)
	if err != nil {
		return models.User{}, err
	}

	var resp authResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return models.User{}, fmt.Errorf("failed to decode login response: %w", err)
	}
	return resp.intoUser(), nil
}

func (c *HTTPClient) RegisterUser(ctx context.Context, reg Registration) (models.User, error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/auth/register", reg)
	if err != nil {
		return models.User{}, err
	}

	var resp authResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return models.User{}, fmt.Errorf("failed to decode register response: %w", err)
	}
	return resp.intoUser(), nil
}
