// Package api is the client's single gateway to the marketplace REST
// backend. Every outgoing request flows through one pipeline that attaches
// the bearer token, stamps a request id, and reacts to authentication
// expiry globally, so the command layer never repeats that logic.
package api

import (
	"context"

	"github.com/hiddenhaul/haul/internal/client/models"
)

// Upload is a file part of a multipart request: a seller's product image
// or a buyer's payment proof.
type Upload struct {
	FieldName string
	FileName  string
	Content   []byte
}

// Registration is the body of POST /auth/register.
type Registration struct {
	Name     string      `json:"name"`
	Phone    string      `json:"phone"`
	Address  string      `json:"address"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role,omitempty"`
}

// Client is the typed surface over the backend. The REPL commands depend on
// this interface; tests substitute a stub.
type Client interface {
	LoginUser(ctx context.Context, email, password string) (models.User, error)
	RegisterUser(ctx context.Context, reg Registration) (models.User, error)

	Products(ctx context.Context, typ models.ProductType) ([]models.Product, error)
	Product(ctx context.Context, id int) (models.Product, error)
	CreateProduct(ctx context.Context, p models.NewProduct, images []Upload) (models.Product, error)
	UpdateProduct(ctx context.Context, id int, payload models.UpdateProductPayload) (models.Product, error)
	DeleteProduct(ctx context.Context, id int) error
	PendingProducts(ctx context.Context) ([]models.Product, error)

	Cart(ctx context.Context) ([]models.CartItem, error)
	AddToCart(ctx context.Context, productID int) error
	UpdateCartItem(ctx context.Context, id, quantity int) error
	RemoveCartItem(ctx context.Context, id int) error

	CreateOrder(ctx context.Context, details models.PaymentDetails) (models.Order, error)
	CreateOrderWithProof(ctx context.Context, details models.PaymentDetails, proof Upload) (models.Order, error)
	Orders(ctx context.Context) ([]models.Order, error)
	AdminOrders(ctx context.Context) ([]models.Order, error)
	DeleteAdminOrder(ctx context.Context, id int) error

	AddFavorite(ctx context.Context, productID int) error
	AddComment(ctx context.Context, productID int, text string, rating int) (models.Comment, error)
}
