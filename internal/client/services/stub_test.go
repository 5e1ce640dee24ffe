package services

import (
	"context"

	"github.com/hiddenhaul/haul/internal/client/api"
	"github.com/hiddenhaul/haul/internal/client/models"
)

// stubClient implements api.Client with overridable hooks for the methods a
// test cares about; everything else returns zero values.
type stubClient struct {
	loginFn          func(ctx context.Context, email, password string) (models.User, error)
	registerFn       func(ctx context.Context, reg api.Registration) (models.User, error)
	cartFn           func(ctx context.Context) ([]models.CartItem, error)
	createOrderFn    func(ctx context.Context, details models.PaymentDetails) (models.Order, error)
	createWithProofFn func(ctx context.Context, details models.PaymentDetails, proof api.Upload) (models.Order, error)
}

func (s *stubClient) LoginUser(ctx context.Context, email, password string) (models.User, error) {
	if s.loginFn != nil {
		return s.loginFn(ctx, email, password)
	}
	return models.User{}, nil
}

func (s *stubClient) RegisterUser(ctx context.Context, reg api.Registration) (models.User, error) {
	if s.registerFn != nil {
		return s.registerFn(ctx, reg)
	}
	return models.User{}, nil
}

func (s *stubClient) Products(ctx context.Context, typ models.ProductType) ([]models.Product, error) {
	return nil, nil
}

func (s *stubClient) Product(ctx context.Context, id int) (models.Product, error) {
	return models.Product{}, nil
}

func (s *stubClient) CreateProduct(ctx context.Context, p models.NewProduct, images []api.Upload) (models.Product, error) {
	return models.Product{}, nil
}

func (s *stubClient) UpdateProduct(ctx context.Context, id int, payload models.UpdateProductPayload) (models.Product, error) {
	return models.Product{}, nil
}

func (s *stubClient) DeleteProduct(ctx context.Context, id int) error { return nil }

func (s *stubClient) PendingProducts(ctx context.Context) ([]models.Product, error) {
	return nil, nil
}

func (s *stubClient) Cart(ctx context.Context) ([]models.CartItem, error) {
	if s.cartFn != nil {
		return s.cartFn(ctx)
	}
	return nil, nil
}

func (s *stubClient) AddToCart(ctx context.Context, productID int) error        { return nil }
func (s *stubClient) UpdateCartItem(ctx context.Context, id, quantity int) error { return nil }
func (s *stubClient) RemoveCartItem(ctx context.Context, id int) error           { return nil }

func (s *stubClient) CreateOrder(ctx context.Context, details models.PaymentDetails) (models.Order, error) {
	if s.createOrderFn != nil {
		return s.createOrderFn(ctx, details)
	}
	return models.Order{}, nil
}

func (s *stubClient) CreateOrderWithProof(ctx context.Context, details models.PaymentDetails, proof api.Upload) (models.Order, error) {
	if s.createWithProofFn != nil {
		return s.createWithProofFn(ctx, details, proof)
	}
	return models.Order{}, nil
}

func (s *stubClient) Orders(ctx context.Context) ([]models.Order, error)      { return nil, nil }
func (s *stubClient) AdminOrders(ctx context.Context) ([]models.Order, error) { return nil, nil }
func (s *stubClient) DeleteAdminOrder(ctx context.Context, id int) error      { return nil }
func (s *stubClient) AddFavorite(ctx context.Context, productID int) error    { return nil }

func (s *stubClient) AddComment(ctx context.Context, productID int, text string, rating int) (models.Comment, error) {
	return models.Comment{}, nil
}
