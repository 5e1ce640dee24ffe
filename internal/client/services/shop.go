package services

import (
	"context"

	"github.com/hiddenhaul/haul/internal/client/api"
	"github.com/hiddenhaul/haul/internal/client/models"
	"github.com/hiddenhaul/haul/internal/client/soldout"
)

// ShopService wraps the buyer flows that touch more than one collaborator.
type ShopService interface {
	// Checkout submits the current cart as an order: the cart lines,
	// delivery charge, and total are filled in from the fetched cart before
	// the order is placed. When proof is non-nil the order goes out as
	// multipart with the payment-proof file attached. Purchased product ids
	// are marked sold out for the rest of the process.
	Checkout(ctx context.Context, details models.PaymentDetails, proof *api.Upload) (models.Order, error)
}

type shopService struct {
	client  api.Client
	soldOut *soldout.Set
}

func NewShopService(client api.Client, soldOut *soldout.Set) ShopService {
	return &shopService{client: client, soldOut: soldOut}
}

func (s *shopService) Checkout(ctx context.Context, details models.PaymentDetails, proof *api.Upload) (models.Order, error) {
	items, err := s.client.Cart(ctx)
	if err != nil {
		return models.Order{}, err
	}

	details.Products = make([]models.OrderProduct, 0, len(items))
	details.DeliveryCharge = models.DeliveryCharge
	details.TotalAmount = models.DeliveryCharge
	for _, item := range items {
		details.Products = append(details.Products, models.OrderProduct{ID: item.ID, Price: item.Price})
		details.TotalAmount += item.Price
	}

	var order models.Order
	if proof != nil {
		order, err = s.client.CreateOrderWithProof(ctx, details, *proof)
	} else {
		order, err = s.client.CreateOrder(ctx, details)
	}
	if err != nil {
		return models.Order{}, err
	}

	for _, item := range items {
		s.soldOut.Mark(item.ProductID)
	}
	return order, nil
}
