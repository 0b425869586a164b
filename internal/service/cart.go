package service

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"github.com/pawpals/storefront/internal/domain"
	"github.com/pawpals/storefront/internal/events"
	"github.com/pawpals/storefront/internal/repository"
)

// CartService owns all cart mutations. Every operation reads the full
// snapshot, applies the change, writes the full snapshot back, then
// publishes the new count so every badge stays current.
type CartService interface {
	GetCart(ctx context.Context, cartID string) (domain.Cart, error)
	AddItem(ctx context.Context, cartID string, product domain.Product, quantity int) (domain.Cart, error)
	RemoveItem(ctx context.Context, cartID string, productID string) (domain.Cart, error)
	SetItemQuantity(ctx context.Context, cartID string, productID string, quantity int) (domain.Cart, error)
	Count(ctx context.Context, cartID string) (int, error)
	Clear(ctx context.Context, cartID string) error
}

type cartService struct {
	repo     repository.CartRepository
	eventBus *events.EventBus[any]
	logger   hclog.Logger
}

func NewCartService(
	repo repository.CartRepository,
	eventBus *events.EventBus[any],
	logger hclog.Logger) CartService {
	return &cartService{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

func (s *cartService) GetCart(ctx context.Context, cartID string) (domain.Cart, error) {
	return s.repo.Load(ctx, cartID)
}

func (s *cartService) AddItem(ctx context.Context, cartID string, product domain.Product, quantity int) (domain.Cart, error) {
	s.logger.Debug("Adding item to cart", "cart_id", cartID, "product_id", product.ID, "quantity", quantity)

	cart, err := s.repo.Load(ctx, cartID)
	if err != nil {
		s.logger.Error("Unable to load cart", "cart_id", cartID, "error", err)
		return nil, err
	}

	cart = cart.Add(product, quantity)
	if err := s.persist(ctx, cartID, cart); err != nil {
		return nil, err
	}

	s.eventBus.Publish(events.ItemAdded{
		CartID:    cartID,
		ProductID: product.ID,
		Quantity:  quantity,
	})

	return cart, nil
}

func (s *cartService) RemoveItem(ctx context.Context, cartID string, productID string) (domain.Cart, error) {
	s.logger.Debug("Removing item from cart", "cart_id", cartID, "product_id", productID)

	cart, err := s.repo.Load(ctx, cartID)
	if err != nil {
		s.logger.Error("Unable to load cart", "cart_id", cartID, "error", err)
		return nil, err
	}

	cart = cart.Remove(productID)
	if err := s.persist(ctx, cartID, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

// SetItemQuantity clamps and applies a quantity change. An unknown product
// ID still persists the unchanged cart, matching the storefront's behavior.
func (s *cartService) SetItemQuantity(ctx context.Context, cartID string, productID string, quantity int) (domain.Cart, error) {
	s.logger.Debug("Setting item quantity", "cart_id", cartID, "product_id", productID, "quantity", quantity)

	cart, err := s.repo.Load(ctx, cartID)
	if err != nil {
		s.logger.Error("Unable to load cart", "cart_id", cartID, "error", err)
		return nil, err
	}

	cart = cart.SetQuantity(productID, quantity)
	if err := s.persist(ctx, cartID, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (s *cartService) Count(ctx context.Context, cartID string) (int, error) {
	cart, err := s.repo.Load(ctx, cartID)
	if err != nil {
		return 0, err
	}
	return cart.Count(), nil
}

func (s *cartService) Clear(ctx context.Context, cartID string) error {
	s.logger.Debug("Clearing cart", "cart_id", cartID)

	if err := s.repo.Clear(ctx, cartID); err != nil {
		s.logger.Error("Unable to clear cart", "cart_id", cartID, "error", err)
		return err
	}

	s.eventBus.Publish(events.CartUpdated{CartID: cartID, Count: 0})
	return nil
}

// persist writes the snapshot and announces the new badge count.
func (s *cartService) persist(ctx context.Context, cartID string, cart domain.Cart) error {
	if err := s.repo.Save(ctx, cartID, cart); err != nil {
		s.logger.Error("Unable to save cart", "cart_id", cartID, "error", err)
		return err
	}

	s.eventBus.Publish(events.CartUpdated{CartID: cartID, Count: cart.Count()})
	return nil
}
