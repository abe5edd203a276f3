package order

import (
	"context"
	"errors"
	"fmt"

	"shop_backend/internal/authz"
	"shop_backend/internal/models"
	"shop_backend/internal/pricing"
	"shop_backend/internal/token"
)

var (
	ErrValidation = errors.New("validation") // 400
	ErrNotFound   = errors.New("not found")  // 404
	ErrForbidden  = errors.New("forbidden")  // surfaced as 401, same as a missing token
)

// Repo is the persistence the order service depends on. Create must persist
// the order together with its items atomically.
type Repo interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	FindByUser(ctx context.Context, userID uint) ([]models.Order, error)
}

// Draft is a proposed order as submitted at checkout. The owner is never part
// of the draft, it always comes from the authenticated identity.
type Draft struct {
	PaymentStatusID uint
	PaymentMethod   string
	OrderStatusID   uint
	FullName        string
	ShippingAddress string
	City            string
	PostalCode      int
	County          string
	ShippingPrice   float64
	TaxPrice        float64
	Items           []models.OrderItem
}

type Service struct {
	Repo Repo
}

func (s *Service) Create(ctx context.Context, claims *token.Claims, draft Draft) (*models.Order, pricing.Totals, error) {
	if len(draft.Items) == 0 {
		return nil, pricing.Totals{}, fmt.Errorf("%w: order items required", ErrValidation)
	}
	for i := range draft.Items {
		if draft.Items[i].Quantity < 1 {
			return nil, pricing.Totals{}, fmt.Errorf("%w: quantity must be >= 1", ErrValidation)
		}
	}

	totals := pricing.Compute(draft.Items, draft.TaxPrice, draft.ShippingPrice)

	o := &models.Order{
		UserID:          claims.ID,
		PaymentStatusID: draft.PaymentStatusID,
		PaymentMethod:   draft.PaymentMethod,
		OrderStatusID:   draft.OrderStatusID,
		FullName:        draft.FullName,
		ShippingAddress: draft.ShippingAddress,
		City:            draft.City,
		PostalCode:      draft.PostalCode,
		County:          draft.County,
		ShippingPrice:   draft.ShippingPrice,
		TaxPrice:        draft.TaxPrice,
		Items:           draft.Items,
	}

	if err := s.Repo.Create(ctx, o); err != nil {
		return nil, pricing.Totals{}, err
	}
	return o, totals, nil
}

// Get looks the order up before it authenticates: asking about a nonexistent
// order is "not found" even without a token. A present order is then gated by
// the owner-or-admin rule.
func (s *Service) Get(ctx context.Context, claims *token.Claims, id uint) (*models.Order, pricing.Totals, error) {
	o, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, pricing.Totals{}, err
	}
	if !authz.Allow(claims, o.UserID) {
		return nil, pricing.Totals{}, fmt.Errorf("%w: not the order owner", ErrForbidden)
	}
	return o, pricing.Compute(o.Items, o.TaxPrice, o.ShippingPrice), nil
}

// ListForUser returns the caller's orders in store order. The filter comes
// from the identity, so no cross-user leakage is possible.
func (s *Service) ListForUser(ctx context.Context, claims *token.Claims) ([]models.Order, error) {
	return s.Repo.FindByUser(ctx, claims.ID)
}
