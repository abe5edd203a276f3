package order

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"shop_backend/internal/models"
	"shop_backend/internal/token"
)

type fakeRepo struct {
	orders []models.Order
	nextID uint
}

func (f *fakeRepo) Create(_ context.Context, o *models.Order) error {
	f.nextID++
	o.ID = f.nextID
	for i := range o.Items {
		o.Items[i].ID = uint(i + 1)
		o.Items[i].OrderID = o.ID
	}
	f.orders = append(f.orders, *o)
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id uint) (*models.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == id {
			o := f.orders[i]
			return &o, nil
		}
	}
	return nil, fmt.Errorf("%w: order %d", ErrNotFound, id)
}

func (f *fakeRepo) FindByUser(_ context.Context, userID uint) ([]models.Order, error) {
	var out []models.Order
	for i := range f.orders {
		if f.orders[i].UserID == userID {
			out = append(out, f.orders[i])
		}
	}
	return out, nil
}

func testDraft() Draft {
	return Draft{
		PaymentStatusID: 1,
		PaymentMethod:   "paypal",
		OrderStatusID:   1,
		FullName:        "Order for product",
		ShippingAddress: "Lviv, Horodotska 24",
		City:            "Lviv",
		PostalCode:      35478,
		County:          "Ukraine",
		ShippingPrice:   3.5,
		TaxPrice:        0.2,
		Items: []models.OrderItem{
			{ProductID: 1, Quantity: 2, Price: 10},
		},
	}
}

func TestCreateOrder(t *testing.T) {
	repo := &fakeRepo{}
	svc := &Service{Repo: repo}
	claims := &token.Claims{ID: 1}

	o, totals, err := svc.Create(context.Background(), claims, testDraft())
	require.NoError(t, err)
	require.Equal(t, uint(1), o.ID)
	require.Equal(t, uint(1), o.UserID)
	require.Len(t, o.Items, 1)
	require.Equal(t, 20.0, totals.ItemsPrice)
	require.Equal(t, 23.7, totals.TotalPrice)
	require.Len(t, repo.orders, 1)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	repo := &fakeRepo{}
	svc := &Service{Repo: repo}

	draft := testDraft()
	draft.Items = nil

	_, _, err := svc.Create(context.Background(), &token.Claims{ID: 1}, draft)
	require.ErrorIs(t, err, ErrValidation)
	require.Empty(t, repo.orders)
}

func TestCreateOrderZeroQuantity(t *testing.T) {
	repo := &fakeRepo{}
	svc := &Service{Repo: repo}

	draft := testDraft()
	draft.Items[0].Quantity = 0

	_, _, err := svc.Create(context.Background(), &token.Claims{ID: 1}, draft)
	require.ErrorIs(t, err, ErrValidation)
	require.Empty(t, repo.orders)
}

// The owner comes from the identity, a spoofed draft cannot reassign it.
func TestCreateOrderOwnerFromIdentity(t *testing.T) {
	repo := &fakeRepo{}
	svc := &Service{Repo: repo}

	o, _, err := svc.Create(context.Background(), &token.Claims{ID: 42}, testDraft())
	require.NoError(t, err)
	require.Equal(t, uint(42), o.UserID)
}

func TestGetOrderOwner(t *testing.T) {
	repo := &fakeRepo{}
	svc := &Service{Repo: repo}

	created, _, err := svc.Create(context.Background(), &token.Claims{ID: 1}, testDraft())
	require.NoError(t, err)

	o, totals, err := svc.Get(context.Background(), &token.Claims{ID: 1}, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, o.ID)
	require.Equal(t, 23.7, totals.TotalPrice)
}

func TestGetOrderAdmin(t *testing.T) {
	repo := &fakeRepo{}
	svc := &Service{Repo: repo}

	created, _, err := svc.Create(context.Background(), &token.Claims{ID: 1}, testDraft())
	require.NoError(t, err)

	_, _, err = svc.Get(context.Background(), &token.Claims{ID: 2, IsAdmin: true}, created.ID)
	require.NoError(t, err)
}

func TestGetOrderForbidden(t *testing.T) {
	repo := &fakeRepo{}
	svc := &Service{Repo: repo}

	created, _, err := svc.Create(context.Background(), &token.Claims{ID: 1}, testDraft())
	require.NoError(t, err)

	_, _, err = svc.Get(context.Background(), &token.Claims{ID: 2}, created.ID)
	require.ErrorIs(t, err, ErrForbidden)
}

// A nonexistent order is "not found" even without an identity, the lookup
// happens before any auth reasoning.
func TestGetOrderNotFoundBeforeAuth(t *testing.T) {
	svc := &Service{Repo: &fakeRepo{}}

	_, _, err := svc.Get(context.Background(), nil, 99)
	require.ErrorIs(t, err, ErrNotFound)
	require.NotErrorIs(t, err, ErrForbidden)
}

func TestListForUser(t *testing.T) {
	repo := &fakeRepo{}
	svc := &Service{Repo: repo}

	_, _, err := svc.Create(context.Background(), &token.Claims{ID: 1}, testDraft())
	require.NoError(t, err)
	_, _, err = svc.Create(context.Background(), &token.Claims{ID: 2}, testDraft())
	require.NoError(t, err)
	_, _, err = svc.Create(context.Background(), &token.Claims{ID: 1}, testDraft())
	require.NoError(t, err)

	orders, err := svc.ListForUser(context.Background(), &token.Claims{ID: 1})
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.Equal(t, uint(1), orders[0].ID)
	require.Equal(t, uint(3), orders[1].ID)

	none, err := svc.ListForUser(context.Background(), &token.Claims{ID: 3})
	require.NoError(t, err)
	require.Empty(t, none)
}
