package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"shop_backend/internal/models"
)

func TestCompute(t *testing.T) {
	items := []models.OrderItem{
		{ProductID: 1, Quantity: 2, Price: 10},
	}

	totals := Compute(items, 0.2, 3.5)
	require.Equal(t, 20.0, totals.ItemsPrice)
	require.Equal(t, 23.7, totals.TotalPrice)
}

func TestComputeMultipleItems(t *testing.T) {
	items := []models.OrderItem{
		{ProductID: 1, Quantity: 3, Price: 4},
		{ProductID: 2, Quantity: 1, Price: 2.5},
	}

	totals := Compute(items, 1, 2)
	require.Equal(t, 14.5, totals.ItemsPrice)
	require.Equal(t, 17.5, totals.TotalPrice)
}

func TestComputeNoItems(t *testing.T) {
	totals := Compute(nil, 0.5, 1.5)
	require.Equal(t, 0.0, totals.ItemsPrice)
	require.Equal(t, 2.0, totals.TotalPrice)
}
