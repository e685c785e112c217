package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/PetShop-api/internal/domain/inventory"
)

func TestWeightedAverageCost(t *testing.T) {
	// 10 u a 100 + 10 u a 120 = 110
	got := inventory.WeightedAverageCost(10, decimal.NewFromInt(100), 10, decimal.NewFromInt(120))
	assert.True(t, got.Equal(decimal.NewFromInt(110)), "got %s", got)

	// Sin stock previo: el costo es el de la entrada.
	got = inventory.WeightedAverageCost(0, decimal.Zero, 5, decimal.RequireFromString("28.50"))
	assert.True(t, got.Equal(decimal.RequireFromString("28.50")), "got %s", got)

	// Nada que ponderar.
	assert.True(t, inventory.WeightedAverageCost(0, decimal.NewFromInt(10), 0, decimal.NewFromInt(10)).IsZero())
}

func TestTotalCost(t *testing.T) {
	assert.True(t, inventory.TotalCost(12, decimal.NewFromInt(140)).Equal(decimal.NewFromInt(1680)))
	assert.True(t, inventory.TotalCost(-3, decimal.RequireFromString("28.50")).Equal(decimal.RequireFromString("-85.5")))
}
