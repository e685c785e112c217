package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
)

func TestProduct_LowStock(t *testing.T) {
	p := &entity.Product{Stock: 8, MinStock: 10}
	assert.True(t, p.LowStock())
	p.Stock = 10
	assert.True(t, p.LowStock(), "stock igual al mínimo cuenta como bajo")
	p.Stock = 11
	assert.False(t, p.LowStock())
}

func TestProduct_Margin(t *testing.T) {
	p := &entity.Product{Price: decimal.RequireFromString("189.90"), Cost: decimal.NewFromInt(120)}
	assert.Equal(t, "69.9", p.UnitProfit().String())
	assert.Equal(t, "36.81", p.MarginPct().Round(2).String())

	free := &entity.Product{Price: decimal.Zero, Cost: decimal.NewFromInt(5)}
	assert.True(t, free.MarginPct().IsZero())
}

func TestAppointmentStatus_Transitions(t *testing.T) {
	assert.True(t, entity.AppointmentPending.CanTransition(entity.AppointmentConfirmed))
	assert.True(t, entity.AppointmentPending.CanTransition(entity.AppointmentCancelled))
	assert.False(t, entity.AppointmentPending.CanTransition(entity.AppointmentCompleted))
	assert.True(t, entity.AppointmentConfirmed.CanTransition(entity.AppointmentCompleted))
	assert.False(t, entity.AppointmentCompleted.CanTransition(entity.AppointmentCancelled))
	assert.False(t, entity.AppointmentCancelled.CanTransition(entity.AppointmentPending))
}

func TestRole_Valid(t *testing.T) {
	for _, r := range entity.Roles() {
		assert.True(t, r.Valid())
	}
	assert.False(t, entity.Role("funcionario").Valid())
	assert.False(t, entity.Role("").Valid())
}
