package invoice

import (
	"testing"

	"github.com/krish-p25/invoice-generator/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func testInvoice() *entity.Invoice {
	return &entity.Invoice{
		ID:            "inv-1",
		InvoiceNumber: "INV-2026-0001",
		Currency:      "USD",
		LineItems: []entity.LineItem{
			{ID: "li-1", Description: "Widget", Quantity: 2, UnitPrice: 100},
			{ID: "li-2", Description: "Gadget", Quantity: 3, UnitPrice: 50},
		},
		VATMode:      entity.ModePercentage,
		DiscountMode: entity.ModePercentage,
	}
}

func TestItemTotal(t *testing.T) {
	assert.Equal(t, 200.0, ItemTotal(entity.LineItem{Quantity: 2, UnitPrice: 100}))
	assert.Equal(t, 0.0, ItemTotal(entity.LineItem{Quantity: 0, UnitPrice: 99.99}))
	assert.Equal(t, 12.5, ItemTotal(entity.LineItem{Quantity: 2.5, UnitPrice: 5}))
}

func TestRecalculate(t *testing.T) {
	t.Run("subtotal is sum of item totals", func(t *testing.T) {
		inv := testInvoice()
		Recalculate(inv)

		assert.Equal(t, 200.0, inv.LineItems[0].Total)
		assert.Equal(t, 150.0, inv.LineItems[1].Total)
		assert.Equal(t, 350.0, inv.Subtotal)
		assert.Equal(t, 350.0, inv.GrandTotal)
	})

	t.Run("percentage VAT", func(t *testing.T) {
		inv := testInvoice()
		inv.ShowVAT = true
		inv.VATValue = 20

		Recalculate(inv)

		assert.Equal(t, 70.0, inv.TotalVAT)
		assert.Equal(t, 420.0, inv.GrandTotal)
	})

	t.Run("fixed VAT", func(t *testing.T) {
		inv := testInvoice()
		inv.ShowVAT = true
		inv.VATMode = entity.ModeAmount
		inv.VATValue = 33

		Recalculate(inv)

		assert.Equal(t, 33.0, inv.TotalVAT)
		assert.Equal(t, 383.0, inv.GrandTotal)
	})

	t.Run("hidden VAT contributes nothing but keeps its value", func(t *testing.T) {
		inv := testInvoice()
		inv.ShowVAT = false
		inv.VATValue = 20

		Recalculate(inv)

		assert.Equal(t, 0.0, inv.TotalVAT)
		assert.Equal(t, 20.0, inv.VATValue)
		assert.Equal(t, 350.0, inv.GrandTotal)
	})

	t.Run("percentage discount applies after VAT", func(t *testing.T) {
		inv := testInvoice()
		inv.ShowVAT = true
		inv.VATValue = 20
		inv.ShowDiscount = true
		inv.DiscountValue = 10

		Recalculate(inv)

		// 10% of (350 + 70), not 10% of 350
		assert.Equal(t, 42.0, inv.TotalDiscount)
		assert.Equal(t, 378.0, inv.GrandTotal)
	})

	t.Run("fixed discount", func(t *testing.T) {
		inv := testInvoice()
		inv.ShowDiscount = true
		inv.DiscountMode = entity.ModeAmount
		inv.DiscountValue = 25

		Recalculate(inv)

		assert.Equal(t, 25.0, inv.TotalDiscount)
		assert.Equal(t, 325.0, inv.GrandTotal)
	})

	t.Run("shipping is a flat add", func(t *testing.T) {
		inv := testInvoice()
		inv.ShowShipping = true
		inv.ShippingFee = 15.5

		Recalculate(inv)

		assert.Equal(t, 365.5, inv.GrandTotal)
	})

	t.Run("all components together", func(t *testing.T) {
		inv := testInvoice()
		inv.ShowVAT = true
		inv.VATValue = 20
		inv.ShowDiscount = true
		inv.DiscountValue = 10
		inv.ShowShipping = true
		inv.ShippingFee = 12

		Recalculate(inv)

		assert.Equal(t, 350.0, inv.Subtotal)
		assert.Equal(t, 70.0, inv.TotalVAT)
		assert.Equal(t, 42.0, inv.TotalDiscount)
		assert.Equal(t, inv.Subtotal+inv.TotalVAT-inv.TotalDiscount+inv.ShippingFee, inv.GrandTotal)
	})

	t.Run("idempotent", func(t *testing.T) {
		inv := testInvoice()
		inv.ShowVAT = true
		inv.VATValue = 20
		inv.ShowDiscount = true
		inv.DiscountValue = 7.5
		inv.ShowShipping = true
		inv.ShippingFee = 9.99

		Recalculate(inv)
		first := *inv
		Recalculate(inv)

		assert.Equal(t, first.Subtotal, inv.Subtotal)
		assert.Equal(t, first.TotalVAT, inv.TotalVAT)
		assert.Equal(t, first.TotalDiscount, inv.TotalDiscount)
		assert.Equal(t, first.GrandTotal, inv.GrandTotal)
	})

	t.Run("stale item totals are recomputed", func(t *testing.T) {
		inv := testInvoice()
		inv.LineItems[0].Total = 9999

		Recalculate(inv)

		assert.Equal(t, 200.0, inv.LineItems[0].Total)
		assert.Equal(t, 350.0, inv.Subtotal)
	})

	t.Run("no line items", func(t *testing.T) {
		inv := testInvoice()
		inv.LineItems = nil
		inv.ShowShipping = true
		inv.ShippingFee = 10

		Recalculate(inv)

		assert.Equal(t, 0.0, inv.Subtotal)
		assert.Equal(t, 10.0, inv.GrandTotal)
	})
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"plain integer", "42", 42},
		{"decimal", "19.99", 19.99},
		{"surrounding whitespace", "  7.5  ", 7.5},
		{"negative", "-3", -3},
		{"empty", "", 0},
		{"non-numeric", "abc", 0},
		{"trailing garbage", "12x", 0},
		{"NaN", "NaN", 0},
		{"infinity", "Inf", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseAmount(tt.input))
		})
	}
}
