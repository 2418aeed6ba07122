package invoice

import (
	"math"
	"strconv"
	"strings"

	"github.com/krish-p25/invoice-generator/internal/domain/entity"
)

// ItemTotal computes the extended total of a single line item.
func ItemTotal(item entity.LineItem) float64 {
	return item.Quantity * item.UnitPrice
}

// Recalculate recomputes every derived monetary field of the invoice from
// its line items and VAT/discount/shipping configuration.
//
// It is pure with respect to its inputs and idempotent: calling it twice
// without an intervening mutation yields bit-identical totals. It must run
// after every mutation that can change any input.
//
// The discount base is subtotal plus VAT: the discount applies post-VAT,
// pre-shipping.
func Recalculate(inv *entity.Invoice) {
	for i := range inv.LineItems {
		inv.LineItems[i].Total = ItemTotal(inv.LineItems[i])
	}

	subtotal := 0.0
	for _, item := range inv.LineItems {
		subtotal += item.Total
	}

	totalVAT := 0.0
	if inv.ShowVAT {
		if inv.VATMode == entity.ModePercentage {
			totalVAT = subtotal * (inv.VATValue / 100)
		} else {
			totalVAT = inv.VATValue
		}
	}

	totalDiscount := 0.0
	if inv.ShowDiscount {
		base := subtotal + totalVAT
		if inv.DiscountMode == entity.ModePercentage {
			totalDiscount = base * (inv.DiscountValue / 100)
		} else {
			totalDiscount = inv.DiscountValue
		}
	}

	shipping := 0.0
	if inv.ShowShipping {
		shipping = inv.ShippingFee
	}

	inv.Subtotal = subtotal
	inv.TotalVAT = totalVAT
	inv.TotalDiscount = totalDiscount
	inv.GrandTotal = subtotal + totalVAT - totalDiscount + shipping
}

// ParseAmount converts a raw CSV numeric field to a float64. Malformed,
// missing, NaN or infinite values degrade to zero; a bad number never
// fails the batch. Parsing is strict over the whole field: a value with
// trailing garbage ("12x") is zero, not its numeric prefix, and the row
// validator flags it.
func ParseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
