package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/krish-p25/invoice-generator/internal/domain/entity"
	"go.uber.org/zap"
)

// Grouper folds validated CSV rows into per-customer invoices.
//
// The grouping key is the trimmed, lowercased bill-to name. Distinct
// real-world customers that share a display name merge into one invoice;
// the input schema carries no disambiguating identity, so this is accepted
// behavior rather than silently "fixed".
type Grouper struct {
	now    func() time.Time
	newID  func() string
	logger *zap.Logger
}

// NewGrouper creates a grouper using the wall clock and random UUIDs.
func NewGrouper(logger *zap.Logger) *Grouper {
	return &Grouper{
		now:    time.Now,
		newID:  func() string { return uuid.NewString() },
		logger: logger,
	}
}

// Group performs a single pass over rows and returns one fully aggregated
// invoice per distinct customer key, in order of first appearance.
//
// It never fails: malformed numeric fields degrade to zero and the worst
// outcome is an invoice with zero-valued fields.
func (g *Grouper) Group(rows []entity.CSVRow) []*entity.Invoice {
	byCustomer := make(map[string]*entity.Invoice)
	var order []string

	for _, row := range rows {
		key := strings.ToLower(strings.TrimSpace(row.BillTo))
		vatRate := ParseAmount(row.ItemVAT)

		inv, ok := byCustomer[key]
		if !ok {
			inv = &entity.Invoice{
				ID:            g.newID(),
				InvoiceNumber: g.invoiceNumber(len(byCustomer)),
				Date:          g.now(),
				BillFrom: entity.InvoiceParty{
					Name:    row.BillFrom,
					Address: row.BillingAddress,
				},
				BillTo: entity.InvoiceParty{
					Name:    row.BillTo,
					Address: row.ShippingAddress,
				},
				BillingAddress:  row.BillingAddress,
				ShippingAddress: row.ShippingAddress,
				Notes:           row.InvoiceNotes,
				Currency:        "USD",
				// First VAT rate observed for the customer wins; later
				// differing rates still contribute line items.
				ShowVAT:      vatRate > 0,
				VATMode:      entity.ModePercentage,
				VATValue:     vatRate,
				DiscountMode: entity.ModePercentage,
			}
			byCustomer[key] = inv
			order = append(order, key)
		}

		quantity := ParseAmount(row.ItemQuantity)
		unitPrice := ParseAmount(row.ItemPrice)
		inv.LineItems = append(inv.LineItems, entity.LineItem{
			ID:          g.newID(),
			Description: row.ItemDescription,
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			Total:       quantity * unitPrice,
		})

		appendNotes(inv, row.InvoiceNotes)
	}

	invoices := make([]*entity.Invoice, 0, len(order))
	for _, key := range order {
		inv := byCustomer[key]
		Recalculate(inv)
		invoices = append(invoices, inv)
	}

	if g.logger != nil {
		g.logger.Info("Grouped CSV rows into invoices",
			zap.Int("rows", len(rows)),
			zap.Int("invoices", len(invoices)))
	}
	return invoices
}

// invoiceNumber formats INV-YYYYMM-NNNN; the sequence follows first
// appearance of each distinct customer within the batch.
func (g *Grouper) invoiceNumber(index int) string {
	t := g.now()
	return fmt.Sprintf("INV-%04d%02d-%04d", t.Year(), int(t.Month()), index+1)
}

// appendNotes concatenates a row's notes onto the invoice unless they are
// already contained in the accumulated notes. Substring containment is a
// deliberate ad-hoc dedup, not a strict uniqueness guarantee.
func appendNotes(inv *entity.Invoice, notes string) {
	if notes == "" || strings.Contains(inv.Notes, notes) {
		return
	}
	if inv.Notes == "" {
		inv.Notes = notes
		return
	}
	inv.Notes = inv.Notes + "\n" + notes
}
