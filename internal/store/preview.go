package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/krish-p25/invoice-generator/internal/domain/entity"
	"github.com/krish-p25/invoice-generator/internal/invoice"
	"go.uber.org/zap"
)

// PreviewRepository persists the preview invoice across sessions.
type PreviewRepository interface {
	Load(ctx context.Context) (*entity.Invoice, error)
	Save(ctx context.Context, inv *entity.Invoice) error
}

// LineItemPatch is a partial line-item update; nil fields stay unchanged.
type LineItemPatch struct {
	Description *string  `json:"description,omitempty"`
	Quantity    *float64 `json:"quantity,omitempty"`
	UnitPrice   *float64 `json:"unit_price,omitempty"`
}

// PreviewStore owns the editable preview invoice. Every mutation funnels
// through a named operation that recalculates totals and persists the
// result, so the stored totals always satisfy
// grandTotal = subtotal + vat - discount + shipping.
//
// Toggling VAT, discount or shipping off keeps the entered value and mode
// so re-enabling restores them instead of resetting to a default.
type PreviewStore struct {
	mu     sync.Mutex
	repo   PreviewRepository
	inv    *entity.Invoice
	logger *zap.Logger
}

// NewPreviewStore loads the persisted preview invoice, falling back to
// the built-in sample when nothing was saved yet.
func NewPreviewStore(ctx context.Context, repo PreviewRepository, logger *zap.Logger) (*PreviewStore, error) {
	inv, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load preview invoice: %w", err)
	}
	if inv == nil {
		inv = entity.SampleInvoice()
		logger.Info("No persisted preview invoice, seeding sample")
	}
	return &PreviewStore{repo: repo, inv: inv, logger: logger}, nil
}

// Invoice returns a clone of the current preview invoice.
func (s *PreviewStore) Invoice() *entity.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inv.Clone()
}

// mutate runs fn on a clone of the owned invoice, recalculates totals
// and persists. The clone replaces the owned invoice only after a
// successful save, so a failed save leaves memory and the persisted
// document in agreement.
func (s *PreviewStore) mutate(ctx context.Context, fn func(inv *entity.Invoice)) (*entity.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.inv.Clone()
	fn(next)
	invoice.Recalculate(next)

	if err := s.repo.Save(ctx, next); err != nil {
		s.logger.Error("Failed to persist preview invoice", zap.Error(err))
		return nil, err
	}
	s.inv = next
	return next.Clone(), nil
}

// UpdateBillFrom sets the biller name and address.
func (s *PreviewStore) UpdateBillFrom(ctx context.Context, name, address string) (*entity.Invoice, error) {
	return s.mutate(ctx, func(inv *entity.Invoice) {
		inv.BillFrom = entity.InvoiceParty{Name: name, Address: address}
	})
}

// UpdateBillTo sets the customer name and address.
func (s *PreviewStore) UpdateBillTo(ctx context.Context, name, address string) (*entity.Invoice, error) {
	return s.mutate(ctx, func(inv *entity.Invoice) {
		inv.BillTo = entity.InvoiceParty{Name: name, Address: address}
	})
}

// UpdateShippingAddress sets the shipping address.
func (s *PreviewStore) UpdateShippingAddress(ctx context.Context, address string) (*entity.Invoice, error) {
	return s.mutate(ctx, func(inv *entity.Invoice) {
		inv.ShippingAddress = address
	})
}

// UpdateInvoiceNumber replaces the invoice number.
func (s *PreviewStore) UpdateInvoiceNumber(ctx context.Context, number string) (*entity.Invoice, error) {
	return s.mutate(ctx, func(inv *entity.Invoice) {
		inv.InvoiceNumber = number
	})
}

// IncrementInvoiceNumber bumps the last digit run of the invoice number.
func (s *PreviewStore) IncrementInvoiceNumber(ctx context.Context) (*entity.Invoice, error) {
	return s.mutate(ctx, func(inv *entity.Invoice) {
		inv.InvoiceNumber = invoice.NextNumber(inv.InvoiceNumber)
	})
}

// UpdateDate sets the invoice date.
func (s *PreviewStore) UpdateDate(ctx context.Context, date time.Time) (*entity.Invoice, error) {
	return s.mutate(ctx, func(inv *entity.Invoice) {
		inv.Date = date
	})
}

// UpdateNotes replaces the notes.
func (s *PreviewStore) UpdateNotes(ctx context.Context, notes string) (*entity.Invoice, error) {
	return s.mutate(ctx, func(inv *entity.Invoice) {
		inv.Notes = notes
	})
}

// UpdateCurrency sets the currency code.
func (s *PreviewStore) UpdateCurrency(ctx context.Context, code string) (*entity.Invoice, error) {
	return s.mutate(ctx, func(inv *entity.Invoice) {
		inv.Currency = invoice.CurrencyByCode(code).Code
	})
}

// AddLineItem appends a fresh "New Item" line and returns the invoice.
func (s *PreviewStore) AddLineItem(ctx context.Context) (*entity.Invoice, error) {
	return s.mutate(ctx, func(inv *entity.Invoice) {
		inv.LineItems = append(inv.LineItems, entity.LineItem{
			ID:          uuid.NewString(),
			Description: "New Item",
			Quantity:    1,
			UnitPrice:   0,
		})
	})
}

// UpdateLineItem applies a partial update to one line item. Unknown item
// IDs leave the invoice unchanged.
func (s *PreviewStore) UpdateLineItem(ctx context.Context, itemID string, patch LineItemPatch) (*entity.Invoice, error) {
	return s.mutate(ctx, func(inv *entity.Invoice) {
		item := inv.FindLineItem(itemID)
		if item == nil {
			return
		}
		if patch.Description != nil {
			item.Description = *patch.Description
		}
		if patch.Quantity != nil {
			item.Quantity = *patch.Quantity
		}
		if patch.UnitPrice != nil {
			item.UnitPrice = *patch.UnitPrice
		}
	})
}

// RemoveLineItem deletes one line item.
func (s *PreviewStore) RemoveLineItem(ctx context.Context, itemID string) (*entity.Invoice, error) {
	return s.mutate(ctx, func(inv *entity.Invoice) {
		for i := range inv.LineItems {
			if inv.LineItems[i].ID == itemID {
				inv.LineItems = append(inv.LineItems[:i], inv.LineItems[i+1:]...)
				return
			}
		}
	})
}

// UpdateVAT sets the VAT mode and/or value; nil fields stay unchanged.
func (s *PreviewStore) UpdateVAT(ctx context.Context, mode *entity.AmountMode, value *float64) (*entity.Invoice, error) {
	return s.mutate(ctx, func(inv *entity.Invoice) {
		if mode != nil {
			inv.VATMode = *mode
		}
		if value != nil {
			inv.VATValue = *value
		}
	})
}

// ToggleVAT flips VAT visibility, retaining value and mode.
func (s *PreviewStore) ToggleVAT(ctx context.Context) (*entity.Invoice, error) {
	return s.mutate(ctx, func(inv *entity.Invoice) {
		inv.ShowVAT = !inv.ShowVAT
	})
}

// UpdateDiscount sets the discount mode and/or value.
func (s *PreviewStore) UpdateDiscount(ctx context.Context, mode *entity.AmountMode, value *float64) (*entity.Invoice, error) {
	return s.mutate(ctx, func(inv *entity.Invoice) {
		if mode != nil {
			inv.DiscountMode = *mode
		}
		if value != nil {
			inv.DiscountValue = *value
		}
	})
}

// ToggleDiscount flips discount visibility, retaining value and mode.
func (s *PreviewStore) ToggleDiscount(ctx context.Context) (*entity.Invoice, error) {
	return s.mutate(ctx, func(inv *entity.Invoice) {
		inv.ShowDiscount = !inv.ShowDiscount
	})
}

// UpdateShippingFee sets the flat shipping fee.
func (s *PreviewStore) UpdateShippingFee(ctx context.Context, fee float64) (*entity.Invoice, error) {
	return s.mutate(ctx, func(inv *entity.Invoice) {
		inv.ShippingFee = fee
	})
}

// ToggleShipping flips shipping visibility, retaining the fee.
func (s *PreviewStore) ToggleShipping(ctx context.Context) (*entity.Invoice, error) {
	return s.mutate(ctx, func(inv *entity.Invoice) {
		inv.ShowShipping = !inv.ShowShipping
	})
}

// ResetToSample restores the built-in sample invoice.
func (s *PreviewStore) ResetToSample(ctx context.Context) (*entity.Invoice, error) {
	return s.mutate(ctx, func(inv *entity.Invoice) {
		*inv = *entity.SampleInvoice()
	})
}
