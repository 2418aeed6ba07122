package store

import (
	"testing"

	"github.com/krish-p25/invoice-generator/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sessionInvoices() []*entity.Invoice {
	return []*entity.Invoice{
		{ID: "a", InvoiceNumber: "INV-1", BillTo: entity.InvoiceParty{Name: "Acme Corp"}},
		{ID: "b", InvoiceNumber: "INV-2", BillTo: entity.InvoiceParty{Name: "Beta LLC"}},
	}
}

func TestSessionStore(t *testing.T) {
	t.Run("starts empty", func(t *testing.T) {
		s := NewSessionStore(zap.NewNop())

		assert.Empty(t, s.Invoices())
		assert.Empty(t, s.Errors())
		assert.Empty(t, s.Selected())
	})

	t.Run("SetUpload replaces state and clears selection", func(t *testing.T) {
		s := NewSessionStore(zap.NewNop())
		s.SetUpload(sessionInvoices(), nil)
		s.Select("a")

		s.SetUpload(sessionInvoices()[:1], []entity.RowError{{Row: 2, Kind: entity.ErrKindMissingFields}})

		assert.Len(t, s.Invoices(), 1)
		assert.Len(t, s.Errors(), 1)
		assert.Empty(t, s.Selected())
	})

	t.Run("Invoices returns clones", func(t *testing.T) {
		s := NewSessionStore(zap.NewNop())
		s.SetUpload(sessionInvoices(), nil)

		s.Invoices()[0].InvoiceNumber = "mutated"

		assert.Equal(t, "INV-1", s.Invoices()[0].InvoiceNumber)
	})

	t.Run("Get", func(t *testing.T) {
		s := NewSessionStore(zap.NewNop())
		s.SetUpload(sessionInvoices(), nil)

		inv := s.Get("b")
		require.NotNil(t, inv)
		assert.Equal(t, "Beta LLC", inv.BillTo.Name)

		assert.Nil(t, s.Get("missing"))
	})

	t.Run("Select and Selected", func(t *testing.T) {
		s := NewSessionStore(zap.NewNop())
		s.SetUpload(sessionInvoices(), nil)

		s.Select("b")
		assert.Equal(t, "b", s.Selected())

		s.Select("")
		assert.Empty(t, s.Selected())
	})

	t.Run("Remove drops invoice and its selection", func(t *testing.T) {
		s := NewSessionStore(zap.NewNop())
		s.SetUpload(sessionInvoices(), nil)
		s.Select("a")

		assert.True(t, s.Remove("a"))
		assert.False(t, s.Remove("a"))
		assert.Len(t, s.Invoices(), 1)
		assert.Empty(t, s.Selected())
	})

	t.Run("Remove keeps unrelated selection", func(t *testing.T) {
		s := NewSessionStore(zap.NewNop())
		s.SetUpload(sessionInvoices(), nil)
		s.Select("b")

		s.Remove("a")

		assert.Equal(t, "b", s.Selected())
	})

	t.Run("Clear", func(t *testing.T) {
		s := NewSessionStore(zap.NewNop())
		s.SetUpload(sessionInvoices(), []entity.RowError{{Row: 2}})
		s.Select("a")

		s.Clear()

		assert.Empty(t, s.Invoices())
		assert.Empty(t, s.Errors())
		assert.Empty(t, s.Selected())
	})
}
