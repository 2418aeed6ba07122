package store

import (
	"sync"

	"github.com/krish-p25/invoice-generator/internal/domain/entity"
	"go.uber.org/zap"
)

// SessionStore owns the state of the current upload: the grouped
// invoices, the collected row errors and the selection. It is the sole
// mutator of this slice of state; all mutation goes through named
// operations. The invoice list is session-scoped and never persisted.
type SessionStore struct {
	mu sync.RWMutex

	invoices   []*entity.Invoice
	rowErrors  []entity.RowError
	selectedID string

	logger *zap.Logger
}

// NewSessionStore creates an empty session store.
func NewSessionStore(logger *zap.Logger) *SessionStore {
	return &SessionStore{logger: logger}
}

// SetUpload replaces the whole session state with the result of a new
// CSV upload. Any previous selection is discarded.
func (s *SessionStore) SetUpload(invoices []*entity.Invoice, rowErrors []entity.RowError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.invoices = invoices
	s.rowErrors = rowErrors
	s.selectedID = ""

	s.logger.Info("Session upload replaced",
		zap.Int("invoices", len(invoices)),
		zap.Int("row_errors", len(rowErrors)))
}

// Invoices returns clones of every invoice, in first-appearance order.
func (s *SessionStore) Invoices() []*entity.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Invoice, len(s.invoices))
	for i, inv := range s.invoices {
		out[i] = inv.Clone()
	}
	return out
}

// Get returns a clone of the invoice with the given ID, or nil.
func (s *SessionStore) Get(id string) *entity.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, inv := range s.invoices {
		if inv.ID == id {
			return inv.Clone()
		}
	}
	return nil
}

// Errors returns the row-level validation errors of the current upload.
func (s *SessionStore) Errors() []entity.RowError {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.RowError(nil), s.rowErrors...)
}

// Select marks an invoice as selected; an empty id clears the selection.
func (s *SessionStore) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedID = id
}

// Selected returns the currently selected invoice ID.
func (s *SessionStore) Selected() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedID
}

// Remove deletes one invoice from the session. It reports whether the
// invoice existed.
func (s *SessionStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, inv := range s.invoices {
		if inv.ID == id {
			s.invoices = append(s.invoices[:i], s.invoices[i+1:]...)
			if s.selectedID == id {
				s.selectedID = ""
			}
			return true
		}
	}
	return false
}

// Clear drops the entire upload state.
func (s *SessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.invoices = nil
	s.rowErrors = nil
	s.selectedID = ""
	s.logger.Info("Session cleared")
}
