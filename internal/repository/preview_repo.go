package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/krish-p25/invoice-generator/internal/domain/entity"
	"go.uber.org/zap"
)

// previewKey identifies the single preview invoice row.
const previewKey = "preview"

// PreviewRepository persists the preview invoice as a JSON document in
// SQLite so it survives restarts, unlike the per-upload invoice list.
type PreviewRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewPreviewRepository creates a new preview repository
func NewPreviewRepository(db *sql.DB, logger *zap.Logger) *PreviewRepository {
	return &PreviewRepository{
		db:     db,
		logger: logger,
	}
}

// Load returns the persisted preview invoice, or nil if none was saved yet.
func (r *PreviewRepository) Load(ctx context.Context) (*entity.Invoice, error) {
	var document string
	err := r.db.QueryRowContext(ctx,
		"SELECT document FROM preview_invoices WHERE id = ?", previewKey,
	).Scan(&document)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to load preview invoice", zap.Error(err))
		return nil, fmt.Errorf("failed to load preview invoice: %w", err)
	}

	var inv entity.Invoice
	if err := json.Unmarshal([]byte(document), &inv); err != nil {
		return nil, fmt.Errorf("failed to decode preview invoice: %w", err)
	}
	return &inv, nil
}

// Save upserts the preview invoice.
func (r *PreviewRepository) Save(ctx context.Context, inv *entity.Invoice) error {
	document, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("failed to encode preview invoice: %w", err)
	}

	query := `
		INSERT INTO preview_invoices (id, document, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			document = excluded.document,
			updated_at = CURRENT_TIMESTAMP
	`
	if _, err := r.db.ExecContext(ctx, query, previewKey, string(document)); err != nil {
		r.logger.Error("Failed to save preview invoice", zap.Error(err))
		return fmt.Errorf("failed to save preview invoice: %w", err)
	}
	return nil
}
