package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/krish-p25/invoice-generator/internal/domain/entity"
	"go.uber.org/zap"
)

// templateKey identifies the single reusable template row.
const templateKey = "default"

// TemplateRepository persists the template configuration as a JSON
// document in SQLite.
type TemplateRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewTemplateRepository creates a new template repository
func NewTemplateRepository(db *sql.DB, logger *zap.Logger) *TemplateRepository {
	return &TemplateRepository{
		db:     db,
		logger: logger,
	}
}

// Load returns the persisted template config, or nil if none was saved yet.
func (r *TemplateRepository) Load(ctx context.Context) (*entity.TemplateConfig, error) {
	var document string
	err := r.db.QueryRowContext(ctx,
		"SELECT document FROM template_configs WHERE id = ?", templateKey,
	).Scan(&document)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to load template config", zap.Error(err))
		return nil, fmt.Errorf("failed to load template config: %w", err)
	}

	var cfg entity.TemplateConfig
	if err := json.Unmarshal([]byte(document), &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode template config: %w", err)
	}
	return &cfg, nil
}

// Save upserts the template config.
func (r *TemplateRepository) Save(ctx context.Context, cfg *entity.TemplateConfig) error {
	document, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode template config: %w", err)
	}

	query := `
		INSERT INTO template_configs (id, document, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			document = excluded.document,
			updated_at = CURRENT_TIMESTAMP
	`
	if _, err := r.db.ExecContext(ctx, query, templateKey, string(document)); err != nil {
		r.logger.Error("Failed to save template config", zap.Error(err))
		return fmt.Errorf("failed to save template config: %w", err)
	}
	return nil
}
