package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/krish-p25/invoice-generator/internal/domain/entity"
	"go.uber.org/zap"
)

// TemplateRepository persists the template configuration across sessions.
type TemplateRepository interface {
	Load(ctx context.Context) (*entity.TemplateConfig, error)
	Save(ctx context.Context, cfg *entity.TemplateConfig) error
}

// GlobalStylesPatch is a partial global-styles update.
type GlobalStylesPatch struct {
	PrimaryColor   *string `json:"primary_color,omitempty"`
	SecondaryColor *string `json:"secondary_color,omitempty"`
	AccentColor    *string `json:"accent_color,omitempty"`
	FontFamily     *string `json:"font_family,omitempty"`
	Background     *string `json:"background_color,omitempty"`
}

// PositionPatch is a partial field-position update.
type PositionPatch struct {
	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
	ZIndex *int     `json:"z_index,omitempty"`
}

// StylePatch is a partial field-style update.
type StylePatch struct {
	FontSize    *float64 `json:"font_size,omitempty"`
	FontFamily  *string  `json:"font_family,omitempty"`
	FontWeight  *string  `json:"font_weight,omitempty"`
	Color       *string  `json:"color,omitempty"`
	Background  *string  `json:"background_color,omitempty"`
	BorderColor *string  `json:"border_color,omitempty"`
	BorderWidth *float64 `json:"border_width,omitempty"`
	Padding     *float64 `json:"padding,omitempty"`
	TextAlign   *string  `json:"text_align,omitempty"`
}

// LogoPatch is a partial logo update.
type LogoPatch struct {
	Path      *string        `json:"path,omitempty"`
	Position  *PositionPatch `json:"position,omitempty"`
	MaxWidth  *float64       `json:"max_width,omitempty"`
	MaxHeight *float64       `json:"max_height,omitempty"`
}

// TemplateStore owns the reusable template configuration. All mutation
// funnels through named operations that bump UpdatedAt and persist.
type TemplateStore struct {
	mu     sync.Mutex
	repo   TemplateRepository
	cfg    *entity.TemplateConfig
	logger *zap.Logger
}

// NewTemplateStore loads the persisted template config, falling back to
// the built-in default when nothing was saved yet.
func NewTemplateStore(ctx context.Context, repo TemplateRepository, logger *zap.Logger) (*TemplateStore, error) {
	cfg, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load template config: %w", err)
	}
	if cfg == nil {
		cfg = entity.DefaultTemplate()
		logger.Info("No persisted template config, seeding default")
	}
	if err := cfg.Validate(); err != nil {
		logger.Warn("Persisted template config invalid, resetting to default", zap.Error(err))
		cfg = entity.DefaultTemplate()
	}
	return &TemplateStore{repo: repo, cfg: cfg, logger: logger}, nil
}

// Config returns a clone of the current template configuration.
func (s *TemplateStore) Config() *entity.TemplateConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Clone()
}

// mutate applies fn to a clone and swaps it in only after a successful
// save, keeping memory and the persisted document in agreement.
func (s *TemplateStore) mutate(ctx context.Context, fn func(cfg *entity.TemplateConfig)) (*entity.TemplateConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cfg.Clone()
	fn(next)
	next.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, next); err != nil {
		s.logger.Error("Failed to persist template config", zap.Error(err))
		return nil, err
	}
	s.cfg = next
	return next.Clone(), nil
}

// UpdateGlobalStyles applies a partial update to the template-wide styles.
func (s *TemplateStore) UpdateGlobalStyles(ctx context.Context, patch GlobalStylesPatch) (*entity.TemplateConfig, error) {
	return s.mutate(ctx, func(cfg *entity.TemplateConfig) {
		if patch.PrimaryColor != nil {
			cfg.GlobalStyles.PrimaryColor = *patch.PrimaryColor
		}
		if patch.SecondaryColor != nil {
			cfg.GlobalStyles.SecondaryColor = *patch.SecondaryColor
		}
		if patch.AccentColor != nil {
			cfg.GlobalStyles.AccentColor = *patch.AccentColor
		}
		if patch.FontFamily != nil {
			cfg.GlobalStyles.FontFamily = *patch.FontFamily
		}
		if patch.Background != nil {
			cfg.GlobalStyles.Background = *patch.Background
		}
	})
}

// UpdateFieldVisibility shows or hides one template field.
func (s *TemplateStore) UpdateFieldVisibility(ctx context.Context, ft entity.FieldType, visible bool) (*entity.TemplateConfig, error) {
	if !validFieldType(ft) {
		return nil, fmt.Errorf("unknown field type: %q", ft)
	}
	return s.mutate(ctx, func(cfg *entity.TemplateConfig) {
		fc := cfg.Fields[ft]
		fc.Visible = visible
		cfg.Fields[ft] = fc
	})
}

// UpdateFieldPosition applies a partial position update to one field.
func (s *TemplateStore) UpdateFieldPosition(ctx context.Context, ft entity.FieldType, patch PositionPatch) (*entity.TemplateConfig, error) {
	if !validFieldType(ft) {
		return nil, fmt.Errorf("unknown field type: %q", ft)
	}
	return s.mutate(ctx, func(cfg *entity.TemplateConfig) {
		fc := cfg.Fields[ft]
		applyPositionPatch(&fc.Position, patch)
		cfg.Fields[ft] = fc
	})
}

// UpdateFieldStyle applies a partial style update to one field.
func (s *TemplateStore) UpdateFieldStyle(ctx context.Context, ft entity.FieldType, patch StylePatch) (*entity.TemplateConfig, error) {
	if !validFieldType(ft) {
		return nil, fmt.Errorf("unknown field type: %q", ft)
	}
	return s.mutate(ctx, func(cfg *entity.TemplateConfig) {
		fc := cfg.Fields[ft]
		if patch.FontSize != nil {
			fc.Style.FontSize = *patch.FontSize
		}
		if patch.FontFamily != nil {
			fc.Style.FontFamily = *patch.FontFamily
		}
		if patch.FontWeight != nil {
			fc.Style.FontWeight = *patch.FontWeight
		}
		if patch.Color != nil {
			fc.Style.Color = *patch.Color
		}
		if patch.Background != nil {
			fc.Style.Background = *patch.Background
		}
		if patch.BorderColor != nil {
			fc.Style.BorderColor = *patch.BorderColor
		}
		if patch.BorderWidth != nil {
			fc.Style.BorderWidth = *patch.BorderWidth
		}
		if patch.Padding != nil {
			fc.Style.Padding = *patch.Padding
		}
		if patch.TextAlign != nil {
			fc.Style.TextAlign = *patch.TextAlign
		}
		cfg.Fields[ft] = fc
	})
}

// UpdateLogo applies a partial update to the logo configuration.
func (s *TemplateStore) UpdateLogo(ctx context.Context, patch LogoPatch) (*entity.TemplateConfig, error) {
	return s.mutate(ctx, func(cfg *entity.TemplateConfig) {
		if patch.Path != nil {
			cfg.Logo.Path = *patch.Path
		}
		if patch.Position != nil {
			applyPositionPatch(&cfg.Logo.Position, *patch.Position)
		}
		if patch.MaxWidth != nil {
			cfg.Logo.MaxWidth = *patch.MaxWidth
		}
		if patch.MaxHeight != nil {
			cfg.Logo.MaxHeight = *patch.MaxHeight
		}
	})
}

// ReorderFields replaces the field order of one layout zone.
func (s *TemplateStore) ReorderFields(ctx context.Context, zone entity.LayoutZone, fields []entity.FieldType) (*entity.TemplateConfig, error) {
	for _, ft := range fields {
		if !validFieldType(ft) {
			return nil, fmt.Errorf("unknown field type: %q", ft)
		}
	}
	switch zone {
	case entity.ZoneHeader, entity.ZoneBody, entity.ZoneFooter:
	default:
		return nil, fmt.Errorf("unknown layout zone: %q", zone)
	}
	return s.mutate(ctx, func(cfg *entity.TemplateConfig) {
		ordered := append([]entity.FieldType(nil), fields...)
		switch zone {
		case entity.ZoneHeader:
			cfg.Layout.HeaderFields = ordered
		case entity.ZoneBody:
			cfg.Layout.BodyFields = ordered
		case entity.ZoneFooter:
			cfg.Layout.FooterFields = ordered
		}
	})
}

// Load replaces the whole configuration after validating it.
func (s *TemplateStore) Load(ctx context.Context, cfg *entity.TemplateConfig) (*entity.TemplateConfig, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid template config: %w", err)
	}
	return s.mutate(ctx, func(current *entity.TemplateConfig) {
		*current = *cfg.Clone()
	})
}

// ResetToDefault restores the built-in template.
func (s *TemplateStore) ResetToDefault(ctx context.Context) (*entity.TemplateConfig, error) {
	return s.mutate(ctx, func(cfg *entity.TemplateConfig) {
		*cfg = *entity.DefaultTemplate()
	})
}

func validFieldType(ft entity.FieldType) bool {
	for _, known := range entity.AllFieldTypes {
		if ft == known {
			return true
		}
	}
	return false
}

func applyPositionPatch(pos *entity.FieldPosition, patch PositionPatch) {
	if patch.X != nil {
		pos.X = *patch.X
	}
	if patch.Y != nil {
		pos.Y = *patch.Y
	}
	if patch.Width != nil {
		pos.Width = *patch.Width
	}
	if patch.Height != nil {
		pos.Height = *patch.Height
	}
	if patch.ZIndex != nil {
		pos.ZIndex = *patch.ZIndex
	}
}
