package repository

import (
	"context"
	"testing"
	"time"

	"github.com/krish-p25/invoice-generator/internal/domain/entity"
	"github.com/krish-p25/invoice-generator/migrations"
	"github.com/krish-p25/invoice-generator/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.New(database.Config{
		Path:            ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.NewMigrator(db, zap.NewNop()).Run(migrations.FS))
	return db
}

func TestPreviewRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("load before save returns nil", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPreviewRepository(db.DB, zap.NewNop())

		inv, err := repo.Load(ctx)

		require.NoError(t, err)
		assert.Nil(t, inv)
	})

	t.Run("save and load round trip", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPreviewRepository(db.DB, zap.NewNop())
		original := entity.SampleInvoice()

		require.NoError(t, repo.Save(ctx, original))

		loaded, err := repo.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, original.InvoiceNumber, loaded.InvoiceNumber)
		assert.Equal(t, original.GrandTotal, loaded.GrandTotal)
		assert.Len(t, loaded.LineItems, len(original.LineItems))
		assert.Equal(t, original.VATMode, loaded.VATMode)
	})

	t.Run("save is an upsert", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPreviewRepository(db.DB, zap.NewNop())

		first := entity.SampleInvoice()
		require.NoError(t, repo.Save(ctx, first))

		second := entity.SampleInvoice()
		second.InvoiceNumber = "INV-2026-0099"
		require.NoError(t, repo.Save(ctx, second))

		loaded, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "INV-2026-0099", loaded.InvoiceNumber)
	})
}

func TestTemplateRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("load before save returns nil", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTemplateRepository(db.DB, zap.NewNop())

		cfg, err := repo.Load(ctx)

		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("save and load round trip", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTemplateRepository(db.DB, zap.NewNop())
		original := entity.DefaultTemplate()
		original.GlobalStyles.PrimaryColor = "#abcdef"

		require.NoError(t, repo.Save(ctx, original))

		loaded, err := repo.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, "#abcdef", loaded.GlobalStyles.PrimaryColor)
		assert.Len(t, loaded.Fields, len(entity.AllFieldTypes))
		assert.NoError(t, loaded.Validate())
	})

	t.Run("save is an upsert", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTemplateRepository(db.DB, zap.NewNop())

		first := entity.DefaultTemplate()
		require.NoError(t, repo.Save(ctx, first))

		second := entity.DefaultTemplate()
		second.Name = "Replaced"
		require.NoError(t, repo.Save(ctx, second))

		loaded, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Replaced", loaded.Name)
	})
}
