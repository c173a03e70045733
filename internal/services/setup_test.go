package services_test

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/opencatalog/metacat/internal/beans"
	"github.com/opencatalog/metacat/internal/config"
	"github.com/opencatalog/metacat/internal/logger"
	"github.com/opencatalog/metacat/internal/models"
	"github.com/opencatalog/metacat/internal/repository"
	"github.com/opencatalog/metacat/internal/services"
)

// newTestRepo creates a Metadata gateway over an in-memory SQLite database
func newTestRepo(t *testing.T) repository.Metadata {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Entity{},
		&models.Relationship{},
		&models.Classification{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return repository.NewGormMetadata(db, logger.NewNop())
}

// newTestServices wires the full service layer over a fresh repository.
func newTestServices(t *testing.T) (*services.Services, repository.Metadata) {
	repo := newTestRepo(t)
	cfg := &config.Config{
		DBType:            "sqlite",
		DBDatabase:        ":memory:",
		LocalServerUserID: "metacatnpa",
		MaxPageSize:       100,
	}
	return services.New(cfg, repo, logger.NewNop()), repo
}

// createTestAsset stores an asset anchor and returns its GUID.
func createTestAsset(t *testing.T, svcs *services.Services, userID, qualifiedName string) string {
	t.Helper()
	guid, err := svcs.Asset.AddAsset(context.Background(), userID, &beans.Asset{
		Referenceable: beans.Referenceable{QualifiedName: qualifiedName},
		DisplayName:   "Test Asset",
	})
	if err != nil {
		t.Fatalf("Failed to create asset: %v", err)
	}
	return guid
}
