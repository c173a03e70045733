package database_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/opencatalog/metacat/internal/config"
	"github.com/opencatalog/metacat/internal/database"
	"github.com/opencatalog/metacat/internal/logger"
	"github.com/opencatalog/metacat/internal/models"
	"github.com/opencatalog/metacat/internal/omtypes"
	"github.com/opencatalog/metacat/internal/repository"
)

// TestWithMariaDB tests the repository against a real MariaDB container
func TestWithMariaDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	image := os.Getenv("DB_IMAGE")
	if image == "" {
		image = "mariadb:11"
	}

	mariadbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      "testdb",
				"MYSQL_USER":          "testuser",
				"MYSQL_PASSWORD":      "testpass",
			},
			WaitingFor: wait.ForLog("ready for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariadbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	host, err := mariadbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	port, err := mariadbContainer.MappedPort(ctx, "3306")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	cfg := &config.Config{
		DBType:            "mysql",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "testdb",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
	}

	// Wait for database to be ready
	time.Sleep(5 * time.Second)

	db, err := database.Connect(cfg, logger.NewNop())
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Run("EntityRoundTrip", func(t *testing.T) {
		testEntityRoundTrip(t, db)
	})

	t.Run("RelationshipAndClassification", func(t *testing.T) {
		testRelationshipAndClassification(t, db)
	})
}

// TestWithPostgreSQL tests the repository against a real PostgreSQL container
func TestWithPostgreSQL(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	image := os.Getenv("POSTGRES_IMAGE")
	if image == "" {
		image = "postgres:16"
	}

	postgresContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_USER":     "testuser",
				"POSTGRES_DB":       "testdb",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	defer func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	}()

	host, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	port, err := postgresContainer.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	cfg := &config.Config{
		DBType:            "postgres",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "testdb",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
	}

	// Wait for database to be ready
	time.Sleep(2 * time.Second)

	db, err := database.Connect(cfg, logger.NewNop())
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Run("EntityRoundTrip", func(t *testing.T) {
		testEntityRoundTrip(t, db)
	})

	t.Run("RelationshipAndClassification", func(t *testing.T) {
		testRelationshipAndClassification(t, db)
	})
}

// testEntityRoundTrip creates an entity through the gateway and reads it back
func testEntityRoundTrip(t *testing.T, db *gorm.DB) {
	ctx := context.Background()
	repo := repository.NewGormMetadata(db, logger.NewNop())

	qualifiedName := "integration.asset." + uuid.NewString()
	guid, err := repo.CreateEntity(ctx, "tester", omtypes.AssetType, models.PropertyMap{
		"qualifiedName": qualifiedName,
		"displayName":   "Integration Asset",
	})
	if err != nil {
		t.Fatalf("Failed to create entity: %v", err)
	}

	entity, err := repo.GetEntityByGUID(ctx, "tester", guid, "assetGUID", omtypes.AssetType.Name)
	if err != nil {
		t.Fatalf("Failed to load entity: %v", err)
	}
	if models.GetString(entity.Properties, "displayName") != "Integration Asset" {
		t.Errorf("Unexpected displayName %v", entity.Properties["displayName"])
	}

	found, err := repo.GetUniqueEntityByName(ctx, "tester", qualifiedName, "qualifiedName",
		[]string{"qualifiedName"}, omtypes.AssetType)
	if err != nil {
		t.Fatalf("Failed to find entity by name: %v", err)
	}
	if found == nil || found.GUID != guid {
		t.Errorf("Expected to find entity %s by qualified name", guid)
	}
}

// testRelationshipAndClassification exercises the JSON and join paths that
// differ most between dialects
func testRelationshipAndClassification(t *testing.T, db *gorm.DB) {
	ctx := context.Background()
	repo := repository.NewGormMetadata(db, logger.NewNop())

	assetGUID, err := repo.CreateEntity(ctx, "tester", omtypes.AssetType, models.PropertyMap{
		"qualifiedName": "integration.rel.asset." + uuid.NewString(),
	})
	if err != nil {
		t.Fatalf("Failed to create asset: %v", err)
	}
	commentGUID, err := repo.CreateEntity(ctx, "tester", omtypes.CommentType, models.PropertyMap{
		"text": "integration comment",
	})
	if err != nil {
		t.Fatalf("Failed to create comment: %v", err)
	}

	_, err = repo.CreateRelationship(ctx, "tester", omtypes.AttachedCommentRel,
		assetGUID, commentGUID, models.PropertyMap{"isPublic": true})
	if err != nil {
		t.Fatalf("Failed to create relationship: %v", err)
	}

	rels, err := repo.GetRelationshipsByType(ctx, "tester", assetGUID, omtypes.AssetType.Name,
		omtypes.AttachedCommentRel)
	if err != nil {
		t.Fatalf("Failed to load relationships: %v", err)
	}
	if len(rels) != 1 {
		t.Fatalf("Expected 1 relationship, got %d", len(rels))
	}

	err = repo.ClassifyEntity(ctx, "tester", assetGUID, omtypes.AssetType.Name,
		omtypes.AssetZoneMembershipClassification,
		models.PropertyMap{"zoneMembership": []string{"quarantine"}})
	if err != nil {
		t.Fatalf("Failed to classify entity: %v", err)
	}

	entity, err := repo.GetEntityByGUID(ctx, "tester", assetGUID, "assetGUID", omtypes.AssetType.Name)
	if err != nil {
		t.Fatalf("Failed to reload entity: %v", err)
	}
	if len(entity.Classifications) != 1 || entity.Classifications[0].Name != "AssetZoneMembership" {
		t.Errorf("Expected the zone classification, got %v", entity.Classifications)
	}

	if err := repo.DeleteEntity(ctx, "tester", assetGUID, omtypes.AssetType, "", ""); err != nil {
		t.Fatalf("Failed to delete entity: %v", err)
	}
}
