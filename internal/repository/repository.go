// Package repository implements the metadata repository gateway: entity,
// relationship, and classification persistence behind a single interface.
// Handler services depend only on the Metadata interface; the gorm-backed
// implementation in this package is the platform's local repository.
//
// Single-entity and single-relationship operations are atomic. There are no
// cross-call transactions: find-then-act sequences composed by the handler
// layer keep their read-modify-write races (documented there).
package repository

import (
	"context"

	"github.com/opencatalog/metacat/internal/models"
	"github.com/opencatalog/metacat/internal/omtypes"
)

// Metadata is the repository gateway contract consumed by the handler layer.
//
// Error conventions:
//   - types.ErrNotFound for single-entity lookups by GUID that miss
//   - nil entity (no error) for lookups documented as "… or null"
//   - empty slice (never nil-as-sentinel) for list queries with no results
//   - types.ErrInvalidParameter for malformed GUIDs and bad paging
//   - types.ErrUserNotAuthorized when the authorizer rejects the caller
//   - types.ErrPropertyServer for any storage-level failure
type Metadata interface {
	CreateEntity(ctx context.Context, userID string, typeDef omtypes.TypeDef, properties models.PropertyMap) (string, error)
	UpdateEntityProperties(ctx context.Context, userID, entityGUID string, typeDef omtypes.TypeDef, properties models.PropertyMap) error

	// DeleteEntity removes the entity and every relationship touching it.
	// When validatingPropertyName is non-empty the stored property must match
	// validatingPropertyValue or the delete fails with an invalid-parameter
	// error.
	DeleteEntity(ctx context.Context, userID, entityGUID string, typeDef omtypes.TypeDef, validatingPropertyName, validatingPropertyValue string) error

	// RemoveEntityOnLastUse deletes the entity only if no relationship still
	// references it.
	RemoveEntityOnLastUse(ctx context.Context, userID, entityGUID string, typeDef omtypes.TypeDef) error

	GetEntityByGUID(ctx context.Context, userID, guid, guidParameterName, expectedTypeName string) (*models.Entity, error)

	// GetUniqueEntityByName returns nil (no error) when no entity matches.
	GetUniqueEntityByName(ctx context.Context, userID, name, nameParameterName string, nameProperties []string, typeDef omtypes.TypeDef) (*models.Entity, error)

	GetEntitiesByName(ctx context.Context, userID, name string, nameProperties []string, typeName string, startFrom, pageSize int) ([]*models.Entity, error)

	// IsEntityKnown returns nil (no error) when the entity does not exist.
	IsEntityKnown(ctx context.Context, userID, guid, typeName string) (*models.Entity, error)

	ValidateEntityGUID(ctx context.Context, userID, guid, typeName, guidParameterName string) error

	CreateRelationship(ctx context.Context, userID string, relType omtypes.TypeDef, end1GUID, end2GUID string, properties models.PropertyMap) (string, error)
	DeleteRelationship(ctx context.Context, userID string, relType omtypes.TypeDef, relationshipGUID string) error

	// GetRelationshipsByType returns every relationship of the given type
	// touching the anchor, in (creation time, GUID) order.
	GetRelationshipsByType(ctx context.Context, userID, anchorGUID, anchorTypeName string, relType omtypes.TypeDef) ([]*models.Relationship, error)

	// GetPagedRelationshipsByType is the paged variant. Order is stable
	// within a query; callers must not assume more than that.
	GetPagedRelationshipsByType(ctx context.Context, userID, anchorGUID, anchorTypeName string, relType omtypes.TypeDef, startFrom, pageSize int) ([]*models.Relationship, error)

	// CountRelationshipsByType counts without fetching.
	CountRelationshipsByType(ctx context.Context, userID, anchorGUID, anchorTypeName string, relType omtypes.TypeDef) (int, error)

	// GetEntityForRelationship resolves the entity at the far end of the
	// relationship: end 2 when anchorAtEnd1, end 1 otherwise.
	GetEntityForRelationship(ctx context.Context, userID string, rel *models.Relationship, anchorAtEnd1 bool, expectedTypeName string) (*models.Entity, error)

	ClassifyEntity(ctx context.Context, userID, entityGUID, entityTypeName string, classification omtypes.TypeDef, properties models.PropertyMap) error
	ReclassifyEntity(ctx context.Context, userID, entityGUID, entityTypeName string, classification omtypes.TypeDef, properties models.PropertyMap) error
	DeclassifyEntity(ctx context.Context, userID, entityGUID, entityTypeName string, classification omtypes.TypeDef) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}

// Authorizer decides whether a caller may perform a repository operation.
// Authorization is entirely the gateway's concern; the handler layer passes
// rejections through unchanged.
type Authorizer interface {
	IsAuthorized(userID, operation string) bool
}

// permitAll is the default authorizer.
type permitAll struct{}

func (permitAll) IsAuthorized(string, string) bool { return true }

// Repository operation names passed to the Authorizer.
const (
	OpCreateEntity       = "create-entity"
	OpUpdateEntity       = "update-entity"
	OpDeleteEntity       = "delete-entity"
	OpCreateRelationship = "create-relationship"
	OpDeleteRelationship = "delete-relationship"
	OpClassifyEntity     = "classify-entity"
	OpDeclassifyEntity   = "declassify-entity"
	OpReclassifyEntity   = "reclassify-entity"
)
