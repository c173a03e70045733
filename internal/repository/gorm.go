package repository

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/hints"

	"github.com/opencatalog/metacat/internal/models"
	"github.com/opencatalog/metacat/internal/omtypes"
	"github.com/opencatalog/metacat/internal/types"
)

// gormMetadata is the gorm-backed Metadata implementation.
type gormMetadata struct {
	db    *gorm.DB
	log   *zap.SugaredLogger
	authz Authorizer
}

// Option configures the repository.
type Option func(*gormMetadata)

// WithAuthorizer installs a caller authorizer. The default permits everything.
func WithAuthorizer(a Authorizer) Option {
	return func(m *gormMetadata) {
		m.authz = a
	}
}

// NewGormMetadata creates a Metadata gateway over the given gorm connection.
func NewGormMetadata(db *gorm.DB, log *zap.SugaredLogger, opts ...Option) Metadata {
	m := &gormMetadata{
		db:    db,
		log:   log,
		authz: permitAll{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// session returns a context-bound, quiet gorm handle.
func (m *gormMetadata) session(ctx context.Context) *gorm.DB {
	return m.db.WithContext(ctx).Session(&gorm.Session{Logger: m.db.Logger.LogMode(gormlogger.Silent)})
}

func (m *gormMetadata) authorize(userID, operation string) error {
	if !m.authz.IsAuthorized(userID, operation) {
		return types.NewUserNotAuthorizedf("user %s may not perform %s", userID, operation)
	}
	return nil
}

func (m *gormMetadata) CreateEntity(ctx context.Context, userID string, typeDef omtypes.TypeDef, properties models.PropertyMap) (string, error) {
	if err := m.authorize(userID, OpCreateEntity); err != nil {
		return "", err
	}

	entity := models.Entity{
		GUID:          uuid.NewString(),
		TypeGUID:      typeDef.GUID,
		TypeName:      typeDef.Name,
		QualifiedName: models.GetString(properties, omtypes.QualifiedNameProperty),
		Properties:    properties,
		CreatedBy:     userID,
		Version:       1,
	}
	if err := m.session(ctx).Create(&entity).Error; err != nil {
		return "", types.WrapPropertyServer(err, "create entity")
	}

	m.log.Debugw("Created entity", "guid", entity.GUID, "type", typeDef.Name, "user", userID)
	return entity.GUID, nil
}

func (m *gormMetadata) UpdateEntityProperties(ctx context.Context, userID, entityGUID string, typeDef omtypes.TypeDef, properties models.PropertyMap) error {
	if err := m.authorize(userID, OpUpdateEntity); err != nil {
		return err
	}

	entity, err := m.loadEntity(ctx, entityGUID, typeDef.Name, "entityGUID")
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"properties":     models.PropertyMap(properties),
		"qualified_name": models.GetString(properties, omtypes.QualifiedNameProperty),
		"updated_by":     userID,
		"version":        entity.Version + 1,
	}
	if err := m.session(ctx).Model(&models.Entity{}).Where("guid = ?", entityGUID).Updates(updates).Error; err != nil {
		return types.WrapPropertyServer(err, "update entity properties")
	}
	return nil
}

func (m *gormMetadata) DeleteEntity(ctx context.Context, userID, entityGUID string, typeDef omtypes.TypeDef, validatingPropertyName, validatingPropertyValue string) error {
	if err := m.authorize(userID, OpDeleteEntity); err != nil {
		return err
	}

	err := m.session(ctx).Transaction(func(tx *gorm.DB) error {
		var entity models.Entity
		if err := tx.Where("guid = ?", entityGUID).First(&entity).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NewNotFoundf("entity %s of type %s is not known", entityGUID, typeDef.Name)
			}
			return types.WrapPropertyServer(err, "delete entity lookup")
		}
		if !omtypes.IsTypeOf(entity.TypeName, typeDef.Name) {
			return types.NewInvalidParameterf("entity %s has type %s, not %s", entityGUID, entity.TypeName, typeDef.Name)
		}
		if validatingPropertyName != "" {
			stored := models.GetString(entity.Properties, validatingPropertyName)
			if stored != validatingPropertyValue {
				return types.NewInvalidParameterf("entity %s property %s is %q, expected %q",
					entityGUID, validatingPropertyName, stored, validatingPropertyValue)
			}
		}
		if err := tx.Where("end1_guid = ? OR end2_guid = ?", entityGUID, entityGUID).Delete(&models.Relationship{}).Error; err != nil {
			return types.WrapPropertyServer(err, "delete entity relationships")
		}
		if err := tx.Where("entity_guid = ?", entityGUID).Delete(&models.Classification{}).Error; err != nil {
			return types.WrapPropertyServer(err, "delete entity classifications")
		}
		if err := tx.Where("guid = ?", entityGUID).Delete(&models.Entity{}).Error; err != nil {
			return types.WrapPropertyServer(err, "delete entity")
		}
		return nil
	})
	if err != nil {
		return err
	}

	m.log.Debugw("Deleted entity", "guid", entityGUID, "type", typeDef.Name, "user", userID)
	return nil
}

func (m *gormMetadata) RemoveEntityOnLastUse(ctx context.Context, userID, entityGUID string, typeDef omtypes.TypeDef) error {
	if err := m.authorize(userID, OpDeleteEntity); err != nil {
		return err
	}

	return m.session(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Relationship{}).
			Where("end1_guid = ? OR end2_guid = ?", entityGUID, entityGUID).
			Count(&count).Error; err != nil {
			return types.WrapPropertyServer(err, "count references")
		}
		if count > 0 {
			return nil
		}
		if err := tx.Where("entity_guid = ?", entityGUID).Delete(&models.Classification{}).Error; err != nil {
			return types.WrapPropertyServer(err, "delete entity classifications")
		}
		if err := tx.Where("guid = ?", entityGUID).Delete(&models.Entity{}).Error; err != nil {
			return types.WrapPropertyServer(err, "delete unused entity")
		}
		return nil
	})
}

// loadEntity fetches by GUID, with not-found surfaced as an error and a
// supertype-aware type check.
func (m *gormMetadata) loadEntity(ctx context.Context, guid, expectedTypeName, guidParameterName string) (*models.Entity, error) {
	var entity models.Entity
	err := m.session(ctx).Preload("Classifications").Where("guid = ?", guid).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewNotFoundf("entity identified by %s=%s is not known", guidParameterName, guid)
		}
		return nil, types.WrapPropertyServer(err, "entity lookup")
	}
	if expectedTypeName != "" && !omtypes.IsTypeOf(entity.TypeName, expectedTypeName) {
		return nil, types.NewInvalidParameterf("entity %s has type %s, not the expected %s (parameter %s)",
			guid, entity.TypeName, expectedTypeName, guidParameterName)
	}
	return &entity, nil
}

func (m *gormMetadata) GetEntityByGUID(ctx context.Context, userID, guid, guidParameterName, expectedTypeName string) (*models.Entity, error) {
	return m.loadEntity(ctx, guid, expectedTypeName, guidParameterName)
}

func (m *gormMetadata) GetUniqueEntityByName(ctx context.Context, userID, name, nameParameterName string, nameProperties []string, typeDef omtypes.TypeDef) (*models.Entity, error) {
	entities, err := m.findEntitiesByName(ctx, name, nameProperties, typeDef.Name, 0, 2)
	if err != nil {
		return nil, err
	}
	switch len(entities) {
	case 0:
		return nil, nil
	case 1:
		return entities[0], nil
	default:
		return nil, types.NewPropertyServerf("multiple %s entities share the name %s=%q", typeDef.Name, nameParameterName, name)
	}
}

func (m *gormMetadata) GetEntitiesByName(ctx context.Context, userID, name string, nameProperties []string, typeName string, startFrom, pageSize int) ([]*models.Entity, error) {
	return m.findEntitiesByName(ctx, name, nameProperties, typeName, startFrom, pageSize)
}

func (m *gormMetadata) findEntitiesByName(ctx context.Context, name string, nameProperties []string, typeName string, startFrom, pageSize int) ([]*models.Entity, error) {
	tx := m.session(ctx).Model(&models.Entity{})
	if typeName != "" && typeName != omtypes.ReferenceableType.Name {
		tx = tx.Where("type_name IN ?", omtypes.TypeAndSubtypes(typeName))
	}

	// The qualified name has its own column; other name properties are
	// matched inside the JSON bag.
	nameQuery := m.db.Where("qualified_name = ?", name)
	for _, prop := range nameProperties {
		if prop == omtypes.QualifiedNameProperty {
			continue
		}
		nameQuery = nameQuery.Or(datatypes.JSONQuery("properties").Equals(name, prop))
	}
	tx = tx.Where(nameQuery)

	var entities []*models.Entity
	err := tx.Preload("Classifications").
		Order("created_at, guid").
		Offset(startFrom).Limit(pageSize).
		Find(&entities).Error
	if err != nil {
		return nil, types.WrapPropertyServer(err, "entity name query")
	}
	if entities == nil {
		entities = []*models.Entity{}
	}
	return entities, nil
}

func (m *gormMetadata) IsEntityKnown(ctx context.Context, userID, guid, typeName string) (*models.Entity, error) {
	entity, err := m.loadEntity(ctx, guid, typeName, "guid")
	if err != nil {
		if types.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return entity, nil
}

func (m *gormMetadata) ValidateEntityGUID(ctx context.Context, userID, guid, typeName, guidParameterName string) error {
	_, err := m.loadEntity(ctx, guid, typeName, guidParameterName)
	if types.IsNotFound(err) {
		return types.NewInvalidParameterf("entity identified by %s=%s is not known", guidParameterName, guid)
	}
	return err
}

func (m *gormMetadata) CreateRelationship(ctx context.Context, userID string, relType omtypes.TypeDef, end1GUID, end2GUID string, properties models.PropertyMap) (string, error) {
	if err := m.authorize(userID, OpCreateRelationship); err != nil {
		return "", err
	}
	if err := m.ValidateEntityGUID(ctx, userID, end1GUID, "", "end1GUID"); err != nil {
		return "", err
	}
	if err := m.ValidateEntityGUID(ctx, userID, end2GUID, "", "end2GUID"); err != nil {
		return "", err
	}

	rel := models.Relationship{
		GUID:       uuid.NewString(),
		TypeGUID:   relType.GUID,
		TypeName:   relType.Name,
		End1GUID:   end1GUID,
		End2GUID:   end2GUID,
		Properties: properties,
		CreatedBy:  userID,
		Version:    1,
	}
	if err := m.session(ctx).Create(&rel).Error; err != nil {
		return "", types.WrapPropertyServer(err, "create relationship")
	}
	return rel.GUID, nil
}

func (m *gormMetadata) DeleteRelationship(ctx context.Context, userID string, relType omtypes.TypeDef, relationshipGUID string) error {
	if err := m.authorize(userID, OpDeleteRelationship); err != nil {
		return err
	}
	result := m.session(ctx).
		Where("guid = ? AND type_name = ?", relationshipGUID, relType.Name).
		Delete(&models.Relationship{})
	if result.Error != nil {
		return types.WrapPropertyServer(result.Error, "delete relationship")
	}
	if result.RowsAffected == 0 {
		return types.NewNotFoundf("relationship %s of type %s is not known", relationshipGUID, relType.Name)
	}
	return nil
}

// relationshipScan builds the anchor-touching relationship query. On MySQL an
// index hint keeps the optimizer on the end1 composite index for large
// catalogs.
func (m *gormMetadata) relationshipScan(ctx context.Context, anchorGUID string, relType omtypes.TypeDef) *gorm.DB {
	tx := m.session(ctx).Model(&models.Relationship{})
	if m.db.Dialector.Name() == "mysql" {
		tx = tx.Clauses(hints.UseIndex("idx_rel_end1_type"))
	}
	return tx.Where("type_name = ? AND (end1_guid = ? OR end2_guid = ?)", relType.Name, anchorGUID, anchorGUID)
}

func (m *gormMetadata) GetRelationshipsByType(ctx context.Context, userID, anchorGUID, anchorTypeName string, relType omtypes.TypeDef) ([]*models.Relationship, error) {
	if err := m.ValidateEntityGUID(ctx, userID, anchorGUID, anchorTypeName, "anchorGUID"); err != nil {
		return nil, err
	}
	var rels []*models.Relationship
	err := m.relationshipScan(ctx, anchorGUID, relType).
		Order("created_at, guid").
		Find(&rels).Error
	if err != nil {
		return nil, types.WrapPropertyServer(err, "relationship query")
	}
	if rels == nil {
		rels = []*models.Relationship{}
	}
	return rels, nil
}

func (m *gormMetadata) GetPagedRelationshipsByType(ctx context.Context, userID, anchorGUID, anchorTypeName string, relType omtypes.TypeDef, startFrom, pageSize int) ([]*models.Relationship, error) {
	if err := m.ValidateEntityGUID(ctx, userID, anchorGUID, anchorTypeName, "anchorGUID"); err != nil {
		return nil, err
	}
	var rels []*models.Relationship
	err := m.relationshipScan(ctx, anchorGUID, relType).
		Order("created_at, guid").
		Offset(startFrom).Limit(pageSize).
		Find(&rels).Error
	if err != nil {
		return nil, types.WrapPropertyServer(err, "paged relationship query")
	}
	if rels == nil {
		rels = []*models.Relationship{}
	}
	return rels, nil
}

func (m *gormMetadata) CountRelationshipsByType(ctx context.Context, userID, anchorGUID, anchorTypeName string, relType omtypes.TypeDef) (int, error) {
	if err := m.ValidateEntityGUID(ctx, userID, anchorGUID, anchorTypeName, "anchorGUID"); err != nil {
		return 0, err
	}
	var count int64
	err := m.relationshipScan(ctx, anchorGUID, relType).Count(&count).Error
	if err != nil {
		return 0, types.WrapPropertyServer(err, "relationship count")
	}
	return int(count), nil
}

func (m *gormMetadata) GetEntityForRelationship(ctx context.Context, userID string, rel *models.Relationship, anchorAtEnd1 bool, expectedTypeName string) (*models.Entity, error) {
	guid := rel.End2GUID
	if !anchorAtEnd1 {
		guid = rel.End1GUID
	}
	entity, err := m.loadEntity(ctx, guid, expectedTypeName, "relationshipEnd")
	if err != nil {
		if types.IsNotFound(err) {
			// A dangling relationship end is repository corruption, not a
			// caller mistake.
			return nil, types.NewPropertyServerf("relationship %s references missing entity %s", rel.GUID, guid)
		}
		return nil, err
	}
	return entity, nil
}

func (m *gormMetadata) ClassifyEntity(ctx context.Context, userID, entityGUID, entityTypeName string, classification omtypes.TypeDef, properties models.PropertyMap) error {
	if err := m.authorize(userID, OpClassifyEntity); err != nil {
		return err
	}
	if err := m.ValidateEntityGUID(ctx, userID, entityGUID, entityTypeName, "entityGUID"); err != nil {
		return err
	}

	existing, err := m.findClassification(ctx, entityGUID, classification.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		return types.NewInvalidParameterf("entity %s already carries classification %s", entityGUID, classification.Name)
	}

	cls := models.Classification{
		EntityGUID: entityGUID,
		TypeGUID:   classification.GUID,
		Name:       classification.Name,
		Properties: properties,
		CreatedBy:  userID,
	}
	if err := m.session(ctx).Create(&cls).Error; err != nil {
		return types.WrapPropertyServer(err, "classify entity")
	}
	return nil
}

func (m *gormMetadata) ReclassifyEntity(ctx context.Context, userID, entityGUID, entityTypeName string, classification omtypes.TypeDef, properties models.PropertyMap) error {
	if err := m.authorize(userID, OpReclassifyEntity); err != nil {
		return err
	}
	existing, err := m.findClassification(ctx, entityGUID, classification.Name)
	if err != nil {
		return err
	}
	if existing == nil {
		return types.NewInvalidParameterf("entity %s does not carry classification %s", entityGUID, classification.Name)
	}
	err = m.session(ctx).Model(&models.Classification{}).
		Where("id = ?", existing.ID).
		Update("properties", models.PropertyMap(properties)).Error
	if err != nil {
		return types.WrapPropertyServer(err, "reclassify entity")
	}
	return nil
}

func (m *gormMetadata) DeclassifyEntity(ctx context.Context, userID, entityGUID, entityTypeName string, classification omtypes.TypeDef) error {
	if err := m.authorize(userID, OpDeclassifyEntity); err != nil {
		return err
	}
	result := m.session(ctx).
		Where("entity_guid = ? AND name = ?", entityGUID, classification.Name).
		Delete(&models.Classification{})
	if result.Error != nil {
		return types.WrapPropertyServer(result.Error, "declassify entity")
	}
	if result.RowsAffected == 0 {
		return types.NewInvalidParameterf("entity %s does not carry classification %s", entityGUID, classification.Name)
	}
	return nil
}

func (m *gormMetadata) findClassification(ctx context.Context, entityGUID, name string) (*models.Classification, error) {
	var cls models.Classification
	err := m.session(ctx).Where("entity_guid = ? AND name = ?", entityGUID, name).First(&cls).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, types.WrapPropertyServer(err, "classification lookup")
	}
	return &cls, nil
}

func (m *gormMetadata) Ping(ctx context.Context) error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return types.WrapPropertyServer(err, "repository connection")
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return types.WrapPropertyServer(err, "repository ping")
	}
	return nil
}
