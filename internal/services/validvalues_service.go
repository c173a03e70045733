package services

import (
	"context"

	"github.com/opencatalog/metacat/internal/beans"
	"github.com/opencatalog/metacat/internal/models"
	"github.com/opencatalog/metacat/internal/omtypes"
	"github.com/opencatalog/metacat/internal/repository"
	"github.com/opencatalog/metacat/internal/types"
)

// ValidValuesService manages valid value definitions, the sets that collect
// them, and the assignments that bind them to consuming elements. A set is a
// definition subtype, so sets can themselves be members of other sets.
type ValidValuesService struct {
	repo        repository.Metadata
	maxPageSize int
}

func NewValidValuesService(repo repository.Metadata, maxPageSize int) *ValidValuesService {
	return &ValidValuesService{repo: repo, maxPageSize: maxPageSize}
}

// CreateValidValueSet creates a new empty valid value set and returns its
// GUID.
func (s *ValidValuesService) CreateValidValueSet(ctx context.Context, userID string, value *beans.ValidValue) (string, error) {
	const methodName = "createValidValueSet"
	if err := s.validateCreate(userID, value, methodName); err != nil {
		return "", err
	}
	return s.repo.CreateEntity(ctx, userID, omtypes.ValidValuesSetType, validValueProperties(value))
}

// CreateValidValueDefinition creates a new valid value definition and, when
// setGUID is supplied, makes it a member of that set.
func (s *ValidValuesService) CreateValidValueDefinition(ctx context.Context, userID, setGUID string, value *beans.ValidValue) (string, error) {
	const methodName = "createValidValueDefinition"
	if err := s.validateCreate(userID, value, methodName); err != nil {
		return "", err
	}
	if setGUID != "" {
		if err := s.repo.ValidateEntityGUID(ctx, userID, setGUID, omtypes.ValidValuesSetType.Name, "setGUID"); err != nil {
			return "", err
		}
	}

	guid, err := s.repo.CreateEntity(ctx, userID, omtypes.ValidValueDefinitionType, validValueProperties(value))
	if err != nil {
		return "", err
	}
	if setGUID != "" {
		if _, err := s.repo.CreateRelationship(ctx, userID, omtypes.ValidValueMemberRel, setGUID, guid, nil); err != nil {
			return "", err
		}
	}
	return guid, nil
}

// UpdateValidValue replaces the properties of a valid value definition or
// set.
func (s *ValidValuesService) UpdateValidValue(ctx context.Context, userID, validValueGUID string, value *beans.ValidValue) error {
	const methodName = "updateValidValue"
	if err := s.validateCreate(userID, value, methodName); err != nil {
		return err
	}
	if err := validateGUID(validValueGUID, "validValueGUID", methodName); err != nil {
		return err
	}

	entity, err := s.repo.GetEntityByGUID(ctx, userID, validValueGUID, "validValueGUID", omtypes.ValidValueDefinitionType.Name)
	if err != nil {
		return err
	}
	typeDef := omtypes.ValidValueDefinitionType
	if entity.TypeName == omtypes.ValidValuesSetType.Name {
		typeDef = omtypes.ValidValuesSetType
	}
	return s.repo.UpdateEntityProperties(ctx, userID, validValueGUID, typeDef, validValueProperties(value))
}

// DeleteValidValue removes the definition or set after verifying the caller
// knows its qualified name. Memberships and assignments go with it.
func (s *ValidValuesService) DeleteValidValue(ctx context.Context, userID, validValueGUID, qualifiedName string) error {
	const methodName = "deleteValidValue"
	if err := validateUserID(userID, methodName); err != nil {
		return err
	}
	if err := validateGUID(validValueGUID, "validValueGUID", methodName); err != nil {
		return err
	}
	if err := validateName(qualifiedName, "qualifiedName", methodName); err != nil {
		return err
	}
	return s.repo.DeleteEntity(ctx, userID, validValueGUID, omtypes.ValidValueDefinitionType,
		omtypes.QualifiedNameProperty, qualifiedName)
}

// GetValidValueByGUID returns the definition or set with the given GUID.
func (s *ValidValuesService) GetValidValueByGUID(ctx context.Context, userID, validValueGUID string) (*beans.ValidValue, error) {
	const methodName = "getValidValueByGUID"
	if err := validateUserID(userID, methodName); err != nil {
		return nil, err
	}
	if err := validateGUID(validValueGUID, "validValueGUID", methodName); err != nil {
		return nil, err
	}

	entity, err := s.repo.GetEntityByGUID(ctx, userID, validValueGUID, "validValueGUID", omtypes.ValidValueDefinitionType.Name)
	if err != nil {
		return nil, err
	}
	return validValueFromEntity(entity), nil
}

// GetValidValueByName returns one page of definitions and sets matching the
// name.
func (s *ValidValuesService) GetValidValueByName(ctx context.Context, userID, name string, startFrom, pageSize int) ([]*beans.ValidValue, error) {
	const methodName = "getValidValueByName"
	if err := validateUserID(userID, methodName); err != nil {
		return nil, err
	}
	if err := validateName(name, "name", methodName); err != nil {
		return nil, err
	}
	effectivePageSize, err := validatePaging(startFrom, pageSize, s.maxPageSize, methodName)
	if err != nil {
		return nil, err
	}

	entities, err := s.repo.GetEntitiesByName(ctx, userID, name,
		[]string{omtypes.QualifiedNameProperty, omtypes.DisplayNameProperty},
		omtypes.ValidValueDefinitionType.Name, startFrom, effectivePageSize)
	if err != nil {
		return nil, err
	}

	values := make([]*beans.ValidValue, 0, len(entities))
	for _, entity := range entities {
		values = append(values, validValueFromEntity(entity))
	}
	return values, nil
}

// AttachValidValueToSet makes the definition a member of the set.
func (s *ValidValuesService) AttachValidValueToSet(ctx context.Context, userID, setGUID, validValueGUID string) error {
	const methodName = "attachValidValueToSet"
	if err := validateUserID(userID, methodName); err != nil {
		return err
	}
	if err := validateGUID(setGUID, "setGUID", methodName); err != nil {
		return err
	}
	if err := validateGUID(validValueGUID, "validValueGUID", methodName); err != nil {
		return err
	}
	if err := s.repo.ValidateEntityGUID(ctx, userID, setGUID, omtypes.ValidValuesSetType.Name, "setGUID"); err != nil {
		return err
	}
	if err := s.repo.ValidateEntityGUID(ctx, userID, validValueGUID, omtypes.ValidValueDefinitionType.Name, "validValueGUID"); err != nil {
		return err
	}

	_, err := s.repo.CreateRelationship(ctx, userID, omtypes.ValidValueMemberRel, setGUID, validValueGUID, nil)
	return err
}

// DetachValidValueFromSet removes the definition's membership in the set.
func (s *ValidValuesService) DetachValidValueFromSet(ctx context.Context, userID, setGUID, validValueGUID string) error {
	const methodName = "detachValidValueFromSet"
	if err := validateUserID(userID, methodName); err != nil {
		return err
	}
	if err := validateGUID(setGUID, "setGUID", methodName); err != nil {
		return err
	}
	if err := validateGUID(validValueGUID, "validValueGUID", methodName); err != nil {
		return err
	}

	rels, err := s.repo.GetRelationshipsByType(ctx, userID, setGUID, omtypes.ValidValuesSetType.Name, omtypes.ValidValueMemberRel)
	if err != nil {
		return err
	}
	for _, rel := range rels {
		if rel.End1GUID == setGUID && rel.End2GUID == validValueGUID {
			return s.repo.DeleteRelationship(ctx, userID, omtypes.ValidValueMemberRel, rel.GUID)
		}
	}
	return types.NewNotFoundf("%s: valid value %s is not a member of set %s", methodName, validValueGUID, setGUID)
}

// AssignValidValueToConsumer binds the valid value to a consuming element.
func (s *ValidValuesService) AssignValidValueToConsumer(ctx context.Context, userID, validValueGUID, consumerGUID string, strictRequirement bool) error {
	const methodName = "assignValidValueToConsumer"
	if err := validateUserID(userID, methodName); err != nil {
		return err
	}
	if err := validateGUID(validValueGUID, "validValueGUID", methodName); err != nil {
		return err
	}
	if err := validateGUID(consumerGUID, "consumerGUID", methodName); err != nil {
		return err
	}
	if err := s.repo.ValidateEntityGUID(ctx, userID, validValueGUID, omtypes.ValidValueDefinitionType.Name, "validValueGUID"); err != nil {
		return err
	}
	if err := s.repo.ValidateEntityGUID(ctx, userID, consumerGUID, "", "consumerGUID"); err != nil {
		return err
	}

	_, err := s.repo.CreateRelationship(ctx, userID, omtypes.ValidValuesAssignmentRel, consumerGUID, validValueGUID, models.PropertyMap{
		omtypes.StrictRequirementProp: strictRequirement,
	})
	return err
}

// UnassignValidValueFromConsumer removes the binding between the valid value
// and the consuming element.
func (s *ValidValuesService) UnassignValidValueFromConsumer(ctx context.Context, userID, validValueGUID, consumerGUID string) error {
	const methodName = "unassignValidValueFromConsumer"
	if err := validateUserID(userID, methodName); err != nil {
		return err
	}
	if err := validateGUID(validValueGUID, "validValueGUID", methodName); err != nil {
		return err
	}
	if err := validateGUID(consumerGUID, "consumerGUID", methodName); err != nil {
		return err
	}

	rels, err := s.repo.GetRelationshipsByType(ctx, userID, validValueGUID, omtypes.ValidValueDefinitionType.Name, omtypes.ValidValuesAssignmentRel)
	if err != nil {
		return err
	}
	for _, rel := range rels {
		if rel.End1GUID == consumerGUID && rel.End2GUID == validValueGUID {
			return s.repo.DeleteRelationship(ctx, userID, omtypes.ValidValuesAssignmentRel, rel.GUID)
		}
	}
	return types.NewNotFoundf("%s: valid value %s is not assigned to %s", methodName, validValueGUID, consumerGUID)
}

// GetValidValueSetMembers returns one page of the set's members.
func (s *ValidValuesService) GetValidValueSetMembers(ctx context.Context, userID, setGUID string, startFrom, pageSize int) ([]*beans.ValidValue, error) {
	const methodName = "getValidValueSetMembers"
	entities, err := s.pagedFarEnds(ctx, userID, setGUID, omtypes.ValidValuesSetType.Name,
		omtypes.ValidValueMemberRel, true, omtypes.ValidValueDefinitionType.Name, startFrom, pageSize, methodName)
	if err != nil {
		return nil, err
	}

	members := make([]*beans.ValidValue, 0, len(entities))
	for _, entity := range entities {
		members = append(members, validValueFromEntity(entity))
	}
	return members, nil
}

// GetSetsForValidValue returns one page of the sets the definition belongs
// to.
func (s *ValidValuesService) GetSetsForValidValue(ctx context.Context, userID, validValueGUID string, startFrom, pageSize int) ([]*beans.ValidValue, error) {
	const methodName = "getSetsForValidValue"
	entities, err := s.pagedFarEnds(ctx, userID, validValueGUID, omtypes.ValidValueDefinitionType.Name,
		omtypes.ValidValueMemberRel, false, omtypes.ValidValuesSetType.Name, startFrom, pageSize, methodName)
	if err != nil {
		return nil, err
	}

	sets := make([]*beans.ValidValue, 0, len(entities))
	for _, entity := range entities {
		sets = append(sets, validValueFromEntity(entity))
	}
	return sets, nil
}

// GetValidValuesAssignmentConsumers returns one page of the elements
// consuming the valid value, with the strictness of each assignment.
func (s *ValidValuesService) GetValidValuesAssignmentConsumers(ctx context.Context, userID, validValueGUID string, startFrom, pageSize int) ([]*beans.ValidValueConsumer, error) {
	const methodName = "getValidValuesAssignmentConsumers"
	if err := validateUserID(userID, methodName); err != nil {
		return nil, err
	}
	if err := validateGUID(validValueGUID, "validValueGUID", methodName); err != nil {
		return nil, err
	}
	effectivePageSize, err := validatePaging(startFrom, pageSize, s.maxPageSize, methodName)
	if err != nil {
		return nil, err
	}

	rels, err := s.repo.GetPagedRelationshipsByType(ctx, userID, validValueGUID, omtypes.ValidValueDefinitionType.Name,
		omtypes.ValidValuesAssignmentRel, startFrom, effectivePageSize)
	if err != nil {
		return nil, err
	}

	consumers := make([]*beans.ValidValueConsumer, 0, len(rels))
	for _, rel := range rels {
		if rel.End2GUID != validValueGUID {
			continue
		}
		entity, err := s.repo.GetEntityForRelationship(ctx, userID, rel, false, "")
		if err != nil {
			return nil, err
		}
		consumers = append(consumers, &beans.ValidValueConsumer{
			Consumer:          referenceableOf(entity),
			StrictRequirement: models.GetBool(rel.Properties, omtypes.StrictRequirementProp),
		})
	}
	return consumers, nil
}

// pagedFarEnds pages the anchor's relationships of the given type and
// resolves the entity at the far end of each. Sets are definition subtypes,
// so a membership scan can also surface relationships where the anchor sits
// at the opposite end; those are skipped.
func (s *ValidValuesService) pagedFarEnds(ctx context.Context, userID, anchorGUID, anchorTypeName string, relType omtypes.TypeDef, anchorAtEnd1 bool, farTypeName string, startFrom, pageSize int, methodName string) ([]*models.Entity, error) {
	if err := validateUserID(userID, methodName); err != nil {
		return nil, err
	}
	if err := validateGUID(anchorGUID, "guid", methodName); err != nil {
		return nil, err
	}
	effectivePageSize, err := validatePaging(startFrom, pageSize, s.maxPageSize, methodName)
	if err != nil {
		return nil, err
	}

	rels, err := s.repo.GetPagedRelationshipsByType(ctx, userID, anchorGUID, anchorTypeName, relType, startFrom, effectivePageSize)
	if err != nil {
		return nil, err
	}

	entities := make([]*models.Entity, 0, len(rels))
	for _, rel := range rels {
		if anchorAtEnd1 && rel.End1GUID != anchorGUID {
			continue
		}
		if !anchorAtEnd1 && rel.End2GUID != anchorGUID {
			continue
		}
		entity, err := s.repo.GetEntityForRelationship(ctx, userID, rel, anchorAtEnd1, farTypeName)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (s *ValidValuesService) validateCreate(userID string, value *beans.ValidValue, methodName string) error {
	if err := validateUserID(userID, methodName); err != nil {
		return err
	}
	if value == nil {
		return types.NewInvalidParameterf("%s: validValue is null", methodName)
	}
	return validateName(value.QualifiedName, "qualifiedName", methodName)
}

func validValueProperties(value *beans.ValidValue) models.PropertyMap {
	properties := models.PropertyMap{
		omtypes.QualifiedNameProperty: value.QualifiedName,
		omtypes.IsDeprecatedProperty:  value.IsDeprecated,
	}
	set := func(name, v string) {
		if v != "" {
			properties[name] = v
		}
	}
	set(omtypes.DisplayNameProperty, value.DisplayName)
	set(omtypes.DescriptionProperty, value.Description)
	set(omtypes.UsageProperty, value.Usage)
	set(omtypes.ScopeProperty, value.Scope)
	set(omtypes.PreferredValueProperty, value.PreferredValue)
	return properties
}
