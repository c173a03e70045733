package services

import (
	"context"

	"github.com/opencatalog/metacat/internal/beans"
	"github.com/opencatalog/metacat/internal/models"
	"github.com/opencatalog/metacat/internal/omtypes"
	"github.com/opencatalog/metacat/internal/repository"
	"github.com/opencatalog/metacat/internal/types"
)

// ConnectorTypeService manages connector type definitions, shared records
// with the same save-by-qualified-name semantics as endpoints.
type ConnectorTypeService struct {
	repo repository.Metadata
}

func NewConnectorTypeService(repo repository.Metadata) *ConnectorTypeService {
	return &ConnectorTypeService{repo: repo}
}

// SaveConnectorType creates the connector type, or updates the one with the
// same qualified name. The lookup and the write are separate repository
// calls, same caveat as SaveEndpoint.
func (s *ConnectorTypeService) SaveConnectorType(ctx context.Context, userID string, ct *beans.ConnectorType) (string, error) {
	const methodName = "saveConnectorType"
	if err := validateUserID(userID, methodName); err != nil {
		return "", err
	}
	if ct == nil {
		return "", types.NewInvalidParameterf("%s: connectorType is null", methodName)
	}
	if err := validateName(ct.QualifiedName, "qualifiedName", methodName); err != nil {
		return "", err
	}

	properties := connectorTypeProperties(ct)
	existing, err := s.repo.GetUniqueEntityByName(ctx, userID, ct.QualifiedName, "qualifiedName",
		[]string{omtypes.QualifiedNameProperty}, omtypes.ConnectorTypeType)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.GUID, s.repo.UpdateEntityProperties(ctx, userID, existing.GUID, omtypes.ConnectorTypeType, properties)
	}
	return s.repo.CreateEntity(ctx, userID, omtypes.ConnectorTypeType, properties)
}

// GetConnectorTypeByGUID returns the connector type with the given GUID.
func (s *ConnectorTypeService) GetConnectorTypeByGUID(ctx context.Context, userID, connectorTypeGUID string) (*beans.ConnectorType, error) {
	const methodName = "getConnectorTypeByGUID"
	if err := validateUserID(userID, methodName); err != nil {
		return nil, err
	}
	if err := validateGUID(connectorTypeGUID, "connectorTypeGUID", methodName); err != nil {
		return nil, err
	}

	entity, err := s.repo.GetEntityByGUID(ctx, userID, connectorTypeGUID, "connectorTypeGUID", omtypes.ConnectorTypeType.Name)
	if err != nil {
		return nil, err
	}
	return connectorTypeFromEntity(entity), nil
}

// GetConnectorTypeByName returns the connector type with the given qualified
// name, or nil when none exists.
func (s *ConnectorTypeService) GetConnectorTypeByName(ctx context.Context, userID, qualifiedName string) (*beans.ConnectorType, error) {
	const methodName = "getConnectorTypeByName"
	if err := validateUserID(userID, methodName); err != nil {
		return nil, err
	}
	if err := validateName(qualifiedName, "qualifiedName", methodName); err != nil {
		return nil, err
	}

	entity, err := s.repo.GetUniqueEntityByName(ctx, userID, qualifiedName, "qualifiedName",
		[]string{omtypes.QualifiedNameProperty}, omtypes.ConnectorTypeType)
	if err != nil || entity == nil {
		return nil, err
	}
	return connectorTypeFromEntity(entity), nil
}

// RemoveConnectorType deletes the connector type once nothing references it
// any more.
func (s *ConnectorTypeService) RemoveConnectorType(ctx context.Context, userID, connectorTypeGUID string) error {
	const methodName = "removeConnectorType"
	if err := validateUserID(userID, methodName); err != nil {
		return err
	}
	if err := validateGUID(connectorTypeGUID, "connectorTypeGUID", methodName); err != nil {
		return err
	}
	return s.repo.RemoveEntityOnLastUse(ctx, userID, connectorTypeGUID, omtypes.ConnectorTypeType)
}

func connectorTypeProperties(ct *beans.ConnectorType) models.PropertyMap {
	properties := models.PropertyMap{omtypes.QualifiedNameProperty: ct.QualifiedName}
	set := func(name, value string) {
		if value != "" {
			properties[name] = value
		}
	}
	set(omtypes.DisplayNameProperty, ct.DisplayName)
	set(omtypes.DescriptionProperty, ct.Description)
	set(omtypes.ConnectorProviderProperty, ct.ConnectorProviderClassName)
	return properties
}
