package services

import (
	"context"

	"github.com/opencatalog/metacat/internal/beans"
	"github.com/opencatalog/metacat/internal/models"
	"github.com/opencatalog/metacat/internal/omtypes"
	"github.com/opencatalog/metacat/internal/repository"
	"github.com/opencatalog/metacat/internal/types"
)

// EndpointService manages endpoint definitions. Endpoints are shared
// infrastructure records keyed by qualified name: Save looks the name up and
// then creates or updates. The lookup and the write are separate repository
// calls, so two concurrent saves of a new name can both create.
type EndpointService struct {
	repo repository.Metadata
}

func NewEndpointService(repo repository.Metadata) *EndpointService {
	return &EndpointService{repo: repo}
}

// SaveEndpoint creates the endpoint, or updates it when one with the same
// qualified name already exists. Returns the endpoint's GUID either way.
func (s *EndpointService) SaveEndpoint(ctx context.Context, userID string, endpoint *beans.Endpoint) (string, error) {
	const methodName = "saveEndpoint"
	if err := validateUserID(userID, methodName); err != nil {
		return "", err
	}
	if endpoint == nil {
		return "", types.NewInvalidParameterf("%s: endpoint is null", methodName)
	}
	if err := validateName(endpoint.QualifiedName, "qualifiedName", methodName); err != nil {
		return "", err
	}

	properties := endpointProperties(endpoint)
	existing, err := s.repo.GetUniqueEntityByName(ctx, userID, endpoint.QualifiedName, "qualifiedName",
		[]string{omtypes.QualifiedNameProperty}, omtypes.EndpointType)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.GUID, s.repo.UpdateEntityProperties(ctx, userID, existing.GUID, omtypes.EndpointType, properties)
	}
	return s.repo.CreateEntity(ctx, userID, omtypes.EndpointType, properties)
}

// GetEndpointByGUID returns the endpoint with the given GUID.
func (s *EndpointService) GetEndpointByGUID(ctx context.Context, userID, endpointGUID string) (*beans.Endpoint, error) {
	const methodName = "getEndpointByGUID"
	if err := validateUserID(userID, methodName); err != nil {
		return nil, err
	}
	if err := validateGUID(endpointGUID, "endpointGUID", methodName); err != nil {
		return nil, err
	}

	entity, err := s.repo.GetEntityByGUID(ctx, userID, endpointGUID, "endpointGUID", omtypes.EndpointType.Name)
	if err != nil {
		return nil, err
	}
	return endpointFromEntity(entity), nil
}

// GetEndpointByName returns the endpoint with the given qualified name, or
// nil when none exists.
func (s *EndpointService) GetEndpointByName(ctx context.Context, userID, qualifiedName string) (*beans.Endpoint, error) {
	const methodName = "getEndpointByName"
	if err := validateUserID(userID, methodName); err != nil {
		return nil, err
	}
	if err := validateName(qualifiedName, "qualifiedName", methodName); err != nil {
		return nil, err
	}

	entity, err := s.repo.GetUniqueEntityByName(ctx, userID, qualifiedName, "qualifiedName",
		[]string{omtypes.QualifiedNameProperty}, omtypes.EndpointType)
	if err != nil || entity == nil {
		return nil, err
	}
	return endpointFromEntity(entity), nil
}

// RemoveEndpoint deletes the endpoint once nothing references it any more.
// An endpoint still linked from a connection is left in place.
func (s *EndpointService) RemoveEndpoint(ctx context.Context, userID, endpointGUID string) error {
	const methodName = "removeEndpoint"
	if err := validateUserID(userID, methodName); err != nil {
		return err
	}
	if err := validateGUID(endpointGUID, "endpointGUID", methodName); err != nil {
		return err
	}
	return s.repo.RemoveEntityOnLastUse(ctx, userID, endpointGUID, omtypes.EndpointType)
}

func endpointProperties(endpoint *beans.Endpoint) models.PropertyMap {
	properties := models.PropertyMap{omtypes.QualifiedNameProperty: endpoint.QualifiedName}
	set := func(name, value string) {
		if value != "" {
			properties[name] = value
		}
	}
	set(omtypes.DisplayNameProperty, endpoint.DisplayName)
	set(omtypes.DescriptionProperty, endpoint.Description)
	set(omtypes.AddressProperty, endpoint.Address)
	set(omtypes.ProtocolProperty, endpoint.Protocol)
	set(omtypes.EncryptionMethodProperty, endpoint.EncryptionMethod)
	return properties
}
