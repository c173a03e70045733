package services

import (
	"context"

	"github.com/opencatalog/metacat/internal/beans"
	"github.com/opencatalog/metacat/internal/models"
	"github.com/opencatalog/metacat/internal/omtypes"
	"github.com/opencatalog/metacat/internal/repository"
	"github.com/opencatalog/metacat/internal/types"
)

// SoftwareServerCapabilityService manages the records describing deployed
// server capabilities, saved by qualified name like endpoints.
type SoftwareServerCapabilityService struct {
	repo repository.Metadata
}

func NewSoftwareServerCapabilityService(repo repository.Metadata) *SoftwareServerCapabilityService {
	return &SoftwareServerCapabilityService{repo: repo}
}

// SaveCapability creates the capability record, or updates the one with the
// same qualified name. Lookup and write are separate repository calls.
func (s *SoftwareServerCapabilityService) SaveCapability(ctx context.Context, userID string, capability *beans.SoftwareServerCapability) (string, error) {
	const methodName = "saveCapability"
	if err := validateUserID(userID, methodName); err != nil {
		return "", err
	}
	if capability == nil {
		return "", types.NewInvalidParameterf("%s: capability is null", methodName)
	}
	if err := validateName(capability.QualifiedName, "qualifiedName", methodName); err != nil {
		return "", err
	}

	properties := capabilityProperties(capability)
	existing, err := s.repo.GetUniqueEntityByName(ctx, userID, capability.QualifiedName, "qualifiedName",
		[]string{omtypes.QualifiedNameProperty}, omtypes.SoftwareServerCapabilityType)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.GUID, s.repo.UpdateEntityProperties(ctx, userID, existing.GUID, omtypes.SoftwareServerCapabilityType, properties)
	}
	return s.repo.CreateEntity(ctx, userID, omtypes.SoftwareServerCapabilityType, properties)
}

// GetCapabilityByGUID returns the capability with the given GUID.
func (s *SoftwareServerCapabilityService) GetCapabilityByGUID(ctx context.Context, userID, capabilityGUID string) (*beans.SoftwareServerCapability, error) {
	const methodName = "getCapabilityByGUID"
	if err := validateUserID(userID, methodName); err != nil {
		return nil, err
	}
	if err := validateGUID(capabilityGUID, "capabilityGUID", methodName); err != nil {
		return nil, err
	}

	entity, err := s.repo.GetEntityByGUID(ctx, userID, capabilityGUID, "capabilityGUID", omtypes.SoftwareServerCapabilityType.Name)
	if err != nil {
		return nil, err
	}
	return capabilityFromEntity(entity), nil
}

// GetCapabilityByQualifiedName returns the capability with the given
// qualified name, or nil when none exists.
func (s *SoftwareServerCapabilityService) GetCapabilityByQualifiedName(ctx context.Context, userID, qualifiedName string) (*beans.SoftwareServerCapability, error) {
	const methodName = "getCapabilityByQualifiedName"
	if err := validateUserID(userID, methodName); err != nil {
		return nil, err
	}
	if err := validateName(qualifiedName, "qualifiedName", methodName); err != nil {
		return nil, err
	}

	entity, err := s.repo.GetUniqueEntityByName(ctx, userID, qualifiedName, "qualifiedName",
		[]string{omtypes.QualifiedNameProperty}, omtypes.SoftwareServerCapabilityType)
	if err != nil || entity == nil {
		return nil, err
	}
	return capabilityFromEntity(entity), nil
}

func capabilityProperties(capability *beans.SoftwareServerCapability) models.PropertyMap {
	properties := models.PropertyMap{omtypes.QualifiedNameProperty: capability.QualifiedName}
	set := func(name, value string) {
		if value != "" {
			properties[name] = value
		}
	}
	set(omtypes.DisplayNameProperty, capability.DisplayName)
	set(omtypes.DescriptionProperty, capability.Description)
	set(omtypes.CapabilityTypeProperty, capability.CapabilityType)
	set(omtypes.VersionProperty, capability.Version)
	set(omtypes.PatchLevelProperty, capability.PatchLevel)
	set(omtypes.SourceProperty, capability.Source)
	return properties
}
