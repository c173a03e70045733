package services

import (
	"context"
	"fmt"

	"github.com/opencatalog/metacat/internal/beans"
	"github.com/opencatalog/metacat/internal/omtypes"
	"github.com/opencatalog/metacat/internal/repository"
	"github.com/opencatalog/metacat/internal/types"
)

// LocationService manages where elements reside. Locations are shared
// records; attaching one to an anchor only links it.
type LocationService struct {
	repo        repository.Metadata
	attachments *AttachmentService
	tracker     *LastAttachmentService
	maxPageSize int
}

func NewLocationService(repo repository.Metadata, attachments *AttachmentService, tracker *LastAttachmentService, maxPageSize int) *LocationService {
	return &LocationService{repo: repo, attachments: attachments, tracker: tracker, maxPageSize: maxPageSize}
}

// GetLocation returns the location with the given GUID.
func (s *LocationService) GetLocation(ctx context.Context, userID, locationGUID string) (*beans.Location, error) {
	const methodName = "getLocation"
	if err := validateUserID(userID, methodName); err != nil {
		return nil, err
	}
	if err := validateGUID(locationGUID, "locationGUID", methodName); err != nil {
		return nil, err
	}

	entity, err := s.repo.GetEntityByGUID(ctx, userID, locationGUID, "locationGUID", omtypes.LocationType.Name)
	if err != nil {
		return nil, err
	}
	return locationFromEntity(entity), nil
}

// GetLocationsByName returns one page of locations matching the name.
func (s *LocationService) GetLocationsByName(ctx context.Context, userID, name string, startFrom, pageSize int) ([]*beans.Location, error) {
	const methodName = "getLocationsByName"
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
		omtypes.LocationType.Name, startFrom, effectivePageSize)
	if err != nil {
		return nil, err
	}

	locations := make([]*beans.Location, 0, len(entities))
	for _, entity := range entities {
		locations = append(locations, locationFromEntity(entity))
	}
	return locations, nil
}

// AddLocation links an existing location to the anchor element.
func (s *LocationService) AddLocation(ctx context.Context, userID, anchorGUID, anchorTypeName, locationGUID string) error {
	const methodName = "addLocation"
	if err := validateUserID(userID, methodName); err != nil {
		return err
	}
	if err := validateGUID(anchorGUID, "anchorGUID", methodName); err != nil {
		return err
	}
	if err := validateGUID(locationGUID, "locationGUID", methodName); err != nil {
		return err
	}
	if err := s.repo.ValidateEntityGUID(ctx, userID, locationGUID, omtypes.LocationType.Name, "locationGUID"); err != nil {
		return err
	}
	if err := s.repo.ValidateEntityGUID(ctx, userID, anchorGUID, anchorTypeName, "anchorGUID"); err != nil {
		return err
	}

	_, err := s.repo.CreateRelationship(ctx, userID, omtypes.AssetLocationRel, anchorGUID, locationGUID, nil)
	if err != nil {
		return err
	}

	s.tracker.Record(ctx, userID, anchorGUID, anchorTypeName, locationGUID, omtypes.LocationType.Name,
		fmt.Sprintf("Linked location to %s %s", anchorTypeName, anchorGUID))
	return nil
}

// RemoveLocation unlinks the location from the anchor element. The location
// itself survives.
func (s *LocationService) RemoveLocation(ctx context.Context, userID, anchorGUID, anchorTypeName, locationGUID string) error {
	const methodName = "removeLocation"
	if err := validateUserID(userID, methodName); err != nil {
		return err
	}
	if err := validateGUID(anchorGUID, "anchorGUID", methodName); err != nil {
		return err
	}
	if err := validateGUID(locationGUID, "locationGUID", methodName); err != nil {
		return err
	}

	rels, err := s.repo.GetRelationshipsByType(ctx, userID, anchorGUID, anchorTypeName, omtypes.AssetLocationRel)
	if err != nil {
		return err
	}
	for _, rel := range rels {
		if rel.End2GUID != locationGUID {
			continue
		}
		if err := s.repo.DeleteRelationship(ctx, userID, omtypes.AssetLocationRel, rel.GUID); err != nil {
			return err
		}
		s.tracker.Record(ctx, userID, anchorGUID, anchorTypeName, "", "",
			fmt.Sprintf("Unlinked location from %s %s", anchorTypeName, anchorGUID))
		return nil
	}
	return types.NewNotFoundf("%s: location %s is not linked to %s", methodName, locationGUID, anchorGUID)
}

// CountKnownLocations returns the number of locations linked to the anchor.
func (s *LocationService) CountKnownLocations(ctx context.Context, userID, anchorGUID, anchorTypeName string) (int, error) {
	return s.attachments.CountAttachments(ctx, userID, anchorGUID, anchorTypeName, omtypes.AssetLocationRel)
}
