package services

import (
	"context"

	"github.com/opencatalog/metacat/internal/beans"
	"github.com/opencatalog/metacat/internal/repository"
)

// ReferenceableService provides the base operations shared by every typed
// element service.
type ReferenceableService struct {
	repo repository.Metadata
}

func NewReferenceableService(repo repository.Metadata) *ReferenceableService {
	return &ReferenceableService{repo: repo}
}

// GetReferenceableByGUID returns the base form of any referenceable element.
func (s *ReferenceableService) GetReferenceableByGUID(ctx context.Context, userID, guid string) (*beans.Referenceable, error) {
	const methodName = "getReferenceableByGUID"
	if err := validateUserID(userID, methodName); err != nil {
		return nil, err
	}
	if err := validateGUID(guid, "guid", methodName); err != nil {
		return nil, err
	}

	entity, err := s.repo.GetEntityByGUID(ctx, userID, guid, "guid", "")
	if err != nil {
		return nil, err
	}
	ref := referenceableOf(entity)
	return &ref, nil
}

// ValidateAnchor confirms that the anchor element exists and has the expected
// type. Callers attaching feedback use it before creating the attachment.
func (s *ReferenceableService) ValidateAnchor(ctx context.Context, userID, anchorGUID, anchorTypeName string) error {
	const methodName = "validateAnchor"
	if err := validateUserID(userID, methodName); err != nil {
		return err
	}
	if err := validateGUID(anchorGUID, "anchorGUID", methodName); err != nil {
		return err
	}
	return s.repo.ValidateEntityGUID(ctx, userID, anchorGUID, anchorTypeName, "anchorGUID")
}
