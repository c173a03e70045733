package services

import (
	"context"

	"github.com/opencatalog/metacat/internal/beans"
	"github.com/opencatalog/metacat/internal/omtypes"
	"github.com/opencatalog/metacat/internal/repository"
)

// MeaningService is the read side of glossary term assignments: terms are
// authored elsewhere, this service resolves what elements mean.
type MeaningService struct {
	repo        repository.Metadata
	attachments *AttachmentService
	maxPageSize int
}

func NewMeaningService(repo repository.Metadata, attachments *AttachmentService, maxPageSize int) *MeaningService {
	return &MeaningService{repo: repo, attachments: attachments, maxPageSize: maxPageSize}
}

// GetMeaning returns the glossary term with the given GUID.
func (s *MeaningService) GetMeaning(ctx context.Context, userID, termGUID string) (*beans.Meaning, error) {
	const methodName = "getMeaning"
	if err := validateUserID(userID, methodName); err != nil {
		return nil, err
	}
	if err := validateGUID(termGUID, "termGUID", methodName); err != nil {
		return nil, err
	}

	entity, err := s.repo.GetEntityByGUID(ctx, userID, termGUID, "termGUID", omtypes.GlossaryTermType.Name)
	if err != nil {
		return nil, err
	}
	return meaningFromEntity(entity), nil
}

// GetMeaningsByName returns one page of glossary terms matching the name.
func (s *MeaningService) GetMeaningsByName(ctx context.Context, userID, name string, startFrom, pageSize int) ([]*beans.Meaning, error) {
	const methodName = "getMeaningsByName"
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
		omtypes.GlossaryTermType.Name, startFrom, effectivePageSize)
	if err != nil {
		return nil, err
	}

	meanings := make([]*beans.Meaning, 0, len(entities))
	for _, entity := range entities {
		meanings = append(meanings, meaningFromEntity(entity))
	}
	return meanings, nil
}

// GetMeanings returns one page of the glossary terms assigned to the anchor
// element.
func (s *MeaningService) GetMeanings(ctx context.Context, userID, anchorGUID, anchorTypeName string, startFrom, pageSize int) ([]*beans.Meaning, error) {
	attached, err := s.attachments.GetAttachments(ctx, userID, anchorGUID, anchorTypeName,
		omtypes.SemanticAssignmentRel, omtypes.GlossaryTermType.Name, startFrom, pageSize)
	if err != nil {
		return nil, err
	}

	meanings := make([]*beans.Meaning, 0, len(attached))
	for _, a := range attached {
		meanings = append(meanings, meaningFromEntity(a.Entity))
	}
	return meanings, nil
}
