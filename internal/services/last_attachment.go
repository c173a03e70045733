package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/opencatalog/metacat/internal/beans"
	"github.com/opencatalog/metacat/internal/models"
	"github.com/opencatalog/metacat/internal/omtypes"
	"github.com/opencatalog/metacat/internal/repository"
)

// LastAttachmentService maintains the per-anchor singleton record of the most
// recent attachment change. Writes run under the local server identity, not
// the caller's, because the record is platform bookkeeping rather than caller
// content. The caller shows up only as the attachment owner property.
type LastAttachmentService struct {
	repo              repository.Metadata
	log               *zap.SugaredLogger
	localServerUserID string
}

func NewLastAttachmentService(repo repository.Metadata, log *zap.SugaredLogger, localServerUserID string) *LastAttachmentService {
	return &LastAttachmentService{repo: repo, log: log, localServerUserID: localServerUserID}
}

// GetLastAttachment returns the tracker record for the anchor, or nil when no
// attachment change has ever been tracked for it.
func (s *LastAttachmentService) GetLastAttachment(ctx context.Context, userID, anchorGUID, anchorTypeName string) (*beans.LastAttachment, error) {
	const methodName = "getLastAttachment"
	if err := validateUserID(userID, methodName); err != nil {
		return nil, err
	}
	if err := validateGUID(anchorGUID, "anchorGUID", methodName); err != nil {
		return nil, err
	}

	entity, err := s.findTrackerEntity(ctx, userID, anchorGUID, anchorTypeName)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, nil
	}
	return lastAttachmentFromEntity(entity), nil
}

// Update records an attachment change on the anchor. The first change creates
// the tracker entity and its link to the anchor; every later change rewrites
// the same entity in place. An empty attachmentGUID records a removal, with
// the description narrating what was removed.
func (s *LastAttachmentService) Update(ctx context.Context, callerID, anchorGUID, anchorTypeName, attachmentGUID, attachmentTypeName, description string) error {
	const methodName = "updateLastAttachment"
	if err := validateUserID(callerID, methodName); err != nil {
		return err
	}
	if err := validateGUID(anchorGUID, "anchorGUID", methodName); err != nil {
		return err
	}

	properties := models.PropertyMap{
		omtypes.AnchorGUIDProperty:      anchorGUID,
		omtypes.AnchorTypeProperty:      anchorTypeName,
		omtypes.AttachmentOwnerProperty: callerID,
		omtypes.DescriptionProperty:     description,
	}
	if attachmentGUID != "" {
		properties[omtypes.AttachmentGUIDProperty] = attachmentGUID
		properties[omtypes.AttachmentTypeProperty] = attachmentTypeName
	}

	existing, err := s.findTrackerEntity(ctx, s.localServerUserID, anchorGUID, anchorTypeName)
	if err != nil {
		return err
	}
	if existing != nil {
		return s.repo.UpdateEntityProperties(ctx, s.localServerUserID, existing.GUID, omtypes.LastAttachmentType, properties)
	}

	trackerGUID, err := s.repo.CreateEntity(ctx, s.localServerUserID, omtypes.LastAttachmentType, properties)
	if err != nil {
		return err
	}
	_, err = s.repo.CreateRelationship(ctx, s.localServerUserID, omtypes.LastAttachmentLinkRel, anchorGUID, trackerGUID, nil)
	return err
}

// Record is the fire-and-forget form used by the entity services after an
// attachment change. Tracker failures must not fail the operation that
// already happened, so they are logged and swallowed.
func (s *LastAttachmentService) Record(ctx context.Context, callerID, anchorGUID, anchorTypeName, attachmentGUID, attachmentTypeName, description string) {
	if err := s.Update(ctx, callerID, anchorGUID, anchorTypeName, attachmentGUID, attachmentTypeName, description); err != nil {
		s.log.Warnw("last attachment tracking failed",
			"anchorGUID", anchorGUID,
			"anchorType", anchorTypeName,
			"error", err)
	}
}

func (s *LastAttachmentService) findTrackerEntity(ctx context.Context, userID, anchorGUID, anchorTypeName string) (*models.Entity, error) {
	rels, err := s.repo.GetRelationshipsByType(ctx, userID, anchorGUID, anchorTypeName, omtypes.LastAttachmentLinkRel)
	if err != nil {
		return nil, err
	}
	if len(rels) == 0 {
		return nil, nil
	}
	return s.repo.GetEntityForRelationship(ctx, userID, rels[0], true, omtypes.LastAttachmentType.Name)
}
