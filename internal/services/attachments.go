package services

import (
	"context"

	"github.com/opencatalog/metacat/internal/models"
	"github.com/opencatalog/metacat/internal/omtypes"
	"github.com/opencatalog/metacat/internal/repository"
)

// VisibilityPredicate decides whether a relationship is visible to a caller.
type VisibilityPredicate func(userID string, rel *models.Relationship) bool

// FeedbackVisibility is the predicate for feedback attachments: the creator
// always sees their own feedback; everyone else sees it only when the
// relationship carries isPublic=true.
func FeedbackVisibility(userID string, rel *models.Relationship) bool {
	if rel.CreatedBy == userID {
		return true
	}
	return models.GetBool(rel.Properties, omtypes.IsPublicProperty)
}

// AttachedEntity pairs a relationship with the entity at its far end.
type AttachedEntity struct {
	Relationship *models.Relationship
	Entity       *models.Entity
}

// AttachmentService provides paged navigation and counting of typed
// relationships anchored at an entity. The anchor always occupies
// relationship end 1 and the attached element end 2; relationships that
// merely touch the anchor at end 2 (a comment that is itself attached to an
// asset, say) are not attachments of it and are skipped. With a visibility
// predicate installed the service becomes the visibility-scoped feedback
// variant; without one it serves governance attachments (certifications,
// licenses) unfiltered.
type AttachmentService struct {
	repo        repository.Metadata
	maxPageSize int
	visibleTo   VisibilityPredicate
}

// NewAttachmentService creates the unfiltered attachment service.
func NewAttachmentService(repo repository.Metadata, maxPageSize int) *AttachmentService {
	return &AttachmentService{repo: repo, maxPageSize: maxPageSize}
}

// NewFeedbackAttachmentService creates the visibility-scoped variant.
func NewFeedbackAttachmentService(repo repository.Metadata, maxPageSize int) *AttachmentService {
	return &AttachmentService{repo: repo, maxPageSize: maxPageSize, visibleTo: FeedbackVisibility}
}

func (a *AttachmentService) visible(userID string, rel *models.Relationship) bool {
	return a.visibleTo == nil || a.visibleTo(userID, rel)
}

// CountAttachments returns the number of relationships of the given type
// anchored at the entity that are visible to the caller. No relationships is
// a zero count, not an error.
func (a *AttachmentService) CountAttachments(ctx context.Context, userID, anchorGUID, anchorTypeName string, relType omtypes.TypeDef) (int, error) {
	const methodName = "countAttachments"
	if err := validateUserID(userID, methodName); err != nil {
		return 0, err
	}
	if err := validateGUID(anchorGUID, "anchorGUID", methodName); err != nil {
		return 0, err
	}

	rels, err := a.repo.GetRelationshipsByType(ctx, userID, anchorGUID, anchorTypeName, relType)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, rel := range rels {
		if rel.End1GUID == anchorGUID && a.visible(userID, rel) {
			count++
		}
	}
	return count, nil
}

// GetAttachmentLinks returns one page of relationships of the given type
// anchored at the entity. Order is the repository's native order, stable
// within a single query. An empty page is a normal outcome, returned as an
// empty slice.
//
// The underlying page is fetched first and then filtered for anchor end and
// visibility, so a page may come back smaller than requested even though
// later underlying pages still hold visible items. The page boundary does
// not realign after filtering.
func (a *AttachmentService) GetAttachmentLinks(ctx context.Context, userID, anchorGUID, anchorTypeName string, relType omtypes.TypeDef, startFrom, pageSize int) ([]*models.Relationship, error) {
	const methodName = "getAttachmentLinks"
	if err := validateUserID(userID, methodName); err != nil {
		return nil, err
	}
	if err := validateGUID(anchorGUID, "anchorGUID", methodName); err != nil {
		return nil, err
	}
	effectivePageSize, err := validatePaging(startFrom, pageSize, a.maxPageSize, methodName)
	if err != nil {
		return nil, err
	}

	rels, err := a.repo.GetPagedRelationshipsByType(ctx, userID, anchorGUID, anchorTypeName, relType, startFrom, effectivePageSize)
	if err != nil {
		return nil, err
	}

	visible := make([]*models.Relationship, 0, len(rels))
	for _, rel := range rels {
		if rel.End1GUID == anchorGUID && a.visible(userID, rel) {
			visible = append(visible, rel)
		}
	}
	return visible, nil
}

// GetAttachments resolves and returns the entities attached to the anchor
// through relationships of the given type. A failure resolving any
// individual entity aborts the whole call; there is no partial result.
func (a *AttachmentService) GetAttachments(ctx context.Context, userID, anchorGUID, anchorTypeName string, relType omtypes.TypeDef, entityTypeName string, startFrom, pageSize int) ([]AttachedEntity, error) {
	rels, err := a.GetAttachmentLinks(ctx, userID, anchorGUID, anchorTypeName, relType, startFrom, pageSize)
	if err != nil {
		return nil, err
	}

	attached := make([]AttachedEntity, 0, len(rels))
	for _, rel := range rels {
		entity, err := a.repo.GetEntityForRelationship(ctx, userID, rel, true, entityTypeName)
		if err != nil {
			return nil, err
		}
		attached = append(attached, AttachedEntity{Relationship: rel, Entity: entity})
	}
	return attached, nil
}
