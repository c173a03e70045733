package services

import (
	"context"
	"fmt"

	"github.com/opencatalog/metacat/internal/beans"
	"github.com/opencatalog/metacat/internal/models"
	"github.com/opencatalog/metacat/internal/omtypes"
	"github.com/opencatalog/metacat/internal/repository"
	"github.com/opencatalog/metacat/internal/types"
)

// TagService manages informal tags and their attachments. A private tag is
// visible only to its creator, on every read path; the attachment to an
// element additionally carries its own isPublic flag, filtered like the rest
// of the feedback attachments.
type TagService struct {
	repo        repository.Metadata
	attachments *AttachmentService
	tracker     *LastAttachmentService
	maxPageSize int
}

func NewTagService(repo repository.Metadata, attachments *AttachmentService, tracker *LastAttachmentService, maxPageSize int) *TagService {
	return &TagService{repo: repo, attachments: attachments, tracker: tracker, maxPageSize: maxPageSize}
}

// CreateTag creates a new informal tag and returns its GUID.
func (s *TagService) CreateTag(ctx context.Context, userID, name, description string, isPrivate bool) (string, error) {
	const methodName = "createTag"
	if err := validateUserID(userID, methodName); err != nil {
		return "", err
	}
	if err := validateName(name, "tagName", methodName); err != nil {
		return "", err
	}

	properties := models.PropertyMap{
		omtypes.TagNameProperty:      name,
		omtypes.IsPrivateTagProperty: isPrivate,
	}
	if description != "" {
		properties[omtypes.TagDescriptionProperty] = description
	}
	return s.repo.CreateEntity(ctx, userID, omtypes.InformalTagType, properties)
}

// UpdateTagDescription replaces the tag's description.
func (s *TagService) UpdateTagDescription(ctx context.Context, userID, tagGUID, description string) error {
	const methodName = "updateTagDescription"
	if err := validateUserID(userID, methodName); err != nil {
		return err
	}
	if err := validateGUID(tagGUID, "tagGUID", methodName); err != nil {
		return err
	}

	entity, err := s.loadVisibleTag(ctx, userID, tagGUID, methodName)
	if err != nil {
		return err
	}

	properties := models.PropertyMap{}
	for k, v := range entity.Properties {
		properties[k] = v
	}
	properties[omtypes.TagDescriptionProperty] = description
	return s.repo.UpdateEntityProperties(ctx, userID, tagGUID, omtypes.InformalTagType, properties)
}

// DeleteTag removes the tag and every attachment of it to any element.
func (s *TagService) DeleteTag(ctx context.Context, userID, tagGUID string) error {
	const methodName = "deleteTag"
	if err := validateUserID(userID, methodName); err != nil {
		return err
	}
	if err := validateGUID(tagGUID, "tagGUID", methodName); err != nil {
		return err
	}
	if _, err := s.loadVisibleTag(ctx, userID, tagGUID, methodName); err != nil {
		return err
	}
	return s.repo.DeleteEntity(ctx, userID, tagGUID, omtypes.InformalTagType, "", "")
}

// GetTag returns the tag with the given GUID. A private tag belonging to
// another user reads as not found.
func (s *TagService) GetTag(ctx context.Context, userID, tagGUID string) (*beans.InformalTag, error) {
	const methodName = "getTag"
	if err := validateUserID(userID, methodName); err != nil {
		return nil, err
	}
	if err := validateGUID(tagGUID, "tagGUID", methodName); err != nil {
		return nil, err
	}

	entity, err := s.loadVisibleTag(ctx, userID, tagGUID, methodName)
	if err != nil {
		return nil, err
	}
	return tagFromEntity(entity), nil
}

// GetTagsByName returns one page of tags with the given name, omitting other
// users' private tags.
func (s *TagService) GetTagsByName(ctx context.Context, userID, name string, startFrom, pageSize int) ([]*beans.InformalTag, error) {
	const methodName = "getTagsByName"
	if err := validateUserID(userID, methodName); err != nil {
		return nil, err
	}
	if err := validateName(name, "tagName", methodName); err != nil {
		return nil, err
	}
	effectivePageSize, err := validatePaging(startFrom, pageSize, s.maxPageSize, methodName)
	if err != nil {
		return nil, err
	}

	entities, err := s.repo.GetEntitiesByName(ctx, userID, name,
		[]string{omtypes.TagNameProperty}, omtypes.InformalTagType.Name, startFrom, effectivePageSize)
	if err != nil {
		return nil, err
	}

	tags := make([]*beans.InformalTag, 0, len(entities))
	for _, entity := range entities {
		if s.tagHiddenFrom(userID, entity) {
			continue
		}
		tags = append(tags, tagFromEntity(entity))
	}
	return tags, nil
}

// AddTagToReferenceable attaches an existing tag to the anchor element.
func (s *TagService) AddTagToReferenceable(ctx context.Context, userID, anchorGUID, anchorTypeName, tagGUID string, isPublic bool) error {
	const methodName = "addTagToReferenceable"
	if err := validateUserID(userID, methodName); err != nil {
		return err
	}
	if err := validateGUID(anchorGUID, "anchorGUID", methodName); err != nil {
		return err
	}
	if err := validateGUID(tagGUID, "tagGUID", methodName); err != nil {
		return err
	}
	if _, err := s.loadVisibleTag(ctx, userID, tagGUID, methodName); err != nil {
		return err
	}
	if err := s.repo.ValidateEntityGUID(ctx, userID, anchorGUID, anchorTypeName, "anchorGUID"); err != nil {
		return err
	}

	_, err := s.repo.CreateRelationship(ctx, userID, omtypes.AttachedTagRel, anchorGUID, tagGUID, models.PropertyMap{
		omtypes.IsPublicProperty: isPublic,
	})
	if err != nil {
		return err
	}

	s.tracker.Record(ctx, userID, anchorGUID, anchorTypeName, tagGUID, omtypes.InformalTagType.Name,
		fmt.Sprintf("Tagged %s %s", anchorTypeName, anchorGUID))
	return nil
}

// RemoveTagFromReferenceable detaches the tag from the anchor element. The
// tag itself survives.
func (s *TagService) RemoveTagFromReferenceable(ctx context.Context, userID, anchorGUID, anchorTypeName, tagGUID string) error {
	const methodName = "removeTagFromReferenceable"
	if err := validateUserID(userID, methodName); err != nil {
		return err
	}
	if err := validateGUID(anchorGUID, "anchorGUID", methodName); err != nil {
		return err
	}
	if err := validateGUID(tagGUID, "tagGUID", methodName); err != nil {
		return err
	}

	rels, err := s.repo.GetRelationshipsByType(ctx, userID, anchorGUID, anchorTypeName, omtypes.AttachedTagRel)
	if err != nil {
		return err
	}
	for _, rel := range rels {
		if rel.End2GUID != tagGUID {
			continue
		}
		if err := s.repo.DeleteRelationship(ctx, userID, omtypes.AttachedTagRel, rel.GUID); err != nil {
			return err
		}
		s.tracker.Record(ctx, userID, anchorGUID, anchorTypeName, "", "",
			fmt.Sprintf("Removed tag from %s %s", anchorTypeName, anchorGUID))
		return nil
	}
	return types.NewNotFoundf("%s: tag %s is not attached to %s", methodName, tagGUID, anchorGUID)
}

// GetTags returns one page of the tags attached to the anchor that are
// visible to the caller: the attachment must be visible and the tag itself
// must not be another user's private tag.
func (s *TagService) GetTags(ctx context.Context, userID, anchorGUID, anchorTypeName string, startFrom, pageSize int) ([]*beans.InformalTag, error) {
	attached, err := s.attachments.GetAttachments(ctx, userID, anchorGUID, anchorTypeName,
		omtypes.AttachedTagRel, omtypes.InformalTagType.Name, startFrom, pageSize)
	if err != nil {
		return nil, err
	}

	tags := make([]*beans.InformalTag, 0, len(attached))
	for _, a := range attached {
		if s.tagHiddenFrom(userID, a.Entity) {
			continue
		}
		tags = append(tags, tagFromEntity(a.Entity))
	}
	return tags, nil
}

// CountTags returns the number of tag attachments on the anchor visible to
// the caller.
func (s *TagService) CountTags(ctx context.Context, userID, anchorGUID, anchorTypeName string) (int, error) {
	return s.attachments.CountAttachments(ctx, userID, anchorGUID, anchorTypeName, omtypes.AttachedTagRel)
}

// loadVisibleTag loads the tag, reporting another user's private tag as not
// found.
func (s *TagService) loadVisibleTag(ctx context.Context, userID, tagGUID, methodName string) (*models.Entity, error) {
	entity, err := s.repo.GetEntityByGUID(ctx, userID, tagGUID, "tagGUID", omtypes.InformalTagType.Name)
	if err != nil {
		return nil, err
	}
	if s.tagHiddenFrom(userID, entity) {
		return nil, types.NewNotFoundf("%s: tag %s not found", methodName, tagGUID)
	}
	return entity, nil
}

func (s *TagService) tagHiddenFrom(userID string, entity *models.Entity) bool {
	return models.GetBool(entity.Properties, omtypes.IsPrivateTagProperty) && entity.CreatedBy != userID
}
