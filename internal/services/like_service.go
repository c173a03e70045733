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

// LikeService manages like feedback. A user holds at most one like per
// element; adding again replaces the existing one.
type LikeService struct {
	repo        repository.Metadata
	attachments *AttachmentService
	tracker     *LastAttachmentService
}

func NewLikeService(repo repository.Metadata, attachments *AttachmentService, tracker *LastAttachmentService) *LikeService {
	return &LikeService{repo: repo, attachments: attachments, tracker: tracker}
}

// AddLikeToReferenceable records that the caller likes the anchor element.
// An existing like from the same caller is removed first, so the latest
// isPublic setting wins. The remove and the create are separate repository
// calls; a concurrent add by the same user can interleave between them.
func (s *LikeService) AddLikeToReferenceable(ctx context.Context, userID, anchorGUID, anchorTypeName string, isPublic bool) error {
	const methodName = "addLikeToReferenceable"
	if err := validateUserID(userID, methodName); err != nil {
		return err
	}
	if err := validateGUID(anchorGUID, "anchorGUID", methodName); err != nil {
		return err
	}
	if err := s.repo.ValidateEntityGUID(ctx, userID, anchorGUID, anchorTypeName, "anchorGUID"); err != nil {
		return err
	}

	existing, err := s.findUserLike(ctx, userID, anchorGUID, anchorTypeName)
	if err != nil {
		return err
	}
	if existing != nil {
		if err := s.repo.DeleteEntity(ctx, userID, existing.GUID, omtypes.LikeType, "", ""); err != nil {
			return err
		}
	}

	likeGUID, err := s.repo.CreateEntity(ctx, userID, omtypes.LikeType, nil)
	if err != nil {
		return err
	}
	_, err = s.repo.CreateRelationship(ctx, userID, omtypes.AttachedLikeRel, anchorGUID, likeGUID, models.PropertyMap{
		omtypes.IsPublicProperty: isPublic,
	})
	if err != nil {
		return err
	}

	s.tracker.Record(ctx, userID, anchorGUID, anchorTypeName, likeGUID, omtypes.LikeType.Name,
		fmt.Sprintf("New like on %s %s", anchorTypeName, anchorGUID))
	return nil
}

// RemoveLikeFromReferenceable removes the caller's like from the anchor.
func (s *LikeService) RemoveLikeFromReferenceable(ctx context.Context, userID, anchorGUID, anchorTypeName string) error {
	const methodName = "removeLikeFromReferenceable"
	if err := validateUserID(userID, methodName); err != nil {
		return err
	}
	if err := validateGUID(anchorGUID, "anchorGUID", methodName); err != nil {
		return err
	}

	existing, err := s.findUserLike(ctx, userID, anchorGUID, anchorTypeName)
	if err != nil {
		return err
	}
	if existing == nil {
		return types.NewNotFoundf("%s: no like from user %s on %s", methodName, userID, anchorGUID)
	}
	if err := s.repo.DeleteEntity(ctx, userID, existing.GUID, omtypes.LikeType, "", ""); err != nil {
		return err
	}

	s.tracker.Record(ctx, userID, anchorGUID, anchorTypeName, "", "",
		fmt.Sprintf("Removed like from %s %s", anchorTypeName, anchorGUID))
	return nil
}

// GetLikes returns one page of the likes on the anchor visible to the
// caller.
func (s *LikeService) GetLikes(ctx context.Context, userID, anchorGUID, anchorTypeName string, startFrom, pageSize int) ([]*beans.Like, error) {
	attached, err := s.attachments.GetAttachments(ctx, userID, anchorGUID, anchorTypeName,
		omtypes.AttachedLikeRel, omtypes.LikeType.Name, startFrom, pageSize)
	if err != nil {
		return nil, err
	}

	likes := make([]*beans.Like, 0, len(attached))
	for _, a := range attached {
		likes = append(likes, likeFromEntity(a.Entity, a.Relationship))
	}
	return likes, nil
}

// CountLikes returns the number of likes on the anchor visible to the caller.
func (s *LikeService) CountLikes(ctx context.Context, userID, anchorGUID, anchorTypeName string) (int, error) {
	return s.attachments.CountAttachments(ctx, userID, anchorGUID, anchorTypeName, omtypes.AttachedLikeRel)
}

// findUserLike locates the caller's own like on the anchor, nil when the
// caller has none.
func (s *LikeService) findUserLike(ctx context.Context, userID, anchorGUID, anchorTypeName string) (*models.Entity, error) {
	rels, err := s.repo.GetRelationshipsByType(ctx, userID, anchorGUID, anchorTypeName, omtypes.AttachedLikeRel)
	if err != nil {
		return nil, err
	}
	for _, rel := range rels {
		if rel.CreatedBy != userID {
			continue
		}
		return s.repo.GetEntityForRelationship(ctx, userID, rel, true, omtypes.LikeType.Name)
	}
	return nil, nil
}
