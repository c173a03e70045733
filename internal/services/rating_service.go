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

// RatingService manages star-rating feedback. Same singleton-per-user
// semantics as likes: adding a rating replaces the caller's previous one.
type RatingService struct {
	repo        repository.Metadata
	attachments *AttachmentService
	tracker     *LastAttachmentService
}

func NewRatingService(repo repository.Metadata, attachments *AttachmentService, tracker *LastAttachmentService) *RatingService {
	return &RatingService{repo: repo, attachments: attachments, tracker: tracker}
}

// AddRatingToReferenceable records the caller's star rating and optional
// review text on the anchor. An existing rating from the same caller is
// removed first; the remove and create are separate repository calls.
func (s *RatingService) AddRatingToReferenceable(ctx context.Context, userID, anchorGUID, anchorTypeName string, stars beans.StarRating, review string, isPublic bool) error {
	const methodName = "addRatingToReferenceable"
	if err := validateUserID(userID, methodName); err != nil {
		return err
	}
	if err := validateGUID(anchorGUID, "anchorGUID", methodName); err != nil {
		return err
	}
	if err := validateEnum(stars, beans.ValidStarRatings, "starRating", methodName); err != nil {
		return err
	}
	if err := s.repo.ValidateEntityGUID(ctx, userID, anchorGUID, anchorTypeName, "anchorGUID"); err != nil {
		return err
	}

	existing, err := s.findUserRating(ctx, userID, anchorGUID, anchorTypeName)
	if err != nil {
		return err
	}
	if existing != nil {
		if err := s.repo.DeleteEntity(ctx, userID, existing.GUID, omtypes.RatingType, "", ""); err != nil {
			return err
		}
	}

	properties := models.PropertyMap{omtypes.StarRatingProperty: string(stars)}
	if review != "" {
		properties[omtypes.ReviewProperty] = review
	}
	ratingGUID, err := s.repo.CreateEntity(ctx, userID, omtypes.RatingType, properties)
	if err != nil {
		return err
	}
	_, err = s.repo.CreateRelationship(ctx, userID, omtypes.AttachedRatingRel, anchorGUID, ratingGUID, models.PropertyMap{
		omtypes.IsPublicProperty: isPublic,
	})
	if err != nil {
		return err
	}

	s.tracker.Record(ctx, userID, anchorGUID, anchorTypeName, ratingGUID, omtypes.RatingType.Name,
		fmt.Sprintf("New rating on %s %s", anchorTypeName, anchorGUID))
	return nil
}

// RemoveRatingFromReferenceable removes the caller's rating from the anchor.
func (s *RatingService) RemoveRatingFromReferenceable(ctx context.Context, userID, anchorGUID, anchorTypeName string) error {
	const methodName = "removeRatingFromReferenceable"
	if err := validateUserID(userID, methodName); err != nil {
		return err
	}
	if err := validateGUID(anchorGUID, "anchorGUID", methodName); err != nil {
		return err
	}

	existing, err := s.findUserRating(ctx, userID, anchorGUID, anchorTypeName)
	if err != nil {
		return err
	}
	if existing == nil {
		return types.NewNotFoundf("%s: no rating from user %s on %s", methodName, userID, anchorGUID)
	}
	if err := s.repo.DeleteEntity(ctx, userID, existing.GUID, omtypes.RatingType, "", ""); err != nil {
		return err
	}

	s.tracker.Record(ctx, userID, anchorGUID, anchorTypeName, "", "",
		fmt.Sprintf("Removed rating from %s %s", anchorTypeName, anchorGUID))
	return nil
}

// GetRatings returns one page of the ratings on the anchor visible to the
// caller.
func (s *RatingService) GetRatings(ctx context.Context, userID, anchorGUID, anchorTypeName string, startFrom, pageSize int) ([]*beans.Rating, error) {
	attached, err := s.attachments.GetAttachments(ctx, userID, anchorGUID, anchorTypeName,
		omtypes.AttachedRatingRel, omtypes.RatingType.Name, startFrom, pageSize)
	if err != nil {
		return nil, err
	}

	ratings := make([]*beans.Rating, 0, len(attached))
	for _, a := range attached {
		ratings = append(ratings, ratingFromEntity(a.Entity, a.Relationship))
	}
	return ratings, nil
}

// CountRatings returns the number of ratings on the anchor visible to the
// caller.
func (s *RatingService) CountRatings(ctx context.Context, userID, anchorGUID, anchorTypeName string) (int, error) {
	return s.attachments.CountAttachments(ctx, userID, anchorGUID, anchorTypeName, omtypes.AttachedRatingRel)
}

func (s *RatingService) findUserRating(ctx context.Context, userID, anchorGUID, anchorTypeName string) (*models.Entity, error) {
	rels, err := s.repo.GetRelationshipsByType(ctx, userID, anchorGUID, anchorTypeName, omtypes.AttachedRatingRel)
	if err != nil {
		return nil, err
	}
	for _, rel := range rels {
		if rel.CreatedBy != userID {
			continue
		}
		return s.repo.GetEntityForRelationship(ctx, userID, rel, true, omtypes.RatingType.Name)
	}
	return nil, nil
}
