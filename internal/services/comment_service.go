package services

import (
	"context"
	"fmt"

	"github.com/opencatalog/metacat/internal/beans"
	"github.com/opencatalog/metacat/internal/models"
	"github.com/opencatalog/metacat/internal/omtypes"
	"github.com/opencatalog/metacat/internal/repository"
)

// CommentService manages feedback comments and comment replies attached to
// referenceables.
type CommentService struct {
	repo        repository.Metadata
	attachments *AttachmentService
	tracker     *LastAttachmentService
}

func NewCommentService(repo repository.Metadata, attachments *AttachmentService, tracker *LastAttachmentService) *CommentService {
	return &CommentService{repo: repo, attachments: attachments, tracker: tracker}
}

// AddCommentToReferenceable attaches a new comment to the anchor element and
// returns the comment's GUID. Visibility is carried by the attachment, not
// the comment itself.
func (s *CommentService) AddCommentToReferenceable(ctx context.Context, userID, anchorGUID, anchorTypeName string, kind beans.CommentKind, text string, isPublic bool) (string, error) {
	const methodName = "addCommentToReferenceable"
	if err := s.validateCommentInput(userID, anchorGUID, kind, text, methodName); err != nil {
		return "", err
	}
	if err := s.repo.ValidateEntityGUID(ctx, userID, anchorGUID, anchorTypeName, "anchorGUID"); err != nil {
		return "", err
	}

	commentGUID, err := s.createAttachedComment(ctx, userID, anchorGUID, kind, text, isPublic)
	if err != nil {
		return "", err
	}

	s.tracker.Record(ctx, userID, anchorGUID, anchorTypeName, commentGUID, omtypes.CommentType.Name,
		fmt.Sprintf("New comment on %s %s", anchorTypeName, anchorGUID))
	return commentGUID, nil
}

// AddCommentReply attaches a new comment to an existing comment, forming the
// reply thread.
func (s *CommentService) AddCommentReply(ctx context.Context, userID, commentGUID string, kind beans.CommentKind, text string, isPublic bool) (string, error) {
	const methodName = "addCommentReply"
	if err := s.validateCommentInput(userID, commentGUID, kind, text, methodName); err != nil {
		return "", err
	}
	if err := s.repo.ValidateEntityGUID(ctx, userID, commentGUID, omtypes.CommentType.Name, "commentGUID"); err != nil {
		return "", err
	}

	replyGUID, err := s.createAttachedComment(ctx, userID, commentGUID, kind, text, isPublic)
	if err != nil {
		return "", err
	}

	s.tracker.Record(ctx, userID, commentGUID, omtypes.CommentType.Name, replyGUID, omtypes.CommentType.Name,
		fmt.Sprintf("New reply to comment %s", commentGUID))
	return replyGUID, nil
}

// UpdateComment replaces the kind and text of an existing comment.
func (s *CommentService) UpdateComment(ctx context.Context, userID, commentGUID string, kind beans.CommentKind, text string) error {
	const methodName = "updateComment"
	if err := s.validateCommentInput(userID, commentGUID, kind, text, methodName); err != nil {
		return err
	}
	if _, err := s.repo.GetEntityByGUID(ctx, userID, commentGUID, "commentGUID", omtypes.CommentType.Name); err != nil {
		return err
	}

	return s.repo.UpdateEntityProperties(ctx, userID, commentGUID, omtypes.CommentType, models.PropertyMap{
		omtypes.CommentTypeProperty: string(kind),
		omtypes.CommentTextProperty: text,
	})
}

// RemoveComment deletes the comment and every attachment touching it,
// including any replies' links to it.
func (s *CommentService) RemoveComment(ctx context.Context, userID, anchorGUID, anchorTypeName, commentGUID string) error {
	const methodName = "removeComment"
	if err := validateUserID(userID, methodName); err != nil {
		return err
	}
	if err := validateGUID(anchorGUID, "anchorGUID", methodName); err != nil {
		return err
	}
	if err := validateGUID(commentGUID, "commentGUID", methodName); err != nil {
		return err
	}

	if err := s.repo.DeleteEntity(ctx, userID, commentGUID, omtypes.CommentType, "", ""); err != nil {
		return err
	}

	s.tracker.Record(ctx, userID, anchorGUID, anchorTypeName, "", "",
		fmt.Sprintf("Removed comment from %s %s", anchorTypeName, anchorGUID))
	return nil
}

// GetComments returns one page of the comments on the anchor that are
// visible to the caller.
func (s *CommentService) GetComments(ctx context.Context, userID, anchorGUID, anchorTypeName string, startFrom, pageSize int) ([]*beans.Comment, error) {
	attached, err := s.attachments.GetAttachments(ctx, userID, anchorGUID, anchorTypeName,
		omtypes.AttachedCommentRel, omtypes.CommentType.Name, startFrom, pageSize)
	if err != nil {
		return nil, err
	}

	comments := make([]*beans.Comment, 0, len(attached))
	for _, a := range attached {
		comments = append(comments, commentFromEntity(a.Entity, a.Relationship))
	}
	return comments, nil
}

// CountComments returns the number of comments on the anchor visible to the
// caller.
func (s *CommentService) CountComments(ctx context.Context, userID, anchorGUID, anchorTypeName string) (int, error) {
	return s.attachments.CountAttachments(ctx, userID, anchorGUID, anchorTypeName, omtypes.AttachedCommentRel)
}

func (s *CommentService) createAttachedComment(ctx context.Context, userID, anchorGUID string, kind beans.CommentKind, text string, isPublic bool) (string, error) {
	commentGUID, err := s.repo.CreateEntity(ctx, userID, omtypes.CommentType, models.PropertyMap{
		omtypes.CommentTypeProperty: string(kind),
		omtypes.CommentTextProperty: text,
	})
	if err != nil {
		return "", err
	}

	_, err = s.repo.CreateRelationship(ctx, userID, omtypes.AttachedCommentRel, anchorGUID, commentGUID, models.PropertyMap{
		omtypes.IsPublicProperty: isPublic,
	})
	if err != nil {
		return "", err
	}
	return commentGUID, nil
}

func (s *CommentService) validateCommentInput(userID, guid string, kind beans.CommentKind, text, methodName string) error {
	if err := validateUserID(userID, methodName); err != nil {
		return err
	}
	if err := validateGUID(guid, "guid", methodName); err != nil {
		return err
	}
	if err := validateEnum(kind, beans.ValidCommentKinds, "commentType", methodName); err != nil {
		return err
	}
	return validateText(text, "commentText", methodName)
}
