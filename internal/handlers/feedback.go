package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/opencatalog/metacat/internal/beans"
	"github.com/opencatalog/metacat/internal/services"
	"github.com/opencatalog/metacat/internal/utils"
)

// FeedbackHandler handles comment, like, and rating routes
type FeedbackHandler struct {
	Comments *services.CommentService
	Likes    *services.LikeService
	Ratings  *services.RatingService
}

// CommentRequest is the body for comment create and update
type CommentRequest struct {
	CommentType beans.CommentKind `json:"commentType"`
	CommentText string            `json:"commentText"`
	IsPublic    bool              `json:"isPublic"`
}

// RatingRequest is the body for rating create
type RatingRequest struct {
	StarRating beans.StarRating `json:"starRating"`
	Review     string           `json:"review"`
	IsPublic   bool             `json:"isPublic"`
}

// VisibilityRequest is the body for like create
type VisibilityRequest struct {
	IsPublic bool `json:"isPublic"`
}

// AddComment handles POST /api/v1/:userId/referenceables/:guid/comments
// @Summary Add a comment
// @Description Attach a new comment to an element
// @Tags Feedback
// @Accept json
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Param comment body CommentRequest true "Comment"
// @Success 201 {object} utils.GUIDResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/referenceables/{guid}/comments [post]
func (h *FeedbackHandler) AddComment(c *fiber.Ctx) error {
	var req CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "invalid-parameter")
	}

	guid, err := h.Comments.AddCommentToReferenceable(c.Context(), callerID(c), c.Params("guid"), anchorType(c),
		req.CommentType, req.CommentText, req.IsPublic)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.GUIDResponse(c, guid)
}

// AddCommentReply handles POST /api/v1/:userId/comments/:commentGUID/replies
// @Summary Reply to a comment
// @Tags Feedback
// @Accept json
// @Produce json
// @Param userId path string true "Caller identity"
// @Param commentGUID path string true "Comment being replied to"
// @Param comment body CommentRequest true "Reply"
// @Success 201 {object} utils.GUIDResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/comments/{commentGUID}/replies [post]
func (h *FeedbackHandler) AddCommentReply(c *fiber.Ctx) error {
	var req CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "invalid-parameter")
	}

	guid, err := h.Comments.AddCommentReply(c.Context(), callerID(c), c.Params("commentGUID"),
		req.CommentType, req.CommentText, req.IsPublic)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.GUIDResponse(c, guid)
}

// UpdateComment handles PUT /api/v1/:userId/comments/:commentGUID
// @Summary Update a comment
// @Tags Feedback
// @Accept json
// @Produce json
// @Param userId path string true "Caller identity"
// @Param commentGUID path string true "Comment GUID"
// @Param comment body CommentRequest true "New comment content"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/comments/{commentGUID} [put]
func (h *FeedbackHandler) UpdateComment(c *fiber.Ctx) error {
	var req CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "invalid-parameter")
	}

	if err := h.Comments.UpdateComment(c.Context(), callerID(c), c.Params("commentGUID"),
		req.CommentType, req.CommentText); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c)
}

// RemoveComment handles DELETE /api/v1/:userId/referenceables/:guid/comments/:commentGUID
// @Summary Remove a comment
// @Tags Feedback
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Param commentGUID path string true "Comment GUID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/referenceables/{guid}/comments/{commentGUID} [delete]
func (h *FeedbackHandler) RemoveComment(c *fiber.Ctx) error {
	if err := h.Comments.RemoveComment(c.Context(), callerID(c), c.Params("guid"), anchorType(c),
		c.Params("commentGUID")); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c)
}

// GetComments handles GET /api/v1/:userId/referenceables/:guid/comments
// @Summary List comments
// @Description Page through the comments on an element visible to the caller
// @Tags Feedback
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Param startFrom query int false "Paging offset"
// @Param pageSize query int true "Page size"
// @Success 200 {array} beans.Comment
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /{userId}/referenceables/{guid}/comments [get]
func (h *FeedbackHandler) GetComments(c *fiber.Ctx) error {
	startFrom, pageSize := parsePaging(c)
	comments, err := h.Comments.GetComments(c.Context(), callerID(c), c.Params("guid"), anchorType(c), startFrom, pageSize)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, comments, fiber.StatusOK)
}

// CountComments handles GET /api/v1/:userId/referenceables/:guid/comments/count
// @Summary Count comments
// @Tags Feedback
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Success 200 {object} utils.CountResponseStruct
// @Router /{userId}/referenceables/{guid}/comments/count [get]
func (h *FeedbackHandler) CountComments(c *fiber.Ctx) error {
	count, err := h.Comments.CountComments(c.Context(), callerID(c), c.Params("guid"), anchorType(c))
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.CountResponse(c, count)
}

// AddLike handles POST /api/v1/:userId/referenceables/:guid/likes
// @Summary Add a like
// @Description Record the caller's like; a previous like from the caller is replaced
// @Tags Feedback
// @Accept json
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Param like body VisibilityRequest true "Visibility"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/referenceables/{guid}/likes [post]
func (h *FeedbackHandler) AddLike(c *fiber.Ctx) error {
	var req VisibilityRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "invalid-parameter")
	}

	if err := h.Likes.AddLikeToReferenceable(c.Context(), callerID(c), c.Params("guid"), anchorType(c), req.IsPublic); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c)
}

// RemoveLike handles DELETE /api/v1/:userId/referenceables/:guid/likes
// @Summary Remove the caller's like
// @Tags Feedback
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/referenceables/{guid}/likes [delete]
func (h *FeedbackHandler) RemoveLike(c *fiber.Ctx) error {
	if err := h.Likes.RemoveLikeFromReferenceable(c.Context(), callerID(c), c.Params("guid"), anchorType(c)); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c)
}

// GetLikes handles GET /api/v1/:userId/referenceables/:guid/likes
// @Summary List likes
// @Tags Feedback
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Param startFrom query int false "Paging offset"
// @Param pageSize query int true "Page size"
// @Success 200 {array} beans.Like
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /{userId}/referenceables/{guid}/likes [get]
func (h *FeedbackHandler) GetLikes(c *fiber.Ctx) error {
	startFrom, pageSize := parsePaging(c)
	likes, err := h.Likes.GetLikes(c.Context(), callerID(c), c.Params("guid"), anchorType(c), startFrom, pageSize)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, likes, fiber.StatusOK)
}

// CountLikes handles GET /api/v1/:userId/referenceables/:guid/likes/count
// @Summary Count likes
// @Tags Feedback
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Success 200 {object} utils.CountResponseStruct
// @Router /{userId}/referenceables/{guid}/likes/count [get]
func (h *FeedbackHandler) CountLikes(c *fiber.Ctx) error {
	count, err := h.Likes.CountLikes(c.Context(), callerID(c), c.Params("guid"), anchorType(c))
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.CountResponse(c, count)
}

// AddRating handles POST /api/v1/:userId/referenceables/:guid/ratings
// @Summary Add a rating
// @Description Record the caller's star rating; a previous rating from the caller is replaced
// @Tags Feedback
// @Accept json
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Param rating body RatingRequest true "Rating"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/referenceables/{guid}/ratings [post]
func (h *FeedbackHandler) AddRating(c *fiber.Ctx) error {
	var req RatingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "invalid-parameter")
	}

	if err := h.Ratings.AddRatingToReferenceable(c.Context(), callerID(c), c.Params("guid"), anchorType(c),
		req.StarRating, req.Review, req.IsPublic); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c)
}

// RemoveRating handles DELETE /api/v1/:userId/referenceables/:guid/ratings
// @Summary Remove the caller's rating
// @Tags Feedback
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/referenceables/{guid}/ratings [delete]
func (h *FeedbackHandler) RemoveRating(c *fiber.Ctx) error {
	if err := h.Ratings.RemoveRatingFromReferenceable(c.Context(), callerID(c), c.Params("guid"), anchorType(c)); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c)
}

// GetRatings handles GET /api/v1/:userId/referenceables/:guid/ratings
// @Summary List ratings
// @Tags Feedback
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Param startFrom query int false "Paging offset"
// @Param pageSize query int true "Page size"
// @Success 200 {array} beans.Rating
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /{userId}/referenceables/{guid}/ratings [get]
func (h *FeedbackHandler) GetRatings(c *fiber.Ctx) error {
	startFrom, pageSize := parsePaging(c)
	ratings, err := h.Ratings.GetRatings(c.Context(), callerID(c), c.Params("guid"), anchorType(c), startFrom, pageSize)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, ratings, fiber.StatusOK)
}

// CountRatings handles GET /api/v1/:userId/referenceables/:guid/ratings/count
// @Summary Count ratings
// @Tags Feedback
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Success 200 {object} utils.CountResponseStruct
// @Router /{userId}/referenceables/{guid}/ratings/count [get]
func (h *FeedbackHandler) CountRatings(c *fiber.Ctx) error {
	count, err := h.Ratings.CountRatings(c.Context(), callerID(c), c.Params("guid"), anchorType(c))
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.CountResponse(c, count)
}
