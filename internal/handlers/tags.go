package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/opencatalog/metacat/internal/services"
	"github.com/opencatalog/metacat/internal/utils"
)

// TagHandler handles informal tag routes
type TagHandler struct {
	Tags *services.TagService
}

// TagRequest is the body for tag create and update
type TagRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPrivate   bool   `json:"isPrivate"`
	IsPublic    bool   `json:"isPublic"`
}

// CreateTag handles POST /api/v1/:userId/tags
// @Summary Create a tag
// @Tags Tags
// @Accept json
// @Produce json
// @Param userId path string true "Caller identity"
// @Param tag body TagRequest true "Tag"
// @Success 201 {object} utils.GUIDResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /{userId}/tags [post]
func (h *TagHandler) CreateTag(c *fiber.Ctx) error {
	var req TagRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "invalid-parameter")
	}

	guid, err := h.Tags.CreateTag(c.Context(), callerID(c), req.Name, req.Description, req.IsPrivate)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.GUIDResponse(c, guid)
}

// UpdateTagDescription handles PUT /api/v1/:userId/tags/:tagGUID
// @Summary Update a tag's description
// @Tags Tags
// @Accept json
// @Produce json
// @Param userId path string true "Caller identity"
// @Param tagGUID path string true "Tag GUID"
// @Param tag body TagRequest true "New description"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/tags/{tagGUID} [put]
func (h *TagHandler) UpdateTagDescription(c *fiber.Ctx) error {
	var req TagRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "invalid-parameter")
	}

	if err := h.Tags.UpdateTagDescription(c.Context(), callerID(c), c.Params("tagGUID"), req.Description); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c)
}

// DeleteTag handles DELETE /api/v1/:userId/tags/:tagGUID
// @Summary Delete a tag
// @Description Delete the tag and every attachment of it
// @Tags Tags
// @Produce json
// @Param userId path string true "Caller identity"
// @Param tagGUID path string true "Tag GUID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/tags/{tagGUID} [delete]
func (h *TagHandler) DeleteTag(c *fiber.Ctx) error {
	if err := h.Tags.DeleteTag(c.Context(), callerID(c), c.Params("tagGUID")); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c)
}

// GetTag handles GET /api/v1/:userId/tags/:tagGUID
// @Summary Get a tag
// @Description Get a tag; another user's private tag reads as not found
// @Tags Tags
// @Produce json
// @Param userId path string true "Caller identity"
// @Param tagGUID path string true "Tag GUID"
// @Success 200 {object} beans.InformalTag
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/tags/{tagGUID} [get]
func (h *TagHandler) GetTag(c *fiber.Ctx) error {
	tag, err := h.Tags.GetTag(c.Context(), callerID(c), c.Params("tagGUID"))
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, tag, fiber.StatusOK)
}

// GetTagsByName handles GET /api/v1/:userId/tags/by-name/:name
// @Summary Find tags by name
// @Tags Tags
// @Produce json
// @Param userId path string true "Caller identity"
// @Param name path string true "Tag name"
// @Param startFrom query int false "Paging offset"
// @Param pageSize query int true "Page size"
// @Success 200 {array} beans.InformalTag
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /{userId}/tags/by-name/{name} [get]
func (h *TagHandler) GetTagsByName(c *fiber.Ctx) error {
	startFrom, pageSize := parsePaging(c)
	tags, err := h.Tags.GetTagsByName(c.Context(), callerID(c), c.Params("name"), startFrom, pageSize)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, tags, fiber.StatusOK)
}

// AttachTag handles POST /api/v1/:userId/referenceables/:guid/tags/:tagGUID
// @Summary Attach a tag to an element
// @Tags Tags
// @Accept json
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Param tagGUID path string true "Tag GUID"
// @Param visibility body VisibilityRequest true "Attachment visibility"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/referenceables/{guid}/tags/{tagGUID} [post]
func (h *TagHandler) AttachTag(c *fiber.Ctx) error {
	var req VisibilityRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "invalid-parameter")
	}

	if err := h.Tags.AddTagToReferenceable(c.Context(), callerID(c), c.Params("guid"), anchorType(c),
		c.Params("tagGUID"), req.IsPublic); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c)
}

// DetachTag handles DELETE /api/v1/:userId/referenceables/:guid/tags/:tagGUID
// @Summary Detach a tag from an element
// @Tags Tags
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Param tagGUID path string true "Tag GUID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/referenceables/{guid}/tags/{tagGUID} [delete]
func (h *TagHandler) DetachTag(c *fiber.Ctx) error {
	if err := h.Tags.RemoveTagFromReferenceable(c.Context(), callerID(c), c.Params("guid"), anchorType(c),
		c.Params("tagGUID")); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c)
}

// GetTags handles GET /api/v1/:userId/referenceables/:guid/tags
// @Summary List the tags on an element
// @Tags Tags
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Param startFrom query int false "Paging offset"
// @Param pageSize query int true "Page size"
// @Success 200 {array} beans.InformalTag
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /{userId}/referenceables/{guid}/tags [get]
func (h *TagHandler) GetTags(c *fiber.Ctx) error {
	startFrom, pageSize := parsePaging(c)
	tags, err := h.Tags.GetTags(c.Context(), callerID(c), c.Params("guid"), anchorType(c), startFrom, pageSize)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, tags, fiber.StatusOK)
}

// CountTags handles GET /api/v1/:userId/referenceables/:guid/tags/count
// @Summary Count the tags on an element
// @Tags Tags
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Success 200 {object} utils.CountResponseStruct
// @Router /{userId}/referenceables/{guid}/tags/count [get]
func (h *TagHandler) CountTags(c *fiber.Ctx) error {
	count, err := h.Tags.CountTags(c.Context(), callerID(c), c.Params("guid"), anchorType(c))
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.CountResponse(c, count)
}
