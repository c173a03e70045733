package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/opencatalog/metacat/internal/services"
	"github.com/opencatalog/metacat/internal/utils"
)

// KnowledgeHandler handles meaning, location, note log, and last-attachment
// routes
type KnowledgeHandler struct {
	Meanings        *services.MeaningService
	Locations       *services.LocationService
	NoteLogs        *services.NoteLogService
	LastAttachments *services.LastAttachmentService
	Referenceables  *services.ReferenceableService
}

// GetMeaning handles GET /api/v1/:userId/meanings/:termGUID
// @Summary Get a glossary term
// @Tags Knowledge
// @Produce json
// @Param userId path string true "Caller identity"
// @Param termGUID path string true "Glossary term GUID"
// @Success 200 {object} beans.Meaning
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/meanings/{termGUID} [get]
func (h *KnowledgeHandler) GetMeaning(c *fiber.Ctx) error {
	meaning, err := h.Meanings.GetMeaning(c.Context(), callerID(c), c.Params("termGUID"))
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, meaning, fiber.StatusOK)
}

// GetMeaningsByName handles GET /api/v1/:userId/meanings/by-name/:name
// @Summary Find glossary terms by name
// @Tags Knowledge
// @Produce json
// @Param userId path string true "Caller identity"
// @Param name path string true "Name to match"
// @Param startFrom query int false "Paging offset"
// @Param pageSize query int true "Page size"
// @Success 200 {array} beans.Meaning
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /{userId}/meanings/by-name/{name} [get]
func (h *KnowledgeHandler) GetMeaningsByName(c *fiber.Ctx) error {
	startFrom, pageSize := parsePaging(c)
	meanings, err := h.Meanings.GetMeaningsByName(c.Context(), callerID(c), c.Params("name"), startFrom, pageSize)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, meanings, fiber.StatusOK)
}

// GetMeanings handles GET /api/v1/:userId/referenceables/:guid/meanings
// @Summary List the glossary terms assigned to an element
// @Tags Knowledge
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Param startFrom query int false "Paging offset"
// @Param pageSize query int true "Page size"
// @Success 200 {array} beans.Meaning
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /{userId}/referenceables/{guid}/meanings [get]
func (h *KnowledgeHandler) GetMeanings(c *fiber.Ctx) error {
	startFrom, pageSize := parsePaging(c)
	meanings, err := h.Meanings.GetMeanings(c.Context(), callerID(c), c.Params("guid"), anchorType(c), startFrom, pageSize)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, meanings, fiber.StatusOK)
}

// GetLocation handles GET /api/v1/:userId/locations/:locationGUID
// @Summary Get a location
// @Tags Knowledge
// @Produce json
// @Param userId path string true "Caller identity"
// @Param locationGUID path string true "Location GUID"
// @Success 200 {object} beans.Location
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/locations/{locationGUID} [get]
func (h *KnowledgeHandler) GetLocation(c *fiber.Ctx) error {
	location, err := h.Locations.GetLocation(c.Context(), callerID(c), c.Params("locationGUID"))
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, location, fiber.StatusOK)
}

// GetLocationsByName handles GET /api/v1/:userId/locations/by-name/:name
// @Summary Find locations by name
// @Tags Knowledge
// @Produce json
// @Param userId path string true "Caller identity"
// @Param name path string true "Name to match"
// @Param startFrom query int false "Paging offset"
// @Param pageSize query int true "Page size"
// @Success 200 {array} beans.Location
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /{userId}/locations/by-name/{name} [get]
func (h *KnowledgeHandler) GetLocationsByName(c *fiber.Ctx) error {
	startFrom, pageSize := parsePaging(c)
	locations, err := h.Locations.GetLocationsByName(c.Context(), callerID(c), c.Params("name"), startFrom, pageSize)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, locations, fiber.StatusOK)
}

// AddLocation handles POST /api/v1/:userId/referenceables/:guid/locations/:locationGUID
// @Summary Link a location to an element
// @Tags Knowledge
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Param locationGUID path string true "Location GUID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/referenceables/{guid}/locations/{locationGUID} [post]
func (h *KnowledgeHandler) AddLocation(c *fiber.Ctx) error {
	if err := h.Locations.AddLocation(c.Context(), callerID(c), c.Params("guid"), anchorType(c),
		c.Params("locationGUID")); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c)
}

// RemoveLocation handles DELETE /api/v1/:userId/referenceables/:guid/locations/:locationGUID
// @Summary Unlink a location from an element
// @Tags Knowledge
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Param locationGUID path string true "Location GUID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/referenceables/{guid}/locations/{locationGUID} [delete]
func (h *KnowledgeHandler) RemoveLocation(c *fiber.Ctx) error {
	if err := h.Locations.RemoveLocation(c.Context(), callerID(c), c.Params("guid"), anchorType(c),
		c.Params("locationGUID")); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c)
}

// CountLocations handles GET /api/v1/:userId/referenceables/:guid/locations/count
// @Summary Count the locations linked to an element
// @Tags Knowledge
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Success 200 {object} utils.CountResponseStruct
// @Router /{userId}/referenceables/{guid}/locations/count [get]
func (h *KnowledgeHandler) CountLocations(c *fiber.Ctx) error {
	count, err := h.Locations.CountKnownLocations(c.Context(), callerID(c), c.Params("guid"), anchorType(c))
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.CountResponse(c, count)
}

// GetNoteLogs handles GET /api/v1/:userId/referenceables/:guid/note-logs
// @Summary List the note logs on an element visible to the caller
// @Tags Knowledge
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Param startFrom query int false "Paging offset"
// @Param pageSize query int true "Page size"
// @Success 200 {array} beans.NoteLog
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /{userId}/referenceables/{guid}/note-logs [get]
func (h *KnowledgeHandler) GetNoteLogs(c *fiber.Ctx) error {
	startFrom, pageSize := parsePaging(c)
	logs, err := h.NoteLogs.GetNoteLogs(c.Context(), callerID(c), c.Params("guid"), anchorType(c), startFrom, pageSize)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, logs, fiber.StatusOK)
}

// CountNoteLogs handles GET /api/v1/:userId/referenceables/:guid/note-logs/count
// @Summary Count the note logs on an element visible to the caller
// @Tags Knowledge
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Success 200 {object} utils.CountResponseStruct
// @Router /{userId}/referenceables/{guid}/note-logs/count [get]
func (h *KnowledgeHandler) CountNoteLogs(c *fiber.Ctx) error {
	count, err := h.NoteLogs.CountNoteLogs(c.Context(), callerID(c), c.Params("guid"), anchorType(c))
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.CountResponse(c, count)
}

// GetNotes handles GET /api/v1/:userId/note-logs/:noteLogGUID/notes
// @Summary List the entries in a note log
// @Tags Knowledge
// @Produce json
// @Param userId path string true "Caller identity"
// @Param noteLogGUID path string true "Note log GUID"
// @Param startFrom query int false "Paging offset"
// @Param pageSize query int true "Page size"
// @Success 200 {array} beans.Note
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /{userId}/note-logs/{noteLogGUID}/notes [get]
func (h *KnowledgeHandler) GetNotes(c *fiber.Ctx) error {
	startFrom, pageSize := parsePaging(c)
	notes, err := h.NoteLogs.GetNotes(c.Context(), callerID(c), c.Params("noteLogGUID"), startFrom, pageSize)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, notes, fiber.StatusOK)
}

// CountNotes handles GET /api/v1/:userId/note-logs/:noteLogGUID/notes/count
// @Summary Count the entries in a note log
// @Tags Knowledge
// @Produce json
// @Param userId path string true "Caller identity"
// @Param noteLogGUID path string true "Note log GUID"
// @Success 200 {object} utils.CountResponseStruct
// @Router /{userId}/note-logs/{noteLogGUID}/notes/count [get]
func (h *KnowledgeHandler) CountNotes(c *fiber.Ctx) error {
	count, err := h.NoteLogs.CountNotes(c.Context(), callerID(c), c.Params("noteLogGUID"))
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.CountResponse(c, count)
}

// GetLastAttachment handles GET /api/v1/:userId/referenceables/:guid/last-attachment
// @Summary Get the most recent attachment change on an element
// @Tags Knowledge
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Success 200 {object} beans.LastAttachment
// @Success 204 "No attachment change has been tracked"
// @Router /{userId}/referenceables/{guid}/last-attachment [get]
func (h *KnowledgeHandler) GetLastAttachment(c *fiber.Ctx) error {
	last, err := h.LastAttachments.GetLastAttachment(c.Context(), callerID(c), c.Params("guid"), anchorType(c))
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	if last == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return utils.SuccessResponse(c, last, fiber.StatusOK)
}

// GetReferenceable handles GET /api/v1/:userId/referenceables/:guid
// @Summary Get the base form of any element
// @Tags Knowledge
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Element GUID"
// @Success 200 {object} beans.Referenceable
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/referenceables/{guid} [get]
func (h *KnowledgeHandler) GetReferenceable(c *fiber.Ctx) error {
	ref, err := h.Referenceables.GetReferenceableByGUID(c.Context(), callerID(c), c.Params("guid"))
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, ref, fiber.StatusOK)
}
