package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/opencatalog/metacat/internal/beans"
	"github.com/opencatalog/metacat/internal/services"
	"github.com/opencatalog/metacat/internal/utils"
)

// ValidValuesHandler handles valid value routes
type ValidValuesHandler struct {
	ValidValues *services.ValidValuesService
}

// CreateValidValueSet handles POST /api/v1/:userId/valid-values/sets
// @Summary Create a valid value set
// @Tags ValidValues
// @Accept json
// @Produce json
// @Param userId path string true "Caller identity"
// @Param validValue body beans.ValidValue true "Set definition"
// @Success 201 {object} utils.GUIDResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /{userId}/valid-values/sets [post]
func (h *ValidValuesHandler) CreateValidValueSet(c *fiber.Ctx) error {
	var value beans.ValidValue
	if err := c.BodyParser(&value); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "invalid-parameter")
	}

	guid, err := h.ValidValues.CreateValidValueSet(c.Context(), callerID(c), &value)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.GUIDResponse(c, guid)
}

// CreateValidValueDefinition handles POST /api/v1/:userId/valid-values
// @Summary Create a valid value definition
// @Description Create a definition, optionally placing it in the set named by the setGUID query parameter
// @Tags ValidValues
// @Accept json
// @Produce json
// @Param userId path string true "Caller identity"
// @Param setGUID query string false "Set to place the definition in"
// @Param validValue body beans.ValidValue true "Definition"
// @Success 201 {object} utils.GUIDResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /{userId}/valid-values [post]
func (h *ValidValuesHandler) CreateValidValueDefinition(c *fiber.Ctx) error {
	var value beans.ValidValue
	if err := c.BodyParser(&value); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "invalid-parameter")
	}

	guid, err := h.ValidValues.CreateValidValueDefinition(c.Context(), callerID(c), c.Query("setGUID"), &value)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.GUIDResponse(c, guid)
}

// UpdateValidValue handles PUT /api/v1/:userId/valid-values/:validValueGUID
// @Summary Update a valid value
// @Tags ValidValues
// @Accept json
// @Produce json
// @Param userId path string true "Caller identity"
// @Param validValueGUID path string true "Valid value GUID"
// @Param validValue body beans.ValidValue true "New state"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/valid-values/{validValueGUID} [put]
func (h *ValidValuesHandler) UpdateValidValue(c *fiber.Ctx) error {
	var value beans.ValidValue
	if err := c.BodyParser(&value); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "invalid-parameter")
	}

	if err := h.ValidValues.UpdateValidValue(c.Context(), callerID(c), c.Params("validValueGUID"), &value); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c)
}

// DeleteValidValue handles DELETE /api/v1/:userId/valid-values/:validValueGUID
// @Summary Delete a valid value
// @Description Delete the definition or set; the qualifiedName query parameter must match
// @Tags ValidValues
// @Produce json
// @Param userId path string true "Caller identity"
// @Param validValueGUID path string true "Valid value GUID"
// @Param qualifiedName query string true "Qualified name"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/valid-values/{validValueGUID} [delete]
func (h *ValidValuesHandler) DeleteValidValue(c *fiber.Ctx) error {
	if err := h.ValidValues.DeleteValidValue(c.Context(), callerID(c), c.Params("validValueGUID"),
		c.Query("qualifiedName")); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c)
}

// GetValidValue handles GET /api/v1/:userId/valid-values/:validValueGUID
// @Summary Get a valid value
// @Tags ValidValues
// @Produce json
// @Param userId path string true "Caller identity"
// @Param validValueGUID path string true "Valid value GUID"
// @Success 200 {object} beans.ValidValue
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/valid-values/{validValueGUID} [get]
func (h *ValidValuesHandler) GetValidValue(c *fiber.Ctx) error {
	value, err := h.ValidValues.GetValidValueByGUID(c.Context(), callerID(c), c.Params("validValueGUID"))
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, value, fiber.StatusOK)
}

// GetValidValuesByName handles GET /api/v1/:userId/valid-values/by-name/:name
// @Summary Find valid values by name
// @Tags ValidValues
// @Produce json
// @Param userId path string true "Caller identity"
// @Param name path string true "Name to match"
// @Param startFrom query int false "Paging offset"
// @Param pageSize query int true "Page size"
// @Success 200 {array} beans.ValidValue
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /{userId}/valid-values/by-name/{name} [get]
func (h *ValidValuesHandler) GetValidValuesByName(c *fiber.Ctx) error {
	startFrom, pageSize := parsePaging(c)
	values, err := h.ValidValues.GetValidValueByName(c.Context(), callerID(c), c.Params("name"), startFrom, pageSize)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, values, fiber.StatusOK)
}

// AttachToSet handles POST /api/v1/:userId/valid-values/sets/:setGUID/members/:validValueGUID
// @Summary Add a definition to a set
// @Tags ValidValues
// @Produce json
// @Param userId path string true "Caller identity"
// @Param setGUID path string true "Set GUID"
// @Param validValueGUID path string true "Definition GUID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/valid-values/sets/{setGUID}/members/{validValueGUID} [post]
func (h *ValidValuesHandler) AttachToSet(c *fiber.Ctx) error {
	if err := h.ValidValues.AttachValidValueToSet(c.Context(), callerID(c), c.Params("setGUID"),
		c.Params("validValueGUID")); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c)
}

// DetachFromSet handles DELETE /api/v1/:userId/valid-values/sets/:setGUID/members/:validValueGUID
// @Summary Remove a definition from a set
// @Tags ValidValues
// @Produce json
// @Param userId path string true "Caller identity"
// @Param setGUID path string true "Set GUID"
// @Param validValueGUID path string true "Definition GUID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/valid-values/sets/{setGUID}/members/{validValueGUID} [delete]
func (h *ValidValuesHandler) DetachFromSet(c *fiber.Ctx) error {
	if err := h.ValidValues.DetachValidValueFromSet(c.Context(), callerID(c), c.Params("setGUID"),
		c.Params("validValueGUID")); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c)
}

// AssignToConsumer handles POST /api/v1/:userId/valid-values/:validValueGUID/consumers/:consumerGUID
// @Summary Assign a valid value to a consuming element
// @Tags ValidValues
// @Produce json
// @Param userId path string true "Caller identity"
// @Param validValueGUID path string true "Valid value GUID"
// @Param consumerGUID path string true "Consuming element GUID"
// @Param strictRequirement query bool false "Whether the consumer must only use these values"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/valid-values/{validValueGUID}/consumers/{consumerGUID} [post]
func (h *ValidValuesHandler) AssignToConsumer(c *fiber.Ctx) error {
	if err := h.ValidValues.AssignValidValueToConsumer(c.Context(), callerID(c), c.Params("validValueGUID"),
		c.Params("consumerGUID"), c.QueryBool("strictRequirement", false)); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c)
}

// UnassignFromConsumer handles DELETE /api/v1/:userId/valid-values/:validValueGUID/consumers/:consumerGUID
// @Summary Remove a valid value assignment
// @Tags ValidValues
// @Produce json
// @Param userId path string true "Caller identity"
// @Param validValueGUID path string true "Valid value GUID"
// @Param consumerGUID path string true "Consuming element GUID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/valid-values/{validValueGUID}/consumers/{consumerGUID} [delete]
func (h *ValidValuesHandler) UnassignFromConsumer(c *fiber.Ctx) error {
	if err := h.ValidValues.UnassignValidValueFromConsumer(c.Context(), callerID(c), c.Params("validValueGUID"),
		c.Params("consumerGUID")); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c)
}

// GetSetMembers handles GET /api/v1/:userId/valid-values/sets/:setGUID/members
// @Summary List the members of a set
// @Tags ValidValues
// @Produce json
// @Param userId path string true "Caller identity"
// @Param setGUID path string true "Set GUID"
// @Param startFrom query int false "Paging offset"
// @Param pageSize query int true "Page size"
// @Success 200 {array} beans.ValidValue
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /{userId}/valid-values/sets/{setGUID}/members [get]
func (h *ValidValuesHandler) GetSetMembers(c *fiber.Ctx) error {
	startFrom, pageSize := parsePaging(c)
	members, err := h.ValidValues.GetValidValueSetMembers(c.Context(), callerID(c), c.Params("setGUID"), startFrom, pageSize)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, members, fiber.StatusOK)
}

// GetSetsForValue handles GET /api/v1/:userId/valid-values/:validValueGUID/sets
// @Summary List the sets a definition belongs to
// @Tags ValidValues
// @Produce json
// @Param userId path string true "Caller identity"
// @Param validValueGUID path string true "Definition GUID"
// @Param startFrom query int false "Paging offset"
// @Param pageSize query int true "Page size"
// @Success 200 {array} beans.ValidValue
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /{userId}/valid-values/{validValueGUID}/sets [get]
func (h *ValidValuesHandler) GetSetsForValue(c *fiber.Ctx) error {
	startFrom, pageSize := parsePaging(c)
	sets, err := h.ValidValues.GetSetsForValidValue(c.Context(), callerID(c), c.Params("validValueGUID"), startFrom, pageSize)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, sets, fiber.StatusOK)
}

// GetConsumers handles GET /api/v1/:userId/valid-values/:validValueGUID/consumers
// @Summary List the elements consuming a valid value
// @Tags ValidValues
// @Produce json
// @Param userId path string true "Caller identity"
// @Param validValueGUID path string true "Valid value GUID"
// @Param startFrom query int false "Paging offset"
// @Param pageSize query int true "Page size"
// @Success 200 {array} beans.ValidValueConsumer
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /{userId}/valid-values/{validValueGUID}/consumers [get]
func (h *ValidValuesHandler) GetConsumers(c *fiber.Ctx) error {
	startFrom, pageSize := parsePaging(c)
	consumers, err := h.ValidValues.GetValidValuesAssignmentConsumers(c.Context(), callerID(c),
		c.Params("validValueGUID"), startFrom, pageSize)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, consumers, fiber.StatusOK)
}
