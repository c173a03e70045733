package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/opencatalog/metacat/internal/beans"
	"github.com/opencatalog/metacat/internal/services"
	"github.com/opencatalog/metacat/internal/utils"
)

// InfrastructureHandler handles endpoint, connector type, and capability
// routes
type InfrastructureHandler struct {
	Endpoints      *services.EndpointService
	ConnectorTypes *services.ConnectorTypeService
	Capabilities   *services.SoftwareServerCapabilityService
}

// SaveEndpoint handles POST /api/v1/:userId/endpoints
// @Summary Save an endpoint
// @Description Create the endpoint, or update the one with the same qualified name
// @Tags Infrastructure
// @Accept json
// @Produce json
// @Param userId path string true "Caller identity"
// @Param endpoint body beans.Endpoint true "Endpoint"
// @Success 201 {object} utils.GUIDResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /{userId}/endpoints [post]
func (h *InfrastructureHandler) SaveEndpoint(c *fiber.Ctx) error {
	var endpoint beans.Endpoint
	if err := c.BodyParser(&endpoint); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "invalid-parameter")
	}

	guid, err := h.Endpoints.SaveEndpoint(c.Context(), callerID(c), &endpoint)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.GUIDResponse(c, guid)
}

// GetEndpointByGUID handles GET /api/v1/:userId/endpoints/:endpointGUID
// @Summary Get an endpoint
// @Tags Infrastructure
// @Produce json
// @Param userId path string true "Caller identity"
// @Param endpointGUID path string true "Endpoint GUID"
// @Success 200 {object} beans.Endpoint
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/endpoints/{endpointGUID} [get]
func (h *InfrastructureHandler) GetEndpointByGUID(c *fiber.Ctx) error {
	endpoint, err := h.Endpoints.GetEndpointByGUID(c.Context(), callerID(c), c.Params("endpointGUID"))
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, endpoint, fiber.StatusOK)
}

// GetEndpointByName handles GET /api/v1/:userId/endpoints/by-name/:qualifiedName
// @Summary Get an endpoint by qualified name
// @Tags Infrastructure
// @Produce json
// @Param userId path string true "Caller identity"
// @Param qualifiedName path string true "Qualified name"
// @Success 200 {object} beans.Endpoint
// @Success 204 "No endpoint with that name"
// @Router /{userId}/endpoints/by-name/{qualifiedName} [get]
func (h *InfrastructureHandler) GetEndpointByName(c *fiber.Ctx) error {
	endpoint, err := h.Endpoints.GetEndpointByName(c.Context(), callerID(c), c.Params("qualifiedName"))
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	if endpoint == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return utils.SuccessResponse(c, endpoint, fiber.StatusOK)
}

// RemoveEndpoint handles DELETE /api/v1/:userId/endpoints/:endpointGUID
// @Summary Remove an endpoint
// @Description Delete the endpoint once nothing references it any more
// @Tags Infrastructure
// @Produce json
// @Param userId path string true "Caller identity"
// @Param endpointGUID path string true "Endpoint GUID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/endpoints/{endpointGUID} [delete]
func (h *InfrastructureHandler) RemoveEndpoint(c *fiber.Ctx) error {
	if err := h.Endpoints.RemoveEndpoint(c.Context(), callerID(c), c.Params("endpointGUID")); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c)
}

// SaveConnectorType handles POST /api/v1/:userId/connector-types
// @Summary Save a connector type
// @Description Create the connector type, or update the one with the same qualified name
// @Tags Infrastructure
// @Accept json
// @Produce json
// @Param userId path string true "Caller identity"
// @Param connectorType body beans.ConnectorType true "Connector type"
// @Success 201 {object} utils.GUIDResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /{userId}/connector-types [post]
func (h *InfrastructureHandler) SaveConnectorType(c *fiber.Ctx) error {
	var ct beans.ConnectorType
	if err := c.BodyParser(&ct); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "invalid-parameter")
	}

	guid, err := h.ConnectorTypes.SaveConnectorType(c.Context(), callerID(c), &ct)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.GUIDResponse(c, guid)
}

// GetConnectorTypeByGUID handles GET /api/v1/:userId/connector-types/:connectorTypeGUID
// @Summary Get a connector type
// @Tags Infrastructure
// @Produce json
// @Param userId path string true "Caller identity"
// @Param connectorTypeGUID path string true "Connector type GUID"
// @Success 200 {object} beans.ConnectorType
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/connector-types/{connectorTypeGUID} [get]
func (h *InfrastructureHandler) GetConnectorTypeByGUID(c *fiber.Ctx) error {
	ct, err := h.ConnectorTypes.GetConnectorTypeByGUID(c.Context(), callerID(c), c.Params("connectorTypeGUID"))
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, ct, fiber.StatusOK)
}

// GetConnectorTypeByName handles GET /api/v1/:userId/connector-types/by-name/:qualifiedName
// @Summary Get a connector type by qualified name
// @Tags Infrastructure
// @Produce json
// @Param userId path string true "Caller identity"
// @Param qualifiedName path string true "Qualified name"
// @Success 200 {object} beans.ConnectorType
// @Success 204 "No connector type with that name"
// @Router /{userId}/connector-types/by-name/{qualifiedName} [get]
func (h *InfrastructureHandler) GetConnectorTypeByName(c *fiber.Ctx) error {
	ct, err := h.ConnectorTypes.GetConnectorTypeByName(c.Context(), callerID(c), c.Params("qualifiedName"))
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	if ct == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return utils.SuccessResponse(c, ct, fiber.StatusOK)
}

// RemoveConnectorType handles DELETE /api/v1/:userId/connector-types/:connectorTypeGUID
// @Summary Remove a connector type
// @Description Delete the connector type once nothing references it any more
// @Tags Infrastructure
// @Produce json
// @Param userId path string true "Caller identity"
// @Param connectorTypeGUID path string true "Connector type GUID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/connector-types/{connectorTypeGUID} [delete]
func (h *InfrastructureHandler) RemoveConnectorType(c *fiber.Ctx) error {
	if err := h.ConnectorTypes.RemoveConnectorType(c.Context(), callerID(c), c.Params("connectorTypeGUID")); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c)
}

// SaveCapability handles POST /api/v1/:userId/capabilities
// @Summary Save a software server capability
// @Description Create the capability, or update the one with the same qualified name
// @Tags Infrastructure
// @Accept json
// @Produce json
// @Param userId path string true "Caller identity"
// @Param capability body beans.SoftwareServerCapability true "Capability"
// @Success 201 {object} utils.GUIDResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /{userId}/capabilities [post]
func (h *InfrastructureHandler) SaveCapability(c *fiber.Ctx) error {
	var capability beans.SoftwareServerCapability
	if err := c.BodyParser(&capability); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "invalid-parameter")
	}

	guid, err := h.Capabilities.SaveCapability(c.Context(), callerID(c), &capability)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.GUIDResponse(c, guid)
}

// GetCapabilityByGUID handles GET /api/v1/:userId/capabilities/:capabilityGUID
// @Summary Get a software server capability
// @Tags Infrastructure
// @Produce json
// @Param userId path string true "Caller identity"
// @Param capabilityGUID path string true "Capability GUID"
// @Success 200 {object} beans.SoftwareServerCapability
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/capabilities/{capabilityGUID} [get]
func (h *InfrastructureHandler) GetCapabilityByGUID(c *fiber.Ctx) error {
	capability, err := h.Capabilities.GetCapabilityByGUID(c.Context(), callerID(c), c.Params("capabilityGUID"))
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, capability, fiber.StatusOK)
}

// GetCapabilityByName handles GET /api/v1/:userId/capabilities/by-name/:qualifiedName
// @Summary Get a software server capability by qualified name
// @Tags Infrastructure
// @Produce json
// @Param userId path string true "Caller identity"
// @Param qualifiedName path string true "Qualified name"
// @Success 200 {object} beans.SoftwareServerCapability
// @Success 204 "No capability with that name"
// @Router /{userId}/capabilities/by-name/{qualifiedName} [get]
func (h *InfrastructureHandler) GetCapabilityByName(c *fiber.Ctx) error {
	capability, err := h.Capabilities.GetCapabilityByQualifiedName(c.Context(), callerID(c), c.Params("qualifiedName"))
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	if capability == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return utils.SuccessResponse(c, capability, fiber.StatusOK)
}
