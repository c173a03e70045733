package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/opencatalog/metacat/internal/beans"
	"github.com/opencatalog/metacat/internal/services"
	"github.com/opencatalog/metacat/internal/utils"
)

// AssetHandler handles asset routes
type AssetHandler struct {
	Assets *services.AssetService
}

// AddAsset handles POST /api/v1/:userId/assets
// @Summary Create an asset
// @Description Create a new asset, applying default governance zones when none are supplied
// @Tags Assets
// @Accept json
// @Produce json
// @Param userId path string true "Caller identity"
// @Param asset body beans.Asset true "Asset to create"
// @Success 201 {object} utils.GUIDResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /{userId}/assets [post]
func (h *AssetHandler) AddAsset(c *fiber.Ctx) error {
	var asset beans.Asset
	if err := c.BodyParser(&asset); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "invalid-parameter")
	}

	guid, err := h.Assets.AddAsset(c.Context(), callerID(c), &asset)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.GUIDResponse(c, guid)
}

// GetAsset handles GET /api/v1/:userId/assets/:assetGUID
// @Summary Get an asset
// @Description Get an asset with its zone membership and ownership state
// @Tags Assets
// @Produce json
// @Param userId path string true "Caller identity"
// @Param assetGUID path string true "Asset GUID"
// @Success 200 {object} beans.Asset
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /{userId}/assets/{assetGUID} [get]
func (h *AssetHandler) GetAsset(c *fiber.Ctx) error {
	asset, err := h.Assets.GetAsset(c.Context(), callerID(c), c.Params("assetGUID"))
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, asset, fiber.StatusOK)
}

// UpdateAsset handles PUT /api/v1/:userId/assets/:assetGUID
// @Summary Update an asset
// @Description Replace the asset's properties and reconcile its classifications
// @Tags Assets
// @Accept json
// @Produce json
// @Param userId path string true "Caller identity"
// @Param assetGUID path string true "Asset GUID"
// @Param asset body beans.Asset true "New asset state"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /{userId}/assets/{assetGUID} [put]
func (h *AssetHandler) UpdateAsset(c *fiber.Ctx) error {
	var asset beans.Asset
	if err := c.BodyParser(&asset); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "invalid-parameter")
	}

	if err := h.Assets.UpdateAsset(c.Context(), callerID(c), c.Params("assetGUID"), &asset); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c)
}

// RemoveAsset handles DELETE /api/v1/:userId/assets/:assetGUID
// @Summary Delete an asset
// @Description Delete the asset; the qualifiedName query parameter must match the stored name
// @Tags Assets
// @Produce json
// @Param userId path string true "Caller identity"
// @Param assetGUID path string true "Asset GUID"
// @Param qualifiedName query string true "Qualified name of the asset"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /{userId}/assets/{assetGUID} [delete]
func (h *AssetHandler) RemoveAsset(c *fiber.Ctx) error {
	if err := h.Assets.RemoveAsset(c.Context(), callerID(c), c.Params("assetGUID"), c.Query("qualifiedName")); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c)
}

// GetAssetsByName handles GET /api/v1/:userId/assets/by-name/:name
// @Summary Find assets by name
// @Description Page through asset summaries matching a qualified or display name
// @Tags Assets
// @Produce json
// @Param userId path string true "Caller identity"
// @Param name path string true "Name to match"
// @Param startFrom query int false "Paging offset"
// @Param pageSize query int true "Page size"
// @Success 200 {array} beans.AssetSummary
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /{userId}/assets/by-name/{name} [get]
func (h *AssetHandler) GetAssetsByName(c *fiber.Ctx) error {
	startFrom, pageSize := parsePaging(c)
	summaries, err := h.Assets.GetAssetsByName(c.Context(), callerID(c), c.Params("name"), startFrom, pageSize)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, summaries, fiber.StatusOK)
}
