package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/opencatalog/metacat/internal/beans"
	"github.com/opencatalog/metacat/internal/services"
	"github.com/opencatalog/metacat/internal/utils"
)

// GovernanceHandler handles certification and license routes
type GovernanceHandler struct {
	Certifications *services.CertificationService
	Licenses       *services.LicenseService
}

// AddCertification handles POST /api/v1/:userId/referenceables/:guid/certifications
// @Summary Add a certification
// @Tags Governance
// @Accept json
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Param certification body beans.Certification true "Certification"
// @Success 201 {object} utils.GUIDResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/referenceables/{guid}/certifications [post]
func (h *GovernanceHandler) AddCertification(c *fiber.Ctx) error {
	var cert beans.Certification
	if err := c.BodyParser(&cert); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "invalid-parameter")
	}

	guid, err := h.Certifications.AddCertification(c.Context(), callerID(c), c.Params("guid"), anchorType(c), &cert)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.GUIDResponse(c, guid)
}

// UpdateCertification handles PUT /api/v1/:userId/certifications/:certificationGUID
// @Summary Update a certification
// @Tags Governance
// @Accept json
// @Produce json
// @Param userId path string true "Caller identity"
// @Param certificationGUID path string true "Certification GUID"
// @Param certification body beans.Certification true "New certification state"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/certifications/{certificationGUID} [put]
func (h *GovernanceHandler) UpdateCertification(c *fiber.Ctx) error {
	var cert beans.Certification
	if err := c.BodyParser(&cert); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "invalid-parameter")
	}

	if err := h.Certifications.UpdateCertification(c.Context(), callerID(c), c.Params("certificationGUID"), &cert); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c)
}

// RemoveCertification handles DELETE /api/v1/:userId/referenceables/:guid/certifications/:certificationGUID
// @Summary Remove a certification
// @Tags Governance
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Param certificationGUID path string true "Certification GUID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/referenceables/{guid}/certifications/{certificationGUID} [delete]
func (h *GovernanceHandler) RemoveCertification(c *fiber.Ctx) error {
	if err := h.Certifications.RemoveCertification(c.Context(), callerID(c), c.Params("guid"), anchorType(c),
		c.Params("certificationGUID")); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c)
}

// GetCertifications handles GET /api/v1/:userId/referenceables/:guid/certifications
// @Summary List certifications
// @Tags Governance
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Param startFrom query int false "Paging offset"
// @Param pageSize query int true "Page size"
// @Success 200 {array} beans.Certification
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /{userId}/referenceables/{guid}/certifications [get]
func (h *GovernanceHandler) GetCertifications(c *fiber.Ctx) error {
	startFrom, pageSize := parsePaging(c)
	certs, err := h.Certifications.GetCertifications(c.Context(), callerID(c), c.Params("guid"), anchorType(c), startFrom, pageSize)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, certs, fiber.StatusOK)
}

// CountCertifications handles GET /api/v1/:userId/referenceables/:guid/certifications/count
// @Summary Count certifications
// @Tags Governance
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Success 200 {object} utils.CountResponseStruct
// @Router /{userId}/referenceables/{guid}/certifications/count [get]
func (h *GovernanceHandler) CountCertifications(c *fiber.Ctx) error {
	count, err := h.Certifications.CountCertifications(c.Context(), callerID(c), c.Params("guid"), anchorType(c))
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.CountResponse(c, count)
}

// AddLicense handles POST /api/v1/:userId/referenceables/:guid/licenses
// @Summary Add a license
// @Tags Governance
// @Accept json
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Param license body beans.License true "License"
// @Success 201 {object} utils.GUIDResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/referenceables/{guid}/licenses [post]
func (h *GovernanceHandler) AddLicense(c *fiber.Ctx) error {
	var lic beans.License
	if err := c.BodyParser(&lic); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "invalid-parameter")
	}

	guid, err := h.Licenses.AddLicense(c.Context(), callerID(c), c.Params("guid"), anchorType(c), &lic)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.GUIDResponse(c, guid)
}

// UpdateLicense handles PUT /api/v1/:userId/licenses/:licenseGUID
// @Summary Update a license
// @Tags Governance
// @Accept json
// @Produce json
// @Param userId path string true "Caller identity"
// @Param licenseGUID path string true "License GUID"
// @Param license body beans.License true "New license state"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/licenses/{licenseGUID} [put]
func (h *GovernanceHandler) UpdateLicense(c *fiber.Ctx) error {
	var lic beans.License
	if err := c.BodyParser(&lic); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "invalid-parameter")
	}

	if err := h.Licenses.UpdateLicense(c.Context(), callerID(c), c.Params("licenseGUID"), &lic); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c)
}

// RemoveLicense handles DELETE /api/v1/:userId/referenceables/:guid/licenses/:licenseGUID
// @Summary Remove a license
// @Tags Governance
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Param licenseGUID path string true "License GUID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{userId}/referenceables/{guid}/licenses/{licenseGUID} [delete]
func (h *GovernanceHandler) RemoveLicense(c *fiber.Ctx) error {
	if err := h.Licenses.RemoveLicense(c.Context(), callerID(c), c.Params("guid"), anchorType(c),
		c.Params("licenseGUID")); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c)
}

// GetLicenses handles GET /api/v1/:userId/referenceables/:guid/licenses
// @Summary List licenses
// @Tags Governance
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Param startFrom query int false "Paging offset"
// @Param pageSize query int true "Page size"
// @Success 200 {array} beans.License
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /{userId}/referenceables/{guid}/licenses [get]
func (h *GovernanceHandler) GetLicenses(c *fiber.Ctx) error {
	startFrom, pageSize := parsePaging(c)
	licenses, err := h.Licenses.GetLicenses(c.Context(), callerID(c), c.Params("guid"), anchorType(c), startFrom, pageSize)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, licenses, fiber.StatusOK)
}

// CountLicenses handles GET /api/v1/:userId/referenceables/:guid/licenses/count
// @Summary Count licenses
// @Tags Governance
// @Produce json
// @Param userId path string true "Caller identity"
// @Param guid path string true "Anchor element GUID"
// @Param anchorType query string false "Anchor type name"
// @Success 200 {object} utils.CountResponseStruct
// @Router /{userId}/referenceables/{guid}/licenses/count [get]
func (h *GovernanceHandler) CountLicenses(c *fiber.Ctx) error {
	count, err := h.Licenses.CountLicenses(c.Context(), callerID(c), c.Params("guid"), anchorType(c))
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.CountResponse(c, count)
}
