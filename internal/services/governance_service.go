package services

import (
	"context"
	"fmt"

	"github.com/opencatalog/metacat/internal/beans"
	"github.com/opencatalog/metacat/internal/models"
	"github.com/opencatalog/metacat/internal/omtypes"
	"github.com/opencatalog/metacat/internal/repository"
)

// governanceAttachments is the shared machinery behind certifications and
// licenses: compliance records attached to a referenceable, never
// visibility-filtered.
type governanceAttachments struct {
	repo        repository.Metadata
	attachments *AttachmentService
	tracker     *LastAttachmentService
	entityType  omtypes.TypeDef
	relType     omtypes.TypeDef
}

func (g *governanceAttachments) add(ctx context.Context, userID, anchorGUID, anchorTypeName string, properties models.PropertyMap, methodName string) (string, error) {
	if err := validateUserID(userID, methodName); err != nil {
		return "", err
	}
	if err := validateGUID(anchorGUID, "anchorGUID", methodName); err != nil {
		return "", err
	}
	if err := validateQualifiedNameProperty(properties, methodName); err != nil {
		return "", err
	}
	if err := g.repo.ValidateEntityGUID(ctx, userID, anchorGUID, anchorTypeName, "anchorGUID"); err != nil {
		return "", err
	}

	guid, err := g.repo.CreateEntity(ctx, userID, g.entityType, properties)
	if err != nil {
		return "", err
	}
	if _, err := g.repo.CreateRelationship(ctx, userID, g.relType, anchorGUID, guid, nil); err != nil {
		return "", err
	}

	g.tracker.Record(ctx, userID, anchorGUID, anchorTypeName, guid, g.entityType.Name,
		fmt.Sprintf("New %s on %s %s", g.relType.Name, anchorTypeName, anchorGUID))
	return guid, nil
}

func (g *governanceAttachments) update(ctx context.Context, userID, guid string, properties models.PropertyMap, methodName string) error {
	if err := validateUserID(userID, methodName); err != nil {
		return err
	}
	if err := validateGUID(guid, "guid", methodName); err != nil {
		return err
	}
	if _, err := g.repo.GetEntityByGUID(ctx, userID, guid, "guid", g.entityType.Name); err != nil {
		return err
	}
	return g.repo.UpdateEntityProperties(ctx, userID, guid, g.entityType, properties)
}

func (g *governanceAttachments) remove(ctx context.Context, userID, anchorGUID, anchorTypeName, guid, methodName string) error {
	if err := validateUserID(userID, methodName); err != nil {
		return err
	}
	if err := validateGUID(anchorGUID, "anchorGUID", methodName); err != nil {
		return err
	}
	if err := validateGUID(guid, "guid", methodName); err != nil {
		return err
	}

	if err := g.repo.DeleteEntity(ctx, userID, guid, g.entityType, "", ""); err != nil {
		return err
	}
	g.tracker.Record(ctx, userID, anchorGUID, anchorTypeName, "", "",
		fmt.Sprintf("Removed %s from %s %s", g.relType.Name, anchorTypeName, anchorGUID))
	return nil
}

func (g *governanceAttachments) get(ctx context.Context, userID, anchorGUID, anchorTypeName string, startFrom, pageSize int) ([]AttachedEntity, error) {
	return g.attachments.GetAttachments(ctx, userID, anchorGUID, anchorTypeName,
		g.relType, g.entityType.Name, startFrom, pageSize)
}

func (g *governanceAttachments) count(ctx context.Context, userID, anchorGUID, anchorTypeName string) (int, error) {
	return g.attachments.CountAttachments(ctx, userID, anchorGUID, anchorTypeName, g.relType)
}

// CertificationService manages certification records attached to
// referenceables.
type CertificationService struct {
	governanceAttachments
}

func NewCertificationService(repo repository.Metadata, attachments *AttachmentService, tracker *LastAttachmentService) *CertificationService {
	return &CertificationService{governanceAttachments{
		repo:        repo,
		attachments: attachments,
		tracker:     tracker,
		entityType:  omtypes.CertificationTypeType,
		relType:     omtypes.CertificationRel,
	}}
}

// AddCertification attaches a new certification record to the anchor and
// returns its GUID.
func (s *CertificationService) AddCertification(ctx context.Context, userID, anchorGUID, anchorTypeName string, cert *beans.Certification) (string, error) {
	return s.add(ctx, userID, anchorGUID, anchorTypeName, governanceProperties(cert.QualifiedName, cert.Title, cert.Summary, cert.Start, cert.End, cert.Conditions, cert.Custodian), "addCertification")
}

// UpdateCertification replaces the properties of an existing certification.
func (s *CertificationService) UpdateCertification(ctx context.Context, userID, certificationGUID string, cert *beans.Certification) error {
	return s.update(ctx, userID, certificationGUID, governanceProperties(cert.QualifiedName, cert.Title, cert.Summary, cert.Start, cert.End, cert.Conditions, cert.Custodian), "updateCertification")
}

// RemoveCertification deletes the certification record and its attachment.
func (s *CertificationService) RemoveCertification(ctx context.Context, userID, anchorGUID, anchorTypeName, certificationGUID string) error {
	return s.remove(ctx, userID, anchorGUID, anchorTypeName, certificationGUID, "removeCertification")
}

// GetCertifications returns one page of the certifications on the anchor.
func (s *CertificationService) GetCertifications(ctx context.Context, userID, anchorGUID, anchorTypeName string, startFrom, pageSize int) ([]*beans.Certification, error) {
	attached, err := s.get(ctx, userID, anchorGUID, anchorTypeName, startFrom, pageSize)
	if err != nil {
		return nil, err
	}
	certs := make([]*beans.Certification, 0, len(attached))
	for _, a := range attached {
		certs = append(certs, certificationFromEntity(a.Entity))
	}
	return certs, nil
}

// CountCertifications returns the number of certifications on the anchor.
func (s *CertificationService) CountCertifications(ctx context.Context, userID, anchorGUID, anchorTypeName string) (int, error) {
	return s.count(ctx, userID, anchorGUID, anchorTypeName)
}

// LicenseService manages license records attached to referenceables.
type LicenseService struct {
	governanceAttachments
}

func NewLicenseService(repo repository.Metadata, attachments *AttachmentService, tracker *LastAttachmentService) *LicenseService {
	return &LicenseService{governanceAttachments{
		repo:        repo,
		attachments: attachments,
		tracker:     tracker,
		entityType:  omtypes.LicenseTypeType,
		relType:     omtypes.LicenseRel,
	}}
}

// AddLicense attaches a new license record to the anchor and returns its
// GUID.
func (s *LicenseService) AddLicense(ctx context.Context, userID, anchorGUID, anchorTypeName string, lic *beans.License) (string, error) {
	return s.add(ctx, userID, anchorGUID, anchorTypeName, governanceProperties(lic.QualifiedName, lic.Title, lic.Summary, lic.Start, lic.End, lic.Conditions, lic.Custodian), "addLicense")
}

// UpdateLicense replaces the properties of an existing license.
func (s *LicenseService) UpdateLicense(ctx context.Context, userID, licenseGUID string, lic *beans.License) error {
	return s.update(ctx, userID, licenseGUID, governanceProperties(lic.QualifiedName, lic.Title, lic.Summary, lic.Start, lic.End, lic.Conditions, lic.Custodian), "updateLicense")
}

// RemoveLicense deletes the license record and its attachment.
func (s *LicenseService) RemoveLicense(ctx context.Context, userID, anchorGUID, anchorTypeName, licenseGUID string) error {
	return s.remove(ctx, userID, anchorGUID, anchorTypeName, licenseGUID, "removeLicense")
}

// GetLicenses returns one page of the licenses on the anchor.
func (s *LicenseService) GetLicenses(ctx context.Context, userID, anchorGUID, anchorTypeName string, startFrom, pageSize int) ([]*beans.License, error) {
	attached, err := s.get(ctx, userID, anchorGUID, anchorTypeName, startFrom, pageSize)
	if err != nil {
		return nil, err
	}
	licenses := make([]*beans.License, 0, len(attached))
	for _, a := range attached {
		licenses = append(licenses, licenseFromEntity(a.Entity))
	}
	return licenses, nil
}

// CountLicenses returns the number of licenses on the anchor.
func (s *LicenseService) CountLicenses(ctx context.Context, userID, anchorGUID, anchorTypeName string) (int, error) {
	return s.count(ctx, userID, anchorGUID, anchorTypeName)
}

func governanceProperties(qualifiedName, title, summary, start, end, conditions, custodian string) models.PropertyMap {
	properties := models.PropertyMap{omtypes.QualifiedNameProperty: qualifiedName}
	set := func(name, value string) {
		if value != "" {
			properties[name] = value
		}
	}
	set(omtypes.TitleProperty, title)
	set(omtypes.SummaryProperty, summary)
	set(omtypes.StartProperty, start)
	set(omtypes.EndProperty, end)
	set(omtypes.ConditionsProperty, conditions)
	set(omtypes.CustodianProperty, custodian)
	return properties
}

func validateQualifiedNameProperty(properties models.PropertyMap, methodName string) error {
	return validateName(models.GetString(properties, omtypes.QualifiedNameProperty), "qualifiedName", methodName)
}
