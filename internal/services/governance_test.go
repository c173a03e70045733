package services_test

import (
	"context"
	"testing"

	"github.com/opencatalog/metacat/internal/beans"
	"github.com/opencatalog/metacat/internal/types"
)

func TestCertificationLifecycle(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()
	asset := createTestAsset(t, svcs, "alice", "asset.certified")

	certGUID, err := svcs.Certification.AddCertification(ctx, "alice", asset, "Asset", &beans.Certification{
		Referenceable: beans.Referenceable{QualifiedName: "cert.gdpr"},
		Title:         "GDPR Compliance",
		Summary:       "Reviewed for personal data handling",
		Custodian:     "compliance-team",
	})
	if err != nil {
		t.Fatalf("Failed to add certification: %v", err)
	}

	certs, err := svcs.Certification.GetCertifications(ctx, "bob", asset, "Asset", 0, 10)
	if err != nil {
		t.Fatalf("Failed to get certifications: %v", err)
	}
	if len(certs) != 1 {
		t.Fatalf("Expected 1 certification, got %d", len(certs))
	}
	// Governance records are never visibility-filtered
	if certs[0].GUID != certGUID || certs[0].Title != "GDPR Compliance" {
		t.Errorf("Unexpected certification content: %+v", certs[0])
	}

	if err := svcs.Certification.UpdateCertification(ctx, "alice", certGUID, &beans.Certification{
		Referenceable: beans.Referenceable{QualifiedName: "cert.gdpr"},
		Title:         "GDPR Compliance 2026",
	}); err != nil {
		t.Fatalf("Failed to update certification: %v", err)
	}
	certs, _ = svcs.Certification.GetCertifications(ctx, "alice", asset, "Asset", 0, 10)
	if certs[0].Title != "GDPR Compliance 2026" {
		t.Errorf("Expected updated title, got %q", certs[0].Title)
	}

	count, err := svcs.Certification.CountCertifications(ctx, "alice", asset, "Asset")
	if err != nil {
		t.Fatalf("Failed to count certifications: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected count 1, got %d", count)
	}

	if err := svcs.Certification.RemoveCertification(ctx, "alice", asset, "Asset", certGUID); err != nil {
		t.Fatalf("Failed to remove certification: %v", err)
	}
	count, _ = svcs.Certification.CountCertifications(ctx, "alice", asset, "Asset")
	if count != 0 {
		t.Errorf("Expected count 0 after removal, got %d", count)
	}
}

func TestCertificationRequiresQualifiedName(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()
	asset := createTestAsset(t, svcs, "alice", "asset.badcert")

	_, err := svcs.Certification.AddCertification(ctx, "alice", asset, "Asset", &beans.Certification{
		Title: "No name",
	})
	if !types.IsInvalidParameter(err) {
		t.Errorf("Expected invalid parameter for missing qualified name, got %v", err)
	}
}

func TestLicenseLifecycle(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()
	asset := createTestAsset(t, svcs, "alice", "asset.licensed")

	licGUID, err := svcs.License.AddLicense(ctx, "alice", asset, "Asset", &beans.License{
		Referenceable: beans.Referenceable{QualifiedName: "lic.cc-by"},
		Title:         "CC BY 4.0",
		Conditions:    "Attribution required",
	})
	if err != nil {
		t.Fatalf("Failed to add license: %v", err)
	}

	lics, err := svcs.License.GetLicenses(ctx, "bob", asset, "Asset", 0, 10)
	if err != nil {
		t.Fatalf("Failed to get licenses: %v", err)
	}
	if len(lics) != 1 || lics[0].GUID != licGUID || lics[0].Conditions != "Attribution required" {
		t.Fatalf("Unexpected license result: %+v", lics)
	}

	if err := svcs.License.RemoveLicense(ctx, "alice", asset, "Asset", licGUID); err != nil {
		t.Fatalf("Failed to remove license: %v", err)
	}
	count, _ := svcs.License.CountLicenses(ctx, "alice", asset, "Asset")
	if count != 0 {
		t.Errorf("Expected count 0 after removal, got %d", count)
	}
}
