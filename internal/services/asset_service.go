package services

import (
	"context"
	"sort"

	"github.com/opencatalog/metacat/internal/beans"
	"github.com/opencatalog/metacat/internal/models"
	"github.com/opencatalog/metacat/internal/omtypes"
	"github.com/opencatalog/metacat/internal/repository"
	"github.com/opencatalog/metacat/internal/types"
)

// AssetService manages asset elements. Zone membership and ownership are
// classification states on the entity, reconciled on every create and
// update rather than written blindly.
type AssetService struct {
	repo         repository.Metadata
	defaultZones []string
	maxPageSize  int
}

func NewAssetService(repo repository.Metadata, defaultZones []string, maxPageSize int) *AssetService {
	return &AssetService{repo: repo, defaultZones: defaultZones, maxPageSize: maxPageSize}
}

// GetAsset returns the asset with the given GUID, including its zone and
// owner classification state.
func (s *AssetService) GetAsset(ctx context.Context, userID, assetGUID string) (*beans.Asset, error) {
	const methodName = "getAsset"
	if err := validateUserID(userID, methodName); err != nil {
		return nil, err
	}
	if err := validateGUID(assetGUID, "assetGUID", methodName); err != nil {
		return nil, err
	}

	entity, err := s.repo.GetEntityByGUID(ctx, userID, assetGUID, "assetGUID", omtypes.AssetType.Name)
	if err != nil {
		return nil, err
	}
	return assetFromEntity(entity), nil
}

// AddAsset creates a new asset and returns its GUID. When the caller
// supplies no zones the configured default zones apply.
func (s *AssetService) AddAsset(ctx context.Context, userID string, asset *beans.Asset) (string, error) {
	const methodName = "addAsset"
	if err := validateUserID(userID, methodName); err != nil {
		return "", err
	}
	if asset == nil {
		return "", types.NewInvalidParameterf("%s: asset is null", methodName)
	}
	if err := validateName(asset.QualifiedName, "qualifiedName", methodName); err != nil {
		return "", err
	}

	guid, err := s.repo.CreateEntity(ctx, userID, omtypes.AssetType, assetProperties(asset))
	if err != nil {
		return "", err
	}

	created := *asset
	if len(created.ZoneMembership) == 0 {
		created.ZoneMembership = s.defaultZones
	}
	if err := s.ReconcileAssetClassifications(ctx, userID, guid, &beans.Asset{}, &created); err != nil {
		return "", err
	}
	return guid, nil
}

// UpdateAsset replaces the asset's properties and reconciles its zone and
// owner classifications against the stored state.
func (s *AssetService) UpdateAsset(ctx context.Context, userID, assetGUID string, updated *beans.Asset) error {
	const methodName = "updateAsset"
	if err := validateUserID(userID, methodName); err != nil {
		return err
	}
	if err := validateGUID(assetGUID, "assetGUID", methodName); err != nil {
		return err
	}
	if updated == nil {
		return types.NewInvalidParameterf("%s: asset is null", methodName)
	}
	if err := validateName(updated.QualifiedName, "qualifiedName", methodName); err != nil {
		return err
	}

	entity, err := s.repo.GetEntityByGUID(ctx, userID, assetGUID, "assetGUID", omtypes.AssetType.Name)
	if err != nil {
		return err
	}
	original := assetFromEntity(entity)

	if err := s.repo.UpdateEntityProperties(ctx, userID, assetGUID, omtypes.AssetType, assetProperties(updated)); err != nil {
		return err
	}
	return s.ReconcileAssetClassifications(ctx, userID, assetGUID, original, updated)
}

// RemoveAsset deletes the asset after verifying the caller knows its
// qualified name.
func (s *AssetService) RemoveAsset(ctx context.Context, userID, assetGUID, qualifiedName string) error {
	const methodName = "removeAsset"
	if err := validateUserID(userID, methodName); err != nil {
		return err
	}
	if err := validateGUID(assetGUID, "assetGUID", methodName); err != nil {
		return err
	}
	if err := validateName(qualifiedName, "qualifiedName", methodName); err != nil {
		return err
	}
	return s.repo.DeleteEntity(ctx, userID, assetGUID, omtypes.AssetType,
		omtypes.QualifiedNameProperty, qualifiedName)
}

// GetAssetsByName returns one page of asset summaries whose qualified name
// or display name matches.
func (s *AssetService) GetAssetsByName(ctx context.Context, userID, name string, startFrom, pageSize int) ([]*beans.AssetSummary, error) {
	const methodName = "getAssetsByName"
	if err := validateUserID(userID, methodName); err != nil {
		return nil, err
	}
	if err := validateName(name, "name", methodName); err != nil {
		return nil, err
	}
	effectivePageSize, err := validatePaging(startFrom, pageSize, s.maxPageSize, methodName)
	if err != nil {
		return nil, err
	}

	entities, err := s.repo.GetEntitiesByName(ctx, userID, name,
		[]string{omtypes.QualifiedNameProperty, omtypes.DisplayNameProperty},
		omtypes.AssetType.Name, startFrom, effectivePageSize)
	if err != nil {
		return nil, err
	}

	summaries := make([]*beans.AssetSummary, 0, len(entities))
	for _, entity := range entities {
		summaries = append(summaries, assetSummaryFromEntity(entity))
	}
	return summaries, nil
}

// ReconcileAssetClassifications drives the asset's zone membership and
// ownership classifications from the original state to the updated one. The
// two dimensions are independent; equal states produce no repository calls.
// A classify/declassify rejection for an asset that was just validated means
// the stored classification state contradicts the entity, which is a
// repository fault, not a caller fault.
func (s *AssetService) ReconcileAssetClassifications(ctx context.Context, userID, assetGUID string, original, updated *beans.Asset) error {
	if err := s.reconcileZones(ctx, userID, assetGUID, original.ZoneMembership, updated.ZoneMembership); err != nil {
		return err
	}
	return s.reconcileOwner(ctx, userID, assetGUID, original.Owner, updated.Owner)
}

func (s *AssetService) reconcileZones(ctx context.Context, userID, assetGUID string, original, updated []string) error {
	if equalZoneSets(original, updated) {
		return nil
	}

	properties := models.PropertyMap{omtypes.ZoneMembershipProperty: updated}
	switch {
	case len(original) == 0:
		return s.remapClassificationError(
			s.repo.ClassifyEntity(ctx, userID, assetGUID, omtypes.AssetType.Name, omtypes.AssetZoneMembershipClassification, properties))
	case len(updated) == 0:
		return s.remapClassificationError(
			s.repo.DeclassifyEntity(ctx, userID, assetGUID, omtypes.AssetType.Name, omtypes.AssetZoneMembershipClassification))
	default:
		return s.remapClassificationError(
			s.repo.ReclassifyEntity(ctx, userID, assetGUID, omtypes.AssetType.Name, omtypes.AssetZoneMembershipClassification, properties))
	}
}

func (s *AssetService) reconcileOwner(ctx context.Context, userID, assetGUID string, original, updated string) error {
	if original == updated {
		return nil
	}

	properties := models.PropertyMap{omtypes.OwnerProperty: updated}
	switch {
	case original == "":
		return s.remapClassificationError(
			s.repo.ClassifyEntity(ctx, userID, assetGUID, omtypes.AssetType.Name, omtypes.AssetOwnershipClassification, properties))
	case updated == "":
		return s.remapClassificationError(
			s.repo.DeclassifyEntity(ctx, userID, assetGUID, omtypes.AssetType.Name, omtypes.AssetOwnershipClassification))
	default:
		return s.remapClassificationError(
			s.repo.ReclassifyEntity(ctx, userID, assetGUID, omtypes.AssetType.Name, omtypes.AssetOwnershipClassification, properties))
	}
}

// remapClassificationError converts an invalid-parameter rejection into a
// repository fault. Reconciliation only issues a transition after reading
// the current state, so a rejection here means the repository disagrees with
// its own answer.
func (s *AssetService) remapClassificationError(err error) error {
	if types.IsInvalidParameter(err) {
		return types.WrapPropertyServer(err, "classification state changed underneath reconciliation")
	}
	return err
}

func assetProperties(asset *beans.Asset) models.PropertyMap {
	properties := models.PropertyMap{omtypes.QualifiedNameProperty: asset.QualifiedName}
	if asset.DisplayName != "" {
		properties[omtypes.DisplayNameProperty] = asset.DisplayName
	}
	if asset.Description != "" {
		properties[omtypes.DescriptionProperty] = asset.Description
	}
	if len(asset.AdditionalProperties) > 0 {
		properties[omtypes.AdditionalPropertiesProperty] = asset.AdditionalProperties
	}
	return properties
}

// equalZoneSets compares zone membership ignoring order.
func equalZoneSets(a, b []string) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
