package services

import (
	"github.com/opencatalog/metacat/internal/beans"
	"github.com/opencatalog/metacat/internal/models"
	"github.com/opencatalog/metacat/internal/omtypes"
)

// Converters from repository rows to domain beans. Feedback converters take
// the attaching relationship as well, because visibility and ownership live
// on the relationship side.

func elementHeaderOf(e *models.Entity) beans.ElementHeader {
	return beans.ElementHeader{GUID: e.GUID, TypeName: e.TypeName}
}

func referenceableOf(e *models.Entity) beans.Referenceable {
	return beans.Referenceable{
		ElementHeader:        elementHeaderOf(e),
		QualifiedName:        e.QualifiedName,
		AdditionalProperties: models.GetStringMap(e.Properties, omtypes.AdditionalPropertiesProperty),
	}
}

func assetFromEntity(e *models.Entity) *beans.Asset {
	asset := &beans.Asset{
		Referenceable: referenceableOf(e),
		DisplayName:   models.GetString(e.Properties, omtypes.DisplayNameProperty),
		Description:   models.GetString(e.Properties, omtypes.DescriptionProperty),
	}
	for _, c := range e.Classifications {
		switch c.Name {
		case omtypes.AssetZoneMembershipClassification.Name:
			asset.ZoneMembership = models.GetStringSlice(c.Properties, omtypes.ZoneMembershipProperty)
		case omtypes.AssetOwnershipClassification.Name:
			asset.Owner = models.GetString(c.Properties, omtypes.OwnerProperty)
		}
	}
	return asset
}

func assetSummaryFromEntity(e *models.Entity) *beans.AssetSummary {
	return &beans.AssetSummary{
		ElementHeader: elementHeaderOf(e),
		QualifiedName: e.QualifiedName,
		DisplayName:   models.GetString(e.Properties, omtypes.DisplayNameProperty),
		Description:   models.GetString(e.Properties, omtypes.DescriptionProperty),
	}
}

func commentFromEntity(e *models.Entity, rel *models.Relationship) *beans.Comment {
	return &beans.Comment{
		ElementHeader: elementHeaderOf(e),
		Kind:          beans.CommentKind(models.GetString(e.Properties, omtypes.CommentTypeProperty)),
		Text:          models.GetString(e.Properties, omtypes.CommentTextProperty),
		User:          e.CreatedBy,
		IsPublic:      models.GetBool(rel.Properties, omtypes.IsPublicProperty),
	}
}

func likeFromEntity(e *models.Entity, rel *models.Relationship) *beans.Like {
	return &beans.Like{
		ElementHeader: elementHeaderOf(e),
		User:          e.CreatedBy,
		IsPublic:      models.GetBool(rel.Properties, omtypes.IsPublicProperty),
	}
}

func ratingFromEntity(e *models.Entity, rel *models.Relationship) *beans.Rating {
	return &beans.Rating{
		ElementHeader: elementHeaderOf(e),
		Stars:         beans.StarRating(models.GetString(e.Properties, omtypes.StarRatingProperty)),
		Review:        models.GetString(e.Properties, omtypes.ReviewProperty),
		User:          e.CreatedBy,
		IsPublic:      models.GetBool(rel.Properties, omtypes.IsPublicProperty),
	}
}

func tagFromEntity(e *models.Entity) *beans.InformalTag {
	return &beans.InformalTag{
		ElementHeader: elementHeaderOf(e),
		Name:          models.GetString(e.Properties, omtypes.TagNameProperty),
		Description:   models.GetString(e.Properties, omtypes.TagDescriptionProperty),
		IsPrivateTag:  models.GetBool(e.Properties, omtypes.IsPrivateTagProperty),
		User:          e.CreatedBy,
	}
}

func certificationFromEntity(e *models.Entity) *beans.Certification {
	return &beans.Certification{
		Referenceable: referenceableOf(e),
		Title:         models.GetString(e.Properties, omtypes.TitleProperty),
		Summary:       models.GetString(e.Properties, omtypes.SummaryProperty),
		Start:         models.GetString(e.Properties, omtypes.StartProperty),
		End:           models.GetString(e.Properties, omtypes.EndProperty),
		Conditions:    models.GetString(e.Properties, omtypes.ConditionsProperty),
		Custodian:     models.GetString(e.Properties, omtypes.CustodianProperty),
	}
}

func licenseFromEntity(e *models.Entity) *beans.License {
	return &beans.License{
		Referenceable: referenceableOf(e),
		Title:         models.GetString(e.Properties, omtypes.TitleProperty),
		Summary:       models.GetString(e.Properties, omtypes.SummaryProperty),
		Start:         models.GetString(e.Properties, omtypes.StartProperty),
		End:           models.GetString(e.Properties, omtypes.EndProperty),
		Conditions:    models.GetString(e.Properties, omtypes.ConditionsProperty),
		Custodian:     models.GetString(e.Properties, omtypes.CustodianProperty),
	}
}

func endpointFromEntity(e *models.Entity) *beans.Endpoint {
	return &beans.Endpoint{
		Referenceable:    referenceableOf(e),
		DisplayName:      models.GetString(e.Properties, omtypes.DisplayNameProperty),
		Description:      models.GetString(e.Properties, omtypes.DescriptionProperty),
		Address:          models.GetString(e.Properties, omtypes.AddressProperty),
		Protocol:         models.GetString(e.Properties, omtypes.ProtocolProperty),
		EncryptionMethod: models.GetString(e.Properties, omtypes.EncryptionMethodProperty),
	}
}

func connectorTypeFromEntity(e *models.Entity) *beans.ConnectorType {
	return &beans.ConnectorType{
		Referenceable:              referenceableOf(e),
		DisplayName:                models.GetString(e.Properties, omtypes.DisplayNameProperty),
		Description:                models.GetString(e.Properties, omtypes.DescriptionProperty),
		ConnectorProviderClassName: models.GetString(e.Properties, omtypes.ConnectorProviderProperty),
	}
}

func capabilityFromEntity(e *models.Entity) *beans.SoftwareServerCapability {
	return &beans.SoftwareServerCapability{
		Referenceable:  referenceableOf(e),
		DisplayName:    models.GetString(e.Properties, omtypes.DisplayNameProperty),
		Description:    models.GetString(e.Properties, omtypes.DescriptionProperty),
		CapabilityType: models.GetString(e.Properties, omtypes.CapabilityTypeProperty),
		Version:        models.GetString(e.Properties, omtypes.VersionProperty),
		PatchLevel:     models.GetString(e.Properties, omtypes.PatchLevelProperty),
		Source:         models.GetString(e.Properties, omtypes.SourceProperty),
	}
}

func meaningFromEntity(e *models.Entity) *beans.Meaning {
	return &beans.Meaning{
		ElementHeader: elementHeaderOf(e),
		Name:          models.GetString(e.Properties, omtypes.DisplayNameProperty),
		Description:   models.GetString(e.Properties, omtypes.DescriptionProperty),
	}
}

func locationFromEntity(e *models.Entity) *beans.Location {
	return &beans.Location{
		Referenceable: referenceableOf(e),
		DisplayName:   models.GetString(e.Properties, omtypes.DisplayNameProperty),
		Description:   models.GetString(e.Properties, omtypes.DescriptionProperty),
	}
}

func noteLogFromEntity(e *models.Entity, rel *models.Relationship) *beans.NoteLog {
	return &beans.NoteLog{
		Referenceable: referenceableOf(e),
		Name:          models.GetString(e.Properties, omtypes.NameProperty),
		Description:   models.GetString(e.Properties, omtypes.DescriptionProperty),
		IsPublic:      models.GetBool(rel.Properties, omtypes.IsPublicProperty),
	}
}

func noteFromEntity(e *models.Entity) *beans.Note {
	return &beans.Note{
		ElementHeader: elementHeaderOf(e),
		Text:          models.GetString(e.Properties, omtypes.TextProperty),
		User:          e.CreatedBy,
		LastUpdate:    models.GetString(e.Properties, omtypes.LastUpdateProperty),
	}
}

func validValueFromEntity(e *models.Entity) *beans.ValidValue {
	return &beans.ValidValue{
		Referenceable:  referenceableOf(e),
		DisplayName:    models.GetString(e.Properties, omtypes.DisplayNameProperty),
		Description:    models.GetString(e.Properties, omtypes.DescriptionProperty),
		Usage:          models.GetString(e.Properties, omtypes.UsageProperty),
		Scope:          models.GetString(e.Properties, omtypes.ScopeProperty),
		PreferredValue: models.GetString(e.Properties, omtypes.PreferredValueProperty),
		IsDeprecated:   models.GetBool(e.Properties, omtypes.IsDeprecatedProperty),
		IsSet:          e.TypeName == omtypes.ValidValuesSetType.Name,
	}
}

func lastAttachmentFromEntity(e *models.Entity) *beans.LastAttachment {
	return &beans.LastAttachment{
		ElementHeader:   elementHeaderOf(e),
		AnchorGUID:      models.GetString(e.Properties, omtypes.AnchorGUIDProperty),
		AnchorType:      models.GetString(e.Properties, omtypes.AnchorTypeProperty),
		AttachmentGUID:  models.GetString(e.Properties, omtypes.AttachmentGUIDProperty),
		AttachmentType:  models.GetString(e.Properties, omtypes.AttachmentTypeProperty),
		AttachmentOwner: models.GetString(e.Properties, omtypes.AttachmentOwnerProperty),
		Description:     models.GetString(e.Properties, omtypes.DescriptionProperty),
		UpdateTime:      e.UpdatedAt,
	}
}
