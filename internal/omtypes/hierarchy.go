package omtypes

// superTypeOf records each type's immediate supertype. Referenceable is the
// root of the open metadata entity hierarchy.
var superTypeOf = map[string]string{
	AssetType.Name:                    ReferenceableType.Name,
	CommentType.Name:                  ReferenceableType.Name,
	LikeType.Name:                     ReferenceableType.Name,
	RatingType.Name:                   ReferenceableType.Name,
	InformalTagType.Name:              ReferenceableType.Name,
	CertificationTypeType.Name:        ReferenceableType.Name,
	LicenseTypeType.Name:              ReferenceableType.Name,
	EndpointType.Name:                 ReferenceableType.Name,
	ConnectorTypeType.Name:            ReferenceableType.Name,
	ConnectionType.Name:               ReferenceableType.Name,
	GlossaryTermType.Name:             ReferenceableType.Name,
	LocationType.Name:                 ReferenceableType.Name,
	NoteLogType.Name:                  ReferenceableType.Name,
	NoteEntryType.Name:                ReferenceableType.Name,
	ValidValueDefinitionType.Name:     ReferenceableType.Name,
	ValidValuesSetType.Name:           ValidValueDefinitionType.Name,
	SoftwareServerCapabilityType.Name: ReferenceableType.Name,
	LastAttachmentType.Name:           ReferenceableType.Name,
}

// IsTypeOf reports whether typeName is expected or one of its subtypes.
// An empty expected name matches anything.
func IsTypeOf(typeName, expected string) bool {
	if expected == "" || typeName == expected {
		return true
	}
	for cur := typeName; cur != ""; cur = superTypeOf[cur] {
		if cur == expected {
			return true
		}
	}
	return false
}

// TypeAndSubtypes returns typeName plus every registered subtype, for
// type-scoped queries.
func TypeAndSubtypes(typeName string) []string {
	names := []string{typeName}
	for sub := range superTypeOf {
		if sub != typeName && IsTypeOf(sub, typeName) {
			names = append(names, sub)
		}
	}
	return names
}
