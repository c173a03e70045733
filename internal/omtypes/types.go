// Package omtypes is the open metadata type registry consumed by the handler
// layer: entity, relationship, and classification type identifiers plus the
// property names used in entity and relationship property bags. These values
// are configuration for the repository, not logic.
package omtypes

// TypeDef identifies an open metadata type by GUID and name.
type TypeDef struct {
	GUID string
	Name string
}

// Entity types
var (
	ReferenceableType            = TypeDef{"a32316b8-dc8c-48c5-b12b-71c1b2a080bf", "Referenceable"}
	AssetType                    = TypeDef{"896d14c2-7522-4f6c-8519-757711943fe6", "Asset"}
	CommentType                  = TypeDef{"1a226073-9c84-40e4-a422-fbddb9b84278", "Comment"}
	LikeType                     = TypeDef{"deaa5ca0-47a0-483d-b943-d91c76744e01", "Like"}
	RatingType                   = TypeDef{"7299d721-d17f-4562-8286-bcd451814478", "Rating"}
	InformalTagType              = TypeDef{"ba846a7b-2955-40bf-952b-2793ceca090a", "InformalTag"}
	CertificationTypeType        = TypeDef{"97f9ffc9-e2f7-4557-ac12-925257345eea", "CertificationType"}
	LicenseTypeType              = TypeDef{"046a049d-5f80-4e5b-b0ae-f3cf6009b513", "LicenseType"}
	EndpointType                 = TypeDef{"dbc20663-d705-4ff0-8424-80c262c6b8e7", "Endpoint"}
	ConnectorTypeType            = TypeDef{"954421eb-33a6-462d-a8ca-b5709a1bd0d4", "ConnectorType"}
	ConnectionType               = TypeDef{"114e9f8f-5ff3-4c32-bd37-a7eb42712253", "Connection"}
	GlossaryTermType             = TypeDef{"0db3e6ec-f5ef-4d75-ae38-b7ee6fd6ec0a", "GlossaryTerm"}
	LocationType                 = TypeDef{"3e09cb2b-5f15-4fd2-b004-fe0146ad8628", "Location"}
	NoteLogType                  = TypeDef{"646727c7-9ad4-46fa-b660-265489ad96c6", "NoteLog"}
	NoteEntryType                = TypeDef{"2a84d94c-ac6f-4be1-a72a-07dcec7b1fe3", "NoteEntry"}
	ValidValueDefinitionType     = TypeDef{"09b2133a-f045-42cc-bb00-ee602b74c618", "ValidValueDefinition"}
	ValidValuesSetType           = TypeDef{"7de10805-7c44-40e3-a410-ffc51306801b", "ValidValuesSet"}
	SoftwareServerCapabilityType = TypeDef{"fe30a033-8f86-4d17-8986-e6166fa24177", "SoftwareServerCapability"}
	LastAttachmentType           = TypeDef{"ba87e83a-4f74-4b78-a9e5-d2a5d2a6f6c1", "LastAttachment"}
)

// Relationship types
var (
	AttachedCommentRel       = TypeDef{"0d90501b-bf29-4621-a207-0c8c953bdac9", "AttachedComment"}
	AttachedLikeRel          = TypeDef{"e2509715-a606-415d-a995-61d00503dad4", "AttachedLike"}
	AttachedRatingRel        = TypeDef{"0aaad9e9-9cc5-4ad8-bc2e-c1099bab6344", "AttachedRating"}
	AttachedTagRel           = TypeDef{"4b1641c4-3d1a-4213-86b2-d6968b6c65ab", "AttachedTag"}
	CertificationRel         = TypeDef{"390559eb-6a0c-4dd7-bc95-b9074caffa7f", "Certification"}
	LicenseRel               = TypeDef{"35e53b7f-2312-4d66-ae90-2d4cb47901ee", "License"}
	SemanticAssignmentRel    = TypeDef{"e6670973-645f-441a-bec7-6f5570345b92", "SemanticAssignment"}
	AssetLocationRel         = TypeDef{"bc236b62-d0e6-4c5c-93a1-3a35c3dba7b1", "AssetLocation"}
	AttachedNoteLogRel       = TypeDef{"4f798c0c-6769-4a2d-b489-d2714d89e0a4", "AttachedNoteLog"}
	AttachedNoteLogEntryRel  = TypeDef{"38edecc6-f385-4574-8144-524a44e3e712", "AttachedNoteLogEntry"}
	ValidValueMemberRel      = TypeDef{"6337c9cd-8e5a-461b-97f9-5151bcb97a9e", "ValidValueMember"}
	ValidValuesAssignmentRel = TypeDef{"c5d48b73-eadd-47db-ab64-3be99b2fb32d", "ValidValuesAssignment"}
	ConnectionEndpointRel    = TypeDef{"887a7132-d6bc-4b92-a483-e80b60c86fb2", "ConnectionEndpoint"}
	ConnectionConnectorRel   = TypeDef{"e542cfc1-0b4b-42b9-9921-f0a5a88aaf96", "ConnectionConnectorType"}
	LastAttachmentLinkRel    = TypeDef{"57e3687e-393e-4c0c-a4f1-a6634075465b", "LastAttachmentLink"}
)

// Classification types
var (
	AssetZoneMembershipClassification = TypeDef{"a1c7d84c-2a29-4943-8e93-fc344ca4c1db", "AssetZoneMembership"}
	AssetOwnershipClassification      = TypeDef{"d531c566-4a58-44cd-8224-3c9e339963e1", "AssetOwnership"}
)

// Property names used in entity property bags
const (
	QualifiedNameProperty        = "qualifiedName"
	DisplayNameProperty          = "displayName"
	NameProperty                 = "name"
	DescriptionProperty          = "description"
	AdditionalPropertiesProperty = "additionalProperties"

	CommentTypeProperty = "commentType"
	CommentTextProperty = "comment"

	StarRatingProperty = "stars"
	ReviewProperty     = "review"

	TagNameProperty        = "tagName"
	TagDescriptionProperty = "tagDescription"
	IsPrivateTagProperty   = "isPrivateTag"

	TitleProperty      = "title"
	SummaryProperty    = "summary"
	StartProperty      = "start"
	EndProperty        = "end"
	ConditionsProperty = "conditions"
	CustodianProperty  = "custodian"

	AddressProperty          = "networkAddress"
	ProtocolProperty         = "protocol"
	EncryptionMethodProperty = "encryptionMethod"

	ConnectorProviderProperty = "connectorProviderClassName"

	UsageProperty          = "usage"
	ScopeProperty          = "scope"
	PreferredValueProperty = "preferredValue"
	IsDeprecatedProperty   = "isDeprecatedFlag"
	StrictRequirementProp  = "strictRequirement"

	CapabilityTypeProperty = "capabilityType"
	VersionProperty        = "version"
	PatchLevelProperty     = "patchLevel"
	SourceProperty         = "source"

	TextProperty       = "text"
	LastUpdateProperty = "lastUpdate"

	AnchorGUIDProperty      = "anchorGUID"
	AnchorTypeProperty      = "anchorType"
	AttachmentGUIDProperty  = "attachmentGUID"
	AttachmentTypeProperty  = "attachmentType"
	AttachmentOwnerProperty = "attachmentOwner"

	ZoneMembershipProperty = "zoneMembership"
	OwnerProperty          = "owner"
	OwnerTypeProperty      = "ownerType"
)

// Property names used in relationship property bags
const (
	IsPublicProperty = "isPublic"
)
