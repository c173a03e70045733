package beans

import (
	"github.com/opencatalog/metacat/internal/types"
)

// Asset describes a catalogued data asset. Zone membership and ownership are
// classification states carried by the entity, surfaced here as plain fields.
// ZoneMembership accepts either a JSON array or a bare string on input.
type Asset struct {
	Referenceable
	DisplayName    string                 `json:"displayName,omitempty"`
	Description    string                 `json:"description,omitempty"`
	Owner          string                 `json:"owner,omitempty"`
	ZoneMembership types.FlexList[string] `json:"zoneMembership,omitempty"`
}

// AssetSummary is the lightweight listing form of an Asset.
type AssetSummary struct {
	ElementHeader
	QualifiedName string `json:"qualifiedName"`
	DisplayName   string `json:"displayName,omitempty"`
	Description   string `json:"description,omitempty"`
}
