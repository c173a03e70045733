package beans

// Endpoint describes a network callout location for an asset's platform.
type Endpoint struct {
	Referenceable
	DisplayName      string `json:"displayName,omitempty"`
	Description      string `json:"description,omitempty"`
	Address          string `json:"networkAddress,omitempty"`
	Protocol         string `json:"protocol,omitempty"`
	EncryptionMethod string `json:"encryptionMethod,omitempty"`
}

// ConnectorType identifies the connector implementation able to reach a
// particular kind of asset.
type ConnectorType struct {
	Referenceable
	DisplayName                string `json:"displayName,omitempty"`
	Description                string `json:"description,omitempty"`
	ConnectorProviderClassName string `json:"connectorProviderClassName,omitempty"`
}

// SoftwareServerCapability describes a deployed capability of a software
// server, such as the engine that manages a set of assets.
type SoftwareServerCapability struct {
	Referenceable
	DisplayName    string `json:"displayName,omitempty"`
	Description    string `json:"description,omitempty"`
	CapabilityType string `json:"capabilityType,omitempty"`
	Version        string `json:"version,omitempty"`
	PatchLevel     string `json:"patchLevel,omitempty"`
	Source         string `json:"source,omitempty"`
}
