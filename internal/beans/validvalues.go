package beans

// ValidValue is a valid value definition or, when IsSet is true, a set that
// collects member definitions.
type ValidValue struct {
	Referenceable
	DisplayName    string `json:"displayName,omitempty"`
	Description    string `json:"description,omitempty"`
	Usage          string `json:"usage,omitempty"`
	Scope          string `json:"scope,omitempty"`
	PreferredValue string `json:"preferredValue,omitempty"`
	IsDeprecated   bool   `json:"isDeprecated"`
	IsSet          bool   `json:"isSet"`
}

// ValidValueConsumer links a consuming referenceable to a valid value
// assignment, with the strictness of the assignment.
type ValidValueConsumer struct {
	Consumer          Referenceable `json:"consumer"`
	StrictRequirement bool          `json:"strictRequirement"`
}
