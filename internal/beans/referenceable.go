// Package beans holds the domain beans the handler services return to
// callers. Beans are plain data; conversion to and from repository property
// bags happens in the services package.
package beans

// ElementHeader identifies a metadata element.
type ElementHeader struct {
	GUID     string `json:"guid"`
	TypeName string `json:"typeName"`
}

// Referenceable is the common base for metadata elements that carry a unique
// qualified name.
type Referenceable struct {
	ElementHeader
	QualifiedName        string            `json:"qualifiedName"`
	AdditionalProperties map[string]string `json:"additionalProperties,omitempty"`
}
