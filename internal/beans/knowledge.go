package beans

// Meaning is a glossary term assigned to an element to describe what it
// means in business vocabulary.
type Meaning struct {
	ElementHeader
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Location describes where an asset or other element resides.
type Location struct {
	Referenceable
	DisplayName string `json:"displayName,omitempty"`
	Description string `json:"description,omitempty"`
}

// NoteLog is a journal of notes attached to an element.
type NoteLog struct {
	Referenceable
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	IsPublic    bool   `json:"isPublic"`
}

// Note is a single entry in a note log.
type Note struct {
	ElementHeader
	Text       string `json:"text"`
	User       string `json:"user"`
	LastUpdate string `json:"lastUpdate,omitempty"`
}
