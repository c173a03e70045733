package beans

// Certification records that an element meets the requirements of a
// certification type. Certifications are compliance facts, not personal
// feedback, and are never visibility-filtered.
type Certification struct {
	Referenceable
	Title      string `json:"title,omitempty"`
	Summary    string `json:"summary,omitempty"`
	Start      string `json:"start,omitempty"`
	End        string `json:"end,omitempty"`
	Conditions string `json:"conditions,omitempty"`
	Custodian  string `json:"custodian,omitempty"`
}

// License records the terms under which an element may be used. Same
// visibility semantics as Certification.
type License struct {
	Referenceable
	Title      string `json:"title,omitempty"`
	Summary    string `json:"summary,omitempty"`
	Start      string `json:"start,omitempty"`
	End        string `json:"end,omitempty"`
	Conditions string `json:"conditions,omitempty"`
	Custodian  string `json:"custodian,omitempty"`
}
