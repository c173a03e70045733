package beans

import "time"

// LastAttachment is the singleton bookkeeping record describing the most
// recent attachment event on an anchor element. AttachmentGUID is empty when
// the latest event removed an attachment.
type LastAttachment struct {
	ElementHeader
	AnchorGUID      string    `json:"anchorGUID"`
	AnchorType      string    `json:"anchorType"`
	AttachmentGUID  string    `json:"attachmentGUID,omitempty"`
	AttachmentType  string    `json:"attachmentType,omitempty"`
	AttachmentOwner string    `json:"attachmentOwner,omitempty"`
	Description     string    `json:"description,omitempty"`
	UpdateTime      time.Time `json:"updateTime"`
}
