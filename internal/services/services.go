package services

import (
	"go.uber.org/zap"

	"github.com/opencatalog/metacat/internal/config"
	"github.com/opencatalog/metacat/internal/repository"
)

// Services bundles every handler service over one repository gateway. The
// HTTP layer receives this and nothing else.
type Services struct {
	Referenceable  *ReferenceableService
	Asset          *AssetService
	Comment        *CommentService
	Like           *LikeService
	Rating         *RatingService
	Tag            *TagService
	Certification  *CertificationService
	License        *LicenseService
	Endpoint       *EndpointService
	ConnectorType  *ConnectorTypeService
	Meaning        *MeaningService
	Location       *LocationService
	NoteLog        *NoteLogService
	Capability     *SoftwareServerCapabilityService
	ValidValues    *ValidValuesService
	LastAttachment *LastAttachmentService
	Health         *HealthService
}

// New wires the service layer. Feedback services share the visibility-scoped
// attachment machinery, governance and knowledge services the unfiltered
// one, and every mutating attachment path shares a single tracker.
func New(cfg *config.Config, repo repository.Metadata, log *zap.SugaredLogger) *Services {
	feedback := NewFeedbackAttachmentService(repo, cfg.MaxPageSize)
	plain := NewAttachmentService(repo, cfg.MaxPageSize)
	tracker := NewLastAttachmentService(repo, log, cfg.LocalServerUserID)

	return &Services{
		Referenceable:  NewReferenceableService(repo),
		Asset:          NewAssetService(repo, cfg.DefaultZones, cfg.MaxPageSize),
		Comment:        NewCommentService(repo, feedback, tracker),
		Like:           NewLikeService(repo, feedback, tracker),
		Rating:         NewRatingService(repo, feedback, tracker),
		Tag:            NewTagService(repo, feedback, tracker, cfg.MaxPageSize),
		Certification:  NewCertificationService(repo, plain, tracker),
		License:        NewLicenseService(repo, plain, tracker),
		Endpoint:       NewEndpointService(repo),
		ConnectorType:  NewConnectorTypeService(repo),
		Meaning:        NewMeaningService(repo, plain, cfg.MaxPageSize),
		Location:       NewLocationService(repo, plain, tracker, cfg.MaxPageSize),
		NoteLog:        NewNoteLogService(repo, feedback, plain),
		Capability:     NewSoftwareServerCapabilityService(repo),
		ValidValues:    NewValidValuesService(repo, cfg.MaxPageSize),
		LastAttachment: tracker,
		Health:         NewHealthService(cfg, repo),
	}
}
