package services

import (
	"context"

	"github.com/opencatalog/metacat/internal/beans"
	"github.com/opencatalog/metacat/internal/omtypes"
	"github.com/opencatalog/metacat/internal/repository"
)

// NoteLogService is the read side of note logs: journals attached to an
// element with visibility-scoped attachments, each holding a sequence of
// note entries.
type NoteLogService struct {
	repo     repository.Metadata
	feedback *AttachmentService
	plain    *AttachmentService
}

func NewNoteLogService(repo repository.Metadata, feedback, plain *AttachmentService) *NoteLogService {
	return &NoteLogService{repo: repo, feedback: feedback, plain: plain}
}

// GetNoteLogs returns one page of the note logs on the anchor visible to the
// caller.
func (s *NoteLogService) GetNoteLogs(ctx context.Context, userID, anchorGUID, anchorTypeName string, startFrom, pageSize int) ([]*beans.NoteLog, error) {
	attached, err := s.feedback.GetAttachments(ctx, userID, anchorGUID, anchorTypeName,
		omtypes.AttachedNoteLogRel, omtypes.NoteLogType.Name, startFrom, pageSize)
	if err != nil {
		return nil, err
	}

	logs := make([]*beans.NoteLog, 0, len(attached))
	for _, a := range attached {
		logs = append(logs, noteLogFromEntity(a.Entity, a.Relationship))
	}
	return logs, nil
}

// CountNoteLogs returns the number of note logs on the anchor visible to the
// caller.
func (s *NoteLogService) CountNoteLogs(ctx context.Context, userID, anchorGUID, anchorTypeName string) (int, error) {
	return s.feedback.CountAttachments(ctx, userID, anchorGUID, anchorTypeName, omtypes.AttachedNoteLogRel)
}

// GetNotes returns one page of the entries in a note log. Entry visibility
// is governed by the log's attachment, not per entry.
func (s *NoteLogService) GetNotes(ctx context.Context, userID, noteLogGUID string, startFrom, pageSize int) ([]*beans.Note, error) {
	attached, err := s.plain.GetAttachments(ctx, userID, noteLogGUID, omtypes.NoteLogType.Name,
		omtypes.AttachedNoteLogEntryRel, omtypes.NoteEntryType.Name, startFrom, pageSize)
	if err != nil {
		return nil, err
	}

	notes := make([]*beans.Note, 0, len(attached))
	for _, a := range attached {
		notes = append(notes, noteFromEntity(a.Entity))
	}
	return notes, nil
}

// CountNotes returns the number of entries in a note log.
func (s *NoteLogService) CountNotes(ctx context.Context, userID, noteLogGUID string) (int, error) {
	return s.plain.CountAttachments(ctx, userID, noteLogGUID, omtypes.NoteLogType.Name, omtypes.AttachedNoteLogEntryRel)
}
