package services_test

import (
	"context"
	"testing"

	"github.com/opencatalog/metacat/internal/models"
	"github.com/opencatalog/metacat/internal/omtypes"
	"github.com/opencatalog/metacat/internal/types"
)

func TestMeaningsOfReferenceable(t *testing.T) {
	svcs, repo := newTestServices(t)
	ctx := context.Background()
	asset := createTestAsset(t, svcs, "alice", "asset.meanings")

	termGUID, err := repo.CreateEntity(ctx, "alice", omtypes.GlossaryTermType, models.PropertyMap{
		"qualifiedName": "term.customer",
		"displayName":   "Customer",
		"description":   "A party we do business with",
	})
	if err != nil {
		t.Fatalf("Failed to create glossary term: %v", err)
	}
	if _, err := repo.CreateRelationship(ctx, "alice", omtypes.SemanticAssignmentRel, asset, termGUID, nil); err != nil {
		t.Fatalf("Failed to assign term: %v", err)
	}

	meaning, err := svcs.Meaning.GetMeaning(ctx, "bob", termGUID)
	if err != nil {
		t.Fatalf("Failed to get meaning: %v", err)
	}
	if meaning.Name != "Customer" {
		t.Errorf("Expected term name Customer, got %q", meaning.Name)
	}

	meanings, err := svcs.Meaning.GetMeanings(ctx, "bob", asset, "Asset", 0, 10)
	if err != nil {
		t.Fatalf("Failed to get meanings: %v", err)
	}
	if len(meanings) != 1 || meanings[0].GUID != termGUID {
		t.Fatalf("Expected the assigned term, got %d entries", len(meanings))
	}

	byName, err := svcs.Meaning.GetMeaningsByName(ctx, "bob", "Customer", 0, 10)
	if err != nil {
		t.Fatalf("Failed by-name search: %v", err)
	}
	if len(byName) != 1 {
		t.Errorf("Expected one term by name, got %d", len(byName))
	}
}

func TestLocationAttachment(t *testing.T) {
	svcs, repo := newTestServices(t)
	ctx := context.Background()
	asset := createTestAsset(t, svcs, "alice", "asset.located")

	locationGUID, err := repo.CreateEntity(ctx, "alice", omtypes.LocationType, models.PropertyMap{
		"qualifiedName": "loc.dc-east",
		"displayName":   "East Data Center",
	})
	if err != nil {
		t.Fatalf("Failed to create location: %v", err)
	}

	if err := svcs.Location.AddLocation(ctx, "alice", asset, "Asset", locationGUID); err != nil {
		t.Fatalf("Failed to add location: %v", err)
	}
	count, err := svcs.Location.CountKnownLocations(ctx, "alice", asset, "Asset")
	if err != nil {
		t.Fatalf("Failed to count locations: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 location, got %d", count)
	}

	location, err := svcs.Location.GetLocation(ctx, "alice", locationGUID)
	if err != nil {
		t.Fatalf("Failed to get location: %v", err)
	}
	if location.DisplayName != "East Data Center" {
		t.Errorf("Unexpected location: %+v", location)
	}

	byName, err := svcs.Location.GetLocationsByName(ctx, "alice", "East Data Center", 0, 10)
	if err != nil {
		t.Fatalf("Failed by-name search: %v", err)
	}
	if len(byName) != 1 {
		t.Errorf("Expected one location by name, got %d", len(byName))
	}

	if err := svcs.Location.RemoveLocation(ctx, "alice", asset, "Asset", locationGUID); err != nil {
		t.Fatalf("Failed to remove location: %v", err)
	}
	err = svcs.Location.RemoveLocation(ctx, "alice", asset, "Asset", locationGUID)
	if !types.IsNotFound(err) {
		t.Errorf("Expected not found removing absent location link, got %v", err)
	}
}

func TestNoteLogsAndNotes(t *testing.T) {
	svcs, repo := newTestServices(t)
	ctx := context.Background()
	asset := createTestAsset(t, svcs, "alice", "asset.notelogs")

	logGUID, err := repo.CreateEntity(ctx, "alice", omtypes.NoteLogType, models.PropertyMap{
		"qualifiedName": "notelog.ops",
		"name":          "Operations Log",
	})
	if err != nil {
		t.Fatalf("Failed to create note log: %v", err)
	}
	if _, err := repo.CreateRelationship(ctx, "alice", omtypes.AttachedNoteLogRel, asset, logGUID, models.PropertyMap{
		"isPublic": false,
	}); err != nil {
		t.Fatalf("Failed to attach note log: %v", err)
	}

	noteGUID, err := repo.CreateEntity(ctx, "alice", omtypes.NoteEntryType, models.PropertyMap{
		"text": "Rotated credentials",
	})
	if err != nil {
		t.Fatalf("Failed to create note: %v", err)
	}
	if _, err := repo.CreateRelationship(ctx, "alice", omtypes.AttachedNoteLogEntryRel, logGUID, noteGUID, nil); err != nil {
		t.Fatalf("Failed to attach note: %v", err)
	}

	// The note log attachment is private: the creator sees it, bob does not
	aliceLogs, err := svcs.NoteLog.GetNoteLogs(ctx, "alice", asset, "Asset", 0, 10)
	if err != nil {
		t.Fatalf("Failed to get note logs: %v", err)
	}
	if len(aliceLogs) != 1 || aliceLogs[0].Name != "Operations Log" {
		t.Fatalf("Expected the note log for alice, got %d entries", len(aliceLogs))
	}
	if aliceLogs[0].IsPublic {
		t.Error("Expected a private note log attachment")
	}
	bobLogs, err := svcs.NoteLog.GetNoteLogs(ctx, "bob", asset, "Asset", 0, 10)
	if err != nil {
		t.Fatalf("Failed to get note logs for bob: %v", err)
	}
	if len(bobLogs) != 0 {
		t.Errorf("Expected no note logs visible to bob, got %d", len(bobLogs))
	}

	notes, err := svcs.NoteLog.GetNotes(ctx, "alice", logGUID, 0, 10)
	if err != nil {
		t.Fatalf("Failed to get notes: %v", err)
	}
	if len(notes) != 1 || notes[0].Text != "Rotated credentials" {
		t.Fatalf("Expected the note entry, got %d entries", len(notes))
	}
	noteCount, _ := svcs.NoteLog.CountNotes(ctx, "alice", logGUID)
	if noteCount != 1 {
		t.Errorf("Expected 1 note, got %d", noteCount)
	}
}
