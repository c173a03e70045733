package services_test

import (
	"context"
	"testing"

	"github.com/opencatalog/metacat/internal/beans"
	"github.com/opencatalog/metacat/internal/omtypes"
)

func TestLastAttachmentNeverTracked(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()
	asset := createTestAsset(t, svcs, "alice", "asset.untracked")

	last, err := svcs.LastAttachment.GetLastAttachment(ctx, "alice", asset, "Asset")
	if err != nil {
		t.Fatalf("Failed to get last attachment: %v", err)
	}
	if last != nil {
		t.Errorf("Expected nil for an anchor with no tracked changes, got %+v", last)
	}
}

func TestLastAttachmentSingletonUpdatesInPlace(t *testing.T) {
	svcs, repo := newTestServices(t)
	ctx := context.Background()
	asset := createTestAsset(t, svcs, "alice", "asset.tracked")

	if _, err := svcs.Comment.AddCommentToReferenceable(ctx, "alice", asset, "Asset",
		beans.CommentKindInformation, "first", true); err != nil {
		t.Fatalf("Failed to add first comment: %v", err)
	}
	second, err := svcs.Comment.AddCommentToReferenceable(ctx, "bob", asset, "Asset",
		beans.CommentKindInformation, "second", true)
	if err != nil {
		t.Fatalf("Failed to add second comment: %v", err)
	}

	last, err := svcs.LastAttachment.GetLastAttachment(ctx, "alice", asset, "Asset")
	if err != nil {
		t.Fatalf("Failed to get last attachment: %v", err)
	}
	if last == nil {
		t.Fatal("Expected a last attachment record")
	}
	if last.AttachmentGUID != second {
		t.Errorf("Expected the latest attachment %s, got %s", second, last.AttachmentGUID)
	}
	if last.AttachmentType != "Comment" {
		t.Errorf("Expected attachment type Comment, got %s", last.AttachmentType)
	}
	if last.AttachmentOwner != "bob" {
		t.Errorf("Expected attachment owner bob, got %s", last.AttachmentOwner)
	}
	if last.AnchorGUID != asset {
		t.Errorf("Expected anchor %s, got %s", asset, last.AnchorGUID)
	}

	// One tracker link per anchor, however many changes were recorded
	links, err := repo.GetRelationshipsByType(ctx, "metacatnpa", asset, "Asset", omtypes.LastAttachmentLinkRel)
	if err != nil {
		t.Fatalf("Failed to query tracker links: %v", err)
	}
	if len(links) != 1 {
		t.Errorf("Expected exactly one tracker link, got %d", len(links))
	}
}

func TestLastAttachmentWrittenUnderServerIdentity(t *testing.T) {
	svcs, repo := newTestServices(t)
	ctx := context.Background()
	asset := createTestAsset(t, svcs, "alice", "asset.npa")

	if err := svcs.Like.AddLikeToReferenceable(ctx, "alice", asset, "Asset", true); err != nil {
		t.Fatalf("Failed to add like: %v", err)
	}

	links, err := repo.GetRelationshipsByType(ctx, "alice", asset, "Asset", omtypes.LastAttachmentLinkRel)
	if err != nil {
		t.Fatalf("Failed to query tracker links: %v", err)
	}
	if len(links) != 1 {
		t.Fatalf("Expected one tracker link, got %d", len(links))
	}
	tracker, err := repo.GetEntityForRelationship(ctx, "alice", links[0], true, omtypes.LastAttachmentType.Name)
	if err != nil {
		t.Fatalf("Failed to load tracker entity: %v", err)
	}
	if tracker.CreatedBy != "metacatnpa" {
		t.Errorf("Expected tracker created by the server identity, got %s", tracker.CreatedBy)
	}
}
