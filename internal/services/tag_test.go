package services_test

import (
	"context"
	"testing"

	"github.com/opencatalog/metacat/internal/types"
)

func TestTagLifecycle(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()
	asset := createTestAsset(t, svcs, "alice", "asset.tagged")

	tagGUID, err := svcs.Tag.CreateTag(ctx, "alice", "gold-source", "Curated data", false)
	if err != nil {
		t.Fatalf("Failed to create tag: %v", err)
	}

	tag, err := svcs.Tag.GetTag(ctx, "bob", tagGUID)
	if err != nil {
		t.Fatalf("Failed to get public tag as another user: %v", err)
	}
	if tag.Name != "gold-source" || tag.Description != "Curated data" {
		t.Errorf("Unexpected tag content: %+v", tag)
	}

	if err := svcs.Tag.UpdateTagDescription(ctx, "alice", tagGUID, "Curated, verified data"); err != nil {
		t.Fatalf("Failed to update tag description: %v", err)
	}
	tag, _ = svcs.Tag.GetTag(ctx, "alice", tagGUID)
	if tag.Description != "Curated, verified data" {
		t.Errorf("Expected updated description, got %q", tag.Description)
	}

	if err := svcs.Tag.AddTagToReferenceable(ctx, "alice", asset, "Asset", tagGUID, true); err != nil {
		t.Fatalf("Failed to attach tag: %v", err)
	}
	tags, err := svcs.Tag.GetTags(ctx, "bob", asset, "Asset", 0, 10)
	if err != nil {
		t.Fatalf("Failed to list tags: %v", err)
	}
	if len(tags) != 1 || tags[0].GUID != tagGUID {
		t.Fatalf("Expected the attached tag, got %d entries", len(tags))
	}

	if err := svcs.Tag.RemoveTagFromReferenceable(ctx, "alice", asset, "Asset", tagGUID); err != nil {
		t.Fatalf("Failed to detach tag: %v", err)
	}
	count, _ := svcs.Tag.CountTags(ctx, "alice", asset, "Asset")
	if count != 0 {
		t.Errorf("Expected 0 tags after detach, got %d", count)
	}

	// Detaching again is an error
	err = svcs.Tag.RemoveTagFromReferenceable(ctx, "alice", asset, "Asset", tagGUID)
	if !types.IsNotFound(err) {
		t.Errorf("Expected not found detaching absent tag, got %v", err)
	}

	if err := svcs.Tag.DeleteTag(ctx, "alice", tagGUID); err != nil {
		t.Fatalf("Failed to delete tag: %v", err)
	}
	_, err = svcs.Tag.GetTag(ctx, "alice", tagGUID)
	if !types.IsNotFound(err) {
		t.Errorf("Expected tag gone, got %v", err)
	}
}

func TestPrivateTagHiddenFromOtherUsers(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()
	asset := createTestAsset(t, svcs, "alice", "asset.private.tag")

	tagGUID, err := svcs.Tag.CreateTag(ctx, "alice", "my-shortlist", "", true)
	if err != nil {
		t.Fatalf("Failed to create private tag: %v", err)
	}
	if err := svcs.Tag.AddTagToReferenceable(ctx, "alice", asset, "Asset", tagGUID, true); err != nil {
		t.Fatalf("Failed to attach private tag: %v", err)
	}

	// The creator sees it everywhere
	if _, err := svcs.Tag.GetTag(ctx, "alice", tagGUID); err != nil {
		t.Errorf("Expected creator to see the private tag, got %v", err)
	}
	mine, _ := svcs.Tag.GetTagsByName(ctx, "alice", "my-shortlist", 0, 10)
	if len(mine) != 1 {
		t.Errorf("Expected creator to find the private tag by name, got %d", len(mine))
	}
	attached, _ := svcs.Tag.GetTags(ctx, "alice", asset, "Asset", 0, 10)
	if len(attached) != 1 {
		t.Errorf("Expected creator to see the attached private tag, got %d", len(attached))
	}

	// Everyone else sees nothing
	_, err = svcs.Tag.GetTag(ctx, "bob", tagGUID)
	if !types.IsNotFound(err) {
		t.Errorf("Expected private tag to read as not found for bob, got %v", err)
	}
	theirs, _ := svcs.Tag.GetTagsByName(ctx, "bob", "my-shortlist", 0, 10)
	if len(theirs) != 0 {
		t.Errorf("Expected no by-name matches for bob, got %d", len(theirs))
	}
	visible, _ := svcs.Tag.GetTags(ctx, "bob", asset, "Asset", 0, 10)
	if len(visible) != 0 {
		t.Errorf("Expected no attached tags visible to bob, got %d", len(visible))
	}
}
