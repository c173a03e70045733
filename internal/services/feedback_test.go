package services_test

import (
	"context"
	"testing"

	"github.com/opencatalog/metacat/internal/beans"
	"github.com/opencatalog/metacat/internal/types"
)

func TestCommentLifecycle(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()
	asset := createTestAsset(t, svcs, "alice", "asset.comments")

	commentGUID, err := svcs.Comment.AddCommentToReferenceable(ctx, "alice", asset, "Asset",
		beans.CommentKindQuestion, "Is this the right data set?", true)
	if err != nil {
		t.Fatalf("Failed to add comment: %v", err)
	}

	replyGUID, err := svcs.Comment.AddCommentReply(ctx, "bob", commentGUID,
		beans.CommentKindAnswer, "Yes it is.", true)
	if err != nil {
		t.Fatalf("Failed to add reply: %v", err)
	}

	// The reply hangs off the comment, not the asset
	comments, err := svcs.Comment.GetComments(ctx, "alice", asset, "Asset", 0, 10)
	if err != nil {
		t.Fatalf("Failed to get comments: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("Expected 1 comment on the asset, got %d", len(comments))
	}
	if comments[0].GUID != commentGUID {
		t.Errorf("Expected comment %s, got %s", commentGUID, comments[0].GUID)
	}
	if comments[0].Kind != beans.CommentKindQuestion {
		t.Errorf("Expected QUESTION, got %s", comments[0].Kind)
	}
	if comments[0].User != "alice" {
		t.Errorf("Expected user alice, got %s", comments[0].User)
	}

	replies, err := svcs.Comment.GetComments(ctx, "alice", commentGUID, "Comment", 0, 10)
	if err != nil {
		t.Fatalf("Failed to get replies: %v", err)
	}
	if len(replies) != 1 || replies[0].GUID != replyGUID {
		t.Fatalf("Expected the reply under the comment, got %d entries", len(replies))
	}

	if err := svcs.Comment.UpdateComment(ctx, "alice", commentGUID, beans.CommentKindInformation, "Answered."); err != nil {
		t.Fatalf("Failed to update comment: %v", err)
	}
	comments, _ = svcs.Comment.GetComments(ctx, "alice", asset, "Asset", 0, 10)
	if comments[0].Text != "Answered." || comments[0].Kind != beans.CommentKindInformation {
		t.Errorf("Expected updated text and kind, got %q %s", comments[0].Text, comments[0].Kind)
	}

	if err := svcs.Comment.RemoveComment(ctx, "alice", asset, "Asset", commentGUID); err != nil {
		t.Fatalf("Failed to remove comment: %v", err)
	}
	count, err := svcs.Comment.CountComments(ctx, "alice", asset, "Asset")
	if err != nil {
		t.Fatalf("Failed to count comments: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 comments after removal, got %d", count)
	}
}

func TestCommentVisibilityBetweenUsers(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()
	asset := createTestAsset(t, svcs, "alice", "asset.visibility")

	if _, err := svcs.Comment.AddCommentToReferenceable(ctx, "alice", asset, "Asset",
		beans.CommentKindInformation, "My private note", false); err != nil {
		t.Fatalf("Failed to add private comment: %v", err)
	}
	if _, err := svcs.Comment.AddCommentToReferenceable(ctx, "bob", asset, "Asset",
		beans.CommentKindInformation, "Public remark", true); err != nil {
		t.Fatalf("Failed to add public comment: %v", err)
	}

	// Alice sees her own private comment plus bob's public one
	aliceView, err := svcs.Comment.GetComments(ctx, "alice", asset, "Asset", 0, 10)
	if err != nil {
		t.Fatalf("Failed alice's view: %v", err)
	}
	if len(aliceView) != 2 {
		t.Errorf("Expected alice to see 2 comments, got %d", len(aliceView))
	}

	// Bob sees only his own
	bobView, err := svcs.Comment.GetComments(ctx, "bob", asset, "Asset", 0, 10)
	if err != nil {
		t.Fatalf("Failed bob's view: %v", err)
	}
	if len(bobView) != 1 {
		t.Errorf("Expected bob to see 1 comment, got %d", len(bobView))
	}
	if len(bobView) == 1 && bobView[0].User != "bob" {
		t.Errorf("Expected bob's own comment, got one by %s", bobView[0].User)
	}

	aliceCount, _ := svcs.Comment.CountComments(ctx, "alice", asset, "Asset")
	bobCount, _ := svcs.Comment.CountComments(ctx, "bob", asset, "Asset")
	if aliceCount != 2 || bobCount != 1 {
		t.Errorf("Expected counts 2/1, got %d/%d", aliceCount, bobCount)
	}
}

func TestLikeIsSingletonPerUser(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()
	asset := createTestAsset(t, svcs, "alice", "asset.likes")

	if err := svcs.Like.AddLikeToReferenceable(ctx, "alice", asset, "Asset", true); err != nil {
		t.Fatalf("Failed to add like: %v", err)
	}
	// Liking again replaces the first like; the new visibility wins
	if err := svcs.Like.AddLikeToReferenceable(ctx, "alice", asset, "Asset", false); err != nil {
		t.Fatalf("Failed to re-like: %v", err)
	}

	aliceCount, err := svcs.Like.CountLikes(ctx, "alice", asset, "Asset")
	if err != nil {
		t.Fatalf("Failed to count likes: %v", err)
	}
	if aliceCount != 1 {
		t.Errorf("Expected a single like for alice, got %d", aliceCount)
	}

	// The surviving like is private, so bob sees none
	bobCount, err := svcs.Like.CountLikes(ctx, "bob", asset, "Asset")
	if err != nil {
		t.Fatalf("Failed to count likes for bob: %v", err)
	}
	if bobCount != 0 {
		t.Errorf("Expected bob to see 0 likes, got %d", bobCount)
	}
}

func TestRemoveLike(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()
	asset := createTestAsset(t, svcs, "alice", "asset.unlike")

	// Removing a like that was never given is an error
	err := svcs.Like.RemoveLikeFromReferenceable(ctx, "alice", asset, "Asset")
	if !types.IsNotFound(err) {
		t.Errorf("Expected not found removing absent like, got %v", err)
	}

	if err := svcs.Like.AddLikeToReferenceable(ctx, "alice", asset, "Asset", true); err != nil {
		t.Fatalf("Failed to add like: %v", err)
	}
	if err := svcs.Like.RemoveLikeFromReferenceable(ctx, "alice", asset, "Asset"); err != nil {
		t.Fatalf("Failed to remove like: %v", err)
	}

	count, _ := svcs.Like.CountLikes(ctx, "alice", asset, "Asset")
	if count != 0 {
		t.Errorf("Expected 0 likes after removal, got %d", count)
	}

	// The tracker narrates the removal with no attachment GUID
	last, err := svcs.LastAttachment.GetLastAttachment(ctx, "alice", asset, "Asset")
	if err != nil {
		t.Fatalf("Failed to get last attachment: %v", err)
	}
	if last == nil {
		t.Fatal("Expected a last attachment record")
	}
	if last.AttachmentGUID != "" {
		t.Errorf("Expected empty attachment GUID after removal, got %s", last.AttachmentGUID)
	}
}

func TestRatingValidationAndReplacement(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()
	asset := createTestAsset(t, svcs, "alice", "asset.ratings")

	err := svcs.Rating.AddRatingToReferenceable(ctx, "alice", asset, "Asset", "SIX_STARS", "", true)
	if !types.IsInvalidParameter(err) {
		t.Errorf("Expected invalid parameter for unknown star rating, got %v", err)
	}

	if err := svcs.Rating.AddRatingToReferenceable(ctx, "alice", asset, "Asset",
		beans.StarRatingThreeStars, "Decent", true); err != nil {
		t.Fatalf("Failed to add rating: %v", err)
	}
	if err := svcs.Rating.AddRatingToReferenceable(ctx, "alice", asset, "Asset",
		beans.StarRatingFiveStars, "Changed my mind", true); err != nil {
		t.Fatalf("Failed to re-rate: %v", err)
	}

	ratings, err := svcs.Rating.GetRatings(ctx, "alice", asset, "Asset", 0, 10)
	if err != nil {
		t.Fatalf("Failed to get ratings: %v", err)
	}
	if len(ratings) != 1 {
		t.Fatalf("Expected a single rating, got %d", len(ratings))
	}
	if ratings[0].Stars != beans.StarRatingFiveStars {
		t.Errorf("Expected the replacement rating, got %s", ratings[0].Stars)
	}
	if ratings[0].Review != "Changed my mind" {
		t.Errorf("Expected the replacement review, got %q", ratings[0].Review)
	}
}

func TestFeedbackPagingValidation(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()
	asset := createTestAsset(t, svcs, "alice", "asset.paging")

	_, err := svcs.Comment.GetComments(ctx, "alice", asset, "Asset", 0, 0)
	if !types.IsInvalidParameter(err) {
		t.Errorf("Expected invalid parameter for zero page size, got %v", err)
	}
	_, err = svcs.Comment.GetComments(ctx, "alice", asset, "Asset", -1, 10)
	if !types.IsInvalidParameter(err) {
		t.Errorf("Expected invalid parameter for negative start, got %v", err)
	}
	_, err = svcs.Comment.GetComments(ctx, "", asset, "Asset", 0, 10)
	if !types.IsInvalidParameter(err) {
		t.Errorf("Expected invalid parameter for blank user, got %v", err)
	}

	// The configured maximum (100) bounds the page size; a larger request
	// must fail rather than quietly return a shortened page.
	_, err = svcs.Comment.GetComments(ctx, "alice", asset, "Asset", 0, 1000)
	if !types.IsInvalidParameter(err) {
		t.Errorf("Expected invalid parameter for oversized page, got %v", err)
	}
	_, err = svcs.Comment.GetComments(ctx, "alice", asset, "Asset", 0, 100)
	if err != nil {
		t.Errorf("Expected the maximum page size to be accepted, got %v", err)
	}
	_, err = svcs.Comment.GetComments(ctx, "alice", asset, "Asset", 0, 101)
	if !types.IsInvalidParameter(err) {
		t.Errorf("Expected invalid parameter just above the maximum, got %v", err)
	}
}

func TestCommentOnUnknownAnchor(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	_, err := svcs.Comment.AddCommentToReferenceable(ctx, "alice", "no-such-anchor", "Asset",
		beans.CommentKindInformation, "orphan", true)
	if !types.IsInvalidParameter(err) {
		t.Errorf("Expected invalid parameter for unknown anchor, got %v", err)
	}
}
