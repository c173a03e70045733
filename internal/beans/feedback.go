package beans

// CommentKind categorizes a comment.
type CommentKind string

const (
	CommentKindInformation     CommentKind = "INFORMATION"
	CommentKindQuestion        CommentKind = "QUESTION"
	CommentKindAnswer          CommentKind = "ANSWER"
	CommentKindSuggestion      CommentKind = "SUGGESTION"
	CommentKindUsageExperience CommentKind = "USAGE_EXPERIENCE"
)

// ValidCommentKinds lists the accepted comment kinds, for enum validation.
var ValidCommentKinds = []CommentKind{
	CommentKindInformation,
	CommentKindQuestion,
	CommentKindAnswer,
	CommentKindSuggestion,
	CommentKindUsageExperience,
}

// Comment is a feedback comment attached to a referenceable.
type Comment struct {
	ElementHeader
	Kind     CommentKind `json:"commentType"`
	Text     string      `json:"commentText"`
	User     string      `json:"user"`
	IsPublic bool        `json:"isPublic"`
}

// Like records that a user liked a referenceable. A user holds at most one
// like per element.
type Like struct {
	ElementHeader
	User     string `json:"user"`
	IsPublic bool   `json:"isPublic"`
}

// StarRating is the review score scale.
type StarRating string

const (
	StarRatingNotRecommended StarRating = "NOT_RECOMMENDED"
	StarRatingOneStar        StarRating = "ONE_STAR"
	StarRatingTwoStars       StarRating = "TWO_STARS"
	StarRatingThreeStars     StarRating = "THREE_STARS"
	StarRatingFourStars      StarRating = "FOUR_STARS"
	StarRatingFiveStars      StarRating = "FIVE_STARS"
)

// ValidStarRatings lists the accepted ratings, for enum validation.
var ValidStarRatings = []StarRating{
	StarRatingNotRecommended,
	StarRatingOneStar,
	StarRatingTwoStars,
	StarRatingThreeStars,
	StarRatingFourStars,
	StarRatingFiveStars,
}

// Rating is a star rating plus optional review text. A user holds at most
// one rating per element.
type Rating struct {
	ElementHeader
	Stars    StarRating `json:"starRating"`
	Review   string     `json:"review,omitempty"`
	User     string     `json:"user"`
	IsPublic bool       `json:"isPublic"`
}

// InformalTag is a user-defined label. A private tag is visible only to its
// creator; the attachment to an element additionally carries its own
// visibility flag.
type InformalTag struct {
	ElementHeader
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	IsPrivateTag bool   `json:"isPrivateTag"`
	User         string `json:"user"`
}
