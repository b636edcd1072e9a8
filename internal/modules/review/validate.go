package review

import (
	"strings"
	"unicode/utf8"

	"github.com/giftpanner/storefront/internal/platform/errs"
)

const (
	minCommentLength = 5
	minAuthorLength  = 2
)

// ValidateSubmission applies the review form rules. The store does not call
// it: AddReview persists whatever it is given.
func ValidateSubmission(rating int, comment, author string) error {
	if rating < 1 || rating > 5 {
		return errs.Invalid("rating", "rating must be between 1 and 5")
	}
	if utf8.RuneCountInString(strings.TrimSpace(comment)) < minCommentLength {
		return errs.Invalid("comment", "comment must be at least 5 characters")
	}
	if utf8.RuneCountInString(strings.TrimSpace(author)) < minAuthorLength {
		return errs.Invalid("author", "author must be at least 2 characters")
	}
	return nil
}
