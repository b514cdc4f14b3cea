package analysis

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// minCommentsLength is the shortest description worth analyzing.
const minCommentsLength = 5

// ValidateAnalyzeRequest rejects requests before the bridge is ever
// invoked: comments must be present and long enough to describe anything.
func ValidateAnalyzeRequest(req *AnalyzeRequest) error {
	comments := strings.TrimSpace(req.Comments)
	if comments == "" {
		return errors.New("comments are required")
	}
	if utf8.RuneCountInString(comments) < minCommentsLength {
		return errors.New("comments must be at least 5 characters")
	}
	return nil
}
