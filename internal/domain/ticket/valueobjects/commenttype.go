package valueobjects

import "fmt"

type CommentType string

const (
	CommentTypeComment  CommentType = "Comment"
	CommentTypeSystem   CommentType = "System"
	CommentTypeInternal CommentType = "Internal"
)

func (ct CommentType) String() string {
	return string(ct)
}

func (ct CommentType) IsValid() bool {
	switch ct {
	case CommentTypeComment, CommentTypeSystem, CommentTypeInternal:
		return true
	}
	return false
}

// IsRestricted reports whether only ticket managers may author this type.
func (ct CommentType) IsRestricted() bool {
	return ct == CommentTypeSystem || ct == CommentTypeInternal
}

// NewCommentType defaults an empty value to Comment.
func NewCommentType(s string) (CommentType, error) {
	if s == "" {
		return CommentTypeComment, nil
	}
	ct := CommentType(s)
	if !ct.IsValid() {
		return "", fmt.Errorf("invalid comment type: %s", s)
	}
	return ct, nil
}
