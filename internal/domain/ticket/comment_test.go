package ticket

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/opsdesk-inc/opsdesk/internal/domain/ticket/valueobjects"
)

func TestNewComment(t *testing.T) {
	c, err := NewComment(1, requesterID, "still broken", vo.CommentTypeComment, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, uint(1), c.TicketID())
	assert.Equal(t, requesterID, *c.UserID())
	assert.Equal(t, vo.CommentTypeComment, c.Type())
}

func TestNewComment_Invalid(t *testing.T) {
	_, err := NewComment(0, requesterID, "x", vo.CommentTypeComment, fixedNow)
	assert.Error(t, err)

	_, err = NewComment(1, 0, "x", vo.CommentTypeComment, fixedNow)
	assert.Error(t, err)

	_, err = NewComment(1, requesterID, "   ", vo.CommentTypeComment, fixedNow)
	assert.Error(t, err)

	_, err = NewComment(1, requesterID, strings.Repeat("x", 5001), vo.CommentTypeComment, fixedNow)
	assert.Error(t, err)
}

func TestNewSystemComment_NilAuthor(t *testing.T) {
	c, err := NewSystemComment(1, nil, ReopenedByCommentMessage, fixedNow)
	require.NoError(t, err)
	assert.Nil(t, c.UserID())
	assert.Equal(t, vo.CommentTypeSystem, c.Type())
}
