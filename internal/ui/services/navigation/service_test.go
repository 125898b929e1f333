package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigateWraps(t *testing.T) {
	s := NewService()
	assert.Equal(t, -1, s.GetCursor())

	s.Navigate(DirectionDown, 3)
	assert.Equal(t, 0, s.GetCursor())
	s.Navigate(DirectionDown, 3)
	s.Navigate(DirectionDown, 3)
	assert.Equal(t, 2, s.GetCursor())
	s.Navigate(DirectionDown, 3)
	assert.Equal(t, 0, s.GetCursor(), "wraps to the top")

	s.Navigate(DirectionUp, 3)
	assert.Equal(t, 2, s.GetCursor(), "wraps to the bottom")
}

func TestNavigateEmptyListClearsCursor(t *testing.T) {
	s := NewService()
	s.Navigate(DirectionDown, 2)
	s.Navigate(DirectionDown, 0)
	assert.Equal(t, -1, s.GetCursor())

	s.Navigate(DirectionUp, 0)
	assert.Equal(t, -1, s.GetCursor())
}

func TestUpWithoutCursorStartsAtTop(t *testing.T) {
	s := NewService()
	s.Navigate(DirectionUp, 4)
	assert.Equal(t, 0, s.GetCursor())
}

func TestClamp(t *testing.T) {
	s := NewService()
	s.MoveToIndex(8, 10)
	assert.Equal(t, 8, s.GetCursor())

	s.Clamp(5)
	assert.Equal(t, 4, s.GetCursor())

	s.Clamp(0)
	assert.Equal(t, -1, s.GetCursor())

	s.Clamp(3)
	assert.Equal(t, -1, s.GetCursor(), "clamping never creates a cursor")
}

func TestMoveToIndexClamps(t *testing.T) {
	s := NewService()
	s.MoveToIndex(-4, 3)
	assert.Equal(t, 0, s.GetCursor())
	s.MoveToIndex(99, 3)
	assert.Equal(t, 2, s.GetCursor())
}

func TestViewportFollowsCursor(t *testing.T) {
	s := NewService()
	s.SetViewportHeight(3)

	s.MoveToIndex(5, 10)
	assert.Equal(t, 3, s.GetViewportOffset())

	s.MoveToIndex(1, 10)
	assert.Equal(t, 1, s.GetViewportOffset())

	s.Navigate(DirectionHome, 10)
	assert.Equal(t, 0, s.GetViewportOffset())
}
