package lineedit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAdvancesByEncodedWidth(t *testing.T) {
	var e Editor
	e.Insert('a')
	e.Insert('é')
	e.Insert('日')
	e.Insert('b')

	assert.Equal(t, "aé日b", e.Text())
	assert.Equal(t, len("aé日b"), e.Cursor())
}

func TestInsertAtCursorAfterSetText(t *testing.T) {
	var e Editor
	e.SetText("/downloads")
	assert.Equal(t, len("/downloads"), e.Cursor())

	e.Insert('/')
	assert.Equal(t, "/downloads/", e.Text())
}

func TestBackspace(t *testing.T) {
	var e Editor
	e.Backspace()
	assert.Equal(t, "", e.Text())
	assert.Equal(t, 0, e.Cursor())

	e.SetText("añ日")
	e.Backspace()
	assert.Equal(t, "añ", e.Text())
	assert.Equal(t, len("añ"), e.Cursor())

	e.Backspace()
	assert.Equal(t, "a", e.Text())
	assert.Equal(t, 1, e.Cursor())

	e.Backspace()
	e.Backspace()
	assert.Equal(t, "", e.Text())
	assert.Equal(t, 0, e.Cursor())
}

func TestClear(t *testing.T) {
	var e Editor
	e.SetText("abc")
	e.ApplyCompletions([]string{"abcd", "abce"})

	e.Clear()
	assert.Equal(t, "", e.Text())
	assert.Equal(t, 0, e.Cursor())
	assert.Empty(t, e.Candidates())
	assert.Equal(t, 0, e.Index())
}

func TestApplyCompletions(t *testing.T) {
	var e Editor
	e.SetText("/tmp/a")

	e.ApplyCompletions([]string{"/tmp/a1", "/tmp/a2", "/tmp/a3"})
	assert.Equal(t, "/tmp/a1", e.Text())
	assert.Equal(t, 0, e.Index())

	e.ApplyCompletions([]string{"/tmp/a1", "/tmp/a2", "/tmp/a3"})
	assert.Equal(t, "/tmp/a2", e.Text())

	e.ApplyCompletions([]string{"/tmp/a1", "/tmp/a2", "/tmp/a3"})
	assert.Equal(t, "/tmp/a3", e.Text())

	e.ApplyCompletions([]string{"/tmp/a1", "/tmp/a2", "/tmp/a3"})
	assert.Equal(t, "/tmp/a1", e.Text(), "cycles back to the first candidate")
	assert.Equal(t, len("/tmp/a1"), e.Cursor())

	e.ApplyCompletions([]string{"/tmp/b"})
	assert.Equal(t, "/tmp/b", e.Text(), "a different list starts over")
	assert.Equal(t, 0, e.Index())

	e.ApplyCompletions(nil)
	assert.Equal(t, "/tmp/b", e.Text(), "empty list leaves text alone")
	assert.Empty(t, e.Candidates())
}

type fakeCompleter struct {
	results map[string][]string
	err     error
	calls   []string
}

func (f *fakeCompleter) Complete(_ context.Context, partial string) ([]string, error) {
	f.calls = append(f.calls, partial)
	if f.err != nil {
		return nil, f.err
	}
	return f.results[partial], nil
}

func TestCompleteCyclesFromOrigin(t *testing.T) {
	c := &fakeCompleter{results: map[string][]string{
		"/srv/m": {"/srv/media", "/srv/music"},
	}}

	var e Editor
	e.SetText("/srv/m")

	require.NoError(t, e.Complete(context.Background(), c))
	assert.Equal(t, "/srv/media", e.Text())

	require.NoError(t, e.Complete(context.Background(), c))
	assert.Equal(t, "/srv/music", e.Text())

	require.NoError(t, e.Complete(context.Background(), c))
	assert.Equal(t, "/srv/media", e.Text())

	assert.Equal(t, []string{"/srv/m", "/srv/m", "/srv/m"}, c.calls)
}

func TestCompleteAfterTypingUsesBuffer(t *testing.T) {
	c := &fakeCompleter{results: map[string][]string{
		"/srv/m":      {"/srv/media", "/srv/music"},
		"/srv/media/": {"/srv/media/films"},
	}}

	var e Editor
	e.SetText("/srv/m")
	require.NoError(t, e.Complete(context.Background(), c))
	e.Insert('/')

	require.NoError(t, e.Complete(context.Background(), c))
	assert.Equal(t, "/srv/media/films", e.Text())
	assert.Equal(t, "/srv/media/", c.calls[1])
}

func TestCompleteErrorLeavesBufferUnchanged(t *testing.T) {
	c := &fakeCompleter{err: errors.New("permission denied")}

	var e Editor
	e.SetText("/root/x")
	err := e.Complete(context.Background(), c)

	require.Error(t, err)
	assert.Equal(t, "/root/x", e.Text())
	assert.Equal(t, len("/root/x"), e.Cursor())
	assert.Empty(t, e.Candidates())
}

func TestCompleteWithoutCompleter(t *testing.T) {
	var e Editor
	e.SetText("x")
	require.NoError(t, e.Complete(context.Background(), nil))
	assert.Equal(t, "x", e.Text())
}

func TestCompleterFunc(t *testing.T) {
	f := CompleterFunc(func(_ context.Context, partial string) ([]string, error) {
		return []string{partial + "!"}, nil
	})

	var e Editor
	e.SetText("hi")
	require.NoError(t, e.Complete(context.Background(), f))
	assert.Equal(t, "hi!", e.Text())
}
