package dialogs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmDialogFlow(t *testing.T) {
	var d ConfirmDialog
	assert.False(t, d.IsOpen())

	d.Open("c1")
	require.True(t, d.IsOpen())
	assert.Equal(t, "c1", d.Pending())

	var committed string
	require.NoError(t, d.Confirm(func(target string) error {
		committed = target
		return nil
	}))
	assert.Equal(t, "c1", committed)
	assert.False(t, d.IsOpen())
}

func TestConfirmWithoutOpen(t *testing.T) {
	var d ConfirmDialog
	err := d.Confirm(func(string) error { return nil })
	assert.ErrorIs(t, err, ErrNotOpen)
}

func TestCancelDiscardsPending(t *testing.T) {
	var d ConfirmDialog
	d.Open("c1")
	d.Cancel()
	assert.False(t, d.IsOpen())
	assert.Empty(t, d.Pending())
}

func TestFailedCommitKeepsDialogOpen(t *testing.T) {
	var d ConfirmDialog
	d.Open("c1")
	err := d.Confirm(func(string) error { return errors.New("network down") })
	require.Error(t, err)
	// the failure surfaces inline; the dialog must not silently vanish
	assert.True(t, d.IsOpen())
	assert.Equal(t, "c1", d.Pending())
}

func TestSelectionToggle(t *testing.T) {
	var d SelectionDialog
	d.Open()

	d.Toggle("a")
	d.Toggle("b")
	d.Toggle("a")
	assert.ElementsMatch(t, []string{"b"}, d.Selected())
}

func TestToggleAllAgainstVisibleList(t *testing.T) {
	var d SelectionDialog
	d.Open()
	visible := []string{"a", "b", "c"}

	d.ToggleAll(visible)
	assert.ElementsMatch(t, visible, d.Selected())

	// all visible selected -> clears
	d.ToggleAll(visible)
	assert.Empty(t, d.Selected())

	// partial selection -> select all visible, dropping anything off-screen
	d.Toggle("a")
	d.Toggle("offscreen")
	d.ToggleAll(visible)
	assert.ElementsMatch(t, visible, d.Selected())
}

func TestSelectionConfirmBatch(t *testing.T) {
	var d SelectionDialog
	d.Open()
	d.Toggle("a")
	d.Toggle("b")

	var batch []string
	require.NoError(t, d.Confirm(func(ids []string) error {
		batch = ids
		return nil
	}))
	assert.ElementsMatch(t, []string{"a", "b"}, batch)
	assert.False(t, d.IsOpen())
}

func TestSelectionFailedCommitKeepsSelection(t *testing.T) {
	var d SelectionDialog
	d.Open()
	d.Toggle("a")

	err := d.Confirm(func([]string) error { return errors.New("partial failure") })
	require.Error(t, err)
	assert.True(t, d.IsOpen())
	assert.ElementsMatch(t, []string{"a"}, d.Selected())
}
