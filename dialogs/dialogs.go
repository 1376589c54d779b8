// Package dialogs models the short-lived modal flows: a pending target (or
// selection) is collected while the dialog is open and committed as one batch
// on an explicit confirm. There is no auto-confirm and no timeout dismissal;
// cancelling discards the pending state.
package dialogs

import (
	"errors"
	"sync"
)

var ErrNotOpen = errors.New("dialog is not open")

// ConfirmDialog guards a single destructive action (delete collection,
// remove favorite) behind an explicit confirmation.
type ConfirmDialog struct {
	mu      sync.Mutex
	open    bool
	pending string
}

// Open arms the dialog with the target id. Re-opening replaces the target.
func (d *ConfirmDialog) Open(target string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.open = true
	d.pending = target
}

func (d *ConfirmDialog) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}

func (d *ConfirmDialog) Pending() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Confirm runs commit for the pending target and closes the dialog. If the
// commit fails the dialog stays open with the same target so the failure can
// be shown inline instead of silently vanishing.
func (d *ConfirmDialog) Confirm(commit func(target string) error) error {
	d.mu.Lock()
	if !d.open {
		d.mu.Unlock()
		return ErrNotOpen
	}
	target := d.pending
	d.mu.Unlock()

	if err := commit(target); err != nil {
		return err
	}

	d.mu.Lock()
	d.open = false
	d.pending = ""
	d.mu.Unlock()
	return nil
}

// Cancel closes the dialog and discards the pending target.
func (d *ConfirmDialog) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.open = false
	d.pending = ""
}

// SelectionDialog is the multi-select variant (bulk remove, add to multiple
// collections): it holds a set of pending ids until one batch commit.
type SelectionDialog struct {
	mu       sync.Mutex
	open     bool
	selected map[string]bool
}

func (d *SelectionDialog) Open() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.open = true
	d.selected = make(map[string]bool)
}

func (d *SelectionDialog) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}

// Toggle flips one id in or out of the pending selection.
func (d *SelectionDialog) Toggle(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return
	}
	if d.selected[id] {
		delete(d.selected, id)
	} else {
		d.selected[id] = true
	}
}

// ToggleAll selects every id of the currently visible (sorted/filtered) list,
// or clears the selection when everything visible is already selected. It
// deliberately works against the visible list, not the full backing store.
func (d *SelectionDialog) ToggleAll(visible []string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return
	}

	all := len(visible) > 0
	for _, id := range visible {
		if !d.selected[id] {
			all = false
			break
		}
	}

	d.selected = make(map[string]bool)
	if !all {
		for _, id := range visible {
			d.selected[id] = true
		}
	}
}

// Selected returns the pending ids in no particular order.
func (d *SelectionDialog) Selected() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, 0, len(d.selected))
	for id := range d.selected {
		out = append(out, id)
	}
	return out
}

// Confirm commits the whole selection as one batch and closes the dialog.
// A failed commit keeps the dialog open with the selection intact.
func (d *SelectionDialog) Confirm(commit func(ids []string) error) error {
	d.mu.Lock()
	if !d.open {
		d.mu.Unlock()
		return ErrNotOpen
	}
	ids := make([]string, 0, len(d.selected))
	for id := range d.selected {
		ids = append(ids, id)
	}
	d.mu.Unlock()

	if err := commit(ids); err != nil {
		return err
	}

	d.mu.Lock()
	d.open = false
	d.selected = nil
	d.mu.Unlock()
	return nil
}

func (d *SelectionDialog) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.open = false
	d.selected = nil
}
