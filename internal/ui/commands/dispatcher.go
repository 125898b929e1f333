// Package commands turns resolved actions into state changes and daemon calls.
package commands

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"traxor/internal/eventbus"
	"traxor/internal/ui/input/lineedit"
	"traxor/internal/ui/input/types"
	"traxor/internal/ui/services/selection"
	"traxor/internal/ui/state"
)

// Dispatcher applies actions to the application state.
//
// Callers hold the state lock around Apply and Complete, so one action is
// handled at a time and the background refresh never sees half of one.
// Move and delete act on the torrents resolved when their prompt opened, so
// a refresh while the prompt is up cannot retarget them.
// Daemon calls are made synchronously. When one fails its error is returned
// unchanged and the mode, edit buffer and selection are left as they were so
// the user can retry.
type Dispatcher struct {
	ctx       *CommandContext
	completer lineedit.Completer
}

// NewDispatcher creates a new dispatcher
func NewDispatcher(st *state.AppState, client TorrentClient, completer lineedit.Completer, bus eventbus.EventBus) *Dispatcher {
	return &Dispatcher{
		ctx: &CommandContext{
			State:  st,
			Client: client,
			Bus:    bus,
		},
		completer: completer,
	}
}

// Apply performs action
func (d *Dispatcher) Apply(ctx context.Context, action types.Action) error {
	st := d.ctx.State

	switch action.Kind {
	case types.ActionQuit:
		st.Running = false
	case types.ActionNextTab:
		st.NextTab()
	case types.ActionPrevTab:
		st.PrevTab()
	case types.ActionSwitchTab:
		st.SwitchTab(action.Tab)
	case types.ActionNextItem:
		st.NextItem()
	case types.ActionPrevItem:
		st.PrevItem()
	case types.ActionToggleHelp:
		st.ShowHelp = !st.ShowHelp

	case types.ActionSelect:
		if cur, ok := st.Selected(true).(selection.Current); ok {
			st.Selection.Toggle(cur.ID)
		}
		st.NextItem()

	case types.ActionToggleItem:
		ids := st.Selected(false).IDs()
		if len(ids) == 0 {
			return nil
		}
		return d.run(ctx, NewToggleCommand(d.ctx, ids))
	case types.ActionToggleAll:
		return d.run(ctx, NewToggleAllCommand(d.ctx))
	case types.ActionPauseAll:
		return d.run(ctx, NewPauseAllCommand(d.ctx))
	case types.ActionStartAll:
		return d.run(ctx, NewStartAllCommand(d.ctx))

	case types.ActionMove:
		d.enterMove()
	case types.ActionRename:
		d.enterRename()
	case types.ActionFilter:
		st.EnterMode(types.Mode{Kind: types.ModeFilter}, st.FilterQuery)
	case types.ActionDelete:
		if ids := st.Selected(false).IDs(); len(ids) > 0 {
			st.EnterMode(types.ConfirmDelete(action.Force), "")
			st.PendingIDs = ids
		}
	case types.ActionClearFilter:
		st.FilterQuery = ""
		st.ClampCursor()

	case types.ActionSubmit:
		return d.submit(ctx)
	case types.ActionConfirmYes:
		return d.confirmDelete(ctx)
	case types.ActionCancel:
		st.ExitMode()
	}
	return nil
}

// Complete asks the completer for candidates for the edit buffer. A failed
// lookup leaves the buffer untouched and is only logged.
func (d *Dispatcher) Complete(ctx context.Context) {
	st := d.ctx.State
	if !st.Mode.IsText() {
		return
	}
	if err := st.Editor.Complete(ctx, d.completer); err != nil {
		log.WithError(err).WithField("text", st.Editor.Text()).Debug("completion failed")
	}
}

// Edited is called after a key changed the edit buffer
func (d *Dispatcher) Edited() {
	// The filter prompt filters live
	if d.ctx.State.Mode.Kind == types.ModeFilter {
		d.ctx.State.ClampCursor()
	}
}

func (d *Dispatcher) enterMove() {
	st := d.ctx.State
	ids := st.Selected(false).IDs()
	if len(ids) == 0 {
		return
	}
	dir := ""
	if t, ok := st.Highlighted(); ok {
		dir = t.DownloadDir
	} else if t, ok := st.TorrentByID(ids[0]); ok {
		dir = t.DownloadDir
	}
	st.EnterMode(types.Mode{Kind: types.ModeMove}, dir)
	st.PendingIDs = ids
}

func (d *Dispatcher) enterRename() {
	st := d.ctx.State
	t, ok := st.Highlighted()
	if !ok {
		return
	}
	st.EnterMode(types.Mode{Kind: types.ModeRename}, t.Name)
	st.RenameTarget = &state.RenameTarget{ID: t.ID, Name: t.Name}
}

func (d *Dispatcher) submit(ctx context.Context) error {
	st := d.ctx.State
	text := st.Editor.Text()

	switch st.Mode.Kind {
	case types.ModeFilter:
		st.FilterQuery = text
		st.ExitMode()
		st.FirstItem()
		return nil

	case types.ModeMove:
		ids := st.PendingIDs
		if len(ids) == 0 {
			st.ExitMode()
			return nil
		}
		if err := d.run(ctx, NewMoveCommand(d.ctx, ids, text)); err != nil {
			return err
		}

	case types.ModeRename:
		if st.RenameTarget == nil {
			st.ExitMode()
			return nil
		}
		if err := d.run(ctx, NewRenameCommand(d.ctx, *st.RenameTarget, text)); err != nil {
			return err
		}

	default:
		return nil
	}

	st.ExitMode()
	return nil
}

func (d *Dispatcher) confirmDelete(ctx context.Context) error {
	st := d.ctx.State
	if st.Mode.Kind != types.ModeConfirmDelete {
		return nil
	}
	ids := st.PendingIDs
	if len(ids) > 0 {
		if err := d.run(ctx, NewDeleteCommand(d.ctx, ids, st.Mode.DeleteData)); err != nil {
			return err
		}
	}
	st.ExitMode()
	return nil
}

func (d *Dispatcher) run(ctx context.Context, cmd Command) error {
	if err := cmd.Execute(ctx); err != nil {
		log.WithError(err).WithField("action", cmd.Name()).Error("command failed")
		return err
	}
	d.ctx.State.SetStatus(fmt.Sprintf("%s: done", cmd.Name()))
	return nil
}
