package commands

import (
	"context"

	"traxor/internal/eventbus"
	"traxor/internal/ui/state"
)

// TorrentClient is the daemon side of every command
type TorrentClient interface {
	Toggle(ctx context.Context, ids []int64) error
	ToggleAll(ctx context.Context) error
	StartAll(ctx context.Context) error
	StopAll(ctx context.Context) error
	MoveItems(ctx context.Context, ids []int64, dest string) error
	Rename(ctx context.Context, id int64, oldName, newName string) error
	Delete(ctx context.Context, ids []int64, deleteLocalData bool) error
}

// Command represents an executable daemon operation
type Command interface {
	Name() string
	Execute(ctx context.Context) error
}

// CommandContext provides context for command execution
type CommandContext struct {
	State  *state.AppState
	Client TorrentClient
	Bus    eventbus.EventBus
}

// changed tells the rest of the app that torrents were altered. Callers hold
// the state lock.
func (c *CommandContext) changed(action string, ids []int64) {
	c.State.Generation++
	if c.Bus == nil {
		return
	}
	c.Bus.Publish(eventbus.TorrentsChangedEvent{Action: action, IDs: ids})
	c.Bus.Publish(eventbus.RefreshRequestedEvent{})
}

// ToggleCommand starts or stops torrents
type ToggleCommand struct {
	ctx *CommandContext
	ids []int64
}

// NewToggleCommand creates a new toggle command
func NewToggleCommand(ctx *CommandContext, ids []int64) *ToggleCommand {
	return &ToggleCommand{ctx: ctx, ids: ids}
}

func (c *ToggleCommand) Name() string { return "toggle" }

// Execute toggles the torrents
func (c *ToggleCommand) Execute(ctx context.Context) error {
	if err := c.ctx.Client.Toggle(ctx, c.ids); err != nil {
		return err
	}
	c.ctx.changed(c.Name(), c.ids)
	return nil
}

// BulkCommand runs one of the whole-daemon operations
type BulkCommand struct {
	ctx  *CommandContext
	name string
	run  func(context.Context) error
}

// NewToggleAllCommand creates a command toggling every torrent
func NewToggleAllCommand(ctx *CommandContext) *BulkCommand {
	return &BulkCommand{ctx: ctx, name: "toggle_all", run: ctx.Client.ToggleAll}
}

// NewPauseAllCommand creates a command stopping every torrent
func NewPauseAllCommand(ctx *CommandContext) *BulkCommand {
	return &BulkCommand{ctx: ctx, name: "pause_all", run: ctx.Client.StopAll}
}

// NewStartAllCommand creates a command starting every torrent
func NewStartAllCommand(ctx *CommandContext) *BulkCommand {
	return &BulkCommand{ctx: ctx, name: "start_all", run: ctx.Client.StartAll}
}

func (c *BulkCommand) Name() string { return c.name }

// Execute runs the operation
func (c *BulkCommand) Execute(ctx context.Context) error {
	if err := c.run(ctx); err != nil {
		return err
	}
	c.ctx.changed(c.name, nil)
	return nil
}

// MoveCommand moves torrent data to another directory
type MoveCommand struct {
	ctx  *CommandContext
	ids  []int64
	dest string
}

// NewMoveCommand creates a new move command
func NewMoveCommand(ctx *CommandContext, ids []int64, dest string) *MoveCommand {
	return &MoveCommand{ctx: ctx, ids: ids, dest: dest}
}

func (c *MoveCommand) Name() string { return "move" }

// Execute moves the torrents
func (c *MoveCommand) Execute(ctx context.Context) error {
	if err := c.ctx.Client.MoveItems(ctx, c.ids, c.dest); err != nil {
		return err
	}
	c.ctx.changed(c.Name(), c.ids)
	return nil
}

// RenameCommand renames a torrent's top-level path
type RenameCommand struct {
	ctx     *CommandContext
	target  state.RenameTarget
	newName string
}

// NewRenameCommand creates a new rename command
func NewRenameCommand(ctx *CommandContext, target state.RenameTarget, newName string) *RenameCommand {
	return &RenameCommand{ctx: ctx, target: target, newName: newName}
}

func (c *RenameCommand) Name() string { return "rename" }

// Execute renames the torrent
func (c *RenameCommand) Execute(ctx context.Context) error {
	if err := c.ctx.Client.Rename(ctx, c.target.ID, c.target.Name, c.newName); err != nil {
		return err
	}
	c.ctx.changed(c.Name(), []int64{c.target.ID})
	return nil
}

// DeleteCommand removes torrents, optionally with their data
type DeleteCommand struct {
	ctx   *CommandContext
	ids   []int64
	force bool
}

// NewDeleteCommand creates a new delete command
func NewDeleteCommand(ctx *CommandContext, ids []int64, force bool) *DeleteCommand {
	return &DeleteCommand{ctx: ctx, ids: ids, force: force}
}

func (c *DeleteCommand) Name() string { return "delete" }

// Execute deletes the torrents and drops them from the selection
func (c *DeleteCommand) Execute(ctx context.Context) error {
	if err := c.ctx.Client.Delete(ctx, c.ids, c.force); err != nil {
		return err
	}
	c.ctx.State.Selection.RemoveFromSelection(c.ids)
	c.ctx.changed(c.Name(), c.ids)
	return nil
}
