package cli

import (
	"context"
	"errors"
	"fmt"

	roomsync "github.com/iudanet/chipsync/internal/client/sync"
)

// ErrUnknownCommand is returned by Run for commands it does not know.
var ErrUnknownCommand = errors.New("unknown command")

// Run executes one command. args does not include the command itself.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "identity":
		return c.runIdentity(ctx)
	case "host":
		return c.runHost(ctx, args)
	case "join":
		return c.runJoin(ctx, args)
	case "status":
		return c.runStatus(ctx)
	case "show":
		return c.runShow(ctx, args)
	case "save":
		return c.runSave(ctx, args)
	case "refresh":
		return c.runRefresh(ctx)
	case "watch":
		return c.runWatch(ctx)
	case "invite":
		return c.runInvite(ctx, args)
	case "leave":
		return c.runLeave(ctx)
	case "config":
		return c.runConfig()
	case "version":
		c.printVersion()
		return nil
	case "help":
		c.PrintUsage()
		return nil
	default:
		c.PrintUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

// resume reconnects to the room saved by a previous invocation.
// Returns false when there is no saved room or it cannot be reached now.
func (c *Cli) resume(ctx context.Context) (bool, error) {
	if c.manager.State().Connected() {
		return true, nil
	}

	err := c.manager.Resume(ctx)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, roomsync.ErrNotConnected):
		return false, nil
	case errors.Is(err, roomsync.ErrRoomNotFound):
		c.io.Println("The saved room no longer exists; working locally.")
		return false, nil
	case errors.Is(err, roomsync.ErrTransportUnavailable), errors.Is(err, roomsync.ErrReadFailed):
		c.io.Printf("⚠️  The room is unreachable, working locally: %v\n", err)
		return false, nil
	default:
		return false, fmt.Errorf("failed to resume room: %w", err)
	}
}

// requireRoom is resume for commands that make no sense outside a room.
func (c *Cli) requireRoom(ctx context.Context) error {
	ok, err := c.resume(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("not in a room. Run 'chipsync host <name>' or 'chipsync join <room>' first")
	}
	return nil
}

func (c *Cli) runConfig() error {
	if c.opts.Config == nil {
		return fmt.Errorf("configuration is not available")
	}
	text, err := c.opts.Config()
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}
	c.io.Printf("%s", text)
	return nil
}
