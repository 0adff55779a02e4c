package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/chipsync/internal/invite"
	"github.com/iudanet/chipsync/internal/validation"
)

func (c *Cli) runIdentity(ctx context.Context) error {
	id, err := c.identity.AnonymousIdentity(ctx)
	if err != nil {
		return fmt.Errorf("failed to get identity: %w", err)
	}

	c.io.Println("=== Identity ===")
	c.io.Println()
	c.io.Printf("Device ID:      %s\n", id.DeviceID)
	c.io.Printf("Participant ID: %s\n", id.ParticipantID)
	return nil
}

func (c *Cli) runHost(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("missing name. Usage: chipsync host <name>")
	}
	name := args[0]

	if err := validation.ValidateParticipantName(name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}
	if err := c.ensureNotInRoom(ctx); err != nil {
		return err
	}

	roomID, err := c.manager.CreateRoom(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}

	c.io.Println("✓ Room created")
	c.io.Println()
	c.io.Printf("Room ID: %s\n", roomID)
	if link, err := c.inviteURL(roomID, ""); err == nil {
		c.io.Printf("Invite:  %s\n", link)
	}
	return nil
}

func (c *Cli) runJoin(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("missing room. Usage: chipsync join <room|invite> [name]")
	}

	inv, err := invite.Parse(args[0])
	if err != nil {
		if errors.Is(err, invite.ErrNoInvite) {
			return fmt.Errorf("no room id in %q", args[0])
		}
		return err
	}

	name := inv.Name
	if len(args) > 1 {
		name = args[1]
	}
	if name == "" {
		name, err = c.io.ReadInput("Your name: ")
		if err != nil {
			return fmt.Errorf("failed to read name: %w", err)
		}
	}

	if err := validation.ValidateRoomID(inv.RoomID); err != nil {
		return fmt.Errorf("invalid room id: %w", err)
	}
	if err := validation.ValidateParticipantName(name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}
	if err := c.ensureNotInRoom(ctx); err != nil {
		return err
	}

	if err := c.manager.JoinRoom(ctx, inv.RoomID, name); err != nil {
		return fmt.Errorf("failed to join room: %w", err)
	}

	c.io.Printf("✓ Joined room %s as %s\n", inv.RoomID, name)
	c.io.Printf("Participants: %d\n", len(c.manager.Participants()))
	return nil
}

func (c *Cli) runInvite(ctx context.Context, args []string) error {
	if err := c.requireRoom(ctx); err != nil {
		return err
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	link, err := c.inviteURL(c.manager.RoomID(), name)
	if err != nil {
		return err
	}
	c.io.Println(link)
	return nil
}

func (c *Cli) runLeave(ctx context.Context) error {
	ok, err := c.resume(ctx)
	if err != nil {
		return err
	}
	if !ok {
		c.io.Println("Not in a room.")
		return nil
	}

	roomID := c.manager.RoomID()
	if err := c.manager.LeaveRoom(ctx); err != nil {
		return fmt.Errorf("failed to leave room: %w", err)
	}

	c.io.Printf("✓ Left room %s\n", roomID)
	return nil
}

// ensureNotInRoom fails if a saved room is still active.
func (c *Cli) ensureNotInRoom(ctx context.Context) error {
	ok, err := c.resume(ctx)
	if err != nil {
		return err
	}
	if ok {
		return fmt.Errorf("already in room %s. Run 'chipsync leave' first", c.manager.RoomID())
	}
	return nil
}

func (c *Cli) inviteURL(roomID, name string) (string, error) {
	if c.opts.InviteBaseURL == "" {
		return "", fmt.Errorf("invite base url is not configured")
	}
	return invite.Build(c.opts.InviteBaseURL, roomID, name)
}
