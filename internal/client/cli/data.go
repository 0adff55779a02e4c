package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	roomsync "github.com/iudanet/chipsync/internal/client/sync"
	"github.com/iudanet/chipsync/internal/codec"
	"github.com/iudanet/chipsync/internal/models"
	"github.com/iudanet/chipsync/internal/validation"
)

func (c *Cli) runShow(ctx context.Context, args []string) error {
	if _, err := c.resume(ctx); err != nil {
		return err
	}

	dataTypes := models.AllDataTypes
	if len(args) > 0 {
		if err := validation.ValidateDataType(args[0]); err != nil {
			return err
		}
		dataTypes = []models.DataType{models.DataType(args[0])}
	}

	connected := c.manager.State().Connected()
	for _, dt := range dataTypes {
		payload, err := c.manager.Payload(ctx, dt)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", dt, err)
		}

		if connected {
			c.io.Printf("=== %s (v%d) ===\n", dt, c.manager.RecordVersion(dt))
		} else {
			c.io.Printf("=== %s (local) ===\n", dt)
		}
		c.io.Println(pretty(payload))
		c.io.Println()
	}
	return nil
}

func (c *Cli) runSave(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments. Usage: chipsync save <type> <json|@file>")
	}
	if err := validation.ValidateDataType(args[0]); err != nil {
		return err
	}
	dt := models.DataType(args[0])

	text := args[1]
	if path, ok := strings.CutPrefix(text, "@"); ok {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		text = string(content)
	}

	data, err := codec.Decode(strings.TrimSpace(text))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if _, err := c.resume(ctx); err != nil {
		return err
	}

	result, err := c.manager.Save(ctx, dt, data)
	switch {
	case err == nil && result.Remote:
		c.io.Printf("✓ Saved %s (version %d)\n", dt, result.Version)
	case err == nil && result.Pending:
		c.io.Printf("✓ Saved %s locally\n", dt)
		c.io.Println("The change will be sent when the room is reachable again.")
	case err == nil:
		c.io.Printf("✓ Saved %s locally (not in a room)\n", dt)
	case result.Local && errors.Is(err, roomsync.ErrWriteFailed):
		// Правка сохранена, повторная отправка произойдет позже
		c.io.Printf("⚠️  Saved %s locally only: %v\n", dt, err)
		c.io.Println("The change will be sent when the room is reachable again.")
	default:
		return fmt.Errorf("failed to save %s: %w", dt, err)
	}
	return nil
}

func (c *Cli) runRefresh(ctx context.Context) error {
	ok, err := c.resume(ctx)
	if err != nil {
		return err
	}

	if err := c.manager.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to refresh: %w", err)
	}

	if ok {
		c.io.Printf("✓ Refreshed room %s (version %d)\n", c.manager.RoomID(), c.manager.Version())
	} else {
		c.io.Println("✓ Reloaded local data")
	}
	return nil
}

// runWatch prints changes until ctx is cancelled or the room disappears.
func (c *Cli) runWatch(ctx context.Context) error {
	if err := c.requireRoom(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var unsubscribe []func()
	defer func() {
		for _, fn := range unsubscribe {
			fn()
		}
	}()

	for _, dt := range models.AllDataTypes {
		unsubscribe = append(unsubscribe, c.manager.OnDataChange(dt, func(data any) {
			payload, err := codec.Encode(data)
			if err != nil {
				return
			}
			c.io.Printf("[%s] v%d %s\n", dt, c.manager.RecordVersion(dt), payload)
		}))
	}
	unsubscribe = append(unsubscribe,
		c.manager.OnParticipantsChange(func(participants []models.Participant) {
			c.io.Printf("[participants] %s\n", participantNames(participants))
		}),
		c.manager.OnStateChange(func(state roomsync.State) {
			c.io.Printf("[state] %s\n", state)
			if !state.Connected() {
				cancel()
			}
		}),
	)

	c.io.Printf("Watching room %s. Press Ctrl+C to stop.\n", c.manager.RoomID())
	<-ctx.Done()
	return nil
}

// pretty indents a JSON payload, falling back to the raw text.
func pretty(payload string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(payload), "", "  "); err != nil {
		return payload
	}
	return buf.String()
}

func participantNames(participants []models.Participant) string {
	names := make([]string, 0, len(participants))
	for _, p := range participants {
		if p.IsHost {
			names = append(names, p.Name+" (host)")
			continue
		}
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}
