package cli

import (
	"context"
	"fmt"
	"text/template"

	roomsync "github.com/iudanet/chipsync/internal/client/sync"
	"github.com/iudanet/chipsync/internal/models"
)

// statusLogLimit is how many sync log entries status prints.
const statusLogLimit = 10

type statusView struct {
	Self         models.Participant
	Transport    string
	RoomID       string
	Participants []models.Participant
	Pending      []*models.PendingWrite
	Logs         []models.LogEntry
	Version      int64
	State        roomsync.State
}

func (c *Cli) runStatus(ctx context.Context) error {
	if _, err := c.resume(ctx); err != nil {
		return err
	}

	view := statusView{
		Transport: c.opts.Transport,
		State:     c.manager.State(),
		RoomID:    c.manager.RoomID(),
	}
	if view.State.Connected() {
		view.Self, _ = c.manager.Self()
		view.Version = c.manager.Version()
		view.Participants = c.manager.Participants()
	}

	pending, err := c.store.ListPending(ctx, view.RoomID)
	if err != nil {
		// Не прерываем вывод статуса
		c.logger.Warn("Failed to list pending writes", "error", err)
	}
	view.Pending = pending

	logs, err := c.store.ListLogs(ctx, statusLogLimit)
	if err != nil {
		c.logger.Warn("Failed to read sync log", "error", err)
	}
	view.Logs = logs

	tmpl, err := template.New("status").Parse(statusTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse status template: %w", err)
	}
	return tmpl.Execute(c.io, view)
}
