// Package cli implements the chipsync command line client.
package cli

import (
	"context"
	"log/slog"

	"github.com/iudanet/chipsync/internal/client/identity"
	"github.com/iudanet/chipsync/internal/client/iocli"
	roomsync "github.com/iudanet/chipsync/internal/client/sync"
	"github.com/iudanet/chipsync/internal/models"
)

//go:generate moq -out manager_mock.go . RoomManager

// RoomManager is the room manager as used by the commands.
type RoomManager interface {
	State() roomsync.State
	RoomID() string
	Self() (models.Participant, bool)
	HostParticipantID() string
	Participants() []models.Participant
	Version() int64
	RecordVersion(dataType models.DataType) int64
	CreateRoom(ctx context.Context, hostName string) (string, error)
	JoinRoom(ctx context.Context, roomID, name string) error
	Resume(ctx context.Context) error
	LeaveRoom(ctx context.Context) error
	Payload(ctx context.Context, dataType models.DataType) (string, error)
	Save(ctx context.Context, dataType models.DataType, data any) (roomsync.SaveResult, error)
	Refresh(ctx context.Context) error
	OnDataChange(dataType models.DataType, fn func(data any)) func()
	OnParticipantsChange(fn func(participants []models.Participant)) func()
	OnStateChange(fn func(state roomsync.State)) func()
}

// SyncStore is the part of the local store shown by status.
type SyncStore interface {
	ListPending(ctx context.Context, roomID string) ([]*models.PendingWrite, error)
	ListLogs(ctx context.Context, limit int) ([]models.LogEntry, error)
}

// BuildInfo is set via ldflags.
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// Options configures the client.
type Options struct {
	// InviteBaseURL is the application URL invitations point to
	InviteBaseURL string
	// Transport is the configured transport kind, shown by status
	Transport string
	// Config renders the effective configuration for the config command
	Config func() (string, error)
	Build  BuildInfo
}

type Cli struct {
	io       iocli.IO
	manager  RoomManager
	store    SyncStore
	identity identity.Provider
	logger   *slog.Logger
	opts     Options
}

func New(io iocli.IO, manager RoomManager, store SyncStore, provider identity.Provider, logger *slog.Logger, opts Options) *Cli {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cli{
		io:       io,
		manager:  manager,
		store:    store,
		identity: provider,
		logger:   logger,
		opts:     opts,
	}
}

func (c *Cli) PrintUsage() {
	c.io.Println("chipsync - shared poker room state")
	c.io.Println()
	c.io.Println("Usage:")
	c.io.Println("  chipsync [OPTIONS] COMMAND [ARGS]")
	c.io.Println()
	c.io.Println("Options:")
	c.io.Println("  --config PATH                 TOML configuration file (repeatable)")
	c.io.Println("  --transport.kind KIND         Transport: local or clouddoc")
	c.io.Println("  --transport.sqlite_path PATH  Shared database of the local transport")
	c.io.Println("  --transport.redis_url URL     Redis of the clouddoc transport")
	c.io.Println("  --client.db_path PATH         Path to the local database")
	c.io.Println("  --log.level LEVEL             debug, info, warn or error")
	c.io.Println()
	c.io.Println("Every option can also be set as CHIPSYNC_SECTION__KEY, e.g. CHIPSYNC_TRANSPORT__KIND=clouddoc")
	c.io.Println()
	c.io.Println("Commands:")
	c.io.Println("  identity                  Show the anonymous identity of this device")
	c.io.Println("  host <name>               Create a room and become its host")
	c.io.Println("  join <room|invite> [name] Join a room by id or invitation URL")
	c.io.Println("  status                    Show the room, participants and sync state")
	c.io.Println("  show [type]               Print collections (players, sessions, receipts, dailySales, history, settings)")
	c.io.Println("  save <type> <json|@file>  Replace a collection")
	c.io.Println("  refresh                   Re-read every collection from the room")
	c.io.Println("  watch                     Print changes until interrupted")
	c.io.Println("  invite [name]             Print an invitation URL for the current room")
	c.io.Println("  leave                     Leave the room")
	c.io.Println("  config                    Print the effective configuration")
	c.io.Println("  version                   Show version information")
	c.io.Println()
	c.io.Println("Examples:")
	c.io.Println("  chipsync host Alice")
	c.io.Println("  chipsync join 'https://poker.example.com/?room=R1abcd&name=Bob'")
	c.io.Println("  chipsync save players '[{\"name\":\"Ann\",\"chips\":100}]'")
	c.io.Println("  chipsync --transport.kind clouddoc watch")
}

func (c *Cli) printVersion() {
	c.io.Println("chipsync")
	c.io.Printf("Version:    %s\n", c.opts.Build.Version)
	c.io.Printf("Build Date: %s\n", c.opts.Build.BuildDate)
	c.io.Printf("Git Commit: %s\n", c.opts.Build.GitCommit)
}
