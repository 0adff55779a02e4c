// Package invite builds and consumes room invitation URLs.
//
// An invitation is the application base URL with room=<roomId> (or the legacy
// session=<roomId>) and name=<displayName> query parameters.
package invite

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Query parameter names.
const (
	ParamRoom    = "room"
	ParamSession = "session"
	ParamName    = "name"
)

// ErrNoInvite indicates that the URL carries no room parameters.
var ErrNoInvite = errors.New("url contains no invitation")

// Invite is the content of an invitation URL.
type Invite struct {
	RoomID string
	Name   string
}

// Build returns baseURL with the invitation parameters added.
// An empty name is omitted.
func Build(baseURL, roomID, name string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse base url: %w", err)
	}

	q := u.Query()
	q.Del(ParamSession)
	q.Set(ParamRoom, roomID)
	if name != "" {
		q.Set(ParamName, name)
	} else {
		q.Del(ParamName)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// Parse extracts the invitation from raw. A bare room id (no scheme, no query)
// is accepted too. Returns ErrNoInvite when neither room nor session is set.
func Parse(raw string) (Invite, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Invite{}, ErrNoInvite
	}

	if !strings.ContainsAny(raw, "?=/:") {
		return Invite{RoomID: raw}, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Invite{}, fmt.Errorf("failed to parse invite url: %w", err)
	}

	q := u.Query()
	roomID := q.Get(ParamRoom)
	if roomID == "" {
		roomID = q.Get(ParamSession)
	}
	if roomID == "" {
		return Invite{}, ErrNoInvite
	}

	return Invite{RoomID: roomID, Name: q.Get(ParamName)}, nil
}

// Strip removes the invitation parameters from raw and keeps everything else.
func Strip(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("failed to parse url: %w", err)
	}

	q := u.Query()
	q.Del(ParamRoom)
	q.Del(ParamSession)
	q.Del(ParamName)
	u.RawQuery = q.Encode()
	u.ForceQuery = false

	return u.String(), nil
}
