package invite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		roomID   string
		player   string
		expected string
	}{
		{
			name:     "plain base",
			base:     "https://poker.example.com/",
			roomID:   "R1abcd",
			player:   "Alice",
			expected: "https://poker.example.com/?name=Alice&room=R1abcd",
		},
		{
			name:     "keeps other params",
			base:     "https://poker.example.com/app?lang=ru",
			roomID:   "R1abcd",
			player:   "Боб",
			expected: "https://poker.example.com/app?lang=ru&name=%D0%91%D0%BE%D0%B1&room=R1abcd",
		},
		{
			name:     "replaces legacy session param",
			base:     "https://poker.example.com/?session=old",
			roomID:   "new1",
			expected: "https://poker.example.com/?room=new1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.base, tt.roomID, tt.player)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Invite
		wantErr  error
	}{
		{
			name:     "room param",
			raw:      "https://poker.example.com/?room=R1abcd&name=Alice",
			expected: Invite{RoomID: "R1abcd", Name: "Alice"},
		},
		{
			name:     "session param",
			raw:      "https://poker.example.com/?session=S1abcd&name=Bob",
			expected: Invite{RoomID: "S1abcd", Name: "Bob"},
		},
		{
			name:     "room wins over session",
			raw:      "https://poker.example.com/?session=S1&room=R1abcd",
			expected: Invite{RoomID: "R1abcd"},
		},
		{
			name:     "bare room id",
			raw:      "  R1abcd ",
			expected: Invite{RoomID: "R1abcd"},
		},
		{
			name:    "no invitation",
			raw:     "https://poker.example.com/?lang=ru",
			wantErr: ErrNoInvite,
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: ErrNoInvite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "only invite params",
			raw:      "https://poker.example.com/?room=R1abcd&name=Alice",
			expected: "https://poker.example.com/",
		},
		{
			name:     "keeps other params and fragment",
			raw:      "https://poker.example.com/app?lang=ru&session=S1&name=Bob#tables",
			expected: "https://poker.example.com/app?lang=ru#tables",
		},
		{
			name:     "nothing to strip",
			raw:      "https://poker.example.com/",
			expected: "https://poker.example.com/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Strip(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBuildParseRoundTrip(t *testing.T) {
	link, err := Build("https://poker.example.com/", "R1abcd", "Алиса")
	require.NoError(t, err)

	inv, err := Parse(link)
	require.NoError(t, err)
	assert.Equal(t, Invite{RoomID: "R1abcd", Name: "Алиса"}, inv)
}
