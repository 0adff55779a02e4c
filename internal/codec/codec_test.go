package codec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "empty array", payload: `[]`},
		{name: "empty object", payload: `{}`},
		{name: "players", payload: `[{"currentChips":5000,"id":"1","name":"Bob"}]`},
		{
			name:    "nested arrays and objects",
			payload: `[{"buyIns":[[100,200],[300]],"id":"s1","meta":{"table":{"seats":[1,2,3]},"tags":[]}}]`,
		},
		{name: "big integer", payload: `[{"amount":12345678901234567890}]`},
		{name: "decimals", payload: `{"rakePercent":0.05,"tax":1.10}`},
		{name: "unicode", payload: `[{"name":"Игрок ♠"}]`},
		{name: "null values", payload: `[{"note":null}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := Decode(tt.payload)
			require.NoError(t, err)

			encoded, err := Encode(decoded)
			require.NoError(t, err)
			assert.Equal(t, tt.payload, encoded)

			again, err := Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, decoded, again)
		})
	}
}

func TestEncode_Structs(t *testing.T) {
	type player struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		CurrentChips int    `json:"currentChips"`
	}

	payload, err := Encode([]player{{ID: "1", Name: "Bob", CurrentChips: 5000}})
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1","name":"Bob","currentChips":5000}]`, payload)

	var out []player
	require.NoError(t, DecodeInto(payload, &out))
	assert.Equal(t, []player{{ID: "1", Name: "Bob", CurrentChips: 5000}}, out)
}

func TestEncode_Error(t *testing.T) {
	_, err := Encode(map[string]any{"bad": make(chan int)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSerialization)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "empty string", payload: ""},
		{name: "truncated", payload: `[{"id":"1"`},
		{name: "trailing data", payload: `[] []`},
		{name: "garbage", payload: `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.payload)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSerialization)
		})
	}
}

func TestDecode_KeepsNumbers(t *testing.T) {
	v, err := Decode(`{"chips":5000}`)
	require.NoError(t, err)

	m, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, json.Number("5000"), m["chips"])
}

func TestNormalize_Detached(t *testing.T) {
	src := []map[string]any{{"id": "1", "tags": []string{"a"}}}

	out, err := Normalize(src)
	require.NoError(t, err)

	src[0]["id"] = "changed"
	list, ok := out.([]any)
	require.True(t, ok)
	assert.Equal(t, "1", list[0].(map[string]any)["id"])
}
