// Package codec converts business collections to and from their text form.
//
// Decoding keeps numbers as json.Number so that values written by one device
// are reproduced byte for byte by every other device.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrSerialization indicates that a payload could not be converted to or from text.
var ErrSerialization = errors.New("serialization error")

// Encode serializes v into its text form.
func Encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: failed to encode payload: %v", ErrSerialization, err)
	}
	return string(data), nil
}

// Decode parses a text payload into generic values
// ([]any, map[string]any, json.Number, string, bool, nil).
func Decode(payload string) (any, error) {
	var v any
	if err := DecodeInto(payload, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// DecodeInto parses a text payload into dst.
func DecodeInto(payload string, dst any) error {
	dec := json.NewDecoder(bytes.NewReader([]byte(payload)))
	dec.UseNumber()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode payload: %v", ErrSerialization, err)
	}

	// Хвост после первого значения считается ошибкой
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after payload", ErrSerialization)
	}

	return nil
}

// Normalize returns a detached copy of v in decoded form.
// The result shares no memory with v.
func Normalize(v any) (any, error) {
	payload, err := Encode(v)
	if err != nil {
		return nil, err
	}
	return Decode(payload)
}
