package clouddoc

import (
	"fmt"
	"strings"

	"github.com/iudanet/chipsync/internal/codec"
)

// Document stores reject nested lists, so every container nested inside a
// record element is stored as marked JSON text and parsed back on read.
const (
	nestedMarker  = "\x00json:"
	escapedMarker = "\x00str:"
)

// Flatten returns a copy of v where top-level elements keep their shape and
// every nested array or object becomes marked text. v is a decoded payload.
func Flatten(v any) (any, error) {
	switch val := v.(type) {
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			if obj, ok := elem.(map[string]any); ok {
				flat, err := flattenObject(obj)
				if err != nil {
					return nil, err
				}
				out[i] = flat
				continue
			}
			flat, err := flattenField(elem)
			if err != nil {
				return nil, err
			}
			out[i] = flat
		}
		return out, nil
	case map[string]any:
		return flattenObject(val)
	default:
		return flattenField(v)
	}
}

func flattenObject(obj map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(obj))
	for k, field := range obj {
		flat, err := flattenField(field)
		if err != nil {
			return nil, err
		}
		out[k] = flat
	}
	return out, nil
}

func flattenField(v any) (any, error) {
	switch val := v.(type) {
	case []any, map[string]any:
		inner, err := Flatten(val)
		if err != nil {
			return nil, err
		}
		text, err := codec.Encode(inner)
		if err != nil {
			return nil, err
		}
		return nestedMarker + text, nil
	case string:
		// Строка, похожая на маркер, экранируется
		if strings.HasPrefix(val, nestedMarker) || strings.HasPrefix(val, escapedMarker) {
			return escapedMarker + val, nil
		}
		return val, nil
	default:
		return v, nil
	}
}

// Restore reverses Flatten.
func Restore(v any) (any, error) {
	switch val := v.(type) {
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			restored, err := Restore(elem)
			if err != nil {
				return nil, err
			}
			out[i] = restored
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, field := range val {
			restored, err := Restore(field)
			if err != nil {
				return nil, err
			}
			out[k] = restored
		}
		return out, nil
	case string:
		return restoreString(val)
	default:
		return v, nil
	}
}

func restoreString(s string) (any, error) {
	switch {
	case strings.HasPrefix(s, escapedMarker):
		return strings.TrimPrefix(s, escapedMarker), nil
	case strings.HasPrefix(s, nestedMarker):
		inner, err := codec.Decode(strings.TrimPrefix(s, nestedMarker))
		if err != nil {
			return nil, fmt.Errorf("failed to restore nested value: %w", err)
		}
		return Restore(inner)
	default:
		return s, nil
	}
}

// encodeDocument converts a record payload into the flattened document text.
func encodeDocument(payload string) (string, error) {
	v, err := codec.Decode(payload)
	if err != nil {
		return "", err
	}

	flat, err := Flatten(v)
	if err != nil {
		return "", err
	}

	return codec.Encode(flat)
}

// decodeDocument converts flattened document text back into a record payload.
func decodeDocument(data string) (string, error) {
	v, err := codec.Decode(data)
	if err != nil {
		return "", err
	}

	restored, err := Restore(v)
	if err != nil {
		return "", err
	}

	return codec.Encode(restored)
}
