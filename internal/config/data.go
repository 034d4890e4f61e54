package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"streamindex/internal"
)

func LoadColors(path string) ([]string, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var colors []string
	if err := json.Unmarshal(blob, &colors); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("parse %s: no colors defined", path)
	}
	return colors, nil
}

// LoadReplacements reads the title canonicalization rules. A replacement may
// produce a substring that a later rule matches, so the object entries are
// decoded in file order rather than through a Go map.
func LoadReplacements(path string) ([]internal.Replacement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	var out []internal.Replacement
	for dec.More() {
		target, err := stringToken(dec)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		var with string
		if err := dec.Decode(&with); err != nil {
			return nil, fmt.Errorf("parse %s: replacement for %q: %w", path, target, err)
		}
		out = append(out, internal.Replacement{Target: target, With: with})
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return out, nil
}

// LoadAdditional reads the extra per-stream fields, keyed by stream index.
// Field order within an entry is preserved for stable template output.
func LoadAdditional(path string) (map[int][]internal.Field, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()
	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	out := map[int][]internal.Field{}
	for dec.More() {
		key, err := stringToken(dec)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		index, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("parse %s: stream index %q: %w", path, key, err)
		}
		fields, err := decodeFields(dec)
		if err != nil {
			return nil, fmt.Errorf("parse %s: stream %d: %w", path, index, err)
		}
		out[index] = fields
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return out, nil
}

func decodeFields(dec *json.Decoder) ([]internal.Field, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	var fields []internal.Field
	for dec.More() {
		key, err := stringToken(dec)
		if err != nil {
			return nil, err
		}
		value, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		fields = append(fields, internal.Field{Key: key, Value: value})
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return fields, nil
}

func decodeValue(dec *json.Decoder) (internal.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return internal.Value{}, err
	}
	switch t := tok.(type) {
	case string:
		return internal.String(t), nil
	case json.Number:
		n, err := strconv.Atoi(t.String())
		if err != nil {
			return internal.Value{}, fmt.Errorf("non-integer number %s", t)
		}
		return internal.Int(n), nil
	case json.Delim:
		switch t {
		case '[':
			var list []string
			for dec.More() {
				var v string
				if err := dec.Decode(&v); err != nil {
					return internal.Value{}, fmt.Errorf("list element: %w", err)
				}
				list = append(list, v)
			}
			if err := expectDelim(dec, ']'); err != nil {
				return internal.Value{}, err
			}
			return internal.List(list), nil
		case '{':
			var entries []internal.MapEntry
			for dec.More() {
				key, err := stringToken(dec)
				if err != nil {
					return internal.Value{}, err
				}
				var v string
				if err := dec.Decode(&v); err != nil {
					return internal.Value{}, fmt.Errorf("entry %q: %w", key, err)
				}
				entries = append(entries, internal.MapEntry{Key: key, Value: v})
			}
			if err := expectDelim(dec, '}'); err != nil {
				return internal.Value{}, err
			}
			return internal.Map(entries), nil
		}
		return internal.Value{}, fmt.Errorf("unexpected token %v", t)
	default:
		return internal.Value{}, fmt.Errorf("unsupported value type %T", tok)
	}
}

func stringToken(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected string key, got %v", tok)
	}
	return s, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
