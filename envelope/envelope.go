package envelope

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const resultsKey = "plugin_results"

type ParseError struct {
	Err error
}

func (p *ParseError) Error() string {
	return fmt.Sprintf("failed to decode input JSON: %s", p.Err)
}

func (p *ParseError) Unwrap() error { return p.Err }

type ValidationError struct {
	Key string
}

func (v *ValidationError) Error() string {
	return fmt.Sprintf("input json must include a non-empty `%s` field", v.Key)
}

// Parse decodes raw into a JSON object and checks that every required key
// is present and truthy.
func Parse(raw string, required []string) (map[string]interface{}, error) {
	decoder := json.NewDecoder(strings.NewReader(raw))
	decoder.UseNumber()

	var payload map[string]interface{}
	if err := decoder.Decode(&payload); err != nil {
		return nil, &ParseError{Err: err}
	}
	if payload == nil {
		return nil, &ParseError{Err: fmt.Errorf("expected a JSON object but got '%s'", raw)}
	}
	if decoder.More() {
		return nil, &ParseError{Err: fmt.Errorf("unexpected data after JSON object")}
	}

	for _, key := range required {
		value, ok := payload[key]
		if !ok || isFalsy(value) {
			return nil, &ValidationError{Key: key}
		}
	}

	return payload, nil
}

// Decode parses and validates raw then decodes it into v.
func Decode(raw string, required []string, v interface{}) error {
	if _, err := Parse(raw, required); err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return &ParseError{Err: err}
	}
	return nil
}

// Emit writes results wrapped in the plugin result envelope as a single
// line of JSON.
func Emit(w io.Writer, results interface{}) error {
	return json.NewEncoder(w).Encode(map[string]interface{}{
		resultsKey: results,
	})
}

func isFalsy(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case json.Number:
		f, err := v.Float64()
		return err == nil && f == 0
	case []interface{}:
		return len(v) == 0
	case map[string]interface{}:
		return len(v) == 0
	}
	return false
}

// String accepts any JSON scalar and keeps its text, so `"jobID": 42`
// decodes the same as `"jobID": "42"`. Arrays and objects keep their raw
// JSON encoding.
type String string

func (s *String) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*s = String(raw)
		return nil
	}
	*s = String(data)
	return nil
}

func (s String) String() string {
	return string(s)
}

// MaxDays bounds Days so expiry dates stay representable.
const MaxDays = 36500

// Days is a day count that accepts a JSON number or a numeric string.
type Days int

func (d *Days) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*d = 0
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*d = 0
			return nil
		}
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid day count '%s'", raw)
	}
	if math.IsNaN(f) || f < 0 {
		return fmt.Errorf("day count must not be negative: %s", raw)
	}
	if f > MaxDays {
		return fmt.Errorf("day count must not exceed %d: %s", MaxDays, raw)
	}
	*d = Days(int(f))
	return nil
}
