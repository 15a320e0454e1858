package inbox

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// jsonMessage is one element of a JSON inbox dump. Date may be a number or a
// string, so it stays raw until decodeJSONMessage looks at it.
type jsonMessage struct {
	Body *string         `json:"body"`
	Date json.RawMessage `json:"date"`
}

// JSONDumpSource reads a JSON array of {"body", "date"} objects.
type JSONDumpSource struct {
	path string
}

// NewJSONDumpSource creates a source over the JSON file at path.
func NewJSONDumpSource(path string) *JSONDumpSource {
	return &JSONDumpSource{path: path}
}

// Supported reports true.
func (s *JSONDumpSource) Supported() bool { return true }

// Messages decodes the dump element by element, so one malformed element only
// marks its own Record with Err.
func (s *JSONDumpSource) Messages(ctx context.Context, sinceMillis int64) ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error parsing JSON: %w", err)
	}

	records := make([]Record, 0, len(raw))
	for i, elem := range raw {
		rec, err := decodeJSONMessage(elem)
		if err != nil {
			records = append(records, Record{Err: fmt.Errorf("message %d: %w", i, err)})
			continue
		}
		if ms, err := parseMillis(rec.Date); err == nil && ms < sinceMillis {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func decodeJSONMessage(elem json.RawMessage) (Record, error) {
	var msg jsonMessage
	if err := json.Unmarshal(elem, &msg); err != nil {
		return Record{}, err
	}
	if msg.Body == nil {
		return Record{}, fmt.Errorf("missing body")
	}

	var date string
	if len(msg.Date) > 0 && msg.Date[0] == '"' {
		if err := json.Unmarshal(msg.Date, &date); err != nil {
			return Record{}, fmt.Errorf("date: %w", err)
		}
	} else {
		date = string(msg.Date)
	}
	return Record{Body: *msg.Body, Date: date}, nil
}
