package bridge

import (
	"encoding/json"
	"log/slog"
)

// Command types recognized from the GUI.
const cmdCapturePasteDestination = "capture_paste_destination"

// Command is an inbound request from the GUI.
type Command struct {
	Type string `json:"type"`

	// capture_paste_destination payload
	Timestamp   looseString `json:"timestamp"`
	Application string      `json:"application"`
	Window      string      `json:"window"`
}

// looseString accepts either a JSON string or a bare number — GUI versions
// have sent paste timestamps both ways.
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = looseString(v)
		return nil
	}
	if string(b) == "null" {
		*s = ""
		return nil
	}
	*s = looseString(b)
	return nil
}

// dispatch parses and routes one inbound message. Malformed payloads are
// discarded; unrecognized command types are ignored.
func (b *Bridge) dispatch(raw []byte) {
	var cmd Command
	if err := json.Unmarshal(raw, &cmd); err != nil {
		slog.Warn("invalid command received, discarding", "err", err)
		return
	}
	switch cmd.Type {
	case cmdCapturePasteDestination:
		slog.Debug("paste destination capture requested", "application", cmd.Application)
		b.handler.OnPasteSignal(string(cmd.Timestamp), cmd.Application, cmd.Window)
	default:
		slog.Debug("ignoring unknown command", "type", cmd.Type)
	}
}
