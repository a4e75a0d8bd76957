package erc

import (
	"encoding/json"
	"io"
)

// Snapshot is the wire shape accepted by Decode: the three inputs to Run,
// bundled for JSON transport over the CLI and HTTP gateway. It is never
// used by Run itself; the engine takes modules/connections/options as
// plain arguments so it has no JSON-decoding concern of its own.
type Snapshot struct {
	Modules     []Module     `json:"modules"`
	Connections []Connection `json:"connections"`
	Options     *Options     `json:"options,omitempty"`
}

// Decode reads a Snapshot from r and validates it well enough to be
// indexed: a snapshot that fails here never reaches Run at all. It
// returns *InputError for structural problems (not a generic error) so
// callers can handle it the same way as an in-engine InputError.
func Decode(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&snap); err != nil {
		return Snapshot{}, inputErrorf("invalid snapshot JSON: %v", err)
	}

	for i, m := range snap.Modules {
		if m.ID == "" {
			return Snapshot{}, inputErrorf("modules[%d]: missing id", i)
		}
		for j, p := range m.Pins {
			if p.ID == "" {
				return Snapshot{}, inputErrorf("modules[%d].pins[%d]: missing id", i, j)
			}
			if !validPinType(p.Type) {
				return Snapshot{}, inputErrorf("modules[%d].pins[%d]: invalid pin type %q", i, j, p.Type)
			}
		}
	}
	for i, c := range snap.Connections {
		if c.ID == "" {
			return Snapshot{}, inputErrorf("connections[%d]: missing id", i)
		}
		if c.From == "" || c.To == "" {
			return Snapshot{}, inputErrorf("connections[%d]: missing endpoint", i)
		}
		if !validConnectionKind(c.Kind) {
			return Snapshot{}, inputErrorf("connections[%d]: invalid kind %q", i, c.Kind)
		}
	}

	if snap.Options == nil {
		defaults := DefaultOptions()
		snap.Options = &defaults
	}

	return snap, nil
}

func validPinType(t PinType) bool {
	switch t {
	case PinPower, PinGround, PinSignalInput, PinSignalOutput, PinSignalBidirectional, PinAnalog, PinOther:
		return true
	default:
		return false
	}
}

func validConnectionKind(k ConnectionKind) bool {
	switch k {
	case ConnPower, ConnGround, ConnSignal, ConnBus:
		return true
	default:
		return false
	}
}
