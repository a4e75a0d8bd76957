package erc

import "fmt"

// checkVoltageCompatibility flags ERC001 and ERC002.
//
// Connections where either endpoint is a ground pin are skipped
// entirely, by design, even though "either" rather than "both" might
// read as surprising at first glance.
func checkVoltageCompatibility(idx *Index, opts Options) []Violation {
	var out []Violation

	for _, c := range idx.Connections {
		fromPin, _, fromOK := idx.Pin(c.From)
		toPin, _, toOK := idx.Pin(c.To)
		if !fromOK || !toOK {
			continue // malformed connection, recovered locally
		}
		if fromPin.Type == PinGround || toPin.Type == PinGround {
			continue
		}

		// ERC001: nominal voltage on one side exceeds the other's
		// absolute maximum. Both directions are checked independently.
		if fromPin.VoltageMV != nil && toPin.MaxVoltageMV != nil && *fromPin.VoltageMV > *toPin.MaxVoltageMV {
			out = append(out, Violation{
				Severity: SeverityError,
				Code:     "ERC001",
				Message: fmt.Sprintf("pin %s nominal voltage (%d mV) exceeds pin %s max voltage (%d mV)",
					fromPin.ID, *fromPin.VoltageMV, toPin.ID, *toPin.MaxVoltageMV),
				AffectedItems: []string{c.ID, fromPin.ID, toPin.ID},
			})
		}
		if toPin.VoltageMV != nil && fromPin.MaxVoltageMV != nil && *toPin.VoltageMV > *fromPin.MaxVoltageMV {
			out = append(out, Violation{
				Severity: SeverityError,
				Code:     "ERC001",
				Message: fmt.Sprintf("pin %s nominal voltage (%d mV) exceeds pin %s max voltage (%d mV)",
					toPin.ID, *toPin.VoltageMV, fromPin.ID, *fromPin.MaxVoltageMV),
				AffectedItems: []string{c.ID, toPin.ID, fromPin.ID},
			})
		}

		if !opts.StrictVoltageChecks {
			continue
		}

		// ERC002: nominal voltages differ by more than the configured
		// tolerance of their mean.
		if fromPin.VoltageMV != nil && toPin.VoltageMV != nil {
			va := float64(*fromPin.VoltageMV)
			vb := float64(*toPin.VoltageMV)
			diff := va - vb
			if diff < 0 {
				diff = -diff
			}
			mean := (va + vb) / 2
			tolerance := opts.MaxVoltageTolerance / 100
			if diff > mean*tolerance {
				out = append(out, Violation{
					Severity: SeverityWarning,
					Code:     "ERC002",
					Message: fmt.Sprintf("pin %s (%d mV) and pin %s (%d mV) exceed voltage tolerance of %.1f%%",
						fromPin.ID, *fromPin.VoltageMV, toPin.ID, *toPin.VoltageMV, opts.MaxVoltageTolerance),
					AffectedItems: []string{c.ID, fromPin.ID, toPin.ID},
				})
			}
		}
	}

	return out
}
