package erc

import "fmt"

// checkPinTypeMismatch flags ERC050 and ERC051.
//
// The check is deliberately asymmetric: only the from→to direction is
// checked. A (from=ground, to=power) connection fires ERC051; the same
// pins encoded as (from=power, to=ground) fire ERC050 instead, never
// both. This asymmetry is intentional and must not be "fixed" into a
// symmetric check.
func checkPinTypeMismatch(idx *Index, _ Options) []Violation {
	var out []Violation

	for _, c := range idx.Connections {
		fromPin, _, fromOK := idx.Pin(c.From)
		toPin, _, toOK := idx.Pin(c.To)
		if !fromOK || !toOK {
			continue
		}

		if fromPin.Type == PinPower && toPin.Type != PinPower {
			out = append(out, Violation{
				Severity:      SeverityError,
				Code:          "ERC050",
				Message:       fmt.Sprintf("connection %s links power pin %s to non-power pin %s", c.ID, fromPin.ID, toPin.ID),
				AffectedItems: []string{c.ID, fromPin.ID, toPin.ID},
			})
		}

		if fromPin.Type == PinGround && toPin.Type != PinGround {
			out = append(out, Violation{
				Severity:      SeverityError,
				Code:          "ERC051",
				Message:       fmt.Sprintf("connection %s links ground pin %s to non-ground pin %s", c.ID, fromPin.ID, toPin.ID),
				AffectedItems: []string{c.ID, fromPin.ID, toPin.ID},
			})
		}
	}

	return out
}
