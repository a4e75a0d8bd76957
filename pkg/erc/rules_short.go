package erc

import "fmt"

// checkShortCircuits flags ERC070: a single net that carries both a
// power-typed and a ground-typed pin is a short.
func checkShortCircuits(idx *Index, _ Options) []Violation {
	var out []Violation

	for _, netName := range idx.Nets() {
		members := idx.NetMembers(netName)

		hasPower := false
		hasGround := false
		var affected []string
		seen := make(map[string]bool)

		for _, m := range members {
			for _, pinID := range []string{m.from, m.to} {
				if !seen[pinID] {
					seen[pinID] = true
					affected = append(affected, pinID)
				}
				pin, _, ok := idx.Pin(pinID)
				if !ok {
					continue
				}
				switch pin.Type {
				case PinPower:
					hasPower = true
				case PinGround:
					hasGround = true
				}
			}
		}

		if hasPower && hasGround {
			out = append(out, Violation{
				Severity:      SeverityError,
				Code:          "ERC070",
				Message:       fmt.Sprintf("net %q shorts power to ground", netName),
				AffectedItems: affected,
			})
		}
	}

	return out
}
