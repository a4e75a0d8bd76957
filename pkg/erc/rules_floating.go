package erc

import "fmt"

// checkFloatingPins flags ERC060. Disabled pins and pins typed "other"
// are never reported floating, unconditionally, in every context, not
// just this one.
func checkFloatingPins(idx *Index, _ Options) []Violation {
	var out []Violation

	for _, m := range idx.Modules {
		for _, p := range m.Pins {
			if !p.Enabled || p.Type == PinOther {
				continue
			}
			if idx.IsConnected(p.ID) {
				continue
			}
			out = append(out, Violation{
				Severity:      SeverityWarning,
				Code:          "ERC060",
				Message:       fmt.Sprintf("pin %s on module %s is floating", p.ID, m.Name),
				AffectedItems: []string{m.ID, p.ID},
			})
		}
	}

	return out
}
