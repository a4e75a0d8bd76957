package erc

import "fmt"

// checkGroundConnections flags ERC030: every enabled ground pin must be
// an endpoint of at least one ground-kind connection.
func checkGroundConnections(idx *Index, _ Options) []Violation {
	groundConnected := make(map[string]bool)
	for _, c := range idx.Connections {
		if c.Kind != ConnGround {
			continue
		}
		groundConnected[c.From] = true
		groundConnected[c.To] = true
	}

	var out []Violation
	for _, m := range idx.Modules {
		for _, p := range m.Pins {
			if !p.Enabled || p.Type != PinGround {
				continue
			}
			if groundConnected[p.ID] {
				continue
			}
			out = append(out, Violation{
				Severity:      SeverityError,
				Code:          "ERC030",
				Message:       fmt.Sprintf("ground pin %s on module %s is not connected to any ground net", p.ID, m.Name),
				AffectedItems: []string{m.ID, p.ID},
			})
		}
	}

	return out
}
