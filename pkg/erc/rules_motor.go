package erc

import "fmt"

// checkMotorServoPower flags ERC080, ERC081, and ERC082. A module with
// no power pins at all stops here (ERC080) and skips the remaining
// checks for that module; a module with power pins gets both the
// connectivity check (ERC081) and the high-current info check (ERC082),
// independently of one another.
func checkMotorServoPower(idx *Index, _ Options) []Violation {
	var out []Violation

	for _, m := range idx.Modules {
		if !m.IsMotorOrServo {
			continue
		}

		var powerPins []Pin
		for _, p := range m.Pins {
			if p.Type == PinPower {
				powerPins = append(powerPins, p)
			}
		}

		if len(powerPins) == 0 {
			out = append(out, Violation{
				Severity:      SeverityWarning,
				Code:          "ERC080",
				Message:       fmt.Sprintf("motor/servo module %s declares no power pin", m.Name),
				AffectedItems: []string{m.ID},
			})
			continue
		}

		connected := false
		for _, p := range powerPins {
			if idx.IsConnected(p.ID) {
				connected = true
				break
			}
		}
		if !connected {
			affected := []string{m.ID}
			for _, p := range powerPins {
				affected = append(affected, p.ID)
			}
			out = append(out, Violation{
				Severity:      SeverityError,
				Code:          "ERC081",
				Message:       fmt.Sprintf("motor/servo module %s has no power pin connected", m.Name),
				AffectedItems: affected,
			})
		}

		if m.MaxCurrentMA != nil && *m.MaxCurrentMA > 500 {
			out = append(out, Violation{
				Severity:       SeverityInfo,
				Code:           "ERC082",
				Message:        fmt.Sprintf("motor/servo module %s draws %.1f mA, consider a dedicated driver/flyback diode", m.Name, *m.MaxCurrentMA),
				AffectedItems:  []string{m.ID},
				Recommendation: strPtr("use a motor driver or relay rather than powering the motor directly from a logic pin"),
			})
		}
	}

	return out
}
