package erc

import (
	"fmt"
	"sort"
)

// checkPowerDistribution flags ERC020: for each net carrying at least
// one power-kind connection, every endpoint pin that declares a nominal
// voltage must agree.
func checkPowerDistribution(idx *Index, _ Options) []Violation {
	var out []Violation

	for _, netName := range idx.Nets() {
		members := idx.NetMembers(netName)

		var powerMembers []netMember
		for _, m := range members {
			if m.kind == ConnPower {
				powerMembers = append(powerMembers, m)
			}
		}
		if len(powerMembers) == 0 {
			continue
		}

		distinctVoltages := make(map[int]bool)
		var voltageOrder []int
		var affected []string
		seenPin := make(map[string]bool)

		for _, m := range powerMembers {
			for _, pinID := range []string{m.from, m.to} {
				if !seenPin[pinID] {
					seenPin[pinID] = true
					affected = append(affected, pinID)
				}
				pin, _, ok := idx.Pin(pinID)
				if !ok || pin.VoltageMV == nil {
					continue
				}
				if !distinctVoltages[*pin.VoltageMV] {
					distinctVoltages[*pin.VoltageMV] = true
					voltageOrder = append(voltageOrder, *pin.VoltageMV)
				}
			}
		}

		if len(voltageOrder) <= 1 {
			continue
		}

		sorted := append([]int(nil), voltageOrder...)
		sort.Ints(sorted)

		out = append(out, Violation{
			Severity:      SeverityError,
			Code:          "ERC020",
			Message:       fmt.Sprintf("power net %q has conflicting voltages: %v mV", netName, sorted),
			AffectedItems: affected,
		})
	}

	return out
}
