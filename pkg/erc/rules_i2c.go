package erc

import "strings"

// i2cMarkers are the case-sensitive substrings that mark a net as an I2C
// bus. "i2c_sda" will not match "SDA", this is intentional; do not
// normalize case here.
var i2cMarkers = []string{"I2C", "SDA", "SCL"}

// checkI2CPullUps flags ERC040. It emits exactly one info violation
// globally across the whole snapshot, not one per matching net.
func checkI2CPullUps(idx *Index, _ Options) []Violation {
	var affected []string
	seen := make(map[string]bool)
	found := false

	for _, netName := range idx.Nets() {
		if !isI2CNet(netName) {
			continue
		}
		found = true
		for _, m := range idx.NetMembers(netName) {
			for _, pinID := range []string{m.from, m.to} {
				if !seen[pinID] {
					seen[pinID] = true
					affected = append(affected, pinID)
				}
			}
		}
	}

	if !found {
		return nil
	}

	return []Violation{{
		Severity:       SeverityInfo,
		Code:           "ERC040",
		Message:        "I2C bus detected: verify SDA/SCL pull-up resistors are present",
		AffectedItems:  affected,
		Recommendation: strPtr("add 2.2k–10k pull-up resistors to VCC on SDA and SCL if the board/module does not provide them"),
	}}
}

func isI2CNet(name string) bool {
	for _, marker := range i2cMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}
