package erc

import (
	"fmt"
	"strings"
)

// icon maps a severity to the public, log-readable emoji prefix. These
// lines are not a wire contract, callers must not parse them, but the
// prefixes themselves are part of the documented CLI/log surface.
func icon(s Severity) string {
	switch s {
	case SeverityError:
		return "❌" // ❌
	case SeverityWarning:
		return "⚠️" // ⚠️
	case SeverityInfo:
		return "ℹ️" // ℹ️
	default:
		return "-"
	}
}

// Format renders a Report as deterministic human-readable text for
// CLI/log surfaces. It never affects the report itself.
func Format(r *Report) string {
	var b strings.Builder

	status := "FAIL"
	if r.Passed {
		status = "PASS"
	}
	fmt.Fprintf(&b, "ERC %s: %d error(s), %d warning(s), %d info\n",
		status, r.Summary.Errors, r.Summary.Warnings, r.Summary.Info)

	if len(r.CheckedRules) > 0 {
		fmt.Fprintf(&b, "Checked rules: %s\n", strings.Join(r.CheckedRules, ", "))
	} else {
		b.WriteString("Checked rules: (none)\n")
	}

	if len(r.Violations) == 0 {
		return b.String()
	}

	b.WriteString("\n")
	for _, v := range r.Violations {
		fmt.Fprintf(&b, "%s %s: %s\n", icon(v.Severity), v.Code, v.Message)
		if v.Recommendation != nil && *v.Recommendation != "" {
			fmt.Fprintf(&b, "    recommendation: %s\n", *v.Recommendation)
		}
		if len(v.AffectedItems) > 0 {
			fmt.Fprintf(&b, "    affected: %s\n", strings.Join(v.AffectedItems, ", "))
		}
	}

	return b.String()
}
