package erc

import "fmt"

// currentBudgetTotals sums, over all modules in iteration order, the
// contributing current for each: max(MaxCurrentMA, 0) if present, else
// max(AvgPowerDrawMA, 0) if present, else 0. It returns the sum and the
// names of modules whose contribution was greater than zero, in
// iteration order, shared by checkCurrentBudget and the engine's
// Diagnostics population.
func currentBudgetTotals(idx *Index) (float64, []string) {
	var total float64
	var contributing []string

	for _, m := range idx.Modules {
		var v float64
		switch {
		case m.MaxCurrentMA != nil:
			v = *m.MaxCurrentMA
			if v < 0 {
				v = 0
			}
		case m.AvgPowerDrawMA != nil:
			v = *m.AvgPowerDrawMA
			if v < 0 {
				v = 0
			}
		}
		total += v
		if v > 0 {
			contributing = append(contributing, m.Name)
		}
	}

	return total, contributing
}

// checkCurrentBudget flags ERC010 and ERC011.
func checkCurrentBudget(idx *Index, opts Options) []Violation {
	total, contributing := currentBudgetTotals(idx)
	budget := opts.MaxTotalCurrentMA

	switch {
	case total > budget:
		return []Violation{{
			Severity: SeverityError,
			Code:     "ERC010",
			Message: fmt.Sprintf("total current draw (%.1f mA) exceeds budget (%.1f mA)",
				total, budget),
			AffectedItems: contributing,
		}}
	case total > 0.8*budget:
		return []Violation{{
			Severity: SeverityWarning,
			Code:     "ERC011",
			Message: fmt.Sprintf("total current draw (%.1f mA) exceeds 80%% of budget (%.1f mA)",
				total, budget),
			AffectedItems: contributing,
		}}
	}

	return nil
}
