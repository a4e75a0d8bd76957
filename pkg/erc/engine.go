package erc

// rule is one entry in the fixed, deterministic rule sequence. Gate
// decides whether the rule runs at all for a given Options; Check is a
// pure function from (index, options) to a freshly allocated violation
// list. Adding a rule is a single entry in ruleSequence, no scattered
// conditional calls elsewhere.
type rule struct {
	id    string
	gate  func(Options) bool
	check func(*Index, Options) []Violation
}

// ruleSequence is the nine rules in their declared execution order.
// This order is part of the engine's determinism contract: it must
// never be reordered.
var ruleSequence = []rule{
	{id: "voltage_compatibility", gate: alwaysOn, check: checkVoltageCompatibility},
	{id: "current_budget", gate: func(o Options) bool { return o.CheckCurrentBudget }, check: checkCurrentBudget},
	{id: "power_distribution", gate: alwaysOn, check: checkPowerDistribution},
	{id: "ground_connections", gate: alwaysOn, check: checkGroundConnections},
	{id: "i2c_pullups", gate: func(o Options) bool { return o.RequirePullUps }, check: checkI2CPullUps},
	{id: "pin_type_mismatch", gate: alwaysOn, check: checkPinTypeMismatch},
	{id: "floating_pins", gate: alwaysOn, check: checkFloatingPins},
	{id: "short_circuits", gate: alwaysOn, check: checkShortCircuits},
	{id: "motor_servo_power", gate: alwaysOn, check: checkMotorServoPower},
}

func alwaysOn(Options) bool { return true }

// Run builds an index from the given snapshot and executes every
// enabled rule in sequence, returning a complete report. Run never
// mutates modules or connections and performs no I/O. It returns a
// non-nil *InputError only when the snapshot cannot be indexed at all
// (see BuildIndex); a single malformed connection never triggers this -
// the owning rule simply skips it.
func Run(modules []Module, connections []Connection, options Options) (*Report, error) {
	idx, err := BuildIndex(modules, connections)
	if err != nil {
		return nil, err
	}

	var violations []Violation
	var checkedRules []string

	for _, r := range ruleSequence {
		if !r.gate(options) {
			continue
		}
		violations = append(violations, r.check(idx, options)...)
		checkedRules = append(checkedRules, r.id)
	}

	report := assembleReport(violations, checkedRules)

	if options.CheckCurrentBudget {
		total, contributing := currentBudgetTotals(idx)
		report.Diagnostics = &Diagnostics{
			CurrentBudget: &CurrentBudgetDiagnostic{
				TotalMA:             total,
				BudgetMA:            options.MaxTotalCurrentMA,
				ContributingModules: contributing,
			},
		}
	}

	return report, nil
}
