package erc

// assembleReport concatenates rule outputs in rule order, counts
// severities, and determines pass/fail. Pure function; the ordering of
// violations is entirely determined by its caller (Run), which is itself
// deterministic given a fixed input.
func assembleReport(violations []Violation, checkedRules []string) *Report {
	summary := Summary{}
	for _, v := range violations {
		switch v.Severity {
		case SeverityError:
			summary.Errors++
		case SeverityWarning:
			summary.Warnings++
		case SeverityInfo:
			summary.Info++
		}
	}

	return &Report{
		Passed:       summary.Errors == 0,
		Violations:   violations,
		Summary:      summary,
		CheckedRules: checkedRules,
	}
}
