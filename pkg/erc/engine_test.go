package erc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int          { return &i }
func f64Ptr(f float64) *float64  { return &f }

func mkPin(id string, t PinType, enabled bool) Pin {
	return Pin{ID: id, Name: id, Type: t, Enabled: enabled}
}

// S1: 5V pin driving a 3.3V-max pin.
func TestRunScenarioS1_VoltageExceedsMax(t *testing.T) {
	pinA := mkPin("A", PinSignalOutput, true)
	pinA.VoltageMV = intPtr(5000)
	pinB := mkPin("B", PinSignalInput, true)
	pinB.MaxVoltageMV = intPtr(3300)

	modules := []Module{
		{ID: "m1", Name: "driver", Pins: []Pin{pinA}},
		{ID: "m2", Name: "receiver", Pins: []Pin{pinB}},
	}
	connections := []Connection{
		{ID: "c1", From: "A", To: "B", Kind: ConnSignal},
	}

	report, err := Run(modules, connections, DefaultOptions())
	require.NoError(t, err)

	erc001 := filterCode(report.Violations, "ERC001")
	assert.Len(t, erc001, 1)
	assert.False(t, report.Passed)
}

// S2: current budget breach: 500 + 400 + 300 = 1200 > 1000.
func TestRunScenarioS2_CurrentBudgetError(t *testing.T) {
	modules := []Module{
		{ID: "m1", Name: "a", MaxCurrentMA: f64Ptr(500)},
		{ID: "m2", Name: "b", MaxCurrentMA: f64Ptr(400)},
		{ID: "m3", Name: "c", MaxCurrentMA: f64Ptr(300)},
	}

	report, err := Run(modules, nil, DefaultOptions())
	require.NoError(t, err)

	assert.Len(t, filterCode(report.Violations, "ERC010"), 1)
	assert.Len(t, filterCode(report.Violations, "ERC011"), 0)
	assert.False(t, report.Passed)
}

// S3: current budget warning band: 500 + 350 = 850, 0.8*1000 = 800.
func TestRunScenarioS3_CurrentBudgetWarning(t *testing.T) {
	modules := []Module{
		{ID: "m1", Name: "a", MaxCurrentMA: f64Ptr(500)},
		{ID: "m2", Name: "b", MaxCurrentMA: f64Ptr(350)},
	}

	report, err := Run(modules, nil, DefaultOptions())
	require.NoError(t, err)

	assert.Len(t, filterCode(report.Violations, "ERC010"), 0)
	assert.Len(t, filterCode(report.Violations, "ERC011"), 1)
	assert.True(t, report.Passed)
}

// S4: inconsistent power rail.
func TestRunScenarioS4_PowerRailConflict(t *testing.T) {
	net := "VCC"
	pA := mkPin("pa", PinPower, true)
	pA.VoltageMV = intPtr(3300)
	pB := mkPin("pb", PinPower, true)
	pC := mkPin("pc", PinPower, true)
	pC.VoltageMV = intPtr(5000)
	pD := mkPin("pd", PinPower, true)

	modules := []Module{
		{ID: "m1", Name: "mod1", Pins: []Pin{pA, pB}},
		{ID: "m2", Name: "mod2", Pins: []Pin{pC, pD}},
	}
	connections := []Connection{
		{ID: "c1", From: "pa", To: "pb", Kind: ConnPower, NetName: &net},
		{ID: "c2", From: "pc", To: "pd", Kind: ConnPower, NetName: &net},
	}

	report, err := Run(modules, connections, DefaultOptions())
	require.NoError(t, err)

	erc020 := filterCode(report.Violations, "ERC020")
	require.Len(t, erc020, 1)
	assert.ElementsMatch(t, []string{"pa", "pb", "pc", "pd"}, erc020[0].AffectedItems)
}

// S5: floating non-"other" enabled pin.
func TestRunScenarioS5_FloatingPin(t *testing.T) {
	modules := []Module{
		{ID: "m1", Name: "mod1", Pins: []Pin{mkPin("p1", PinSignalInput, true)}},
	}

	report, err := Run(modules, nil, DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, filterCode(report.Violations, "ERC060"), 1)

	disabled := []Module{
		{ID: "m1", Name: "mod1", Pins: []Pin{mkPin("p1", PinSignalInput, false)}},
	}
	report, err = Run(disabled, nil, DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, report.Violations, 0)

	other := []Module{
		{ID: "m1", Name: "mod1", Pins: []Pin{mkPin("p1", PinOther, true)}},
	}
	report, err = Run(other, nil, DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, report.Violations, 0)
}

// S6: power-ground short.
func TestRunScenarioS6_ShortCircuit(t *testing.T) {
	net := "N1"
	modules := []Module{
		{ID: "m1", Name: "mod1", Pins: []Pin{mkPin("pwr", PinPower, true)}},
		{ID: "m2", Name: "mod2", Pins: []Pin{mkPin("gnd", PinGround, true)}},
	}
	connections := []Connection{
		{ID: "c1", From: "pwr", To: "gnd", Kind: ConnBus, NetName: &net},
	}

	report, err := Run(modules, connections, DefaultOptions())
	require.NoError(t, err)

	assert.Len(t, filterCode(report.Violations, "ERC070"), 1)
	assert.Len(t, filterCode(report.Violations, "ERC050"), 1)
	assert.Len(t, filterCode(report.Violations, "ERC051"), 0)
}

// S7: I2C bus.
func TestRunScenarioS7_I2CPullups(t *testing.T) {
	net := "I2C_SDA"
	modules := []Module{
		{ID: "m1", Name: "mod1", Pins: []Pin{mkPin("sda", PinSignalBidirectional, true)}},
		{ID: "m2", Name: "mod2", Pins: []Pin{mkPin("scl", PinSignalBidirectional, true)}},
	}
	connections := []Connection{
		{ID: "c1", From: "sda", To: "scl", Kind: ConnBus, NetName: &net},
	}

	opts := DefaultOptions()
	report, err := Run(modules, connections, opts)
	require.NoError(t, err)
	assert.Len(t, filterCode(report.Violations, "ERC040"), 1)
	assert.Contains(t, report.CheckedRules, "i2c_pullups")

	opts.RequirePullUps = false
	report, err = Run(modules, connections, opts)
	require.NoError(t, err)
	assert.Len(t, filterCode(report.Violations, "ERC040"), 0)
	assert.NotContains(t, report.CheckedRules, "i2c_pullups")
}

func TestRunIsDeterministic(t *testing.T) {
	modules, connections := sampleSnapshot()
	r1, err := Run(modules, connections, DefaultOptions())
	require.NoError(t, err)
	r2, err := Run(modules, connections, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}

func TestRunDoesNotMutateInput(t *testing.T) {
	modules, connections := sampleSnapshot()
	modulesCopy := append([]Module(nil), modules...)
	connectionsCopy := append([]Connection(nil), connections...)

	_, err := Run(modules, connections, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, modulesCopy, modules)
	assert.Equal(t, connectionsCopy, connections)
}

func TestPassedImpliesZeroErrors(t *testing.T) {
	modules, connections := sampleSnapshot()
	report, err := Run(modules, connections, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, report.Summary.Errors == 0, report.Passed)
}

func TestSummaryConsistency(t *testing.T) {
	modules, connections := sampleSnapshot()
	report, err := Run(modules, connections, DefaultOptions())
	require.NoError(t, err)

	var errs, warns, infos int
	for _, v := range report.Violations {
		switch v.Severity {
		case SeverityError:
			errs++
		case SeverityWarning:
			warns++
		case SeverityInfo:
			infos++
		}
	}
	assert.Equal(t, errs, report.Summary.Errors)
	assert.Equal(t, warns, report.Summary.Warnings)
	assert.Equal(t, infos, report.Summary.Info)
}

func TestRuleListCompleteness(t *testing.T) {
	opts := Options{
		StrictVoltageChecks: false,
		MaxVoltageTolerance: 10,
		RequirePullUps:      false,
		CheckCurrentBudget:  false,
		MaxTotalCurrentMA:   1000,
	}
	modules, connections := sampleSnapshot()
	report, err := Run(modules, connections, opts)
	require.NoError(t, err)

	assert.NotContains(t, report.CheckedRules, "current_budget")
	assert.NotContains(t, report.CheckedRules, "i2c_pullups")
	assert.Contains(t, report.CheckedRules, "voltage_compatibility")
	assert.Contains(t, report.CheckedRules, "ground_connections")
}

func TestOptionMonotonicity(t *testing.T) {
	modules, connections := sampleSnapshot()

	full := DefaultOptions()
	reportFull, err := Run(modules, connections, full)
	require.NoError(t, err)

	restricted := full
	restricted.RequirePullUps = false
	reportRestricted, err := Run(modules, connections, restricted)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(reportRestricted.Violations), len(reportFull.Violations))
}

func TestBuildIndexRejectsDuplicatePinIDs(t *testing.T) {
	modules := []Module{
		{ID: "m1", Name: "a", Pins: []Pin{mkPin("p1", PinSignalInput, true)}},
		{ID: "m2", Name: "b", Pins: []Pin{mkPin("p1", PinSignalInput, true)}},
	}
	_, err := Run(modules, nil, DefaultOptions())
	require.Error(t, err)
	var inputErr *InputError
	assert.ErrorAs(t, err, &inputErr)
}

func filterCode(violations []Violation, code string) []Violation {
	var out []Violation
	for _, v := range violations {
		if v.Code == code {
			out = append(out, v)
		}
	}
	return out
}

func sampleSnapshot() ([]Module, []Connection) {
	net := "VCC"
	modules := []Module{
		{
			ID:   "board",
			Name: "board",
			Pins: []Pin{
				mkPin("board-pwr", PinPower, true),
				mkPin("board-gnd", PinGround, true),
			},
		},
		{
			ID:   "sensor",
			Name: "sensor",
			Pins: []Pin{
				mkPin("sensor-pwr", PinPower, true),
				mkPin("sensor-sig", PinAnalog, true),
			},
		},
	}
	connections := []Connection{
		{ID: "c1", From: "board-pwr", To: "sensor-pwr", Kind: ConnPower, NetName: &net},
		{ID: "c2", From: "board-gnd", To: "board-gnd", Kind: ConnGround},
	}
	return modules, connections
}
