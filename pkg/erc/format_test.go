package erc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPassingReport(t *testing.T) {
	report, err := Run(nil, nil, DefaultOptions())
	require.NoError(t, err)

	out := Format(report)
	assert.Contains(t, out, "ERC PASS")
	assert.Contains(t, out, "0 error(s)")
}

func TestFormatFailingReportIncludesIconsAndCodes(t *testing.T) {
	modules := []Module{
		{ID: "m1", Name: "a", MaxCurrentMA: f64Ptr(2000)},
	}
	report, err := Run(modules, nil, DefaultOptions())
	require.NoError(t, err)

	out := Format(report)
	assert.Contains(t, out, "ERC FAIL")
	assert.Contains(t, out, "ERC010")
	assert.True(t, strings.Contains(out, "❌"))
}
