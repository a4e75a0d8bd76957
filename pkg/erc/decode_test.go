package erc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeValidSnapshotAppliesDefaults(t *testing.T) {
	body := `{
		"modules": [{"id":"m1","name":"board","pins":[{"id":"p1","type":"power","enabled":true}]}],
		"connections": []
	}`

	snap, err := Decode(strings.NewReader(body))
	require.NoError(t, err)
	require.NotNil(t, snap.Options)
	assert.True(t, snap.Options.StrictVoltageChecks)
	assert.Equal(t, 1000.0, snap.Options.MaxTotalCurrentMA)
}

func TestDecodeRejectsMissingPinID(t *testing.T) {
	body := `{"modules": [{"id":"m1","name":"board","pins":[{"type":"power"}]}]}`

	_, err := Decode(strings.NewReader(body))
	require.Error(t, err)
	var inputErr *InputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestDecodeRejectsInvalidPinType(t *testing.T) {
	body := `{"modules": [{"id":"m1","name":"board","pins":[{"id":"p1","type":"quantum"}]}]}`

	_, err := Decode(strings.NewReader(body))
	require.Error(t, err)
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	_, err := Decode(strings.NewReader(`{not json`))
	require.Error(t, err)
}
