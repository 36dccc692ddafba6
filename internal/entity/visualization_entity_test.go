package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisualizationRoundTrip(t *testing.T) {
	original := Visualization{
		Type: VizInteractiveBarChart,
		Data: InteractiveBarChartData{
			Title:    "PoE Power Budget",
			Labels:   []string{"Available", "Used"},
			Values:   []float64{370, 116},
			MaxValue: 400,
			Unit:     "W",
			Color:    "#3B82F6",
		},
	}

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Visualization
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, original, decoded)
}

func TestVisualizationEnvelopeShape(t *testing.T) {
	v := Visualization{
		Type: VizCompatibilityMatrix,
		Data: CompatibilityMatrixData{
			Title:   "SW-24-POE Compatibility",
			Headers: []string{"PoE Devices"},
			Rows:    []CompatibilityRow{{Name: "SW-24-POE", Values: []string{"compatible"}}},
		},
	}

	raw, err := json.Marshal(v)
	require.NoError(t, err)

	var env map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.JSONEq(t, `"compatibility-matrix"`, string(env["type"]))
	assert.Contains(t, string(env["data"]), "SW-24-POE Compatibility")
}

func TestVisualizationUnknownTypeSurvivesRoundTrip(t *testing.T) {
	in := []byte(`{"type":"heat-map","data":{"cells":[1,2,3]}}`)

	var v Visualization
	require.NoError(t, json.Unmarshal(in, &v))

	unknown, ok := v.Data.(UnknownData)
	require.True(t, ok)
	assert.JSONEq(t, `{"cells":[1,2,3]}`, string(unknown.Raw))

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, string(in), string(out))
}

func TestVisualizationMalformedData(t *testing.T) {
	in := []byte(`{"type":"bar-chart","data":{"values":"not-an-array"}}`)

	var v Visualization
	assert.Error(t, json.Unmarshal(in, &v))
}
