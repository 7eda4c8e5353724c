package tripid

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalJSON(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		body string
		want ID
	}{
		{name: "number", body: `{"tripId": 2}`, want: ID{Value: 2, Valid: true}},
		{name: "fractional number", body: `{"tripId": 2.7}`, want: ID{Value: 2, Valid: true}},
		{name: "negative fractional number", body: `{"tripId": -2.7}`, want: ID{Value: -2, Valid: true}},
		{name: "exponent", body: `{"tripId": 1e1}`, want: ID{Value: 10, Valid: true}},
		{name: "huge number prints in exponent form", body: `{"tripId": 1e30}`, want: ID{Value: 1, Valid: true}},
		{name: "huge fractional mantissa", body: `{"tripId": 4.5e21}`, want: ID{Value: 4, Valid: true}},
		{name: "tiny number prints in exponent form", body: `{"tripId": 3e-7}`, want: ID{Value: 3, Valid: true}},
		{name: "small fraction", body: `{"tripId": 0.5}`, want: ID{Value: 0, Valid: true}},
		{name: "numeric string", body: `{"tripId": "4"}`, want: ID{Value: 4, Valid: true}},
		{name: "padded string", body: `{"tripId": "  5"}`, want: ID{Value: 5, Valid: true}},
		{name: "string with suffix", body: `{"tripId": "3abc"}`, want: ID{Value: 3, Valid: true}},
		{name: "signed string", body: `{"tripId": "+1"}`, want: ID{Value: 1, Valid: true}},
		{name: "hex string", body: `{"tripId": "0x2"}`, want: ID{Value: 2, Valid: true}},
		{name: "upper hex string", body: `{"tripId": "0X1F"}`, want: ID{Value: 31, Valid: true}},
		{name: "negative hex string", body: `{"tripId": "-0x2"}`, want: ID{Value: -2, Valid: true}},
		{name: "hex prefix only", body: `{"tripId": "0x"}`},
		{name: "array", body: `{"tripId": [3]}`, want: ID{Value: 3, Valid: true}},
		{name: "array of several", body: `{"tripId": ["4", 5]}`, want: ID{Value: 4, Valid: true}},
		{name: "empty array", body: `{"tripId": []}`},
		{name: "non numeric string", body: `{"tripId": "abc"}`},
		{name: "empty string", body: `{"tripId": ""}`},
		{name: "sign only", body: `{"tripId": "-"}`},
		{name: "null", body: `{"tripId": null}`},
		{name: "bool", body: `{"tripId": true}`},
		{name: "object", body: `{"tripId": {"id": 1}}`},
		{name: "missing", body: `{}`},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var req struct {
				TripID ID `json:"tripId"`
			}

			require.NoError(t, json.Unmarshal([]byte(tc.body), &req))
			assert.Equal(t, tc.want, req.TripID)
		})
	}
}

func TestParseOverflow(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ID{}, Parse("99999999999999999999999"))
	assert.Equal(t, ID{}, Parse("0xffffffffffffffffffff"))
}
