package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLenientDecimalCoercesGarbageToZero(t *testing.T) {
	var payload struct {
		Amount LenientDecimal `json:"amount"`
	}

	for _, body := range []string{
		`{"amount": "NaN"}`,
		`{"amount": "abc"}`,
		`{"amount": null}`,
		`{"amount": {}}`,
	} {
		require.NoError(t, json.Unmarshal([]byte(body), &payload), body)
		require.True(t, payload.Amount.IsZero(), body)
	}

	require.NoError(t, json.Unmarshal([]byte(`{"amount": "150000.50"}`), &payload))
	require.Equal(t, "150000.5", payload.Amount.String())

	require.NoError(t, json.Unmarshal([]byte(`{"amount": 20000}`), &payload))
	require.Equal(t, "20000", payload.Amount.String())
}

func TestLenientIntTruncatesAndCoerces(t *testing.T) {
	var payload struct {
		Quantity LenientInt `json:"quantity"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"quantity": 3}`), &payload))
	require.Equal(t, LenientInt(3), payload.Quantity)

	require.NoError(t, json.Unmarshal([]byte(`{"quantity": 2.9}`), &payload))
	require.Equal(t, LenientInt(2), payload.Quantity, "fractional quantities truncate")

	require.NoError(t, json.Unmarshal([]byte(`{"quantity": "oops"}`), &payload))
	require.Equal(t, LenientInt(0), payload.Quantity)
}
