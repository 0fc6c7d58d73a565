package currency

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := map[string]string{
		"500":       "500",
		" 12.5 USD": "12.5",
		"-3":        "-3",
		".75":       "0.75",
		"10.":       "10",
		"1e3":       "1000",
	}
	for in, want := range cases {
		got, ok := Parse(in)
		require.True(t, ok, in)
		require.True(t, got.Equal(decimal.RequireFromString(want)), "%s: got %s", in, got)
	}

	for _, in := range []string{"", "abc", "$500", "-"} {
		_, ok := Parse(in)
		require.False(t, ok, in)
	}
}

func TestAmount_UnmarshalLenient(t *testing.T) {
	var rows []struct {
		Amount Amount `json:"amount"`
	}
	data := `[{"amount":500},{"amount":"250.50"},{"amount":"n/a"},{"amount":null},{}]`
	require.NoError(t, json.Unmarshal([]byte(data), &rows))
	require.Len(t, rows, 5)
	require.Equal(t, "500", rows[0].Amount.String())
	require.Equal(t, "250.5", rows[1].Amount.String())
	require.True(t, rows[2].Amount.IsZero())
	require.True(t, rows[3].Amount.IsZero())
	require.True(t, rows[4].Amount.IsZero())
}

func TestAmount_MarshalAsNumber(t *testing.T) {
	data, err := json.Marshal(map[string]Amount{"amount": AmountFromFloat(1234.5)})
	require.NoError(t, err)
	require.JSONEq(t, `{"amount":1234.5}`, string(data))
}

func TestSum(t *testing.T) {
	total := Sum(AmountFromFloat(0.1), AmountFromFloat(0.2), Amount{})
	require.True(t, total.Equal(decimal.RequireFromString("0.3")))
}

func TestFormat(t *testing.T) {
	require.Equal(t, "$500.00", Format(decimal.NewFromInt(500), "USD"))
	require.Equal(t, "$1,234.50", Format(decimal.RequireFromString("1234.5"), ""))
	require.Equal(t, "$0.00", Format(decimal.Zero, "nope"))
	require.True(t, Valid("eur"))
	require.False(t, Valid("XYZ1"))
}

func TestFormat_ClampsOverflow(t *testing.T) {
	huge := decimal.RequireFromString("100000000000000000")
	require.Equal(t, "$92,233,720,368,547,758.07", Format(huge, "USD"))
	require.Equal(t, "-$92,233,720,368,547,758.07", Format(huge.Neg(), "USD"))

	require.Equal(t, "$1,000,000,000,000.00", Format(MaxAmount, "USD"))
}
