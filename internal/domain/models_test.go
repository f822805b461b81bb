package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/spendwise/expense-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateOnly(t *testing.T) {
	date, err := domain.ParseDateOnly("2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-29", date.String())

	for _, input := range []string{"", "29/08/2026", "2026-08-29T00:00:00Z"} {
		_, err := domain.ParseDateOnly(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestDateOnlyJSON(t *testing.T) {
	date, err := domain.ParseDateOnly("2026-08-29")
	require.NoError(t, err)

	data, err := json.Marshal(date)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-29"`, string(data))

	var decoded domain.DateOnly
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, date, decoded)

	t.Run("rejects numbers", func(t *testing.T) {
		var d domain.DateOnly
		assert.Error(t, json.Unmarshal([]byte(`20260829`), &d))
	})
}

func TestDateOnlyScan(t *testing.T) {
	var d domain.DateOnly

	t.Run("time.Time", func(t *testing.T) {
		require.NoError(t, d.Scan(time.Date(2026, 8, 29, 15, 4, 5, 0, time.UTC)))
		assert.Equal(t, "2026-08-29", d.String())
	})

	t.Run("string with timestamp suffix", func(t *testing.T) {
		require.NoError(t, d.Scan("2026-08-29 00:00:00+00:00"))
		assert.Equal(t, "2026-08-29", d.String())
	})

	t.Run("bytes", func(t *testing.T) {
		require.NoError(t, d.Scan([]byte("2026-08-29")))
		assert.Equal(t, "2026-08-29", d.String())
	})

	t.Run("unsupported type", func(t *testing.T) {
		assert.Error(t, d.Scan(12345))
	})
}

func TestDateOnlyValue(t *testing.T) {
	date, err := domain.ParseDateOnly("2026-08-29")
	require.NoError(t, err)

	value, err := date.Value()
	require.NoError(t, err)
	assert.Equal(t, "2026-08-29", value)
}
