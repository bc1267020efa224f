package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"08:15:30", "08:15:30"},
		{"08:15", "08:15:00"},
		{"23:59:59.250000", "23:59:59.250000"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}

	_, err := ParseTimeOfDay("25:00:00")
	assert.Error(t, err)
}

func TestTimeOfDayScan(t *testing.T) {
	var tod TimeOfDay
	require.NoError(t, tod.Scan([]byte("10:20:30")))
	assert.Equal(t, NewTimeOfDay(10, 20, 30), tod)

	require.NoError(t, tod.Scan(time.Date(0, 1, 1, 7, 5, 0, 0, time.UTC)))
	assert.Equal(t, "07:05:00", tod.String())

	v, err := tod.Value()
	require.NoError(t, err)
	assert.Equal(t, "07:05:00", v)
}

func TestDateJSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-09"`), &d))
	assert.Equal(t, NewDate(2024, time.March, 9), d)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-03-09"`, string(out))

	require.NoError(t, json.Unmarshal([]byte(`"2024-03-09T10:00:00Z"`), &d))
	assert.Equal(t, "2024-03-09", d.String())

	assert.Error(t, json.Unmarshal([]byte(`"09/03/2024"`), &d))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 1, 2, 15, 0, 0, 0, time.Local)))
	assert.Equal(t, "2024-01-02", d.String())

	require.NoError(t, d.Scan([]byte("2023-12-31 00:00:00")))
	assert.Equal(t, "2023-12-31", d.String())
}
