package utils

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomDateJSON(t *testing.T) {
	var cd CustomDate
	require.NoError(t, json.Unmarshal([]byte(`"1956-07-09"`), &cd))
	assert.Equal(t, NewCustomDate(1956, time.July, 9), cd)

	out, err := json.Marshal(cd)
	require.NoError(t, err)
	assert.JSONEq(t, `"1956-07-09"`, string(out))
}

func TestCustomDateUnmarshalRejectsBadInput(t *testing.T) {
	for _, in := range []string{`"1956-7-9"`, `"09/07/1956"`, `1956`, `"1956-07-09T00:00:00Z"`, `""`} {
		var cd CustomDate
		assert.Error(t, json.Unmarshal([]byte(in), &cd), in)
	}
}

func TestCustomDateAfter(t *testing.T) {
	now := time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)

	assert.False(t, NewCustomDate(1956, time.July, 9).After(now))
	assert.False(t, NewCustomDate(2026, time.October, 15).After(now), "today is not in the future")
	assert.True(t, NewCustomDate(2026, time.October, 16).After(now))
	assert.True(t, NewCustomDate(2999, time.January, 1).After(now))
}

func TestCustomDateScan(t *testing.T) {
	var cd CustomDate
	require.NoError(t, cd.ScanDate(pgtype.Date{Time: time.Date(1994, time.July, 6, 0, 0, 0, 0, time.UTC), Valid: true}))
	assert.Equal(t, "1994-07-06", cd.String())

	assert.Error(t, cd.ScanDate(pgtype.Date{}))
	assert.Error(t, cd.ScanDate(pgtype.Date{Valid: true, InfinityModifier: pgtype.Infinity}))

	require.NoError(t, cd.Scan(time.Date(2000, time.January, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2000-01-02", cd.String())
	assert.Error(t, cd.Scan("2000-01-02"))

	v, err := NewCustomDate(1994, time.July, 6).DateValue()
	require.NoError(t, err)
	assert.True(t, v.Valid)
	assert.Equal(t, "1994-07-06", v.Time.Format(DateLayout))
}
