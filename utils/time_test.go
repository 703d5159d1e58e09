package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-04-07")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC), d)

	// The booking form sends full timestamps; the time part is dropped.
	d, err = ParseDate("2025-04-07T13:45:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("07.04.2025")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestFormatDateTR(t *testing.T) {
	assert.Equal(t, "07.04.2025", FormatDateTR(time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)))
}
