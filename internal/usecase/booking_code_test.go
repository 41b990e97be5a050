package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBookingCodeFormat(t *testing.T) {
	now := time.Date(2026, 1, 15, 14, 30, 0, 0, time.UTC)

	code, err := generateBookingCode(now)
	require.NoError(t, err)

	assert.Len(t, code, 18)
	assert.True(t, strings.HasPrefix(code, "HB-20260115-"))

	suffix := strings.TrimPrefix(code, "HB-20260115-")
	for _, c := range suffix {
		assert.Contains(t, bookingCodeAlphabet, string(c))
	}
}

func TestGenerateBookingCodeAvoidsAmbiguousCharacters(t *testing.T) {
	// 0, O, 1 and I are excluded so codes survive being read out loud
	assert.NotContains(t, bookingCodeAlphabet, "0")
	assert.NotContains(t, bookingCodeAlphabet, "O")
	assert.NotContains(t, bookingCodeAlphabet, "1")
	assert.NotContains(t, bookingCodeAlphabet, "I")
}

func TestParseStayDates(t *testing.T) {
	in := time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")
	out := time.Now().UTC().AddDate(0, 0, 10).Format("2006-01-02")

	checkIn, checkOut, err := parseStayDates(in, out)
	require.NoError(t, err)
	assert.True(t, checkOut.After(checkIn))

	_, _, err = parseStayDates("15-01-2026", out)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	_, _, err = parseStayDates(out, in)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, _, err = parseStayDates("2020-01-01", "2020-01-05")
	assert.ErrorIs(t, err, ErrCheckInInPast)
}
