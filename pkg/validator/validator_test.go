package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stayRequest struct {
	CheckInDate string `validate:"required,stay_date"`
}

func TestStayDateAcceptsISODates(t *testing.T) {
	cv := NewValidator()
	assert.NoError(t, cv.Validate(&stayRequest{CheckInDate: "2026-03-01"}))
}

func TestStayDateRejectsOtherFormats(t *testing.T) {
	cv := NewValidator()

	for _, raw := range []string{"01-03-2026", "2026/03/01", "2026-13-40", "tomorrow"} {
		err := cv.Validate(&stayRequest{CheckInDate: raw})
		require.Error(t, err, raw)

		messages := cv.FormatValidationErrors(err)
		assert.Equal(t, "CheckInDate must be a date in YYYY-MM-DD format", messages["CheckInDate"])
	}
}
