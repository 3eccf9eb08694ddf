package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPaymentGap_Contains(t *testing.T) {
	gap := &PaymentGap{
		Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, gap.Contains(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)), "Start day is inclusive")
	assert.True(t, gap.Contains(time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, gap.Contains(time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC)), "End day is inclusive")
	assert.False(t, gap.Contains(time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, gap.Contains(time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)))
}
