package rotation_test

import (
	"testing"
	"time"

	"github.com/harborfleet/crewdesk/internal/core/domain"
	"github.com/harborfleet/crewdesk/internal/utils/rotation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestDerive(t *testing.T) {
	start := day(2024, time.January, 1)

	tests := []struct {
		name   string
		start  time.Time
		regime domain.Regime
		today  time.Time
		want   domain.CrewStatus
	}{
		{"cycle begins on board", start, domain.RegimeTwoOnTwoOff, start, domain.StatusOnBoard},
		{"day 13 of 2/2 still on board", start, domain.RegimeTwoOnTwoOff, day(2024, time.January, 14), domain.StatusOnBoard},
		{"day 14 of 2/2 at home", start, domain.RegimeTwoOnTwoOff, day(2024, time.January, 15), domain.StatusAtHome},
		{"day 27 of 2/2 at home", start, domain.RegimeTwoOnTwoOff, day(2024, time.January, 28), domain.StatusAtHome},
		{"day 28 wraps to new cycle", start, domain.RegimeTwoOnTwoOff, day(2024, time.January, 29), domain.StatusOnBoard},
		{"day 7 of 1/1 at home", start, domain.RegimeOneOnOneOff, day(2024, time.January, 8), domain.StatusAtHome},
		{"day 20 of 3/3 on board", start, domain.RegimeThreeOnThreeOff, day(2024, time.January, 21), domain.StatusOnBoard},
		{"day 21 of 3/3 at home", start, domain.RegimeThreeOnThreeOff, day(2024, time.January, 22), domain.StatusAtHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := rotation.Derive(tt.start, tt.regime, tt.today)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveBeforeStartDate(t *testing.T) {
	start := day(2024, time.March, 1)

	// One day before the start of a 2/2 cycle is the last day of the
	// previous (virtual) cycle, i.e. at home.
	got, ok := rotation.Derive(start, domain.RegimeTwoOnTwoOff, day(2024, time.February, 29))
	require.True(t, ok)
	assert.Equal(t, domain.StatusAtHome, got)

	// A full cycle earlier is on board again.
	got, ok = rotation.Derive(start, domain.RegimeTwoOnTwoOff, day(2024, time.February, 2))
	require.True(t, ok)
	assert.Equal(t, domain.StatusOnBoard, got)
}

func TestDeriveIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, time.January, 1, 23, 55, 0, 0, time.Local)
	today := time.Date(2024, time.January, 15, 0, 5, 0, 0, time.Local)

	got, ok := rotation.Derive(start, domain.RegimeTwoOnTwoOff, today)
	require.True(t, ok)
	assert.Equal(t, domain.StatusAtHome, got)
}

func TestDeriveNoOpinion(t *testing.T) {
	start := day(2024, time.January, 1)

	_, ok := rotation.Derive(time.Time{}, domain.RegimeTwoOnTwoOff, start)
	assert.False(t, ok, "zero start date must yield no opinion")

	_, ok = rotation.Derive(start, domain.Regime("4/4"), start)
	assert.False(t, ok, "unknown regime must yield no opinion")

	_, ok = rotation.Derive(start, "", start)
	assert.False(t, ok, "empty regime must yield no opinion")
}

func TestDeriveDeterministic(t *testing.T) {
	start := day(2023, time.June, 5)
	today := day(2024, time.February, 10)

	first, ok := rotation.Derive(start, domain.RegimeThreeOnThreeOff, today)
	require.True(t, ok)
	for i := 0; i < 5; i++ {
		again, ok := rotation.Derive(start, domain.RegimeThreeOnThreeOff, today)
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}
