package rotation

import (
	"math"
	"time"

	"github.com/harborfleet/crewdesk/internal/core/domain"
)

// Derive computes whether a crew member is on board or at home on the given
// day, from the day their current cycle started and their rotation regime.
// The cycle begins on board: the first half of each cycle is ON_BOARD, the
// second half AT_HOME.
//
// The boolean result is false when no status can be derived (zero start
// date or unrecognized regime). Callers must then leave the existing status
// untouched rather than guess.
func Derive(start time.Time, regime domain.Regime, today time.Time) (domain.CrewStatus, bool) {
	cycleDays := regime.CycleDays()
	if cycleDays == 0 || start.IsZero() {
		return "", false
	}

	// Normalize both ends to local midnight so time-of-day and DST shifts
	// cannot move a person across a cycle boundary.
	startDay := atMidnight(start)
	todayDay := atMidnight(today)

	// Rounding absorbs the odd-length days a DST transition produces.
	daysSince := int(math.Round(todayDay.Sub(startDay).Hours() / 24))

	// Double mod keeps the position defined for dates before the start date
	// (negative daysSince).
	position := ((daysSince % cycleDays) + cycleDays) % cycleDays
	if position < cycleDays/2 {
		return domain.StatusOnBoard, true
	}
	return domain.StatusAtHome, true
}

func atMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
