package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborfleet/crewdesk/internal/apperrors"
	"github.com/harborfleet/crewdesk/internal/core/domain"
	portssvc "github.com/harborfleet/crewdesk/internal/core/ports/services"
	"github.com/harborfleet/crewdesk/internal/repositories/dualstore"
)

func TestOnboardCrewWithoutRotationStartsUnassigned(t *testing.T) {
	f := newFacadeFixture()
	f.seed(t, nil, nil, nil, nil)

	person, warning, err := f.svc.OnboardCrew(context.Background(), portssvc.OnboardCrewParams{
		Name:     "  Ada Marlow  ",
		Position: "Engineer",
	}, "hr-1")

	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.Equal(t, "Ada Marlow", person.Name)
	assert.Equal(t, domain.StatusUnassigned, person.Status)
	assert.Nil(t, person.ShipID)
	assert.NotEmpty(t, person.PersonID)
	assert.Equal(t, "hr-1", person.CreatedBy)

	snap := f.svc.Snapshot(context.Background())
	require.Len(t, snap.Crew, 1)
	assert.Equal(t, person.PersonID, snap.Crew[0].PersonID)
}

func TestOnboardCrewDerivesStatusFromRotation(t *testing.T) {
	f := newFacadeFixture()
	f.seed(t, []domain.Ship{{ShipID: "ship-1", Name: "MV Aurora"}}, nil, nil, nil)

	start := testNow.AddDate(0, 0, -3)
	person, _, err := f.svc.OnboardCrew(context.Background(), portssvc.OnboardCrewParams{
		Name:      "Ada Marlow",
		StartDate: &start,
		Regime:    domain.RegimeTwoOnTwoOff,
		ShipID:    strPtr("ship-1"),
	}, "hr-1")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusOnBoard, person.Status)
}

func TestOnboardCrewValidation(t *testing.T) {
	f := newFacadeFixture()
	f.seed(t, nil, nil, nil, nil)

	_, _, err := f.svc.OnboardCrew(context.Background(), portssvc.OnboardCrewParams{Name: "   "}, "hr-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, _, err = f.svc.OnboardCrew(context.Background(), portssvc.OnboardCrewParams{
		Name:   "Ada Marlow",
		Regime: domain.Regime("4/4"),
	}, "hr-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, _, err = f.svc.OnboardCrew(context.Background(), portssvc.OnboardCrewParams{
		Name:   "Ada Marlow",
		ShipID: strPtr("no-such-ship"),
	}, "hr-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAssignCrewToShip(t *testing.T) {
	f := newFacadeFixture()
	f.seed(t,
		[]domain.Ship{{ShipID: "ship-1", Name: "MV Aurora"}},
		[]domain.Person{testPerson("p-1", nil)},
		nil, nil)

	start := testNow.AddDate(0, 0, -20)
	person, warning, err := f.svc.AssignCrewToShip(context.Background(), "p-1", "ship-1", start, domain.RegimeTwoOnTwoOff, "hr-1")

	require.NoError(t, err)
	assert.Empty(t, warning)
	require.NotNil(t, person.ShipID)
	assert.Equal(t, "ship-1", *person.ShipID)
	assert.Equal(t, domain.StatusAtHome, person.Status)
	assert.Equal(t, "hr-1", person.LastUpdatedBy)
}

func TestAssignCrewRejectsOverriddenStatus(t *testing.T) {
	f := newFacadeFixture()
	f.seed(t,
		[]domain.Ship{{ShipID: "ship-1", Name: "MV Aurora"}},
		[]domain.Person{testPerson("p-1", func(p *domain.Person) { p.Status = domain.StatusSick })},
		nil, nil)

	_, _, err := f.svc.AssignCrewToShip(context.Background(), "p-1", "ship-1", testNow, domain.RegimeTwoOnTwoOff, "hr-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUnassignCrewClearsRotation(t *testing.T) {
	f := newFacadeFixture()
	f.seed(t,
		[]domain.Ship{{ShipID: "ship-1", Name: "MV Aurora"}},
		[]domain.Person{testPerson("p-1", func(p *domain.Person) {
			p.ShipID = strPtr("ship-1")
			p.StartDate = timePtr(testNow.AddDate(0, 0, -5))
			p.Regime = domain.RegimeTwoOnTwoOff
			p.Status = domain.StatusOnBoard
		})},
		nil, nil)

	person, _, err := f.svc.UnassignCrew(context.Background(), "p-1", "hr-1")

	require.NoError(t, err)
	assert.Nil(t, person.ShipID)
	assert.Nil(t, person.StartDate)
	assert.Empty(t, person.Regime)
	assert.Equal(t, domain.StatusUnassigned, person.Status)
}

func TestMarkSickThenReactivate(t *testing.T) {
	f := newFacadeFixture()
	f.seed(t,
		[]domain.Ship{{ShipID: "ship-1", Name: "MV Aurora"}},
		[]domain.Person{testPerson("p-1", func(p *domain.Person) {
			p.ShipID = strPtr("ship-1")
			p.StartDate = timePtr(testNow.AddDate(0, 0, -5))
			p.Regime = domain.RegimeTwoOnTwoOff
			p.Status = domain.StatusOnBoard
		})},
		nil, nil)

	person, _, err := f.svc.MarkCrewSick(context.Background(), "p-1", "hr-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSick, person.Status)

	_, _, err = f.svc.ReactivateCrew(context.Background(), "p-1", testNow, domain.RegimeTwoOnTwoOff, "hr-1")
	require.NoError(t, err)

	// Reactivating a healthy person is a validation error, not a no-op.
	_, _, err = f.svc.ReactivateCrew(context.Background(), "p-1", testNow, domain.RegimeTwoOnTwoOff, "hr-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestReactivateDerivesFreshCycle(t *testing.T) {
	f := newFacadeFixture()
	f.seed(t,
		[]domain.Ship{{ShipID: "ship-1", Name: "MV Aurora"}},
		[]domain.Person{testPerson("p-1", func(p *domain.Person) {
			p.ShipID = strPtr("ship-1")
			p.Status = domain.StatusOutOfService
		})},
		nil, nil)

	start := testNow.AddDate(0, 0, -1)
	person, _, err := f.svc.ReactivateCrew(context.Background(), "p-1", start, domain.RegimeOneOnOneOff, "hr-1")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusOnBoard, person.Status)
	require.NotNil(t, person.StartDate)
	assert.Equal(t, start, *person.StartDate)
}

func TestTerminateCrewArchivesOpenStandBack(t *testing.T) {
	f := newFacadeFixture()

	rec := domain.StandBackRecord{
		RecordID:      "rec-1",
		PersonID:      "p-1",
		RequiredDays:  10,
		CompletedDays: 4,
		RemainingDays: 6,
		Status:        domain.StandBackOpen,
	}
	f.seed(t, nil, []domain.Person{testPerson("p-1", nil)}, nil, []domain.StandBackRecord{rec})

	var archived *domain.StandBackRecord
	f.standBack.UpdateFn = func(_ context.Context, r domain.StandBackRecord) dualstore.Result[domain.StandBackRecord] {
		archived = &r
		return dualstore.Ok(r)
	}

	warning, err := f.svc.TerminateCrew(context.Background(), "p-1", "hr-1")

	require.NoError(t, err)
	assert.Empty(t, warning)
	require.NotNil(t, archived)
	assert.Equal(t, domain.StandBackArchivedTerminated, archived.Status)
	// The written-off balance is preserved for audit, never zeroed.
	assert.Equal(t, 6, archived.RemainingDays)
	assert.Equal(t, 4, archived.CompletedDays)

	snap := f.svc.Snapshot(context.Background())
	assert.Empty(t, snap.Crew)
	require.Len(t, snap.StandBack, 1)
	assert.Equal(t, domain.StandBackArchivedTerminated, snap.StandBack[0].Status)
}

func TestTerminateCrewSurfacesCacheWarnings(t *testing.T) {
	f := newFacadeFixture()
	f.seed(t, nil, []domain.Person{testPerson("p-1", nil)}, nil, nil)

	f.crew.RemoveFn = func(context.Context, string) dualstore.Result[struct{}] {
		return dualstore.Soft(struct{}{}, errors.New("removal queued on local cache"))
	}

	warning, err := f.svc.TerminateCrew(context.Background(), "p-1", "hr-1")

	require.NoError(t, err)
	assert.Contains(t, warning, "local cache")
}

func TestTerminateCrewUnknownPerson(t *testing.T) {
	f := newFacadeFixture()
	f.seed(t, nil, nil, nil, nil)

	_, err := f.svc.TerminateCrew(context.Background(), "ghost", "hr-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
