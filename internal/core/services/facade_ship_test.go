package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborfleet/crewdesk/internal/apperrors"
	"github.com/harborfleet/crewdesk/internal/core/domain"
	"github.com/harborfleet/crewdesk/internal/repositories/dualstore"
)

func TestCreateShip(t *testing.T) {
	f := newFacadeFixture()
	f.seed(t, nil, nil, nil, nil)

	ship, warning, err := f.svc.CreateShip(context.Background(), "  MV Aurora  ", 12, "hr-1")

	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.Equal(t, "MV Aurora", ship.Name)
	assert.Equal(t, 12, ship.Capacity)
	assert.NotEmpty(t, ship.ShipID)

	snap := f.svc.Snapshot(context.Background())
	require.Len(t, snap.Ships, 1)
}

func TestCreateShipValidation(t *testing.T) {
	f := newFacadeFixture()
	f.seed(t, nil, nil, nil, nil)

	_, _, err := f.svc.CreateShip(context.Background(), "   ", 12, "hr-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, _, err = f.svc.CreateShip(context.Background(), "MV Aurora", 0, "hr-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateShipSurfacesCacheWarning(t *testing.T) {
	f := newFacadeFixture()
	f.seed(t, nil, nil, nil, nil)

	f.ships.CreateFn = func(_ context.Context, ship domain.Ship) dualstore.Result[domain.Ship] {
		return dualstore.Soft(ship, errors.New("write queued on local cache"))
	}

	ship, warning, err := f.svc.CreateShip(context.Background(), "MV Aurora", 12, "hr-1")

	require.NoError(t, err)
	require.NotNil(t, ship)
	assert.Contains(t, warning, "local cache")
}

func TestCreateShipHardFailure(t *testing.T) {
	f := newFacadeFixture()
	f.seed(t, nil, nil, nil, nil)

	f.ships.CreateFn = func(context.Context, domain.Ship) dualstore.Result[domain.Ship] {
		return dualstore.Hard[domain.Ship](apperrors.ErrRemoteUnavailable)
	}

	_, _, err := f.svc.CreateShip(context.Background(), "MV Aurora", 12, "hr-1")
	assert.ErrorIs(t, err, apperrors.ErrRemoteUnavailable)

	snap := f.svc.Snapshot(context.Background())
	assert.Empty(t, snap.Ships)
}

func TestUpdateShipPartialFields(t *testing.T) {
	f := newFacadeFixture()
	f.seed(t, []domain.Ship{{ShipID: "ship-1", Name: "MV Aurora", Capacity: 12}}, nil, nil, nil)

	capacity := 18
	ship, _, err := f.svc.UpdateShip(context.Background(), "ship-1", nil, &capacity, "hr-1")

	require.NoError(t, err)
	assert.Equal(t, "MV Aurora", ship.Name)
	assert.Equal(t, 18, ship.Capacity)
	assert.Equal(t, "hr-1", ship.LastUpdatedBy)
}

func TestUpdateShipUnknown(t *testing.T) {
	f := newFacadeFixture()
	f.seed(t, nil, nil, nil, nil)

	name := "MV Nowhere"
	_, _, err := f.svc.UpdateShip(context.Background(), "ghost", &name, nil, "hr-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRemoveShipUnassignsCrewFirst(t *testing.T) {
	f := newFacadeFixture()
	f.seed(t,
		[]domain.Ship{{ShipID: "ship-1", Name: "MV Aurora", Capacity: 12}},
		[]domain.Person{
			testPerson("p-1", func(p *domain.Person) {
				p.ShipID = strPtr("ship-1")
				p.StartDate = timePtr(testNow.AddDate(0, 0, -5))
				p.Regime = domain.RegimeTwoOnTwoOff
				p.Status = domain.StatusOnBoard
			}),
			testPerson("p-2", nil),
		},
		nil, nil)

	warning, err := f.svc.RemoveShip(context.Background(), "ship-1", "hr-1")

	require.NoError(t, err)
	assert.Empty(t, warning)

	snap := f.svc.Snapshot(context.Background())
	assert.Empty(t, snap.Ships)
	require.Len(t, snap.Crew, 2)
	for _, p := range snap.Crew {
		assert.Nil(t, p.ShipID)
		assert.Equal(t, domain.StatusUnassigned, p.Status)
	}
}
