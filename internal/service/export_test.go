package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aina-travel/backend/internal/domain"
	"github.com/aina-travel/backend/internal/service"
)

func TestExport_RowsCarryItineraryAssignments(t *testing.T) {
	sess := newTestSession(t)
	trips := service.NewTripService(sess)
	ctx := context.Background()

	for _, id := range []string{"p1", "p2", "p3", "p4"} {
		require.NoError(t, trips.Add(ctx, poiFixture(id, "Lisbon", "Portugal")))
	}
	require.NoError(t, trips.Add(ctx, poiFixture("p5", "Tokyo", "Japan")))

	rows := service.NewExportService(sess).Export()

	require.Len(t, rows, 5)
	assert.Equal(t, "Portugal Adventure", rows[0].TripName)
	assert.Equal(t, 1, rows[0].Day)
	assert.Equal(t, domain.SlotMorning, rows[0].Slot)
	assert.Equal(t, 2, rows[3].Day, "fourth item rolls to day 2")
	assert.Equal(t, "Japan Adventure", rows[4].TripName)
	assert.Equal(t, domain.SlotMorning, rows[4].Slot)
}

func TestExport_EmptyTripYieldsOneBareRow(t *testing.T) {
	sess := newTestSession(t)
	err := sess.Update(context.Background(), func(state *domain.SessionState) error {
		trip := domain.NewTrip(poiFixture("p1", "Lisbon", "Portugal"), time.Now().UTC())
		trip.Items = nil
		state.Trips = append(state.Trips, trip)
		return nil
	})
	require.NoError(t, err)

	rows := service.NewExportService(sess).Export()

	require.Len(t, rows, 1)
	assert.Equal(t, "Portugal Adventure", rows[0].TripName)
	assert.Empty(t, rows[0].POIID)
	assert.Zero(t, rows[0].Day)
}

func TestExport_NoTrips(t *testing.T) {
	rows := service.NewExportService(newTestSession(t)).Export()

	require.NotNil(t, rows)
	assert.Empty(t, rows)
}
