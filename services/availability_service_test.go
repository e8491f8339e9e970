package services

import (
	"context"
	"testing"
	"time"

	"hotel-reservations/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOverlaps(t *testing.T) {
	mon := time.Date(2030, 1, 14, 14, 0, 0, 0, time.UTC)
	tue := mon.Add(24 * time.Hour)
	wed := tue.Add(24 * time.Hour)
	thu := wed.Add(24 * time.Hour)
	fri := thu.Add(24 * time.Hour)

	cases := []struct {
		name           string
		a1, a2, b1, b2 time.Time
		want           bool
	}{
		{name: "identical", a1: mon, a2: wed, b1: mon, b2: wed, want: true},
		{name: "partial", a1: mon, a2: wed, b1: tue, b2: thu, want: true},
		{name: "touching endpoints", a1: mon, a2: wed, b1: wed, b2: fri, want: true},
		{name: "containment", a1: mon, a2: fri, b1: tue, b2: wed, want: true},
		{name: "disjoint", a1: mon, a2: tue, b1: thu, b2: fri, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.a1, tc.a2, tc.b1, tc.b2))
			assert.Equal(t, tc.want, Overlaps(tc.b1, tc.b2, tc.a1, tc.a2), "symmetric")
		})
	}
}

func roomIDs(rooms []models.Room) []uint {
	ids := make([]uint, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestAvailableRooms(t *testing.T) {
	db := newTestDB(t)
	svc := NewAvailabilityService(db, zap.NewNop())
	ctx := context.Background()

	_, rooms := seedCategory(t, db, "Standard", "101", "102", "103")
	other, otherRooms := seedCategory(t, db, "Suite", "301")

	mon := time.Date(2030, 1, 14, 14, 0, 0, 0, time.UTC)
	wed := mon.Add(48 * time.Hour)
	seedReservation(t, db, rooms[0].ID, mon, wed)

	t.Run("excludes overlapping rooms", func(t *testing.T) {
		got, err := svc.AvailableRooms(ctx, &rooms[0].CategoryID, mon.Add(24*time.Hour), wed.Add(24*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, []uint{rooms[1].ID, rooms[2].ID}, roomIDs(got))
		assert.Equal(t, "Standard", got[0].Category.Title)
	})

	t.Run("touching endpoint still blocks", func(t *testing.T) {
		got, err := svc.AvailableRooms(ctx, &rooms[0].CategoryID, wed, wed.Add(24*time.Hour))
		require.NoError(t, err)
		assert.NotContains(t, roomIDs(got), rooms[0].ID)
	})

	t.Run("disjoint window frees the room", func(t *testing.T) {
		got, err := svc.AvailableRooms(ctx, &rooms[0].CategoryID, wed.Add(time.Hour), wed.Add(25*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, roomIDs(rooms), roomIDs(got))
	})

	t.Run("all categories ordered by id", func(t *testing.T) {
		got, err := svc.AvailableRooms(ctx, nil, mon.Add(24*time.Hour), wed.Add(24*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, []uint{rooms[1].ID, rooms[2].ID, otherRooms[0].ID}, roomIDs(got))
	})

	t.Run("unknown category yields nothing", func(t *testing.T) {
		missing := other.ID + 100
		got, err := svc.AvailableRooms(ctx, &missing, mon, wed)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestAvailableRoomsIgnoresCancellationFlag(t *testing.T) {
	db := newTestDB(t)
	svc := NewAvailabilityService(db, zap.NewNop())
	_, rooms := seedCategory(t, db, "Standard", "101")

	arrival := time.Date(2030, 2, 1, 14, 0, 0, 0, time.UTC)
	r := seedReservation(t, db, rooms[0].ID, arrival, arrival.Add(48*time.Hour))
	require.NoError(t, db.Model(&r).Update("cancelled", true).Error)

	got, err := svc.AvailableRooms(context.Background(), nil, arrival, arrival.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExtractCategories(t *testing.T) {
	a := models.Category{ID: 1, Title: "A"}
	b := models.Category{ID: 2, Title: "B"}
	rooms := []models.Room{
		{ID: 10, CategoryID: 1, Category: a},
		{ID: 11, CategoryID: 1, Category: a},
		{ID: 12, CategoryID: 2, Category: b},
	}

	got := ExtractCategories(rooms)
	if diff := cmp.Diff([]models.Category{a, b}, got); diff != "" {
		t.Errorf("ExtractCategories mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, ExtractCategories(nil))

	bare := ExtractCategories([]models.Room{{ID: 1, CategoryID: 7}})
	require.Len(t, bare, 1)
	assert.Equal(t, uint(7), bare[0].ID)
}
