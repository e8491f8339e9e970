package services

import (
	"context"
	"time"

	"hotel-reservations/models"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AvailabilityService struct {
	DB  *gorm.DB
	log *zap.Logger
}

func NewAvailabilityService(db *gorm.DB, log *zap.Logger) *AvailabilityService {
	return &AvailabilityService{DB: db, log: log.With(zap.String("service", "availability"))}
}

// Overlaps is the closed-interval test used for occupancy: touching
// endpoints count as overlapping.
func Overlaps(a1, a2, b1, b2 time.Time) bool {
	return !a1.After(b2) && !b1.After(a2)
}

// AvailableRooms lists rooms (optionally of one category) that no
// reservation overlaps within [start, end]. Callers ensure start < end.
func (s *AvailabilityService) AvailableRooms(ctx context.Context, categoryID *uint, start, end time.Time) ([]models.Room, error) {
	rooms, err := availableRooms(s.DB.WithContext(ctx), categoryID, start, end)
	if err != nil {
		return nil, err
	}
	s.log.Debug("availability computed",
		zap.Time("start", start),
		zap.Time("end", end),
		zap.Int("rooms", len(rooms)),
	)
	return rooms, nil
}

// availableRooms runs on db, which may be a transaction.
func availableRooms(db *gorm.DB, categoryID *uint, start, end time.Time) ([]models.Room, error) {
	start, end = start.UTC(), end.UTC()

	var occupied []uint
	if err := db.Model(&models.Reservation{}).
		Where("arrival_date <= ? AND departure_date >= ?", end, start).
		Distinct("room_id").
		Pluck("room_id", &occupied).Error; err != nil {
		return nil, errors.Wrap(err, "query overlapping reservations")
	}

	q := db.Model(&models.Room{}).Preload("Category").Order("rooms.id")
	if categoryID != nil {
		q = q.Where("rooms.category_id = ?", *categoryID)
	}
	if len(occupied) > 0 {
		q = q.Where("rooms.id NOT IN ?", occupied)
	}

	rooms := []models.Room{}
	if err := q.Find(&rooms).Error; err != nil {
		return nil, errors.Wrap(err, "query candidate rooms")
	}
	return rooms, nil
}

// ExtractCategories returns the distinct categories of rooms in first-seen order.
func ExtractCategories(rooms []models.Room) []models.Category {
	seen := make(map[uint]struct{}, len(rooms))
	out := make([]models.Category, 0)
	for _, r := range rooms {
		id := r.CategoryID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		cat := r.Category
		if cat.ID == 0 {
			cat.ID = id
		}
		out = append(out, cat)
	}
	return out
}
