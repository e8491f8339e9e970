package services

import (
	"context"
	"strings"

	"hotel-reservations/models"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RoomInput struct {
	Number      string         `json:"number" validate:"max=14"`
	CategoryID  uint           `json:"category_id" validate:"required,gt=0"`
	Description *string        `json:"description"`
	Unique      bool           `json:"unique"`
	Addon       map[string]any `json:"addon"`
}

type RoomService struct {
	DB  *gorm.DB
	log *zap.Logger
}

func NewRoomService(db *gorm.DB, log *zap.Logger) *RoomService {
	return &RoomService{DB: db, log: log.With(zap.String("service", "room"))}
}

func roomNotFound() error {
	return newBookingError(KindNotFound, ReasonRoomNotFound, "room not found")
}

func (s *RoomService) ensureCategory(ctx context.Context, id uint) error {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return errors.Wrap(err, "check category")
	}
	if count == 0 {
		return categoryNotFound()
	}
	return nil
}

func (s *RoomService) List(ctx context.Context) ([]models.Room, error) {
	rooms := []models.Room{}
	if err := s.DB.WithContext(ctx).Preload("Category").Order("id").Find(&rooms).Error; err != nil {
		return nil, errors.Wrap(err, "list rooms")
	}
	return rooms, nil
}

func (s *RoomService) Get(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.WithContext(ctx).Preload("Category").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, roomNotFound()
		}
		return nil, errors.Wrap(err, "load room")
	}
	return &room, nil
}

func (s *RoomService) Create(ctx context.Context, in RoomInput) (*models.Room, error) {
	in.Number = strings.TrimSpace(in.Number)
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := s.ensureCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	room := models.Room{
		Number:      in.Number,
		CategoryID:  in.CategoryID,
		Description: in.Description,
		Unique:      in.Unique,
		Addon:       datatypes.JSONMap(in.Addon),
	}
	if err := s.DB.WithContext(ctx).Create(&room).Error; err != nil {
		if IsDuplicateKey(err) {
			return nil, newBookingError(KindMalformedInput, ReasonDuplicate, "room already exists")
		}
		if IsForeignKeyViolation(err) {
			return nil, categoryNotFound()
		}
		return nil, errors.Wrap(err, "create room")
	}
	s.log.Info("room created", zap.Uint("room_id", room.ID), zap.String("label", room.Label()))
	return s.Get(ctx, room.ID)
}

func (s *RoomService) Update(ctx context.Context, id uint, in RoomInput) (*models.Room, error) {
	in.Number = strings.TrimSpace(in.Number)
	if err := validateInput(in); err != nil {
		return nil, err
	}
	room, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	updates := map[string]any{
		"number":      in.Number,
		"category_id": in.CategoryID,
		"description": in.Description,
		"is_unique":   in.Unique,
		"addon":       datatypes.JSONMap(in.Addon),
	}
	if err := s.DB.WithContext(ctx).Model(&models.Room{ID: room.ID}).Updates(updates).Error; err != nil {
		if IsForeignKeyViolation(err) {
			return nil, categoryNotFound()
		}
		return nil, errors.Wrap(err, "update room")
	}
	return s.Get(ctx, id)
}

// Delete removes a room together with its reservations.
func (s *RoomService) Delete(ctx context.Context, id uint) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", id).Delete(&models.Reservation{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Room{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return roomNotFound()
		}
		return nil
	})
	if err != nil {
		if _, ok := AsBookingError(err); ok {
			return err
		}
		return errors.Wrap(err, "delete room")
	}
	s.log.Info("room deleted", zap.Uint("room_id", id))
	return nil
}
