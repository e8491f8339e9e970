package services

import (
	"context"
	"strings"

	"hotel-reservations/models"
	"hotel-reservations/utils"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CategoryInput struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description"`
	Cover       string  `json:"cover" validate:"max=255"`
}

type AddOnInput struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Render      *string `json:"render" validate:"omitempty,max=255"`
	Cover       string  `json:"cover" validate:"max=255"`
}

type CategoryService struct {
	DB  *gorm.DB
	log *zap.Logger
}

func NewCategoryService(db *gorm.DB, log *zap.Logger) *CategoryService {
	return &CategoryService{DB: db, log: log.With(zap.String("service", "category"))}
}

func categoryNotFound() error {
	return newBookingError(KindNotFound, ReasonCategoryNotFound, "category not found")
}

func validateInput(v any) error {
	if fieldErrs := utils.ValidateStruct(v); fieldErrs != nil {
		return newValidationError(ReasonInvalidPayload, utils.FormatValidationErrors(fieldErrs), fieldErrs)
	}
	return nil
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := s.DB.WithContext(ctx).Preload("AddOns").Order("id").Find(&categories).Error; err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*models.Category, error) {
	var cat models.Category
	if err := s.DB.WithContext(ctx).Preload("AddOns").First(&cat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, categoryNotFound()
		}
		return nil, errors.Wrap(err, "load category")
	}
	return &cat, nil
}

// Rooms lists the rooms of one category.
func (s *CategoryService) Rooms(ctx context.Context, id uint) ([]models.Room, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	rooms := []models.Room{}
	if err := s.DB.WithContext(ctx).Preload("Category").
		Where("category_id = ?", id).
		Order("id").
		Find(&rooms).Error; err != nil {
		return nil, errors.Wrap(err, "list category rooms")
	}
	return rooms, nil
}

func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (*models.Category, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := validateInput(in); err != nil {
		return nil, err
	}
	cat := models.Category{Title: in.Title, Price: in.Price, Description: in.Description, Cover: in.Cover}
	if err := s.DB.WithContext(ctx).Create(&cat).Error; err != nil {
		return nil, errors.Wrap(err, "create category")
	}
	s.log.Info("category created", zap.Uint("category_id", cat.ID), zap.String("title", cat.Title))
	return &cat, nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, in CategoryInput) (*models.Category, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := validateInput(in); err != nil {
		return nil, err
	}
	cat, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	updates := map[string]any{
		"title":       in.Title,
		"price":       in.Price,
		"description": in.Description,
		"cover":       in.Cover,
	}
	if err := s.DB.WithContext(ctx).Model(cat).Updates(updates).Error; err != nil {
		return nil, errors.Wrap(err, "update category")
	}
	return s.Get(ctx, id)
}

// Delete removes a category; its rooms and add-ons go with it.
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rooms []uint
		if err := tx.Model(&models.Room{}).Where("category_id = ?", id).Pluck("id", &rooms).Error; err != nil {
			return err
		}
		if len(rooms) > 0 {
			if err := tx.Where("room_id IN ?", rooms).Delete(&models.Reservation{}).Error; err != nil {
				return err
			}
			if err := tx.Where("category_id = ?", id).Delete(&models.Room{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("category_id = ?", id).Delete(&models.AddOn{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Category{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return categoryNotFound()
		}
		return nil
	})
	if err != nil {
		if _, ok := AsBookingError(err); ok {
			return err
		}
		return errors.Wrap(err, "delete category")
	}
	s.log.Info("category deleted", zap.Uint("category_id", id))
	return nil
}

func (s *CategoryService) CreateAddOn(ctx context.Context, categoryID uint, in AddOnInput) (*models.AddOn, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if _, err := s.Get(ctx, categoryID); err != nil {
		return nil, err
	}
	addon := models.AddOn{
		CategoryID:  categoryID,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Render:      in.Render,
		Cover:       in.Cover,
	}
	if err := s.DB.WithContext(ctx).Create(&addon).Error; err != nil {
		return nil, errors.Wrap(err, "create addon")
	}
	return &addon, nil
}
