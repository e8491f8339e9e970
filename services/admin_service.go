package services

import (
	"context"
	"strings"

	"hotel-reservations/models"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AdminInput struct {
	FullName string `json:"full_name" validate:"required,max=255"`
	Username string `json:"username" validate:"required,max=150"`
	Password string `json:"password" validate:"required,min=8"`
}

// AdminService manages staff accounts.
type AdminService struct {
	DB  *gorm.DB
	log *zap.Logger
}

func NewAdminService(db *gorm.DB, log *zap.Logger) *AdminService {
	return &AdminService{DB: db, log: log.With(zap.String("service", "admin"))}
}

func (s *AdminService) List(ctx context.Context) ([]models.Admin, error) {
	admins := []models.Admin{}
	if err := s.DB.WithContext(ctx).Order("id").Find(&admins).Error; err != nil {
		return nil, errors.Wrap(err, "list admins")
	}
	return admins, nil
}

func (s *AdminService) Create(ctx context.Context, in AdminInput) (*models.Admin, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Username = strings.TrimSpace(in.Username)
	if err := validateInput(in); err != nil {
		return nil, err
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	admin := models.Admin{FullName: in.FullName, Username: in.Username, Password: hash}
	if err := s.DB.WithContext(ctx).Create(&admin).Error; err != nil {
		if IsDuplicateKey(err) {
			return nil, newBookingError(KindMalformedInput, ReasonDuplicate, "username already taken")
		}
		return nil, errors.Wrap(err, "create admin")
	}
	s.log.Info("admin created", zap.Uint("admin_id", admin.ID), zap.String("username", admin.Username))
	return &admin, nil
}

// Delete removes a staff account. Staff cannot delete themselves.
func (s *AdminService) Delete(ctx context.Context, id, actorID uint) error {
	if id == actorID {
		return newBookingError(KindMalformedInput, ReasonInUse, "cannot delete the signed-in account")
	}
	result := s.DB.WithContext(ctx).Delete(&models.Admin{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "delete admin")
	}
	if result.RowsAffected == 0 {
		return newBookingError(KindNotFound, ReasonAdminNotFound, "admin not found")
	}
	return nil
}
