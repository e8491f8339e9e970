package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"hotel-reservations/config"
	"hotel-reservations/models"
	"hotel-reservations/utils"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token expired")
)

type StaffClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AdminID is the staff account id carried in the subject claim.
func (c *StaffClaims) AdminID() uint {
	id, _ := strconv.ParseUint(c.Subject, 10, 64)
	return uint(id)
}

type AuthService struct {
	DB     *gorm.DB
	secret []byte
	ttl    time.Duration
	issuer string
	clock  utils.Clock
	log    *zap.Logger
}

func NewAuthService(db *gorm.DB, cfg config.JWTConfig, clock utils.Clock, log *zap.Logger) *AuthService {
	return &AuthService{
		DB:     db,
		secret: []byte(cfg.Secret),
		ttl:    cfg.Duration,
		issuer: cfg.Issuer,
		clock:  clock,
		log:    log.With(zap.String("service", "auth")),
	}
}

// Login checks a staff username/password pair and issues a signed token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	var admin models.Admin
	if err := s.DB.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, errors.Wrap(err, "load admin")
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		s.log.Info("login rejected", zap.String("username", username))
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(&admin)
	if err != nil {
		return "", nil, err
	}
	return token, &admin, nil
}

func (s *AuthService) GenerateToken(admin *models.Admin) (string, error) {
	now := s.clock.Now()
	claims := StaffClaims{
		Username: admin.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(admin.ID), 10),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return signed, nil
}

func (s *AuthService) ValidateToken(tokenString string) (*StaffClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &StaffClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now), jwt.WithIssuer(s.issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*StaffClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// HashPassword is used when creating staff accounts.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "hash password")
	}
	return string(hash), nil
}
