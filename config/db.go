package config

import (
	"fmt"
	"net/url"
	"strings"

	"hotel-reservations/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

const (
	defaultAdminUser     = "admin@hotel.local"
	defaultAdminPassword = "admin123"
)

// SeedDatabase creates a staff account and a starter catalogue on an empty
// database. Existing rows are left alone.
func SeedDatabase(db *gorm.DB, log *zap.Logger) error {
	// ---------------- Admins ----------------
	var adminCount int64
	if err := db.Model(&models.Admin{}).Count(&adminCount).Error; err != nil {
		return err
	}
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash default admin password: %w", err)
		}
		admin := models.Admin{FullName: "Admin User", Username: defaultAdminUser, Password: string(hash)}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("create default admin: %w", err)
		}
		log.Info("default admin seeded", zap.String("username", admin.Username))
	}

	// ---------------- Categories & Rooms ----------------
	var categoryCount int64
	if err := db.Model(&models.Category{}).Count(&categoryCount).Error; err != nil {
		return err
	}
	if categoryCount > 0 {
		return nil
	}

	catalogue := []struct {
		category models.Category
		numbers  []string
	}{
		{models.Category{Title: "Standard", Description: "Standard double room", Price: 80}, []string{"101", "102", "103"}},
		{models.Category{Title: "Deluxe", Description: "Deluxe king room", Price: 140}, []string{"201", "202"}},
		{models.Category{Title: "Suite", Description: "Two-room suite", Price: 260}, []string{"301"}},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, entry := range catalogue {
			cat := entry.category
			if err := tx.Create(&cat).Error; err != nil {
				return fmt.Errorf("seed category %s: %w", cat.Title, err)
			}
			rooms := make([]models.Room, 0, len(entry.numbers))
			for _, n := range entry.numbers {
				rooms = append(rooms, models.Room{Number: n, CategoryID: cat.ID})
			}
			if err := tx.Create(&rooms).Error; err != nil {
				return fmt.Errorf("seed rooms for %s: %w", cat.Title, err)
			}
		}
		log.Info("catalogue seeded", zap.Int("categories", len(catalogue)))
		return nil
	})
}

func mysqlDSNFromURL(raw string) (string, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "UTC")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode())
	return dsn, dbName, nil
}

func resolveMySQLDSN(cfg DBConfig) (string, string, error) {
	raw := strings.TrimSpace(cfg.MySQLURL)
	if raw == "" {
		raw = strings.TrimSpace(cfg.URL)
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, cfg.Name, nil
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name,
	)
	return dsn, cfg.Name, nil
}

func resolvePostgresDSN(cfg DBConfig) string {
	if raw := strings.TrimSpace(cfg.URL); raw != "" {
		return raw
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode,
	)
}

func dialector(cfg DBConfig) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", "mysql":
		dsn, _, err := resolveMySQLDSN(cfg)
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	case "postgres", "postgresql":
		return postgres.Open(resolvePostgresDSN(cfg)), nil
	case "sqlite":
		return sqlite.Open(cfg.Name), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
}

// OpenDatabase connects and migrates but does not seed.
func OpenDatabase(cfg DBConfig, log *zap.Logger) (*gorm.DB, error) {
	dial, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	gormLogger := logger.New(
		zap.NewStdLog(log.Named("gorm")),
		logger.Config{
			SlowThreshold:             cfg.SlowThreshold,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(dial, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(cfg.Driver, "sqlite") {
		// a single connection keeps in-memory databases alive and serialises writers
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	// AutoMigrate in parent->child order
	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Category{},
		&models.AddOn{},
		&models.Room{},
		&models.Customer{},
		&models.Payment{},
		&models.Reservation{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

// ConnectDatabase opens the configured database, seeds it if asked to and
// publishes the handle on DB.
func ConnectDatabase(cfg DBConfig, log *zap.Logger) (*gorm.DB, error) {
	db, err := OpenDatabase(cfg, log)
	if err != nil {
		return nil, err
	}
	if cfg.Seed {
		if err := SeedDatabase(db, log); err != nil {
			return nil, err
		}
	}
	DB = db
	return db, nil
}
