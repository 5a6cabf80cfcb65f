package database

import (
	"errors"
	"fmt"

	"github.com/folio-space/core/internal/config"
	"github.com/folio-space/core/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the configured database and runs auto-migration.
func Connect(cfg *config.AppConfig) (*gorm.DB, error) {
	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	if err := SeedAdmin(db, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		return nil, fmt.Errorf("admin seed failed: %w", err)
	}

	return db, nil
}

func openDB(cfg *config.AppConfig) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.IsDev() {
		logLevel = logger.Info
	}
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "mysql":
		dialector = mysql.New(mysql.Config{
			DSN:               cfg.Database.DSN,
			DefaultStringSize: 191,
		})
	case "sqlite":
		dialector = sqlite.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return db, nil
}

// migrate runs GORM auto-migration for all models, then reconciles rows left
// behind by the legacy single-date timeline schema.
func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.UserModel{},
		&models.ProfileModel{},
		&models.AboutContentModel{},
		&models.ProjectModel{},
		&models.ServiceModel{},
		&models.ExperienceModel{},
		&models.TimelineItemModel{},
		&models.SkillCategoryModel{},
		&models.SkillModel{},
		&models.TestimonialModel{},
		&models.MessageModel{},
		&models.CertificateModel{},
		&models.AnalyzeModel{},
	); err != nil {
		return err
	}

	if db.Migrator().HasColumn(&models.TimelineItemModel{}, "date") {
		if err := db.Exec("UPDATE timeline SET start_date = date WHERE start_date IS NULL OR start_date = ''").Error; err != nil {
			return err
		}
		if err := db.Migrator().DropColumn(&models.TimelineItemModel{}, "date"); err != nil {
			return err
		}
	}

	return nil
}

// SeedAdmin creates the admin user when none exists yet. A blank username or
// password leaves seeding to the /setup-admin endpoint.
func SeedAdmin(db *gorm.DB, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	var existing models.UserModel
	err := db.First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&models.UserModel{Username: username, Password: string(hash)}).Error
}
