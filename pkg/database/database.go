package database

import (
	"fmt"
	"hirehub_backend/internal/config"
	"hirehub_backend/internal/model"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Job{},
		&model.Candidate{},
		&model.Assessment{},
		&model.SubmissionRecord{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Demo job so the builder has something to open on a fresh database.
	var count int64
	db.Model(&model.Job{}).Count(&count)
	if count == 0 {
		demo := &model.Job{
			Title:       "Backend Engineer",
			Department:  "Engineering",
			Location:    "Remote",
			Description: "Build and operate our hiring platform services.",
			Status:      model.JobOpen,
			Tags:        model.StringList{"go", "backend"},
		}
		db.Create(demo)
	}

	return db, nil
}
