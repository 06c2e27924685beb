// Package model defines the database models and owns the gorm connection setup.
package model

import (
	"fmt"
	"time"

	"miniblog/pkg/config"
	"miniblog/pkg/model/xgorm"
	"miniblog/pkg/xlog"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var logger = xlog.GetLogger()

// Open connects to MySQL and migrates the tables. The returned handle is
// the single long-lived connection pool for the process; callers pass it
// down explicitly instead of reaching for a package global.
func Open(cfg *config.MySQLServer) *gorm.DB {
	if cfg.Host == "" {
		logger.Fatal("empty db host")
	}

	logger.Infof("mysql connecting tcp(%s:%d)/%s", cfg.Host, cfg.Port, cfg.DB)

	url := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.User, cfg.Pass, cfg.Host, cfg.Port, cfg.DB,
	)

	logMode := xgorm.Warn
	if config.Shared != nil && config.Shared.IsDebug {
		logMode = xgorm.Info
	}

	db, err := gorm.Open(mysql.Open(url), &gorm.Config{
		Logger:         xgorm.New(logMode),
		TranslateError: true,
	})
	if err != nil {
		logger.Fatalf("connect mysql failed #1, err:%s", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatalf("connect mysql failed #2, err:%s", err)
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 8
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetConnMaxLifetime(10 * time.Hour)
	sqlDB.SetMaxIdleConns(4)

	if err = Migrate(db); err != nil {
		logger.Fatalf("auto migrate failed, err:%s", err)
	}

	logger.Infof("mysql connected tcp(%s:%d)/%s", cfg.Host, cfg.Port, cfg.DB)

	return db
}

// Migrate creates or updates the users and posts tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{}, &Post{})
}
