package database

import (
	"log"
	"os"
	"path/filepath"

	"thanawya_backend/internal/config"
	"thanawya_backend/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 打开本地SQLite数据库。整个应用只有一张documents表：
// 每个逻辑集合（任务、课程、日程……）序列化成一个JSON文档存一行，
// 对应浏览器localStorage的"一个key一个JSON"布局
func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			os.MkdirAll(dir, 0755)
		}
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := db.AutoMigrate(&model.Document{}); err != nil {
		return nil, err
	}

	return db, nil
}
