package database

import (
	"fmt"
	"log"

	"question_bank_backend/internal/config"
	"question_bank_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
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

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := seedDefaults(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate 建表/更新表结构，测试环境也会复用
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Tag{},
		&model.Question{},
		&model.Comment{},
		&model.Like{},
		&model.Favorite{},
		&model.PracticeRecord{},
	)
}

// seedDefaults 首次启动时写入管理员账号和常用标签
func seedDefaults(db *gorm.DB) error {
	var userCount int64
	db.Model(&model.User{}).Count(&userCount)
	if userCount == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("admin123456"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := &model.User{
			Email:    "admin@question-bank.local",
			Username: "admin",
			Password: string(hashed),
			Role:     model.RoleAdmin,
		}
		if err := db.Create(admin).Error; err != nil {
			return err
		}
		log.Println("Seeded default admin account")
	}

	var tagCount int64
	db.Model(&model.Tag{}).Count(&tagCount)
	if tagCount == 0 {
		defaultTags := []model.Tag{
			{Name: "JavaScript", Color: "#f7df1e"},
			{Name: "Go", Color: "#00add8"},
			{Name: "数据结构", Color: "#7c3aed"},
			{Name: "算法", Color: "#2563eb"},
			{Name: "数据库", Color: "#16a34a"},
			{Name: "操作系统", Color: "#ea580c"},
		}
		for _, t := range defaultTags {
			if err := db.Create(&t).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
