package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"eduplus/backend/config"
	"eduplus/backend/models"
	"eduplus/backend/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// DB opens a migrated, private in-memory SQLite database for t.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(tb.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := utils.Migrate(db); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	return db
}

func Logger(tb testing.TB) *utils.Logger {
	tb.Helper()
	return utils.NopLogger()
}

func Config(tb testing.TB) *config.Config {
	tb.Helper()
	return &config.Config{
		AppEnv:       "test",
		ServerPort:   "0",
		DBDriver:     config.DriverSQLite,
		JWTSecret:    "testsecret",
		JWTTTL:       time.Hour,
		CORSOrigins:  "*",
		LogMode:      "development",
		RedisChannel: "eduplus:test",
		SessionTTL:   time.Minute,
	}
}

// SeedCourse inserts a course with two modules and one course-level PDF.
func SeedCourse(tb testing.TB, db *gorm.DB, title string) models.Course {
	tb.Helper()
	course := models.Course{
		Nombre:      title,
		Titulo:      title,
		Descripcion: "Descripción de " + title,
		Categoria:   "Programación",
		Nivel:       "Intermedio",
		Duracion:    "8 semanas",
		Modulos: []models.Module{
			{Titulo: "Introducción", VideoURL: "https://videos.example.com/1", Materiales: []models.Material{
				{Nombre: "Guía", URL: "https://docs.example.com/guia.pdf"},
			}},
			{Titulo: "Práctica", VideoURL: "https://videos.example.com/2"},
		},
		Materiales: []models.Material{{Nombre: "Temario", URL: "https://docs.example.com/temario.pdf"}},
	}
	if err := db.Create(&course).Error; err != nil {
		tb.Fatalf("seed course: %v", err)
	}
	return course
}

// SeedUser inserts a user whose password is "password123".
func SeedUser(tb testing.TB, db *gorm.DB, email, role string) models.User {
	tb.Helper()
	hash, err := utils.HashPassword("password123")
	if err != nil {
		tb.Fatalf("hash: %v", err)
	}
	user := models.User{Email: email, Name: strings.Split(email, "@")[0], PasswordHash: hash, Role: role}
	if err := db.Create(&user).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return user
}
