// Package sqlite implementa los repositorios del menú sobre SQLite con gorm (desarrollo local y tests).
package sqlite

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jhoicas/menu-api/pkg/logger"
)

// MemoryPath abre una base en memoria (una por conexión: el pool se limita a 1).
const MemoryPath = ":memory:"

// Open abre la base en path con claves foráneas activas. Las consultas lentas y los errores
// se registran a través de log.
func Open(path string, log *logger.Logger) (*gorm.DB, error) {
	if log == nil {
		log = logger.Nop()
	}
	zl := log.Zerolog()
	db, err := gorm.Open(sqlite.Open(dsn(path)), &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(&zl, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite %s: %w", path, err)
	}
	if path == MemoryPath || path == "" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("obtener sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// Migrate crea o ajusta las tablas users, categories y menu_items (con FK hacia categories).
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&userModel{}, &categoryModel{}, &menuItemModel{}); err != nil {
		return fmt.Errorf("migrar sqlite: %w", err)
	}
	return nil
}

// Close cierra la conexión subyacente.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dsn(path string) string {
	if path == MemoryPath || path == "" {
		return "file::memory:?_pragma=foreign_keys(1)"
	}
	return path + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
}

// isForeignKeyViolation detecta category_id inexistente, traducido por gorm o en el texto de SQLite.
func isForeignKeyViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) ||
		strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
