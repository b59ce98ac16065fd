package books

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testSchema = `
CREATE TABLE books (
    id text PRIMARY KEY,
    title text NOT NULL,
    author text NOT NULL,
    genre text NOT NULL,
    year integer NOT NULL,
    status text NOT NULL DEFAULT 'Available',
    created_at datetime NOT NULL,
    updated_at datetime NOT NULL
)`

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared in-memory database keeps every pooled connection on
	// the same schema.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := conn.Exec(testSchema).Error; err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return conn
}
