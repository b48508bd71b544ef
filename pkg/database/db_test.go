package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm/logger"
)

type testRecord struct {
	ID        int64
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
}

func TestInitDB_SQLite(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "test.db")

	db, err := InitDB(Options{
		Driver:          "sqlite",
		DSN:             dsn,
		MaxIdleConns:    2,
		MaxOpenConns:    1,
		ConnMaxLifetime: time.Minute,
		Logger:          logger.Default.LogMode(logger.Silent),
	}, &testRecord{})
	if err != nil {
		t.Fatalf("InitDB() error = %v", err)
	}
	defer Close(db)

	if !db.Migrator().HasTable(&testRecord{}) {
		t.Error("表应该被自动创建")
	}
	if err := Ping(context.Background(), db); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}

func TestInitDB_UnknownDriver(t *testing.T) {
	_, err := InitDB(Options{Driver: "oracle", DSN: "x"})
	if err == nil {
		t.Fatal("未知驱动应该返回错误")
	}
}

func TestClose(t *testing.T) {
	db, err := InitDB(Options{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "close.db"),
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("InitDB() error = %v", err)
	}

	if err := Close(db); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := Ping(context.Background(), db); err == nil {
		t.Error("关闭后 Ping 应该失败")
	}
}
