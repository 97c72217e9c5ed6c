package db

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/eletrigo/eletrigo-api/config"
)

var DB *gorm.DB

// Status is "connected" or "error"; Mode is "remote" or "memory".
// Both are reported by GET /health.
var (
	Status = "disconnected"
	Mode   = "remote"
)

func GetDB() *gorm.DB {
	return DB
}

// Connect opens the record store. With no DATABASE_URL it starts a disposable
// in-memory instance; with one it tries the remote store first and falls back
// to memory on failure. Connect never exits the process: on total failure
// Status stays "error" and /health reports the degraded state.
func Connect(cfg *config.Config) {
	if cfg.DatabaseURL == "" {
		openMemory()
		return
	}

	gdb, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Println("Failed to connect to remote database, falling back to memory:", err)
		openMemory()
		return
	}

	DB = gdb
	Status = "connected"
	Mode = "remote"
	log.Println("Database connection established (remote)")
}

func openMemory() {
	Mode = "memory"
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		Status = "error"
		log.Println("Failed to start in-memory database:", err)
		return
	}
	DB = gdb
	Status = "connected"
	log.Println("Database connection established (memory)")
}
