package db

import (
	"log"
	"os"
	"sync"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	constant "liyu1981.xyz/footfall-service/pkg/common"
	"liyu1981.xyz/footfall-service/pkg/models"
)

type DB struct {
	Conn *gorm.DB
}

var (
	instance *DB
	once     sync.Once
)

// openAlertIndex backs the atomic find-open-or-create upsert for alerts:
// at most one open (not acknowledged, not resolved) alert may exist per
// (store, type, till) scope. Till number 0 carries the store-scoped case.
const openAlertIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_alerts_open_scope
ON alerts(store_id, type, till_number)
WHERE is_acknowledged = 0 AND is_resolved = 0`

func GetInstance(dialector gorm.Dialector) *DB {
	var logger = constant.GetLogger()
	once.Do(func() {
		conn, err := gorm.Open(dialector, &gorm.Config{})
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}

		logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

		instance = &DB{Conn: conn}

		err = instance.Conn.AutoMigrate(
			&models.Store{},
			&models.StoreConfig{},
			&models.Sample{},
			&models.TillQueue{},
			&models.Alert{},
		)
		if err != nil {
			log.Fatal("Failed to migrate database:", err)
		}

		logger.Info("Database migration completed")

		if err := instance.Conn.Exec(openAlertIndex).Error; err != nil {
			log.Fatal("Failed to create open-alert scope index", err)
		}

		if err := instance.Conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			log.Fatal("Failed to enable sqlite foreign key support", err)
		}

		if err := instance.Conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
			log.Fatal("Failed to set sqlite journal mode", err)
		}
	})
	return instance
}

func UseSqliteDialector() gorm.Dialector {
	var dbPath string
	var found bool
	if dbPath, found = os.LookupEnv(constant.EnvKeyFootfallDbPath); !found {
		dbPath = "footfall.db"
	}
	return sqlite.Open(dbPath)
}

func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open("file::memory:?cache=shared")
}
