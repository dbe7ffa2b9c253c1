package dbmysql

import (
	"fmt"
	"time"

	"gatherchat/internal/config"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models lists every table owned by this service, in migration order.
func Models() []interface{} {
	return []interface{}{
		&Profile{},
		&Event{},
		&Message{},
		&Notification{},
	}
}

// NewMySQL returns a GORM DB instance connected to MySQL
func NewMySQL(cnf *config.Config, log *zap.Logger) (*gorm.DB, error) {
	dsn := cnf.DSN()

	logLevel := logger.Warn
	if cnf.Logging.Level == "debug" {
		logLevel = logger.Info
	}

	log.Info("connecting to database",
		zap.String("host", cnf.Database.Host),
		zap.String("port", cnf.Database.Port),
		zap.String("database", cnf.Database.DatabaseName))

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:      logger.Default.LogMode(logLevel),
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot connect to MySQL: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql.DB error: %w", err)
	}
	sqlDB.SetMaxOpenConns(cnf.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cnf.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := db.AutoMigrate(Models()...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info("connected to MySQL")
	return db, nil
}
