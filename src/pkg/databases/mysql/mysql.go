package mysql

import (
	"errors"
	"fmt"
	"time"

	"payout-service/src/pkg/log"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"
)

type DBInterface interface {
	GetDB() (*sqlx.DB, error)
}

type DB struct {
	db *sqlx.DB
}

// dataSourceName builds the DSN. clientFoundRows makes RowsAffected report
// matched rows instead of changed rows; the wallet credit and the payout
// claim both gate on it, and an update that happens to change nothing must
// still count as a hit.
func dataSourceName(v *viper.Viper) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC&clientFoundRows=true",
		v.GetString("mysql.user"),
		v.GetString("mysql.password"),
		v.GetString("mysql.host"),
		v.GetInt("mysql.port"),
		v.GetString("mysql.database"),
	)
}

// InitConnection opens the pool from viper config and pings it once.
func InitConnection(v *viper.Viper, logger log.Log) (DBInterface, error) {
	db, err := sqlx.Connect("mysql", dataSourceName(v))
	if err != nil {
		logger.Error("mysql", fmt.Sprintf("Failed to connect to database: %v", err), "InitConnection", "")
		return &DB{}, err
	}

	maxOpen := v.GetInt("mysql.max_open_conns")
	if maxOpen == 0 {
		maxOpen = 25
	}
	maxIdle := v.GetInt("mysql.max_idle_conns")
	if maxIdle == 0 {
		maxIdle = 5
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(30 * time.Minute)

	logger.Info("mysql", "Database connection established", "InitConnection", v.GetString("mysql.database"))
	return &DB{db: db}, nil
}

func (d *DB) GetDB() (*sqlx.DB, error) {
	if d.db == nil {
		return nil, errors.New("database connection is not initialized")
	}
	return d.db, nil
}
