package mysql

import (
	"context"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"

	"tolleasy-service/src/pkg/log"
)

// DBInterface hides the concrete connection so repositories stay testable.
type DBInterface interface {
	GetDB() (*sqlx.DB, error)
}

type connection struct {
	db *sqlx.DB
}

func (c *connection) GetDB() (*sqlx.DB, error) {
	if c.db == nil {
		return nil, fmt.Errorf("mysql connection is not initialized")
	}
	return c.db, nil
}

func InitConnection(v *viper.Viper, logger log.Log) (DBInterface, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC",
		v.GetString("mysql.user"),
		v.GetString("mysql.password"),
		v.GetString("mysql.host"),
		v.GetInt("mysql.port"),
		v.GetString("mysql.database"),
	)

	db, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open mysql: %w", err)
	}

	db.SetMaxOpenConns(v.GetInt("mysql.max_open_conns"))
	db.SetMaxIdleConns(v.GetInt("mysql.max_idle_conns"))
	db.SetConnMaxLifetime(time.Duration(v.GetInt("mysql.conn_max_lifetime_minutes")) * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping mysql: %w", err)
	}

	conn := &connection{db: db}
	if err := conn.ensureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Info("mysql", "connected to mysql", "init", v.GetString("mysql.host"))
	return conn, nil
}

func (c *connection) ensureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			name VARCHAR(255) NOT NULL,
			phone_number VARCHAR(32),
			address VARCHAR(512),
			current_balance DOUBLE NOT NULL DEFAULT 0,
			subscription_plan_id BIGINT NULL,
			subscription_status VARCHAR(20) NOT NULL DEFAULT 'active',
			subscription_start_date DATETIME NULL,
			subscription_end_date DATETIME NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			INDEX idx_users_email (email)
		)`,
		`CREATE TABLE IF NOT EXISTS vehicles (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			user_id BIGINT NOT NULL,
			license_plate VARCHAR(32) NOT NULL UNIQUE,
			vehicle_type VARCHAR(20) NOT NULL,
			make VARCHAR(64),
			model VARCHAR(64),
			year INT,
			color VARCHAR(32),
			transponder_id VARCHAR(64) UNIQUE,
			is_active TINYINT(1) NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			INDEX idx_vehicles_user (user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS toll_plazas (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			location VARCHAR(128),
			address VARCHAR(512),
			base_price DOUBLE NOT NULL,
			current_price DOUBLE NOT NULL,
			busy_level VARCHAR(10) NOT NULL DEFAULT 'low',
			estimated_time INT NOT NULL DEFAULT 0,
			vehicles_per_hour INT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS plans (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(128) NOT NULL,
			price DOUBLE NOT NULL,
			annual_price DOUBLE NOT NULL,
			max_vehicles INT NOT NULL,
			features JSON,
			is_active TINYINT(1) NOT NULL DEFAULT 1
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			user_id BIGINT NOT NULL,
			vehicle_id BIGINT NOT NULL,
			toll_plaza_id BIGINT NOT NULL,
			amount DOUBLE NOT NULL,
			timestamp DATETIME NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			transaction_type VARCHAR(32) NOT NULL,
			payment_method VARCHAR(64) NULL,
			reference_id VARCHAR(64) NOT NULL UNIQUE,
			INDEX idx_transactions_user (user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS payment_methods (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			user_id BIGINT NOT NULL,
			payment_type VARCHAR(32) NOT NULL,
			payment_details VARCHAR(512) NOT NULL,
			is_default TINYINT(1) NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			INDEX idx_payment_methods_user (user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS account_transactions (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			user_id BIGINT NOT NULL,
			amount DOUBLE NOT NULL,
			type VARCHAR(20) NOT NULL,
			payment_method_id BIGINT NULL,
			status VARCHAR(20) NOT NULL,
			timestamp DATETIME NOT NULL,
			reference_id VARCHAR(64) NOT NULL UNIQUE,
			INDEX idx_account_transactions_user (user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS traffic_data (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			toll_plaza_id BIGINT NOT NULL,
			timestamp DATETIME NOT NULL,
			vehicle_count INT NOT NULL,
			average_wait_time INT NOT NULL,
			price_multiplier DOUBLE NOT NULL,
			INDEX idx_traffic_data_plaza (toll_plaza_id)
		)`,
		`CREATE TABLE IF NOT EXISTS notifications (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			user_id BIGINT NOT NULL,
			message VARCHAR(1024) NOT NULL,
			type VARCHAR(32) NOT NULL,
			is_read TINYINT(1) NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL,
			INDEX idx_notifications_user (user_id, is_read)
		)`,
	}

	for _, stmt := range statements {
		if _, err := c.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
