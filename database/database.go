package database

import (
	"fmt"
	"log"
	"painel-app/config"
	"regexp"
	"sync"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
)

var (
	db      *gorm.DB
	openErr error
	once    sync.Once
)

var validDBName = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// buildDSN monta a DSN de acordo com o driver configurado
func buildDSN(dbName string) string {
	switch config.DBDriver {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort, dbName)
	case "mssql":
		return "sqlserver://" + config.DBUser + ":" + config.DBPassword + "@" + config.DBHost + ":" + config.DBPort + "?database=" + dbName
	default: // postgres
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			config.DBHost, config.DBUser, config.DBPassword, dbName, config.DBPort)
	}
}

func openDialector(dbName string) gorm.Dialector {
	dsn := buildDSN(dbName)
	switch config.DBDriver {
	case "mysql":
		return mysql.Open(dsn)
	case "mssql":
		return sqlserver.Open(dsn)
	default:
		return postgres.Open(dsn)
	}
}

// adminDatabase é o banco de sistema usado para criar o banco da aplicação
func adminDatabase() string {
	switch config.DBDriver {
	case "mysql":
		return "mysql"
	case "mssql":
		return "master"
	default:
		return "postgres"
	}
}

// EnsureDatabaseExists cria o banco da aplicação caso ainda não exista.
func EnsureDatabaseExists(dbName string) error {
	if !validDBName.MatchString(dbName) {
		return fmt.Errorf("invalid database name: %s", dbName)
	}

	admin, err := gorm.Open(openDialector(adminDatabase()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to admin database: %w", err)
	}

	var count int64
	switch config.DBDriver {
	case "mysql":
		err = admin.Raw("SELECT COUNT(*) FROM information_schema.schemata WHERE schema_name = ?", dbName).Scan(&count).Error
	case "mssql":
		err = admin.Raw("SELECT COUNT(*) FROM sys.databases WHERE name = ?", dbName).Scan(&count).Error
	default:
		err = admin.Raw("SELECT COUNT(*) FROM pg_database WHERE datname = ?", dbName).Scan(&count).Error
	}
	if err != nil {
		return fmt.Errorf("error checking database existence: %w", err)
	}

	if count == 0 {
		if err := admin.Exec("CREATE DATABASE " + dbName).Error; err != nil {
			return fmt.Errorf("failed to create database %s: %w", dbName, err)
		}
		log.Println("Database created:", dbName)
	}

	if sqlDB, err := admin.DB(); err == nil {
		sqlDB.Close()
	}

	return nil
}

// Open conecta no banco da aplicação. A conexão é reaproveitada.
func Open() (*gorm.DB, error) {
	once.Do(func() {
		db, openErr = gorm.Open(openDialector(config.DBName), &gorm.Config{})
		if openErr == nil {
			fmt.Println("Connected to database:", config.DBName)
		}
	})
	return db, openErr
}

// GetDB retorna a conexão aberta por Open. Usado pelo middleware de auth.
func GetDB() *gorm.DB {
	return db
}
