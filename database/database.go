package database

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	_ "github.com/lib/pq"
	"github.com/tideswap/tideswap/database/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Database struct {
	host     string
	username string
	password string
	database string
	port     uint32

	embedded *embeddedpostgres.EmbeddedPostgres
	orm      *gorm.DB
}

// NewDatabase connects to postgres. With host "embedded" an embedded
// postgres instance is started first.
func NewDatabase(username, password, database string, port uint32, host string, dataPath string) (*Database, error) {
	db := &Database{
		host:     host,
		username: username,
		password: password,
		database: database,
		port:     port,
	}

	if host == "embedded" {
		db.embedded = embeddedpostgres.NewDatabase(
			embeddedpostgres.DefaultConfig().
				Username(username).
				Password(password).
				Database(database).
				Port(port).
				DataPath(dataPath),
		)
		if err := db.embedded.Start(); err != nil {
			return nil, fmt.Errorf("failed to start embedded database: %w", err)
		}
		db.host = "localhost"
	}

	orm, err := gorm.Open(postgres.Open(db.DSN()), &gorm.Config{
		// Map unique violations to gorm.ErrDuplicatedKey so repositories
		// can surface them as domain errors.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect gorm: %w", err)
	}
	db.orm = orm

	log.Info("database started")

	return db, nil
}

func (d *Database) DSN() string {
	host := d.host
	if host == "embedded" {
		host = "localhost"
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s database=%s sslmode=disable", host, d.port, d.username, d.password, d.database)
}

func (d *Database) ORM() *gorm.DB {
	return d.orm
}

func (d *Database) Stop() error {
	if d.embedded != nil {
		if err := d.embedded.Stop(); err != nil {
			return fmt.Errorf("failed to stop embedded database: %w", err)
		}
	}

	return nil
}

// Migrate creates or updates the schema of every model the service persists.
func (d *Database) Migrate() error {
	err := d.orm.AutoMigrate(
		&models.Swap{},
		&models.ReverseSwap{},
		&models.ChannelCreation{},
		&models.Referral{},
		&models.KeyIndex{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate models: %w", err)
	}

	return nil
}
