// Package mock provides test doubles for the integration suite.
package mock

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	once sync.Once
	db   *Db
)

// Db wraps a shared in-memory SQLite database that stands in for Postgres
// during integration runs.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
	name   string
}

// NewDb opens the in-memory database and migrates the given models. The
// connection is a process-wide singleton so every scenario talks to the same
// schema as the server under test.
func NewDb(name string, models map[string]any) *Db {
	once.Do(func() {
		db = open(name, models)
	})
	return db
}

func open(name string, models map[string]any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps the shared in-memory database alive and
	// serializes access across the test server and the step definitions.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: false,
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	d := &Db{
		DbConn: dbConn,
		models: models,
		name:   name,
	}

	if err := d.migrate(); err != nil {
		panic(fmt.Sprintf("failed to prepare %s database: %s", name, err))
	}

	// Postgres enforces the schema's foreign keys; SQLite only does so when
	// asked.
	dbConn.Exec("PRAGMA foreign_keys = ON")

	return d
}

// migrate drops and recreates every registered table.
func (d *Db) migrate() error {
	models := d.modelList()

	for _, m := range models {
		if err := d.DbConn.Migrator().DropTable(m); err != nil {
			return err
		}
	}
	if err := d.DbConn.AutoMigrate(models...); err != nil {
		return err
	}
	for _, m := range models {
		if !d.DbConn.Migrator().HasTable(m) {
			return fmt.Errorf("table for model %T was not created", m)
		}
	}
	return nil
}

// ClearDB removes all rows between scenarios, keeping the schema in place.
// Foreign keys are suspended so tables can be emptied in any order.
func (d *Db) ClearDB() error {
	d.DbConn.Exec("PRAGMA foreign_keys = OFF")
	defer d.DbConn.Exec("PRAGMA foreign_keys = ON")

	for _, m := range d.modelList() {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error
		if err != nil {
			return err
		}
	}

	err := d.DbConn.Exec("DELETE FROM sqlite_sequence").Error
	if err != nil && !strings.Contains(err.Error(), "no such table") {
		return err
	}
	return nil
}

// GetModel returns the registered model for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}

func (d *Db) modelList() []any {
	list := make([]any, 0, len(d.models))
	for _, m := range d.models {
		list = append(list, m)
	}
	return list
}
