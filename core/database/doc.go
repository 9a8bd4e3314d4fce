// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// MySQL connections based on the application's configuration.
//
// # Connect
//
// Connect establishes the connection. It knows nothing about the genie_*
// schema; the source package decides what to read and verifies the schema
// against its row models.
//
// # Schema Inspection
//
// GetTableColumns retrieves the raw column definitions of one table. The
// check command uses it to verify that a configured database actually
// carries the expected dump tables before a conversion is attempted.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "genie_units")
package database
