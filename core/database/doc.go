// Package database handles database connections for run history.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// MySQL connections based on the application's configuration.
//
// # Connect
//
// The generic Connect function establishes a connection to the database with
// sane pool limits and an initial ping. The database is only required for the
// run-history feature; CLI batch runs work without it.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
