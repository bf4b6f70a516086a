// Package database opens the gorm connection behind the SQL document store.
//
// Two dialects are supported: mysql for shared deployments and sqlite for a
// single-host setup. Connect verifies the connection with a ping bounded by
// TimeoutSeconds.
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//	store := docstore.NewSQLStore(db)
package database
