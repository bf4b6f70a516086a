// Package docstore persists the dataset documents (publications.json,
// members.json, events.json) as whole JSON documents.
//
// Every mutation is a read-modify-write of a complete document. Two backends
// are provided:
//
//   - FileStore: one file per document in the dataset directory, replaced
//     atomically through a temporary file.
//   - SQLStore: one row per document in a "documents" table (MySQL or SQLite
//     through GORM) with a version column checked on every Update.
//
// Both backends serialize writers per document name, so concurrent requests
// against the same collection cannot silently overwrite each other. The SQL
// backend additionally rejects writes whose base version is stale with
// ErrConflict, which covers several processes sharing one database.
//
// # Usage
//
//	store, _ := docstore.NewFileStore("dataset")
//	err := docstore.UpdateJSON(ctx, store, "events.json", func(doc *events.Document) error {
//	    doc.Events = append(doc.Events, ev)
//	    return nil
//	})
package docstore
