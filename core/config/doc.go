// Package config provides configuration management for lab-admin.
//
// Values come from environment variables, optionally seeded from a .env file.
// Every setting is declared on a partial config struct owned by the package
// that uses it; the struct tags carry the key and its default.
//
// # Configuration Structure
//
//   - Server: port, API key, body limit, static site directory
//   - Log: level and encoding
//   - Store: document store driver (file, sql) and dataset directory
//   - Database: gorm connection for the sql store
//   - Storage: S3/MinIO bucket for the s3 upload backend
//   - Upload: upload backend and local asset directory
//   - Scraper: DBLP listing URL, highlight author, timeouts and pacing
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
