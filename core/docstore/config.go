package docstore

// Config selects the document store backend.
type Config struct {
	// Driver is file (one JSON file per document) or sql (gorm documents table).
	Driver string `mapstructure:"driver" default:"file"`
	// Dir holds the JSON files for the file driver, and seeds the sql driver on first start.
	Dir string `mapstructure:"dir" default:"dataset"`
}
