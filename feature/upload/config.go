package upload

// Config selects where uploaded images go.
type Config struct {
	// Backend is local (files under Dir) or s3 (objects in the storage bucket).
	Backend string `mapstructure:"backend" default:"local"`
	// Dir is the local asset root.
	Dir string `mapstructure:"dir" default:"asset"`
}
