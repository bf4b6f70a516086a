package database

// Config holds configuration for the SQL document store connection.
type Config struct {
	// Driver is the gorm dialect: mysql or sqlite.
	Driver string `mapstructure:"driver" default:"mysql"`
	Host   string `mapstructure:"host" default:"localhost"`
	Port   int    `mapstructure:"port" default:"3306"`
	User   string `mapstructure:"user" default:"root"`
	// Password is URL-encoded into the DSN.
	Password string `mapstructure:"password" default:""`
	// Name is the schema name for mysql and the file path for sqlite.
	Name string `mapstructure:"name" default:"lab_admin"`
	// TimeoutSeconds bounds connect, read and write on mysql and the initial ping.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}
