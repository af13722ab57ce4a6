package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Addr                  string
	DatabaseURL           string
	SessionSecret         string
	InstructorDefaultCode string
	UploadDir             string
}

// Load reads configuration from the environment. Every key has a
// development default so a bare `go run .` works against a local
// sqlite file.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ADDR", ":8080")
	v.SetDefault("DATABASE_URL", "app.db")
	v.SetDefault("SESSION_SECRET", "dev-secret")
	v.SetDefault("INSTRUCTOR_DEFAULT_CODE", "999999")
	v.SetDefault("UPLOAD_DIR", "static/uploads")

	return &Config{
		Addr:                  v.GetString("ADDR"),
		DatabaseURL:           v.GetString("DATABASE_URL"),
		SessionSecret:         v.GetString("SESSION_SECRET"),
		InstructorDefaultCode: v.GetString("INSTRUCTOR_DEFAULT_CODE"),
		UploadDir:             v.GetString("UPLOAD_DIR"),
	}
}
