package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	DatabaseURL string `envconfig:"DATABASE_URL" default:""`
	DBHost      string `envconfig:"DB_HOST" default:"localhost"`
	DBPort      string `envconfig:"DB_PORT" default:"5432"`
	DBUser      string `envconfig:"DB_USER" default:"postgres"`
	DBPassword  string `envconfig:"DB_PASSWORD" default:""`
	DBName      string `envconfig:"DB_NAME" default:"outfitters"`

	JWTSecret     string `envconfig:"JWT_SECRET" default:"default_secret_key_change_me"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"admin123"`

	UploadDir   string `envconfig:"UPLOAD_DIR" default:"./uploads"`
	CORSOrigins string `envconfig:"CORS_ORIGINS" default:"*"`

	// FlatShipping is the shipping charge used when no shippingCost
	// setting has been stored.
	FlatShipping float64 `envconfig:"FLAT_SHIPPING" default:"250"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
