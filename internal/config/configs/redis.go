package configs

import "time"

// Redis configures the optional payment-reference store. When disabled the
// checkout runs without the replay guard.
type Redis struct {
	Enabled  bool   `env:"ENABLED" envDefault:"false"`
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB" envDefault:"0"`
	// ReferenceTTL bounds how long a consumed payment reference is
	// remembered.
	ReferenceTTL time.Duration `env:"REFERENCE_TTL" envDefault:"720h"`
}
