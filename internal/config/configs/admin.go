package configs

// Admin configures the dashboard endpoints. The shared password is a
// simple gate matching the site's original behaviour, not an
// authentication scheme.
type Admin struct {
	Password string `env:"PASSWORD" envDefault:"royale2024"`
}
