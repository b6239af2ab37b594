package configs

import (
	"net/url"
	"time"
)

// Paystack configures the hosted payment gateway client.
type Paystack struct {
	// SecretKey authenticates API calls. Test keys start with sk_test_.
	SecretKey string `env:"SECRET_KEY"`
	// BaseURL is the API root; override for sandboxes or tests.
	BaseURL url.URL `env:"BASE_URL" envDefault:"https://api.paystack.co"`
	// PollInterval is the delay between transaction status checks while a
	// customer is on the hosted payment page.
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"3s"`
}
