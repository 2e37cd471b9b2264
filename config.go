package identity

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/goliatone/go-errors"
)

// DefaultSigningSecret is a dev-only placeholder. Production deployments must
// override it; Validate refuses to accept it outside debug mode.
const DefaultSigningSecret = "secret"

// Config holds the process-wide auth configuration. It is loaded once at
// startup and injected into each component; nothing reads the environment on
// the hot path.
type Config struct {
	SigningSecret string        `env:"AUTH_SIGNING_SECRET" envDefault:"secret"`
	TokenTTL      time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"720h"`
	Issuer        string        `env:"AUTH_ISSUER"`

	// MockCredentials enables the impersonation header for test and staging
	// environments. Must stay off in production.
	MockCredentials bool `env:"AUTH_MOCK_CREDENTIALS" envDefault:"false"`

	// LoopbackClientIP, when set, is substituted for the IPv6 loopback
	// literal during client IP resolution. Empty disables the substitution.
	LoopbackClientIP string `env:"AUTH_LOOPBACK_CLIENT_IP"`

	Debug bool `env:"AUTH_DEBUG" envDefault:"false"`
}

// LoadConfig parses the configuration from the environment.
func LoadConfig() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Wrap(err, errors.CategoryBadInput, "failed to parse auth environment")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.SigningSecret == "" {
		return errors.New("signing secret must not be empty", errors.CategoryValidation)
	}

	if c.SigningSecret == DefaultSigningSecret && !c.Debug {
		return errors.New("default signing secret is not allowed outside debug mode", errors.CategoryValidation)
	}

	if c.TokenTTL <= 0 {
		return errors.New("token TTL must be positive", errors.CategoryValidation)
	}

	return nil
}
