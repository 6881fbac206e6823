// pkg/config/config.go
//
// Invocation configuration: read once at process start, passed by value
// into every component. No other package reads the environment directly.

package config

import (
	"time"

	"github.com/spf13/viper"
)

// Defaults for the inference request. The token budget and temperature are
// deliberately small: we want one short, deterministic subject line.
const (
	DefaultEndpoint     = "https://api.groq.com/openai/v1"
	DefaultModel        = "llama-3.1-8b-instant"
	DefaultTimeout      = 10 * time.Second
	DefaultMaxDiffBytes = 8000
	DefaultMaxTokens    = 50
	DefaultTemperature  = 0.3
)

// Config holds everything one invocation needs.
type Config struct {
	APIKey       string
	Endpoint     string
	Model        string
	Timeout      time.Duration
	MaxDiffBytes int
	MaxTokens    int
	Temperature  float64
	Simple       bool
}

// SetDefaults registers defaults on the given viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("endpoint", DefaultEndpoint)
	v.SetDefault("model", DefaultModel)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("max-diff-bytes", DefaultMaxDiffBytes)
	v.SetDefault("max-tokens", DefaultMaxTokens)
	v.SetDefault("temperature", DefaultTemperature)
	v.SetDefault("simple", false)

	// The credential keeps its provider-native variable name alongside the
	// prefixed form.
	_ = v.BindEnv("api-key", "GROQ_API_KEY", "COMMIT_BUDDY_API_KEY")
}

// Load materialises a Config from the viper instance. Flags bound to the
// same instance override env, which overrides defaults.
func Load(v *viper.Viper) *Config {
	return &Config{
		APIKey:       v.GetString("api-key"),
		Endpoint:     v.GetString("endpoint"),
		Model:        v.GetString("model"),
		Timeout:      v.GetDuration("timeout"),
		MaxDiffBytes: v.GetInt("max-diff-bytes"),
		MaxTokens:    v.GetInt("max-tokens"),
		Temperature:  v.GetFloat64("temperature"),
		Simple:       v.GetBool("simple"),
	}
}

// HasCredential reports whether an API key is configured.
func (c *Config) HasCredential() bool {
	return c.APIKey != ""
}
