package headerbrute

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
)

// Defaults for a run against the local challenge server.
const (
	DefaultURL          = "http://127.0.0.1:8080"
	DefaultAlphabet     = "0123456789abcdef"
	DefaultMaxKeyLength = 3
	DefaultPoolSize     = 16
	DefaultHeader       = "Return"
	DefaultFlagPrefix   = "CTF-BR{"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all brute-forcer configuration.
// It must not be modified once a run has started.
type Config struct {
	URL          string
	Alphabet     string
	MaxKeyLength int
	PoolSize     int
	KeyHeader    string
	FlagHeader   string
	FlagPrefix   string
	ExtraHeaders http.Header
	Client       *Client
	Logger       *log.Logger
	Reporters    []Reporter
}

// DefaultConfig returns a Config that reports matches to stdout.
func DefaultConfig() *Config {
	return &Config{
		URL:          DefaultURL,
		Alphabet:     DefaultAlphabet,
		MaxKeyLength: DefaultMaxKeyLength,
		PoolSize:     DefaultPoolSize,
		KeyHeader:    DefaultHeader,
		FlagHeader:   DefaultHeader,
		FlagPrefix:   DefaultFlagPrefix,
		ExtraHeaders: http.Header{},
		Client:       &Client{Client: &http.Client{}},
		Logger:       log.New(os.Stdout, "headerbrute: ", log.Ldate|log.Ltime|log.Lshortfile),
		Reporters:    []Reporter{&ConsoleReporter{Writer: os.Stdout}},
	}
}

// Validate checks that a Config can drive a run.
func (c *Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("%w: empty URL", ErrInvalidConfig)
	}

	target, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if target.Scheme == "" || target.Host == "" {
		return fmt.Errorf("%w: URL %q needs a scheme and host", ErrInvalidConfig, c.URL)
	}

	if c.Alphabet == "" {
		return fmt.Errorf("%w: empty alphabet", ErrInvalidConfig)
	}

	seen := map[rune]bool{}
	for _, char := range c.Alphabet {
		if seen[char] {
			return fmt.Errorf("%w: duplicate character %q in alphabet", ErrInvalidConfig, char)
		}
		seen[char] = true
	}

	if c.MaxKeyLength < 1 {
		return fmt.Errorf("%w: max key length must be at least 1, got %d", ErrInvalidConfig, c.MaxKeyLength)
	}

	if c.PoolSize < 1 {
		return fmt.Errorf("%w: pool size must be at least 1, got %d", ErrInvalidConfig, c.PoolSize)
	}

	if c.KeyHeader == "" || c.FlagHeader == "" {
		return fmt.Errorf("%w: header names cannot be empty", ErrInvalidConfig)
	}

	if c.FlagPrefix == "" {
		return fmt.Errorf("%w: empty flag prefix", ErrInvalidConfig)
	}

	if c.Client == nil || c.Client.Client == nil {
		return fmt.Errorf("%w: nil HTTP client", ErrInvalidConfig)
	}

	if c.Logger == nil {
		return fmt.Errorf("%w: nil logger", ErrInvalidConfig)
	}

	return nil
}
