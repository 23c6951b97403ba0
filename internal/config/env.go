package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// Note: the store passphrase is kept out of this struct - use GetStorePassphraseBytes()
type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"console"`

	StoreDriver    string `envconfig:"STORE_DRIVER" default:"file"`
	StorePath      string `envconfig:"STORE_PATH" default:"wallet.cwt"`
	ScryptCostLog2 int    `envconfig:"SCRYPT_COST_LOG2" default:"18"`

	WalletAPIURL     string        `envconfig:"WALLET_API_URL" required:"true"`
	WalletAPITimeout time.Duration `envconfig:"WALLET_API_TIMEOUT" default:"15s"`
	LedgerNetwork    string        `envconfig:"LEDGER_NETWORK" default:"solana"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
// A .env file in the working directory is loaded first when present.
func Init() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c

	if p := os.Getenv("STORE_PASSPHRASE"); p != "" {
		setPassphrase([]byte(p))
		os.Unsetenv("STORE_PASSPHRASE")
	}
	return nil
}

// Validate checks values envconfig cannot check by itself.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case "file", "badger", "memory":
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q: use file, badger or memory", c.StoreDriver)
	}
	if c.ScryptCostLog2 < 10 || c.ScryptCostLog2 > 20 {
		return fmt.Errorf("SCRYPT_COST_LOG2 must be between 10 and 20, got %d", c.ScryptCostLog2)
	}
	if c.WalletAPIURL == "" {
		return errors.New("WALLET_API_URL must not be empty")
	}
	if c.WalletAPITimeout <= 0 {
		return errors.New("WALLET_API_TIMEOUT must be positive")
	}
	return nil
}

// IsProduction reports whether the daemon runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetStoreDriver returns the secure store driver name
func GetStoreDriver() string {
	return Get().StoreDriver
}

// GetStorePath returns path to the .cwt file or badger directory
func GetStorePath() string {
	return Get().StorePath
}

// GetWalletAPIURL returns base URL of the remote wallet API
func GetWalletAPIURL() string {
	return Get().WalletAPIURL
}

// GetLedgerNetwork returns the ledger network used for address validation
func GetLedgerNetwork() string {
	return Get().LedgerNetwork
}

var passphraseBytes []byte

func setPassphrase(raw []byte) {
	passphraseBytes = make([]byte, len(raw))
	copy(passphraseBytes, raw)
}

// PromptForPassphrase prompts the user for the store passphrase in the terminal.
// The passphrase is read without echoing (hidden input) and stored in memory.
// It is a no-op when STORE_PASSPHRASE was provided.
func PromptForPassphrase() error {
	if len(passphraseBytes) > 0 {
		return nil
	}
	raw, err := ReadHidden("Enter store passphrase: ")
	if err != nil {
		return err
	}
	setPassphrase(raw)
	clear(raw)
	return nil
}

// ReadHidden reads a non-empty line from the terminal without echo.
// Caller must zero the returned slice after use.
func ReadHidden(prompt string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run interactively or set STORE_PASSPHRASE")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("passphrase cannot be empty")
	}
	return raw, nil
}

// GetStorePassphraseBytes returns the passphrase stored in memory.
// Returns an error if the passphrase was not set.
// Caller must zero the returned slice after use for security.
func GetStorePassphraseBytes() ([]byte, error) {
	if len(passphraseBytes) == 0 {
		return nil, errors.New("passphrase not set: call PromptForPassphrase at startup")
	}
	out := make([]byte, len(passphraseBytes))
	copy(out, passphraseBytes)
	return out, nil
}
