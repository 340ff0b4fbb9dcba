package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/robertncl/expense/internal/category"
	"github.com/robertncl/expense/internal/logger"
)

type StorageConfig struct {
	// Driver is memory or sqlite.
	Driver string `toml:"driver" yaml:"driver"`
	Source string `toml:"source" yaml:"source"`

	JournalMode string `toml:"journal_mode" yaml:"journal_mode"`
	BusyTimeout int    `toml:"busy_timeout" yaml:"busy_timeout"`
}

type DisplayConfig struct {
	Currency string `toml:"currency" yaml:"currency"`
	Thousand string `toml:"thousand" yaml:"thousand"`
	Decimal  string `toml:"decimal" yaml:"decimal"`
}

type Config struct {
	Storage StorageConfig   `toml:"storage" yaml:"storage"`
	Logger  logger.Config   `toml:"logger" yaml:"logger"`
	Display DisplayConfig   `toml:"display" yaml:"display"`
	Rules   []category.Rule `toml:"rules" yaml:"rules"`
}

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"

	defaultLogLevel  = logger.LevelInfo
	defaultLogFormat = logger.FormatText
	defaultLogOutput = "stderr"
	defaultCurrency  = "$"
	defaultThousand  = ","
	defaultDecimal   = "."
)

func defaults() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver: DriverMemory,
		},
		Logger: logger.Config{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
			Output: defaultLogOutput,
		},
		Display: DisplayConfig{
			Currency: defaultCurrency,
			Thousand: defaultThousand,
			Decimal:  defaultDecimal,
		},
	}
}

// Parse builds the configuration from defaults, then file, then environment.
// A missing file is not an error.
func Parse(file string) (*Config, error) {
	conf := defaults()

	if file != "" {
		if err := conf.parseFile(file); err != nil {
			return nil, err
		}
	}

	conf.parseEnv()

	return conf, nil
}

// LoadEnvFile loads variables from a dotenv file without overriding the ones already set.
// A missing file is not an error.
func LoadEnvFile(file string) error {
	err := godotenv.Load(file)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("unable to load env file %s: %w", file, err)
	}
	return nil
}

func (c *Config) parseFile(file string) error {
	content, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, c)
	default:
		err = toml.Unmarshal(content, c)
	}

	if err != nil {
		return fmt.Errorf("unable to decode %s: %w", file, err)
	}

	return nil
}

func (c *Config) parseEnv() {
	if driver := os.Getenv("EXPENSE_STORAGE_DRIVER"); driver != "" {
		c.Storage.Driver = driver
	}

	if source := os.Getenv("EXPENSE_STORAGE_SOURCE"); source != "" {
		c.Storage.Source = source
	}

	if level := os.Getenv("EXPENSE_LOG_LEVEL"); level != "" {
		c.Logger.Level = logger.Level(level)
	}

	if format := os.Getenv("EXPENSE_LOG_FORMAT"); format != "" {
		c.Logger.Format = logger.Format(format)
	}

	if output := os.Getenv("EXPENSE_LOG_OUTPUT"); output != "" {
		c.Logger.Output = output
	}

	if currency := os.Getenv("EXPENSE_CURRENCY"); currency != "" {
		c.Display.Currency = currency
	}

	if thousand, ok := os.LookupEnv("EXPENSE_THOUSAND_SEPARATOR"); ok {
		c.Display.Thousand = thousand
	}

	if decimal := os.Getenv("EXPENSE_DECIMAL_SEPARATOR"); decimal != "" {
		c.Display.Decimal = decimal
	}
}
