package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/commission/internal/model"
)

// FileName is the conventional config file name written by "commission init".
const FileName = "commission.yaml"

// Config represents the top-level commission.yaml configuration.
type Config struct {
	LogLevel          string                             `yaml:"log_level" env:"COMMISSION_LOG_LEVEL"`
	ReferenceCurrency model.Currency                     `yaml:"reference_currency" env:"COMMISSION_REFERENCE_CURRENCY"`
	Rates             map[model.Currency]decimal.Decimal `yaml:"rates"` // units of currency per 1 reference unit
	Precision         PrecisionConfig                    `yaml:"precision"`
	Rules             Rules                              `yaml:"rules"`
}

// PrecisionConfig sets how many decimal places each currency is rounded to.
type PrecisionConfig struct {
	Default    int32                    `yaml:"default"`
	Currencies map[model.Currency]int32 `yaml:"currencies,omitempty"`
}

// Places returns the rounding precision for a currency.
func (p PrecisionConfig) Places(c model.Currency) int32 {
	if places, ok := p.Currencies[c]; ok {
		return places
	}
	return p.Default
}

// Rules holds the fee parameters. Percentages are in percent (0.3 = 0.3%),
// limits are in the reference currency.
type Rules struct {
	Deposit              DepositRule    `yaml:"deposit"`
	BusinessWithdrawal   BusinessRule   `yaml:"business_withdrawal"`
	IndividualWithdrawal IndividualRule `yaml:"individual_withdrawal"`
}

// DepositRule is a percentage fee with an upper cap.
type DepositRule struct {
	Percent decimal.Decimal `yaml:"percent"`
	Max     decimal.Decimal `yaml:"max"`
}

// BusinessRule is a percentage fee with a lower floor.
type BusinessRule struct {
	Percent decimal.Decimal `yaml:"percent"`
	Min     decimal.Decimal `yaml:"min"`
}

// IndividualRule is a percentage fee with a weekly free allowance that only
// applies to the first FreeOperations transactions of a calendar week.
type IndividualRule struct {
	Percent        decimal.Decimal `yaml:"percent"`
	FreeAmount     decimal.Decimal `yaml:"free_amount"`
	FreeOperations int             `yaml:"free_operations"`
}

// Load reads a commission.yaml file from disk. Keys missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Resolve loads the config at path, or the defaults when path is empty,
// then applies environment overrides and validates the result.
func Resolve(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("applying environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks the values the engine cannot work without.
func (c *Config) Validate() error {
	if c.ReferenceCurrency == "" {
		return fmt.Errorf("reference_currency is required")
	}
	for cur, rate := range c.Rates {
		if !rate.IsPositive() {
			return fmt.Errorf("rate for %s must be positive, got %s", cur, rate)
		}
	}
	if c.Rules.IndividualWithdrawal.FreeOperations < 0 {
		return fmt.Errorf("free_operations must not be negative")
	}
	if c.Precision.Default < 0 {
		return fmt.Errorf("precision.default must not be negative")
	}
	return nil
}

// Default returns the stock fee schedule.
func Default() *Config {
	return &Config{
		LogLevel:          "warn",
		ReferenceCurrency: model.CurrencyEUR,
		Rates: map[model.Currency]decimal.Decimal{
			model.CurrencyUSD: decimal.RequireFromString("1.1497"),
			model.CurrencyJPY: decimal.RequireFromString("129.53"),
		},
		Precision: PrecisionConfig{
			Default: 2,
			Currencies: map[model.Currency]int32{
				model.CurrencyJPY: 0,
			},
		},
		Rules: Rules{
			Deposit: DepositRule{
				Percent: decimal.RequireFromString("0.03"),
				Max:     decimal.NewFromInt(5),
			},
			BusinessWithdrawal: BusinessRule{
				Percent: decimal.RequireFromString("0.3"),
				Min:     decimal.RequireFromString("0.5"),
			},
			IndividualWithdrawal: IndividualRule{
				Percent:        decimal.RequireFromString("0.3"),
				FreeAmount:     decimal.NewFromInt(1000),
				FreeOperations: 3,
			},
		},
	}
}
