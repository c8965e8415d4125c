// Package config loads the structured service configuration: global flags,
// the currency roster and the supported pairs.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type CurrencyConfig struct {
	Symbol  string `mapstructure:"symbol"`
	Kind    string `mapstructure:"kind"`
	Network string `mapstructure:"network"`

	// bitcoind-compatible RPC credentials for UTXO chains.
	ChainHost     string `mapstructure:"chainhost"`
	ChainUser     string `mapstructure:"chainuser"`
	ChainPassword string `mapstructure:"chainpassword"`

	// lnd connection for Lightning-capable chains.
	LndEndpoint     string `mapstructure:"lndendpoint"`
	LndMacaroonPath string `mapstructure:"lndmacaroonpath"`
	LndTLSCertPath  string `mapstructure:"lndtlscertpath"`

	// Unconfirmed lockups at or below this amount are treated as final.
	MaxZeroConfAmount uint64 `mapstructure:"maxzeroconfamount"`
}

type PairConfig struct {
	Base  string `mapstructure:"base"`
	Quote string `mapstructure:"quote"`

	// Static rate; pairs of the same currency use 1.
	Rate float64 `mapstructure:"rate"`

	// Service fee in percent.
	Fee float64 `mapstructure:"fee"`

	// On-chain timeout in minutes.
	TimeoutDelta uint32 `mapstructure:"timeoutdelta"`

	MinSwapAmount uint64 `mapstructure:"minswapamount"`
	MaxSwapAmount uint64 `mapstructure:"maxswapamount"`
}

type RatesConfig struct {
	// Refresh interval in seconds.
	Interval uint32 `mapstructure:"interval"`
}

type EthereumConfig struct {
	ProviderURL      string `mapstructure:"providerurl"`
	EtherSwapAddress string `mapstructure:"etherswapaddress"`
	ERC20SwapAddress string `mapstructure:"erc20swapaddress"`
}

type Config struct {
	PrepayMinerFee     bool `mapstructure:"prepayminerfee"`
	SwapWitnessAddress bool `mapstructure:"swapwitnessaddress"`

	// Retry interval in seconds. It is loaded from the config file; no
	// component of the daemon reads it.
	RetryInterval uint32 `mapstructure:"retryinterval"`

	Rates    RatesConfig    `mapstructure:"rates"`
	Ethereum EthereumConfig `mapstructure:"ethereum"`

	Currencies []CurrencyConfig `mapstructure:"currencies"`
	Pairs      []PairConfig     `mapstructure:"pairs"`
}

// Load reads the YAML configuration file, with TIDESWAP_* environment
// variables taking precedence.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("TIDESWAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("retryinterval", 15)
	v.SetDefault("rates.interval", 60)
	v.SetDefault("swapwitnessaddress", true)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
