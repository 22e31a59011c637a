// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/imdario/mergo"
	"github.com/spf13/viper"
)

const ENV_PREFIX = "SETTLEMENT"

type Config struct {
	SettlementConfig SettlementConfig         `mapstructure:"settlement" json:"settlement"`
	ChainConfigs     []map[string]interface{} `mapstructure:"chains" json:"chains"`
}

type SettlementConfig struct {
	Id                        string `mapstructure:"id" json:"id"`
	Env                       string `mapstructure:"env" json:"env" default:"dev"`
	LogLevel                  string `mapstructure:"logLevel" json:"logLevel" default:"info"`
	ApiAddr                   string `mapstructure:"apiAddr" json:"apiAddr" default:":3000"`
	HealthPort                uint16 `mapstructure:"healthPort" json:"healthPort" default:"9001"`
	OpenTelemetryCollectorURL string `mapstructure:"openTelemetryCollectorURL" json:"openTelemetryCollectorURL"`

	Policy      PolicyConfig      `mapstructure:"policy" json:"policy"`
	Cctp        CctpConfig        `mapstructure:"cctp" json:"cctp"`
	NearIntents NearIntentsConfig `mapstructure:"nearIntents" json:"nearIntents"`
	Stargate    StargateConfig    `mapstructure:"stargate" json:"stargate"`
}

// PolicyConfig groups the fee and retry values the settlement strategies run with.
type PolicyConfig struct {
	GaslessFee     string `mapstructure:"gaslessFee" json:"gaslessFee" default:"0.01"`
	AttestationFee string `mapstructure:"attestationFee" json:"attestationFee" default:"0.02"`
	IntentFee      string `mapstructure:"intentFee" json:"intentFee" default:"0.1"`

	BalanceRetries          int           `mapstructure:"balanceRetries" json:"balanceRetries" default:"5"`
	BalanceRetryInterval    time.Duration `mapstructure:"balanceRetryInterval" json:"balanceRetryInterval" default:"3s"`
	AttestationTimeout      time.Duration `mapstructure:"attestationTimeout" json:"attestationTimeout" default:"2m"`
	AttestationPollInterval time.Duration `mapstructure:"attestationPollInterval" json:"attestationPollInterval" default:"5s"`
	NotifyTimeout           time.Duration `mapstructure:"notifyTimeout" json:"notifyTimeout" default:"15s"`
	ResultCacheTTL          time.Duration `mapstructure:"resultCacheTTL" json:"resultCacheTTL" default:"30m"`
}

type CctpConfig struct {
	Url                  string `mapstructure:"url" json:"url" default:"https://iris-api.circle.com"`
	MinMaxFee            string `mapstructure:"minMaxFee" json:"minMaxFee" default:"0.01"`
	MinFinalityThreshold uint32 `mapstructure:"minFinalityThreshold" json:"minFinalityThreshold" default:"1000"`
}

type NearIntentsConfig struct {
	Url          string        `mapstructure:"url" json:"url" default:"https://1click.chaindefuser.com"`
	JWTToken     string        `mapstructure:"jwtToken" json:"jwtToken"`
	SlippageBps  int32         `mapstructure:"slippageBps" json:"slippageBps" default:"100"`
	QuoteTimeout time.Duration `mapstructure:"quoteTimeout" json:"quoteTimeout" default:"10m"`
}

type StargateConfig struct {
	Url         string `mapstructure:"url" json:"url" default:"https://stargate.finance/api/v1"`
	SlippageBps int64  `mapstructure:"slippageBps" json:"slippageBps" default:"50"`
	// Routes lists vetted pairs as "srcChain:srcToken>dstChain:dstToken".
	Routes []string `mapstructure:"routes" json:"routes"`
}

func (c *Config) validate() error {
	if len(c.ChainConfigs) == 0 {
		return fmt.Errorf("no chains configured")
	}
	if c.SettlementConfig.Policy.BalanceRetries <= 0 {
		return fmt.Errorf("balance retries must be positive")
	}
	if c.SettlementConfig.Policy.AttestationTimeout <= 0 {
		return fmt.Errorf("attestation timeout must be positive")
	}
	for _, route := range c.SettlementConfig.Stargate.Routes {
		if !strings.Contains(route, ">") {
			return fmt.Errorf("invalid stargate route %s", route)
		}
	}
	return nil
}

// GetConfigFromFile reads configuration from the file on path and merges it over
// the shared configuration, if one was fetched.
func GetConfigFromFile(path string, shared *Config) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed reading config file %s: %w", path, err)
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, err
	}

	return process(c, shared)
}

// GetConfigFromENV reads configuration from SETTLEMENT_ prefixed environment variables.
// Chain configs are read as a JSON array from SETTLEMENT_CHAINS.
func GetConfigFromENV(shared *Config) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	c := &Config{}
	c.SettlementConfig.Id = v.GetString("settlement.id")
	c.SettlementConfig.Env = v.GetString("settlement.env")
	c.SettlementConfig.LogLevel = v.GetString("settlement.logLevel")
	c.SettlementConfig.ApiAddr = v.GetString("settlement.apiAddr")
	c.SettlementConfig.OpenTelemetryCollectorURL = v.GetString("settlement.openTelemetryCollectorURL")
	c.SettlementConfig.NearIntents.JWTToken = v.GetString("settlement.nearIntents.jwtToken")

	chains := v.GetString("chains")
	if chains != "" {
		if err := json.Unmarshal([]byte(chains), &c.ChainConfigs); err != nil {
			return nil, fmt.Errorf("failed decoding chains: %w", err)
		}
	}

	return process(c, shared)
}

// GetSharedConfigFromNetwork fetches the shared JSON configuration from url.
func GetSharedConfigFromNetwork(url string) (*Config, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d, %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c := &Config{}
	if err := json.Unmarshal(body, c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return c, nil
}

func process(c *Config, shared *Config) (*Config, error) {
	if shared != nil {
		if err := mergo.Merge(c, shared); err != nil {
			return nil, err
		}
	}

	if err := defaults.Set(c); err != nil {
		return nil, err
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}
