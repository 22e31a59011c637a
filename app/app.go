// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/sprintertech/sprinter-settlement/api"
	"github.com/sprintertech/sprinter-settlement/api/handlers"
	"github.com/sprintertech/sprinter-settlement/config"
	"github.com/sprintertech/sprinter-settlement/health"
	"github.com/sprintertech/sprinter-settlement/metrics"
	"github.com/sprintertech/sprinter-settlement/observability"
)

var Version string

// LoadConfig reads configuration from the file or environment selected by the
// config flag, merged over the shared configuration when a config url is set.
func LoadConfig() (*config.Config, error) {
	var err error

	configFlag := viper.GetString(config.ConfigFlagName)
	configURL := viper.GetString(config.ConfigURLFlagName)

	var configuration *config.Config
	if configURL != "" {
		configuration, err = config.GetSharedConfigFromNetwork(configURL)
		if err != nil {
			return nil, err
		}
	}

	if strings.ToLower(configFlag) == "env" {
		return config.GetConfigFromENV(configuration)
	}
	return config.GetConfigFromFile(configFlag, configuration)
}

func Run() error {
	configuration, err := LoadConfig()
	panicOnError(err)

	observability.ConfigureLogger(configuration.SettlementConfig.LogLevel, os.Stdout)

	log.Info().Msg("Successfully loaded configuration")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mp, err := observability.InitMetricProvider(ctx, configuration.SettlementConfig.OpenTelemetryCollectorURL)
	panicOnError(err)
	defer func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			log.Error().Msgf("Error shutting down meter provider: %v", err)
		}
	}()

	engineMetrics, err := metrics.NewEngineMetrics(
		ctx,
		mp.Meter("settlement-metric-provider"),
		configuration.SettlementConfig.Env,
		configuration.SettlementConfig.Id,
		Version)
	panicOnError(err)

	engine, err := NewEngine(ctx, configuration, engineMetrics)
	panicOnError(err)

	go health.StartHealthEndpoint(configuration.SettlementConfig.HealthPort, engine.Registry)

	settlementHandler := handlers.NewSettlementHandler(engine.Router)
	capabilitiesHandler := handlers.NewCapabilitiesHandler(engine.Registry)
	go api.Serve(ctx, configuration.SettlementConfig.ApiAddr, settlementHandler, capabilitiesHandler)

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	name := viper.GetString("name")
	log.Info().Strs("chains", engine.Registry.Chains()).Msgf("Started settlement engine: %s. Version: v%s", name, Version)

	sig := <-sysErr
	log.Info().Msgf("terminating got ` [%v] signal", sig)
	return nil
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
