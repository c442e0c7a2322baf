/*
 * Copyright 2025 EdgeWatch Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/edgewatch/edgewatch/pkg/alerting"
	"github.com/edgewatch/edgewatch/pkg/cache"
	"github.com/edgewatch/edgewatch/pkg/config"
	"github.com/edgewatch/edgewatch/pkg/core"
	"github.com/edgewatch/edgewatch/pkg/db"
	"github.com/edgewatch/edgewatch/pkg/discovery"
	"github.com/edgewatch/edgewatch/pkg/lifecycle"
	"github.com/edgewatch/edgewatch/pkg/logger"
	"github.com/edgewatch/edgewatch/pkg/metrics"
	"github.com/edgewatch/edgewatch/pkg/notify"
	"github.com/edgewatch/edgewatch/pkg/poller"
	"github.com/edgewatch/edgewatch/pkg/snmp"
)

var errFailedToLoadConfig = errors.New("failed to load config")

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "/etc/edgewatch/edgewatch.json", "Path to config file")
	discoverNet := flag.String("discover", "", "CIDR network to sweep once at startup")
	flag.Parse()

	ctx := context.Background()

	var cfg config.Config

	cfgLoader := config.NewService(nil)
	if err := cfgLoader.LoadAndValidate(ctx, *configPath, &cfg); err != nil {
		return fmt.Errorf("%w: %w", errFailedToLoadConfig, err)
	}

	logConfig := cfg.Logging
	if logConfig == nil {
		logConfig = &logger.Config{Level: "info", Output: "stdout"}
	}

	mainLogger, err := lifecycle.CreateComponentLogger("edgewatch", logConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	pool, err := db.NewPool(ctx, &cfg.Database, mainLogger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	store := db.New(pool, mainLogger)
	if err := store.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	// An unreachable Redis yields a disabled cache, not a startup failure.
	cacheLogger, err := lifecycle.CreateComponentLogger("cache", logConfig)
	if err != nil {
		return err
	}

	c := cache.New(ctx, &cfg.Redis, cacheLogger)
	defer func() {
		if err := c.Close(); err != nil {
			mainLogger.Warn().Err(err).Msg("Cache close failed")
		}
	}()

	notifier, err := buildNotifier(&cfg.Alerting, logConfig)
	if err != nil {
		return fmt.Errorf("failed to configure notifications: %w", err)
	}

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	settings := config.NewSettings(&cfg)

	snmpConf := snmp.ClientConfig{
		Community: cfg.SNMP.Community,
		Port:      cfg.SNMP.Port,
		Timeout:   cfg.SNMP.Timeout,
		Retries:   cfg.SNMP.Retries,
	}

	discoveryLogger, err := lifecycle.CreateComponentLogger("discovery", logConfig)
	if err != nil {
		return err
	}

	discoverer, err := discovery.New(snmp.NewClient, snmpConf, store, settings, cfg.Discovery.Strict, discoveryLogger, m)
	if err != nil {
		return fmt.Errorf("failed to create discovery engine: %w", err)
	}

	alertLogger, err := lifecycle.CreateComponentLogger("alerting", logConfig)
	if err != nil {
		return err
	}

	recipients := func() []string { return cfg.Alerting.Recipients }

	evaluator, err := alerting.New(store, notifier, recipients, alertLogger, m)
	if err != nil {
		return fmt.Errorf("failed to create alert evaluator: %w", err)
	}

	pollLogger, err := lifecycle.CreateComponentLogger("poller", logConfig)
	if err != nil {
		return err
	}

	p, err := poller.New(snmp.NewClient, snmpConf, store, evaluator, settings, nil, pollLogger, m)
	if err != nil {
		return fmt.Errorf("failed to create poller: %w", err)
	}

	monitor, err := core.New(store, c, discoverer, p, evaluator, settings, mainLogger)
	if err != nil {
		return fmt.Errorf("failed to create monitor: %w", err)
	}

	if *discoverNet != "" {
		go func() {
			summary, err := monitor.TriggerDiscovery(ctx, *discoverNet)
			if err != nil {
				mainLogger.Error().Err(err).Str("network", *discoverNet).Msg("Startup discovery failed")

				return
			}

			mainLogger.Info().
				Str("network", *discoverNet).
				Int("scanned", summary.Scanned).
				Int("found", summary.Found).
				Int("new", summary.New).
				Int("updated", summary.Updated).
				Msg("Startup discovery complete")
		}()
	}

	metricsSrv := newMetricsServer(cfg.ListenAddr, registry, mainLogger)

	return lifecycle.Run(ctx, mainLogger, p, metricsSrv)
}

// buildNotifier assembles the notification fan-out from config. With no
// sinks configured alerts still transition; they are just not delivered.
func buildNotifier(cfg *config.AlertingConfig, logConfig *logger.Config) (notify.Notifier, error) {
	var sinks []notify.Notifier

	if cfg.WebhookURL != "" {
		sinks = append(sinks, notify.NewWebhookNotifier(cfg.WebhookURL, cfg.BearerToken))
	}

	if cfg.NATSURL != "" {
		natsLogger, err := lifecycle.CreateComponentLogger("notify", logConfig)
		if err != nil {
			return nil, err
		}

		n, err := notify.NewNATSNotifier(cfg.NATSURL, cfg.NATSSubject, natsLogger)
		if err != nil {
			return nil, err
		}

		sinks = append(sinks, n)
	}

	switch len(sinks) {
	case 0:
		return notify.NoopNotifier{}, nil
	case 1:
		return sinks[0], nil
	default:
		return notify.NewMultiNotifier(sinks...), nil
	}
}

// metricsServer serves the Prometheus registry over HTTP as a
// lifecycle.Service.
type metricsServer struct {
	srv *http.Server
	log logger.Logger
}

func newMetricsServer(addr string, registry *prometheus.Registry, log logger.Logger) *metricsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return &metricsServer{
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}
}

func (s *metricsServer) Start(context.Context) error {
	s.log.Info().Str("addr", s.srv.Addr).Msg("Serving metrics")

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *metricsServer) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
