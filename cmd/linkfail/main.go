// SPDX-License-Identifier: MIT

// Command linkfail runs a link-failure experiment and reports how
// connectivity, spanning-tree cost, path cost and max flow degrade.
//
//	linkfail -policy constant -nodes 60 -degree 8 -trials 500 -records out.csv
//	linkfail -config experiment.yaml -summary summary.yaml -metrics run.prom
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/linkfail/config"
	"github.com/katalvlaran/linkfail/export"
	"github.com/katalvlaran/linkfail/metrics"
	"github.com/katalvlaran/linkfail/simulation"
	"github.com/katalvlaran/linkfail/stats"
)

var (
	configPath = flag.String("config", "", "Config file (yaml, json, toml)")
	trials     = flag.Int("trials", 0, "Number of trials")
	policy     = flag.String("policy", "", "Topology policy: fully_connected, constant, clustered")
	nodes      = flag.Int("nodes", -1, "Node count (0 draws a size per trial)")
	degree     = flag.Int("degree", 0, "Per-node degree bound (constant policy)")
	clusters   = flag.Int("clusters", 0, "Cluster count (clustered policy)")
	seed       = flag.Int64("seed", 0, "Base seed")
	workers    = flag.Int("workers", 0, "Concurrent trials (default: CPU count)")
	analytics  = flag.String("analytics", "", "Comma-separated: components,mst,shortest_path,max_flow or all")
	fixedP     = flag.Float64("p", -1, "Fixed failure probability in [0,1]")
	records    = flag.String("records", "", "Write records to .json, .json.sz or .csv")
	summary    = flag.String("summary", "", "Write the YAML run summary to this file")
	metricsOut = flag.String("metrics", "", "Write Prometheus metrics in text format to this file")
	logLevel   = flag.String("log-level", "", "Log level: debug, info, warn, error")
	logJSON    = flag.Bool("log-json", false, "JSON logs instead of console output")
	quiet      = flag.Bool("quiet", false, "Skip the summary table")
)

func main() {
	flag.Parse()

	cfg := config.NewConfig()
	if *configPath != "" {
		if err := cfg.LoadFromFile(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	applyFlags(cfg)

	log := cfg.CreateLogger(os.Stderr)
	if used := cfg.ConfigFileUsed(); used != "" {
		log.Info().Str("file", used).Msg("config loaded")
	}

	simCfg, err := cfg.Simulation()
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(2)
	}

	reg := metrics.NewRegistry()
	opts := []simulation.Option{
		simulation.WithLogger(log),
		simulation.WithObserver(reg),
	}
	if cfg.FlowVerbose() {
		opts = append(opts, simulation.WithFlowVerbose())
	}
	runner, err := simulation.NewRunner(simCfg, opts...)
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	res, runErr := runner.Run(ctx)
	// A cancelled run still reports its prefix.
	if runErr != nil && !res.Cancelled {
		log.Error().Err(runErr).Msg("run failed")
	}

	code := 0
	if err := writeOutputs(cfg, res, reg, log); err != nil {
		log.Error().Err(err).Msg("writing outputs")
		code = 1
	}
	if !*quiet {
		fmt.Println(renderReport(stats.NewReport(res)))
	}
	if runErr != nil {
		code = 1
	}
	stop()
	os.Exit(code)
}

// applyFlags copies explicitly set flags over the file and environment
// settings.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "trials":
			cfg.Set("trials", *trials)
		case "policy":
			cfg.Set("topology.policy", *policy)
		case "nodes":
			cfg.Set("topology.nodes", *nodes)
		case "degree":
			cfg.Set("topology.degree", *degree)
		case "clusters":
			cfg.Set("topology.clusters", *clusters)
		case "seed":
			cfg.Set("seed", *seed)
		case "workers":
			cfg.Set("workers", *workers)
		case "analytics":
			cfg.Set("analytics", splitList(*analytics))
		case "p":
			cfg.Set("failure.fixed", *fixedP)
		case "records":
			cfg.Set("output.records", *records)
		case "summary":
			cfg.Set("output.summary", *summary)
		case "metrics":
			cfg.Set("output.metrics", *metricsOut)
		case "log-level":
			cfg.Set("logging.level", *logLevel)
		case "log-json":
			cfg.Set("logging.json", *logJSON)
		}
	})
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func writeOutputs(cfg *config.Config, res *simulation.Result, reg *metrics.Registry, log zerolog.Logger) error {
	if path := cfg.RecordsPath(); path != "" {
		if err := export.WriteFile(path, res); err != nil {
			return err
		}
		log.Info().Str("path", path).Int("records", len(res.Records)).Msg("records written")
	}
	if path := cfg.SummaryPath(); path != "" {
		if err := export.WriteSummaryFile(path, stats.NewReport(res)); err != nil {
			return err
		}
		log.Info().Str("path", path).Msg("summary written")
	}
	if path := cfg.MetricsPath(); path != "" {
		if err := reg.WriteTextfile(path); err != nil {
			return err
		}
		log.Info().Str("path", path).Msg("metrics written")
	}
	return nil
}
