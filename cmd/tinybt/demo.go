package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/aretw0/tinybt"
	"github.com/aretw0/tinybt/internal/demo"
	"github.com/aretw0/tinybt/internal/logging"
	"github.com/aretw0/tinybt/pkg/observe"
)

// demoCmd drives the built-in door/agent tree in a tick loop.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the door/agent behavior tree demo",
	Long: `Ticks a small behavior tree in which an agent walks up to a door and
gets through it: already open, openable, or unlockable with a key. The loop
runs until the tree settles on success or failure.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ticks, _ := cmd.Flags().GetInt("ticks")
		intervalStr, _ := cmd.Flags().GetString("interval")
		distance, _ := cmd.Flags().GetInt("distance")
		locked, _ := cmd.Flags().GetBool("locked")
		hasKey, _ := cmd.Flags().GetBool("has-key")
		logLevel, _ := cmd.Flags().GetString("log-level")
		metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

		if configPath, _ := cmd.Flags().GetString("config"); configPath != "" {
			cfg, err := loadDemoConfig(configPath)
			if err != nil {
				return err
			}
			// File values apply only where the flag was left at its default.
			if !cmd.Flags().Changed("ticks") && cfg.Ticks != 0 {
				ticks = cfg.Ticks
			}
			if !cmd.Flags().Changed("interval") && cfg.Interval != "" {
				intervalStr = cfg.Interval
			}
			if !cmd.Flags().Changed("distance") && cfg.Distance != 0 {
				distance = cfg.Distance
			}
			if !cmd.Flags().Changed("locked") {
				locked = cfg.Locked
			}
			if !cmd.Flags().Changed("has-key") {
				hasKey = cfg.HasKey
			}
			if !cmd.Flags().Changed("log-level") && cfg.LogLevel != "" {
				logLevel = cfg.LogLevel
			}
			if !cmd.Flags().Changed("metrics-addr") && cfg.MetricsAddr != "" {
				metricsAddr = cfg.MetricsAddr
			}
		}

		interval, err := time.ParseDuration(intervalStr)
		if err != nil {
			return fmt.Errorf("invalid interval %q: %w", intervalStr, err)
		}

		logger := logging.New(logging.ParseLevel(logLevel))

		metrics := observe.NewMetrics()
		hooks := observe.Join(observe.SlogHooks(logger), metrics.Hooks())

		tree, err := demo.Build(hooks)
		if err != nil {
			return err
		}

		if metricsAddr != "" {
			reg := prometheus.NewRegistry()
			reg.MustRegister(metrics)
			router := chi.NewRouter()
			router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			go func() {
				logger.Info("serving metrics", "addr", metricsAddr)
				if err := http.ListenAndServe(metricsAddr, router); err != nil {
					logger.Error("metrics server stopped", "err", err)
				}
			}()
		}

		runner, err := tinybt.NewRunner(tree,
			tinybt.WithInterval(interval),
			tinybt.WithMaxTicks(ticks),
			tinybt.WithLogger(logger),
		)
		if err != nil {
			return err
		}

		world := &demo.World{
			Door:  demo.Door{Locked: locked},
			Agent: demo.Agent{HasKey: hasKey, Distance: distance},
		}

		res, err := runner.Run(cmd.Context(), world)
		if err != nil {
			return err
		}
		if actions, ok := res.Success(); ok {
			for _, action := range actions {
				fmt.Println(action)
			}
			return nil
		}
		reason, _ := res.Failure()
		return fmt.Errorf("agent gave up: %s", reason)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().Int("ticks", 100, "Maximum number of ticks before giving up (0 = unbounded)")
	demoCmd.Flags().String("interval", "100ms", "Delay between ticks while the tree is running")
	demoCmd.Flags().Int("distance", 2, "How many ticks of walking separate the agent from the door")
	demoCmd.Flags().Bool("locked", false, "Start with the door locked")
	demoCmd.Flags().Bool("has-key", false, "Give the agent the key")
	demoCmd.Flags().String("log-level", "info", "Log level (debug, info, warn, error)")
	demoCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
	demoCmd.Flags().String("config", "", "YAML file with demo settings (explicit flags win)")
}
