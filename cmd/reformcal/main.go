package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/reformcal/internal/cli"
	"github.com/username/reformcal/internal/config"
	"github.com/username/reformcal/internal/daemon"
	"github.com/username/reformcal/internal/engine"
	"github.com/username/reformcal/internal/render"
	"github.com/username/reformcal/internal/server"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "reformcal month year",
		Short: "Hybrid Julian/Gregorian month calendar",
		Long: "Print a month as a 6x7 grid of day numbers under the hybrid\n" +
			"Julian/Gregorian calendar, modeling the October 1582 reformation\n" +
			"in which ten days were removed from the calendar.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			month, year, err := cli.ParseMonthYear(args)
			if err != nil {
				return err
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			cal := engine.New(cfg.Calendar.Reformation())
			return render.Month(cmd.OutOrStdout(), cal.MonthGrid(month, year), month, year)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, cli.ErrUsage) {
			fmt.Fprintf(os.Stderr, "Usage: %s month year\n", filepath.Base(os.Args[0]))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var systemTray bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the calendar HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			cal := engine.New(cfg.Calendar.Reformation())
			srv := server.New(cal, cfg.Server.ListenAddr, logger)

			logger.Info("Starting calendar server",
				zap.String("listen_addr", cfg.Server.ListenAddr),
				zap.Int("reformation_year", cal.Reformation().Year),
				zap.Bool("system_tray", systemTray))

			d := daemon.New(srv, cfg.Server.GetShutdownTimeout(), systemTray, logger)
			return d.Start()
		},
	}

	cmd.Flags().BoolVar(&systemTray, "system-tray", false, "Show system tray icon (Windows only)")

	return cmd
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	// Keep stdout clean for calendar output
	config.OutputPaths = []string{"stderr"}

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
