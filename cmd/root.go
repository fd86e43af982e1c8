// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/retr0h/xproc/internal/cli"
	"github.com/retr0h/xproc/internal/config"
	"github.com/retr0h/xproc/internal/exec"
	"github.com/retr0h/xproc/internal/telemetry"
)

const serviceName = "xproc"

var (
	appConfig      config.Config
	appFs          = afero.NewOsFs()
	logger         = slog.New(slog.NewTextHandler(os.Stderr, nil))
	jsonOutput     bool
	tracerShutdown func(context.Context) error
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "xproc",
	Short: "Launch processes and shell commands and classify their output.",
	Long: `Launch processes and shell commands, capture stdout and stderr as text,
and classify the outcome. Results can be awaited with a bounded timeout.

https://github.com/retr0h/xproc
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		var err error
		tracerShutdown, err = telemetry.InitTracer(
			cmd.Context(),
			serviceName,
			appConfig.Telemetry.Tracing,
		)
		if err != nil {
			cli.LogFatal(logger, "failed to initialize tracer", err)
		}

		logger.Debug(
			"configuration",
			slog.String("config_file", viper.ConfigFileUsed()),
			slog.Bool("debug", appConfig.Debug),
			slog.Int("exec.default_timeout", appConfig.Exec.DefaultTimeout),
			slog.String("exec.console_encoding", appConfig.Exec.ConsoleEncoding),
			slog.String("telemetry.tracing.exporter", appConfig.Telemetry.Tracing.Exporter),
		)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)

	if tracerShutdown != nil {
		_ = tracerShutdown(context.Background())
	}

	if err != nil {
		if !isFailedResult(err) {
			logger.Error("command failed", slog.Any("error", err))
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogger)

	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable or disable debug mode")
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Enable JSON output")

	rootCmd.PersistentFlags().
		StringP("xproc-file", "f", "/etc/xproc/xproc.yaml", "Path to config file")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("xprocFile", rootCmd.PersistentFlags().Lookup("xproc-file"))

	viper.SetDefault("exec.default_timeout", exec.DefaultTimeout)
	viper.SetDefault("exec.console_encoding", "")
	viper.SetDefault("exec.working_dir", "")
	viper.SetDefault("telemetry.tracing.enabled", false)
	viper.SetDefault("telemetry.tracing.exporter", "")
	viper.SetDefault("telemetry.tracing.otlp_endpoint", "")
	viper.SetDefault("telemetry.metrics.path", telemetry.DefaultMetricsPath)
}

func initConfig() {
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetConfigType("yaml")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("xproc")

	configFile := viper.GetString("xprocFile")
	exists, err := afero.Exists(appFs, configFile)
	if err != nil {
		cli.LogFatal(logger, "failed to stat config", err, "xprocFile", configFile)
	}

	if exists {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			cli.LogFatal(logger, "failed to read config", err, "xprocFile", configFile)
		}
	}

	if err := viper.Unmarshal(&appConfig); err != nil {
		cli.LogFatal(logger, "failed to unmarshal config", err, "xprocFile", viper.ConfigFileUsed())
	}

	// Auto-enable tracing in debug mode so trace_id appears in log lines.
	// No exporter is set, only log correlation.
	if appConfig.Debug && !appConfig.Telemetry.Tracing.Enabled {
		appConfig.Telemetry.Tracing.Enabled = true
	}

	if err := config.Validate(&appConfig); err != nil {
		cli.LogFatal(logger, "validation failed", err, "xprocFile", viper.ConfigFileUsed())
	}
}

func initLogger() {
	logLevel := slog.LevelInfo
	if viper.GetBool("debug") {
		logLevel = slog.LevelDebug
	}

	logger = slog.New(telemetry.NewHandler(os.Stderr, telemetry.HandlerOptions{
		Level:   logLevel,
		JSON:    jsonOutput,
		NoColor: !term.IsTerminal(int(os.Stderr.Fd())),
	}))
}
