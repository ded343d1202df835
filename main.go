package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

// Each tool repeats one loop:
// 	banner -> prompt -> read line -(validate)-> compute -> print -> prompt ...
// 	blank line, -1 (change), end of input	-> goodbye banner

func main() {
	if err := mainFunc(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed: %v\n", err)
		os.Exit(1)
	}
}

func mainFunc() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "linecalc",
		Short:         "Small interactive line calculators",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringP("config", "c", ConfigFile, "Path to config file")
	pf.String("log", "", "Log file, no logging if empty")
	pf.String("log-level", "debug", "Log level")
	pf.Bool("no-clear", false, "Do not clear the terminal")

	sums := toolCmd("sums", "Sums, counts and averages of signed numbers",
		func(cfg Config) Tool { return &sumsTool{plot: cfg.Plot, height: cfg.PlotHeight} })
	sums.Flags().Bool("plot", false, "Plot the samples of every line")
	sums.Flags().Int("plot-height", 8, "Plot height in rows")

	root.AddCommand(
		sums,
		toolCmd("change", "Break an amount below one dollar into coins",
			func(Config) Tool { return changeTool{} }),
		toolCmd("points", "Read points as pairs of integers",
			func(Config) Tool { return pointsTool{} }),
		toolCmd("sentences", "Count characters of a sentence",
			func(Config) Tool { return sentencesTool{} }),
		toolCmd("palindrome", "Check whether a line is a palindrome",
			func(Config) Tool { return palindromeTool{} }),
	)
	return root
}

func toolCmd(name, short string, build func(Config) Tool) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTool(cmd, build)
		},
	}
}

func runTool(cmd *cobra.Command, build func(Config) Tool) error {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return xerrors.Errorf("config flag: %w", err)
	}
	cfg, err := LoadConfig(configFile)
	if err != nil {
		return xerrors.Errorf("config %s: %w", configFile, err)
	}
	if err := cfg.Override(cmd.Flags()); err != nil {
		return xerrors.Errorf("flags: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return xerrors.Errorf("logger: %w", err)
	}
	defer logger.Sync()
	sl := logger.Sugar()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	tool := build(cfg)
	var clearer Clearer = nopClearer{}
	if cfg.Clear {
		clearer = termClearer{out: os.Stdout}
	}
	s := NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), sl, clearer, cfg.Title(tool.Name()))
	if err := s.Run(ctx, tool); err != nil {
		return xerrors.Errorf("%s: %w", tool.Name(), err)
	}
	return nil
}

func newLogger(cfg Config) (*zap.Logger, error) {
	if cfg.LogFile == "" {
		return zap.NewNop(), nil
	}
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, xerrors.Errorf("level: %w", err)
	}
	logcfg := zap.NewDevelopmentConfig()
	logcfg.Level = level
	logcfg.OutputPaths = []string{cfg.LogFile}
	logcfg.ErrorOutputPaths = []string{cfg.LogFile}
	logger, err := logcfg.Build()
	if err != nil {
		return nil, xerrors.Errorf("build: %w", err)
	}
	return logger, nil
}
