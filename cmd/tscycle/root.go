package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/loopcontext/tscycle"
)

var (
	cfgFile  string
	locale   string
	verbose  bool
	forceQt5 bool
	forceQt6 bool

	logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

	rootCmd = &cobra.Command{
		Use:   "tscycle",
		Short: "Update, edit and compile Qt translation catalogs",
		Long: `tscycle automates the Qt Linguist localization cycle for a Python
source tree: it probes for the installed pylupdate generation, discovers
eligible source files, extracts translatable strings into i18n/<locale>.ts,
opens Linguist for interactive translation, and compiles the result into
i18n/<locale>.qm with lrelease.

Configuration is read from tscycle.yaml in the working dir (all fields
optional). The toolchain install root comes from $OSGEO4W_ROOT.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", tscycle.ConfigFile, "config file")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "locale to work on (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&forceQt5, "qt5", false, "skip the probe and use the Qt 5 toolchain")
	rootCmd.PersistentFlags().BoolVar(&forceQt6, "qt6", false, "skip the probe and use the Qt 6 toolchain")

	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(filesCmd)
}

// newPipeline loads config and env, resolves the toolchain profile, and wires
// the pipeline with the default exec runner.
func newPipeline() (*tscycle.Pipeline, error) {
	profile, cfg, err := resolveAll()
	if err != nil {
		return nil, err
	}
	return tscycle.NewPipeline(cfg, profile, nil, logger), nil
}

func resolveAll() (tscycle.Profile, tscycle.Config, error) {
	cfg, err := tscycle.LoadConfig(cfgFile)
	if err != nil {
		return tscycle.Profile{}, tscycle.Config{}, err
	}
	if locale != "" {
		cfg.Locale = locale
	}
	environ, err := tscycle.ParseEnv()
	if err != nil {
		return tscycle.Profile{}, tscycle.Config{}, err
	}
	var profile tscycle.Profile
	switch {
	case forceQt5 && forceQt6:
		return tscycle.Profile{}, tscycle.Config{}, fmt.Errorf("--qt5 and --qt6 are mutually exclusive")
	case forceQt5:
		profile = tscycle.ProfileFor(tscycle.V5, environ.Root)
	case forceQt6:
		profile = tscycle.ProfileFor(tscycle.V6, environ.Root)
	default:
		r := &tscycle.Resolver{Root: environ.Root}
		profile = r.Resolve()
	}
	logger.Debug("toolchain resolved", "version", profile.Version, "extractor", profile.Extractor, "root", environ.Root)
	return profile, cfg, nil
}
