package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/testmotools/go-testmo/config"
	"github.com/testmotools/go-testmo/ir"
	"github.com/testmotools/go-testmo/testmo"
)

var (
	configPath string
	verbose    bool

	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "testmo-overview",
	Short: "Render test overviews from a Testmo instance.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			Level(level).
			With().Timestamp().Logger()

		if !isatty.IsTerminal(os.Stdout.Fd()) {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&configPath, "config", "testmo_config.json5", "path to the configuration file")
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging")
}

func newClient() (*testmo.Client, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := config.RestrictToOwner(configPath); err != nil {
		log.Warn().Err(err).Msg("could not restrict config file permissions")
	}
	return testmo.New(cfg.URL, cfg.Token, testmo.WithLogger(log)), nil
}

// loadDocument reads a JSON or YAML document into a tree, picking the
// decoder by file extension.
func loadDocument(path string) (*ir.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ir.FromYAML(data)
	default:
		return ir.FromJSON(data)
	}
}
