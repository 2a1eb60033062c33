// Command vectgen generates the static length aliases and the pre-verified
// positional operations of the typevec package.
//
// Usage:
//
//	go run ./internal/cmd/vectgen --output . --max-index 7 --max-length 16
//	go run ./internal/cmd/vectgen --config vectgen.yaml --verbose
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/typevec/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
		jsonLog    bool
		flagCfg    = DefaultConfig()
	)

	cmd := &cobra.Command{
		Use:          "vectgen",
		Short:        "Generate typevec length aliases and positional operations",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := flagCfg
			if configPath != "" {
				loaded, err := LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = overrideChanged(cmd, loaded, flagCfg)
			}

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := logging.NewTextLogger(cmd.ErrOrStderr(), level)
			if jsonLog {
				logger = logging.NewJSONLogger(cmd.ErrOrStderr(), level)
			}

			return NewGenerator(cfg, WithLogger(logger)).Generate(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "YAML config file (flags override its values)")
	flags.StringVarP(&flagCfg.Output, "output", "o", flagCfg.Output, "output directory")
	flags.StringVar(&flagCfg.Package, "package", flagCfg.Package, "package name of the generated files")
	flags.IntVar(&flagCfg.MaxIndex, "max-index", flagCfg.MaxIndex, "highest index with pre-verified Get/Insert/Remove")
	flags.IntVar(&flagCfg.MaxLength, "max-length", flagCfg.MaxLength, "highest static length with a U<n> alias")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	flags.BoolVar(&jsonLog, "json-log", false, "log as JSON")

	return cmd
}

// overrideChanged applies the flags set on the command line on top of cfg.
func overrideChanged(cmd *cobra.Command, cfg, flagCfg Config) Config {
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = flagCfg.Output
	}
	if flags.Changed("package") {
		cfg.Package = flagCfg.Package
	}
	if flags.Changed("max-index") {
		cfg.MaxIndex = flagCfg.MaxIndex
	}
	if flags.Changed("max-length") {
		cfg.MaxLength = flagCfg.MaxLength
	}
	return cfg
}
