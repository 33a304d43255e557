// Package commands holds the skiptrace command tree.
package commands

import (
	"errors"
	"os"

	"skiptrace/internal/skiptrace"
	"skiptrace/platform/config"
	"skiptrace/platform/logger"

	"github.com/spf13/cobra"
)

var (
	cfg *config.Config
	log *logger.Logger
)

var errDisabled = errors.New("skip trace disabled: set SKIPENGINE_API_KEY")

// Execute builds the root command and runs it.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "skiptrace",
		Short:         "Enrich contact tables with SkipEngine phone and email lookups",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			cfg = loaded
			// stdout is reserved for command output
			log = logger.NewWithWriter(cfg.Env, os.Stderr)
			return nil
		},
	}

	root.AddCommand(runCmd(), lookupCmd())
	return root
}

func enabledModule() (*skiptrace.Module, error) {
	module := skiptrace.NewModule(cfg, log)
	if !module.IsEnabled() {
		log.Warn("skip trace module unavailable, nothing to do")
		return nil, errDisabled
	}
	return module, nil
}
