package commands

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"skiptrace/internal/skiptrace/backfill"
	"skiptrace/internal/skiptrace/repository"

	"github.com/spf13/cobra"
)

func runCmd() *cobra.Command {
	var (
		file    string
		delay   time.Duration
		columns string
		dryRun  bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Look up every row of the input CSV and write the results back",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("file") {
				cfg.InputFile = file
			}
			if flags.Changed("delay") {
				cfg.PacingDelay = delay
			}
			if flags.Changed("columns") {
				cfg.ColumnsFile = columns
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			cols, err := repository.LoadColumns(cfg.GetColumnsFile())
			if err != nil {
				return err
			}
			table, err := repository.Open(cfg.GetInputFile(), cols)
			if err != nil {
				log.Error("failed to open contact table", "file", cfg.GetInputFile(), "error", err)
				return err
			}

			module, err := enabledModule()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			runner := backfill.New(module.Service(), log, backfill.Options{
				Delay:  cfg.GetPacingDelay(),
				DryRun: dryRun,
			})
			_, err = runner.Run(ctx, table)
			return err
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "input CSV (default from SKIPTRACE_INPUT_FILE)")
	cmd.Flags().DurationVar(&delay, "delay", 0, "minimum spacing between lookups (default from SKIPTRACE_DELAY)")
	cmd.Flags().StringVar(&columns, "columns", "", "YAML column mapping file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "run lookups without writing the file")
	return cmd
}
