package cli

import (
	"github.com/pokedex/backend/internal/infrastructure/logger"
	"github.com/pokedex/backend/internal/interfaces/tui"
	"github.com/spf13/cobra"
)

// DefaultTUILogFile receives logs while the terminal is owned by the UI
const DefaultTUILogFile = "pokedex-tui.log"

func tuiCmd(opts *rootOptions) *cobra.Command {
	var logFile string

	c := &cobra.Command{
		Use:   "tui",
		Short: "Browse and add records in a terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			log, err := newLogger(cfg, tuiLogOutput(logFile, cfg.Log.Output))
			if err != nil {
				return err
			}
			defer logger.Sync(log)

			svc, err := newServices(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer svc.close(log)

			return tui.Run(tui.Deps{
				Create:   svc.create,
				FetchAll: svc.fetchAll,
				Backend:  svc.backend.Name,
				Logger:   log,
			})
		},
	}

	c.Flags().StringVar(&logFile, "log-file", "", "log file (default: log.output when it is a file, else "+DefaultTUILogFile+")")
	return c
}

// tuiLogOutput keeps logs off the terminal the UI draws on
func tuiLogOutput(flag, configured string) string {
	if flag != "" {
		return flag
	}
	switch configured {
	case "", "stdout", "stderr":
		return DefaultTUILogFile
	default:
		return configured
	}
}
