package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/engine"
	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/web"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the SNQL converter over HTTP",
		Long: `Start the web converter: a form page at / and a JSON API at
/api/translate.

The server stops on SIGINT or SIGTERM.

Example:
  snql serve --addr :8080
  snql serve --db ./sample.db --log-format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(rootOpts, cmd)
		},
	}
}

func serve(opts *RootOptions, cmd *cobra.Command) error {
	cfg, err := opts.Settings()
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, opts)
	if err != nil {
		return err
	}
	defer closeStore(ctx, st)

	logger := log.Ctx(ctx)
	handler := web.New(st, engine.New(), *logger).Handler()

	logger.Info().Str("addr", cfg.Server.Addr).Str("db", cfg.Database.Path).Msg("serving")
	err = web.ListenAndServe(ctx, cfg.Server.Addr, handler, cfg.Server.ReadTimeout, cfg.Server.WriteTimeout)
	if err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, context.Canceled) {
		return WrapExitError(ExitCommandError, "server failed", err)
	}
	logger.Info().Msg("server stopped")
	return nil
}
