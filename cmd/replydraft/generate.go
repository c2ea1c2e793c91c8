package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/joestump/replydraft/internal/clipboard"
	"github.com/joestump/replydraft/internal/config"
	"github.com/joestump/replydraft/internal/logging"
	"github.com/joestump/replydraft/internal/reply"
	"github.com/joestump/replydraft/internal/scenario"
)

type generateOptions struct {
	scenario string
	customer string
	order    string
	tracking string
	courier  string
	notes    string
	copy     bool
	dryRun   bool
}

func newGenerateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one reply and print it",
		Example: `  replydraft generate --scenario exchange --customer "Jane Doe" --order ORD-1001
  replydraft generate --scenario order_status --customer Jane --order 9 --tracking TRK-1 --copy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			// Reply text goes to stdout; keep logs on stderr.
			log.Logger = logging.New(cmd.ErrOrStderr(), cfg.Log.Level, "console")

			gen, err := reply.FromConfig(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer gen.Close()
			return runGenerate(cmd.Context(), gen, clipboard.System{}, opts, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.scenario, "scenario", "", "reply scenario slug or label (see `replydraft scenarios`)")
	f.StringVar(&opts.customer, "customer", "", "customer name")
	f.StringVar(&opts.order, "order", "", "order ID")
	f.StringVar(&opts.tracking, "tracking", "", "tracking ID (order status and delay scenarios only)")
	f.StringVar(&opts.courier, "courier", "", "courier tracking URL (order status and delay scenarios only)")
	f.StringVar(&opts.notes, "notes", "", "additional notes for the reply")
	f.BoolVar(&opts.copy, "copy", false, "copy the reply to the system clipboard")
	f.BoolVar(&opts.dryRun, "dry-run", false, "print the composed prompt without calling the LLM")
	_ = cmd.MarkFlagRequired("scenario")

	return cmd
}

func runGenerate(ctx context.Context, gen *reply.Generator, clip clipboard.Writer, opts generateOptions, out io.Writer) error {
	kind, err := scenario.ParseKind(opts.scenario)
	if err != nil {
		return err
	}

	req := scenario.Request{
		Kind:         kind,
		CustomerName: strings.TrimSpace(opts.customer),
		OrderID:      strings.TrimSpace(opts.order),
		Notes:        strings.TrimSpace(opts.notes),
	}
	if kind.AcceptsTracking() {
		req.TrackingID = strings.TrimSpace(opts.tracking)
		req.CourierURL = strings.TrimSpace(opts.courier)
	} else if opts.tracking != "" || opts.courier != "" {
		log.Warn().Str("scenario", kind.Slug()).Msg("tracking details ignored for this scenario")
	}

	if opts.dryRun {
		composed, err := gen.Compose(req)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "--- system ---\n%s\n--- user ---\n%s\n", composed.System, composed.User)
		return nil
	}

	res := gen.Generate(ctx, req)
	if !res.OK() {
		return fmt.Errorf("%s error: %w", res.Kind, res.Err())
	}
	fmt.Fprintln(out, res.Text)

	if opts.copy {
		if err := clipboard.Copy(clip, res.Text); err != nil {
			if errors.Is(err, clipboard.ErrUnsupported) {
				log.Warn().Err(err).Msg("reply not copied")
				return nil
			}
			return err
		}
		log.Info().Msg("reply copied to clipboard")
	}
	return nil
}
