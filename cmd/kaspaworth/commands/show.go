package commands

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"KaspaWorth/internal/collector"
	"KaspaWorth/internal/i18n"
)

var errOffline = errors.New("offline mode")

func showCmd() *cobra.Command {
	var (
		lang     string
		currency string
		offline  bool
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the widget once",
		RunE: func(cmd *cobra.Command, args []string) error {
			var fetcher collector.Fetcher
			if offline {
				fetcher = &collector.MockFetcher{Err: errOffline}
			}
			a, err := newApp(cfg, fetcher)
			if err != nil {
				return err
			}
			defer a.Close()

			if lang == "" {
				lang = i18n.DetectSystemLocale()
			}
			a.widget.Init(lang)
			if currency != "" {
				if err := a.widget.SetCurrency(currency); err != nil {
					return err
				}
			}

			ctx, cancel := context.WithTimeout(context.Background(), cfg.PriceSource.Timeout)
			defer cancel()
			a.widget.RefreshPrice(ctx)

			// AddSink prints the current view once
			out := &textSink{w: os.Stdout}
			a.widget.AddSink(out)
			return out.err
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "", "display language or locale (default: system locale)")
	cmd.Flags().StringVar(&currency, "currency", "", "display currency, USD or EUR")
	cmd.Flags().BoolVar(&offline, "offline", false, "use the cached price only")
	return cmd
}
