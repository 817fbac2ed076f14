package commands

import (
	"os"

	"github.com/spf13/cobra"

	"KaspaWorth/internal/config"
)

var (
	cfgPath string
	cfg     *config.Config
)

func Execute() error {
	root := &cobra.Command{
		Use:           "kaspaworth",
		Short:         "What can you buy with Kaspa?",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath == "" {
				cfgPath = "configs/config.yaml"
				if v := os.Getenv("CONFIG_PATH"); v != "" {
					cfgPath = v
				}
			}
			c, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if err := c.Validate(); err != nil {
				return err
			}
			cfg = c
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default $CONFIG_PATH or configs/config.yaml)")

	root.AddCommand(serveCmd(), showCmd())
	return root.Execute()
}
