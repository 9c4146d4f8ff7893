package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-utils/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if a.cfgPath == "" {
				fmt.Fprintln(out, "# built-in defaults")
			} else {
				fmt.Fprintf(out, "# %s\n", a.cfgPath)
			}
			return toml.NewEncoder(out).Encode(a.cfg)
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init [PATH]",
		Short: "Write the default configuration",
		Long:  "Writes the built-in defaults to PATH, or to [UserConfigDir]/utilx/config.toml.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				var err error
				if path, err = config.DefaultPath(); err != nil {
					return err
				}
			}
			if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})
	return cmd
}
