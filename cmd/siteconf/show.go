package main

import (
	"github.com/spf13/cobra"

	"github.com/eringen/siteconf"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the loaded settings record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := siteconf.ParseFormat(format)
			if err != nil {
				return err
			}
			s, err := opts.load()
			if err != nil {
				return err
			}
			data, err := siteconf.Marshal(s, f)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json, yaml or toml")
	return cmd
}
