package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/siteconf"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the settings record and list invalid fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := opts.load()
			var ve *siteconf.ValidationError
			if errors.As(err, &ve) {
				for _, f := range ve.Fields {
					fmt.Fprintln(cmd.OutOrStdout(), f.String())
				}
				return fmt.Errorf("%d invalid field(s)", len(ve.Fields))
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "settings OK")
			return nil
		},
	}
}
