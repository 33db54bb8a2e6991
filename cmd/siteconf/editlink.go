package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEditLinkCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "edit-link <file>",
		Short: "Print the edit-this-page URL for a repository-relative file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load()
			if err != nil {
				return err
			}
			link, err := s.EditLink(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), link.URL)
			return nil
		},
	}
}
