package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "syntara",
		Short:         "Compare product prices and request market reports from Syntara",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newRegisterCmd(a),
		newWhoamiCmd(a),
		newSearchCmd(a),
		newWholesaleCmd(a),
		newHistoryCmd(a),
		newCartCmd(a),
		newPlanCmd(a),
		newReportCmd(a),
	)
	markRunErrors(root)

	return root
}

// markRunErrors wraps errors of cmd and its subcommands run functions into runError.
func markRunErrors(cmd *cobra.Command) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(c *cobra.Command, args []string) error {
			if err := run(c, args); err != nil {
				return runError{err: err}
			}
			return nil
		}
	}

	for _, sub := range cmd.Commands() {
		markRunErrors(sub)
	}
}
