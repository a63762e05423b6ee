package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dskdrives",
		Short:   "Report mounted drives with capacity, health and usage bars",
		Long: `dskdrives scans the mount table once, classifies every mounted
filesystem as a local, network or cloud drive, and prints a report with
capacity, inode and health details plus a color-graded usage bar sized to
the terminal.`,
		Version:       appversion,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			drives, err := scanDrives()
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), drives, terminalWidth(), os.Geteuid() == 0)
			return nil
		},
	}
	// -v shorthand on top of cobra's default --version
	cmd.Flags().BoolP("version", "v", false, "version for dskdrives")
	return cmd
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		cmd.PrintErrf("%v\n", err)
		os.Exit(1)
	}
}
