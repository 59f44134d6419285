package commands

import (
	"fmt"

	"lcrassist/lib/directory"
	"lcrassist/lib/serviceutil"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(directoryCmd)
}

var directoryCmd = &cobra.Command{
	Use:   "directory",
	Short: "Builds a printable photo directory as a Google Sheets spreadsheet.",
	Run: func(cmd *cobra.Command, args []string) {
		people, err := newClient().VisualMemberList(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to fetch visual member list", err)
		}

		url, err := directory.Build(cmd.Context(), people)
		if err != nil {
			serviceutil.Fatal("failed to build photo directory", err)
		}

		fmt.Printf("Spreadsheet: %s\n", url)
	},
}
