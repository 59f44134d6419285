package commands

import (
	"fmt"

	"lcrassist/lib/serviceutil"

	"github.com/spf13/cobra"
)

var onlyFemales *bool

func init() {
	onlyFemales = ministeringCmd.Flags().Bool(
		"only-females", false,
		"Only include people the member list records as female.",
	)
	rootCmd.AddCommand(ministeringCmd)
}

var ministeringCmd = &cobra.Command{
	Use:   "ministering [--only-females]",
	Short: "Prints the unique names across all ministering assignments.",
	Run: func(cmd *cobra.Command, args []string) {
		names, err := newClient().MinisteringNames(cmd.Context(), *onlyFemales)
		if err != nil {
			serviceutil.Fatal("failed to collect ministering names", err)
		}

		if jsonOutput() {
			printJSON(names)
			return
		}

		for _, name := range names {
			fmt.Println(name)
		}
	},
}
