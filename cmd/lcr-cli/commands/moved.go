package commands

import (
	"os"

	"lcrassist/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var movedInMonths *int
var movedOutMonths *int

func init() {
	movedInMonths = movedInCmd.Flags().Int("months", 1, "How many months back to report.")
	movedOutMonths = movedOutCmd.Flags().Int("months", 1, "How many months back to report.")
	rootCmd.AddCommand(movedInCmd)
	rootCmd.AddCommand(movedOutCmd)
}

var movedInCmd = &cobra.Command{
	Use:   "moved-in [--months <n>]",
	Short: "Lists members who recently moved into the unit.",
	Run: func(cmd *cobra.Command, args []string) {
		people, err := newClient().MovedIn(cmd.Context(), *movedInMonths)
		if err != nil {
			serviceutil.Fatal("failed to fetch moved-in report", err)
		}

		if jsonOutput() {
			printJSON(people)
			return
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"Name", "Move Date", "Prior Unit"})
		for _, p := range people {
			t.AppendRow(table.Row{p.Name, p.MoveDate, p.PriorUnitName})
		}
		t.Render()
	},
}

var movedOutCmd = &cobra.Command{
	Use:   "moved-out [--months <n>]",
	Short: "Lists members who recently moved out of the unit.",
	Run: func(cmd *cobra.Command, args []string) {
		people, err := newClient().MovedOut(cmd.Context(), *movedOutMonths)
		if err != nil {
			serviceutil.Fatal("failed to fetch moved-out report", err)
		}

		if jsonOutput() {
			printJSON(people)
			return
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"Name", "Move Date", "Next Unit"})
		for _, p := range people {
			t.AppendRow(table.Row{p.Name, p.MoveDateDisplay, p.NextUnitName})
		}
		t.Render()
	},
}
