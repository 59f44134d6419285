package commands

import (
	"os"
	"strings"

	"lcrassist/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(membersCmd)
	rootCmd.AddCommand(emailsCmd)
	rootCmd.AddCommand(visualMembersCmd)
}

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "Lists every member of the unit.",
	Run: func(cmd *cobra.Command, args []string) {
		members, err := newClient().MemberList(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to fetch member list", err)
		}

		if jsonOutput() {
			printJSON(members)
			return
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"Name", "Age", "Sex", "Phone", "Address"})
		for _, m := range members {
			t.AppendRow(table.Row{
				m.NameListPreferredLocal,
				m.Age,
				m.Sex,
				m.PhoneNumber,
				strings.Join(m.Address.AddressLines, ", "),
			})
		}
		t.Render()
	},
}

var emailsCmd = &cobra.Command{
	Use:   "emails",
	Short: "Lists member email addresses.",
	Run: func(cmd *cobra.Command, args []string) {
		members, err := newClient().MemberList(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to fetch member list", err)
		}

		type entry struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		}
		var entries []entry
		for _, m := range members {
			if m.Email == "" {
				continue
			}
			entries = append(entries, entry{
				Name:  m.NameListPreferredLocal,
				Email: m.Email,
			})
		}

		if jsonOutput() {
			printJSON(entries)
			return
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"Name", "Email"})
		for _, e := range entries {
			t.AppendRow(table.Row{e.Name, e.Email})
		}
		t.Render()
	},
}

var visualMembersCmd = &cobra.Command{
	Use:   "visual-members",
	Short: "Lists members paired with their directory photos.",
	Run: func(cmd *cobra.Command, args []string) {
		people, err := newClient().VisualMemberList(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to fetch visual member list", err)
		}

		if jsonOutput() {
			printJSON(people)
			return
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"Name", "Photo"})
		for _, p := range people {
			t.AppendRow(table.Row{p.Name, p.PhotoURL})
		}
		t.Render()
	},
}
