package commands

import (
	"fmt"
	"os"
	"time"

	"lcrassist/lib/reports"
	"lcrassist/lib/scrapers/lcr"
	"lcrassist/lib/serviceutil"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Prints age, gender and tenure histograms for the unit.",
	Long: "Fetches the member list and then a profile per member, one " +
		"request at a time, and prints bucketed histograms. A single " +
		"profile fetch failing aborts the whole report.",
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		members, err := client.MemberList(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to fetch member list", err)
		}

		profiles := make([]lcr.MemberProfile, 0, len(members))
		for _, m := range members {
			profile, err := client.MemberProfile(cmd.Context(), m.LegacyCmisID)
			if err != nil {
				serviceutil.Fatal("failed to fetch member profile", err)
			}
			profiles = append(profiles, profile)
		}

		now := time.Now().UTC()
		ageBuckets := reports.AgeBuckets(members)
		genderBuckets := reports.GenderBuckets(members)
		tenureBuckets := reports.TenureBuckets(profiles, now)

		if jsonOutput() {
			printJSON(struct {
				Age    map[int]int             `json:"age"`
				Gender map[string]int          `json:"gender"`
				Tenure []reports.CumulativeRow `json:"tenure"`
			}{
				Age:    ageBuckets,
				Gender: genderBuckets,
				Tenure: reports.Cumulate(tenureBuckets),
			})
			return
		}

		fmt.Println("Members by age:")
		reports.RenderIntBuckets(os.Stdout, "Age", ageBuckets)
		fmt.Println()
		fmt.Println("Members by gender:")
		reports.RenderStringBuckets(os.Stdout, "Gender", genderBuckets)
		fmt.Println()
		fmt.Println("Members by months since move-in:")
		reports.RenderTenure(os.Stdout, tenureBuckets)
	},
}
