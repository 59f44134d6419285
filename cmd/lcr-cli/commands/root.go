package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"lcrassist/lib/browser"
	"lcrassist/lib/scrapers/lcr"
	"lcrassist/lib/serviceutil"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lcr-cli",
	Short: "lcr-cli fetches membership reports from LCR and prints them.",
}

var (
	outputFormat *string
	showsChrome  *bool
)

func init() {
	outputFormat = rootCmd.PersistentFlags().String(
		"output", "plaintext", "Output format, one of: plaintext, json.",
	)
	showsChrome = rootCmd.PersistentFlags().Bool(
		"shows-chrome", false, "Run the login browser with a visible window.",
	)
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func jsonOutput() bool {
	return *outputFormat == "json"
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		serviceutil.Fatal("failed to marshal output", err)
	}
	fmt.Println(string(out))
}

func requireEnv(name string) string {
	value := os.Getenv(name)
	if value == "" {
		serviceutil.Fatal(
			"missing required environment variable",
			fmt.Errorf("%s must be set", name),
		)
	}
	return value
}

// newClient builds the report client from the environment. All three
// variables are validated up front so a missing one fails before the
// browser ever launches.
func newClient() *lcr.Client {
	username := requireEnv("LCR_USERNAME")
	password := requireEnv("LCR_PASSWORD")
	unit := requireEnv("LCR_UNIT")

	cfg, err := lcr.LoadConfig()
	if err != nil {
		serviceutil.Fatal("failed to read lcr.json5", err)
	}

	client, err := lcr.NewClient(lcr.ClientOptions{
		Credentials: browser.Credentials{
			Username: username,
			Password: password,
		},
		UnitNumber: unit,
		Config:     cfg,
		Browser: browser.Options{
			ShowChrome: *showsChrome,
		},
	})
	if err != nil {
		serviceutil.Fatal("failed to initialize lcr client", err)
	}
	return client
}
