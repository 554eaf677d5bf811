package nutrifit

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	baseURL     string
	sessionFile string
)

var rootCmd = &cobra.Command{
	Use:   "nutrifit",
	Short: "nutrifit talks to the NutriFit backend from your terminal",
	Long:  "nutrifit is a client for the NutriFit nutrition and fitness backend: account, profile, daily dashboard, meals, fridge, barcode lookups, trainings and dish recommendations.",
}

func Execute() {
	// A missing .env is fine; env vars and flags still apply.
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Backend base URL (default $NUTRIFIT_BASE_URL or the production host)")
	rootCmd.PersistentFlags().StringVar(&sessionFile, "session-file", "", "Path to the session file (default $NUTRIFIT_SESSION_FILE or the user config dir)")
}
