package nutrifit

import (
	"context"
	"fmt"

	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/api"
	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/service"
	"github.com/spf13/cobra"
)

var (
	todayDate  string
	todaySteps float64
)

// flagSteps adapts a --steps reading to the service's step provider. The
// CLI has no health sensor; the user passes the cumulative count their
// device reports.
type flagSteps float64

func (f flagSteps) StepsForDate(ctx context.Context, date string) (float64, error) {
	return float64(f), nil
}

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the day's calories, burn and steps",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := dateOrToday(todayDate)
		if err != nil {
			return err
		}
		return withClient(func(c *api.Client) error {
			ctx := cmd.Context()
			var provider service.StepProvider
			if cmd.Flags().Changed("steps") {
				provider = flagSteps(todaySteps)
			}
			if _, err := service.SyncDay(ctx, c, provider, date); err != nil {
				return err
			}
			summary, err := service.DaySummary(ctx, c, date)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", summary.Date)
			fmt.Fprintf(out, "Consumed: %d kcal\n", service.DisplayCalories(summary.CaloriesUsed))
			fmt.Fprintf(out, "Burned: %d kcal\n", service.DisplayCalories(summary.CaloriesBurned))
			fmt.Fprintf(out, "Steps: %d\n", int(summary.Steps))
			if summary.MaxCalories > 0 {
				fmt.Fprintf(out, "Target: %d kcal | Remaining: %d kcal\n",
					service.DisplayCalories(summary.MaxCalories),
					service.DisplayCalories(summary.RemainingCalories))
			} else {
				fmt.Fprintln(out, "Target: not set (run `nutrifit profile set`)")
			}
			return nil
		})
	},
}

func init() {
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
	todayCmd.Flags().Float64Var(&todaySteps, "steps", 0, "Cumulative step count reported by your device for the date")
	rootCmd.AddCommand(todayCmd)
}
