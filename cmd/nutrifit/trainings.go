package nutrifit

import (
	"fmt"
	"strings"

	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/api"
	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/model"
	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/service"
	"github.com/spf13/cobra"
)

var trainingsDoneDate string

var trainingsCmd = &cobra.Command{
	Use:   "trainings",
	Short: "List training programs for your stored goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(c *api.Client) error {
			goal, programs, err := service.TrainingsForUser(cmd.Context(), c)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Programs for goal %s:\n", goal)
			if len(programs) == 0 {
				fmt.Fprintln(out, "  none available")
				return nil
			}
			for _, p := range programs {
				fmt.Fprintf(out, "%s  %s (~%d kcal)\n", p.ID, p.Name, p.TotalCalories)
				for _, e := range p.Exercises {
					fmt.Fprintf(out, "    %s  %dx%d  %d kcal  [%s]\n",
						e.Name, e.Series, e.Repetitions, e.Calories, strings.Join(e.Muscles, ", "))
				}
			}
			return nil
		})
	},
}

var trainingsDoneCmd = &cobra.Command{
	Use:   "done PROGRAM_ID",
	Short: "Record a finished program; its calories are added server-side",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := dateOrToday(trainingsDoneDate)
		if err != nil {
			return err
		}
		return withClient(func(c *api.Client) error {
			ctx := cmd.Context()
			_, programs, err := service.TrainingsForUser(ctx, c)
			if err != nil {
				return err
			}
			var program *model.TrainingProgram
			for i := range programs {
				if programs[i].ID == args[0] {
					program = &programs[i]
					break
				}
			}
			if program == nil {
				return fmt.Errorf("no program %q for your goal", args[0])
			}
			if err := service.RecordWorkout(ctx, c, date, *program); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s: +%d kcal burned\n", program.Name, program.TotalCalories)
			return nil
		})
	},
}

func init() {
	trainingsDoneCmd.Flags().StringVar(&trainingsDoneDate, "date", "", "Date YYYY-MM-DD (default today)")
	trainingsCmd.AddCommand(trainingsDoneCmd)
	rootCmd.AddCommand(trainingsCmd)
}
