package nutrifit

import (
	"fmt"
	"strings"

	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/api"
	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/service"
	"github.com/spf13/cobra"
)

var dishCmd = &cobra.Command{
	Use:   "dish",
	Short: "Get a dish recommendation from your fridge contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(c *api.Client) error {
			dish, err := service.DishFromFridge(cmd.Context(), c)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", dish.Name, dish.CookTime)
			fmt.Fprintln(out, dish.Description)
			if len(dish.Food) > 0 {
				fmt.Fprintf(out, "From your fridge: %s\n", strings.Join(dish.Food, ", "))
			}
			if len(dish.ExtraFood) > 0 {
				fmt.Fprintf(out, "You also need: %s\n", strings.Join(dish.ExtraFood, ", "))
			}
			for i, step := range dish.PreparationStep {
				fmt.Fprintf(out, "%d. %s\n", i+1, step)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(dishCmd)
}
