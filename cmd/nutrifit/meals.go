package nutrifit

import (
	"fmt"

	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/api"
	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/service"
	"github.com/spf13/cobra"
)

var (
	mealsDate    string
	mealName     string
	mealQuantity string
)

var mealsCmd = &cobra.Command{
	Use:   "meals",
	Short: "List, add or delete the day's meals",
}

var mealsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the day's meals",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := dateOrToday(mealsDate)
		if err != nil {
			return err
		}
		return withClient(func(c *api.Client) error {
			meals, err := c.ListMeals(cmd.Context(), date)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(meals) == 0 {
				fmt.Fprintf(out, "No meals recorded for %s.\n", date)
				return nil
			}
			for _, m := range meals {
				tag := ""
				if m.HasPlaceholderImage() {
					tag = " (AI estimate)"
				}
				fmt.Fprintf(out, "%s  %s  %s g/ml  %d kcal%s\n", m.ID, m.Name, m.Quantity, service.DisplayCalories(m.Calories), tag)
			}
			return nil
		})
	},
}

var mealsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a meal by name; calories are estimated by the AI endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := dateOrToday(mealsDate)
		if err != nil {
			return err
		}
		return withClient(func(c *api.Client) error {
			meal, err := c.AddMealFromFoodName(cmd.Context(), date, mealName, mealQuantity)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s g/ml, %d kcal estimated)\n",
				meal.Name, meal.Quantity, service.DisplayCalories(meal.Calories))
			return nil
		})
	},
}

var mealsDeleteCmd = &cobra.Command{
	Use:   "delete MEAL_ID",
	Short: "Delete a meal by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := dateOrToday(mealsDate)
		if err != nil {
			return err
		}
		return withClient(func(c *api.Client) error {
			if err := c.DeleteMeal(cmd.Context(), date, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Meal deleted.")
			return nil
		})
	},
}

func init() {
	mealsCmd.PersistentFlags().StringVar(&mealsDate, "date", "", "Date YYYY-MM-DD (default today)")

	mealsAddCmd.Flags().StringVar(&mealName, "name", "", "Food description, e.g. \"spaghetti bolognese\"")
	mealsAddCmd.Flags().StringVar(&mealQuantity, "quantity", "", "Quantity in g or ml")
	_ = mealsAddCmd.MarkFlagRequired("name")
	_ = mealsAddCmd.MarkFlagRequired("quantity")

	mealsCmd.AddCommand(mealsListCmd)
	mealsCmd.AddCommand(mealsAddCmd)
	mealsCmd.AddCommand(mealsDeleteCmd)
	rootCmd.AddCommand(mealsCmd)
}
