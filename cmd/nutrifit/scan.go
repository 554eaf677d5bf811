package nutrifit

import (
	"fmt"
	"sort"

	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/api"
	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/model"
	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/service"
	"github.com/spf13/cobra"
)

var (
	scanSave bool
	scanEat  string
	scanDate string
)

var scanCmd = &cobra.Command{
	Use:   "scan BARCODE",
	Short: "Look up a scanned barcode",
	Long:  "Look up a barcode (as decoded by your scanner) and print the product's nutrition facts. --save stores it in the fridge; --eat QUANTITY logs it as a meal for the date.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := dateOrToday(scanDate)
		if err != nil {
			return err
		}
		return withClient(func(c *api.Client) error {
			ctx := cmd.Context()
			product, err := c.LookupBarcode(ctx, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", product.Name, product.Brands)
			grade := model.NormalizeNutriScore(product.NutriScore)
			if grade != "" {
				fmt.Fprintf(out, "Nutri-score: %s\n", grade)
			}

			display := product.Nutriments.DisplayMap()
			labels := make([]string, 0, len(display))
			for label := range display {
				labels = append(labels, label)
			}
			sort.Strings(labels)
			for _, label := range labels {
				fmt.Fprintf(out, "  %-14s %s\n", label, display[label])
			}

			if scanSave {
				if err := c.SaveToFridge(ctx, product); err != nil {
					return err
				}
				fmt.Fprintln(out, "Saved to the fridge.")
			}
			if scanEat != "" {
				meal, err := service.ConsumeScannedProduct(ctx, c, date, product, scanEat)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Logged %s g/ml: %d kcal\n", meal.Quantity, service.DisplayCalories(meal.Calories))
			}
			return nil
		})
	},
}

func init() {
	scanCmd.Flags().BoolVar(&scanSave, "save", false, "Save the product to the fridge")
	scanCmd.Flags().StringVar(&scanEat, "eat", "", "Log the product as a meal, consumed quantity in g or ml")
	scanCmd.Flags().StringVar(&scanDate, "date", "", "Date YYYY-MM-DD for --eat (default today)")
	rootCmd.AddCommand(scanCmd)
}
