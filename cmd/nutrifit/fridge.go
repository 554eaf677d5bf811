package nutrifit

import (
	"fmt"
	"strings"

	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/api"
	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/model"
	"github.com/spf13/cobra"
)

var fridgeCmd = &cobra.Command{
	Use:   "fridge",
	Short: "Manage the saved product inventory",
}

var fridgeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the fridge contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(c *api.Client) error {
			products, err := c.ListFridge(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(products) == 0 {
				fmt.Fprintln(out, "The fridge is empty.")
				return nil
			}
			for _, p := range products {
				grade := model.NormalizeNutriScore(p.NutriScore)
				if grade == "" {
					grade = "-"
				}
				fmt.Fprintf(out, "%s  %s (%s)  nutri-score %s  %s\n", p.ID, p.Name, p.Brands, grade, p.Quantity)
				if len(p.Allergens) > 0 {
					fmt.Fprintf(out, "    allergens: %s\n", strings.Join(p.Allergens, ", "))
				}
			}
			return nil
		})
	},
}

var fridgeDeleteCmd = &cobra.Command{
	Use:   "delete PRODUCT_ID",
	Short: "Remove a product from the fridge",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(c *api.Client) error {
			if err := c.DeleteFromFridge(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Product removed from the fridge.")
			return nil
		})
	},
}

func init() {
	fridgeCmd.AddCommand(fridgeListCmd)
	fridgeCmd.AddCommand(fridgeDeleteCmd)
	rootCmd.AddCommand(fridgeCmd)
}
