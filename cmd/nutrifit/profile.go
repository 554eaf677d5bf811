package nutrifit

import (
	"fmt"

	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/api"
	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/model"
	"github.com/spf13/cobra"
)

var (
	profileAge      float64
	profileWeight   float64
	profileHeight   float64
	profileSex      string
	profileActivity string
	profileGoal     string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(c *api.Client) error {
			p, err := c.FetchProfile(cmd.Context())
			if err != nil {
				return err
			}
			sex := "male"
			if p.Female {
				sex = "female"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Age: %.0f\n", p.Age)
			fmt.Fprintf(out, "Weight: %.1f kg\n", p.WeightKg)
			fmt.Fprintf(out, "Height: %.1f cm\n", p.HeightCm)
			fmt.Fprintf(out, "Sex: %s\n", sex)
			fmt.Fprintf(out, "Activity: %s\n", p.Activity)
			fmt.Fprintf(out, "Goal: %s\n", p.Goal)
			fmt.Fprintf(out, "Daily target: %d kcal\n", int(p.MaxCalories))
			return nil
		})
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update the profile (the server recomputes the calorie target)",
	RunE: func(cmd *cobra.Command, args []string) error {
		activity, err := model.ParseActivityLevel(profileActivity)
		if err != nil {
			return err
		}
		goal, err := model.ParseGoal(profileGoal)
		if err != nil {
			return err
		}
		female := false
		switch profileSex {
		case "female":
			female = true
		case "male":
		default:
			return fmt.Errorf("invalid --sex %q (expected male or female)", profileSex)
		}
		return withClient(func(c *api.Client) error {
			profile := model.UserProfile{
				Age:      profileAge,
				WeightKg: profileWeight,
				HeightCm: profileHeight,
				Female:   female,
				Activity: activity,
				Goal:     goal,
			}
			if err := c.SaveProfile(cmd.Context(), profile); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile saved.")
			return nil
		})
	},
}

func init() {
	profileSetCmd.Flags().Float64Var(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().StringVar(&profileSex, "sex", "male", "male or female")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "SEDENTARY, ACTIVE or SPORTIVE")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "WEIGHTLOSS or WEIGHTGAIN")
	_ = profileSetCmd.MarkFlagRequired("age")
	_ = profileSetCmd.MarkFlagRequired("weight")
	_ = profileSetCmd.MarkFlagRequired("height")
	_ = profileSetCmd.MarkFlagRequired("activity")
	_ = profileSetCmd.MarkFlagRequired("goal")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}
