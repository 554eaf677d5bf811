package nutrifit

import (
	"fmt"

	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/api"
	"github.com/spf13/cobra"
)

var (
	signUpName   string
	authEmail    string
	authPassword string
)

var signUpCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a NutriFit account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(c *api.Client) error {
			if err := c.SignUp(cmd.Context(), signUpName, authEmail, authPassword); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Account created. Run `nutrifit signin` to log in.")
			return nil
		})
	},
}

var signInCmd = &cobra.Command{
	Use:   "signin",
	Short: "Sign in and store the session locally",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(c *api.Client) error {
			s, err := c.SignIn(cmd.Context(), authEmail, authPassword)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as user %s\n", s.UserID)
			return nil
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(c *api.Client) error {
			if err := c.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		})
	},
}

func init() {
	signUpCmd.Flags().StringVar(&signUpName, "name", "", "Display name")
	signUpCmd.Flags().StringVar(&authEmail, "email", "", "Email address")
	signUpCmd.Flags().StringVar(&authPassword, "password", "", "Password")
	_ = signUpCmd.MarkFlagRequired("name")
	_ = signUpCmd.MarkFlagRequired("email")
	_ = signUpCmd.MarkFlagRequired("password")

	signInCmd.Flags().StringVar(&authEmail, "email", "", "Email address")
	signInCmd.Flags().StringVar(&authPassword, "password", "", "Password")
	_ = signInCmd.MarkFlagRequired("email")
	_ = signInCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(signUpCmd)
	rootCmd.AddCommand(signInCmd)
	rootCmd.AddCommand(logoutCmd)
}
