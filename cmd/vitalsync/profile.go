package vitalsync

import (
	"fmt"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/service"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your user profile",
}

var (
	profileName     string
	profileWeight   float64
	profileHeight   float64
	profileAge      int
	profileGender   string
	profileActivity string
	profileGoals    string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.UpdateProfileInput{
			Name:          stringPtrIfSet(cmd.Flags().Changed("name"), profileName),
			WeightKg:      floatPtrIfSet(cmd.Flags().Changed("weight"), profileWeight),
			HeightCm:      floatPtrIfSet(cmd.Flags().Changed("height"), profileHeight),
			Age:           intPtrIfSet(cmd.Flags().Changed("age"), profileAge),
			Gender:        stringPtrIfSet(cmd.Flags().Changed("gender"), profileGender),
			ActivityLevel: stringPtrIfSet(cmd.Flags().Changed("activity"), profileActivity),
			Goals:         stringPtrIfSet(cmd.Flags().Changed("goals"), profileGoals),
		}
		return withStore(func(s *store.Store) error {
			if err := service.UpdateProfile(s, in); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile updated")
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if s.Profile == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile created yet. Run: vitalsync profile set")
				return nil
			}
			p := s.Profile
			fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\n", p.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Weight: %.1f kg\n", p.WeightKg)
			fmt.Fprintf(cmd.OutOrStdout(), "Height: %.1f cm\n", p.HeightCm)
			fmt.Fprintf(cmd.OutOrStdout(), "Age: %d\n", p.Age)
			fmt.Fprintf(cmd.OutOrStdout(), "Gender: %s\n", p.Gender)
			fmt.Fprintf(cmd.OutOrStdout(), "Activity: %s\n", p.ActivityLevel)
			fmt.Fprintf(cmd.OutOrStdout(), "Goals: %s\n", p.Goals)
			return nil
		})
	},
}

var profileBMICmd = &cobra.Command{
	Use:   "bmi",
	Short: "Calculate BMI from the stored profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if s.Profile == nil || s.Profile.WeightKg <= 0 || s.Profile.HeightCm <= 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Set weight and height first: vitalsync profile set --weight 70 --height 175")
				return nil
			}
			bmi := service.CalculateBMI(s.Profile.WeightKg, s.Profile.HeightCm)
			fmt.Fprintf(cmd.OutOrStdout(), "BMI: %.2f\n", bmi)
			return nil
		})
	},
}

var profileNeedsCmd = &cobra.Command{
	Use:   "needs",
	Short: "Estimate daily calorie needs (Mifflin-St Jeor)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			needs := service.CalculateCalorieNeeds(s.Profile)
			fmt.Fprintf(cmd.OutOrStdout(), "Estimated daily calorie needs: %.0f kcal\n", needs)
			if s.Profile == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "(no profile stored; computed from default values)")
			}
			return nil
		})
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "Gender")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "Activity level (sedentary, lightly_active, moderately_active, very_active, extremely_active)")
	profileSetCmd.Flags().StringVar(&profileGoals, "goals", "", "Free-text goals")

	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileBMICmd)
	profileCmd.AddCommand(profileNeedsCmd)
	rootCmd.AddCommand(profileCmd)
}
