package vitalsync

import (
	"fmt"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/service"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
	"github.com/spf13/cobra"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Manage the food diary",
}

var (
	foodName     string
	foodServing  string
	foodCalories float64
	foodProtein  float64
	foodCarbs    float64
	foodFat      float64
	foodFiber    float64
	foodMeal     string
	foodQty      float64
	foodDate     string
)

var foodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a food diary entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.FoodItemInput{
			Name:        foodName,
			ServingSize: foodServing,
			Calories:    foodCalories,
			ProteinG:    foodProtein,
			CarbsG:      foodCarbs,
			FatG:        foodFat,
			FiberG:      floatPtrIfSet(cmd.Flags().Changed("fiber"), foodFiber),
			Meal:        foodMeal,
			Quantity:    foodQty,
			Date:        foodDate,
		}
		return withStore(func(s *store.Store) error {
			id, err := service.AddFood(s, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added food entry %s\n", id)
			return nil
		})
	},
}

var foodListDate string

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List food entries for a date (default today)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			date := foodListDate
			if date == "" {
				date = s.TodayDate()
			}
			items := service.FoodItemsForDate(s, date)
			if len(items) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No food entries for %s\n", date)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tMEAL\tNAME\tQTY\tKCAL\tPROTEIN\tCARBS\tFAT")
			for _, item := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.1f\t%.0f\t%.1f\t%.1f\t%.1f\n",
					item.ID, item.Meal, item.Name, item.Quantity,
					item.Calories*item.Quantity, item.ProteinG*item.Quantity,
					item.CarbsG*item.Quantity, item.FatG*item.Quantity)
			}
			return nil
		})
	},
}

var foodDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a food entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := s.DeleteFoodItem(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted food entry %s\n", args[0])
			return nil
		})
	},
}

var foodSummaryDate string

var foodSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Nutrition totals for a date (default today)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			date := foodSummaryDate
			if date == "" {
				date = s.TodayDate()
			}
			sum := service.NutritionSummaryFor(s, date)
			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s (%d entries)\n", sum.Date, sum.Items)
			fmt.Fprintf(cmd.OutOrStdout(), "Calories: %.0f / %d kcal\n", sum.Calories, s.Goals.Calories)
			fmt.Fprintf(cmd.OutOrStdout(), "Protein: %.1f / %.0f g\n", sum.ProteinG, s.Goals.ProteinG)
			fmt.Fprintf(cmd.OutOrStdout(), "Carbs: %.1f / %.0f g\n", sum.CarbsG, s.Goals.CarbsG)
			fmt.Fprintf(cmd.OutOrStdout(), "Fat: %.1f / %.0f g\n", sum.FatG, s.Goals.FatG)
			fmt.Fprintf(cmd.OutOrStdout(), "Fiber: %.1f g\n", sum.FiberG)
			return nil
		})
	},
}

func init() {
	foodAddCmd.Flags().StringVar(&foodName, "name", "", "Food name")
	foodAddCmd.Flags().StringVar(&foodServing, "serving", "", "Serving size description")
	foodAddCmd.Flags().Float64Var(&foodCalories, "calories", 0, "Calories per serving")
	foodAddCmd.Flags().Float64Var(&foodProtein, "protein", 0, "Protein per serving (g)")
	foodAddCmd.Flags().Float64Var(&foodCarbs, "carbs", 0, "Carbs per serving (g)")
	foodAddCmd.Flags().Float64Var(&foodFat, "fat", 0, "Fat per serving (g)")
	foodAddCmd.Flags().Float64Var(&foodFiber, "fiber", 0, "Fiber per serving (g)")
	foodAddCmd.Flags().StringVar(&foodMeal, "meal", "", "Meal (breakfast, lunch, dinner, snack)")
	foodAddCmd.Flags().Float64Var(&foodQty, "qty", 1, "Quantity of servings")
	foodAddCmd.Flags().StringVar(&foodDate, "date", "", "Date (YYYY-MM-DD, default today)")

	foodListCmd.Flags().StringVar(&foodListDate, "date", "", "Date (YYYY-MM-DD, default today)")
	foodSummaryCmd.Flags().StringVar(&foodSummaryDate, "date", "", "Date (YYYY-MM-DD, default today)")

	foodCmd.AddCommand(foodAddCmd)
	foodCmd.AddCommand(foodListCmd)
	foodCmd.AddCommand(foodDeleteCmd)
	foodCmd.AddCommand(foodSummaryCmd)
	rootCmd.AddCommand(foodCmd)
}
