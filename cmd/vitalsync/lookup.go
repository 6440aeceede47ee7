package vitalsync

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/service"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Look up nutrition, recipe and exercise data from external providers",
}

var (
	lookupProvider string
	lookupAPIKey   string
	lookupLimit    int
	lookupJSON     bool
)

var lookupSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search foods via USDA or Open Food Facts",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		return withStore(func(s *store.Store) error {
			results, err := service.SearchFoods(cmd.Context(), s, lookupProvider, lookupAPIKey, query, lookupLimit)
			if err != nil {
				return err
			}
			if lookupJSON {
				b, err := json.MarshalIndent(results, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal food search json: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			if len(results) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No foods found for %q\n", query)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "PROVIDER\tNAME\tBRAND\tKCAL\tPROTEIN\tCARBS\tFAT")
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.0f\t%.1f\t%.1f\t%.1f\n",
					r.Provider, r.Description, r.Brand, r.Calories, r.ProteinG, r.CarbsG, r.FatG)
			}
			return nil
		})
	},
}

var lookupBarcodeCmd = &cobra.Command{
	Use:   "barcode <code>",
	Short: "Look up a product by barcode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := service.LookupBarcode(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if result == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "No product found for barcode %s\n", args[0])
			return nil
		}
		if lookupJSON {
			b, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal barcode lookup json: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Food: %s\n", result.Description)
		fmt.Fprintf(cmd.OutOrStdout(), "Brand: %s\n", result.Brand)
		fmt.Fprintf(cmd.OutOrStdout(), "Serving: %s\n", result.ServingSize)
		fmt.Fprintf(cmd.OutOrStdout(), "Calories: %.1f\nProtein: %.1fg\nCarbs: %.1fg\nFat: %.1fg\nFiber: %.1fg\n",
			result.Calories, result.ProteinG, result.CarbsG, result.FatG, result.FiberG)
		return nil
	},
}

var lookupRecipeCmd = &cobra.Command{
	Use:   "recipe <query>",
	Short: "Search recipes via TheMealDB",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		recipes, err := service.SearchRecipes(cmd.Context(), query)
		if err != nil {
			return err
		}
		if len(recipes) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No recipes found for %q\n", query)
			return nil
		}
		for _, r := range recipes {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, %s)\n", r.Name, r.Category, r.Area)
			for _, ingredient := range r.Ingredients {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", ingredient)
			}
		}
		return nil
	},
}

var lookupExerciseCmd = &cobra.Command{
	Use:   "exercise <term>",
	Short: "Search the wger exercise catalog",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		term := strings.Join(args, " ")
		exercises, err := service.SearchExercises(cmd.Context(), term)
		if err != nil {
			return err
		}
		if len(exercises) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No exercises found for %q\n", term)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tCATEGORY")
		for _, e := range exercises {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", e.ID, e.Name, e.Category)
		}
		return nil
	},
}

func init() {
	lookupSearchCmd.Flags().StringVar(&lookupProvider, "provider", "", "Provider (usda or openfoodfacts)")
	lookupSearchCmd.Flags().StringVar(&lookupAPIKey, "api-key", "", "Provider API key (overrides config)")
	lookupSearchCmd.Flags().IntVar(&lookupLimit, "limit", 10, "Max results")
	lookupSearchCmd.Flags().BoolVar(&lookupJSON, "json", false, "Output as JSON")
	lookupBarcodeCmd.Flags().BoolVar(&lookupJSON, "json", false, "Output as JSON")

	lookupCmd.AddCommand(lookupSearchCmd)
	lookupCmd.AddCommand(lookupBarcodeCmd)
	lookupCmd.AddCommand(lookupRecipeCmd)
	lookupCmd.AddCommand(lookupExerciseCmd)
	rootCmd.AddCommand(lookupCmd)
}
