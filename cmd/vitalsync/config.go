package vitalsync

import (
	"fmt"
	"sort"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/service"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage local configuration",
}

var (
	cfgUSDAAPIKey   string
	cfgFoodProvider string
)

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			updates := 0
			if cmd.Flags().Changed("usda-api-key") {
				if err := service.SetConfig(s, service.ConfigUSDAAPIKey, cfgUSDAAPIKey); err != nil {
					return err
				}
				updates++
			}
			if cmd.Flags().Changed("food-provider") {
				if err := service.SetConfig(s, service.ConfigFoodProvider, cfgFoodProvider); err != nil {
					return err
				}
				updates++
			}
			if updates == 0 {
				return fmt.Errorf("set at least one flag")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d config value(s)\n", updates)
			return nil
		})
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if len(s.Config) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No configuration set")
				return nil
			}
			keys := make([]string, 0, len(s.Config))
			for k := range s.Config {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", k, s.Config[k])
			}
			return nil
		})
	},
}

func init() {
	configSetCmd.Flags().StringVar(&cfgUSDAAPIKey, "usda-api-key", "", "USDA FoodData Central API key")
	configSetCmd.Flags().StringVar(&cfgFoodProvider, "food-provider", "", "Default food search provider (usda or openfoodfacts)")

	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}
