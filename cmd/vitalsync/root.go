package vitalsync

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "vitalsync",
	Short: "vitalsync tracks your health and fitness from the terminal",
	Long:  "vitalsync is a local-first health diary CLI: food, exercise, sleep, mood, water, body measurements, addictions, goals, streak achievements and nutrition lookups.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite data file")
}
