/*
Copyright © 2023 Jonathan Taylor <jonrtaylor12@gmail.com>
*/

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"pipguide/config"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "pipguide",
	Short: "384-well plate diagrams for pipetting guidance",
	Long: `pipguide draws a 384-well plate to scale and highlights the well
to pipette next, together with its row and column.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	if envFile == "" {
		return config.Load()
	}
	return config.Load(envFile)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "dotenv file to load (default .env)")
}
