package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tablekit/imexport/internal/logging"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "mapgen",
	Short: "Generate and validate column-to-field mapping files",
	Long: `mapgen works with the JSON mapping files the im-/export framework
reads: flat documents of spreadsheet column name to record field name.

  mapgen generate --table Contact --fields firstName,lastName,mail --out contact.json
  mapgen validate contact.json`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(viper.GetString("log.level"), viper.GetString("log.format"))
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./mapgen.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")

	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
}

// initConfig reads in the config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("mapgen")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("MAPGEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
