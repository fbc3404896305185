package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tilefish/packmule/internal/utils"
	"github.com/tilefish/packmule/pkg/export"
	"github.com/tilefish/packmule/pkg/selection"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

const (
	LOGO = `                   _                  _
	 _ __   __ _  ___| | ___ __ ___  _   _| | ___
	| '_ \ / _` + "`" + ` |/ __| |/ / '_ ` + "`" + ` _ \| | | | |/ _ \
	| |_) | (_| | (__|   <| | | | | | |_| | |  __/
	| .__/ \__,_|\___|_|\_\_| |_| |_|\__,_|_|\___|
	|_|

`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "packmule",
	Short: "Build item selections and export them for the Gift Hamper mod.",
	Long: LOGO + `packmule loads a game item dump, lets you pick a bounded set of items
with quantities, and writes the selection as a mod config file or a
Content Patcher pack, right from your command line.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.packmule.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("catalog", "", "", "Item dump source: a JSON file path or an http(s) URL")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".packmule")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := home + "/.packmule.yaml"
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				fmt.Printf("Error creating config file: %s", err)
			}
		}
	}

	// Set default values for all keys
	viper.SetDefault("catalog.source", "")
	viper.SetDefault("selection.capacity", selection.DefaultCapacity)
	viper.SetDefault("export.format", "config")
	viper.SetDefault("pack.author", "")
	viper.SetDefault("pack.version", "1.0.0")
	viper.SetDefault("pack.description", "")
	viper.SetDefault("pack.target_mod", export.DefaultTargetMod)
	viper.SetDefault("history.enabled", true)
	viper.SetDefault("history.dbpath", "")

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}

// catalogSource resolves the item dump source: flag first, then config.
func catalogSource() string {
	if src, _ := rootCmd.PersistentFlags().GetString("catalog"); src != "" {
		return src
	}
	return viper.GetString("catalog.source")
}
