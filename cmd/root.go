/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/moshehbenavraham/luminaris-quest-sub000/internal/config"
	"github.com/moshehbenavraham/luminaris-quest-sub000/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "shadowfight",
	Short: "Face the shadow manifestations of Luminaris in turn-based combat",
	Long: `shadowfight resolves turn-based encounters between the player and a
shadow manifestation: a personification of self-doubt, isolation, overwhelm
or past pain that is overcome with Light Points and Shadow Points.

Start an encounter with 'fight', list the available shadows with
'manifestations' and review a finished encounter with 'replay'.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.shadowfight.yaml or ./.shadowfight.yaml)")
	rootCmd.PersistentFlags().StringSlice("data_dir", nil, "Extra directories holding manifestations/*.yaml catalogs")
	rootCmd.PersistentFlags().String("journal_dir", "", "Directory where encounter journals are written")
	rootCmd.PersistentFlags().String("log_level", "", "Log level (debug, info, warn, error)")

	_ = viper.BindPFlag("data_dirs", rootCmd.PersistentFlags().Lookup("data_dir"))
	_ = viper.BindPFlag("journal_dir", rootCmd.PersistentFlags().Lookup("journal_dir"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log_level"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".shadowfight")
	}

	config.BindEnv(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			cobra.CheckErr(fmt.Errorf("failed to read config: %w", err))
		}
	}
}

// loadConfig resolves the global viper instance into a validated Config.
func loadConfig() (*config.Config, error) {
	return config.Load(viper.GetViper())
}

// newLogger builds the process logger. Interactive commands own the terminal,
// so without an explicit log.file the log goes next to the journals.
func newLogger(cfg *config.Config, interactive bool) (*zap.Logger, error) {
	file := cfg.Log.File
	if file == "" && interactive {
		if err := os.MkdirAll(cfg.JournalDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", cfg.JournalDir, err)
		}
		file = filepath.Join(cfg.JournalDir, "shadowfight.log")
	}
	return logging.New(cfg.Log.Level, cfg.Log.Development, file)
}
