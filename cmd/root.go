package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/audience-scout/internal/dictionary"
)

const (
	app = "audience-scout"
)

type Config struct {
	Audience string `mapstructure:"audience"`
	Post     *struct {
		File string `mapstructure:"file"`
		Text string `mapstructure:"text"`
		URL  string `mapstructure:"url"`
	} `mapstructure:"post"`
	ExcludeFile string `mapstructure:"exclude-file"`
	MinScore    int    `mapstructure:"min-score"`
	OutputDir   string `mapstructure:"output-dir"`
	Workers     int    `mapstructure:"workers"`

	Dictionaries map[string]map[string][]string `mapstructure:"dictionaries"`
	ICP          *dictionary.ICPConfig          `mapstructure:"icp"`
	Exclusions   []string                       `mapstructure:"exclusions"`
	PostKeywords []string                       `mapstructure:"post-keywords"`
}

// Overrides assembles the dictionary store overrides from the config.
func (c *Config) Overrides() *dictionary.Overrides {
	return &dictionary.Overrides{
		Dictionaries: c.Dictionaries,
		ICP:          c.ICP,
		Exclusions:   c.Exclusions,
		PostKeywords: c.PostKeywords,
	}
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "audience-scout is a simple cli for scoring audience profiles against an ICP and analyzing post performance",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("exclude-file", "AUDIENCE_SCOUT_EXCLUDE_FILE"); err != nil {
		log.Fatalf("binding AUDIENCE_SCOUT_EXCLUDE_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is audience-scout.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for run command now. If there is no config, we can skip initialization
	if runCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// The config file is optional; flags can describe a full run. A file
	// that exists but does not parse is fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
