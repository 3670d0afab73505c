package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/audience-scout/internal/audience"
	"github.com/spigell/audience-scout/internal/dictionary"
	"github.com/spigell/audience-scout/internal/filtering"
	applog "github.com/spigell/audience-scout/internal/logger"
	"github.com/spigell/audience-scout/internal/post"
	"github.com/spigell/audience-scout/internal/report"
	"github.com/spigell/audience-scout/internal/source"
)

const (
	PromptExit                = "Exit"
	PromptReportByFunction    = "Report by function"
	PromptShowProspect        = "Show prospect details"
	PromptProfilesToFile      = "Dump profiles to file"
	PromptAppendToExcludeFile = "Append prospect companies to exclude file"

	defaultMinScore = 70
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "Next action?",
	Items: []string{PromptExit, PromptReportByFunction, PromptShowProspect, PromptProfilesToFile, PromptAppendToExcludeFile},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the audience-scout main command",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("audience", "a", "", "CSV file with 'Name' and 'Title' columns")
	runCmd.Flags().StringP("post", "p", "", "text file containing the post to analyze")
	runCmd.Flags().IntP("min-score", "m", defaultMinScore, "minimum relevance score for the prospect export")
	runCmd.Flags().StringP("output-dir", "o", ".", "directory for produced artifacts")
	runCmd.Flags().BoolP("auto-approve", "y", false, "do not present the action menu after the run")
	runCmd.Flags().StringP("exclude-file", "e", "", "special file with terms to exclude. Default is unset.")

	viper.BindPFlag("audience", runCmd.Flags().Lookup("audience"))
	viper.BindPFlag("post.file", runCmd.Flags().Lookup("post"))
	viper.BindPFlag("min-score", runCmd.Flags().Lookup("min-score"))
	viper.BindPFlag("output-dir", runCmd.Flags().Lookup("output-dir"))
	viper.BindPFlag("exclude-file", runCmd.Flags().Lookup("exclude-file"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := applog.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the audience-scout", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		config = &Config{}
	}

	if config.Audience == "" {
		logger.Fatal("audience csv is required",
			zap.String("hint", "set the 'audience' key in the configuration file or pass --audience"),
		)
	}

	store, err := dictionary.New(config.Overrides())
	if err != nil {
		logger.Fatal("building dictionaries", zap.Error(err))
	}

	timestamp := time.Now().Format("20060102_150405")
	outputDir := config.OutputDir
	if outputDir == "" {
		outputDir = "."
	}

	analysis := analyzePost(config, store, logger, outputDir, timestamp)

	// The title keyword bonus applies only when a post was analyzed.
	var postKeywords []string
	if analysis != nil {
		postKeywords = store.PostKeywords()
	}

	profiles, err := audience.LoadCSV(config.Audience)
	if err != nil {
		logger.Fatal("loading audience rows", zap.Error(err), zap.String("path", config.Audience))
	}

	logger.Info("loading audience rows", zap.Int("count", profiles.Len()))

	filters := []filtering.Filter{
		filtering.NewNoise(),
		filtering.NewExclusion(),
		filtering.NewExcludeFile(),
	}

	deps := filtering.Deps{Store: store, Logger: logger}
	filterCfg := &filtering.Config{ExcludeFile: viper.GetString("exclude-file")}

	if filterCfg.ExcludeFile == "" {
		filtering.DisableByName(filters, "exclude_file", "no exclude file configured")
	}

	for _, status := range filtering.Describe(filters) {
		logger.Debug("filter status",
			zap.String("name", status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.String("reason", status.Reason),
		)
	}

	filtered, err := filtering.Run(ctx, filterCfg, deps, filters, profiles)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}
	profiles = filtered

	if profiles.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no profiles left after filters"))
		return
	}

	pipeline := audience.NewPipeline(store, logger, config.Workers)
	if err := pipeline.Run(ctx, profiles, postKeywords); err != nil {
		logger.Fatal("scoring profiles", zap.Error(err))
	}

	profiles.SortByRelevance()

	audienceFile := filepath.Join(outputDir, fmt.Sprintf("audience_intelligence_%s.csv", timestamp))
	if err := profiles.WriteCSV(audienceFile); err != nil {
		logger.Fatal("writing audience csv", zap.Error(err))
	}

	logger.Info("audience analyzed",
		zap.Int("profiles", profiles.Len()),
		zap.Int("excluded", profiles.ExcludedCount()),
		zap.Float64("average_score", profiles.AverageScore()),
		zap.String("output", audienceFile),
	)

	minScore := config.MinScore
	if minScore <= 0 {
		minScore = defaultMinScore
	}

	prospects := profiles.Prospects(minScore)
	if prospects.Len() > 0 {
		prospectsFile := filepath.Join(outputDir, fmt.Sprintf("high_value_prospects_%s.csv", timestamp))
		if err := prospects.WriteCSV(prospectsFile); err != nil {
			logger.Fatal("writing prospects csv", zap.Error(err))
		}

		counts := prospects.CountByPriority()
		logger.Info("exported prospects",
			zap.Int("count", prospects.Len()),
			zap.Int("min_score", minScore),
			zap.Int("high_priority", counts[audience.PriorityHigh]),
			zap.Int("medium_priority", counts[audience.PriorityMedium]),
			zap.Int("low_priority", counts[audience.PriorityLow]),
			zap.String("output", prospectsFile),
		)
	} else {
		logger.Info("no prospects found", zap.Int("min_score", minScore))
	}

	reportFile := filepath.Join(outputDir, fmt.Sprintf("audience_report_%s.txt", timestamp))
	reportText := report.Render(report.Params{
		GeneratedAt: time.Now(),
		PostURL:     postURL(config),
		Post:        analysis,
		Audience:    profiles,
	})
	if err := os.WriteFile(reportFile, []byte(reportText), 0o644); err != nil {
		logger.Fatal("writing combined report", zap.Error(err))
	}

	logger.Info("combined report saved", zap.String("output", reportFile))

	if cmd.Flag("auto-approve").Value.String() == "true" {
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, logger, profiles, prospects); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, profiles *audience.Profiles, prospects *audience.Prospects) error {
	switch action {
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	case PromptReportByFunction:
		report, err := profiles.ReportByFunction()
		if err != nil {
			return fmt.Errorf("report by function: %w", err)
		}
		pretty, _ := json.MarshalIndent(report, "", "  ")
		logger.Info(string(pretty), zap.Int("profiles count", profiles.Len()))
		return nil
	case PromptShowProspect:
		return showProspect(logger, profiles, prospects)
	case PromptProfilesToFile:
		filename, err := profiles.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptAppendToExcludeFile:
		return appendToExcludeFile(logger, profiles, prospects)
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func showProspect(logger *zap.Logger, profiles *audience.Profiles, prospects *audience.Prospects) error {
	if prospects.Len() == 0 {
		logger.Warn("no prospects to show")
		return nil
	}

	names := make([]string, 0, prospects.Len())
	for _, prospect := range prospects.Items {
		names = append(names, prospect.Name)
	}

	namePrompt := promptui.Select{Label: "Which prospect?", Items: names}
	_, name, err := namePrompt.Run()
	if err != nil {
		return err
	}

	profile := profiles.FindByName(name)
	if profile == nil {
		return fmt.Errorf("profile %q not found", name)
	}

	pretty, _ := json.MarshalIndent(profile, "", "  ")
	logger.Info(string(pretty))
	return nil
}

func appendToExcludeFile(logger *zap.Logger, profiles *audience.Profiles, prospects *audience.Prospects) error {
	excludeFile := viper.GetString("exclude-file")
	if excludeFile == "" {
		logger.Warn("exclude file is not configured",
			zap.String("hint", "pass --exclude-file or set the 'exclude-file' key in the configuration file"),
		)
		return nil
	}

	excluded := &audience.ExcludedTerms{}
	if _, err := os.Stat(excludeFile); err == nil {
		existing, err := audience.GetExcludedTermsFromFile(excludeFile)
		if err != nil {
			return err
		}
		excluded = existing
	}

	fresh := prospects.ToExcludedTerms()
	excluded.Append(fresh)

	if err := excluded.ToFile(excludeFile); err != nil {
		return err
	}

	logger.Info("appended to exclude file", zap.String("filename", excludeFile))

	// The loaded collection follows the file: further actions in this
	// session no longer see profiles at the excluded companies.
	removed := profiles.Exclude(audience.ProfileCompanyField, fresh.Terms())
	if len(removed) > 0 {
		logger.Info("dropped profiles at the excluded companies", zap.Strings("profiles", removed))
	}
	return nil
}

// analyzePost runs the optional post pipeline. A missing or unreadable
// post input is not fatal; the audience pipeline still runs.
func analyzePost(config *Config, store *dictionary.Store, logger *zap.Logger, outputDir, timestamp string) *post.Analysis {
	if config.Post == nil || (config.Post.File == "" && config.Post.Text == "") {
		return nil
	}

	text, err := source.Load(source.Input{
		Name:  "post text",
		Value: config.Post.Text,
		File:  config.Post.File,
	})
	if err != nil {
		logger.Warn("skipping post analysis", zap.Error(err))
		return nil
	}

	analysis := post.Analyze(text, store.CTAPhrases(), store.EngagementWords())

	logger.Info("post analyzed",
		zap.String("predicted_performance", analysis.PredictedPerformance),
		zap.Int("performance_score", analysis.PerformanceScore),
		zap.String("factors", analysis.PerformanceReason),
		zap.Int("word_count", analysis.WordCount),
		zap.String("preview", applog.TruncateForLog(text, 120)),
	)

	analysisFile := filepath.Join(outputDir, fmt.Sprintf("post_performance_analysis_%s.json", timestamp))
	payload, err := json.MarshalIndent(analysis, "", "  ")
	if err == nil {
		err = os.WriteFile(analysisFile, payload, 0o644)
	}
	if err != nil {
		logger.Warn("saving post analysis", zap.Error(err))
		return &analysis
	}

	logger.Info("post analysis saved", zap.String("output", analysisFile))

	return &analysis
}

func postURL(config *Config) string {
	if config.Post == nil {
		return ""
	}
	return config.Post.URL
}
