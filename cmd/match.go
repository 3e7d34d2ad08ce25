package cmd

import (
	"encoding/json"
	"log"

	"github.com/jobhunter-ai/jobhunter/internal/jobs"
	"github.com/jobhunter-ai/jobhunter/internal/logger"
	"github.com/jobhunter-ai/jobhunter/internal/match"
	"github.com/jobhunter-ai/jobhunter/internal/report"
	"github.com/jobhunter-ai/jobhunter/internal/resume"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score and rank job postings against the resume without any ai calls",
	Run: func(cmd *cobra.Command, _ []string) {
		runMatch(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringP("csv", "c", "", "jobs csv file, overrides jobs.csv-file from the config")
	matchCmd.Flags().StringP("resume", "r", "", "resume text file, overrides resume-file from the config")
	matchCmd.Flags().IntP("top", "t", 0, "number of matches to return, overrides jobs.max-results")

	viper.BindPFlag("jobs.csv-file", matchCmd.Flags().Lookup("csv"))
	viper.BindPFlag("resume-file", matchCmd.Flags().Lookup("resume"))
	viper.BindPFlag("jobs.max-results", matchCmd.Flags().Lookup("top"))
}

func runMatch(_ *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config == nil || config.ResumeFile == "" {
		logger.Fatal("resume file is required under resume-file or via --resume")
	}

	if config.Jobs == nil || config.Jobs.CSVFile == "" {
		logger.Fatal("jobs csv file is required under jobs.csv-file or via --csv")
	}

	finder := match.NewFinder(
		resume.NewFile(config.ResumeFile),
		jobs.NewCSVSource(config.Jobs.CSVFile, logger),
		logger,
	)

	matched := finder.Find(config.Jobs.MaxResults)
	if matched.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no matching jobs found"))
		return
	}

	pretty, _ := json.MarshalIndent(matched.ReportByCompany(), "", "  ")
	logger.Info(string(pretty), zap.Int("matches count", matched.Len()))

	if config.OutputDir != "" {
		path, err := report.NewWriter(config.OutputDir).WriteJSON(report.MatchesFile, matched)
		if err != nil {
			logger.Fatal("writing matches report", zap.Error(err))
		}
		logger.Info("matches saved", zap.String("filename", path))
	}
}
