package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/jobhunter-ai/jobhunter/internal/ai"
	"github.com/jobhunter-ai/jobhunter/internal/ai/gemini"
	"github.com/jobhunter-ai/jobhunter/internal/cluster"
	"github.com/jobhunter-ai/jobhunter/internal/enhance"
	"github.com/jobhunter-ai/jobhunter/internal/interview"
	"github.com/jobhunter-ai/jobhunter/internal/jobs"
	"github.com/jobhunter-ai/jobhunter/internal/logger"
	"github.com/jobhunter-ai/jobhunter/internal/match"
	"github.com/jobhunter-ai/jobhunter/internal/report"
	"github.com/jobhunter-ai/jobhunter/internal/resume"
	"github.com/jobhunter-ai/jobhunter/internal/secrets"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptReportByCompany = "Report matches by company"
	PromptInterviewPrep   = "Generate interview prep for the matched jobs"
	PromptMatchesToFile   = "Dump matches to file"
	PromptExit            = "Exit"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptReportByCompany, PromptInterviewPrep, PromptMatchesToFile, PromptExit},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full resume enhancement and job matching pipeline",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("auto-approve", "y", false, "write all reports without asking and exit")
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the jobhunter", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	if config.ResumeFile == "" {
		logger.Fatal("resume file is required under resume-file")
	}

	if config.Jobs == nil || config.Jobs.CSVFile == "" {
		logger.Fatal("jobs csv file is required under jobs.csv-file")
	}

	resumeText, err := resume.NewFile(config.ResumeFile).Load()
	if err != nil {
		logger.Fatal("reading resume", zap.Error(err))
	}

	generator := prepareGenerator(ctx, config, logger)

	writer := report.NewWriter(config.OutputDir)

	if generator != nil {
		enhanceResume(ctx, generator, config, resumeText, writer, logger)
	}

	logger.Info("matching jobs against resume", zap.String("csv", config.Jobs.CSVFile))

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

	if path, err := writer.WriteJSON(report.MatchesFile, matched); err != nil {
		logger.Error("writing matches report", zap.Error(err))
	} else {
		logger.Info("matches saved", zap.String("filename", path))
	}

	groups := cluster.NonEmpty(cluster.New(clustersFromConfig(config), logger).Cluster(matched))
	logger.Info("clustered matches", zap.Int("groups", len(groups)))

	if cmd.Flag("auto-approve").Value.String() == "true" {
		if err := interviewPrep(ctx, generator, groups, writer, logger); err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(ctx, action, generator, matched, groups, writer, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(ctx context.Context, action string, generator ai.Generator, matched *jobs.Postings, groups []*cluster.Group, writer *report.Writer, logger *zap.Logger) error {
	switch action {
	case PromptReportByCompany:
		pretty, _ := json.MarshalIndent(matched.ReportByCompany(), "", "  ")
		logger.Info(string(pretty), zap.Int("matches count", matched.Len()))
		return nil
	case PromptInterviewPrep:
		return interviewPrep(ctx, generator, groups, writer, logger)
	case PromptMatchesToFile:
		filename, err := matched.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump matches to file: %w", err)
		}
		logger.Info("dumping matches to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// prepareGenerator builds the gemini generator when the ai section enables
// it. A missing or broken ai setup is not fatal: the pipeline still matches
// and ranks without the llm steps.
func prepareGenerator(ctx context.Context, config *Config, logger *zap.Logger) ai.Generator {
	if config.AI == nil || !config.AI.Enabled {
		logger.Info("ai is disabled, skipping resume enhancement and interview prep")
		return nil
	}

	if config.AI.Gemini == nil {
		logger.Warn("skipping ai steps", zap.String("reason", "gemini configuration is required when ai is enabled"))
		return nil
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: config.AI.Gemini.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		logger.Warn("skipping ai steps",
			zap.Error(err),
			zap.String("hint", "set ai.gemini.api-key-file or the GEMINI_API_KEY environment variable"),
		)
		return nil
	}

	genLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", config.AI.Gemini.Model),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, config.AI.Gemini.Model, config.AI.Gemini.MaxRetries, genLogger)
	if err != nil {
		logger.Warn("skipping ai steps", zap.Error(err))
		return nil
	}

	return generator
}

// enhanceResume runs the llm enhancement pass and stores its artifacts. A
// failure here degrades to matching against the original resume.
func enhanceResume(ctx context.Context, generator ai.Generator, config *Config, resumeText string, writer *report.Writer, logger *zap.Logger) {
	jobDescription := ""
	if config.JobDescriptionFile != "" {
		text, err := resume.NewFile(config.JobDescriptionFile).Load()
		if err != nil {
			logger.Error("reading job description, skipping gap detection", zap.Error(err))
		} else {
			jobDescription = text
		}
	}

	logger.Info("improving resume", zap.String("target_role", config.TargetRole))

	enhancement, err := enhance.New(generator, logger).Enhance(ctx, resumeText, jobDescription, config.TargetRole)
	if err != nil {
		logger.Error("resume enhancement failed, continuing with the original resume", zap.Error(err))
		return
	}

	artifacts := map[string]string{
		report.ImprovedResumeFile: enhancement.ImprovedResume,
		report.GapsFile:           enhancement.GapsRaw,
		report.UpskillPlanFile:    enhancement.UpskillPlan,
	}

	for name, content := range artifacts {
		if content == "" {
			continue
		}
		path, err := writer.WriteText(name, content)
		if err != nil {
			logger.Error("writing enhancement artifact", zap.String("name", name), zap.Error(err))
			continue
		}
		logger.Info("enhancement artifact saved", zap.String("filename", path))
	}
}

func interviewPrep(ctx context.Context, generator ai.Generator, groups []*cluster.Group, writer *report.Writer, logger *zap.Logger) error {
	if generator == nil {
		logger.Warn("interview prep needs ai enabled in the config")
		return nil
	}

	coach := interview.New(generator, logger)

	var builder strings.Builder
	for _, group := range groups {
		questions, err := coach.Questions(ctx, group)
		if err != nil {
			logger.Error("interview questions failed for group",
				zap.Int("group", group.ID),
				zap.Error(err),
			)
			continue
		}

		companies := (&jobs.Postings{Items: group.Postings}).Companies()
		fmt.Fprintf(&builder, "## Group %d: %s\n\n", group.ID+1, strings.Join(companies, ", "))
		for _, question := range questions {
			fmt.Fprintf(&builder, "%s\n", question)
		}
		builder.WriteString("\n")
	}

	if builder.Len() == 0 {
		logger.Warn("no interview questions generated")
		return nil
	}

	path, err := writer.WriteText(report.InterviewPrepFile, builder.String())
	if err != nil {
		return fmt.Errorf("writing interview prep: %w", err)
	}

	logger.Info("interview prep saved", zap.String("filename", path))
	return nil
}

func clustersFromConfig(config *Config) int {
	if config.Jobs == nil {
		return cluster.DefaultGroups
	}
	return config.Jobs.Clusters
}
