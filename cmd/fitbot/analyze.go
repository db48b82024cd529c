package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/career-fit/internal/models"
	"alfredoptarigan/career-fit/internal/services"
)

const (
	MenuAsk       = "Ask a question"
	MenuSuggested = "Suggested questions"
	MenuInsights  = "Insights"
	MenuHistory   = "Show chat history"
	MenuClear     = "Clear chat history"
	MenuQuit      = "Quit"
	MenuBack      = "back"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Match a resume against a job description and chat about the candidate",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return analyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("resume", "r", "", "path to the resume PDF")
	analyzeCmd.Flags().StringP("job", "f", "", "path to a text file with the job description")
	analyzeCmd.Flags().String("job-text", "", "job description text")
	analyzeCmd.Flags().StringP("mode", "m", string(models.ModeHR), "hr or candidate")

	analyzeCmd.MarkFlagRequired("resume") //nolint:errcheck
}

func analyze(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	flags := cmd.Flags()
	resumePath, _ := flags.GetString("resume")
	jobPath, _ := flags.GetString("job")
	jobText, _ := flags.GetString("job-text")
	modeFlag, _ := flags.GetString("mode")

	mode := models.Mode(strings.ToLower(modeFlag))
	if !mode.Valid() {
		return fmt.Errorf("unknown mode %q, expected hr or candidate", modeFlag)
	}

	if jobPath != "" {
		data, err := os.ReadFile(jobPath)
		if err != nil {
			return fmt.Errorf("reading job description: %w", err)
		}
		jobText = string(data)
	}
	if strings.TrimSpace(jobText) == "" {
		return errors.New("a job description is required: use --job or --job-text")
	}

	resume, err := os.ReadFile(resumePath)
	if err != nil {
		return fmt.Errorf("reading resume: %w", err)
	}

	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	svc, err := services.New(ctx, cfg, log)
	if err != nil {
		return err
	}

	fmt.Println("Processing resume and job description...")
	analysis, err := svc.Analyzer.Process(ctx, resume, jobText, mode)
	if err != nil {
		log.Error("processing failed", zap.Error(err))
		return err
	}

	session := services.NewSession(mode)
	session.Replace(analysis)

	printAnalysis(session.Snapshot())
	if mode == models.ModeHR {
		if err := printDecisionAnalysis(ctx, session); err != nil {
			return err
		}
	}

	return chatLoop(ctx, session)
}

// printDecisionAnalysis asks the assistant to explain the HR decision.
func printDecisionAnalysis(ctx context.Context, session *services.Session) error {
	answer, err := session.Insight(ctx, services.InsightDecisionExplanation)
	if err != nil {
		return fmt.Errorf("decision analysis: %w", err)
	}

	fmt.Println("\nAnalysis:")
	fmt.Println(answer.Display())
	return nil
}

func printAnalysis(s models.SessionResponse) {
	if s.Candidate.Failed() {
		fmt.Printf("Warning: %s\n", s.Candidate.ExtractionError)
	}

	fmt.Println("\nCandidate summary")
	fmt.Printf("  Name:       %s\n", s.Summary.Name)
	fmt.Printf("  Experience: %s\n", s.Summary.Experience)
	fmt.Printf("  Pages:      %d\n", s.Summary.Pages)
	fmt.Printf("  Key skills: %s\n", s.Summary.KeySkills)

	fmt.Printf("\nMatch score: %s\n", s.ScoreLabel)
	fmt.Printf("Decision:    %s\n", s.Decision)
	if s.Advice != "" {
		fmt.Printf("Advice:      %s\n", s.Advice)
	}
	fmt.Printf("Model:       %s\n", s.Model)
}

func chatLoop(ctx context.Context, session *services.Session) error {
	menu := promptui.Select{
		Label: "What next?",
		Items: []string{MenuAsk, MenuSuggested, MenuInsights, MenuHistory, MenuClear, MenuQuit},
	}

	for {
		_, choice, err := menu.Run()
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case MenuAsk:
			if err := askFree(ctx, session); err != nil {
				return err
			}
		case MenuSuggested:
			if err := askSuggested(ctx, session); err != nil {
				return err
			}
		case MenuInsights:
			if err := showInsight(ctx, session); err != nil {
				return err
			}
		case MenuHistory:
			printHistory(session.History())
		case MenuClear:
			session.ClearHistory()
			fmt.Println("Chat history cleared.")
		case MenuQuit:
			return nil
		}
	}
}

func askFree(ctx context.Context, session *services.Session) error {
	prompt := promptui.Prompt{
		Label: "Your question",
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return services.ErrEmptyQuestion
			}
			return nil
		},
	}

	question, err := prompt.Run()
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrAbort) {
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println()
	answer, err := session.AskStream(ctx, question, func(chunk string) {
		fmt.Print(chunk)
	})
	if err != nil {
		return err
	}
	if !answer.OK() {
		fmt.Print(answer.Display())
	}
	fmt.Println()
	return nil
}

func askSuggested(ctx context.Context, session *services.Session) error {
	questions := session.SuggestedQuestions()
	pick := promptui.Select{
		Label: "Choose a question and press ENTER",
		Items: append(questions, MenuBack),
	}

	index, selected, err := pick.Run()
	if errors.Is(err, promptui.ErrInterrupt) {
		return nil
	}
	if err != nil {
		return err
	}
	if selected == MenuBack {
		return nil
	}

	_, answer, err := session.AskQuick(ctx, index)
	if err != nil {
		return err
	}
	fmt.Printf("\n%s\n", answer.Display())
	return nil
}

func showInsight(ctx context.Context, session *services.Session) error {
	kinds := []services.InsightKind{
		services.InsightRecommendation,
		services.InsightInterviewQuestions,
		services.InsightRequirements,
		services.InsightSalaryGuidance,
	}
	if session.Mode() == models.ModeCandidate {
		kinds = []services.InsightKind{
			services.InsightStrengths,
			services.InsightGaps,
			services.InsightInterview,
			services.InsightSalary,
			services.InsightActionPlan,
		}
	}

	items := make([]string, 0, len(kinds)+1)
	for _, k := range kinds {
		items = append(items, string(k))
	}

	pick := promptui.Select{
		Label: "Choose an insight",
		Items: append(items, MenuBack),
	}

	_, selected, err := pick.Run()
	if errors.Is(err, promptui.ErrInterrupt) {
		return nil
	}
	if err != nil {
		return err
	}
	if selected == MenuBack {
		return nil
	}

	fmt.Println("Thinking...")
	answer, err := session.Insight(ctx, services.InsightKind(selected))
	if err != nil {
		return err
	}
	fmt.Printf("\n%s\n", answer.Display())
	return nil
}

func printHistory(history []models.Message) {
	if len(history) == 0 {
		fmt.Println("No messages yet.")
		return
	}

	for _, m := range history {
		fmt.Printf("%s: %s\n\n", m.Speaker, m.Text)
	}
}
