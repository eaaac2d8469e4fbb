package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/brado-project/brado-cli/internal/adapters/driving/tui"
	"github.com/brado-project/brado-cli/internal/core/domain"
	"github.com/brado-project/brado-cli/internal/core/ports/driving"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run the political values interview",
	Long: `Run the Likert political values interview.

Without a subcommand this launches the interactive terminal flow.
Subcommands drive the same session step by step for scripting. Session
progress is persisted locally, so an interrupted interview resumes
where it left off.`,
	RunE: runInterviewTUI,
}

var interviewStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new interview session",
	Long:  `Start a new interview session, replacing any session in progress.`,
	RunE:  runInterviewStart,
}

var interviewStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the session in progress",
	RunE:  runInterviewStatus,
}

var interviewAnswerCmd = &cobra.Command{
	Use:   "answer [question-id] [value]",
	Short: "Record an answer for the current question",
	Long: `Record a Likert answer (1-7) for a question in the current session.

1 means full disagreement, 7 full agreement, 4 neutral.`,
	Args: cobra.ExactArgs(2),
	RunE: runInterviewAnswer,
}

var interviewFinishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Close the session and show the result",
	RunE:  runInterviewFinish,
}

var interviewResultCmd = &cobra.Command{
	Use:   "result",
	Short: "Re-fetch the result of the last session",
	RunE:  runInterviewResult,
}

var interviewExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Download the result as a file",
	RunE:  runInterviewExport,
}

var interviewAbandonCmd = &cobra.Command{
	Use:   "abandon",
	Short: "Drop the session in progress",
	RunE:  runInterviewAbandon,
}

// Flags.
var (
	interviewUserID       string
	interviewExportFormat string
	interviewExportOut    string
	interviewResultJSON   bool
)

func init() {
	interviewStartCmd.Flags().StringVar(
		&interviewUserID, "user", "", "optional user identifier to bind the session to")
	interviewExportCmd.Flags().StringVar(
		&interviewExportFormat, "format", "json", "export format (json, pdf)")
	interviewExportCmd.Flags().StringVarP(
		&interviewExportOut, "out", "o", "", "output file (default stdout for json)")
	interviewFinishCmd.Flags().BoolVar(
		&interviewResultJSON, "json", false, "output the result as JSON")
	interviewResultCmd.Flags().BoolVar(
		&interviewResultJSON, "json", false, "output the result as JSON")

	interviewCmd.AddCommand(interviewStartCmd)
	interviewCmd.AddCommand(interviewStatusCmd)
	interviewCmd.AddCommand(interviewAnswerCmd)
	interviewCmd.AddCommand(interviewFinishCmd)
	interviewCmd.AddCommand(interviewResultCmd)
	interviewCmd.AddCommand(interviewExportCmd)
	interviewCmd.AddCommand(interviewAbandonCmd)
	rootCmd.AddCommand(interviewCmd)
}

func runInterviewTUI(cmd *cobra.Command, _ []string) error {
	if interviewService == nil {
		return errors.New("interview service not configured")
	}

	model := tui.NewInterviewModel(interviewService)
	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("interview flow failed: %w", err)
	}

	if m, ok := final.(tui.InterviewModel); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

func runInterviewStart(cmd *cobra.Command, _ []string) error {
	if interviewService == nil {
		return errors.New("interview service not configured")
	}

	ctx := context.Background()
	progress, err := interviewService.Start(ctx, interviewUserID)
	if err != nil {
		return fmt.Errorf("starting interview: %w", err)
	}

	cmd.Printf("Session started: %s\n", progress.SessionID)
	printQuestion(cmd, progress)
	return nil
}

func runInterviewStatus(cmd *cobra.Command, _ []string) error {
	if interviewService == nil {
		return errors.New("interview service not configured")
	}

	progress, err := interviewService.Resume(context.Background())
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			cmd.Println("No interview in progress.")
			cmd.Println("Start one with: brado interview start")
			return nil
		}
		return fmt.Errorf("reading session: %w", err)
	}

	cmd.Printf("Session: %s\n", progress.SessionID)
	cmd.Printf("Answered: %d\n", progress.AnsweredCount)
	printQuestion(cmd, progress)
	return nil
}

func runInterviewAnswer(cmd *cobra.Command, args []string) error {
	if interviewService == nil {
		return errors.New("interview service not configured")
	}

	questionID := args[0]
	value, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("answer must be a number between %d and %d", domain.LikertMin, domain.LikertMax)
	}

	progress, err := interviewService.Answer(context.Background(), questionID, value)
	if err != nil {
		return fmt.Errorf("recording answer: %w", err)
	}

	cmd.Printf("Recorded. Answered: %d\n", progress.AnsweredCount)
	printQuestion(cmd, progress)
	return nil
}

func runInterviewFinish(cmd *cobra.Command, _ []string) error {
	if interviewService == nil {
		return errors.New("interview service not configured")
	}

	result, err := interviewService.Finish(context.Background())
	if err != nil {
		return fmt.Errorf("finishing interview: %w", err)
	}

	return outputResult(cmd, result)
}

func runInterviewResult(cmd *cobra.Command, _ []string) error {
	if interviewService == nil {
		return errors.New("interview service not configured")
	}

	result, err := interviewService.Result(context.Background())
	if err != nil {
		return fmt.Errorf("fetching result: %w", err)
	}

	return outputResult(cmd, result)
}

func runInterviewExport(cmd *cobra.Command, _ []string) error {
	if interviewService == nil {
		return errors.New("interview service not configured")
	}

	payload, contentType, err := interviewService.Export(context.Background(), interviewExportFormat)
	if err != nil {
		return fmt.Errorf("exporting result: %w", err)
	}

	out := interviewExportOut
	if out == "" {
		if interviewExportFormat == "pdf" {
			out = "brado-result.pdf"
		} else {
			cmd.Println(string(payload))
			return nil
		}
	}

	if err := os.WriteFile(out, payload, 0600); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	cmd.Printf("Wrote %s (%s, %d bytes)\n", out, contentType, len(payload))
	return nil
}

func runInterviewAbandon(cmd *cobra.Command, _ []string) error {
	if interviewService == nil {
		return errors.New("interview service not configured")
	}

	if err := interviewService.Abandon(context.Background()); err != nil {
		return fmt.Errorf("abandoning session: %w", err)
	}
	cmd.Println("Session dropped.")
	return nil
}

func printQuestion(cmd *cobra.Command, progress driving.InterviewProgress) {
	if progress.Done {
		cmd.Println("All questions answered. Finish with: brado interview finish")
		return
	}
	if progress.Question == nil {
		return
	}
	cmd.Println()
	cmd.Printf("Question %s:\n", progress.Question.Key())
	cmd.Printf("  %s\n", progress.Question.Text)
	cmd.Printf("Answer with: brado interview answer %s <1-7>\n", progress.Question.Key())
}

func outputResult(cmd *cobra.Command, result domain.InterviewResult) error {
	if interviewResultJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if m := result.Metricas; m != nil {
		cmd.Println("Metrics:")
		cmd.Printf("  Left/right axis: %.2f\n", m.EsquerdaDireita)
		cmd.Printf("  Confidence:      %.2f\n", m.Confianca)
		cmd.Printf("  Consistency:     %.2f\n", m.Consistencia)
		cmd.Println()
	}

	if len(result.Ranking) == 0 {
		cmd.Println("No ranking available.")
		return nil
	}

	cmd.Println("Closest profiles:")
	for i, item := range result.Ranking {
		cmd.Printf("  [%d] %s (%.1f%%)\n", i+1, item.Nome, item.Similaridade*100)
		if item.Explicacao != "" {
			cmd.Printf("      %s\n", item.Explicacao)
		}
	}
	return nil
}
