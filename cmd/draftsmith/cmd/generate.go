package cmd

import (
	"bufio"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/draftsmith-ai/draftsmith/internal/adapters/writer"
	"github.com/draftsmith-ai/draftsmith/internal/core"
)

const defaultQuery = "Create a presentation on renewable energy trends"

var generateCmd = &cobra.Command{
	Use:   "generate [query]",
	Short: "Generate a presentation, document, or webpage from a request",
	Long: `Runs the content pipeline: classifies the request, researches it on
the web, verifies and ranks sources, generates each planned section
with the model, optionally renders a chart, and writes the final file.

With no argument the request is read interactively.`,
	Args: cobra.ArbitraryArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1)
)

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		query = promptForQuery(cmd)
	}

	ctx := cmd.Context()
	pipeline, err := buildContentPipeline(ctx, cfg, log)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), headerStyle.Render("Generating content for: ")+query)
	state, err := pipeline.Run(ctx, query)
	if err != nil {
		return err
	}

	summaryPath := filepath.Join(cfg.Output.Dir, cfg.Output.SummaryFile)
	if err := writer.WriteSummary(summaryPath, state.FinalOutput); err != nil {
		log.Warn("failed to persist run summary", "error", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderSummary(state, summaryPath))
	return nil
}

// promptForQuery reads the request interactively, falling back to a
// canned demo query on empty input.
func promptForQuery(cmd *cobra.Command) string {
	fmt.Fprintf(cmd.OutOrStdout(), "Enter your content request [%s]: ", defaultQuery)
	scanner := bufio.NewScanner(cmd.InOrStdin())
	if scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line
		}
	}
	return defaultQuery
}

func renderSummary(state *core.ContentState, summaryPath string) string {
	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value)
	}
	lines := []string{
		headerStyle.Render("Run complete"),
		row("Type", state.ContentType.String()),
		row("Template", state.Template),
		row("Sources", fmt.Sprintf("%d", len(state.VerifiedSources))),
		row("Quality", fmt.Sprintf("%.2f", state.QualityScore)),
		row("Summary", summaryPath),
	}
	if state.FinalOutput != nil {
		for _, f := range state.FinalOutput.FilesCreated {
			lines = append(lines, row("Created", f))
		}
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}
