package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a natural-language question against the demo dataset",
	Long: `Runs the SQL pipeline: the model translates the question into a
SELECT against the students table, the statement is validated and
executed, and the rows are narrated back in natural language.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	agent, ds, err := buildAgent(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = ds.Close() }()

	question := strings.Join(args, " ")
	state, err := agent.Run(ctx, question)
	if err != nil {
		return err
	}

	md := fmt.Sprintf("**Q:** %s\n\n```sql\n%s\n```\n\n%s\n", state.Question, state.SQL, state.Response)
	rendered, err := glamour.Render(md, "auto")
	if err != nil {
		// Fall back to the plain answer if the renderer chokes.
		fmt.Fprintln(cmd.OutOrStdout(), state.Response)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}
