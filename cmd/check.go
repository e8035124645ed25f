package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/loader"
	"github.com/abhisek/quizzer/internal/quiz"
	"github.com/abhisek/quizzer/internal/ui/components"
)

var checkCmd = &cobra.Command{
	Use:   "check PATH",
	Short: "Validate a question file without starting the quiz",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	qs, err := loader.LoadFile(path)
	if err != nil {
		return fmt.Errorf("check %s: %w", path, err)
	}
	session := quiz.NewSession()
	if err := session.Initialize(qs); err != nil {
		return fmt.Errorf("check %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	for i, q := range session.Questions() {
		fmt.Fprintf(out, "%3d  id=%-8s %d options, answer %s  %s\n",
			i+1, q.ID, len(q.Options), components.OptionLabel(q.CorrectIndex), q.Prompt)
	}
	fmt.Fprintf(out, "%d questions OK\n", len(qs))
	return nil
}
