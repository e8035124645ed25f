package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/loader"
	"github.com/abhisek/quizzer/internal/quiz"
	"github.com/abhisek/quizzer/internal/ui/components"
)

var previewCmd = &cobra.Command{
	Use:   "preview PATH",
	Short: "Answer a question file line by line, without the TUI",
	Long: `Walk through a question file in plain terminal output.

Each question is printed with its options. Answer with the option letter or
number, or press Enter to skip. Useful for proofreading a set before sharing it.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	qs, err := loader.LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}
	session := quiz.NewSession()
	if err := session.Initialize(qs); err != nil {
		return fmt.Errorf("load questions: %w", err)
	}
	return preview(session, cmd.InOrStdin(), cmd.OutOrStdout())
}

// preview runs the attempt in session against line-based input.
func preview(session *quiz.Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	total := session.Total()

	if total == 0 {
		fmt.Fprintln(out, "No questions.")
		return nil
	}

	for i := 0; i < total; i++ {
		v := session.CurrentView()
		q := v.Question

		fmt.Fprintf(out, "── %s ──\n", v.PositionLabel)
		fmt.Fprintln(out, q.Prompt)
		for j, opt := range q.Options {
			fmt.Fprintf(out, "  %s) %s\n", components.OptionLabel(j), opt)
		}

		fmt.Fprint(out, "\nYour answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}

		answer := strings.TrimSpace(scanner.Text())
		option, ok := parseOption(answer, len(q.Options))
		switch {
		case answer == "":
			fmt.Fprintln(out, "(skipped)")
		case !ok:
			fmt.Fprintf(out, "(%q is not an option, skipped)\n", answer)
		default:
			if err := session.SelectCurrent(option); err != nil {
				return err
			}
			v = session.CurrentView()
			if v.Correct {
				fmt.Fprintln(out, "✓ Correct!")
			} else {
				fmt.Fprintf(out, "✗ Wrong. Answer: %s) %s\n",
					components.OptionLabel(q.CorrectIndex), q.Options[q.CorrectIndex])
			}
			if q.Explanation != "" {
				fmt.Fprintf(out, "Explanation: %s\n", q.Explanation)
			}
		}
		fmt.Fprintln(out)

		session.Navigate(quiz.Next)
	}

	v := session.CurrentView()
	fmt.Fprintf(out, "Score: %d / %d (%d%%)\n", v.Score, v.Total, v.Percent())
	return nil
}

// parseOption accepts a 1-based number or an option letter.
func parseOption(answer string, n int) (int, bool) {
	if answer == "" {
		return 0, false
	}
	if num, err := strconv.Atoi(answer); err == nil {
		return num - 1, num >= 1 && num <= n
	}
	if len(answer) == 1 {
		c := strings.ToUpper(answer)[0]
		if c >= 'A' && c <= 'Z' {
			idx := int(c - 'A')
			return idx, idx < n
		}
	}
	return 0, false
}
