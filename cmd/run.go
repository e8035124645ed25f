package cmd

import (
	"fmt"
	"io"
	"log"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/app"
	"github.com/abhisek/quizzer/internal/loader"
	"github.com/abhisek/quizzer/internal/quiz"
)

// runApp resolves configuration, preloads the question file if one is
// given, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("resolve config: %w", err)
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	log.Printf("quizzer %s starting", version)

	session := newSession(cfg.Strict)
	if cfg.QuestionsFile != "" {
		qs, err := loader.LoadFile(cfg.QuestionsFile)
		if err != nil {
			return fmt.Errorf("load questions: %w", err)
		}
		if err := session.Initialize(qs); err != nil {
			return fmt.Errorf("load questions: %w", err)
		}
		log.Printf("attempt %s: loaded %d questions from %s",
			session.AttemptID(), session.Total(), cfg.QuestionsFile)
	}

	return app.Run(app.Options{
		Session:       session,
		QuestionsPath: cfg.QuestionsFile,
	})
}

func newSession(strict bool) *quiz.Session {
	if strict {
		return quiz.NewSession(quiz.WithStrictReferences())
	}
	return quiz.NewSession()
}

// setupLogging sends the standard logger to path. The TUI owns the
// terminal, so without a path the log is discarded.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "quizzer")
	if err != nil {
		return nil, err
	}
	return func() { f.Close() }, nil
}
