package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "quizzer",
	Short: "Terminal multiple-choice quiz",
	Long:  "Quizzer loads a set of multiple-choice questions and quizzes you on them in the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringP("file", "f", "", "JSON or YAML question file to load (overrides QUIZZER_QUESTIONS)")
	rootCmd.Flags().Bool("strict", false, "Reject answers to unknown question ids (overrides QUIZZER_STRICT)")
	rootCmd.PersistentFlags().String("log-file", "", "Write the log to this file (overrides QUIZZER_LOG_FILE)")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig returns the environment configuration with any flags set on
// the command line taking priority.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if p, _ := flags.GetString("file"); p != "" {
		cfg.QuestionsFile = p
	}
	if flags.Changed("strict") {
		cfg.Strict, _ = flags.GetBool("strict")
	}
	if p, _ := flags.GetString("log-file"); p != "" {
		cfg.LogFile = p
	}
	return cfg, nil
}
