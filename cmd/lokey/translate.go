package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"lokey/internal/lokerr"
	"lokey/internal/translate"
)

var (
	translateDryRun bool
	translateFormat string
)

var translateCmd = &cobra.Command{
	Use:   "translate <keypath> [locale...]",
	Short: "Machine-translate a key's missing locales",
	Long: `Fill the missing translations of a key by calling the configured machine
translation service. Without locale arguments every known locale missing
the key is filled. All translations must succeed before anything is
written.

The service endpoint is configured in .lokey/config.json under
"translator". The API key is read from the environment variable named by
"translator.apiKeyEnv".

Examples:
  lokey translate nav.menu.title
  lokey translate nav.menu.title de fr
  lokey translate nav.menu.title --dry-run`,
	Args: cobra.MinimumNArgs(1),
	Run:  runTranslate,
}

func init() {
	translateCmd.Flags().BoolVar(&translateDryRun, "dry-run", false, "Plan only, write nothing")
	translateCmd.Flags().StringVar(&translateFormat, "format", "human", "Output format (json, human)")
	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) {
	logger := newLogger(translateFormat)
	root := mustGetWorkspaceRoot()
	engine := mustGetEngine(root, logger)
	ctx := newContext()

	tc := engine.Config().Translator
	if tc.Endpoint == "" {
		err := lokerr.Newf(lokerr.TranslateFailed, "no translation endpoint configured")
		fmt.Fprintf(os.Stderr, "Error: %v\n%s\n", err, lokerr.Hint(lokerr.TranslateFailed))
		os.Exit(1)
	}
	svc := translate.NewClient(translate.Options{
		Endpoint:  tc.Endpoint,
		APIKeyEnv: tc.APIKeyEnv,
		Timeout:   time.Duration(tc.TimeoutMs) * time.Millisecond,
	})

	ops, err := engine.Translate(ctx, svc, args[0], args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error translating: %v\n", err)
		os.Exit(1)
	}

	emitPlan(engine, "translate", ops, translateDryRun, translateFormat)
}
