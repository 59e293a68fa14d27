package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formcheck/pkg/form"
	"github.com/dmitrymomot/formcheck/pkg/i18n"
	"github.com/dmitrymomot/formcheck/pkg/logger"
)

// newRootCmd builds the signup command.
func newRootCmd() *cobra.Command {
	var (
		lang    string
		envFile string
		noInput bool
		text    = make(map[form.Field]*string)
		terms   bool
	)

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Fill in and validate the signup form",
		Long: `Signup runs the registration form in the terminal. Each field is
checked when you leave it, the password shows a live strength bar, and the
form is accepted only when every field passes.

With --no-input the field values are taken from flags instead.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(envFile)
			if err != nil {
				return err
			}
			log, err := cfg.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			logger.SetAsDefault(log)

			a, err := newApp(cmd.Context(), cfg, cfg.preferredLanguages(lang), cmd.OutOrStdout(), log)
			if err != nil {
				return err
			}
			defer a.close()
			ctx := i18n.SetLocale(cmd.Context(), a.lang)

			var accepted bool
			if noInput {
				values := make(map[form.Field]form.Value, len(text)+1)
				for f, v := range text {
					values[f] = form.TextValue(*v)
				}
				values[form.TermsAccepted] = form.CheckedValue(terms)
				accepted = a.submit(ctx, values)
			} else {
				accepted, err = a.runInteractive(ctx)
				if err != nil {
					return err
				}
			}

			if !accepted {
				return errSubmissionRejected
			}
			a.waitForToast(ctx)
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "message language (en, es); defaults to SIGNUP_LANG or the system locale")
	cmd.Flags().StringVar(&envFile, "env-file", "", "load settings from this .env file")
	cmd.Flags().BoolVar(&noInput, "no-input", false, "take field values from flags instead of prompting")

	for _, f := range form.Fields() {
		if !f.IsText() {
			continue
		}
		text[f] = new(string)
		cmd.Flags().StringVar(text[f], flagName(f), "", defaultLabels[f]+" (with --no-input)")
	}
	cmd.Flags().BoolVar(&terms, "accept-terms", false, "accept the terms (with --no-input)")

	return cmd
}

// flagName turns date_of_birth into date-of-birth.
func flagName(f form.Field) string {
	return strings.ReplaceAll(f.String(), "_", "-")
}
