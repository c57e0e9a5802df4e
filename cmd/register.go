package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/swalay/labelctl/internal/labels"
	"github.com/swalay/labelctl/internal/log"
)

// registerOptions holds the register subcommand flags.
type registerOptions struct {
	Username string
	Email    string
	Contact  string
	UserType string
	Label    string
}

var registerOpts registerOptions

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a label without opening the TUI",
	Long: `Register a label from flags. Normal accounts are always registered under
the default label; super accounts must pass --label.`,
	Example: `  labelctl register --username alice --email a@b.com --contact 9999999999 --label "Acme Records"
  labelctl register --username bob --email b@c.com --contact 12345 --usertype normal`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)

	f := registerCmd.Flags()
	f.StringVar(&registerOpts.Username, "username", "", "account username")
	f.StringVar(&registerOpts.Email, "email", "", "account email")
	f.StringVar(&registerOpts.Contact, "contact", "", "contact number (digits)")
	f.StringVar(&registerOpts.UserType, "usertype", string(labels.UserTypeSuper), "user type: normal or super")
	f.StringVar(&registerOpts.Label, "label", "", "record label name (super accounts)")
}

func runRegister(cmd *cobra.Command, _ []string) error {
	if cfgErr != nil {
		return cfgErr
	}

	cleanup, err := setupLogging("labelctl-register")
	if err != nil {
		return err
	}
	defer cleanup()

	provider, err := newTracingProvider(cfg)
	if err != nil {
		return err
	}
	defer shutdownTracing(provider)

	registrar := registrarFactory(provider.Tracer())(cfg)
	return registerLabel(cmd.Context(), cmd.OutOrStdout(), registrar, registerOpts)
}

// buildForm replays the flags through the same change handling the form
// page uses, so normal accounts end up on the default label.
func buildForm(opts registerOptions) (labels.Form, error) {
	userType := labels.UserType(opts.UserType)
	if userType != labels.UserTypeNormal && userType != labels.UserTypeSuper {
		return labels.Form{}, fmt.Errorf("--usertype must be %q or %q, got %q", labels.UserTypeNormal, labels.UserTypeSuper, opts.UserType)
	}

	form := labels.NewForm().
		Apply(labels.TextChange(labels.FieldUsername, opts.Username)).
		Apply(labels.TextChange(labels.FieldEmail, opts.Email)).
		Apply(labels.TextChange(labels.FieldContact, opts.Contact)).
		Apply(labels.SelectUserType(userType))
	if form.IsLabel {
		form = form.Apply(labels.TextChange(labels.FieldLabel, opts.Label))
	}
	return form, nil
}

// registerLabel runs one registration and reports the outcome on out.
// Anything other than a successful registration is returned as an error.
func registerLabel(ctx context.Context, out io.Writer, registrar labels.Registrar, opts registerOptions) error {
	form, err := buildForm(opts)
	if err != nil {
		return err
	}
	if err := form.Validate(); err != nil {
		return err
	}

	reg := form.Settle().Payload()
	resp, err := registrar.AddLabel(ctx, reg)

	outcome := labels.Classify(resp, err)
	switch outcome.Kind {
	case labels.OutcomeRegistered:
		_, _ = fmt.Fprintln(out, outcome.Message)
		return nil
	case labels.OutcomeRejected:
		return errors.New(outcome.Message)
	default:
		log.ErrorErr(log.CatAPI, "Registration request failed", outcome.Err, "username", reg.Username)
		return fmt.Errorf("%s: %w", outcome.Message, outcome.Err)
	}
}
