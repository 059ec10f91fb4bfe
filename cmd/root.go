package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vietdv277/aash/internal/auth"
	"github.com/vietdv277/aash/internal/okta"
	"github.com/vietdv277/aash/internal/profile"
	"github.com/vietdv277/aash/internal/prompt"
	"github.com/vietdv277/aash/internal/shell"
	"github.com/vietdv277/aash/internal/ui"
)

var region string

var rootCmd = &cobra.Command{
	Use:   "aash [profile]",
	Short: "AWS account shell - manage AWS profiles and launch authenticated shells",
	Long: `aash manages named AWS profiles and drops you into a shell with the
profile's credentials exported.

Profiles live in ~/.aws/config and come in three kinds: SSO (AWS IAM
Identity Center), Okta (federated browser login via okta-aws-cli), and
standard static credentials from ~/.aws/credentials.

Examples:
  aash                 # Interactive menu: pick or create a profile
  aash my-org-dev      # Authenticate the profile and start a shell
  aash ls              # List configured profiles
  aash whoami dev      # Show the caller identity for a profile`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runRoot,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&region, "region", "r", "", "AWS region to use")
	_ = viper.BindPFlag("region", rootCmd.PersistentFlags().Lookup("region"))
}

func initConfig() {
	// Read from environment variables
	viper.SetEnvPrefix("AASH")
	viper.AutomaticEnv()

	// Use AWS_REGION if --region not specified
	if region == "" {
		region = os.Getenv("AWS_REGION")
		if region == "" {
			region = os.Getenv("AWS_DEFAULT_REGION")
		}
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	store, err := profile.DefaultStore()
	if err != nil {
		return err
	}

	profiles, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	ctx := cmd.Context()

	// One-shot mode: profile named on the command line
	if len(args) == 1 {
		p, found := findProfile(profiles, args[0])
		if !found {
			return fmt.Errorf("profile %q: %w", args[0], profile.ErrProfileNotFound)
		}
		return useProfile(ctx, store, p)
	}

	// Interactive mode: menu loop
	oktaPath, err := okta.DefaultPath()
	if err != nil {
		return err
	}
	creator := prompt.NewCreator(store, oktaPath)

	if len(profiles) == 0 {
		fmt.Println()
		fmt.Println(ui.HintStyle.Render("No AWS profiles found. Let's create your first profile."))
		fmt.Println()
	}

	for {
		choice, err := ui.SelectFromMenu(ui.BuildMenu(profiles))
		if errors.Is(err, ui.ErrCancelled) {
			fmt.Println(ui.MutedStyle.Render("Cancelled."))
			return nil
		}
		if err != nil {
			return err
		}

		if choice.Action == ui.ActionUseProfile {
			return useProfile(ctx, store, choice.Profile)
		}

		var created profile.Profile
		switch choice.Action {
		case ui.ActionCreateSSO:
			created, err = creator.CreateSSO()
		case ui.ActionCreateOkta:
			created, err = creator.CreateOkta()
		case ui.ActionCreateStandard:
			created, err = creator.CreateStandard()
		}
		if errors.Is(err, ui.ErrCancelled) {
			continue
		}
		if err != nil {
			// Creation failures are not fatal in menu mode
			fmt.Println()
			fmt.Println(ui.ErrorStyle.Render("Error creating profile: " + err.Error()))
			fmt.Println()
			continue
		}

		fmt.Println()
		fmt.Println(ui.SuccessStyle.Render("✓ Profile created successfully"))
		profiles = append(profiles, created)
		return useProfile(ctx, store, created)
	}
}

// useProfile authenticates a profile, resolves its credentials and hands
// off to the subshell.
func useProfile(ctx context.Context, store *profile.Store, p profile.Profile) error {
	fmt.Println()
	fmt.Printf("Using profile %s (%s)\n",
		ui.HighlightStyle.Render(p.Name), ui.KindStyle(p.Kind).Render(p.Kind.String()))

	switch p.Kind {
	case profile.KindSSO:
		fmt.Println(ui.HintStyle.Render("Starting AWS SSO login..."))
	case profile.KindFederated:
		fmt.Println(ui.HintStyle.Render("Starting Okta authentication, your browser may open..."))
	default:
		fmt.Println(ui.HintStyle.Render("Using static credentials from ~/.aws/credentials"))
	}

	if err := auth.New(store).Login(ctx, p); err != nil {
		return err
	}

	env, err := auth.ResolveEnv(ctx, p)
	if err != nil {
		return err
	}

	fmt.Println(ui.SuccessStyle.Render("✓ Credentials obtained"))
	fmt.Println()
	fmt.Println(ui.HintStyle.Render("Starting shell, type 'exit' to return."))
	fmt.Println()

	if err := shell.Run(p.Name, env); err != nil {
		if errors.Is(err, shell.ErrShellExit) {
			// The session itself succeeded; report the child's exit only
			fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render(err.Error()))
			return nil
		}
		return err
	}

	fmt.Println(ui.MutedStyle.Render("Returned to original shell."))
	return nil
}

func findProfile(profiles []profile.Profile, name string) (profile.Profile, bool) {
	for _, p := range profiles {
		if p.Name == name {
			return p, true
		}
	}
	return profile.Profile{}, false
}
