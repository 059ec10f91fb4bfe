package cmd

import (
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/spf13/cobra"

	"github.com/vietdv277/aash/internal/ui"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami [profile]",
	Short: "Show the AWS identity for a profile",
	Long: `Display the caller identity for a profile, equivalent to
'aws sts get-caller-identity'.

With no argument the profile comes from AWS_PROFILE or the SDK default
chain.

Examples:
  aash whoami
  aash whoami my-org-dev`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	profileName := os.Getenv("AWS_PROFILE")
	if len(args) == 1 {
		profileName = args[0]
	}

	var configOpts []func(*config.LoadOptions) error

	if profileName != "" {
		configOpts = append(configOpts, config.WithSharedConfigProfile(profileName))
	}

	if region != "" {
		configOpts = append(configOpts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, configOpts...)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}

	stsClient := sts.NewFromConfig(cfg)

	output, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return fmt.Errorf("failed to get caller identity: %w", err)
	}

	fmt.Println()
	fmt.Println(ui.HeaderStyle.Render("AWS Identity"))
	fmt.Println(ui.MutedStyle.Render("───────────────────────────────"))
	if profileName != "" {
		fmt.Printf("  Profile: %s\n", ui.NameStyle.Render(profileName))
	}
	fmt.Printf("  Account: %s\n", derefStr(output.Account))
	fmt.Printf("  UserID:  %s\n", derefStr(output.UserId))
	fmt.Printf("  ARN:     %s\n", ui.MutedStyle.Render(derefStr(output.Arn)))

	return nil
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
