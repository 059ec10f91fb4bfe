package auth

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"

	"github.com/vietdv277/aash/internal/profile"
)

// ResolveEnv resolves credentials for an authenticated profile through the
// SDK's default credential chain and returns them as an environment
// variable map for the subshell.
func ResolveEnv(ctx context.Context, p profile.Profile) (map[string]string, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithSharedConfigProfile(p.Name),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	creds, err := cfg.Credentials.Retrieve(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve credentials for %q: %w", p.Name, err)
	}

	return BuildEnv(p, creds), nil
}

// BuildEnv assembles the credential environment for a profile. Session
// token and region entries are present only when set.
func BuildEnv(p profile.Profile, creds aws.Credentials) map[string]string {
	env := map[string]string{
		"AWS_ACCESS_KEY_ID":     creds.AccessKeyID,
		"AWS_SECRET_ACCESS_KEY": creds.SecretAccessKey,
		"AWS_PROFILE":           p.Name,
	}
	if creds.SessionToken != "" {
		env["AWS_SESSION_TOKEN"] = creds.SessionToken
	}
	if p.Region != "" {
		env["AWS_REGION"] = p.Region
		env["AWS_DEFAULT_REGION"] = p.Region
	}
	return env
}
