// Package auth drives per-profile authentication: static credential
// verification for standard profiles, and the external `aws sso login`
// and `okta-aws-cli` flows for SSO and Okta profiles.
package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/vietdv277/aash/internal/profile"
)

var (
	// ErrConfigIncomplete is returned when an Okta profile is missing a
	// required federation field
	ErrConfigIncomplete = errors.New("profile configuration incomplete")

	// ErrLoginFailed is returned when an external login process exits
	// non-zero
	ErrLoginFailed = errors.New("login failed")
)

// execCommand is swapped out in tests
var execCommand = exec.Command

// Authenticator authenticates profiles against the credentials store and
// the external login tools
type Authenticator struct {
	store *profile.Store
}

// New creates an Authenticator backed by the given store
func New(store *profile.Store) *Authenticator {
	return &Authenticator{store: store}
}

// Login runs the authentication flow for the profile's kind. On return
// without error the SDK credential chain can resolve credentials for the
// profile.
func (a *Authenticator) Login(ctx context.Context, p profile.Profile) error {
	switch p.Kind {
	case profile.KindSSO:
		return a.ssoLogin(ctx, p)
	case profile.KindFederated:
		return a.oktaLogin(ctx, p)
	default:
		return a.verifyCredentials(p)
	}
}

// verifyCredentials checks that a standard profile has a section in the
// credentials file. No network call is made; the keys themselves are
// validated later by the SDK when credentials are resolved.
func (a *Authenticator) verifyCredentials(p profile.Profile) error {
	ok, err := a.store.HasCredentials(p.Name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("profile %q: %w", p.Name, profile.ErrCredentialsNotFound)
	}
	return nil
}

// ssoLogin invokes `aws sso login` for the profile, attaching the
// terminal so the browser-handoff messages reach the user.
func (a *Authenticator) ssoLogin(ctx context.Context, p profile.Profile) error {
	cmd := execCommand("aws", "sso", "login", "--profile", p.Name)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := runWithContext(ctx, cmd); err != nil {
		return fmt.Errorf("aws sso login for %q: %w", p.Name, ErrLoginFailed)
	}
	return nil
}

// oktaLogin invokes okta-aws-cli's web flow, writing the resulting
// temporary credentials into the credentials file under the profile name.
func (a *Authenticator) oktaLogin(ctx context.Context, p profile.Profile) error {
	args, err := oktaArgs(p)
	if err != nil {
		return err
	}

	cmd := execCommand("okta-aws-cli", args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := runWithContext(ctx, cmd); err != nil {
		return fmt.Errorf("okta-aws-cli for %q: %w", p.Name, ErrLoginFailed)
	}
	return nil
}

// oktaArgs builds the okta-aws-cli argument list. Org domain and OIDC
// client id are required; the remaining federation fields are passed only
// when configured.
func oktaArgs(p profile.Profile) ([]string, error) {
	if p.OktaOrgDomain == "" {
		return nil, fmt.Errorf("profile %q: okta_org_domain is required: %w", p.Name, ErrConfigIncomplete)
	}
	if p.OktaClientID == "" {
		return nil, fmt.Errorf("profile %q: okta_oidc_client_id is required: %w", p.Name, ErrConfigIncomplete)
	}

	args := []string{
		"web",
		"--org-domain", p.OktaOrgDomain,
		"--oidc-client-id", p.OktaClientID,
	}
	if p.OktaFedAppID != "" {
		args = append(args, "--aws-acct-fed-app-id", p.OktaFedAppID)
	}
	if p.OktaIAMRoleARN != "" {
		args = append(args, "--aws-iam-role", p.OktaIAMRoleARN)
	}
	if p.OktaIAMIdPARN != "" {
		args = append(args, "--aws-iam-idp", p.OktaIAMIdPARN)
	}
	args = append(args,
		"--format", "aws-credentials",
		"--profile", p.Name,
		"--write-aws-credentials",
	)
	return args, nil
}

// runWithContext runs an interactive command, killing it if the context
// is cancelled first.
func runWithContext(ctx context.Context, cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		<-done
		return ctx.Err()
	case err := <-done:
		return err
	}
}
