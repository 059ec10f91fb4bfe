package auth

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietdv277/aash/internal/profile"
)

type execRecorder struct {
	called bool
	name   string
	args   []string
}

// stubExecCommand replaces the external command with /bin/true or
// /bin/false while recording the argv that would have run.
func stubExecCommand(t *testing.T, rec *execRecorder, fail bool) {
	t.Helper()
	orig := execCommand
	execCommand = func(name string, args ...string) *exec.Cmd {
		rec.called = true
		rec.name = name
		rec.args = args
		if fail {
			return exec.Command("false")
		}
		return exec.Command("true")
	}
	t.Cleanup(func() { execCommand = orig })
}

func TestStandardMissingCredentials(t *testing.T) {
	store := profile.NewStore(t.TempDir())
	a := New(store)

	err := a.Login(context.Background(), profile.Profile{Name: "dev", Kind: profile.KindStandard})
	require.ErrorIs(t, err, profile.ErrCredentialsNotFound)
	assert.Contains(t, err.Error(), "dev")
}

func TestStandardWithCredentials(t *testing.T) {
	store := profile.NewStore(t.TempDir())
	require.NoError(t, store.AppendCredentials("dev", "AKIA123", "secret"))
	a := New(store)

	err := a.Login(context.Background(), profile.Profile{Name: "dev", Kind: profile.KindStandard})
	require.NoError(t, err)
}

func TestSSOLoginArgs(t *testing.T) {
	var rec execRecorder
	stubExecCommand(t, &rec, false)

	a := New(profile.NewStore(t.TempDir()))
	err := a.Login(context.Background(), profile.Profile{Name: "org-sso", Kind: profile.KindSSO})
	require.NoError(t, err)

	assert.Equal(t, "aws", rec.name)
	assert.Equal(t, []string{"sso", "login", "--profile", "org-sso"}, rec.args)
}

func TestSSOLoginFailure(t *testing.T) {
	var rec execRecorder
	stubExecCommand(t, &rec, true)

	a := New(profile.NewStore(t.TempDir()))
	err := a.Login(context.Background(), profile.Profile{Name: "org-sso", Kind: profile.KindSSO})
	require.ErrorIs(t, err, ErrLoginFailed)
}

func TestOktaLoginArgs(t *testing.T) {
	var rec execRecorder
	stubExecCommand(t, &rec, false)

	p := profile.Profile{
		Name:           "org-okta",
		Kind:           profile.KindFederated,
		OktaOrgDomain:  "my-org.okta.com",
		OktaClientID:   "abc123",
		OktaFedAppID:   "app1",
		OktaIAMRoleARN: "arn:aws:iam::123456789012:role/MyRole",
		OktaIAMIdPARN:  "arn:aws:iam::123456789012:saml-provider/okta",
	}

	a := New(profile.NewStore(t.TempDir()))
	require.NoError(t, a.Login(context.Background(), p))

	assert.Equal(t, "okta-aws-cli", rec.name)
	assert.Equal(t, []string{
		"web",
		"--org-domain", "my-org.okta.com",
		"--oidc-client-id", "abc123",
		"--aws-acct-fed-app-id", "app1",
		"--aws-iam-role", "arn:aws:iam::123456789012:role/MyRole",
		"--aws-iam-idp", "arn:aws:iam::123456789012:saml-provider/okta",
		"--format", "aws-credentials",
		"--profile", "org-okta",
		"--write-aws-credentials",
	}, rec.args)
}

func TestOktaLoginOmitsAbsentOptionals(t *testing.T) {
	var rec execRecorder
	stubExecCommand(t, &rec, false)

	p := profile.Profile{
		Name:          "min",
		Kind:          profile.KindFederated,
		OktaOrgDomain: "my-org.okta.com",
		OktaClientID:  "abc123",
	}

	a := New(profile.NewStore(t.TempDir()))
	require.NoError(t, a.Login(context.Background(), p))

	assert.Equal(t, []string{
		"web",
		"--org-domain", "my-org.okta.com",
		"--oidc-client-id", "abc123",
		"--format", "aws-credentials",
		"--profile", "min",
		"--write-aws-credentials",
	}, rec.args)
}

func TestOktaLoginIncompleteConfig(t *testing.T) {
	var rec execRecorder
	stubExecCommand(t, &rec, false)

	a := New(profile.NewStore(t.TempDir()))

	tests := []struct {
		name string
		p    profile.Profile
	}{
		{
			name: "missing org domain",
			p:    profile.Profile{Name: "x", Kind: profile.KindFederated, OktaClientID: "abc"},
		},
		{
			name: "missing client id",
			p:    profile.Profile{Name: "x", Kind: profile.KindFederated, OktaOrgDomain: "x.okta.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.Login(context.Background(), tt.p)
			require.ErrorIs(t, err, ErrConfigIncomplete)
			assert.False(t, rec.called, "must fail before invoking the external process")
		})
	}
}

func TestOktaLoginFailure(t *testing.T) {
	var rec execRecorder
	stubExecCommand(t, &rec, true)

	p := profile.Profile{
		Name:          "org-okta",
		Kind:          profile.KindFederated,
		OktaOrgDomain: "my-org.okta.com",
		OktaClientID:  "abc123",
	}

	a := New(profile.NewStore(t.TempDir()))
	err := a.Login(context.Background(), p)
	require.ErrorIs(t, err, ErrLoginFailed)
}
