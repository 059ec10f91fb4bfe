package auth

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"

	"github.com/vietdv277/aash/internal/profile"
)

func TestBuildEnv(t *testing.T) {
	p := profile.Profile{Name: "dev", Region: "us-east-1"}
	creds := aws.Credentials{
		AccessKeyID:     "AKIA123",
		SecretAccessKey: "secret",
		SessionToken:    "token",
	}

	env := BuildEnv(p, creds)

	assert.Equal(t, map[string]string{
		"AWS_ACCESS_KEY_ID":     "AKIA123",
		"AWS_SECRET_ACCESS_KEY": "secret",
		"AWS_SESSION_TOKEN":     "token",
		"AWS_REGION":            "us-east-1",
		"AWS_DEFAULT_REGION":    "us-east-1",
		"AWS_PROFILE":           "dev",
	}, env)
}

func TestBuildEnvOmitsAbsentEntries(t *testing.T) {
	p := profile.Profile{Name: "dev"}
	creds := aws.Credentials{AccessKeyID: "AKIA123", SecretAccessKey: "secret"}

	env := BuildEnv(p, creds)

	assert.NotContains(t, env, "AWS_SESSION_TOKEN")
	assert.NotContains(t, env, "AWS_REGION")
	assert.NotContains(t, env, "AWS_DEFAULT_REGION")
	assert.Equal(t, "dev", env["AWS_PROFILE"])
}
