package profile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("my-profile_2"))
	assert.NoError(t, ValidateName("default"))
	assert.Error(t, ValidateName("my profile!"))
	assert.Error(t, ValidateName(""))
	assert.Error(t, ValidateName("dev/prod"))
}

func TestValidateAccessKeyID(t *testing.T) {
	assert.NoError(t, ValidateAccessKeyID("AKIA123"))
	assert.NoError(t, ValidateAccessKeyID("ASIAEXAMPLE456"))
	assert.Error(t, ValidateAccessKeyID("AKIA-123"))
	assert.Error(t, ValidateAccessKeyID(""))
}

func TestValidateSecretAccessKey(t *testing.T) {
	assert.NoError(t, ValidateSecretAccessKey("wJalrXUtnFEMI/K7MDENG+bPxRfiCYEXAMPLEKEY="))
	assert.Error(t, ValidateSecretAccessKey("has spaces here"))
	assert.Error(t, ValidateSecretAccessKey(""))
}

func TestValidateRegion(t *testing.T) {
	assert.NoError(t, ValidateRegion("us-east-1"))
	assert.NoError(t, ValidateRegion(""), "region is optional")
	assert.Error(t, ValidateRegion("us_east_1"))
}

func TestValidationErrorNamesField(t *testing.T) {
	err := ValidateName("bad name")
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "profile name", verr.Field)
}
