package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyKind(t *testing.T) {
	tests := []struct {
		name string
		keys map[string]string
		want Kind
	}{
		{
			name: "region only is standard",
			keys: map[string]string{"region": "us-east-1"},
			want: KindStandard,
		},
		{
			name: "empty section is standard",
			keys: map[string]string{},
			want: KindStandard,
		},
		{
			name: "sso start url makes it sso",
			keys: map[string]string{"region": "us-east-1", "sso_start_url": "https://x.awsapps.com/start"},
			want: KindSSO,
		},
		{
			name: "okta org domain makes it federated",
			keys: map[string]string{"okta_org_domain": "x.okta.com"},
			want: KindFederated,
		},
		{
			name: "okta wins over sso",
			keys: map[string]string{
				"sso_start_url":   "https://x.awsapps.com/start",
				"okta_org_domain": "x.okta.com",
			},
			want: KindFederated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyKind(tt.keys))
		})
	}
}

func TestFromSection(t *testing.T) {
	p := FromSection("dev", map[string]string{
		"sso_start_url":  "https://x.awsapps.com/start",
		"sso_region":     "us-east-1",
		"sso_account_id": "123456789012",
		"sso_role_name":  "Admin",
		"region":         "eu-west-1",
	})

	assert.Equal(t, "dev", p.Name)
	assert.Equal(t, KindSSO, p.Kind)
	assert.Equal(t, "https://x.awsapps.com/start", p.SSOStartURL)
	assert.Equal(t, "us-east-1", p.SSORegion)
	assert.Equal(t, "123456789012", p.SSOAccountID)
	assert.Equal(t, "Admin", p.SSORoleName)
	assert.Equal(t, "eu-west-1", p.Region)
	assert.Empty(t, p.OktaOrgDomain)
}

func TestSectionName(t *testing.T) {
	assert.Equal(t, "default", Profile{Name: "default"}.SectionName())
	assert.Equal(t, "profile dev", Profile{Name: "dev"}.SectionName())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Standard", KindStandard.String())
	assert.Equal(t, "SSO", KindSSO.String())
	assert.Equal(t, "Okta", KindFederated.String())
}
