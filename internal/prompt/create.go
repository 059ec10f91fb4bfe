// Package prompt implements the interactive profile creation flows. Each
// flow collects fields one at a time, validates them up front, and writes
// the finished profile through the config store. Any rejected input aborts
// the whole flow; the caller's menu loop decides whether to start over.
package prompt

import (
	"fmt"

	"github.com/vietdv277/aash/internal/okta"
	"github.com/vietdv277/aash/internal/profile"
	"github.com/vietdv277/aash/internal/ui"
)

const defaultRegion = "us-east-1"

// AskFunc collects one field from the user
type AskFunc func(label, help, defaultVal string) (string, error)

// Creator runs the profile creation flows
type Creator struct {
	store    *profile.Store
	oktaPath string
	ask      AskFunc
}

// NewCreator creates a Creator over the given store, writing federated
// entries to the okta.yaml at oktaPath.
func NewCreator(store *profile.Store, oktaPath string) *Creator {
	return &Creator{store: store, oktaPath: oktaPath, ask: ui.PromptText}
}

// CreateSSO collects and stores a new SSO profile
func (c *Creator) CreateSSO() (profile.Profile, error) {
	name, err := c.promptName("e.g. my-org-dev")
	if err != nil {
		return profile.Profile{}, err
	}

	startURL, err := c.askRequired("SSO start URL:",
		"The AWS SSO portal URL (e.g. https://my-sso-portal.awsapps.com/start)", "SSO start URL")
	if err != nil {
		return profile.Profile{}, err
	}

	ssoRegion, err := c.askRegion("SSO region:",
		"The AWS region where your SSO directory is hosted")
	if err != nil {
		return profile.Profile{}, err
	}

	accountID, err := c.askRequired("AWS account ID:",
		"The 12-digit AWS account ID", "account ID")
	if err != nil {
		return profile.Profile{}, err
	}

	roleName, err := c.askRequired("SSO role name:",
		"The role name to assume (e.g. PowerUserAccess)", "role name")
	if err != nil {
		return profile.Profile{}, err
	}

	region, err := c.askRegion("Default region:", "Default AWS region for this profile")
	if err != nil {
		return profile.Profile{}, err
	}

	p := profile.Profile{
		Name:         name,
		Kind:         profile.KindSSO,
		SSOStartURL:  startURL,
		SSORegion:    ssoRegion,
		SSOAccountID: accountID,
		SSORoleName:  roleName,
		Region:       region,
	}

	if err := c.store.Append(p); err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}

// CreateOkta collects and stores a new Okta federated profile, including
// its entry in okta.yaml.
func (c *Creator) CreateOkta() (profile.Profile, error) {
	name, err := c.promptName("e.g. my-org-okta")
	if err != nil {
		return profile.Profile{}, err
	}

	orgDomain, err := c.askRequired("Okta org domain:",
		"Full host and domain name of the Okta org (e.g. my-org.okta.com)", "Okta org domain")
	if err != nil {
		return profile.Profile{}, err
	}

	clientID, err := c.askRequired("OIDC client ID:",
		"The OIDC Native Application client ID", "OIDC client ID")
	if err != nil {
		return profile.Profile{}, err
	}

	fedAppID, err := c.ask("AWS account federation app ID (optional):",
		"Can be empty if the OIDC app has the okta.users.read.self grant", "")
	if err != nil {
		return profile.Profile{}, err
	}

	iamRole, err := c.ask("AWS IAM role ARN (optional):",
		"e.g. arn:aws:iam::123456789012:role/MyRole", "")
	if err != nil {
		return profile.Profile{}, err
	}

	iamIdP, err := c.ask("AWS IAM identity provider ARN (optional):",
		"e.g. arn:aws:iam::123456789012:saml-provider/okta-idp", "")
	if err != nil {
		return profile.Profile{}, err
	}

	region, err := c.askRegion("Default region:", "Default AWS region for this profile")
	if err != nil {
		return profile.Profile{}, err
	}

	p := profile.Profile{
		Name:           name,
		Kind:           profile.KindFederated,
		OktaOrgDomain:  orgDomain,
		OktaClientID:   clientID,
		OktaFedAppID:   fedAppID,
		OktaIAMRoleARN: iamRole,
		OktaIAMIdPARN:  iamIdP,
		Region:         region,
	}

	if err := c.store.Append(p); err != nil {
		return profile.Profile{}, err
	}
	if err := okta.WriteProfile(c.oktaPath, p); err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}

// CreateStandard collects and stores a new static-credentials profile.
// The key pair goes to the credentials file, everything else to config.
func (c *Creator) CreateStandard() (profile.Profile, error) {
	name, err := c.promptName("e.g. my-dev-account")
	if err != nil {
		return profile.Profile{}, err
	}

	// The credentials file is keyed by bare name, so a standard profile
	// must be free in both files before prompting for secrets.
	hasCreds, err := c.store.HasCredentials(name)
	if err != nil {
		return profile.Profile{}, err
	}
	if hasCreds {
		return profile.Profile{}, fmt.Errorf("credentials for %q: %w", name, profile.ErrDuplicateName)
	}

	accessKeyID, err := c.ask("AWS access key ID:", "e.g. AKIA..., ASIA...", "")
	if err != nil {
		return profile.Profile{}, err
	}
	if err := profile.ValidateAccessKeyID(accessKeyID); err != nil {
		return profile.Profile{}, err
	}

	secretAccessKey, err := c.ask("AWS secret access key:", "", "")
	if err != nil {
		return profile.Profile{}, err
	}
	if err := profile.ValidateSecretAccessKey(secretAccessKey); err != nil {
		return profile.Profile{}, err
	}

	region, err := c.askRegion("Default region:", "Default AWS region for this profile")
	if err != nil {
		return profile.Profile{}, err
	}

	p := profile.Profile{
		Name:   name,
		Kind:   profile.KindStandard,
		Region: region,
	}

	if err := c.store.Append(p); err != nil {
		return profile.Profile{}, err
	}
	if err := c.store.AppendCredentials(name, accessKeyID, secretAccessKey); err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}

// promptName asks for the profile name and checks it is valid and unused
func (c *Creator) promptName(help string) (string, error) {
	name, err := c.ask("Profile name:", "A unique name for this profile ("+help+")", "")
	if err != nil {
		return "", err
	}
	if err := profile.ValidateName(name); err != nil {
		return "", err
	}

	existing, err := c.store.Load()
	if err != nil {
		return "", err
	}
	for _, p := range existing {
		if p.Name == name {
			return "", fmt.Errorf("profile %q: %w", name, profile.ErrDuplicateName)
		}
	}
	return name, nil
}

func (c *Creator) askRequired(label, help, field string) (string, error) {
	v, err := c.ask(label, help, "")
	if err != nil {
		return "", err
	}
	if v == "" {
		return "", &profile.ValidationError{Field: field, Reason: "cannot be empty"}
	}
	return v, nil
}

func (c *Creator) askRegion(label, help string) (string, error) {
	v, err := c.ask(label, help, defaultRegion)
	if err != nil {
		return "", err
	}
	if err := profile.ValidateRegion(v); err != nil {
		return "", err
	}
	return v, nil
}
