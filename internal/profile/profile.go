package profile

// Kind identifies how a profile authenticates
type Kind int

const (
	// KindStandard uses a long-lived access key pair from the credentials file
	KindStandard Kind = iota
	// KindSSO authenticates through the AWS SSO portal flow
	KindSSO
	// KindFederated authenticates through an Okta browser-based OIDC flow
	KindFederated
)

// String returns the display label for a profile kind
func (k Kind) String() string {
	switch k {
	case KindSSO:
		return "SSO"
	case KindFederated:
		return "Okta"
	default:
		return "Standard"
	}
}

// Designator keys: the presence of one of these in a config section
// determines the profile kind. No explicit type field is ever written.
const (
	keySSOStartURL  = "sso_start_url"
	keySSORegion    = "sso_region"
	keySSOAccountID = "sso_account_id"
	keySSORoleName  = "sso_role_name"
	keyRegion       = "region"

	keyOktaOrgDomain  = "okta_org_domain"
	keyOktaClientID   = "okta_oidc_client_id"
	keyOktaFedAppID   = "okta_aws_account_federation_app_id"
	keyOktaIAMRoleARN = "okta_aws_iam_role"
	keyOktaIAMIdPARN  = "okta_aws_iam_idp"
)

// Profile represents one named AWS profile from ~/.aws/config
type Profile struct {
	Name string
	Kind Kind

	// SSO fields
	SSOStartURL  string
	SSORegion    string
	SSOAccountID string
	SSORoleName  string

	// Okta federation fields
	OktaOrgDomain  string
	OktaClientID   string
	OktaFedAppID   string // optional
	OktaIAMRoleARN string // optional
	OktaIAMIdPARN  string // optional

	// Default region for the profile, optional
	Region string
}

// ClassifyKind determines the profile kind from a section's key set.
// Okta takes priority over SSO; a section with neither designator is
// a standard profile.
func ClassifyKind(keys map[string]string) Kind {
	if _, ok := keys[keyOktaOrgDomain]; ok {
		return KindFederated
	}
	if _, ok := keys[keySSOStartURL]; ok {
		return KindSSO
	}
	return KindStandard
}

// FromSection builds a Profile from a config section's key-value pairs
func FromSection(name string, keys map[string]string) Profile {
	return Profile{
		Name:           name,
		Kind:           ClassifyKind(keys),
		SSOStartURL:    keys[keySSOStartURL],
		SSORegion:      keys[keySSORegion],
		SSOAccountID:   keys[keySSOAccountID],
		SSORoleName:    keys[keySSORoleName],
		OktaOrgDomain:  keys[keyOktaOrgDomain],
		OktaClientID:   keys[keyOktaClientID],
		OktaFedAppID:   keys[keyOktaFedAppID],
		OktaIAMRoleARN: keys[keyOktaIAMRoleARN],
		OktaIAMIdPARN:  keys[keyOktaIAMIdPARN],
		Region:         keys[keyRegion],
	}
}

// fields returns the on-disk key/value pairs in write order. Absent
// optional fields are omitted entirely, never written as empty.
func (p Profile) fields() [][2]string {
	var out [][2]string
	add := func(key, value string) {
		if value != "" {
			out = append(out, [2]string{key, value})
		}
	}
	add(keySSOStartURL, p.SSOStartURL)
	add(keySSORegion, p.SSORegion)
	add(keySSOAccountID, p.SSOAccountID)
	add(keySSORoleName, p.SSORoleName)
	add(keyOktaOrgDomain, p.OktaOrgDomain)
	add(keyOktaClientID, p.OktaClientID)
	add(keyOktaFedAppID, p.OktaFedAppID)
	add(keyOktaIAMRoleARN, p.OktaIAMRoleARN)
	add(keyOktaIAMIdPARN, p.OktaIAMIdPARN)
	add(keyRegion, p.Region)
	return out
}

// SectionName returns the config-file section header name for the profile.
// The reserved name "default" maps to the unqualified [default] section.
func (p Profile) SectionName() string {
	if p.Name == "default" {
		return "default"
	}
	return "profile " + p.Name
}
