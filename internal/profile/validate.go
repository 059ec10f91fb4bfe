package profile

import "regexp"

var (
	nameRe      = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	accessKeyRe = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	secretKeyRe = regexp.MustCompile(`^[A-Za-z0-9+/=]+$`)
	regionRe    = regexp.MustCompile(`^[A-Za-z0-9-]+$`)
)

// ValidateName checks a profile name: alphanumeric, hyphens and
// underscores only, non-empty.
func ValidateName(name string) error {
	if name == "" {
		return &ValidationError{Field: "profile name", Reason: "cannot be empty"}
	}
	if !nameRe.MatchString(name) {
		return &ValidationError{
			Field:  "profile name",
			Reason: "only alphanumeric characters, hyphens and underscores are allowed",
		}
	}
	return nil
}

// ValidateAccessKeyID checks an access key id. AWS issues several key
// prefixes (AKIA, ASIA, ...) so only the character set is enforced.
func ValidateAccessKeyID(key string) error {
	if key == "" {
		return &ValidationError{Field: "access key ID", Reason: "cannot be empty"}
	}
	if !accessKeyRe.MatchString(key) {
		return &ValidationError{
			Field:  "access key ID",
			Reason: "only alphanumeric characters are allowed",
		}
	}
	return nil
}

// ValidateSecretAccessKey checks a secret access key against the base64
// alphabet.
func ValidateSecretAccessKey(key string) error {
	if key == "" {
		return &ValidationError{Field: "secret access key", Reason: "cannot be empty"}
	}
	if !secretKeyRe.MatchString(key) {
		return &ValidationError{Field: "secret access key", Reason: "contains invalid characters"}
	}
	return nil
}

// ValidateRegion checks a region name: alphanumeric and hyphens.
// The empty string is accepted since region is optional everywhere.
func ValidateRegion(region string) error {
	if region == "" {
		return nil
	}
	if !regionRe.MatchString(region) {
		return &ValidationError{
			Field:  "region",
			Reason: "only alphanumeric characters and hyphens are allowed",
		}
	}
	return nil
}
