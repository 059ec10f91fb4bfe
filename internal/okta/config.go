// Package okta maintains the okta-aws-cli configuration file,
// ~/.okta/okta.yaml. okta-aws-cli reads per-profile federation settings
// from the awscli.profiles map in that file.
package okta

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vietdv277/aash/internal/profile"
)

// ProfileEntry is one profile's federation settings inside okta.yaml
type ProfileEntry struct {
	OrgDomain  string `yaml:"org-domain"`
	ClientID   string `yaml:"oidc-client-id"`
	FedAppID   string `yaml:"aws-acct-fed-app-id,omitempty"`
	IAMRoleARN string `yaml:"aws-iam-role,omitempty"`
	IAMIdPARN  string `yaml:"aws-iam-idp,omitempty"`
}

// Config mirrors the fixed okta.yaml scaffold: awscli: profiles: <name>: ...
type Config struct {
	AWSCLI struct {
		Profiles map[string]ProfileEntry `yaml:"profiles"`
	} `yaml:"awscli"`
}

// DefaultPath returns ~/.okta/okta.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".okta", "okta.yaml"), nil
}

// WriteProfile adds the federation entry for an Okta profile to the
// okta.yaml at path, creating the file and its scaffold when missing.
func WriteProfile(path string, p profile.Profile) error {
	cfg, err := load(path)
	if err != nil {
		return err
	}

	if cfg.AWSCLI.Profiles == nil {
		cfg.AWSCLI.Profiles = make(map[string]ProfileEntry)
	}
	cfg.AWSCLI.Profiles[p.Name] = ProfileEntry{
		OrgDomain:  p.OktaOrgDomain,
		ClientID:   p.OktaClientID,
		FedAppID:   p.OktaFedAppID,
		IAMRoleARN: p.OktaIAMRoleARN,
		IAMIdPARN:  p.OktaIAMIdPARN,
	}

	return save(path, cfg)
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read okta.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse okta.yaml: %w", err)
	}
	return &cfg, nil
}

func save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal okta.yaml: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write okta.yaml: %w", err)
	}
	return nil
}
