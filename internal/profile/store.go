package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/ini.v1"
)

const (
	keyAccessKeyID     = "aws_access_key_id"
	keySecretAccessKey = "aws_secret_access_key"
)

// Store reads and writes the AWS config and credentials files in one
// directory. Writes are append-only: existing sections are never rewritten
// in place.
type Store struct {
	dir string
}

// NewStore creates a store rooted at the given directory
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultStore returns a store over ~/.aws
func DefaultStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate home directory: %w", err)
	}
	return NewStore(filepath.Join(home, ".aws")), nil
}

// ConfigPath returns the path of the config file
func (s *Store) ConfigPath() string {
	return filepath.Join(s.dir, "config")
}

// CredentialsPath returns the path of the credentials file
func (s *Store) CredentialsPath() string {
	return filepath.Join(s.dir, "credentials")
}

// Load reads all profiles from the config file. A missing file is created
// empty and yields no profiles. Sections other than [default] and
// [profile <name>] are ignored.
func (s *Store) Load() ([]Profile, error) {
	path := s.ConfigPath()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", s.dir, err)
		}
		if err := os.WriteFile(path, nil, 0o600); err != nil {
			return nil, fmt.Errorf("failed to create config file: %w", err)
		}
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, nil
	}

	cfg, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	var profiles []Profile
	for _, section := range cfg.Sections() {
		name, ok := profileNameFromSection(section.Name())
		if !ok {
			continue
		}
		profiles = append(profiles, FromSection(name, section.KeysHash()))
	}

	sort.Slice(profiles, func(i, j int) bool {
		// "default" first, then alphabetical
		if profiles[i].Name == "default" {
			return true
		}
		if profiles[j].Name == "default" {
			return false
		}
		return profiles[i].Name < profiles[j].Name
	})

	return profiles, nil
}

// profileNameFromSection maps a config section name to a profile name.
// [default] keeps its name, [profile X] maps to X, anything else (including
// the ini library's synthetic DEFAULT section) is skipped.
func profileNameFromSection(section string) (string, bool) {
	if section == ini.DefaultSection {
		return "", false
	}
	if section == "default" {
		return "default", true
	}
	if name, ok := strings.CutPrefix(section, "profile "); ok {
		return strings.TrimSpace(name), true
	}
	return "", false
}

// Append writes a new profile section at the end of the config file.
// Returns ErrDuplicateName if a section for the profile's name already
// exists.
func (s *Store) Append(p Profile) error {
	fields := p.fields()
	lines := make([]string, 0, len(fields))
	for _, kv := range fields {
		lines = append(lines, kv[0]+" = "+kv[1])
	}
	err := s.appendSection(s.ConfigPath(), p.SectionName(), lines)
	if err != nil {
		return fmt.Errorf("profile %q: %w", p.Name, err)
	}
	return nil
}

// AppendCredentials writes a static key pair for the named profile to the
// credentials file. The credentials file keys sections by bare profile
// name, [<name>] rather than [profile <name>].
func (s *Store) AppendCredentials(name, accessKeyID, secretAccessKey string) error {
	lines := []string{
		keyAccessKeyID + " = " + accessKeyID,
		keySecretAccessKey + " = " + secretAccessKey,
	}
	if err := s.appendSection(s.CredentialsPath(), name, lines); err != nil {
		return fmt.Errorf("credentials for %q: %w", name, err)
	}
	return nil
}

// HasCredentials reports whether the credentials file has a section for
// the named profile. A missing credentials file means no credentials.
func (s *Store) HasCredentials(name string) (bool, error) {
	data, err := os.ReadFile(s.CredentialsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return sectionExists(string(data), name), nil
}

// appendSection appends [section] followed by the given lines to path,
// creating the file and its directory as needed. A newline is inserted
// first when the file is non-empty and not newline-terminated.
func (s *Store) appendSection(path, section string, lines []string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", s.dir, err)
	}

	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if sectionExists(string(existing), section) {
		return ErrDuplicateName
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var sb strings.Builder
	if len(existing) > 0 && existing[len(existing)-1] != '\n' {
		sb.WriteByte('\n')
	}
	sb.WriteString("[" + section + "]\n")
	for _, line := range lines {
		sb.WriteString(line + "\n")
	}

	if _, err := f.WriteString(sb.String()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// sectionExists checks for an exact bracketed section header line. Exact
// matching avoids prefix collisions such as [my-profile] vs [my-profile-2].
func sectionExists(content, section string) bool {
	header := "[" + section + "]"
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == header {
			return true
		}
	}
	return false
}
