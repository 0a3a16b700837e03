package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	ini "gopkg.in/ini.v1"

	"github.com/ssotools/ssoctl/models"
)

var ErrNoConfigFile = errors.New("no configuration file found")

const (
	keyProfiles  = "profiles"
	keyStartURL  = "start_url"
	keyRegion    = "region"
	keyAccountID = "account_id"
	keyRole      = "role"
	keyAssumes   = "assumes"
)

// Config is the parsed group/profile configuration. Sections carrying a
// "profiles" key are groups; sections carrying "account_id" are profiles.
type Config struct {
	file *ini.File
}

// HomeDir resolves the user's home directory from the environment, trying
// HOME first and USERPROFILE second.
func HomeDir() (string, error) {
	if home := os.Getenv("HOME"); home != "" {
		return filepath.FromSlash(home), nil
	}
	if home := os.Getenv("USERPROFILE"); home != "" {
		return filepath.FromSlash(home), nil
	}
	return "", errors.New("unable to determine home directory: HOME and USERPROFILE are unset")
}

// DefaultPath returns the configuration file location under the user's
// home directory.
func DefaultPath() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ssoctl", "config"), nil
}

// Load reads and parses the configuration file at path.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", ErrNoConfigFile, path)
		}
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	file, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}

	return &Config{file: file}, nil
}

// New returns an empty configuration, used by the configure command when no
// file exists yet.
func New() *Config {
	return &Config{file: ini.Empty()}
}

// Group looks up a group section by name.
func (c *Config) Group(name string) (*models.Group, bool) {
	sec, err := c.file.GetSection(name)
	if err != nil {
		return nil, false
	}

	return &models.Group{
		Name:     name,
		StartURL: sec.Key(keyStartURL).String(),
		Region:   sec.Key(keyRegion).String(),
		Profiles: splitList(sec.Key(keyProfiles).String()),
	}, true
}

// Profile looks up a profile section by name.
func (c *Config) Profile(name string) (*models.Profile, bool) {
	sec, err := c.file.GetSection(name)
	if err != nil {
		return nil, false
	}

	return &models.Profile{
		Name:      name,
		AccountID: sec.Key(keyAccountID).String(),
		Role:      sec.Key(keyRole).String(),
		Assumes:   splitList(sec.Key(keyAssumes).String()),
	}, true
}

// SetGroup writes a group section, replacing any existing one.
func (c *Config) SetGroup(group *models.Group) {
	sec := c.file.Section(group.Name)
	sec.Key(keyProfiles).SetValue(strings.Join(group.Profiles, ","))
	sec.Key(keyStartURL).SetValue(group.StartURL)
	sec.Key(keyRegion).SetValue(group.Region)
}

// SetProfile writes a profile section, replacing any existing one.
func (c *Config) SetProfile(profile *models.Profile) {
	sec := c.file.Section(profile.Name)
	sec.Key(keyAccountID).SetValue(profile.AccountID)
	sec.Key(keyRole).SetValue(profile.Role)
	if len(profile.Assumes) > 0 {
		sec.Key(keyAssumes).SetValue(strings.Join(profile.Assumes, ","))
	}
}

// Save writes the configuration file, creating parent directories as needed.
func (c *Config) Save(fs afero.Fs, path string) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create configuration directory: %w", err)
	}

	var buf strings.Builder
	if _, err := c.file.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to serialize configuration: %w", err)
	}

	if err := afero.WriteFile(fs, path, []byte(buf.String()), 0o600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}
	return nil
}

// ValidateGroup checks that a group and all of its profiles are usable
// before any network call is made. Checks run in a fixed order and the
// first violation is returned.
func ValidateGroup(cfg *Config, groupName string) error {
	group, ok := cfg.Group(groupName)
	if !ok {
		return fmt.Errorf("group %q not found in configuration", groupName)
	}

	if len(group.Profiles) == 0 {
		return fmt.Errorf("group %q has no profiles configured", groupName)
	}

	if group.StartURL == "" {
		return fmt.Errorf("group %q is missing start_url", groupName)
	}

	if group.Region == "" {
		return fmt.Errorf("group %q is missing region", groupName)
	}

	for _, name := range group.Profiles {
		profile, ok := cfg.Profile(name)
		if !ok {
			return fmt.Errorf("profile %q of group %q not found in configuration", name, groupName)
		}
		if profile.AccountID == "" {
			return fmt.Errorf("profile %q is missing account_id", name)
		}
		if profile.Role == "" {
			return fmt.Errorf("profile %q is missing role", name)
		}
	}

	return nil
}

// splitList parses a comma-separated value, dropping blank entries so a
// lone empty string counts as an empty list.
func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
