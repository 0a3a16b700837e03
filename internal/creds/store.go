package creds

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	ini "gopkg.in/ini.v1"

	"github.com/ssotools/ssoctl/internal/config"
	"github.com/ssotools/ssoctl/models"
)

const (
	keyAccessKeyID     = "aws_access_key_id"
	keySecretAccessKey = "aws_secret_access_key"
	keySessionToken    = "aws_session_token"
)

// Store is the shared credentials file, held in memory for the run.
// All mutation happens on the parsed document; nothing touches disk until
// Save, so a fatal error mid-run leaves the file as it was.
type Store struct {
	fs   afero.Fs
	path string
	file *ini.File
}

// DefaultStorePath returns the shared credentials file location under the
// user's home directory.
func DefaultStorePath() (string, error) {
	home, err := config.HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".aws", "credentials"), nil
}

func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Load reads the credentials file. A missing file is not an error; the
// store starts empty and the file is created on Save.
func (s *Store) Load() error {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.file = ini.Empty()
			return nil
		}
		return fmt.Errorf("failed to read credentials file: %w", err)
	}

	file, err := ini.Load(data)
	if err != nil {
		return fmt.Errorf("failed to parse credentials file: %w", err)
	}
	s.file = file
	return nil
}

// EnsureSection creates the profile's section when it does not exist yet.
func (s *Store) EnsureSection(profile string) {
	s.file.Section(profile)
}

// SetCredentials overwrites exactly the three credential keys of the
// profile's section. Other keys in the section and all other sections are
// left untouched.
func (s *Store) SetCredentials(profile string, creds *models.AWSCredentials) {
	sec := s.file.Section(profile)
	sec.Key(keyAccessKeyID).SetValue(creds.AccessKeyID)
	sec.Key(keySecretAccessKey).SetValue(creds.SecretAccessKey)
	sec.Key(keySessionToken).SetValue(creds.SessionToken)
}

// Credentials returns the credential set currently held for a profile.
func (s *Store) Credentials(profile string) (*models.AWSCredentials, error) {
	sec, err := s.file.GetSection(profile)
	if err != nil {
		return nil, fmt.Errorf("no credentials for profile %q", profile)
	}

	creds := &models.AWSCredentials{
		AccessKeyID:     sec.Key(keyAccessKeyID).String(),
		SecretAccessKey: sec.Key(keySecretAccessKey).String(),
		SessionToken:    sec.Key(keySessionToken).String(),
	}
	if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
		return nil, fmt.Errorf("incomplete credentials for profile %q", profile)
	}
	return creds, nil
}

// Save rewrites the whole credentials file once, creating the parent
// directory as needed.
func (s *Store) Save() error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create credentials directory: %w", err)
	}

	var buf bytes.Buffer
	if _, err := s.file.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to serialize credentials: %w", err)
	}

	if err := afero.WriteFile(s.fs, s.path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}
	return nil
}
