package config_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssotools/ssoctl/internal/config"
	"github.com/ssotools/ssoctl/models"
)

const sampleConfig = `[prod]
profiles = prod-a, prod-b
start_url = https://example.awsapps.com/start
region = eu-west-1

[prod-a]
account_id = 111
role = Admin
assumes = prod-audit

[prod-b]
account_id = 222
role = ReadOnly

[prod-audit]
account_id = 333
role = Auditor
`

func writeConfig(t *testing.T, content string) (afero.Fs, *config.Config) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/home/test/.config/ssoctl/config", []byte(content), 0o600))

	cfg, err := config.Load(fs, "/home/test/.config/ssoctl/config")
	require.NoError(t, err)
	return fs, cfg
}

func TestLoadMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := config.Load(fs, "/home/test/.config/ssoctl/config")

	assert.ErrorIs(t, err, config.ErrNoConfigFile)
}

func TestGroupAndProfileAccessors(t *testing.T) {
	_, cfg := writeConfig(t, sampleConfig)

	group, ok := cfg.Group("prod")
	require.True(t, ok)
	assert.Equal(t, "https://example.awsapps.com/start", group.StartURL)
	assert.Equal(t, "eu-west-1", group.Region)
	assert.Equal(t, []string{"prod-a", "prod-b"}, group.Profiles)

	profile, ok := cfg.Profile("prod-a")
	require.True(t, ok)
	assert.Equal(t, "111", profile.AccountID)
	assert.Equal(t, "Admin", profile.Role)
	assert.Equal(t, []string{"prod-audit"}, profile.Assumes)

	_, ok = cfg.Group("staging")
	assert.False(t, ok)
}

func TestValidateGroup(t *testing.T) {
	tests := []struct {
		name    string
		content string
		group   string
		wantErr string
	}{
		{
			name:    "valid group",
			content: sampleConfig,
			group:   "prod",
		},
		{
			name:    "unknown group",
			content: sampleConfig,
			group:   "staging",
			wantErr: `group "staging" not found in configuration`,
		},
		{
			name:    "empty profiles list",
			content: "[g]\nprofiles =\nstart_url = https://x\nregion = us-east-1\n",
			group:   "g",
			wantErr: `group "g" has no profiles configured`,
		},
		{
			name:    "single empty-string profile entry",
			content: "[g]\nprofiles = ,\nstart_url = https://x\nregion = us-east-1\n",
			group:   "g",
			wantErr: `group "g" has no profiles configured`,
		},
		{
			name:    "missing start_url",
			content: "[g]\nprofiles = p\nregion = us-east-1\n\n[p]\naccount_id = 1\nrole = r\n",
			group:   "g",
			wantErr: `group "g" is missing start_url`,
		},
		{
			name:    "missing region",
			content: "[g]\nprofiles = p\nstart_url = https://x\n\n[p]\naccount_id = 1\nrole = r\n",
			group:   "g",
			wantErr: `group "g" is missing region`,
		},
		{
			name:    "profile section missing",
			content: "[g]\nprofiles = p\nstart_url = https://x\nregion = us-east-1\n",
			group:   "g",
			wantErr: `profile "p" of group "g" not found in configuration`,
		},
		{
			name:    "profile missing account_id",
			content: "[g]\nprofiles = p\nstart_url = https://x\nregion = us-east-1\n\n[p]\nrole = r\n",
			group:   "g",
			wantErr: `profile "p" is missing account_id`,
		},
		{
			name:    "profile missing role",
			content: "[g]\nprofiles = p\nstart_url = https://x\nregion = us-east-1\n\n[p]\naccount_id = 1\n",
			group:   "g",
			wantErr: `profile "p" is missing role`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cfg := writeConfig(t, tt.content)

			err := config.ValidateGroup(cfg, tt.group)

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidationOrderReportsFirstViolation(t *testing.T) {
	// Both start_url and region are missing; the profiles check passes, so
	// start_url is the first violation in the fixed order.
	_, cfg := writeConfig(t, "[g]\nprofiles = p\n\n[p]\naccount_id = 1\nrole = r\n")

	err := config.ValidateGroup(cfg, "g")

	assert.EqualError(t, err, `group "g" is missing start_url`)
}

func TestSaveRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := config.New()

	cfg.SetProfile(&models.Profile{Name: "dev-a", AccountID: "444", Role: "Dev", Assumes: []string{"dev-ops"}})
	cfg.SetGroup(&models.Group{
		Name:     "dev",
		StartURL: "https://dev.awsapps.com/start",
		Region:   "us-west-2",
		Profiles: []string{"dev-a"},
	})

	require.NoError(t, cfg.Save(fs, "/home/test/.config/ssoctl/config"))

	loaded, err := config.Load(fs, "/home/test/.config/ssoctl/config")
	require.NoError(t, err)

	group, ok := loaded.Group("dev")
	require.True(t, ok)
	assert.Equal(t, []string{"dev-a"}, group.Profiles)

	profile, ok := loaded.Profile("dev-a")
	require.True(t, ok)
	assert.Equal(t, "444", profile.AccountID)
	assert.Equal(t, []string{"dev-ops"}, profile.Assumes)
}

func TestHomeDir(t *testing.T) {
	t.Setenv("HOME", "/home/test")
	home, err := config.HomeDir()
	assert.NoError(t, err)
	assert.Equal(t, "/home/test", home)

	t.Setenv("HOME", "")
	t.Setenv("USERPROFILE", "/Users/test")
	home, err = config.HomeDir()
	assert.NoError(t, err)
	assert.Equal(t, "/Users/test", home)

	t.Setenv("USERPROFILE", "")
	_, err = config.HomeDir()
	assert.Error(t, err)
}
