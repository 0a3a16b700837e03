package creds_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssotools/ssoctl/internal/creds"
	"github.com/ssotools/ssoctl/models"
)

const storePath = "/home/test/.aws/credentials"

func set1() *models.AWSCredentials {
	return &models.AWSCredentials{
		AccessKeyID:     "AK1",
		SecretAccessKey: "SK1",
		SessionToken:    "ST1",
	}
}

func TestLoadMissingFileStartsEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := creds.NewStore(fs, storePath)

	require.NoError(t, store.Load())

	store.EnsureSection("prod-a")
	store.SetCredentials("prod-a", set1())
	require.NoError(t, store.Save())

	data, err := afero.ReadFile(fs, storePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[prod-a]")
	assert.Contains(t, string(data), "aws_access_key_id")
}

func TestSetCredentialsPreservesOtherKeysAndSections(t *testing.T) {
	fs := afero.NewMemMapFs()
	existing := `[prod-a]
aws_access_key_id = OLD
aws_secret_access_key = OLD
aws_session_token = OLD
region = eu-west-1

[other-profile]
aws_access_key_id = KEEP
custom_key = keep-me
`
	require.NoError(t, afero.WriteFile(fs, storePath, []byte(existing), 0o600))

	store := creds.NewStore(fs, storePath)
	require.NoError(t, store.Load())
	store.SetCredentials("prod-a", set1())
	require.NoError(t, store.Save())

	reloaded := creds.NewStore(fs, storePath)
	require.NoError(t, reloaded.Load())

	updated, err := reloaded.Credentials("prod-a")
	require.NoError(t, err)
	assert.Equal(t, "AK1", updated.AccessKeyID)
	assert.Equal(t, "SK1", updated.SecretAccessKey)
	assert.Equal(t, "ST1", updated.SessionToken)

	data, err := afero.ReadFile(fs, storePath)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "region")
	assert.Contains(t, content, "eu-west-1")
	assert.Contains(t, content, "[other-profile]")
	assert.Contains(t, content, "custom_key")
	assert.Contains(t, content, "keep-me")
	assert.Contains(t, content, "KEEP")
}

func TestSetCredentialsTwiceKeepsOnlySecondValues(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := creds.NewStore(fs, storePath)
	require.NoError(t, store.Load())

	store.EnsureSection("prod-a")
	store.SetCredentials("prod-a", set1())
	store.SetCredentials("prod-a", &models.AWSCredentials{
		AccessKeyID:     "AK2",
		SecretAccessKey: "SK2",
		SessionToken:    "ST2",
	})
	require.NoError(t, store.Save())

	reloaded := creds.NewStore(fs, storePath)
	require.NoError(t, reloaded.Load())
	current, err := reloaded.Credentials("prod-a")
	require.NoError(t, err)
	assert.Equal(t, "AK2", current.AccessKeyID)
	assert.Equal(t, "SK2", current.SecretAccessKey)
	assert.Equal(t, "ST2", current.SessionToken)

	data, err := afero.ReadFile(fs, storePath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "AK1")
}

func TestCredentialsForUnknownProfile(t *testing.T) {
	store := creds.NewStore(afero.NewMemMapFs(), storePath)
	require.NoError(t, store.Load())

	_, err := store.Credentials("nope")

	assert.ErrorContains(t, err, `no credentials for profile "nope"`)
}

func TestCredentialsIncompleteSection(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, storePath, []byte("[p]\nregion = us-east-1\n"), 0o600))

	store := creds.NewStore(fs, storePath)
	require.NoError(t, store.Load())

	_, err := store.Credentials("p")

	assert.ErrorContains(t, err, "incomplete credentials")
}

func TestSaveLeavesDiskUntouchedUntilCalled(t *testing.T) {
	fs := afero.NewMemMapFs()
	original := "[other-profile]\naws_access_key_id = KEEP\n"
	require.NoError(t, afero.WriteFile(fs, storePath, []byte(original), 0o600))

	store := creds.NewStore(fs, storePath)
	require.NoError(t, store.Load())
	store.EnsureSection("prod-a")
	store.SetCredentials("prod-a", set1())

	// No Save yet; the file still has only the pre-existing content.
	data, err := afero.ReadFile(fs, storePath)
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
}
