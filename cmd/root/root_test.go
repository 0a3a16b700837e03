package root_test

import (
	"bytes"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssotools/ssoctl/cmd/root"
	mock_ssoctl "github.com/ssotools/ssoctl/tests/mock"
	"github.com/ssotools/ssoctl/models"
)

const testConfig = `[prod]
profiles = prod-a
start_url = https://example.awsapps.com/start
region = eu-west-1

[prod-a]
account_id = 111
role = Admin
`

func setup(t *testing.T, ctrl *gomock.Controller, configContent string) (root.RootDependencies, afero.Fs, *bytes.Buffer) {
	t.Helper()
	t.Setenv("HOME", "/home/test")

	fs := afero.NewMemMapFs()
	if configContent != "" {
		require.NoError(t, afero.WriteFile(fs, "/home/test/.config/ssoctl/config", []byte(configContent), 0o600))
	}

	out := &bytes.Buffer{}
	deps := root.RootDependencies{
		Fs:        fs,
		Auth:      mock_ssoctl.NewMockAuthenticator(ctrl),
		Exchanger: mock_ssoctl.NewMockExchanger(ctrl),
		Chainer:   mock_ssoctl.NewMockChainer(ctrl),
		Out:       out,
	}
	return deps, fs, out
}

func TestRootRefreshesGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps, fs, out := setup(t, ctrl, testConfig)

	deps.Auth.(*mock_ssoctl.MockAuthenticator).EXPECT().
		Authenticate(gomock.Any(), "https://example.awsapps.com/start", "eu-west-1").
		Return("T1", nil)
	deps.Exchanger.(*mock_ssoctl.MockExchanger).EXPECT().
		Exchange(gomock.Any(), "eu-west-1", "T1", "111", "Admin").
		Return(&models.AWSCredentials{
			AccessKeyID:     "AK1",
			SecretAccessKey: "SK1",
			SessionToken:    "ST1",
			Expiration:      "2026-08-31T12:00:00Z",
		}, nil)

	cmd := root.NewRootCmd(deps)
	cmd.SetArgs([]string{"prod"})
	cmd.SetOut(out)
	cmd.SetErr(out)

	require.NoError(t, cmd.Execute())

	data, err := afero.ReadFile(fs, "/home/test/.aws/credentials")
	require.NoError(t, err)
	assert.Contains(t, string(data), "[prod-a]")
	assert.Contains(t, string(data), "AK1")
	assert.Contains(t, out.String(), "Refreshed profile prod-a")
}

func TestRootUnknownGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps, fs, out := setup(t, ctrl, testConfig)

	cmd := root.NewRootCmd(deps)
	cmd.SetArgs([]string{"staging"})
	cmd.SetOut(out)
	cmd.SetErr(out)

	err := cmd.Execute()

	assert.EqualError(t, err, `group "staging" not found in configuration`)

	exists, statErr := afero.Exists(fs, "/home/test/.aws/credentials")
	require.NoError(t, statErr)
	assert.False(t, exists)
}

func TestRootMissingConfigFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps, _, out := setup(t, ctrl, "")

	cmd := root.NewRootCmd(deps)
	cmd.SetArgs([]string{"prod"})
	cmd.SetOut(out)
	cmd.SetErr(out)

	err := cmd.Execute()

	assert.ErrorContains(t, err, "no configuration file found")
}

func TestRootRequiresGroupArgument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps, _, out := setup(t, ctrl, testConfig)

	cmd := root.NewRootCmd(deps)
	cmd.SetArgs([]string{})
	cmd.SetOut(out)
	cmd.SetErr(out)

	assert.Error(t, cmd.Execute())
}
