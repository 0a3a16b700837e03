package root

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ssotools/ssoctl/cmd/configure"
	"github.com/ssotools/ssoctl/internal/config"
	"github.com/ssotools/ssoctl/internal/creds"
	"github.com/ssotools/ssoctl/internal/oidc"
	"github.com/ssotools/ssoctl/internal/refresh"
	promptutils "github.com/ssotools/ssoctl/utils/prompt"
)

type RootDependencies struct {
	Fs        afero.Fs
	Auth      oidc.Authenticator
	Exchanger creds.Exchanger
	Chainer   creds.Chainer
	Out       io.Writer
}

// DefaultDependencies wires the real components: OS filesystem, browser
// opener, and SDK-backed SSO OIDC, SSO, and STS clients.
func DefaultDependencies() RootDependencies {
	return RootDependencies{
		Fs:        afero.NewOsFs(),
		Auth:      oidc.NewDeviceAuthenticator(oidc.NewBrowserOpener(), os.Stdout),
		Exchanger: creds.NewRoleExchanger(),
		Chainer:   creds.NewRoleChainer(),
		Out:       os.Stdout,
	}
}

func NewRootCmd(deps RootDependencies) *cobra.Command {
	var assumeRoles bool

	rootCmd := &cobra.Command{
		Use:   "ssoctl <group>",
		Short: "Refresh AWS SSO credentials for a group of profiles",
		Long: `ssoctl drives the AWS SSO device authorization flow once per run and
refreshes the temporary credentials of every profile in the named group,
merging them into the shared credentials file.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := config.DefaultPath()
			if err != nil {
				return err
			}

			cfg, err := config.Load(deps.Fs, configPath)
			if err != nil {
				return err
			}

			storePath, err := creds.DefaultStorePath()
			if err != nil {
				return err
			}

			refresher := &refresh.Refresher{
				Auth:      deps.Auth,
				Exchanger: deps.Exchanger,
				Chainer:   deps.Chainer,
				Store:     creds.NewStore(deps.Fs, storePath),
				Out:       deps.Out,
			}
			return refresher.Run(cmd.Context(), cfg, args[0], assumeRoles)
		},
	}

	rootCmd.Flags().BoolVar(&assumeRoles, "assume-roles", false, "Also assume each profile's chained roles")

	rootCmd.AddCommand(configure.NewConfigureCmd(configure.ConfigureDependencies{
		Prompter: promptutils.NewPrompt(),
		Fs:       deps.Fs,
		Out:      deps.Out,
	}))

	return rootCmd
}
