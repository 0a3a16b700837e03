package configure

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ssotools/ssoctl/internal/config"
	"github.com/ssotools/ssoctl/models"
	promptutils "github.com/ssotools/ssoctl/utils/prompt"
)

type ConfigureDependencies struct {
	Prompter promptutils.Prompter
	Fs       afero.Fs
	Out      io.Writer
}

// NewConfigureCmd builds the interactive setup command. It walks the user
// through creating a group and its profiles and writes the configuration
// file, merging into an existing one when present.
func NewConfigureCmd(deps ConfigureDependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Interactively create a group and its profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			err := run(deps)
			if errors.Is(err, promptutils.ErrInterrupted) {
				return nil
			}
			return err
		},
	}
}

func run(deps ConfigureDependencies) error {
	path, err := config.DefaultPath()
	if err != nil {
		return err
	}

	cfg, err := config.Load(deps.Fs, path)
	if err != nil {
		if !errors.Is(err, config.ErrNoConfigFile) {
			return err
		}
		cfg = config.New()
	}

	group := &models.Group{}
	group.Name, err = deps.Prompter.PromptRequired("Group name")
	if err != nil {
		return err
	}
	group.StartURL, err = deps.Prompter.PromptRequired("SSO start URL (e.g. https://my-portal.awsapps.com/start)")
	if err != nil {
		return err
	}
	group.Region, err = deps.Prompter.PromptWithDefault("SSO region", "us-east-1")
	if err != nil {
		return err
	}

	for {
		profile := &models.Profile{}
		profile.Name, err = deps.Prompter.PromptRequired("Profile name")
		if err != nil {
			return err
		}
		profile.AccountID, err = deps.Prompter.PromptRequired("Account ID")
		if err != nil {
			return err
		}
		profile.Role, err = deps.Prompter.PromptRequired("Role name")
		if err != nil {
			return err
		}
		assumes, err := deps.Prompter.PromptOptional("Profiles to assume from this one (comma-separated, optional)")
		if err != nil {
			return err
		}
		for _, target := range strings.Split(assumes, ",") {
			if target = strings.TrimSpace(target); target != "" {
				profile.Assumes = append(profile.Assumes, target)
			}
		}

		cfg.SetProfile(profile)
		group.Profiles = append(group.Profiles, profile.Name)

		more, err := deps.Prompter.PromptYesNo("Add another profile", false)
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	cfg.SetGroup(group)

	if err := cfg.Save(deps.Fs, path); err != nil {
		return err
	}

	fmt.Fprintf(deps.Out, "Configuration for group %s written to %s\n", group.Name, path)
	return nil
}
