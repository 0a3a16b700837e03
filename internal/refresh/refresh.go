package refresh

import (
	"context"
	"fmt"
	"io"

	"github.com/ssotools/ssoctl/internal/config"
	"github.com/ssotools/ssoctl/internal/creds"
	"github.com/ssotools/ssoctl/internal/oidc"
)

// Refresher sequences one credential refresh run: validate the group,
// acquire one access token, then exchange and merge credentials for every
// profile in group order before persisting the store once.
type Refresher struct {
	Auth      oidc.Authenticator
	Exchanger creds.Exchanger
	Chainer   creds.Chainer
	Store     *creds.Store
	Out       io.Writer
}

func (r *Refresher) Run(ctx context.Context, cfg *config.Config, groupName string, assumeRoles bool) error {
	if err := config.ValidateGroup(cfg, groupName); err != nil {
		return err
	}

	group, _ := cfg.Group(groupName)
	fmt.Fprintf(r.Out, "Refreshing credentials for group %s (%d profiles)\n", group.Name, len(group.Profiles))

	accessToken, err := r.Auth.Authenticate(ctx, group.StartURL, group.Region)
	if err != nil {
		return fmt.Errorf("device authorization failed: %w", err)
	}

	if err := r.Store.Load(); err != nil {
		return err
	}

	for _, name := range group.Profiles {
		profile, _ := cfg.Profile(name)

		set, err := r.Exchanger.Exchange(ctx, group.Region, accessToken, profile.AccountID, profile.Role)
		if err != nil {
			return err
		}

		r.Store.EnsureSection(name)
		r.Store.SetCredentials(name, set)

		if assumeRoles && len(profile.Assumes) > 0 {
			if err := r.Chainer.Chain(ctx, r.Store, cfg, group.Region, name); err != nil {
				return fmt.Errorf("failed to chain roles for profile %s: %w", name, err)
			}
		}

		fmt.Fprintf(r.Out, "Refreshed profile %s (account %s, role %s, expires %s)\n",
			name, profile.AccountID, profile.Role, set.Expiration)
	}

	if err := r.Store.Save(); err != nil {
		return err
	}

	fmt.Fprintf(r.Out, "Credentials for group %s saved.\n", group.Name)
	return nil
}
