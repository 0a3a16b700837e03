package oidc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssooidc"
	"github.com/aws/aws-sdk-go-v2/service/ssooidc/types"
)

const (
	clientName      = "ssoctl"
	clientType      = "public"
	deviceGrantType = "urn:ietf:params:oauth:grant-type:device_code"
)

// DeviceAuthenticator drives the OIDC device authorization flow:
// register an ephemeral client, start device authorization, open the
// verification URL, then poll for the token until the user resolves the
// request.
type DeviceAuthenticator struct {
	NewClient func(region string) SSOOIDCAPI
	Opener    ConsoleOpener
	Out       io.Writer
	Sleep     func(time.Duration)
}

func NewDeviceAuthenticator(opener ConsoleOpener, out io.Writer) *DeviceAuthenticator {
	return &DeviceAuthenticator{
		NewClient: func(region string) SSOOIDCAPI {
			return ssooidc.NewFromConfig(aws.Config{Region: region})
		},
		Opener: opener,
		Out:    out,
		Sleep:  time.Sleep,
	}
}

func (a *DeviceAuthenticator) Authenticate(ctx context.Context, startURL, region string) (string, error) {
	client := a.NewClient(region)

	register, err := client.RegisterClient(ctx, &ssooidc.RegisterClientInput{
		ClientName: aws.String(clientName),
		ClientType: aws.String(clientType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to register OIDC client: %w", err)
	}

	auth, err := client.StartDeviceAuthorization(ctx, &ssooidc.StartDeviceAuthorizationInput{
		ClientId:     register.ClientId,
		ClientSecret: register.ClientSecret,
		StartUrl:     aws.String(startURL),
	})
	if err != nil {
		return "", fmt.Errorf("failed to start device authorization: %w", err)
	}

	verificationURL := aws.ToString(auth.VerificationUriComplete)
	if err := a.Opener.Open(verificationURL); err != nil {
		fmt.Fprintf(a.Out, "Open %s in a browser and enter code %s to continue.\n",
			verificationURL, aws.ToString(auth.UserCode))
	} else {
		fmt.Fprintf(a.Out, "Waiting for authorization in the browser (code %s)...\n",
			aws.ToString(auth.UserCode))
	}

	interval := time.Duration(auth.Interval) * time.Second
	if interval <= 0 {
		interval = 5 * time.Second
	}

	a.Sleep(interval)
	for {
		token, err := client.CreateToken(ctx, &ssooidc.CreateTokenInput{
			ClientId:     register.ClientId,
			ClientSecret: register.ClientSecret,
			DeviceCode:   auth.DeviceCode,
			GrantType:    aws.String(deviceGrantType),
		})
		if err == nil {
			fmt.Fprintln(a.Out)
			return aws.ToString(token.AccessToken), nil
		}

		// The user has not acted on the verification request yet. Retry
		// pending at the provider interval, slow-down at twice that.
		var pending *types.AuthorizationPendingException
		var slowDown *types.SlowDownException
		var expired *types.ExpiredTokenException
		var denied *types.AccessDeniedException

		switch {
		case errors.As(err, &pending):
			fmt.Fprint(a.Out, ".")
			a.Sleep(interval)
		case errors.As(err, &slowDown):
			fmt.Fprint(a.Out, ".")
			a.Sleep(2 * interval)
		case errors.As(err, &expired):
			return "", fmt.Errorf("device authorization expired before it was approved: %w", err)
		case errors.As(err, &denied):
			return "", fmt.Errorf("device authorization was denied: %w", err)
		default:
			return "", fmt.Errorf("failed to create access token: %w", err)
		}
	}
}
