package main

import (
	"errors"
	"fleet-dashboard-service/api"
	"fmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"os"
)

func newLoginCmd(opts *options) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv("FLEETCTL_PASSWORD")
			}
			if email == "" || password == "" {
				return errors.New("email and password are required")
			}

			a, err := opts.load()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			result, err := a.client.SignIn(ctx, email, password)
			if err != nil {
				a.logger.Warn("Sign-in failed", zap.Error(err))
				return errors.New(api.UserMessage(err))
			}
			if err := a.session.SignIn(ctx, result.Token, result.Profile, result.Role); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s %s (%s)\n", result.Profile.FirstName, result.Profile.LastName, result.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (default $FLEETCTL_PASSWORD)")
	return cmd
}

func newLogoutCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load()
			if err != nil {
				return err
			}
			if err := a.session.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func newWhoamiCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			profile, err := a.session.Profile(ctx)
			if err != nil {
				return err
			}
			if profile == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
				return nil
			}
			role, err := a.session.Role(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s <%s> role=%s\n", profile.FirstName, profile.LastName, profile.Email, role)
			return nil
		},
	}
}
