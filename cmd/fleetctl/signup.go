package main

import (
	"fleet-dashboard-service/api"
	"fleet-dashboard-service/validation"
	"fmt"
	"github.com/spf13/cobra"
	"os"
	"strconv"
)

func newSignupCmd(opts *options) *cobra.Command {
	var form validation.SignUp

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a customer account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if form.Password == "" {
				form.Password = os.Getenv("FLEETCTL_PASSWORD")
			}
			if form.ConfirmPassword == "" {
				form.ConfirmPassword = form.Password
			}
			form.Phone = validation.PhoneDigits(form.Phone)

			weak, err := form.Validate()
			if err != nil {
				return err
			}
			if weak {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: weak password, use 6+ characters with an upper-case letter and a digit")
			}

			a, err := opts.load()
			if err != nil {
				return err
			}
			err = a.client.SignUp(cmd.Context(), api.SignUpRequest{
				FirstName: form.FirstName,
				LastName:  form.LastName,
				Email:     form.Email,
				Password:  form.Password,
				Phone:     form.Phone,
			})
			if err != nil {
				return backendError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Account created for %s, sign in with fleetctl login\n", form.Email)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&form.FirstName, "firstname", "", "First name")
	f.StringVar(&form.LastName, "lastname", "", "Last name")
	f.StringVar(&form.Email, "email", "", "Email")
	f.StringVar(&form.Password, "password", "", "Password (default $FLEETCTL_PASSWORD)")
	f.StringVar(&form.ConfirmPassword, "confirm", "", "Password confirmation (default the password)")
	f.StringVar(&form.Phone, "phone", "", "Phone number, 8 digits")
	return cmd
}

func newAddressCmd(opts *options) *cobra.Command {
	var form validation.Address

	cmd := &cobra.Command{
		Use:   "address",
		Short: "Add a delivery address to the signed-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			form.Phone = validation.PhoneDigits(form.Phone)
			if err := form.Validate(); err != nil {
				return err
			}

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
				return errNotSignedIn
			}
			userID, err := strconv.ParseInt(profile.ID.String(), 10, 64)
			if err != nil {
				return fmt.Errorf("unexpected user id %q: %w", profile.ID, err)
			}

			created, err := a.client.Addresses().Create(ctx, &api.Address{
				UserID:      userID,
				ProvinceID:  int64(form.ProvinceID),
				Description: form.Description,
				Phone:       form.Phone,
			})
			if err != nil {
				return backendError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Address %d added\n", created.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&form.ProvinceID, "province", 0, "Province id")
	f.StringVar(&form.Description, "description", "", "Street and references")
	f.StringVar(&form.Phone, "phone", "", "Contact phone, 8 digits")
	return cmd
}
