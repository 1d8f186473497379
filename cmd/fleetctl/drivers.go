package main

import (
	"fleet-dashboard-service/api"
	"fmt"
	"github.com/spf13/cobra"
	"strings"
)

func newDriversCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "drivers",
		Aliases: []string{"driver"},
		Short:   "Register fleet drivers",
	}
	cmd.AddCommand(newDriversCreateCmd(opts))
	return cmd
}

func newDriversCreateCmd(opts *options) *cobra.Command {
	var (
		d                           api.Driver
		licenses                    []string
		licensePath, identification string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a driver with license and identification PDFs",
		RunE: func(cmd *cobra.Command, args []string) error {
			licenseFile, err := openDocument(licensePath)
			if err != nil {
				return err
			}
			identificationFile, err := openDocument(identification)
			if err != nil {
				return err
			}
			a, err := opts.load()
			if err != nil {
				return err
			}

			d.LicenseTypes = strings.Join(licenses, ",")
			err = a.client.CreateDriver(cmd.Context(), &d, licenseFile, identificationFile, uploadProgress(cmd.ErrOrStderr()))
			if err != nil {
				return backendError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Driver %s %s registered\n", d.Name, d.Lastname)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&d.Name, "name", "", "First name")
	f.StringVar(&d.Lastname, "lastname", "", "Last name")
	f.StringVar(&d.IdentificationType, "id-type", "", "Identification type")
	f.StringVar(&d.Identification, "id", "", "Identification number")
	f.StringVar(&d.Email, "email", "", "Email")
	f.StringVar(&d.Phone, "phone", "", "Phone")
	f.StringSliceVar(&licenses, "license-type", nil, "License types, repeatable or comma separated")
	f.StringVar(&d.Nationality, "nationality", "", "Nationality")
	f.StringVar(&d.Birthdate, "birthdate", "", "Birthdate, YYYY-MM-DD")
	f.StringVar(&d.LicenseIssueDate, "license-issued", "", "License issue date, YYYY-MM-DD")
	f.StringVar(&d.LicenseExpirationDate, "license-expires", "", "License expiration date, YYYY-MM-DD")
	f.StringVar(&d.ControlNumber, "control-number", "", "License control number")
	f.StringVar(&licensePath, "license-file", "", "Path to the license PDF (required)")
	f.StringVar(&identification, "id-file", "", "Path to the identification PDF (required)")
	return cmd
}
