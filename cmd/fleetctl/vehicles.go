package main

import (
	"fleet-dashboard-service/api"
	"fleet-dashboard-service/listing"
	"fmt"
	"github.com/spf13/cobra"
	"strconv"
	"strings"
	"text/tabwriter"
)

func newVehiclesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vehicles",
		Aliases: []string{"vehicle"},
		Short:   "List and register fleet vehicles",
	}
	cmd.AddCommand(
		newVehiclesListCmd(opts),
		newVehiclesCreateCmd(opts),
		newVehicleInspectionsCmd(opts),
		newVehicleHistoryCmd(opts),
	)
	return cmd
}

func newVehiclesListCmd(opts *options) *cobra.Command {
	var search, month string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vehicles, filtered by plate and registration month",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load()
			if err != nil {
				return err
			}
			vehicles, err := a.client.Vehicles().List(cmd.Context())
			if err != nil {
				return backendError(err)
			}

			months := listing.Months(vehicles, api.Vehicle.Created)
			vehicles = listing.Search(vehicles, search, func(v api.Vehicle) string { return v.Plate })
			vehicles = listing.ByMonth(vehicles, month, api.Vehicle.Created)

			out := cmd.OutOrStdout()
			if len(vehicles) == 0 {
				fmt.Fprintln(out, "No vehicles found")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPLATE\tBRAND\tMODEL\tYEAR")
			for _, v := range vehicles {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", v.ID, v.Plate, v.Brand, v.Model, v.Year)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "months: %s\n", strings.Join(months, " "))
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Plate contains (case-insensitive)")
	cmd.Flags().StringVar(&month, "month", listing.AllMonths, `Registration month "01".."12" or "all"`)
	return cmd
}

func newVehiclesCreateCmd(opts *options) *cobra.Command {
	var (
		v          api.Vehicle
		ton, price float64
		ruvPath    string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a vehicle with its RUV document (PDF, 2 MB max)",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Loaded before the client so a bad file never touches the session.
			ruv, err := openDocument(ruvPath)
			if err != nil {
				return err
			}
			a, err := opts.load()
			if err != nil {
				return err
			}

			v.Ton, v.Price = api.Decimal(ton), api.Decimal(price)
			if err := a.client.CreateVehicle(cmd.Context(), &v, ruv, uploadProgress(cmd.ErrOrStderr())); err != nil {
				return backendError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Vehicle %s registered\n", v.Plate)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&v.Plate, "plate", "", "Plate")
	f.StringVar(&v.Brand, "brand", "", "Brand")
	f.StringVar(&v.Model, "model", "", "Model")
	f.StringVar(&v.Capacity, "capacity", "", "Capacity")
	f.StringVar(&v.Year, "year", "", "Model year")
	f.StringVar(&v.Use, "use", "", "Use")
	f.Float64Var(&ton, "ton", 0, "Load in tons")
	f.Float64Var(&price, "price", 0, "Price")
	f.StringVar(&ruvPath, "ruv", "", "Path to the RUV PDF (required)")
	return cmd
}

func newVehicleInspectionsCmd(opts *options) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "inspections <vehicle-id>",
		Short: "List the entry and exit inspections of a vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid vehicle id %q", args[0])
			}
			a, err := opts.load()
			if err != nil {
				return err
			}
			inspections, err := a.client.InspectionsByVehicle(cmd.Context(), id)
			if err != nil {
				return backendError(err)
			}
			inspections = listing.ByMonth(inspections, month, api.Inspection.On)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tTIME\tKIND\tMILEAGE\tFUEL")
			for _, in := range inspections {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.0f\t%s\n", in.Date, in.Time, in.Kind, in.Mileage.Float64(), in.FuelLevel)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&month, "month", listing.AllMonths, `Inspection month "01".."12" or "all"`)
	return cmd
}

func newVehicleHistoryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "history <vehicle-id>",
		Short: "Show the odometer readings and workshop reports of a vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid vehicle id %q", args[0])
			}
			a, err := opts.load()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			mileages, err := a.client.MileagesByVehicle(ctx, id)
			if err != nil {
				return backendError(err)
			}
			reports, err := a.client.WorkshopReportsByVehicle(ctx, id)
			if err != nil {
				return backendError(err)
			}

			out := cmd.OutOrStdout()
			for _, m := range mileages {
				fmt.Fprintf(out, "mileage %s %.0f\n", m.Date, m.Mileage.Float64())
			}
			for _, r := range reports {
				fmt.Fprintf(out, "workshop %s %s %s\n", r.ReportDate, r.ReportTime, r.Description)
			}
			return nil
		},
	}
}
