package main

import (
	"context"
	"errors"
	"fleet-dashboard-service/api"
	"fleet-dashboard-service/listing"
	"fmt"
	"github.com/spf13/cobra"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"
)

var (
	errNotSignedIn = errors.New("not signed in, run fleetctl login first")
	errGuardOnly   = errors.New("exit orders are only available to guards")
)

// guard loads the app and checks the signed-in role before any exit-order call.
func guard(ctx context.Context, opts *options) (*app, error) {
	a, err := opts.load()
	if err != nil {
		return nil, err
	}
	if !a.session.Authenticated(ctx) {
		return nil, errNotSignedIn
	}
	if !a.session.IsGuard(ctx) {
		return nil, errGuardOnly
	}
	return a, nil
}

func newExitOrdersCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exit-orders",
		Short: "Authorize vehicles to leave the yard (guards only)",
	}
	cmd.AddCommand(newExitOrdersListCmd(opts), newExitOrdersCreateCmd(opts), newExitOrdersDeleteCmd(opts))
	return cmd
}

func exitOrderSearchKey(o api.ExitOrder) string {
	return strings.Join([]string{
		o.ExitReason,
		o.ExitDate,
		o.Plate,
		o.DriverName + " " + o.DriverLastname,
		o.ClientName,
	}, " ")
}

func newExitOrdersListCmd(opts *options) *cobra.Command {
	var search, client, vehicle, driver string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List exit orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := guard(cmd.Context(), opts)
			if err != nil {
				return err
			}
			orders, err := a.client.ExitOrders().List(cmd.Context())
			if err != nil {
				return backendError(err)
			}

			clientName := func(o api.ExitOrder) string { return o.ClientName }
			if clients := listing.Options(orders, clientName); client != "" && client != listing.All && !slices.Contains(clients, client) {
				return fmt.Errorf("unknown client %q, choose one of: %s", client, strings.Join(clients, ", "))
			}

			orders = listing.Search(orders, search, exitOrderSearchKey)
			orders = listing.Where(orders, client, clientName)
			orders = listing.Where(orders, vehicle, func(o api.ExitOrder) string { return o.Plate })
			orders = listing.Where(orders, driver, func(o api.ExitOrder) string {
				return o.DriverName + " " + o.DriverLastname
			})

			out := cmd.OutOrStdout()
			if len(orders) == 0 {
				fmt.Fprintln(out, "No exit orders found")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPLATE\tDRIVER\tCLIENT\tEXIT\tENTRY\tREASON")
			for _, o := range orders {
				fmt.Fprintf(w, "%d\t%s\t%s %s\t%s\t%s %s\t%s %s\t%s\n",
					o.ID, o.Plate, o.DriverName, o.DriverLastname, o.ClientName,
					o.ExitDate, o.ExitTime, o.EntryDate, o.EntryTime, o.ExitReason)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Reason, date, plate, driver or client contains")
	cmd.Flags().StringVar(&client, "client", listing.All, `Client name or "all"`)
	cmd.Flags().StringVar(&vehicle, "vehicle", listing.All, `Plate or "all"`)
	cmd.Flags().StringVar(&driver, "driver", listing.All, `Driver full name or "all"`)
	return cmd
}

func newExitOrdersCreateCmd(opts *options) *cobra.Command {
	var o api.ExitOrder

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Authorize a vehicle exit; the entry must be at least 24 hours later",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := guard(cmd.Context(), opts)
			if err != nil {
				return err
			}
			created, err := a.client.CreateExitOrder(cmd.Context(), &o)
			if err != nil {
				return backendError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exit order %d created\n", created.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.Int64Var(&o.VehicleID, "vehicle", 0, "Vehicle id")
	f.Int64Var(&o.DriverID, "driver", 0, "Driver id")
	f.Int64Var(&o.ClientID, "client", 0, "Client id")
	f.StringVar(&o.ExitDate, "exit-date", "", "Exit date, YYYY-MM-DD")
	f.StringVar(&o.ExitTime, "exit-time", "", "Exit time, HH:MM")
	f.StringVar(&o.EntryDate, "entry-date", "", "Entry date, YYYY-MM-DD")
	f.StringVar(&o.EntryTime, "entry-time", "", "Entry time, HH:MM")
	f.StringVar(&o.ExitReason, "reason", "", "Exit reason")
	return cmd
}

func newExitOrdersDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an exit order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid exit order id %q", args[0])
			}
			a, err := guard(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if err := a.client.ExitOrders().Delete(cmd.Context(), id); err != nil {
				return backendError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exit order %d deleted\n", id)
			return nil
		},
	}
}
