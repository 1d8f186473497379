package main

import (
	"errors"
	"fleet-dashboard-service/api"
	"fleet-dashboard-service/workers/routes"
	"fmt"
	"github.com/spf13/cobra"
)

func newRouteCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Drive a route and time it",
	}
	cmd.AddCommand(newRouteStartCmd(opts), newRouteFinishCmd(opts), newRouteStatusCmd(opts))
	return cmd
}

func newRouteStartCmd(opts *options) *cobra.Command {
	var req routes.StartRequest

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a route on a vehicle",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load()
			if err != nil {
				return err
			}
			route, err := a.tracker.Start(cmd.Context(), req)
			if err != nil {
				return backendError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Route %d %q started on %s at %s\n",
				route.ID, route.RouteName, route.Plate, route.StartTime.Format("15:04:05"))
			return nil
		},
	}

	cmd.Flags().Int64Var(&req.VehicleID, "vehicle", 0, "Vehicle id")
	cmd.Flags().StringVar(&req.Plate, "plate", "", "Vehicle plate")
	cmd.Flags().StringVar(&req.RouteName, "name", "", "Route name")
	return cmd
}

func newRouteFinishCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "finish",
		Short: "Finish the route in progress and record its travel time",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load()
			if err != nil {
				return err
			}
			travelTime, err := a.tracker.Finish(cmd.Context())
			if err != nil {
				return backendError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Route finished in %s\n", travelTime)
			return nil
		},
	}
}

func newRouteStatusCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the route in progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load()
			if err != nil {
				return err
			}
			route, elapsed, err := a.tracker.Elapsed(cmd.Context())
			if err != nil {
				return err
			}
			if route == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No route in progress")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) driven by %s %s: %s\n",
				route.RouteName, route.Plate, route.DriverName, route.DriverLastname, elapsed)
			return nil
		},
	}
}

// backendError swaps raw backend failures for the message shown to users.
func backendError(err error) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return errors.New(api.UserMessage(err))
	}
	return err
}
