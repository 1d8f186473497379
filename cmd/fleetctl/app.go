package main

import (
	"fleet-dashboard-service/api"
	"fleet-dashboard-service/config"
	"fleet-dashboard-service/core"
	"fleet-dashboard-service/session"
	"fleet-dashboard-service/workers/routes"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds what the session-backed commands share. It is built once, before
// the first such command runs.
type app struct {
	logger  *zap.Logger
	session *session.Session
	client  *api.Client
	tracker *routes.Tracker
}

type options struct {
	sessionFile string
	apiURL      string
	app         *app
}

func (o *options) load() (*app, error) {
	if o.app != nil {
		return o.app, nil
	}

	cfg := config.LoadConfig()
	if cfg.LogLevel == "info" {
		cfg.LogLevel = "warn"
	}
	logger, err := core.NewLogger(*cfg)
	if err != nil {
		return nil, err
	}

	path := o.sessionFile
	if path == "" {
		path = cfg.SessionFile
	}
	if path == "" {
		path = session.DefaultFilePath()
	}
	sess := session.New(session.NewFileStore(path))

	baseURL := o.apiURL
	if baseURL == "" {
		baseURL = cfg.Api.BaseUri
	}
	client := api.New(api.Config{BaseURL: baseURL, Timeout: cfg.Api.Timeout}, sess, logger)

	o.app = &app{
		logger:  logger,
		session: sess,
		client:  client,
		tracker: routes.NewTracker(sess, client, logger),
	}
	return o.app, nil
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "fleetctl",
		Short:         "Fleet administration from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.sessionFile, "session", "", "Session file (default $FLEETCTL_SESSION or the user config dir)")
	cmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", "", "Backend base URL (default $API_URL)")

	cmd.AddCommand(
		newFormatCmd(),
		newQuoteCmd(),
		newElapsedCmd(),
		newLoginCmd(opts),
		newLogoutCmd(opts),
		newWhoamiCmd(opts),
		newRouteCmd(opts),
		newSignupCmd(opts),
		newAddressCmd(opts),
		newVehiclesCmd(opts),
		newDriversCmd(opts),
		newExitOrdersCmd(opts),
	)
	return cmd
}
