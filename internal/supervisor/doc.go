// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

/*
Package supervisor provides process supervision using suture v4.

Services are organized into two layers:

	RootSupervisor ("musictrends")
	├── ConnectorSupervisor ("connector-layer")
	│   └── ConnectorMonitor (periodic upstream reachability probe)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Supervisor events are
logged through sutureslog into the zerolog-backed slog handler from the
logging package.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddConnectorService(services.NewConnectorMonitor(handle, interval, timeout))
	tree.AddAPIService(services.NewHTTPServerService(server, shutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

Serve returns when the context is canceled and every service has stopped or
the shutdown timeout has elapsed. UnstoppedServiceReport lists stragglers.
*/
package supervisor
