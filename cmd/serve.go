package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/olusolaa/ec2ctl/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the instance, security group and alarm operations over HTTP",
	Args:  cobra.NoArgs,
	RunE: runWithApp(func(cmd *cobra.Command, _ []string, application *app.Application) error {
		srv, err := application.Server(prometheus.DefaultGatherer)
		if err != nil {
			return err
		}
		return srv.Run(cmd.Context())
	}),
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
	bindFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}
