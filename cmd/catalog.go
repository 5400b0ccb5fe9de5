package main

import (
	"github.com/spf13/cobra"

	"github.com/olusolaa/ec2ctl/internal/app"
	"github.com/olusolaa/ec2ctl/internal/reporting"
)

var typesCmd = &cobra.Command{
	Use:   "types NAME_FRAGMENT",
	Short: "List instance types whose name contains a fragment, with their on-demand price",
	Long: `types scans every instance type offered in the region, keeps those whose
name contains NAME_FRAGMENT (case-insensitive) and prices each match. Types
without an on-demand price are left out.`,
	Example: "  ec2ctl types t3\n  ec2ctl types m5. -o json",
	Args:    cobra.ExactArgs(1),
	RunE: runWithApp(func(cmd *cobra.Command, args []string, application *app.Application) error {
		priced, err := application.Discovery.InstanceTypes(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return application.Render(cmd.Context(), reporting.InstanceTypes(args[0], priced))
	}),
}

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "List Red Hat images",
	Args:  cobra.NoArgs,
	RunE: runWithApp(func(cmd *cobra.Command, _ []string, application *app.Application) error {
		images, err := application.Control.ListImages(cmd.Context())
		if err != nil {
			return err
		}
		return application.Render(cmd.Context(), reporting.Images(images))
	}),
}

var identityCmd = &cobra.Command{
	Use:   "identity",
	Short: "Show the AWS account and principal in use",
	Args:  cobra.NoArgs,
	RunE: runWithApp(func(cmd *cobra.Command, _ []string, application *app.Application) error {
		id, err := application.Control.Identity(cmd.Context())
		if err != nil {
			return err
		}
		return application.Render(cmd.Context(), reporting.Identity(id))
	}),
}

func init() {
	rootCmd.AddCommand(typesCmd, imagesCmd, identityCmd)
}
