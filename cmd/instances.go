package main

import (
	"github.com/spf13/cobra"

	"github.com/olusolaa/ec2ctl/internal/app"
	"github.com/olusolaa/ec2ctl/internal/core/domain"
	"github.com/olusolaa/ec2ctl/internal/reporting"
)

var instanceFilters map[string]string

var instancesCmd = &cobra.Command{
	Use:     "instances",
	Aliases: []string{"ec2"},
	Short:   "List, inspect, start and stop EC2 instances",
}

var instancesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List instances, optionally filtered",
	Example: `  ec2ctl instances list --filter state=running,stopped
  ec2ctl instances list --filter tag:env=prod --filter type=t3.micro`,
	Args: cobra.NoArgs,
	RunE: runWithApp(func(cmd *cobra.Command, _ []string, application *app.Application) error {
		instances, err := application.Control.ListInstances(cmd.Context(), instanceFilters)
		if err != nil {
			return err
		}
		return application.Render(cmd.Context(), reporting.Instances(instances))
	}),
}

var instancesDescribeCmd = &cobra.Command{
	Use:   "describe INSTANCE_ID",
	Short: "Show the details of one instance",
	Args:  cobra.ExactArgs(1),
	RunE: runWithApp(func(cmd *cobra.Command, args []string, application *app.Application) error {
		inst, err := application.Control.DescribeInstance(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return application.Render(cmd.Context(), reporting.Instance(inst))
	}),
}

var instancesOverviewCmd = &cobra.Command{
	Use:   "overview INSTANCE_ID",
	Short: "Show an instance together with the alarms watching it",
	Args:  cobra.ExactArgs(1),
	RunE: runWithApp(func(cmd *cobra.Command, args []string, application *app.Application) error {
		overview, err := application.Control.Overview(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return application.Render(cmd.Context(), reporting.Overview(overview))
	}),
}

var instancesStartCmd = &cobra.Command{
	Use:   "start INSTANCE_ID",
	Short: "Start an instance unless it is already running",
	Args:  cobra.ExactArgs(1),
	RunE: runWithApp(func(cmd *cobra.Command, args []string, application *app.Application) error {
		change, err := application.Control.StartInstance(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return application.Render(cmd.Context(), reporting.StateChange(change, domain.PowerOn))
	}),
}

var instancesStopCmd = &cobra.Command{
	Use:   "stop INSTANCE_ID",
	Short: "Stop an instance unless it is already stopped",
	Args:  cobra.ExactArgs(1),
	RunE: runWithApp(func(cmd *cobra.Command, args []string, application *app.Application) error {
		change, err := application.Control.StopInstance(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return application.Render(cmd.Context(), reporting.StateChange(change, domain.PowerOff))
	}),
}

func init() {
	instancesListCmd.Flags().StringToStringVar(&instanceFilters, "filter", nil,
		"Filter as key=value (id, state, type, az, vpc, image, group, name, tag:<key>); repeatable")

	instancesCmd.AddCommand(instancesListCmd, instancesDescribeCmd, instancesOverviewCmd, instancesStartCmd, instancesStopCmd)
	rootCmd.AddCommand(instancesCmd)
}
