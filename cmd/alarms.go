package main

import (
	"github.com/spf13/cobra"

	"github.com/olusolaa/ec2ctl/internal/adapters/alarmfile"
	"github.com/olusolaa/ec2ctl/internal/app"
	"github.com/olusolaa/ec2ctl/internal/core/domain"
	"github.com/olusolaa/ec2ctl/internal/core/service"
	"github.com/olusolaa/ec2ctl/internal/reporting"
)

var (
	newAlarm       domain.AlarmSpec
	alarmThreshold string
	alarmFile      string
	alarmVars      []string
)

var alarmsCmd = &cobra.Command{
	Use:   "alarms",
	Short: "Find and create CloudWatch CPU alarms",
}

var alarmsListCmd = &cobra.Command{
	Use:   "list INSTANCE_ID",
	Short: "List the alarms scoped to an instance",
	Args:  cobra.ExactArgs(1),
	RunE: runWithApp(func(cmd *cobra.Command, args []string, application *app.Application) error {
		names, err := application.Discovery.AlarmsForInstance(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return application.Render(cmd.Context(), reporting.Alarms(args[0], names))
	}),
}

var alarmsCreateCmd = &cobra.Command{
	Use:     "create",
	Short:   "Create a CPU alarm for an instance and send a notification",
	Example: "  ec2ctl alarms create --instance i-0abc --name cpu-high --threshold 80",
	Args:    cobra.NoArgs,
	RunE: runWithApp(func(cmd *cobra.Command, _ []string, application *app.Application) error {
		threshold, err := service.ParseThreshold(alarmThreshold)
		if err != nil {
			return err
		}
		spec := newAlarm
		spec.Threshold = threshold
		if err := application.Alarms.Create(cmd.Context(), spec); err != nil {
			return err
		}
		return application.Render(cmd.Context(), reporting.AlarmsCreated([]string{spec.Name}))
	}),
}

var alarmsApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Create every alarm defined in an HCL file",
	Long: `apply reads alarm blocks from an HCL file and creates them in order,
stopping at the first failure. Variables declared in the file can be set
with --var name=value.`,
	Example: "  ec2ctl alarms apply -f alarms.hcl --var web_instance=i-0abc",
	Args:    cobra.NoArgs,
	RunE: runWithApp(func(cmd *cobra.Command, _ []string, application *app.Application) error {
		overrides, err := alarmfile.ParseVarOverrides(alarmVars)
		if err != nil {
			return err
		}
		created, err := application.ApplyAlarmFile(cmd.Context(), alarmFile, overrides)
		if len(created) > 0 {
			if renderErr := application.Render(cmd.Context(), reporting.AlarmsCreated(created)); renderErr != nil && err == nil {
				return renderErr
			}
		}
		return err
	}),
}

func init() {
	createFlags := alarmsCreateCmd.Flags()
	createFlags.StringVar(&newAlarm.InstanceID, "instance", "", "Instance the alarm watches")
	createFlags.StringVar(&newAlarm.Name, "name", "", "Alarm name; an existing alarm with this name is replaced")
	createFlags.StringVar(&alarmThreshold, "threshold", "", "CPU utilization percentage (0-100)")

	applyFlags := alarmsApplyCmd.Flags()
	applyFlags.StringVarP(&alarmFile, "file", "f", "", "HCL file with alarm definitions")
	applyFlags.StringArrayVar(&alarmVars, "var", nil, "Set a file variable as name=value; repeatable")
	cobra.CheckErr(alarmsApplyCmd.MarkFlagRequired("file"))

	alarmsCmd.AddCommand(alarmsListCmd, alarmsCreateCmd, alarmsApplyCmd)
	rootCmd.AddCommand(alarmsCmd)
}
