package main

import (
	"github.com/spf13/cobra"

	"github.com/olusolaa/ec2ctl/internal/app"
	"github.com/olusolaa/ec2ctl/internal/core/domain"
	"github.com/olusolaa/ec2ctl/internal/reporting"
)

var newGroup domain.NewSecurityGroup

var sgCmd = &cobra.Command{
	Use:     "sg",
	Aliases: []string{"security-groups"},
	Short:   "List, inspect and create security groups",
}

var sgListCmd = &cobra.Command{
	Use:   "list",
	Short: "List security groups",
	Args:  cobra.NoArgs,
	RunE: runWithApp(func(cmd *cobra.Command, _ []string, application *app.Application) error {
		groups, err := application.Control.ListSecurityGroups(cmd.Context())
		if err != nil {
			return err
		}
		return application.Render(cmd.Context(), reporting.SecurityGroups(groups))
	}),
}

var sgDescribeCmd = &cobra.Command{
	Use:   "describe GROUP_ID",
	Short: "Show the inbound and outbound rules of a security group",
	Args:  cobra.ExactArgs(1),
	RunE: runWithApp(func(cmd *cobra.Command, args []string, application *app.Application) error {
		groups, err := application.Control.DescribeSecurityGroup(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return application.Render(cmd.Context(), reporting.SecurityGroupRules(groups))
	}),
}

var sgCreateCmd = &cobra.Command{
	Use:     "create",
	Short:   "Create a security group with SSH and HTTP open to one address",
	Example: `  ec2ctl sg create --name web --description "web tier" --vpc vpc-0abc --my-ip 203.0.113.7`,
	Args:    cobra.NoArgs,
	RunE: runWithApp(func(cmd *cobra.Command, _ []string, application *app.Application) error {
		id, err := application.Control.CreateSecurityGroup(cmd.Context(), newGroup)
		if err != nil {
			return err
		}
		return application.Render(cmd.Context(), reporting.SecurityGroupCreated(id, newGroup))
	}),
}

func init() {
	flags := sgCreateCmd.Flags()
	flags.StringVar(&newGroup.Name, "name", "", "Group name")
	flags.StringVar(&newGroup.Description, "description", "", "Group description")
	flags.StringVar(&newGroup.VPCID, "vpc", "", "VPC the group belongs to")
	flags.StringVar(&newGroup.SourceIP, "my-ip", "", "IPv4 address allowed on ports 22 and 80")

	sgCmd.AddCommand(sgListCmd, sgDescribeCmd, sgCreateCmd)
	rootCmd.AddCommand(sgCmd)
}
