package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/olusolaa/ec2ctl/internal/app"
	"github.com/olusolaa/ec2ctl/internal/config"
	apperrors "github.com/olusolaa/ec2ctl/internal/errors"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "ec2ctl",
	Short: "Inspect and operate EC2 instances, security groups and CPU alarms.",
	Long: `ec2ctl lists EC2 instance types with their on-demand price, finds the
CloudWatch alarms watching an instance, and drives instances, security groups
and CPU alarms from the command line or over HTTP (ec2ctl serve).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func printError(err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return
	}
	userMsg, suggestion, _ := apperrors.GetUserFacingMessage(err)
	fmt.Fprintf(os.Stderr, "ERROR: %s\n", userMsg)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "Suggestion: %s\n", suggestion)
	}
}

// runWithApp bootstraps the application before handing it to fn.
func runWithApp(fn func(cmd *cobra.Command, args []string, application *app.Application) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		application, err := app.BuildApplicationFromViper(cmd.Context(), viper.GetViper(),
			app.WithOutput(cmd.OutOrStdout()))
		if err != nil {
			return err
		}
		return fn(cmd, args, application)
	}
}

func init() {
	defaults := config.DefaultConfig()
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "Configuration file path (default is .ec2ctl.yaml in . or $HOME)")
	flags.String("log-level", string(defaults.Settings.LogLevel), "Log level (debug, info, warn, error)")
	flags.String("log-format", string(defaults.Settings.LogFormat), "Log format (text, json, console)")
	flags.StringP("output", "o", defaults.Settings.Output, "Output format (text, json)")
	flags.Bool("no-color", defaults.Settings.NoColor, "Disable colored text output")
	flags.String("region", "", "AWS region (defaults to the SDK credential chain)")
	flags.String("profile", "", "AWS shared config profile")

	bindFlag("settings.log_level", flags.Lookup("log-level"))
	bindFlag("settings.log_format", flags.Lookup("log-format"))
	bindFlag("settings.output", flags.Lookup("output"))
	bindFlag("settings.no_color", flags.Lookup("no-color"))
	bindFlag("aws.region", flags.Lookup("region"))
	bindFlag("aws.profile", flags.Lookup("profile"))

	viper.SetEnvPrefix("EC2CTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

func initializeConfig(cmd *cobra.Command) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigName(".ec2ctl")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return apperrors.WrapUserFacing(err, apperrors.CodeConfigReadError, "failed to read config file", "Check the file passed with --config.")
		}
	}
	return nil
}

func bindFlag(key string, flag *pflag.Flag) {
	cobra.CheckErr(viper.BindPFlag(key, flag))
}
