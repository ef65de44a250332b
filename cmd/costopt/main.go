package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/dajneem23/Terraform-AWS-Cost-Optimization-Project/internal/version"
	awsclient "github.com/dajneem23/Terraform-AWS-Cost-Optimization-Project/pkg/aws"
	"github.com/dajneem23/Terraform-AWS-Cost-Optimization-Project/pkg/formatter"
	"github.com/dajneem23/Terraform-AWS-Cost-Optimization-Project/pkg/handlers"
	"github.com/dajneem23/Terraform-AWS-Cost-Optimization-Project/pkg/utils"
)

func main() {
	var showVersion bool

	rootCmd := &cobra.Command{
		Use:   "costopt",
		Short: "Run the AWS cost-optimization handlers locally",
		Long: `costopt runs the scheduled cost-optimization handlers from a
workstation instead of Lambda: scan a bucket for objects nearing their
lifecycle expiration, stop redundant schedulable instances, or scale an
Auto Scaling group down to zero.`,
		Run: func(cmd *cobra.Command, args []string) {
			if showVersion {
				info := version.Get()
				fmt.Printf("costopt version %s (built: %s, commit: %s, %s)\n",
					info.Version, info.BuildDate, info.GitCommit, info.GoVersion)
				return
			}
			_ = cmd.Help()
		},
	}

	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Show version information")

	rootCmd.AddCommand(newExpirationAlertCmd())
	rootCmd.AddCommand(newReapInstancesCmd())
	rootCmd.AddCommand(newScaleDownCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// startRunSpinner creates and starts a spinner with a message for the given action
func startRunSpinner(action string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[9], 200*time.Millisecond)
	s.Suffix = fmt.Sprintf(" %s ...", action)
	s.Start()
	return s
}

func newExpirationAlertCmd() *cobra.Command {
	var region string
	cfg := handlers.ExpirationConfig{}

	cmd := &cobra.Command{
		Use:   "expiration-alert",
		Short: "Scan a bucket and alert on objects nearing lifecycle expiration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Bucket == "" || cfg.TopicARN == "" {
				return fmt.Errorf("a bucket and a topic ARN are required (flags or %s/%s)",
					handlers.EnvBucketName, handlers.EnvTopicARN)
			}

			ctx := cmd.Context()
			awsCfg, err := awsclient.LoadConfig(ctx, region)
			if err != nil {
				return err
			}

			scanner := handlers.NewExpirationScanner(cfg,
				awsclient.NewBucketScanner(awsCfg, cfg.Bucket),
				awsclient.NewNotifier(awsCfg, cfg.TopicARN))

			startTime := time.Now()
			s := startRunSpinner(fmt.Sprintf("Scanning bucket %s", cfg.Bucket))
			result, err := scanner.Scan(ctx)
			duration := time.Since(startTime)
			if err != nil {
				s.Stop()
				return err
			}

			s.FinalMSG = fmt.Sprintf("✓ [%d objects flagged] Bucket %s scanned - Completed in %.2f seconds\n",
				len(result.Notices), cfg.Bucket, duration.Seconds())
			s.Stop()

			formatter.PrintNoticesTable(result, startTime, duration)
			formatter.PrintNoticesSummary(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfg.Bucket, "bucket", "b", os.Getenv(handlers.EnvBucketName),
		"S3 bucket to scan")
	cmd.Flags().StringVarP(&cfg.TopicARN, "topic-arn", "t", os.Getenv(handlers.EnvTopicARN),
		"SNS topic ARN for the consolidated alert")
	cmd.Flags().IntVar(&cfg.AlertDays, "alert-days",
		envIntOr(handlers.EnvAlertDays, handlers.DefaultAlertDays),
		"Days before projected expiration to start alerting")
	cmd.Flags().IntVar(&cfg.ExpirationDays, "expiration-days",
		envIntOr(handlers.EnvExpirationDays, handlers.DefaultExpirationDays),
		"Lifecycle retention window in days")
	cmd.Flags().StringVarP(&region, "region", "r", utils.GetDefaultRegion(),
		"AWS region")

	return cmd
}

func newReapInstancesCmd() *cobra.Command {
	var region string

	cmd := &cobra.Command{
		Use:   "reap-instances",
		Short: "Stop all but one running schedulable instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			awsCfg, err := awsclient.LoadConfig(ctx, region)
			if err != nil {
				return err
			}

			reaper := handlers.NewInstanceReaper(awsclient.NewInstanceClient(awsCfg))

			startTime := time.Now()
			s := startRunSpinner("Querying schedulable instances")
			result, err := reaper.Reap(ctx)
			duration := time.Since(startTime)
			if err != nil {
				s.Stop()
				return err
			}

			s.FinalMSG = fmt.Sprintf("✓ [%d instances stopped] Reap completed in %.2f seconds\n",
				len(result.StoppedIDs), duration.Seconds())
			s.Stop()

			formatter.PrintReapTable(result, startTime, duration)
			formatter.PrintReapSummary(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&region, "region", "r", utils.GetDefaultRegion(), "AWS region")

	return cmd
}

func newScaleDownCmd() *cobra.Command {
	var region, groupName string

	cmd := &cobra.Command{
		Use:   "scale-down",
		Short: "Force an Auto Scaling group's min and desired capacity to zero",
		RunE: func(cmd *cobra.Command, args []string) error {
			if groupName == "" {
				return fmt.Errorf("an Auto Scaling group name is required (flag or %s)", handlers.EnvASGName)
			}

			ctx := cmd.Context()
			awsCfg, err := awsclient.LoadConfig(ctx, region)
			if err != nil {
				return err
			}

			scaler := handlers.NewGroupScaleDown(groupName, awsclient.NewGroupClient(awsCfg))

			startTime := time.Now()
			s := startRunSpinner(fmt.Sprintf("Scaling group %s to zero", groupName))
			result, err := scaler.ScaleDown(ctx)
			duration := time.Since(startTime)
			if err != nil {
				s.Stop()
				return err
			}

			s.FinalMSG = fmt.Sprintf("✓ Group %s scaled to zero - Completed in %.2f seconds\n",
				groupName, duration.Seconds())
			s.Stop()

			formatter.PrintScaleDownSummary(result, startTime, duration)
			return nil
		},
	}

	cmd.Flags().StringVarP(&groupName, "asg-name", "n", os.Getenv(handlers.EnvASGName),
		"Auto Scaling group name")
	cmd.Flags().StringVarP(&region, "region", "r", utils.GetDefaultRegion(), "AWS region")

	return cmd
}

// envIntOr reads an optional integer environment variable for a flag default
func envIntOr(name string, fallback int) int {
	value := os.Getenv(name)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
