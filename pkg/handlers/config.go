package handlers

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names fixed by the deployment templates.
const (
	EnvBucketName     = "S3_BUCKET_NAME"
	EnvTopicARN       = "SNS_TOPIC_ARN"
	EnvAlertDays      = "ALERT_DAYS_BEFORE_EXPIRATION"
	EnvExpirationDays = "LIFECYCLE_EXPIRATION_DAYS"
	EnvRegion         = "AWS_REGION"
	EnvASGName        = "ASG_NAME"
)

// Defaults for the optional expiration-scan variables.
const (
	DefaultAlertDays      = 7
	DefaultExpirationDays = 365
)

// ExpirationConfig holds the environment configuration for one scan.
type ExpirationConfig struct {
	Bucket         string
	TopicARN       string
	AlertDays      int
	ExpirationDays int
}

// ExpirationConfigFromEnv reads the scanner configuration from the
// environment. Missing required variables and unparseable integers are
// fatal here, before any handler logic runs.
func ExpirationConfigFromEnv() (ExpirationConfig, error) {
	bucket, err := requireEnv(EnvBucketName)
	if err != nil {
		return ExpirationConfig{}, err
	}
	topicARN, err := requireEnv(EnvTopicARN)
	if err != nil {
		return ExpirationConfig{}, err
	}
	alertDays, err := intEnv(EnvAlertDays, DefaultAlertDays)
	if err != nil {
		return ExpirationConfig{}, err
	}
	expirationDays, err := intEnv(EnvExpirationDays, DefaultExpirationDays)
	if err != nil {
		return ExpirationConfig{}, err
	}

	return ExpirationConfig{
		Bucket:         bucket,
		TopicARN:       topicARN,
		AlertDays:      alertDays,
		ExpirationDays: expirationDays,
	}, nil
}

// ReaperConfig holds the environment configuration for the instance reaper.
type ReaperConfig struct {
	Region string
}

// ReaperConfigFromEnv reads the reaper configuration from the environment.
func ReaperConfigFromEnv() (ReaperConfig, error) {
	region, err := requireEnv(EnvRegion)
	if err != nil {
		return ReaperConfig{}, err
	}
	return ReaperConfig{Region: region}, nil
}

// ScaleDownConfig holds the environment configuration for the group scale-down.
type ScaleDownConfig struct {
	Region    string
	GroupName string
}

// ScaleDownConfigFromEnv reads the scale-down configuration from the environment.
func ScaleDownConfigFromEnv() (ScaleDownConfig, error) {
	region, err := requireEnv(EnvRegion)
	if err != nil {
		return ScaleDownConfig{}, err
	}
	name, err := requireEnv(EnvASGName)
	if err != nil {
		return ScaleDownConfig{}, err
	}
	return ScaleDownConfig{Region: region, GroupName: name}, nil
}

func requireEnv(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("required environment variable %s is not set", name)
	}
	return value, nil
}

func intEnv(name string, fallback int) (int, error) {
	value := os.Getenv(name)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q for %s: %w", value, name, err)
	}
	return n, nil
}
