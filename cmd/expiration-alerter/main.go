package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	awsclient "github.com/dajneem23/Terraform-AWS-Cost-Optimization-Project/pkg/aws"
	"github.com/dajneem23/Terraform-AWS-Cost-Optimization-Project/pkg/handlers"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := handlers.ExpirationConfigFromEnv()
	if err != nil {
		logrus.WithError(err).Fatal("configuration error")
	}

	awsCfg, err := awsclient.LoadConfig(context.Background(), os.Getenv(handlers.EnvRegion))
	if err != nil {
		logrus.WithError(err).Fatal("error loading AWS config")
	}

	handler := handlers.NewExpirationScanner(cfg,
		awsclient.NewBucketScanner(awsCfg, cfg.Bucket),
		awsclient.NewNotifier(awsCfg, cfg.TopicARN))

	lambda.Start(handler.Handle)
}
