package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	awsclient "github.com/dajneem23/Terraform-AWS-Cost-Optimization-Project/pkg/aws"
	"github.com/dajneem23/Terraform-AWS-Cost-Optimization-Project/pkg/handlers"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := handlers.ReaperConfigFromEnv()
	if err != nil {
		logrus.WithError(err).Fatal("configuration error")
	}

	awsCfg, err := awsclient.LoadConfig(context.Background(), cfg.Region)
	if err != nil {
		logrus.WithError(err).Fatal("error loading AWS config")
	}

	handler := handlers.NewInstanceReaper(awsclient.NewInstanceClient(awsCfg))

	lambda.Start(handler.Handle)
}
