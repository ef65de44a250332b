package handlers

import (
	"errors"

	"github.com/aws/smithy-go"
	"github.com/sirupsen/logrus"
)

// errorFields surfaces the AWS API error code in log output when the
// failure came from a service call.
func errorFields(err error) logrus.Fields {
	fields := logrus.Fields{}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		fields["aws_error_code"] = apiErr.ErrorCode()
	}
	return fields
}
