package handlers

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/dajneem23/Terraform-AWS-Cost-Optimization-Project/internal/models"
)

// GroupScaler covers the Auto Scaling call the scale-down needs.
type GroupScaler interface {
	SetCapacity(ctx context.Context, name string, minSize, desired int32) error
	Region() string
}

// GroupScaleDown forces one Auto Scaling group's minimum size and desired
// capacity to zero. It does not wait for instances to terminate.
type GroupScaleDown struct {
	groupName string
	asg       GroupScaler
	log       *logrus.Entry
}

// NewGroupScaleDown creates a scale-down handler for the given group.
func NewGroupScaleDown(groupName string, asg GroupScaler) *GroupScaleDown {
	return &GroupScaleDown{
		groupName: groupName,
		asg:       asg,
		log:       logrus.WithField("handler", "asg-scaledown"),
	}
}

// Handle runs one scale-down and reports the group it acted on.
func (h *GroupScaleDown) Handle(ctx context.Context) (Response, error) {
	result, err := h.ScaleDown(ctx)
	if err != nil {
		return Response{}, err
	}
	return ok(fmt.Sprintf("Scaled Auto Scaling group %s to min=0, desired=0.", result.GroupName)), nil
}

// ScaleDown issues the single capacity update. Failure is logged and
// propagated; there is no partial state to reconcile.
func (h *GroupScaleDown) ScaleDown(ctx context.Context) (models.ScaleDownResult, error) {
	h.log.WithField("group", h.groupName).Info("scaling group to zero")

	if err := h.asg.SetCapacity(ctx, h.groupName, 0, 0); err != nil {
		h.log.WithError(err).WithFields(errorFields(err)).Error("scale-down request failed")
		return models.ScaleDownResult{}, err
	}

	return models.ScaleDownResult{
		GroupName:       h.groupName,
		Region:          h.asg.Region(),
		MinSize:         0,
		DesiredCapacity: 0,
	}, nil
}
