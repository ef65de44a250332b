package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dajneem23/Terraform-AWS-Cost-Optimization-Project/internal/models"
)

// Tag identifying the instances the reaper is allowed to act on.
const (
	SchedulableTagKey   = "Schedulable"
	SchedulableTagValue = "true"
)

// InstanceControl covers the EC2 calls the reaper needs.
type InstanceControl interface {
	RunningInstancesByTag(ctx context.Context, key, value string) ([]models.InstanceInfo, error)
	StopInstances(ctx context.Context, ids []string) error
	Region() string
}

// InstanceReaper stops all but one running schedulable instance. The kept
// instance is whichever the provider lists first; the ordering is not
// otherwise defined.
type InstanceReaper struct {
	ec2 InstanceControl
	log *logrus.Entry
}

// NewInstanceReaper creates a reaper over the given instance client.
func NewInstanceReaper(ec2 InstanceControl) *InstanceReaper {
	return &InstanceReaper{
		ec2: ec2,
		log: logrus.WithField("handler", "instance-reaper"),
	}
}

// Handle runs one reap and reports which instances were told to stop.
func (h *InstanceReaper) Handle(ctx context.Context) (Response, error) {
	result, err := h.Reap(ctx)
	if err != nil {
		return Response{}, err
	}
	return ok(fmt.Sprintf("Successfully sent stop command for instances: %s",
		strings.Join(result.StoppedIDs, ", "))), nil
}

// Reap finds running instances tagged Schedulable=true and issues a stop
// request for all but the first one returned. With zero or one match the
// stop-candidate set is empty and no stop request is made.
func (h *InstanceReaper) Reap(ctx context.Context) (models.ReapResult, error) {
	running, err := h.ec2.RunningInstancesByTag(ctx, SchedulableTagKey, SchedulableTagValue)
	if err != nil {
		h.log.WithError(err).WithFields(errorFields(err)).Error("instance query failed")
		return models.ReapResult{}, err
	}

	var stopIDs []string
	for i, instance := range running {
		if i == 0 {
			continue
		}
		stopIDs = append(stopIDs, instance.InstanceID)
	}

	h.log.WithFields(logrus.Fields{
		"running":  len(running),
		"stopping": len(stopIDs),
	}).Info("stopping instances to keep one active")

	if err := h.ec2.StopInstances(ctx, stopIDs); err != nil {
		h.log.WithError(err).WithFields(errorFields(err)).Error("stop request failed")
		return models.ReapResult{}, err
	}

	return models.ReapResult{
		Region:     h.ec2.Region(),
		Running:    running,
		StoppedIDs: stopIDs,
	}, nil
}
