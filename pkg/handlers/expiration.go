package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/dajneem23/Terraform-AWS-Cost-Optimization-Project/internal/models"
	"github.com/dajneem23/Terraform-AWS-Cost-Optimization-Project/pkg/utils"
)

// ObjectLister supplies the full object listing of one bucket.
type ObjectLister interface {
	ListObjects(ctx context.Context) ([]models.StoredObject, error)
}

// NoticePublisher delivers one consolidated alert message.
type NoticePublisher interface {
	Publish(ctx context.Context, subject, message string) error
}

// ExpirationScanner flags objects nearing their lifecycle expiration and
// publishes at most one consolidated notification per run. Repeated runs
// inside the same alert window re-send the same alerts; no dedup key exists.
type ExpirationScanner struct {
	cfg       ExpirationConfig
	lister    ObjectLister
	publisher NoticePublisher
	log       *logrus.Entry
	now       func() time.Time
}

// NewExpirationScanner creates a scanner over the given collaborators.
func NewExpirationScanner(cfg ExpirationConfig, lister ObjectLister, publisher NoticePublisher) *ExpirationScanner {
	return &ExpirationScanner{
		cfg:       cfg,
		lister:    lister,
		publisher: publisher,
		log:       logrus.WithField("handler", "expiration-alerter"),
		now:       time.Now,
	}
}

// Handle runs one scan and reports how many objects were flagged. Any
// listing or publish failure aborts the run and propagates.
func (h *ExpirationScanner) Handle(ctx context.Context) (Response, error) {
	result, err := h.Scan(ctx)
	if err != nil {
		return Response{}, err
	}
	return ok(fmt.Sprintf("Processed. Found %d object(s) nearing expiration.", len(result.Notices))), nil
}

// Scan consumes the whole bucket listing, collects every object inside the
// alert window, and publishes one consolidated notification if any were
// found. A failed publish sends nothing: the notices only ever live in
// memory for the duration of the run.
func (h *ExpirationScanner) Scan(ctx context.Context) (models.ScanResult, error) {
	now := h.now().UTC()

	h.log.WithFields(logrus.Fields{
		"bucket":          h.cfg.Bucket,
		"expiration_days": h.cfg.ExpirationDays,
		"alert_days":      h.cfg.AlertDays,
	}).Info("checking bucket for objects nearing expiration")

	objects, err := h.lister.ListObjects(ctx)
	if err != nil {
		h.log.WithError(err).WithFields(errorFields(err)).Error("object listing failed")
		return models.ScanResult{}, err
	}

	result := models.ScanResult{
		Bucket:        h.cfg.Bucket,
		ObjectsListed: len(objects),
		Notices:       h.collectNotices(objects, now),
	}

	if len(result.Notices) == 0 {
		h.log.Info("no objects nearing expiration within the alert window")
		return result, nil
	}

	subject := fmt.Sprintf("[%d] S3 Object(s) Nearing Expiration in Bucket: %s",
		len(result.Notices), h.cfg.Bucket)
	if err := h.publisher.Publish(ctx, subject, h.consolidate(result.Notices)); err != nil {
		h.log.WithError(err).WithFields(errorFields(err)).Error("alert publish failed")
		return models.ScanResult{}, err
	}
	result.Published = true

	h.log.WithField("count", len(result.Notices)).Info("published expiration alerts")
	return result, nil
}

// collectNotices applies the alert window to every object. An object is
// flagged iff alertStart <= now < expiresAt; an object exactly at its
// expiration instant is no longer flagged.
func (h *ExpirationScanner) collectNotices(objects []models.StoredObject, now time.Time) []models.ExpirationNotice {
	var notices []models.ExpirationNotice
	for _, obj := range objects {
		expiresAt := obj.LastModified.AddDate(0, 0, h.cfg.ExpirationDays)
		alertStart := expiresAt.AddDate(0, 0, -h.cfg.AlertDays)

		if now.Before(alertStart) || !now.Before(expiresAt) {
			continue
		}

		remaining := utils.WholeDaysUntil(now, expiresAt)
		notices = append(notices, models.ExpirationNotice{
			ObjectKey:     obj.Key,
			LastModified:  obj.LastModified,
			ExpiresAt:     expiresAt,
			DaysRemaining: remaining,
			Message:       h.noticeMessage(obj, expiresAt, remaining),
		})
	}
	return notices
}

func (h *ExpirationScanner) noticeMessage(obj models.StoredObject, expiresAt time.Time, remaining int) string {
	return fmt.Sprintf("S3 Object Alert:\n"+
		"Bucket: %s\n"+
		"Object Key: %s\n"+
		"Size: %s\n"+
		"Last Modified: %s\n"+
		"Scheduled for deletion in approximately: %d day(s) (around %s).",
		h.cfg.Bucket,
		obj.Key,
		humanize.Bytes(uint64(obj.Size)),
		obj.LastModified.Format("2006-01-02 15:04:05 MST"),
		remaining,
		expiresAt.Format("2006-01-02"))
}

func (h *ExpirationScanner) consolidate(notices []models.ExpirationNotice) string {
	blocks := make([]string, 0, len(notices))
	for _, notice := range notices {
		blocks = append(blocks, notice.Message)
	}
	header := fmt.Sprintf("The following S3 object(s) in bucket '%s' are nearing their %d-day lifecycle expiration:\n\n",
		h.cfg.Bucket, h.cfg.ExpirationDays)
	return header + strings.Join(blocks, "\n\n---\n\n")
}
