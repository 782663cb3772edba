package helper

import (
	"errors"
	"time"

	"github.com/quantrananh2304/1682-server/config"
	"github.com/quantrananh2304/1682-server/database"
	"github.com/quantrananh2304/1682-server/logger"
	"github.com/quantrananh2304/1682-server/model"

	"github.com/robfig/cron/v3"
)

var paymentReconciler *cron.Cron

// StartPaymentReconciler schedules the sweep that fails orders the gateway
// never confirmed. Defaults to every minute (seconds field cron spec).
func StartPaymentReconciler() {
	paymentReconciler = cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)

	spec := config.ConfigOr("PAYMENT_SWEEP_CRON", "0 * * * * *")
	if _, err := paymentReconciler.AddFunc(spec, ExpireOverduePayments); err != nil {
		logger.Fatalw("failed to schedule payment reconciler", "spec", spec, "error", err)
	}

	paymentReconciler.Start()
	logger.Infow("payment reconciler started", "spec", spec)
}

func StopPaymentReconciler() {
	if paymentReconciler != nil {
		paymentReconciler.Stop()
	}
}

// ExpireOverduePayments force-fails PENDING payments older than the overdue
// threshold. Each payment goes through the same conditional transition as
// the status-update endpoint, so a payment confirmed concurrently is left
// alone. One bad row never stops the rest of the batch.
func ExpireOverduePayments() {
	threshold := time.Duration(config.ConfigInt("PAYMENT_OVERDUE_MINUTES", 15)) * time.Minute
	cutoff := time.Now().Add(-threshold)

	var overdue []model.Payment
	if err := database.DB.
		Where("status = ? AND created_at < ?", model.PaymentStatusPending, cutoff).
		Find(&overdue).Error; err != nil {
		logger.Errorw("failed to query overdue payments", "error", err)
		return
	}

	expired := 0
	for _, payment := range overdue {
		_, err := TransitionPaymentStatus(payment.ID, model.PaymentStatusFailure, model.SystemActorID)
		switch {
		case err == nil:
			expired++
		case errors.Is(err, ErrPaymentFinalized):
			// Someone confirmed it between the query and the update. Not an error.
			logger.Debugw("payment finalized before sweep", "paymentId", payment.ID)
		default:
			logger.Errorw("failed to expire payment", "paymentId", payment.ID, "error", err)
		}
	}

	if expired > 0 {
		logger.Infow("expired overdue payments", "count", expired, "scanned", len(overdue))
	}
}
