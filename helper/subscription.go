package helper

import (
	"time"

	"github.com/quantrananh2304/1682-server/database"
	"github.com/quantrananh2304/1682-server/logger"
	"github.com/quantrananh2304/1682-server/model"

	"github.com/go-co-op/gocron/v2"
)

var subscriptionScheduler gocron.Scheduler

// DowngradeLapsedSubscriptions demotes PREMIUM users whose paid time ran out.
func DowngradeLapsedSubscriptions() {
	res := database.DB.Model(&model.User{}).
		Where("role = ? AND subscription_valid_until < ?", model.UserRolePremium, time.Now()).
		Update("role", model.UserRoleUser)

	if res.Error != nil {
		logger.Errorw("failed to downgrade lapsed subscriptions", "error", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		logger.Infow("downgraded lapsed subscriptions", "count", res.RowsAffected)
	}
}

func StartSubscriptionScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		logger.Fatalw("failed to create subscription scheduler", "error", err)
	}

	subscriptionScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(DowngradeLapsedSubscriptions),
	)
	if err != nil {
		logger.Fatalw("failed to schedule subscription job", "error", err)
	}

	s.Start()
	logger.Infow("subscription scheduler started", "at", "00:05")
}

func StopSubscriptionScheduler() {
	if subscriptionScheduler != nil {
		_ = subscriptionScheduler.Shutdown()
	}
}
