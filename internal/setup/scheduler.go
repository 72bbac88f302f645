package setup

import (
	"fmt"
	"time"

	"github.com/moneta-app/moneta-backend/internal/domain/usecase"
	"github.com/moneta-app/moneta-backend/internal/infra/db/mongodb/report_repository"
	"github.com/moneta-app/moneta-backend/internal/infra/db/mongodb/shared_user_repository"
	"github.com/moneta-app/moneta-backend/internal/infra/db/mongodb/user_repository"
	"github.com/moneta-app/moneta-backend/internal/setup/factory"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// StartScheduler runs the weekly activity summary every Monday at 08:00.
// The returned cron must be stopped on shutdown.
func StartScheduler(db *mongo.Database, logger *zap.Logger) *cron.Cron {
	findUsers := user_repository.NewFindUserRepository(db)
	activity := report_repository.NewWeeklyActivityRepository(db)
	resolveOwner := shared_user_repository.NewResolveEffectiveOwnerRepository(db)
	mailer := factory.MakeMailer()

	c := cron.New()
	c.AddFunc("0 8 * * 1", func() {
		sendWeeklyReports(findUsers, activity, resolveOwner, mailer, logger)
	})
	c.Start()
	return c
}

func sendWeeklyReports(
	findUsers *user_repository.FindUserRepository,
	activity *report_repository.WeeklyActivityRepository,
	resolveOwner usecase.ResolveEffectiveOwnerRepository,
	mailer usecase.Mailer,
	logger *zap.Logger,
) {
	users, err := findUsers.FindWeeklyReportSubscribers()
	if err != nil {
		logger.Error("weekly report: listing subscribers failed", zap.Error(err))
		return
	}

	since := time.Now().AddDate(0, 0, -7)
	for _, user := range users {
		owner := resolveOwner.Resolve(user.Email, "transactions")

		transactions, err := activity.CountRecentTransactions(owner, since)
		if err != nil {
			logger.Error("weekly report: counting transactions failed",
				zap.String("email", user.Email), zap.Error(err))
			continue
		}
		goals, err := activity.CountGoals(owner)
		if err != nil {
			logger.Error("weekly report: counting goals failed",
				zap.String("email", user.Email), zap.Error(err))
			continue
		}

		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>Your week in review: %d new transactions recorded and %d goals in progress.</p>",
			user.FullName, transactions, goals,
		)
		if err := mailer.Send(user.Email, "Your weekly summary", body, true); err != nil {
			logger.Error("weekly report: send failed",
				zap.String("email", user.Email), zap.Error(err))
		}
	}

	logger.Info("weekly report run complete", zap.Int("subscribers", len(users)))
}
