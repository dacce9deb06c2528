package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cms-publisher/models"
	"cms-publisher/notification"
	"cms-publisher/repositories"

	"gorm.io/gorm"
)

type ScheduleService interface {
	SchedulePublication(articleID uint, at time.Time, caps models.Capabilities) (*models.ScheduledPublication, error)
	RunSweep(now time.Time) (int, error)
}

type scheduleService struct {
	scheduleRepo repositories.ScheduleRepository
	articleRepo  repositories.ArticleRepository
	notifier     notification.Notifier
	logger       *slog.Logger
}

func NewScheduleService(
	scheduleRepo repositories.ScheduleRepository,
	articleRepo repositories.ArticleRepository,
	notifier notification.Notifier,
	logger *slog.Logger,
) ScheduleService {
	return &scheduleService{
		scheduleRepo: scheduleRepo,
		articleRepo:  articleRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

// SchedulePublication records a deferred publish request. The actor must be
// eligible to publish the article; the check happens here, not at sweep time.
// Any previous schedule for the article is replaced.
func (s *scheduleService) SchedulePublication(articleID uint, at time.Time, caps models.Capabilities) (*models.ScheduledPublication, error) {
	article, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		return nil, err
	}

	if !models.CanEventuallyPublish(article, caps) {
		return nil, models.ErrForbidden
	}

	if article.State.IsTerminal() {
		return nil, models.ErrInvalidTransition
	}

	schedule, err := s.scheduleRepo.Replace(article.ID, at)
	if err != nil {
		// A competing replace slipped its pending row in between our delete
		// and insert; the partial unique index rejects the second one.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrScheduleConflict
		}
		return nil, err
	}

	s.logger.Info("publication scheduled",
		"article_id", article.ID,
		"to_publish_at", at,
		"user_id", caps.UserID(),
	)

	return schedule, nil
}

// RunSweep promotes every due, unconsumed schedule into a publish transition
// and marks the row consumed. Rows are processed independently: one failure
// is logged and skipped, keeping the rest of the batch alive. The sweep runs
// as a trusted system actor since eligibility was checked at schedule time.
func (s *scheduleService) RunSweep(now time.Time) (int, error) {
	due, err := s.scheduleRepo.GetDue(now)
	if err != nil {
		return 0, err
	}

	if len(due) == 0 {
		return 0, nil
	}

	s.logger.Info("processing scheduled publications", "count", len(due))

	promoted := 0
	for i := range due {
		schedule := &due[i]
		if err := s.promote(schedule, now); err != nil {
			s.logger.Error("failed to publish scheduled article",
				"article_id", schedule.ArticleID,
				"to_publish_at", schedule.ToPublishAt,
				"error", err,
			)
			continue
		}
		promoted++

		s.logger.Info("published scheduled article",
			"article_id", schedule.ArticleID,
			"to_publish_at", schedule.ToPublishAt,
		)
	}

	return promoted, nil
}

func (s *scheduleService) promote(schedule *models.ScheduledPublication, now time.Time) error {
	article := &schedule.Article

	plan, err := models.PlanSystemPublish(article)
	if err != nil {
		return err
	}

	var publishedAt *time.Time
	if plan.StampPublishedAt {
		publishedAt = &now
	}

	if err := s.articleRepo.UpdateState(article.ID, plan.To, publishedAt); err != nil {
		return err
	}

	if err := s.scheduleRepo.MarkPublished(schedule); err != nil {
		return err
	}

	s.notifyPublished(article, plan)

	return nil
}

func (s *scheduleService) notifyPublished(article *models.Article, plan *models.TransitionPlan) {
	if s.notifier == nil || article.Author.Email == "" {
		return
	}

	subject := fmt.Sprintf("Tu artículo %q fue publicado", article.Title)
	html := fmt.Sprintf(
		"<p>El artículo <strong>%s</strong> pasó de <em>%s</em> a <em>%s</em> según lo programado.</p>",
		article.Title, plan.From, plan.To,
	)

	if err := s.notifier.Send(article.Author.Email, subject, html); err != nil {
		s.logger.Error("failed to notify author of scheduled publication",
			"article_id", article.ID,
			"error", err,
		)
	}
}
