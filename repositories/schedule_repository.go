package repositories

import (
	"time"

	"cms-publisher/models"

	"gorm.io/gorm"
)

type ScheduleRepository interface {
	Replace(articleID uint, at time.Time) (*models.ScheduledPublication, error)
	GetByArticleID(articleID uint) (*models.ScheduledPublication, error)
	GetDue(now time.Time) ([]models.ScheduledPublication, error)
	MarkPublished(schedule *models.ScheduledPublication) error
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

// Replace deletes every schedule row for the article, consumed or not, and
// inserts the new one inside a single transaction. At most one logical
// schedule survives per article; only the sweep leaves rows behind.
func (r *scheduleRepository) Replace(articleID uint, at time.Time) (*models.ScheduledPublication, error) {
	schedule := &models.ScheduledPublication{
		ArticleID:   articleID,
		ToPublishAt: at,
		Published:   false,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", articleID).
			Delete(&models.ScheduledPublication{}).Error; err != nil {
			return err
		}
		return tx.Create(schedule).Error
	})
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

func (r *scheduleRepository) GetByArticleID(articleID uint) (*models.ScheduledPublication, error) {
	var schedule models.ScheduledPublication
	err := r.db.Where("article_id = ?", articleID).First(&schedule).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) GetDue(now time.Time) ([]models.ScheduledPublication, error) {
	var schedules []models.ScheduledPublication
	err := r.db.Preload("Article.Category").Preload("Article.Author").
		Where("published = ? AND to_publish_at <= ?", false, now).
		Find(&schedules).Error
	return schedules, err
}

func (r *scheduleRepository) MarkPublished(schedule *models.ScheduledPublication) error {
	schedule.Published = true
	return r.db.Model(schedule).Update("published", true).Error
}
