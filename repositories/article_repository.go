package repositories

import (
	"fmt"
	"time"

	"cms-publisher/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetList(params models.ArticleListParams) ([]models.Article, int64, error)
	GetByState(state models.ArticleState) ([]models.Article, error)
	Update(article *models.Article) error
	UpdateState(id uint, state models.ArticleState, publishedAt *time.Time) error
	IncrementCounter(id uint, column string, delta int) error
	GetVote(articleID, userID uint) (*models.ArticleVote, error)
	SaveVote(vote *models.ArticleVote) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").
		Preload("Category").
		Preload("Tags").
		First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) GetList(params models.ArticleListParams) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.db.Model(&models.Article{}).Preload("Author").Preload("Category").Preload("Tags")

	if params.State != "" {
		query = query.Where("state = ?", params.State)
	}

	if params.AuthorID > 0 {
		query = query.Where("author_id = ?", params.AuthorID)
	}

	if params.CategoryID > 0 {
		query = query.Where("category_id = ?", params.CategoryID)
	}

	query.Count(&total)

	query = query.Order(orderClause(params.SortBy, params.SortOrder))

	offset := (params.Page - 1) * params.Limit
	err := query.Offset(offset).Limit(params.Limit).Find(&articles).Error

	return articles, total, err
}

// sortableColumns whitelists what GetList accepts for sort_by; anything else
// falls back to created_at. Sort params come straight from the query string,
// so they never reach the SQL unchecked.
var sortableColumns = map[string]bool{
	"created_at":      true,
	"updated_at":      true,
	"published_at":    true,
	"title":           true,
	"views_number":    true,
	"likes_number":    true,
	"dislikes_number": true,
}

func orderClause(sortBy, sortOrder string) string {
	if !sortableColumns[sortBy] {
		sortBy = "created_at"
	}
	if sortOrder != "asc" {
		sortOrder = "desc"
	}
	return fmt.Sprintf("articles.%s %s", sortBy, sortOrder)
}

func (r *articleRepository) GetByState(state models.ArticleState) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Author").Preload("Category").
		Where("state = ?", state).
		Order("updated_at desc").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

// UpdateState persists the state change and, when publishedAt is non-nil, the
// publish timestamp in one UPDATE so no reader sees one without the other.
func (r *articleRepository) UpdateState(id uint, state models.ArticleState, publishedAt *time.Time) error {
	updates := map[string]interface{}{"state": state}
	if publishedAt != nil {
		updates["published_at"] = *publishedAt
	}
	return r.db.Model(&models.Article{}).Where("id = ?", id).Updates(updates).Error
}

func (r *articleRepository) IncrementCounter(id uint, column string, delta int) error {
	return r.db.Model(&models.Article{}).Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta)).Error
}

func (r *articleRepository) GetVote(articleID, userID uint) (*models.ArticleVote, error) {
	var vote models.ArticleVote
	err := r.db.Where("article_id = ? AND user_id = ?", articleID, userID).First(&vote).Error
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

func (r *articleRepository) SaveVote(vote *models.ArticleVote) error {
	return r.db.Save(vote).Error
}
