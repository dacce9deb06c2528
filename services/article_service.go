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

type ArticleService interface {
	CreateArticle(req models.CreateArticleRequest, caps models.Capabilities) (*models.Article, error)
	GetArticle(id uint, shared bool) (*models.Article, error)
	GetArticles(params models.ArticleListParams) ([]models.Article, int64, error)
	Kanban() (map[models.ArticleState][]models.Article, error)
	ChangeState(articleID uint, target models.ArticleState, caps models.Capabilities) (*models.Article, error)
	Vote(articleID uint, vote int, caps models.Capabilities) (*models.Article, error)
}

type articleService struct {
	articleRepo  repositories.ArticleRepository
	categoryRepo repositories.CategoryRepository
	tagRepo      repositories.TagRepository
	notifier     notification.Notifier
	logger       *slog.Logger
}

func NewArticleService(
	articleRepo repositories.ArticleRepository,
	categoryRepo repositories.CategoryRepository,
	tagRepo repositories.TagRepository,
	notifier notification.Notifier,
	logger *slog.Logger,
) ArticleService {
	return &articleService{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

func (s *articleService) CreateArticle(req models.CreateArticleRequest, caps models.Capabilities) (*models.Article, error) {
	if !caps.IsAdmin() && !caps.Has(models.PermCreateArticles) {
		return nil, models.ErrForbidden
	}

	category, err := s.categoryRepo.GetByID(req.CategoryID)
	if err != nil {
		return nil, err
	}
	if !category.State {
		return nil, errors.New("category is inactive")
	}

	tags, err := s.processTags(req.Tags)
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		Title:       req.Title,
		Description: req.Description,
		AuthorID:    caps.UserID(),
		CategoryID:  category.ID,
		State:       models.StateDraft,
		Tags:        tags,
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(article.ID)
}

func (s *articleService) GetArticle(id uint, shared bool) (*models.Article, error) {
	if _, err := s.articleRepo.GetByID(id); err != nil {
		return nil, err
	}

	if err := s.articleRepo.IncrementCounter(id, "views_number", 1); err != nil {
		return nil, err
	}
	if shared {
		if err := s.articleRepo.IncrementCounter(id, "shares_number", 1); err != nil {
			return nil, err
		}
	}

	return s.articleRepo.GetByID(id)
}

func (s *articleService) GetArticles(params models.ArticleListParams) ([]models.Article, int64, error) {
	return s.articleRepo.GetList(params)
}

func (s *articleService) Kanban() (map[models.ArticleState][]models.Article, error) {
	board := make(map[models.ArticleState][]models.Article)
	for _, state := range models.AllArticleStates() {
		articles, err := s.articleRepo.GetByState(state)
		if err != nil {
			return nil, err
		}
		board[state] = articles
	}
	return board, nil
}

// ChangeState runs the transition rules for the actor and, when legal,
// persists the new state (plus the publish timestamp, stamped once) and
// notifies the author. The notification is best-effort: a failed send is
// logged and the transition still succeeds.
func (s *articleService) ChangeState(articleID uint, target models.ArticleState, caps models.Capabilities) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		return nil, err
	}

	plan, err := models.PlanTransition(article, target, caps)
	if err != nil {
		return nil, err
	}

	var publishedAt *time.Time
	if plan.StampPublishedAt {
		now := time.Now()
		publishedAt = &now
	}

	if err := s.articleRepo.UpdateState(article.ID, plan.To, publishedAt); err != nil {
		return nil, err
	}

	article.State = plan.To
	if publishedAt != nil {
		article.PublishedAt = publishedAt
	}

	s.notifyStateChange(article, plan)

	return article, nil
}

func (s *articleService) Vote(articleID uint, vote int, caps models.Capabilities) (*models.Article, error) {
	if !caps.IsAdmin() && !caps.Has(models.PermRateArticles) {
		return nil, models.ErrForbidden
	}
	if vote != models.VoteLike && vote != models.VoteDislike {
		return nil, errors.New("invalid vote value")
	}

	article, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		return nil, err
	}

	existing, err := s.articleRepo.GetVote(articleID, caps.UserID())
	switch {
	case err == nil:
		if existing.Vote == vote {
			return article, nil
		}
		// Switching sides: move one counter to the other.
		if err := s.articleRepo.IncrementCounter(articleID, voteColumn(existing.Vote), -1); err != nil {
			return nil, err
		}
		existing.Vote = vote
		if err := s.articleRepo.SaveVote(existing); err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		newVote := &models.ArticleVote{
			ArticleID: articleID,
			UserID:    caps.UserID(),
			Vote:      vote,
		}
		if err := s.articleRepo.SaveVote(newVote); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := s.articleRepo.IncrementCounter(articleID, voteColumn(vote), 1); err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(articleID)
}

func voteColumn(vote int) string {
	if vote == models.VoteLike {
		return "likes_number"
	}
	return "dislikes_number"
}

func (s *articleService) notifyStateChange(article *models.Article, plan *models.TransitionPlan) {
	if s.notifier == nil || article.Author.Email == "" {
		return
	}

	subject := fmt.Sprintf("Tu artículo %q cambió de estado", article.Title)
	html := fmt.Sprintf(
		"<p>El artículo <strong>%s</strong> pasó de <em>%s</em> a <em>%s</em>.</p>",
		article.Title, plan.From, plan.To,
	)

	if err := s.notifier.Send(article.Author.Email, subject, html); err != nil {
		s.logger.Error("failed to notify author of state change",
			"article_id", article.ID,
			"from", plan.From,
			"to", plan.To,
			"error", err,
		)
	}
}

func (s *articleService) processTags(tagNames []string) ([]models.Tag, error) {
	var tags []models.Tag

	for _, name := range tagNames {
		tag, err := s.tagRepo.GetByName(name)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				newTag := &models.Tag{Name: name}
				if err := s.tagRepo.Create(newTag); err != nil {
					return nil, err
				}
				tags = append(tags, *newTag)
				continue
			}
			return nil, err
		}
		tag.UsageCount++
		if err := s.tagRepo.Update(tag); err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}

	return tags, nil
}
