package services

import (
	"errors"
	"fmt"
	"time"

	"cms-publisher/models"

	"gorm.io/gorm"
)

// In-memory fakes over the repository interfaces.

type fakeArticleRepo struct {
	articles map[uint]*models.Article
	votes    map[string]*models.ArticleVote
	nextID   uint

	updateStateErr  error
	stateUpdates    int
	lastPublishedAt *time.Time
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{
		articles: make(map[uint]*models.Article),
		votes:    make(map[string]*models.ArticleVote),
		nextID:   1,
	}
}

func (f *fakeArticleRepo) add(article *models.Article) *models.Article {
	if article.ID == 0 {
		article.ID = f.nextID
		f.nextID++
	}
	f.articles[article.ID] = article
	return article
}

func (f *fakeArticleRepo) Create(article *models.Article) error {
	f.add(article)
	return nil
}

func (f *fakeArticleRepo) GetByID(id uint) (*models.Article, error) {
	article, ok := f.articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return article, nil
}

func (f *fakeArticleRepo) GetList(params models.ArticleListParams) ([]models.Article, int64, error) {
	var out []models.Article
	for _, a := range f.articles {
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (f *fakeArticleRepo) GetByState(state models.ArticleState) ([]models.Article, error) {
	var out []models.Article
	for _, a := range f.articles {
		if a.State == state {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeArticleRepo) Update(article *models.Article) error {
	f.articles[article.ID] = article
	return nil
}

func (f *fakeArticleRepo) UpdateState(id uint, state models.ArticleState, publishedAt *time.Time) error {
	if f.updateStateErr != nil {
		return f.updateStateErr
	}
	article, ok := f.articles[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	article.State = state
	if publishedAt != nil {
		article.PublishedAt = publishedAt
	}
	f.stateUpdates++
	f.lastPublishedAt = publishedAt
	return nil
}

func (f *fakeArticleRepo) IncrementCounter(id uint, column string, delta int) error {
	article, ok := f.articles[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	switch column {
	case "views_number":
		article.ViewsNumber += delta
	case "shares_number":
		article.SharesNumber += delta
	case "likes_number":
		article.LikesNumber += delta
	case "dislikes_number":
		article.DislikesNumber += delta
	default:
		return errors.New("unknown column " + column)
	}
	return nil
}

func voteKey(articleID, userID uint) string {
	return fmt.Sprintf("%d:%d", articleID, userID)
}

func (f *fakeArticleRepo) GetVote(articleID, userID uint) (*models.ArticleVote, error) {
	vote, ok := f.votes[voteKey(articleID, userID)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return vote, nil
}

func (f *fakeArticleRepo) SaveVote(vote *models.ArticleVote) error {
	f.votes[voteKey(vote.ArticleID, vote.UserID)] = vote
	return nil
}

type fakeScheduleRepo struct {
	rows     []*models.ScheduledPublication
	articles *fakeArticleRepo
	nextID   uint

	replaceErr error
}

func newFakeScheduleRepo(articles *fakeArticleRepo) *fakeScheduleRepo {
	return &fakeScheduleRepo{articles: articles, nextID: 1}
}

func (f *fakeScheduleRepo) Replace(articleID uint, at time.Time) (*models.ScheduledPublication, error) {
	if f.replaceErr != nil {
		return nil, f.replaceErr
	}
	kept := f.rows[:0]
	for _, row := range f.rows {
		if row.ArticleID != articleID {
			kept = append(kept, row)
		}
	}
	f.rows = kept

	row := &models.ScheduledPublication{
		ID:          f.nextID,
		ArticleID:   articleID,
		ToPublishAt: at,
	}
	f.nextID++
	f.rows = append(f.rows, row)
	return row, nil
}

func (f *fakeScheduleRepo) GetByArticleID(articleID uint) (*models.ScheduledPublication, error) {
	for _, row := range f.rows {
		if row.ArticleID == articleID {
			return row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeScheduleRepo) GetDue(now time.Time) ([]models.ScheduledPublication, error) {
	var due []models.ScheduledPublication
	for _, row := range f.rows {
		if row.Published || row.ToPublishAt.After(now) {
			continue
		}
		copied := *row
		if article, ok := f.articles.articles[row.ArticleID]; ok {
			copied.Article = *article
		}
		due = append(due, copied)
	}
	return due, nil
}

func (f *fakeScheduleRepo) MarkPublished(schedule *models.ScheduledPublication) error {
	for _, row := range f.rows {
		if row.ID == schedule.ID {
			row.Published = true
			schedule.Published = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeCategoryRepo struct {
	categories map[uint]*models.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uint]*models.Category)}
}

func (f *fakeCategoryRepo) Create(category *models.Category) error {
	if category.ID == 0 {
		category.ID = uint(len(f.categories) + 1)
	}
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) GetByID(id uint) (*models.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return category, nil
}

func (f *fakeCategoryRepo) GetAll() ([]models.Category, error) {
	var out []models.Category
	for _, c := range f.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCategoryRepo) Update(category *models.Category) error {
	f.categories[category.ID] = category
	return nil
}

type fakeTagRepo struct {
	tags map[string]*models.Tag
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: make(map[string]*models.Tag)}
}

func (f *fakeTagRepo) Create(tag *models.Tag) error {
	if tag.ID == 0 {
		tag.ID = uint(len(f.tags) + 1)
	}
	f.tags[tag.Name] = tag
	return nil
}

func (f *fakeTagRepo) GetByName(name string) (*models.Tag, error) {
	tag, ok := f.tags[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return tag, nil
}

func (f *fakeTagRepo) GetByID(id uint) (*models.Tag, error) {
	for _, tag := range f.tags {
		if tag.ID == id {
			return tag, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTagRepo) GetAll() ([]models.Tag, error) {
	var out []models.Tag
	for _, tag := range f.tags {
		out = append(out, *tag)
	}
	return out, nil
}

func (f *fakeTagRepo) Update(tag *models.Tag) error {
	f.tags[tag.Name] = tag
	return nil
}

type sentMail struct {
	to      string
	subject string
	html    string
}

type fakeNotifier struct {
	sent []sentMail
	err  error
}

func (f *fakeNotifier) Send(to, subject, html string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, html: html})
	return nil
}
