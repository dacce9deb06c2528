package models

import "time"

const (
	VoteLike    = 1
	VoteDislike = -1
)

type ArticleVote struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ArticleID uint      `json:"article_id" gorm:"not null;uniqueIndex:idx_article_voter"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_article_voter"`
	Vote      int       `json:"vote" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
