package models

import "time"

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateArticleRequest struct {
	Title       string   `json:"title" binding:"required,min=1,max=100"`
	Description string   `json:"description" binding:"required"`
	CategoryID  uint     `json:"category_id" binding:"required"`
	Tags        []string `json:"tags"`
}

type ChangeStateRequest struct {
	State ArticleState `json:"state" binding:"required"`
}

type SchedulePublicationRequest struct {
	ToPublishAt time.Time `json:"to_publish_at" binding:"required"`
}

type CreateCategoryRequest struct {
	Name        string       `json:"name" binding:"required,min=1,max=100"`
	Description string       `json:"description"`
	Type        CategoryType `json:"type" binding:"required"`
	State       *bool        `json:"state"`
	IsModerated bool         `json:"is_moderated"`
}

type UpdateCategoryRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Type        CategoryType  `json:"type"`
	State       *bool         `json:"state"`
	IsModerated *bool         `json:"is_moderated"`
}

type AssignRolesRequest struct {
	RoleIDs []uint `json:"role_ids" binding:"required"`
}

type ArticleListParams struct {
	State      string `form:"state"`
	AuthorID   uint   `form:"author_id"`
	CategoryID uint   `form:"category_id"`
	Page       int    `form:"page,default=1"`
	Limit      int    `form:"limit,default=10"`
	SortBy     string `form:"sort_by,default=created_at"`
	SortOrder  string `form:"sort_order,default=desc"`
}
