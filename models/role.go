package models

import (
	"time"

	"gorm.io/gorm"
)

// AdminRoleName is the role whose holders bypass per-permission checks.
const AdminRoleName = "Administrador"

// Permission tokens. Names kept in Spanish to match the seeded role data.
const (
	PermViewHome           = "ver_inicio"
	PermViewSubscriberCats = "ver_categorias_suscriptor"
	PermViewPaidCats       = "ver_categorias_pago"
	PermCreateArticles     = "crear_articulos"
	PermEditArticles       = "editar_articulos"
	PermEditDraftArticles  = "editar_articulos_borrador"
	PermModerateArticles   = "moderar_articulos"
	PermPublishComments    = "publicar_comentarios"
	PermReadComments       = "leer_comentarios"
	PermRateArticles       = "evaluar_articulos"
	PermManageRoles        = "manejo_roles"
	PermManageCategories   = "manejar_categorias"
)

// AllPermissions lists every known token, used when seeding.
func AllPermissions() []string {
	return []string{
		PermViewHome,
		PermViewSubscriberCats,
		PermViewPaidCats,
		PermCreateArticles,
		PermEditArticles,
		PermEditDraftArticles,
		PermModerateArticles,
		PermPublishComments,
		PermReadComments,
		PermRateArticles,
		PermManageRoles,
		PermManageCategories,
	}
}

type Permission struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	Name        string         `json:"name" gorm:"uniqueIndex;not null"`
	Description string         `json:"description" gorm:"type:text"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

type Role struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	Name        string         `json:"name" gorm:"uniqueIndex;not null"`
	Description string         `json:"description" gorm:"type:text"`
	Permissions []Permission   `json:"permissions" gorm:"many2many:role_permissions;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}
