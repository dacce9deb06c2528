package config

import (
	"fmt"
	"log"
	"os"

	"cms-publisher/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "cms_db"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := AutoMigrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if err := SeedRoles(db); err != nil {
		log.Fatal("Failed to seed roles:", err)
	}

	return db
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Permission{},
		&models.Role{},
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.Article{},
		&models.ArticleVote{},
		&models.ScheduledPublication{},
	)
}

// SeedRoles ensures every permission token exists and that the base roles
// carry their expected permission sets. Existing rows are left untouched.
func SeedRoles(db *gorm.DB) error {
	perms := make(map[string]models.Permission, len(models.AllPermissions()))
	for _, name := range models.AllPermissions() {
		var perm models.Permission
		err := db.Where("name = ?", name).FirstOrCreate(&perm, models.Permission{Name: name}).Error
		if err != nil {
			return err
		}
		perms[name] = perm
	}

	roles := map[string][]string{
		models.AdminRoleName: models.AllPermissions(),
		"Autor": {
			models.PermViewHome,
			models.PermCreateArticles,
			models.PermEditDraftArticles,
			models.PermRateArticles,
		},
		"Editor": {
			models.PermViewHome,
			models.PermEditArticles,
		},
		"Publicador": {
			models.PermViewHome,
			models.PermModerateArticles,
		},
		"Suscriptor": {
			models.PermViewHome,
			models.PermViewSubscriberCats,
			models.PermRateArticles,
		},
	}

	for name, tokens := range roles {
		var role models.Role
		err := db.Where("name = ?", name).FirstOrCreate(&role, models.Role{Name: name}).Error
		if err != nil {
			return err
		}

		rolePerms := make([]models.Permission, 0, len(tokens))
		for _, token := range tokens {
			rolePerms = append(rolePerms, perms[token])
		}
		if err := db.Model(&role).Association("Permissions").Replace(rolePerms); err != nil {
			return err
		}
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
