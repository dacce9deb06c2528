package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"cms-publisher/config"
	"cms-publisher/handlers"
	"cms-publisher/middleware"
	"cms-publisher/notification"
	"cms-publisher/repositories"
	"cms-publisher/scheduler"
	"cms-publisher/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	roleRepo := repositories.NewRoleRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	scheduleRepo := repositories.NewScheduleRepository(db)

	// Notification sender (best-effort)
	notifier := notification.NewResendClient(
		os.Getenv("RESEND_API_KEY"),
		os.Getenv("NOTIFICATION_FROM"),
	)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	permissionService := services.NewPermissionService(userRepo)
	articleService := services.NewArticleService(articleRepo, categoryRepo, tagRepo, notifier, logger)
	scheduleService := services.NewScheduleService(scheduleRepo, articleRepo, notifier, logger)
	categoryService := services.NewCategoryService(categoryRepo)
	roleService := services.NewRoleService(roleRepo, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService, scheduleService, permissionService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, permissionService)
	roleHandler := handlers.NewRoleHandler(roleService, permissionService)

	// Start the publication sweep
	sweep := scheduler.New(scheduleService, logger)
	if err := sweep.Start(); err != nil {
		log.Fatal("Failed to start scheduler:", err)
	}
	defer sweep.Stop()

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)

			// Articles
			articles := protected.Group("/articles")
			{
				articles.POST("", articleHandler.CreateArticle)
				articles.GET("", articleHandler.GetArticles)
				articles.GET("/:id", articleHandler.GetArticle)
				articles.PUT("/:id/state", articleHandler.ChangeState)
				articles.POST("/:id/schedule", articleHandler.SchedulePublication)
				articles.POST("/:id/like", articleHandler.LikeArticle)
				articles.POST("/:id/dislike", articleHandler.DislikeArticle)
			}

			// Kanban board
			protected.GET("/kanban", articleHandler.Kanban)

			// Categories
			categories := protected.Group("/categories")
			{
				categories.POST("", categoryHandler.CreateCategory)
				categories.GET("", categoryHandler.GetCategories)
				categories.GET("/:id", categoryHandler.GetCategory)
				categories.PUT("/:id", categoryHandler.UpdateCategory)
			}

			// Roles
			roles := protected.Group("/roles")
			{
				roles.GET("", roleHandler.GetRoles)
				roles.PUT("/users/:id", roleHandler.AssignRoles)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
