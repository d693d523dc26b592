package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolio-backend/internal/config"
	handler "portfolio-backend/internal/handlers"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/repository"
	projectsvc "portfolio-backend/internal/services/projects"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	projectRepo := repository.NewProjectRepository(db)
	serviceRepo := repository.NewServiceRepository(db)

	projectService := projectsvc.NewService(projectRepo, serviceRepo)

	authHandler := handler.NewAuthHandler(db, cfg)
	clientHandler := handler.NewClientHandler(db, cfg)
	clientTypeHandler := handler.NewClientTypeHandler(db, cfg)
	serviceHandler := handler.NewServiceHandler(db, cfg)
	serviceTypeHandler := handler.NewServiceTypeHandler(db, cfg)
	projectHandler := handler.NewProjectHandler(projectService, cfg)
	projectStateHandler := handler.NewProjectStateHandler(db, cfg)
	taskHandler := handler.NewTaskHandler(db, cfg)
	invoiceHandler := handler.NewInvoiceHandler(db, cfg)
	paymentHandler := handler.NewPaymentHandler(db, cfg)
	documentHandler := handler.NewDocumentHandler(db, cfg)
	contactHandler := handler.NewContactHandler(db, cfg)

	contactLimiter := middleware.NewRateLimiter(cfg.ContactMaxPerHour, time.Hour)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public surface: login and the rate-limited contact form.
	api.POST("/auth/login", authHandler.Login)
	api.POST("/contact", contactLimiter.Middleware(), contactHandler.Submit)

	protected := api.Group("/")
	protected.Use(middleware.AuthRequired(cfg.JwtSecret))
	{
		protected.GET("/auth/me", authHandler.Me)

		protected.GET("/clientes", clientHandler.List)
		protected.GET("/clientes/:id", clientHandler.Get)
		protected.POST("/clientes", clientHandler.Create)
		protected.PUT("/clientes/:id", clientHandler.Update)
		protected.DELETE("/clientes/:id", clientHandler.Delete)

		protected.GET("/tiposcliente", clientTypeHandler.List)
		protected.POST("/tiposcliente", clientTypeHandler.Create)
		protected.PUT("/tiposcliente/:id", clientTypeHandler.Update)
		protected.DELETE("/tiposcliente/:id", clientTypeHandler.Delete)

		protected.GET("/servicos", serviceHandler.List)
		protected.GET("/servicos/:id", serviceHandler.Get)
		protected.POST("/servicos", serviceHandler.Create)
		protected.PUT("/servicos/:id", serviceHandler.Update)
		protected.DELETE("/servicos/:id", serviceHandler.Delete)

		protected.GET("/tiposservico", serviceTypeHandler.List)
		protected.POST("/tiposservico", serviceTypeHandler.Create)
		protected.PUT("/tiposservico/:id", serviceTypeHandler.Update)
		protected.DELETE("/tiposservico/:id", serviceTypeHandler.Delete)

		protected.GET("/estadosprojeto", projectStateHandler.List)

		protected.GET("/projetos", projectHandler.List)
		protected.GET("/projetos/:id", projectHandler.Get)
		protected.POST("/projetos", projectHandler.Create)
		protected.PUT("/projetos/:id", projectHandler.Update)
		protected.PATCH("/projetos/:id/deactivate", projectHandler.Deactivate)

		protected.GET("/tarefas", taskHandler.List)
		protected.POST("/tarefas", taskHandler.Create)
		protected.PUT("/tarefas/:id", taskHandler.Update)
		protected.PATCH("/tarefas/:id/complete", taskHandler.Complete)
		protected.DELETE("/tarefas/:id", taskHandler.Delete)

		protected.GET("/faturas", invoiceHandler.List)
		protected.GET("/faturas/:id", invoiceHandler.Get)
		protected.POST("/faturas", invoiceHandler.Create)
		protected.PUT("/faturas/:id", invoiceHandler.Update)
		protected.PATCH("/faturas/:id/pay", invoiceHandler.MarkPaid)

		protected.GET("/pagamentos", paymentHandler.List)
		protected.POST("/pagamentos", paymentHandler.Create)
		protected.PUT("/pagamentos/:id", paymentHandler.Update)
		protected.DELETE("/pagamentos/:id", paymentHandler.Delete)

		protected.GET("/documentos", documentHandler.List)
		protected.POST("/documentos", documentHandler.Create)
		protected.PUT("/documentos/:id", documentHandler.Update)
		protected.DELETE("/documentos/:id", documentHandler.Delete)

		protected.GET("/contact", contactHandler.List)
		protected.PATCH("/contact/:id/read", contactHandler.MarkRead)
		protected.DELETE("/contact/:id", contactHandler.Delete)
	}
}
