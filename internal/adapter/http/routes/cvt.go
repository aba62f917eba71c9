package routes

import (
	"sistema_cvt/internal/adapter/http/handlers"
	"sistema_cvt/internal/adapter/http/middleware"
	"sistema_cvt/internal/adapter/session"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth     = "/auth"
	PathWorkflow = "/workflow"
	PathReports  = "/reports"
	PathRequests = "/requests"
	PathClients  = "/clients"
	PathParts    = "/parts"
)

func addCvtRoutes(
	rg *gin.RouterGroup,
	sessions *session.Store,
	authHandler *handlers.AuthHandler,
	workflowHandler *handlers.WorkflowHandler,
	reportHandler *handlers.ReportHandler,
	referenceHandler *handlers.ReferenceHandler,
) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", middleware.RequireSession(sessions), authHandler.Logout)
		auth.GET("/me", middleware.RequireSession(sessions), authHandler.Me)
	}

	workflow := rg.Group(PathWorkflow, middleware.RequireSession(sessions))
	{
		workflow.GET("", workflowHandler.GetWorkflow)
		workflow.PUT("/draft", workflowHandler.UpdateDraft)
		workflow.POST("/parts-mode", workflowHandler.RequestParts)
		workflow.POST("/parts", workflowHandler.AddPart)
		workflow.POST("/parts/:index/edit", workflowHandler.EditPart)
		workflow.DELETE("/parts/:index", workflowHandler.RemovePart)
		workflow.POST("/back", workflowHandler.Back)
		workflow.POST("/cancel", workflowHandler.Cancel)
		workflow.POST("/commit", workflowHandler.CommitWithoutParts)
		workflow.POST("/commit-with-parts", workflowHandler.CommitWithParts)
	}

	reports := rg.Group(PathReports, middleware.RequireSession(sessions))
	{
		reports.GET("", reportHandler.ListReports)
		reports.GET("/:number", reportHandler.GetReport)
		reports.GET("/:number/pdf", reportHandler.GetReportPDF)
	}

	requests := rg.Group(PathRequests, middleware.RequireSession(sessions), middleware.RequireSupervisor())
	{
		requests.GET("", reportHandler.ListRequests)
		requests.GET("/stats", reportHandler.GetStats)
	}

	clients := rg.Group(PathClients, middleware.RequireSession(sessions))
	{
		clients.GET("", referenceHandler.ListClients)
		clients.GET("/:name", referenceHandler.GetClient)
	}

	parts := rg.Group(PathParts, middleware.RequireSession(sessions))
	{
		parts.GET("", referenceHandler.ListParts)
		parts.GET("/:code", referenceHandler.GetPart)
	}
}
