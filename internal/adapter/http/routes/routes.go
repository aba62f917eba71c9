package routes

import (
	"log"
	"os"
	"strconv"

	_ "sistema_cvt/docs" // This will be auto-generated
	"sistema_cvt/internal/adapter/http/handlers"
	"sistema_cvt/internal/adapter/persistence/repository"
	"sistema_cvt/internal/adapter/persistence/sheetstore"
	"sistema_cvt/internal/adapter/session"
	"sistema_cvt/internal/infrastructure/pdfrender"
	"sistema_cvt/internal/infrastructure/sheets"
	"sistema_cvt/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	remote := sheets.NewConnectionManager(worksheetHeaders())
	store := sheetstore.New(remote, localDataDir(), sheetstore.DefaultReadTTL)

	reportRepo := repository.NewVisitReportSheetRepository(store)
	requestRepo := repository.NewPartRequestSheetRepository(store)
	clientRepo := repository.NewClientSheetRepository(store)
	partRepo := repository.NewPartSheetRepository(store)
	userRepo := repository.NewUserSheetRepository(store)

	workflowUseCase := usecase.NewReportWorkflowUseCase(reportRepo, requestRepo, partRepo)
	queryUseCase := usecase.NewReportQueryUseCase(reportRepo, requestRepo)
	referenceUseCase := usecase.NewReferenceUseCase(clientRepo, partRepo)
	authUseCase := usecase.NewAuthUseCase(userRepo)

	sessions := session.New(session.DefaultTTL)
	renderer := pdfrender.NewRenderer()

	authHandler := handlers.NewAuthHandler(authUseCase, workflowUseCase, sessions)
	workflowHandler := handlers.NewWorkflowHandler(workflowUseCase, sessions)
	reportHandler := handlers.NewReportHandler(queryUseCase, renderer)
	referenceHandler := handlers.NewReferenceHandler(referenceUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCvtRoutes(v1, sessions, authHandler, workflowHandler, reportHandler, referenceHandler)
}

// worksheetHeaders declares the canonical header row per worksheet, used when
// a missing worksheet has to be created remotely.
func worksheetHeaders() map[string][]string {
	entities := []sheetstore.Entity{
		repository.ReportEntity,
		repository.PartRequestEntity,
		repository.ClientEntity,
		repository.PartEntity,
		repository.UserEntity,
	}
	headers := make(map[string][]string, len(entities))
	for _, e := range entities {
		headers[e.Worksheet] = e.Columns
	}
	return headers
}

func localDataDir() string {
	if dir := os.Getenv("CVT_LOCAL_DIR"); dir != "" {
		return dir
	}
	return "."
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
