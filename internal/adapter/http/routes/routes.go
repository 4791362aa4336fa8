package routes

import (
	"log"
	"os"
	"strconv"
	"strings"

	_ "distribuidora_xpto/docs" // This will be auto-generated
	"distribuidora_xpto/internal/adapter/http/handlers"
	repository2 "distribuidora_xpto/internal/adapter/persistence/repository"
	"distribuidora_xpto/internal/domain/entities"
	"distribuidora_xpto/internal/domain/lifecycle"
	"distribuidora_xpto/internal/domain/selection"
	"distribuidora_xpto/internal/infrastructure/database"
	"distribuidora_xpto/internal/usecase"
	"distribuidora_xpto/internal/usecase/interfaces"

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
	ddb := database.ConnectDynamoDB()

	quotationRepo := repository2.NewQuotationDynamoRepository(ddb)
	transferRepo := repository2.NewTransferDynamoRepository(ddb)

	selections := selection.NewRegistry()
	machine := lifecycle.NewMachine(cancelPolicyFromEnv())

	transitionUseCase := usecase.NewTransitionUseCase(machine, map[entities.DocumentKind]interfaces.ITransitionStore{
		entities.DocumentKindQuotation: quotationRepo,
		entities.DocumentKindTransfer:  transferRepo,
	}, selections)
	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo)
	transferUseCase := usecase.NewTransferUseCase(transferRepo)

	quotationHandler := handlers.NewQuotationHandler(quotationUseCase, transitionUseCase)
	transferHandler := handlers.NewTransferHandler(transferUseCase, transitionUseCase)
	selectionHandler := handlers.NewSelectionHandler(selections)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDocumentRoutes(v1, quotationHandler, transferHandler, selectionHandler)
}

// cancelPolicyFromEnv reads CANCEL_ROLES, a comma-separated role list allowed
// to cancel documents. Unset means cancellation is open to every role.
func cancelPolicyFromEnv() lifecycle.RolePolicy {
	raw := strings.TrimSpace(os.Getenv("CANCEL_ROLES"))
	if raw == "" {
		return lifecycle.AllowAll
	}
	var roles []string
	for _, r := range strings.Split(raw, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roles = append(roles, r)
		}
	}
	return lifecycle.RestrictCancelTo(roles...)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
