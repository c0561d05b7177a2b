package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/agusvaldes/popup-api/docs"
	v1 "github.com/agusvaldes/popup-api/internal/api/handler/v1"
	"github.com/agusvaldes/popup-api/internal/api/middleware"
	"github.com/agusvaldes/popup-api/internal/config"
	"github.com/agusvaldes/popup-api/internal/domain"
	"github.com/agusvaldes/popup-api/internal/repository"
	"github.com/agusvaldes/popup-api/internal/repository/dao"
	"github.com/agusvaldes/popup-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	registrationHandler := s.initRegistrationHandler(db)
	claimHandler := s.initClaimHandler(db)
	s.MountHandlers(registrationHandler, claimHandler)

	return s
}

func (s *Server) initRegistrationHandler(db *gorm.DB) *v1.RegistrationHandler {
	registrationDAO := dao.NewRegistrationDAO(db)
	repo := repository.NewRegistrationRepository(registrationDAO)
	svc := service.NewRegistrationService(repo, s.eventCatalog())
	handler := v1.NewRegistrationHandler(s.Config.Events, svc)

	return handler
}

func (s *Server) initClaimHandler(db *gorm.DB) *v1.ClaimHandler {
	claimRepo := repository.NewClaimRepository(dao.NewClaimDAO(db))
	orderRepo := repository.NewOrderRepository(dao.NewOrderDAO(db))
	svc := service.NewClaimService(claimRepo, orderRepo, s.Config.Claim.EligibleETIDs)
	handler := v1.NewClaimHandler(svc)

	return handler
}

// eventCatalog builds the immutable event lookup from configuration, once.
func (s *Server) eventCatalog() *domain.EventCatalog {
	events := make([]domain.Event, 0, len(s.Config.Events.Catalog))
	for _, e := range s.Config.Events.Catalog {
		events = append(events, domain.Event{
			ID:               e.ID,
			Name:             e.Name,
			EventName:        e.EventName,
			Date:             e.Date,
			Time:             e.Time,
			Location:         e.Location,
			MaxTickets:       e.MaxTickets,
			MaxFemaleTickets: e.MaxFemaleTickets,
			MaxTicketsPerIP:  e.MaxTicketsPerIP,
		})
	}

	return domain.NewEventCatalog(events)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(registrationHandler *v1.RegistrationHandler, claimHandler *v1.ClaimHandler) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.GET("/form-status", registrationHandler.HandleGetFormStatus)
		public.POST("/registrations", registrationHandler.HandleSubmitRegistration)
		public.POST("/orders/lookup", claimHandler.HandleLookupOrder)
		public.POST("/orders/claim", claimHandler.HandleSaveClaim)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Popup Event Registration API"
	docs.SwaggerInfo.Description = "Registration and after-party claim API for popup events."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
