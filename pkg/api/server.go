// Package api serves the warroom HTTP surface: REST endpoints over the
// event decomposition, account and prompt administration, and the
// WebSocket gateway that pushes live messages into browser sessions.
//
// Handlers stay thin: bind, authorize, call a service, wrap the result
// in the uniform envelope. All database work lives in pkg/services.
package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/deepsoc/deepsoc/pkg/auth"
	"github.com/deepsoc/deepsoc/pkg/config"
	"github.com/deepsoc/deepsoc/pkg/database"
	"github.com/deepsoc/deepsoc/pkg/messaging"
	"github.com/deepsoc/deepsoc/pkg/prompts"
	"github.com/deepsoc/deepsoc/pkg/propagation"
	"github.com/deepsoc/deepsoc/pkg/services"
)

// Server wires the HTTP handlers to the service layer.
type Server struct {
	cfg    config.ServerConfig
	db     *database.Client
	tokens *auth.TokenManager

	events     *services.EventService
	tasks      *services.TaskService
	actions    *services.ActionService
	commands   *services.CommandService
	executions *services.ExecutionService
	messages   *services.MessageService
	summaries  *services.SummaryService
	users      *services.UserService
	settings   *services.SettingService
	prompts    *prompts.Store

	notifier *messaging.Notifier
	engine   *propagation.Engine
	hub      *Hub
}

// NewServer creates the API server over an open database client. The
// hub starts its own dispatch loop; callers stop it via Hub.Stop on
// shutdown.
func NewServer(cfg config.ServerConfig, db *database.Client, tokens *auth.TokenManager, notifier *messaging.Notifier, hub *Hub) *Server {
	return &Server{
		cfg:        cfg,
		db:         db,
		tokens:     tokens,
		events:     services.NewEventService(db.Client),
		tasks:      services.NewTaskService(db.Client),
		actions:    services.NewActionService(db.Client),
		commands:   services.NewCommandService(db.Client),
		executions: services.NewExecutionService(db.Client),
		messages:   services.NewMessageService(db.Client),
		summaries:  services.NewSummaryService(db.Client),
		users:      services.NewUserService(db.Client),
		settings:   services.NewSettingService(db.Client),
		prompts:    prompts.NewStore(db.Client),
		notifier:   notifier,
		engine:     propagation.NewEngine(db.Client),
		hub:        hub,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())
	r.Use(securityHeaders())

	corsCfg := cors.DefaultConfig()
	if len(s.cfg.AllowedOrigins) == 1 && s.cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.cfg.AllowedOrigins
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	corsCfg.AllowWebSockets = true
	r.Use(cors.New(corsCfg))

	r.GET("/health", s.healthHandler)
	r.GET("/ws", s.wsHandler)

	api := r.Group("/api")

	api.POST("/auth/login", s.loginHandler)

	authed := api.Group("", s.requireAuth())
	authed.POST("/auth/logout", s.logoutHandler)
	authed.GET("/auth/me", s.meHandler)

	event := authed.Group("/event")
	event.POST("/create", s.createEventHandler)
	event.GET("/list", s.listEventsHandler)
	event.GET("/:event_id", s.getEventHandler)
	event.GET("/:event_id/messages", s.listMessagesHandler)
	event.GET("/:event_id/tasks", s.listTasksHandler)
	event.GET("/:event_id/actions", s.listActionsHandler)
	event.GET("/:event_id/commands", s.listCommandsHandler)
	event.GET("/:event_id/executions", s.listExecutionsHandler)
	event.GET("/:event_id/summaries", s.listSummariesHandler)
	event.GET("/:event_id/stats", s.eventStatsHandler)
	event.GET("/:event_id/hierarchy", s.eventHierarchyHandler)
	event.POST("/send_message/:event_id", s.sendMessageHandler)
	event.POST("/:event_id/resolve", s.resolveEventHandler)
	event.POST("/:event_id/execution/:execution_id/complete", s.completeExecutionHandler)

	user := authed.Group("/user")
	user.GET("/", s.requireAdmin(), s.listUsersHandler)
	user.POST("/", s.requireAdmin(), s.createUserHandler)
	user.GET("/:user_id", s.requireAdmin(), s.getUserHandler)
	user.PUT("/:user_id", s.requireAdmin(), s.updateUserHandler)
	user.DELETE("/:user_id", s.requireAdmin(), s.deleteUserHandler)
	user.PUT("/:user_id/password", s.changePasswordHandler)

	prompt := authed.Group("/prompt")
	prompt.GET("/", s.listPromptsHandler)
	prompt.GET("/:name", s.getPromptHandler)
	prompt.PUT("/:name", s.requireAdmin(), s.setPromptHandler)

	state := authed.Group("/state")
	state.GET("/driving-mode", s.getDrivingModeHandler)
	state.PUT("/driving-mode", s.setDrivingModeHandler)

	return r
}

// HTTPServer wraps the router in an http.Server with sane timeouts.
// WriteTimeout stays generous because WebSocket connections share the
// listener.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
