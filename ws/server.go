package ws

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"jobportal_backend/internal/config"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/validator"
	"jobportal_backend/pkg/apperrors"
)

// Services bundles everything the event handlers call into.
type Services struct {
	Auth            services.AuthService
	Jobs            services.JobService
	Applications    services.ApplicationService
	Profiles        services.ProfileService
	CompanyProfiles services.CompanyProfileService
	Network         services.NetworkService
	Notifications   services.NotificationService
	Users           repositories.UserRepository
}

// Server owns the hub, the event router and the upgrade endpoint.
type Server struct {
	hub      *Hub
	router   *Router
	validate *validator.Validator
	upgrader websocket.Upgrader
	svc      Services
}

func NewServer(cfg *config.Config, svc Services) *Server {
	s := &Server{
		hub:      NewHub(),
		router:   NewRouter(),
		validate: validator.New(),
		svc:      svc,
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(cfg.Server.AllowedOrigins),
	}
	s.registerRoutes()
	return s
}

// Run blocks on the hub's event loop. Call in a goroutine.
func (s *Server) Run() {
	s.hub.Run()
}

func (s *Server) Hub() *Hub {
	return s.hub
}

// ServeWS upgrades the HTTP request and starts the read/write pumps. The
// connection carries no identity until it sends an authenticate event.
func (s *Server) ServeWS(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := newClient(s.hub, conn, s.router)
	s.hub.register <- client

	go client.readPump()
	go client.writePump()
}

func (s *Server) registerRoutes() {
	r := s.router

	r.Handle("authenticate", s.handleAuthenticate)
	r.Handle("register", s.handleRegister)
	r.Handle("login", s.handleLogin)
	r.Handle("logout", s.handleLogout)

	r.HandleRole("createJob", models.UserRoleCompany, s.handleCreateJob)
	r.HandleRole("updateJob", models.UserRoleCompany, s.handleUpdateJob)
	r.HandleRole("deleteJob", models.UserRoleCompany, s.handleDeleteJob)
	r.HandleRole("getMyJobs", models.UserRoleCompany, s.handleGetMyJobs)
	r.Handle("getJobs", s.handleGetJobs)
	r.Handle("getJobById", s.handleGetJobByID)

	r.HandleAuth("applyToJob", s.handleApplyToJob)
	r.HandleRole("getApplicants", models.UserRoleCompany, s.handleGetApplicants)
	r.HandleAuth("getApplicantsForUser", s.handleGetApplicantsForUser)
	r.HandleRole("updateApplicationStatus", models.UserRoleCompany, s.handleUpdateApplicationStatus)

	r.HandleAuth("getProfile", s.handleGetProfile)
	r.Handle("getProfileById", s.handleGetProfileByID)
	r.HandleAuth("saveProfile", s.handleSaveProfile)
	r.HandleAuth("addEducation", s.handleAddEducation)
	r.HandleAuth("updateEducation", s.handleUpdateEducation)
	r.HandleAuth("removeEducation", s.handleRemoveEducation)
	r.HandleAuth("addExperience", s.handleAddExperience)
	r.HandleAuth("updateExperience", s.handleUpdateExperience)
	r.HandleAuth("removeExperience", s.handleRemoveExperience)

	r.HandleAuth("getCompanyProfile", s.handleGetCompanyProfile)
	r.HandleAuth("saveCompanyProfile", s.handleSaveCompanyProfile)

	r.HandleAuth("sendConnectionRequest", s.handleSendConnectionRequest)
	r.HandleAuth("respondConnectionRequest", s.handleRespondConnectionRequest)
	r.HandleAuth("getNotifications", s.handleGetNotifications)
	r.HandleAuth("markNotificationRead", s.handleMarkNotificationRead)
	r.HandleAuth("markAllNotificationsRead", s.handleMarkAllNotificationsRead)
	r.HandleAuth("deleteNotification", s.handleDeleteNotification)
	r.HandleAuth("getAllUsers", s.handleGetAllUsers)
}

// decode unmarshals a request payload. A missing payload is fine; required
// fields are caught by check afterwards.
func decode(data json.RawMessage, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return apperrors.NewBadRequestError("Invalid payload")
	}
	return nil
}

// check runs struct-tag validation, flattening field errors into the ack
// message so clients see which field was rejected.
func (s *Server) check(v any) error {
	err := s.validate.Validate(v)
	if err == nil {
		return nil
	}
	var ve *validator.ValidationError
	if apperrors.As(err, &ve) {
		return apperrors.New(apperrors.CodeValidationFailed, "validation", ve.Error(), http.StatusBadRequest).WithDetails(ve.Errors)
	}
	return apperrors.InternalError(err)
}

// bind is decode followed by check, for payloads with no defaulted fields.
func (s *Server) bind(data json.RawMessage, v any) error {
	if err := decode(data, v); err != nil {
		return err
	}
	return s.check(v)
}

func originChecker(allowed []string) func(r *http.Request) bool {
	allowAll := false
	for _, origin := range allowed {
		if origin == "*" {
			allowAll = true
		}
	}

	return func(r *http.Request) bool {
		if allowAll {
			return true
		}
		origin := r.Header.Get("Origin")
		if origin == "" {
			// Non-browser clients send no Origin header.
			return true
		}
		for _, candidate := range allowed {
			if origin == candidate {
				return true
			}
		}
		return false
	}
}
