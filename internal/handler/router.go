package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/soulconnect/backend/internal/analysis/emotion"
	chathandler "github.com/soulconnect/backend/internal/handler/chat"
	directoryhandler "github.com/soulconnect/backend/internal/handler/directory"
	grouphandler "github.com/soulconnect/backend/internal/handler/group"
	"github.com/soulconnect/backend/internal/service/directory"
	groupservice "github.com/soulconnect/backend/internal/service/group"
	"github.com/soulconnect/backend/internal/service/hub"
	"github.com/soulconnect/backend/internal/service/responder"
	"github.com/soulconnect/backend/internal/service/session"
	"github.com/soulconnect/backend/internal/storage"
	"github.com/soulconnect/backend/pkg/utils"
)

// Deps carries everything the router binds together. AIConnected reflects
// whether the generative service initialized; handlers never reach for it
// directly.
type Deps struct {
	Sessions    *session.Service
	Groups      *groupservice.Service
	Hub         *hub.Hub
	Classifier  *emotion.Classifier
	Responder   *responder.Responder
	Directory   *directory.Service
	Sink        storage.Sink
	AIConnected bool
	Logger      *zap.Logger
}

// NewRouter wires HTTP routes to core services.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	chatHandler := chathandler.New(deps.Sessions, deps.Classifier, deps.Responder, deps.Sink)
	groupHandler := grouphandler.New(deps.Groups, deps.Hub, deps.Logger)
	directoryHandler := directoryhandler.New(deps.Directory)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]any{
			"message": "Soul Connect API is running!",
			"status":  "healthy",
			"features": []string{
				"ML Emotion Detection",
				"CBT Logic",
				"Crisis Support",
				"Session Memory",
				"Generative AI Integration",
				"Virtual Support Groups",
				"Real-time WebSocket Chat",
			},
		})
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]any{
			"status":           "healthy",
			"service":          "Soul Connect API",
			"timestamp":        time.Now().UTC(),
			"active_sessions":  deps.Sessions.Count(),
			"active_groups":    deps.Groups.Count(),
			"ml_model_trained": deps.Classifier.Trained(),
			"ai_connected":     deps.AIConnected,
		})
	})

	chatHandler.RegisterRoutes(r)
	groupHandler.RegisterRoutes(r)
	directoryHandler.RegisterRoutes(r)

	return r
}
