package websockets

import (
	"log/slog"
	"net/http"

	"github.com/chris/fintech-checker-api/pkg/websockets"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Handler streams status change events to WebSocket clients.
type Handler struct {
	connManager websockets.ConnectionManager
	upgrader    websocket.Upgrader
	logger      *slog.Logger
}

// NewHandler creates a new Handler. allowedOrigins follows the CORS setting; "*" or an
// empty list accepts any origin.
func NewHandler(connManager websockets.ConnectionManager, allowedOrigins []string, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		connManager: connManager,
		upgrader:    websocket.Upgrader{CheckOrigin: originChecker(allowedOrigins)},
		logger:      logger,
	}
}

// ServeHTTP upgrades the request and keeps the connection registered until the client leaves.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		h.logger.Warn("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	connectionID := uuid.New().String()
	ctx := r.Context()
	if err := h.connManager.AddConnection(ctx, connectionID, conn); err != nil {
		h.logger.Error("failed to register connection", "connectionId", connectionID, "error", err)
		return
	}
	h.logger.Info("client connected", "connectionId", connectionID)

	defer func() {
		h.logger.Info("client disconnected", "connectionId", connectionID)
		if err := h.connManager.RemoveConnection(ctx, connectionID); err != nil {
			h.logger.Error("failed to remove connection", "connectionId", connectionID, "error", err)
		}
	}()

	// Clients only listen; reading is how a close is detected.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("unexpected close error", "connectionId", connectionID, "error", err)
			}
			return
		}
	}
}

func originChecker(allowed []string) func(*http.Request) bool {
	set := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		set[o] = true
	}
	if len(set) == 0 {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || set[origin]
	}
}
