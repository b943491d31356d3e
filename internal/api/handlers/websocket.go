package handlers

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/gofiber/websocket/v2"

	"github.com/seoscore/seoscore/internal/service/analyzer"
	"github.com/seoscore/seoscore/internal/service/seo"
)

// WebSocketHandler scores content over a live connection. Each inbound
// message is an analysis input; each reply is a fresh result. Editors
// use this for score-as-you-type feedback, debouncing on their side.
type WebSocketHandler struct {
	Service *analyzer.Service
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(service *analyzer.Service) *WebSocketHandler {
	return &WebSocketHandler{Service: service}
}

// wsError is the error frame sent back for unreadable messages
type wsError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// HandleAnalyzeSocket reads inputs until the client disconnects
func (h *WebSocketHandler) HandleAnalyzeSocket(c *websocket.Conn) {
	defer c.Close()

	for {
		var input seo.AnalysisInput
		if err := c.ReadJSON(&input); err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				writeError(c, "invalid analysis input: "+err.Error())
				continue
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("websocket read failed: %v", err)
			}
			return
		}

		result := h.Service.AnalyzeContent(input)

		if err := c.WriteJSON(result); err != nil {
			log.Printf("websocket write failed: %v", err)
			return
		}
	}
}

// writeError reports a malformed frame without dropping the connection
func writeError(c *websocket.Conn, message string) {
	if err := c.WriteJSON(wsError{Success: false, Error: message}); err != nil {
		log.Printf("websocket write failed: %v", err)
	}
}
