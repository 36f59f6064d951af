package server

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/doodleduel/doodleduel-backend/internal"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	// Apply CORS middleware
	r.Use(s.corsMiddleware)

	r.HandleFunc("/", s.IndexHandler)

	r.HandleFunc("/rooms-available", s.GetRoomToJoin)

	r.HandleFunc("/rooms/{roomId}/qr", s.RoomQRHandler)

	r.HandleFunc("/ws/binary-protocol-version", s.BinaryProtocolVersionHandler)

	r.HandleFunc("/ws/", s.hub.HandleWebSocket)

	if s.distDir != "" {
		r.PathPrefix("/dist/").Handler(
			http.StripPrefix("/dist/", http.FileServer(http.Dir(s.distDir))))
	}

	return r
}

// CORS middleware
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type")
		w.Header().Set("Access-Control-Allow-Credentials", "false")

		// If it's a websocket upgrade, skip further CORS checks
		if strings.ToLower(r.Header.Get("Upgrade")) == "websocket" {
			next.ServeHTTP(w, r)
			return
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Doodle Duel</title>
</head>
<body>
<div id="app" data-room-id="{{.RoomID}}"></div>
<script type="module" src="/dist/index.js"></script>
</body>
</html>
`))

// IndexHandler serves the landing page. A roomId query parameter is
// echoed into the markup so invite links prefill the join form.
func (s *Server) IndexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := indexTemplate.Execute(w, struct{ RoomID string }{
		RoomID: r.URL.Query().Get("roomId"),
	})
	if err != nil {
		log.Printf("[IndexHandler] template error: %v", err)
	}
}

// BinaryProtocolVersionHandler tells clients which codec version this
// server speaks.
func (s *Server) BinaryProtocolVersionHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(internal.BinaryProtocolVersion); err != nil {
		log.Printf("[BinaryProtocolVersionHandler] error encoding response: %v", err)
	}
}

// GetRoomToJoin reports a public waiting room with a free seat, if
// one exists.
func (s *Server) GetRoomToJoin(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now().UnixMilli()
	roomID := s.hub.GetJoinableRoom()

	var resp internal.Response
	if roomID != "" {
		resp = internal.Response{
			StatusCode:    http.StatusOK,
			RespStartTime: startTime,
			Data:          roomID,
		}
	} else {
		resp = internal.Response{
			StatusCode:    http.StatusNotFound,
			RespStartTime: startTime,
			Data:          "No joinable rooms available",
		}
	}

	endTime := time.Now().UnixMilli()
	resp.RespEndTime = endTime
	resp.NetRespTime = endTime - startTime

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// RoomQRHandler renders a QR code for a room's invite link so a phone
// can join a private room without typing the id.
func (s *Server) RoomQRHandler(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]
	if !s.hub.RoomExists(roomID) {
		http.Error(w, "Room not found", http.StatusNotFound)
		return
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	joinURL := scheme + "://" + r.Host + "/?roomId=" + roomID

	png, err := qrcode.Encode(joinURL, qrcode.Medium, 256)
	if err != nil {
		log.Printf("[RoomQRHandler] room=%s: failed to encode QR: %v", roomID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}
