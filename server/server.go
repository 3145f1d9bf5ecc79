package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"fluidlab/model"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
}

func NewServer(addr string, upgrader websocket.Upgrader) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
	}
}

// serveWs handles one calculator session over a websocket. The session's
// animation state lives in the hub and dies with the connection.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithField("err", err).Error("upgrade")
		return
	}
	defer conn.Close()

	hub := NewHub()
	hub.conn = conn
	go hub.handleRequest()
	go hub.handleResponse()

	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			log.WithField("err", err).Info("session closed")
			close(hub.msg)
			return
		}
		hub.msg <- msg
	}
}

func (s *Server) Serve() {
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		s.serveWs(w, r)
	})
	log.WithField("addr", s.addr).Info("listening")
	if err := http.ListenAndServe(s.addr, nil); err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
