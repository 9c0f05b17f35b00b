package server

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"pipenet/model"
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

// serveWs handles websocket requests from the peer. Each connection gets its
// own hub and therefore its own network state.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	hub := NewHub()
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	hub.conn = conn
	defer conn.Close()
	defer close(hub.done)
	var msg model.Msg
	go hub.handleRequest()
	go hub.handleResponse()
	for {
		err = conn.ReadJSON(&msg)
		if err != nil {
			log.Println("err: ", err)
			return
		}
		hub.msg <- msg
	}
}

func (s *Server) Serve() {
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		s.serveWs(w, r)
	})
	err := http.ListenAndServe(s.addr, nil)
	if err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
