// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"cogentcore.org/movi/base/errors"
	"cogentcore.org/movi/base/reflectx"
	"cogentcore.org/movi/events"
	"cogentcore.org/movi/keypath"
	"cogentcore.org/movi/model"
)

// message is a websocket message. Clients send set, input and event
// messages; the server sends html messages with the current document.
type message struct {

	// Op is the operation: set, input, event or html.
	Op string `json:"op"`

	// Path is the model path of set messages.
	Path string `json:"path,omitempty"`

	// ID is the id of the target element of input and event messages.
	ID string `json:"id,omitempty"`

	// Event is the event name of event messages.
	Event string `json:"event,omitempty"`

	// Value is the value of set and input messages,
	// and the data of event messages.
	Value any `json:"value,omitempty"`

	// HTML is the document of html messages.
	HTML string `json:"html,omitempty"`
}

// server serves a session over HTTP, pushing the document to websocket
// clients whenever it changes.
type server struct {

	// mu serializes all access to the session and the clients.
	mu       sync.Mutex
	sess     *session
	clients  map[*websocket.Conn]bool
	upgrader websocket.Upgrader
}

func newServer(s *session) *server {
	return &server{sess: s, clients: map[*websocket.Conn]bool{}}
}

// serve serves the given session on the given address until
// the context is done.
func serve(ctx context.Context, s *session, addr string) error {
	srv := newServer(s)
	hs := &http.Server{Addr: addr, Handler: srv.handler()}

	go func() {
		errors.Log(watch(ctx, s.files(), srv.fileChanged))
	}()
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		errors.Log(hs.Shutdown(sctx))
	}()

	slog.Info("movi: serving", "addr", addr)
	err := hs.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (srv *server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", srv.servePage)
	mux.HandleFunc("/ws", srv.serveSocket)
	return mux
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>movi</title></head>
<body><div id="movi-root">{{.}}</div>
<script>
const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
const root = document.getElementById("movi-root");
ws.onmessage = (e) => { const m = JSON.parse(e.data); if (m.op === "html") root.innerHTML = m.html; };
root.addEventListener("input", (e) => { if (e.target.id) ws.send(JSON.stringify({op: "input", id: e.target.id, value: e.target.value})); });
root.addEventListener("click", (e) => { const t = e.target.closest("[id][onclick]"); if (t) { e.preventDefault(); ws.send(JSON.stringify({op: "event", id: t.id, event: "click"})); } });
</script></body></html>
`))

func (srv *server) servePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	srv.mu.Lock()
	h := srv.sess.html()
	srv.mu.Unlock()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	errors.Log(pageTemplate.Execute(w, template.HTML(h)))
}

func (srv *server) serveSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := srv.upgrader.Upgrade(w, r, nil)
	if errors.Log(err) != nil {
		return
	}
	defer conn.Close()

	srv.mu.Lock()
	srv.clients[conn] = true
	err = conn.WriteJSON(message{Op: "html", HTML: srv.sess.html()})
	srv.mu.Unlock()
	defer func() {
		srv.mu.Lock()
		delete(srv.clients, conn)
		srv.mu.Unlock()
	}()
	if errors.Log(err) != nil {
		return
	}

	for {
		var msg message
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				errors.Log(err)
			}
			return
		}
		srv.mu.Lock()
		err := srv.apply(msg)
		if err == nil {
			srv.broadcast()
		}
		srv.mu.Unlock()
		errors.Log(err)
	}
}

// apply applies the given client message to the session.
// It must be called with the lock held.
func (srv *server) apply(msg message) error {
	s := srv.sess
	switch msg.Op {
	case "set":
		if err := model.Set(s.root, keypath.Split(msg.Path), model.FromGo(s.root.Hub(), msg.Value)); err != nil {
			return err
		}
		s.engine.Deliver()
		return nil
	case "input", "event":
		el, err := s.doc.QuerySelector("#" + msg.ID)
		if err != nil {
			return err
		}
		if el == nil {
			return fmt.Errorf("no element with id %q", msg.ID)
		}
		if msg.Op == "input" {
			s.engine.Input(el, reflectx.ToString(msg.Value))
		} else {
			s.engine.Dispatch(el, events.NewNamed(msg.Event, msg.Value))
		}
		return nil
	}
	return fmt.Errorf("unknown message op %q", msg.Op)
}

// broadcast sends the current document to all of the clients.
// It must be called with the lock held.
func (srv *server) broadcast() {
	h := srv.sess.html()
	for conn := range srv.clients {
		if errors.Log(conn.WriteJSON(message{Op: "html", HTML: h})) != nil {
			conn.Close()
			delete(srv.clients, conn)
		}
	}
}

// fileChanged updates the session for a change of the given file
// and sends the result to the clients.
func (srv *server) fileChanged(file string) {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	if errors.Log(srv.sess.update(file)) != nil {
		return
	}
	srv.broadcast()
}
