// Package ws serves live collection snapshots and notices over websockets.
//
// A connection starts as the caller's identity (signed-in account or guest
// session), may subscribe to collections once signed in, and receives every
// notice addressed to its identity. An "auth" message swaps the identity and
// closes every subscription of the previous one.
package ws

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/feed"
	"github.com/AFTLlimited25/Platrr-Business/pkg/ctxutil"
)

type subscriber interface {
	Subscribe(ctx context.Context, ownerID uuid.UUID, c domain.Collection, onSnapshot func(domain.Snapshot)) (*feed.Subscription, error)
}

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// Server upgrades requests to websockets and routes notices to them. It
// implements notify.Sink.
type Server struct {
	feed     subscriber
	tokens   tokenValidator
	upgrader websocket.Upgrader
	log      *slog.Logger

	mu    sync.RWMutex
	conns map[uuid.UUID]map[*conn]struct{}
}

// NewServer creates a Server. allowedOrigins follows the CORS setting; "*"
// or an empty list accepts any origin.
func NewServer(log *slog.Logger, feed subscriber, tokens tokenValidator, allowedOrigins []string) *Server {
	return &Server{
		feed:   feed,
		tokens: tokens,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		log:   log.With("transport", "ws"),
		conns: make(map[uuid.UUID]map[*conn]struct{}),
	}
}

// ServeHTTP handles GET /ws. Browsers cannot set headers on a websocket
// handshake, so a ?token= query parameter is accepted as well.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ident, err := s.identify(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	wsConn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WarnContext(r.Context(), "websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	c := newConn(ctx, cancel, s, wsConn, ident)
	s.register(c)
	s.log.InfoContext(ctx, "websocket connected",
		slog.String("owner", ident.owner.String()),
		slog.Bool("authenticated", ident.account),
	)

	c.enqueue(readyMessage(ident.account))
	go c.writeLoop()
	c.readLoop()

	c.shutdown()
	s.log.InfoContext(ctx, "websocket disconnected", slog.String("owner", c.identity().owner.String()))
}

// Notify delivers n to every connection of its owner. Notices without an
// owner are dropped.
func (s *Server) Notify(_ context.Context, n domain.Notice) {
	if n.OwnerID == uuid.Nil {
		return
	}

	s.mu.RLock()
	targets := make([]*conn, 0, len(s.conns[n.OwnerID]))
	for c := range s.conns[n.OwnerID] {
		targets = append(targets, c)
	}
	s.mu.RUnlock()

	msg := noticeMessage(n)
	for _, c := range targets {
		c.enqueue(msg)
	}
}

// Close disconnects every client. Hijacked connections are not closed by
// http.Server.Shutdown, so this runs alongside it.
func (s *Server) Close() {
	s.mu.RLock()
	all := make([]*conn, 0, len(s.conns))
	for _, set := range s.conns {
		for c := range set {
			all = append(all, c)
		}
	}
	s.mu.RUnlock()

	for _, c := range all {
		c.cancel()
	}
}

// ConnCount returns the number of open connections.
func (s *Server) ConnCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, set := range s.conns {
		n += len(set)
	}
	return n
}

func (s *Server) identify(r *http.Request) (identity, error) {
	guest, ok := ctxutil.GuestSessionFromCtx(r.Context())
	if !ok {
		guest = uuid.New()
	}

	if id, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return identity{owner: id, account: true, guest: guest}, nil
	}
	if token := r.URL.Query().Get("token"); token != "" {
		id, err := s.tokens.ValidateToken(r.Context(), token)
		if err != nil {
			return identity{}, err
		}
		return identity{owner: id, account: true, guest: guest}, nil
	}
	return identity{owner: guest, guest: guest}, nil
}

func (s *Server) register(c *conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.add(c, c.identity().owner)
}

func (s *Server) unregister(c *conn, owner uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(c, owner)
}

// move re-files c under a new owner.
func (s *Server) move(c *conn, from, to uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(c, from)
	s.add(c, to)
}

func (s *Server) add(c *conn, owner uuid.UUID) {
	set, ok := s.conns[owner]
	if !ok {
		set = make(map[*conn]struct{})
		s.conns[owner] = set
	}
	set[c] = struct{}{}
}

func (s *Server) remove(c *conn, owner uuid.UUID) {
	if set, ok := s.conns[owner]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(s.conns, owner)
		}
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
	}
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}
}
