package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/feed"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 4096
	sendBuffer     = 64
)

// identity is who a connection acts for. owner is the account id when
// account is set, otherwise the guest session id. guest is kept so a
// signed-out connection falls back to the same session.
type identity struct {
	owner   uuid.UUID
	account bool
	guest   uuid.UUID
}

type conn struct {
	srv    *Server
	ws     *websocket.Conn
	send   chan []byte
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	mu    sync.Mutex
	ident identity
	subs  map[domain.Collection]*feed.Subscription
}

func newConn(ctx context.Context, cancel context.CancelFunc, srv *Server, ws *websocket.Conn, ident identity) *conn {
	return &conn{
		srv:    srv,
		ws:     ws,
		send:   make(chan []byte, sendBuffer),
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
		ident:  ident,
		subs:   make(map[domain.Collection]*feed.Subscription),
	}
}

func (c *conn) identity() identity {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ident
}

// enqueue queues msg for the writer. A client that cannot keep up is
// disconnected rather than allowed to block snapshot delivery.
func (c *conn) enqueue(msg outbound) {
	b, err := json.Marshal(msg)
	if err != nil {
		c.srv.log.ErrorContext(c.ctx, "marshal websocket message", slog.String("error", err.Error()))
		return
	}
	select {
	case <-c.ctx.Done():
	case c.send <- b:
	default:
		c.srv.log.WarnContext(c.ctx, "websocket client too slow, disconnecting")
		c.cancel()
	}
}

func (c *conn) readLoop() {
	c.ws.SetReadLimit(maxMessageSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.srv.log.DebugContext(c.ctx, "websocket read", slog.String("error", err.Error()))
			}
			return
		}
		if c.ctx.Err() != nil {
			return
		}

		var msg inbound
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.enqueue(errorMessage("", "malformed message"))
			continue
		}
		c.handle(msg)
	}
}

func (c *conn) handle(msg inbound) {
	switch msg.Type {
	case typeSubscribe:
		c.subscribe(msg.Collection)
	case typeUnsubscribe:
		c.unsubscribe(msg.Collection)
	case typeAuth:
		c.authenticate(msg.Token)
	case typePing:
		c.enqueue(outbound{Type: typePong})
	default:
		c.enqueue(errorMessage("", "unknown message type"))
	}
}

func (c *conn) subscribe(col domain.Collection) {
	if !col.IsValid() {
		c.enqueue(errorMessage(col, "unknown collection"))
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.ident.account {
		c.enqueue(errorMessage(col, "sign in to watch collections"))
		return
	}
	if _, ok := c.subs[col]; ok {
		return
	}

	owner := c.ident.owner
	sub, err := c.srv.feed.Subscribe(c.ctx, owner, col, func(s domain.Snapshot) {
		if s.OwnerID != c.identity().owner {
			return
		}
		c.enqueue(snapshotMessage(s))
	})
	if err != nil {
		c.enqueue(errorMessage(col, err.Error()))
		return
	}
	c.subs[col] = sub
}

func (c *conn) unsubscribe(col domain.Collection) {
	c.mu.Lock()
	sub, ok := c.subs[col]
	delete(c.subs, col)
	c.mu.Unlock()

	if ok {
		sub.Close()
	}
	c.enqueue(outbound{Type: typeClosed, Collection: col})
}

// authenticate swaps the connection identity. Every subscription of the
// previous identity is closed first.
func (c *conn) authenticate(token string) {
	next := identity{guest: c.identity().guest}
	if token == "" {
		next.owner = next.guest
	} else {
		id, err := c.srv.tokens.ValidateToken(c.ctx, token)
		if err != nil {
			c.enqueue(errorMessage("", "invalid token"))
			return
		}
		next.owner, next.account = id, true
	}

	c.mu.Lock()
	prev := c.ident
	c.ident = next
	subs := c.subs
	c.subs = make(map[domain.Collection]*feed.Subscription)
	c.mu.Unlock()

	for _, sub := range subs {
		sub.Close()
	}
	if prev.owner != next.owner {
		c.srv.move(c, prev.owner, next.owner)
	}
	c.enqueue(readyMessage(next.account))
}

func (c *conn) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
		close(c.done)
	}()

	for {
		select {
		case <-c.ctx.Done():
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.ws.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case b := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, b); err != nil {
				c.cancel()
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.cancel()
				return
			}
		}
	}
}

// shutdown ends the connection: subscriptions close, the writer drains and
// the connection leaves the notice routing table.
func (c *conn) shutdown() {
	c.cancel()

	c.mu.Lock()
	subs := c.subs
	c.subs = nil
	owner := c.ident.owner
	c.mu.Unlock()

	for _, sub := range subs {
		sub.Close()
	}
	c.srv.unregister(c, owner)
	<-c.done
}
