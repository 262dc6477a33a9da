package ws

import (
	"time"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

// Client to server message types.
const (
	typeSubscribe   = "subscribe"
	typeUnsubscribe = "unsubscribe"
	typeAuth        = "auth"
	typePing        = "ping"
)

// Server to client message types.
const (
	typeReady    = "ready"
	typeSnapshot = "snapshot"
	typeNotice   = "notice"
	typeError    = "error"
	typePong     = "pong"
	typeClosed   = "unsubscribed"
)

// inbound is a client request. Token is only read for "auth"; an empty
// token signs the connection out.
type inbound struct {
	Type       string            `json:"type"`
	Collection domain.Collection `json:"collection,omitempty"`
	Token      string            `json:"token,omitempty"`
}

// outbound is every message the server sends; unused fields are omitted.
type outbound struct {
	Type          string             `json:"type"`
	Collection    domain.Collection  `json:"collection,omitempty"`
	Items         any                `json:"items,omitempty"`
	At            *time.Time         `json:"at,omitempty"`
	Level         domain.NoticeLevel `json:"level,omitempty"`
	Title         string             `json:"title,omitempty"`
	Detail        string             `json:"detail,omitempty"`
	Error         string             `json:"error,omitempty"`
	Authenticated *bool              `json:"authenticated,omitempty"`
}

func readyMessage(authenticated bool) outbound {
	return outbound{Type: typeReady, Authenticated: &authenticated}
}

func snapshotMessage(s domain.Snapshot) outbound {
	at := s.At
	return outbound{Type: typeSnapshot, Collection: s.Collection, Items: s.Items, At: &at}
}

func noticeMessage(n domain.Notice) outbound {
	return outbound{Type: typeNotice, Level: n.Level, Title: n.Title, Detail: n.Detail}
}

func errorMessage(collection domain.Collection, msg string) outbound {
	return outbound{Type: typeError, Collection: collection, Error: msg}
}
