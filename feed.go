package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"marblerank/rank"

	"github.com/gorilla/websocket"
)

// feedUpdate is one race snapshot pushed by a live race server. Teams is
// optional; an update without it keeps the current roster.
type feedUpdate struct {
	Winners    []rank.Marble `json:"winners"`
	Marbles    []rank.Marble `json:"marbles"`
	WinnerRank *int          `json:"winnerRank,omitempty"`
	Teams      []rank.Team   `json:"teams,omitempty"`
}

const (
	feedHandshakeTimeout = 5 * time.Second
	feedRetryMin         = 500 * time.Millisecond
	feedRetryMax         = 10 * time.Second
	feedReadLimit        = 4 << 20
)

var errFeedClosed = errors.New("feed closed")

// runFeed keeps a websocket connection to url open until ctx ends and
// forwards every update to out. Only the newest update waits in out; a
// slow reader skips stale snapshots. onDrop is called each time a
// connection is lost.
func runFeed(ctx context.Context, url string, out chan feedUpdate, onDrop func(error)) {
	dialer := websocket.Dialer{HandshakeTimeout: feedHandshakeTimeout}
	backoff := feedRetryMin
	for ctx.Err() == nil {
		conn, _, err := dialer.DialContext(ctx, url, nil)
		if err != nil {
			logDebug("feed dial %s: %v", url, err)
		} else {
			logDebug("feed connected: %s", url)
			backoff = feedRetryMin
			err = feedLoop(ctx, conn, out)
			if ctx.Err() != nil {
				return
			}
			if onDrop != nil {
				onDrop(err)
			}
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, feedRetryMax)
	}
}

// feedLoop reads updates from conn until it fails or ctx ends. It always
// closes conn.
func feedLoop(ctx context.Context, conn *websocket.Conn, out chan feedUpdate) error {
	conn.SetReadLimit(feedReadLimit)
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
		conn.Close()
	}()

	for {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return errFeedClosed
			}
			return fmt.Errorf("feed read: %w", err)
		}
		if kind != websocket.TextMessage {
			continue
		}
		var u feedUpdate
		if err := json.Unmarshal(data, &u); err != nil {
			logWarn("feed: bad update: %v", err)
			continue
		}
		publishLatest(out, u)
	}
}

// publishLatest replaces whatever update is still waiting in out. out must
// have a buffer and a single sender.
func publishLatest(out chan feedUpdate, u feedUpdate) {
	for {
		select {
		case out <- u:
			return
		default:
		}
		select {
		case <-out:
		default:
		}
	}
}
