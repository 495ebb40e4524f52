package hub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/sitekeeper/sitekeeper/pkg/models"
)

// ErrTransportClosed is returned by Send after the connection is gone.
var ErrTransportClosed = errors.New("agent transport closed")

// sendBuffer bounds the per-agent outbound queue. A full queue fails the
// Send, which the registry treats as the node becoming unreachable.
const sendBuffer = 64

// agentTransport is the outbound half of one agent connection. All writes go
// through a single writer goroutine, which gives per-node FIFO delivery.
type agentTransport struct {
	node         string
	conn         *websocket.Conn
	writeTimeout time.Duration

	sendCh    chan models.Envelope
	done      chan struct{}
	closeOnce sync.Once
}

func newAgentTransport(node string, conn *websocket.Conn, writeTimeout time.Duration) *agentTransport {
	t := &agentTransport{
		node:         node,
		conn:         conn,
		writeTimeout: writeTimeout,
		sendCh:       make(chan models.Envelope, sendBuffer),
		done:         make(chan struct{}),
	}
	go t.writeLoop()
	return t
}

// Send enqueues an envelope for the writer goroutine. It never blocks: a
// full queue or a closed transport is an error the caller surfaces as node
// unreachability.
func (t *agentTransport) Send(env models.Envelope) error {
	select {
	case <-t.done:
		return ErrTransportClosed
	default:
	}
	select {
	case t.sendCh <- env:
		return nil
	case <-t.done:
		return ErrTransportClosed
	default:
		return fmt.Errorf("send queue full for node %s", t.node)
	}
}

// Close shuts the connection down with a normal-closure frame. Idempotent.
func (t *agentTransport) Close(reason string) {
	t.closeOnce.Do(func() {
		close(t.done)
		if err := t.conn.Close(websocket.StatusNormalClosure, reason); err != nil {
			slog.Debug("Agent connection close", "node", t.node, "error", err)
		}
	})
}

func (t *agentTransport) writeLoop() {
	for {
		select {
		case env := <-t.sendCh:
			data, err := json.Marshal(env)
			if err != nil {
				slog.Error("Failed to marshal outbound envelope",
					"node", t.node, "type", env.Type, "error", err)
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), t.writeTimeout)
			err = t.conn.Write(ctx, websocket.MessageText, data)
			cancel()
			if err != nil {
				slog.Warn("Agent write failed, closing transport",
					"node", t.node, "type", env.Type, "error", err)
				t.Close("write failure")
				return
			}
		case <-t.done:
			return
		}
	}
}
