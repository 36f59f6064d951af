package game

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// client is one live websocket connection. The write lock serializes
// the initial snapshot, writer loop frames and the close frame; the
// disconnect logic runs exactly once no matter which side fails first.
type client struct {
	hub    *Hub
	conn   *websocket.Conn
	sub    *Subscription
	userID string
	roomID string

	writeMu  sync.Mutex
	downOnce sync.Once
}

func (c *client) safeWriteBinary(data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(websocket.BinaryMessage, data)
}

// disconnect tears the connection down: unsubscribe (ends the writer),
// close the socket (ends the reader) and run the leave handling once.
func (c *client) disconnect() {
	c.downOnce.Do(func() {
		log.Printf("[disconnect] room=%s user=%s: connection closing", c.roomID, c.userID)
		c.sub.Close()
		_ = c.conn.Close()
		c.hub.handleDisconnect(c.roomID, c.userID)
	})
}
