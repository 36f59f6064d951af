package game

import "log"

// writeLoop drains the client's bus subscription, filters by room and
// routing and writes accepted frames to the socket. It ends when the
// subscription closes or a write fails.
func (c *client) writeLoop() {
	for msg := range c.sub.C {
		if msg.RoomID != c.roomID {
			continue
		}
		if !msg.Routing.acceptedBy(c.userID) {
			continue
		}
		if err := c.safeWriteBinary(msg.Data); err != nil {
			log.Printf("[writeLoop] room=%s user=%s: write failed: %v", c.roomID, c.userID, err)
			c.disconnect()
			return
		}
	}
}
