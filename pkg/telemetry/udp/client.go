package udp

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/mpapenbr/f1-dashboard-go/log"
	"github.com/mpapenbr/f1-dashboard-go/pkg/telemetry"
)

// large enough for the biggest packet (motion, 1464 bytes)
const readBufferSize = 2048

// Client receives and decodes telemetry datagrams from the game.
type Client struct {
	conn *net.UDPConn
	buf  []byte
}

// NewClient binds the UDP socket the game sends its telemetry to.
func NewClient(host string, port int) (*Client, error) {
	addr, err := net.ResolveUDPAddr("udp", fmt.Sprintf("%s:%d", host, port))
	if err != nil {
		return nil, fmt.Errorf("resolve %s:%d: %w", host, port, err)
	}
	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	log.Info("listening for telemetry", log.String("addr", addr.String()))
	return &Client{conn: conn, buf: make([]byte, readBufferSize)}, nil
}

// Next blocks until the next packet is received and decoded.
// Receive and decode failures are returned to the caller; both are
// recoverable and the caller is expected to continue.
func (c *Client) Next(ctx context.Context) (telemetry.Packet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n, _, err := c.conn.ReadFromUDP(c.buf)
	if err != nil {
		if errors.Is(err, net.ErrClosed) && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("receive: %w", err)
	}
	return Decode(c.buf[:n])
}

func (c *Client) Close() error {
	return c.conn.Close()
}
