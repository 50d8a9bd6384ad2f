package rabbitmq

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

func (c *connectionImpl) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.isRetrying = false
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

func (c *connectionImpl) IsReady() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conn != nil && !c.conn.IsClosed()
}

func (c *connectionImpl) IsClosed() bool {
	c.mu.RLock()
	retrying := c.isRetrying
	c.mu.RUnlock()
	return !c.IsReady() && !retrying
}

func (c *connectionImpl) Channel() (IChannel, error) {
	ch, err := c.channel()
	if err != nil {
		return nil, err
	}
	chImpl := &channelImpl{conn: c, ch: ch}
	chImpl.listenNotifyReconnect()
	return chImpl, nil
}

func (c *connectionImpl) dial(connChan chan *amqp.Connection, cancelChan chan bool) {
	ctx := context.Background()
	count := 0
	for {
		select {
		case <-cancelChan:
			return
		default:
			c.l.Infof(ctx, "pkg.rabbitmq.dial: connecting to RabbitMQ, attempt %d", count+1)
			conn, err := amqp.Dial(c.url)
			if err != nil {
				c.l.Warnf(ctx, "pkg.rabbitmq.dial: connection to RabbitMQ failed: %v", err)
				time.Sleep(RetryConnectionDelay)
				count++
				continue
			}
			c.l.Infof(ctx, "pkg.rabbitmq.dial: connected to RabbitMQ")
			connChan <- conn
			return
		}
	}
}

func (c *connectionImpl) connectWithoutTimeout() error {
	connChan := make(chan *amqp.Connection)
	go c.dial(connChan, make(chan bool))
	c.setConn(<-connChan)
	return nil
}

func (c *connectionImpl) connect() error {
	connChan := make(chan *amqp.Connection)
	cancelChan := make(chan bool, 1)
	go c.dial(connChan, cancelChan)
	select {
	case conn := <-connChan:
		c.setConn(conn)
		return nil
	case <-time.After(RetryConnectionTimeout):
		cancelChan <- true
		return ErrConnectionTimeout
	}
}

func (c *connectionImpl) setConn(conn *amqp.Connection) {
	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
	c.listenNotifyClose(conn)
}

func (c *connectionImpl) listenNotifyClose(conn *amqp.Connection) {
	fn := c.connect
	if c.retryWithoutTimeout {
		fn = c.connectWithoutTimeout
	}
	notifyClose := conn.NotifyClose(make(chan *amqp.Error, 1))
	go func() {
		ctx := context.Background()
		// nil error or a closed channel means Close was called.
		err, ok := <-notifyClose
		if !ok || err == nil {
			return
		}

		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			return
		}
		c.conn = nil
		c.isRetrying = true
		c.mu.Unlock()

		c.l.Warnf(ctx, "pkg.rabbitmq.listenNotifyClose: connection to RabbitMQ closed: %v", err)
		if err := fn(); err != nil {
			c.l.Errorf(ctx, "pkg.rabbitmq.listenNotifyClose: reconnect to RabbitMQ failed: %v", err)
		}

		c.mu.Lock()
		c.isRetrying = false
		reconnects := append([]chan bool(nil), c.reconnects...)
		c.mu.Unlock()

		for _, reconnect := range reconnects {
			reconnect <- true
		}
	}()
}

func (c *connectionImpl) channel() (*amqp.Channel, error) {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()
	if conn == nil || conn.IsClosed() {
		return nil, ErrNotConnected
	}
	return conn.Channel()
}

func (c *connectionImpl) notifyReconnect(receiver chan bool) <-chan bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reconnects = append(c.reconnects, receiver)
	return receiver
}
