package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/court-reservation-service/internal/domain"
)

const (
	// DefaultPublishTimeout ограничение на одну публикацию
	DefaultPublishTimeout = 5 * time.Second

	// DefaultReconnectInterval минимальный интервал между попытками переподключения
	DefaultReconnectInterval = 5 * time.Second

	heartbeat = 10 * time.Second
)

// session открытый канал вместе с соединением, которому он принадлежит
type session struct {
	ch     Channel
	conn   io.Closer
	closed <-chan *amqp.Error // nil - закрытие канала не отслеживается
}

func (s *session) close() error {
	_ = s.ch.Close()
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

type connectFunc func() (*session, error)

// AMQPNotifier публикует события в durable topic exchange RabbitMQ.
// После закрытия канала брокером следующая публикация переподключается.
type AMQPNotifier struct {
	mu            sync.Mutex
	sess          *session
	connect       connectFunc // nil - без переподключения
	lastAttempt   time.Time
	retryInterval time.Duration
	shutdown      bool

	exchange string
	timeout  time.Duration
	metrics  MetricsRecorder
	log      Logger
	now      func() time.Time
}

// NewAMQPNotifier подключается к брокеру и объявляет exchange
func NewAMQPNotifier(cfg Config, m MetricsRecorder, log Logger) (*AMQPNotifier, error) {
	if cfg.URL == "" || cfg.Exchange == "" {
		return nil, fmt.Errorf("%w: url and exchange are required", ErrInvalidConfig)
	}

	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}

	return newAMQPNotifier(dialer(cfg.URL, cfg.Exchange, timeout), cfg.Exchange, timeout, m, log)
}

// dialer открывает соединение, канал и объявляет exchange
func dialer(url, exchange string, timeout time.Duration) connectFunc {
	return func() (*session, error) {
		conn, err := amqp.DialConfig(url, amqp.Config{
			Heartbeat: heartbeat,
			Locale:    "en_US",
			Dial:      amqp.DefaultDial(timeout),
		})
		if err != nil {
			return nil, fmt.Errorf("%w: dial: %v", ErrConnect, err)
		}

		ch, err := conn.Channel()
		if err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
		}

		if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, fmt.Errorf("%w: declare exchange %s: %v", ErrConnect, exchange, err)
		}

		// Канал закрывается и при потере соединения
		closed := ch.NotifyClose(make(chan *amqp.Error, 1))

		return &session{ch: ch, conn: conn, closed: closed}, nil
	}
}

func newAMQPNotifier(connect connectFunc, exchange string, timeout time.Duration, m MetricsRecorder, log Logger) (*AMQPNotifier, error) {
	sess, err := connect()
	if err != nil {
		return nil, err
	}

	n := &AMQPNotifier{
		connect:       connect,
		retryInterval: DefaultReconnectInterval,
		exchange:      exchange,
		timeout:       timeout,
		metrics:       m,
		log:           log,
		now:           time.Now,
	}
	n.attach(sess)
	return n, nil
}

// NewAMQPNotifierWithChannel создает notifier поверх уже открытого канала (без переподключения)
func NewAMQPNotifierWithChannel(ch Channel, exchange string, timeout time.Duration, m MetricsRecorder, log Logger) *AMQPNotifier {
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}
	return &AMQPNotifier{
		sess:          &session{ch: ch},
		retryInterval: DefaultReconnectInterval,
		exchange:      exchange,
		timeout:       timeout,
		metrics:       m,
		log:           log,
		now:           time.Now,
	}
}

// ReservationConfirmed публикует reservation.confirmed
func (n *AMQPNotifier) ReservationConfirmed(ctx context.Context, reservation *domain.Reservation) error {
	return n.publish(ctx, EventReservationConfirmed, reservation)
}

// ReservationCancelled публикует reservation.cancelled
func (n *AMQPNotifier) ReservationCancelled(ctx context.Context, reservation *domain.Reservation) error {
	return n.publish(ctx, EventReservationCancelled, reservation)
}

func (n *AMQPNotifier) publish(ctx context.Context, kind EventKind, reservation *domain.Reservation) error {
	event := newReservationEvent(kind, reservation, n.now())

	body, err := json.Marshal(event)
	if err != nil {
		n.metrics.IncNotification(string(kind), resultFailed)
		return fmt.Errorf("%w: %v", ErrMarshal, err)
	}

	sess, err := n.currentSession()
	if err != nil {
		n.metrics.IncNotification(string(kind), resultFailed)
		n.log.Error("Notifier: broker unavailable, %s for reservation_id=%d dropped: %v", kind, reservation.ID, err)
		return fmt.Errorf("%w: %s: %w", ErrPublish, kind, err)
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	err = sess.ch.PublishWithContext(ctx, n.exchange, string(kind), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
		Timestamp:    event.OccurredAt,
		Body:         body,
	})
	if err != nil {
		if errors.Is(err, amqp.ErrClosed) {
			n.detach(sess)
		}
		n.metrics.IncNotification(string(kind), resultFailed)
		n.log.Error("Notifier: failed to publish %s for reservation_id=%d: %v", kind, reservation.ID, err)
		return fmt.Errorf("%w: %s: %v", ErrPublish, kind, err)
	}

	n.metrics.IncNotification(string(kind), resultSent)
	n.log.Info("Notifier: published %s for reservation_id=%d, event_id=%s", kind, reservation.ID, event.EventID)
	return nil
}

// currentSession возвращает рабочий канал, при необходимости переподключаясь.
// Попытки переподключения не чаще retryInterval.
func (n *AMQPNotifier) currentSession() (*session, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.shutdown {
		return nil, ErrClosed
	}
	if n.sess != nil {
		return n.sess, nil
	}
	if n.connect == nil {
		return nil, fmt.Errorf("%w: channel closed", ErrConnect)
	}

	now := n.now()
	if !n.lastAttempt.IsZero() && now.Sub(n.lastAttempt) < n.retryInterval {
		return nil, fmt.Errorf("%w: next reconnect attempt in %s", ErrConnect, n.retryInterval-now.Sub(n.lastAttempt))
	}
	n.lastAttempt = now

	sess, err := n.connect()
	if err != nil {
		return nil, err
	}

	n.log.Info("Notifier: reconnected to broker, exchange=%s", n.exchange)
	n.attachLocked(sess)
	return sess, nil
}

func (n *AMQPNotifier) attach(sess *session) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.attachLocked(sess)
}

func (n *AMQPNotifier) attachLocked(sess *session) {
	n.sess = sess
	n.lastAttempt = time.Time{}
	if sess.closed != nil {
		go n.watch(sess)
	}
}

// watch ждет закрытия канала брокером и сбрасывает сессию
func (n *AMQPNotifier) watch(sess *session) {
	amqpErr, ok := <-sess.closed
	if !ok || amqpErr == nil {
		// Штатное закрытие через Close
		return
	}

	n.log.Error("Notifier: broker closed the channel (code=%d, reason=%s), will reconnect on next publish",
		amqpErr.Code, amqpErr.Reason)
	n.detach(sess)
}

func (n *AMQPNotifier) detach(sess *session) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.sess != sess {
		return
	}
	n.sess = nil
	_ = sess.close()
}

// Close закрывает канал и соединение
func (n *AMQPNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.shutdown = true
	if n.sess == nil {
		return nil
	}
	sess := n.sess
	n.sess = nil
	return sess.close()
}
