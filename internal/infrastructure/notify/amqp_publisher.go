package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/palco-app/palco-api/internal/application/ports"
	"github.com/palco-app/palco-api/internal/domain/entity"
	"github.com/palco-app/palco-api/pkg/config"
)

var _ ports.Notifier = (*AMQPPublisher)(nil)
var _ ports.Notifier = NoopNotifier{}

// AMQPPublisher publica notificações em um exchange topic do RabbitMQ.
// O gateway de push consome dali; a persistência in-app já aconteceu
// antes, então a publicação é o melhor esforço de entrega.
type AMQPPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// payload é o corpo JSON publicado no broker.
type payload struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title,omitempty"`
	Body        string    `json:"body,omitempty"`
	SenderID    string    `json:"sender_id"`
	ReceiverID  string    `json:"receiver_id"`
	ChatID      string    `json:"chat_id,omitempty"`
	EventID     string    `json:"event_id,omitempty"`
	CandidacyID string    `json:"candidacy_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewAMQPPublisher conecta ao broker e declara o exchange durável.
func NewAMQPPublisher(cfg config.AMQPConfig) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	err = ch.ExchangeDeclare(
		cfg.Exchange, // name
		"topic",      // kind
		true,         // durable
		false,        // auto-delete
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &AMQPPublisher{conn: conn, channel: ch, exchange: cfg.Exchange}, nil
}

// Publish envia a notificação com routing key "notification.<tipo>".
func (p *AMQPPublisher) Publish(ctx context.Context, n *entity.Notification) error {
	body, err := json.Marshal(payload{
		ID:          n.ID,
		Type:        n.Type,
		Title:       n.Title,
		Body:        n.Body,
		SenderID:    n.SenderID,
		ReceiverID:  n.ReceiverID,
		ChatID:      n.ChatID,
		EventID:     n.EventID,
		CandidacyID: n.CandidacyID,
		CreatedAt:   n.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		"notification."+n.Type, // routing key
		false,                  // mandatory
		false,                  // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}

// Close encerra canal e conexão.
func (p *AMQPPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		return err
	}
	return p.conn.Close()
}

// NoopNotifier descarta publicações. Usado quando AMQP_URL está vazio:
// as notificações in-app continuam sendo gravadas normalmente.
type NoopNotifier struct{}

// Publish não faz nada.
func (NoopNotifier) Publish(ctx context.Context, n *entity.Notification) error {
	return nil
}
