package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// OrderPlaced is published after a checkout commits so downstream consumers
// (fulfillment, analytics) can react without being in the request path.
type OrderPlaced struct {
	OrderID   int     `json:"order_id"`
	UserID    int     `json:"user_id"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
}

type Publisher struct {
	mu        sync.Mutex
	conn      *amqp.Connection
	channel   *amqp.Channel
	queueName string
}

// Default is nil when RABBITMQ_URL is unset or the broker is unreachable;
// publishing is best effort and never blocks an order.
var Default *Publisher

func Init() {
	url := os.Getenv("RABBITMQ_URL")
	if url == "" {
		log.Println("RABBITMQ_URL not set, order events disabled")
		return
	}

	queue := os.Getenv("RABBITMQ_QUEUE")
	if queue == "" {
		queue = "orders.placed"
	}

	p, err := NewPublisher(url, queue)
	if err != nil {
		log.Println("RabbitMQ connection failed, order events disabled:", err)
		return
	}
	Default = p
	log.Printf("Order event publisher ready on queue %q", queue)
}

func NewPublisher(url, queueName string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	// Idempotent declare so the publisher works regardless of boot order.
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &Publisher{conn: conn, channel: ch, queueName: queueName}, nil
}

func (p *Publisher) PublishOrderPlaced(event OrderPlaced) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(ctx,
		"",          // exchange
		p.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}

	log.Printf("Published order event for order %d", event.OrderID)
	return nil
}

func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
