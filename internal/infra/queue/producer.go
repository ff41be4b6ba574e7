package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EventLeadCaptured      = "lead.captured"
	EventLeadStatusChanged = "lead.status_changed"
)

// LeadEventPayload é o evento de ciclo de vida publicado pra consumidores
// downstream (alertas, BI). Nunca bloqueia o caminho da request.
type LeadEventPayload struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	LeadID     string    `json:"lead_id"`
	CampaignID string    `json:"campaign_id,omitempty"`
	Email      string    `json:"email,omitempty"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewLeadEvent(eventType, leadID, campaignID, email, status string) LeadEventPayload {
	return LeadEventPayload{
		EventID:    uuid.New().String(),
		EventType:  eventType,
		LeadID:     leadID,
		CampaignID: campaignID,
		Email:      email,
		Status:     status,
		OccurredAt: time.Now().UTC(),
	}
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishLeadEvent(ctx context.Context, payload LeadEventPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,      // ex.leads
		payload.EventType, // lead.captured | lead.status_changed
		false,             // Mandatory
		false,             // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco
		},
	)

	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	return nil
}
