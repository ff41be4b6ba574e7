package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/smartlead-sync/internal/entity"
)

// ConversionNotifier define o contrato do alerta de conversão (email, etc)
type ConversionNotifier interface {
	SendConversionAlert(to, leadID, leadEmail, campaignID, status string) error
}

// Worker consome os eventos de lead e dispara o alerta pro time de vendas
// quando um lead vira conversão. Desacoplado do banco de dados.
type Worker struct {
	Channel    *amqp.Channel
	Notifier   ConversionNotifier
	SalesEmail string
}

func NewWorker(ch *amqp.Channel, notifier ConversionNotifier, salesEmail string) *Worker {
	return &Worker{
		Channel:    ch,
		Notifier:   notifier,
		SalesEmail: salesEmail,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadEventPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON Inválido: %s", err)
				// Mensagem malformada. Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			if err := w.processEvent(payload); err != nil {
				log.Printf("❌ [WORKER] Erro no evento %s: %s", payload.EventID, err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}

func (w *Worker) processEvent(payload LeadEventPayload) error {
	if payload.EventType != EventLeadStatusChanged {
		return nil
	}
	if !entity.IsConversionStatus(payload.Status) {
		return nil
	}
	if w.Notifier == nil || w.SalesEmail == "" {
		log.Printf("⚠️ [WORKER] Conversão do lead %s sem notificador configurado", payload.LeadID)
		return nil
	}

	log.Printf("🎉 [WORKER] Lead %s converteu (%s), avisando vendas", payload.LeadID, payload.Status)
	return w.Notifier.SendConversionAlert(w.SalesEmail, payload.LeadID, payload.Email, payload.CampaignID, payload.Status)
}
