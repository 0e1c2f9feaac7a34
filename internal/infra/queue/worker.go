package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Kupenya/landPage/internal/infra/http/middleware"
)

// MailSender delivers the download link to the lead's inbox.
type MailSender interface {
	SendDownloadLink(to, downloadLink string) error
}

// LeadMarker flips the informational email-sent flag after delivery.
type LeadMarker interface {
	MarkEmailSent(ctx context.Context, token string) error
}

type Worker struct {
	Channel *amqp.Channel
	Mailer  MailSender
	Leads   LeadMarker
}

func NewWorker(ch *amqp.Channel, mailer MailSender, leads LeadMarker) *Worker {
	return &Worker{
		Channel: ch,
		Mailer:  mailer,
		Leads:   leads,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack: manual so poison messages can be dead-lettered
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ [WORKER] failed to register consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload DownloadEmailPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] malformed payload: %s", err)
				// Poison message. Reject without requeue so it lands
				// in the DLQ instead of blocking the queue.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] sending download email to %s (event %s)", payload.Email, payload.EventID)

			if err := w.processMessage(context.Background(), payload); err != nil {
				log.Printf("❌ [WORKER] delivery failed for %s: %s", payload.Email, err)
				// Notification is best-effort: no retry, dead-letter
				// and move on. The lead row already exists.
				d.Nack(false, false)
			} else {
				log.Printf("✅ [WORKER] download email delivered to %s", payload.Email)
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker waiting on queue '%s'", queueName)
	<-forever
}

func (w *Worker) processMessage(ctx context.Context, payload DownloadEmailPayload) error {
	if err := w.Mailer.SendDownloadLink(payload.Email, payload.DownloadLink); err != nil {
		middleware.RecordIntegrationError("smtp")
		return err
	}
	middleware.RecordDownloadEmailSent()

	// The flag is informational only; a failure here must not dead-letter a
	// mail that already went out.
	if err := w.Leads.MarkEmailSent(ctx, payload.Token); err != nil {
		log.Printf("⚠️ [WORKER] email sent but flag update failed for %s: %s", payload.Email, err)
	}

	return nil
}
