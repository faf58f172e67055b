package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gookit/slog"
	amqp "github.com/rabbitmq/amqp091-go"

	"blogapi/internal/model"
	"blogapi/internal/repository"
)

// AuditLogWorker consumes the entity event queue and appends every event
// to the audit_logs table.
type AuditLogWorker struct {
	conn      *amqp.Connection
	repo      *repository.AuditLogRepository
	queueName string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewAuditLogWorker(conn *amqp.Connection, repo *repository.AuditLogRepository, queueName string) *AuditLogWorker {
	return &AuditLogWorker{
		conn:      conn,
		repo:      repo,
		queueName: queueName,
	}
}

func (w *AuditLogWorker) Start(ctx context.Context) error {
	if w.cancel != nil {
		return nil
	}

	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	ch, err := w.conn.Channel()
	if err != nil {
		cancel()
		return fmt.Errorf("open worker channel failed: %w", err)
	}

	_, err = ch.QueueDeclare(
		w.queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("declare event queue failed: %w", err)
	}

	deliveries, err := ch.Consume(
		w.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("consume event queue failed: %w", err)
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer ch.Close()

		for {
			select {
			case <-workerCtx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}

				var event model.EntityEvent
				if err := json.Unmarshal(d.Body, &event); err != nil {
					slog.Errorf("worker decode entity event failed: %v", err)
					_ = d.Nack(false, false)
					continue
				}

				entry := &model.AuditLog{
					Entity:     event.Entity,
					Action:     event.Action,
					EntityID:   event.EntityID,
					OccurredAt: event.OccurredAt,
				}
				if err := w.repo.Create(entry); err != nil {
					slog.Errorf("worker persist audit log failed: %v", err)
					_ = d.Nack(false, false)
					continue
				}

				_ = d.Ack(false)
			}
		}
	}()

	return nil
}

func (w *AuditLogWorker) Close() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
