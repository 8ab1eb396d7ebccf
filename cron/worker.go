package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"stayhub/config"
	"stayhub/database/repository"
)

const TypePaymentRecord = "payment:record"

// PaymentRecordPayload is the task body enqueued by the payment
// callback handler once the gateway signature has been verified.
type PaymentRecordPayload struct {
	BillID string `json:"billId"`
	Status string `json:"status"`
	Amount int    `json:"amount"`
}

// NewPaymentRecordTask builds the asynq task for a verified callback.
func NewPaymentRecordTask(payload PaymentRecordPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePaymentRecord, b), nil
}

func queueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NewQueueClient returns an asynq client for enqueueing tasks.
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(queueRedisOpt())
}

// InitPaymentWorker runs the payment reconciliation worker in background.
func InitPaymentWorker(payments repository.PaymentRepository) {
	srv := asynq.NewServer(
		queueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePaymentRecord, handlePaymentRecordTask(payments))

	// Start async worker with retry logic
	go func() {
		log.Println("[PaymentWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[PaymentWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[PaymentWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handlePaymentRecordTask(payments repository.PaymentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p PaymentRecordPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[PaymentWorker] invalid payload: %v", err)
			return err
		}

		if err := payments.RecordStatus(ctx, p.BillID, p.Status, p.Amount); err != nil {
			log.Printf("[PaymentWorker] failed to record bill %s: %v", p.BillID, err)
			return err
		}
		return nil
	}
}
