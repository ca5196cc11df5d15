package messaging

import (
	"tolleasy-service/src/internal/model"
	kafka "tolleasy-service/src/pkg/kafka/confluent"
	"tolleasy-service/src/pkg/log"
)

// TransactionProducer publishes ledger activity: one topic for completed
// transaction records, one for balance alerts consumed by the notification
// pipeline.
type TransactionProducer struct {
	CompletedProducer    Producer[*model.TransactionEvent]
	BalanceAlertProducer Producer[*model.BalanceAlertEvent]
}

// NewTransactionProducer returns nil when publishing is disabled so callers
// skip the publish path entirely.
func NewTransactionProducer(producer kafka.Producer, log log.Log) *TransactionProducer {
	if producer == nil {
		return nil
	}
	return &TransactionProducer{
		CompletedProducer: Producer[*model.TransactionEvent]{
			Producer: producer,
			Topic:    "toll-transaction-created",
			Log:      log,
		},
		BalanceAlertProducer: Producer[*model.BalanceAlertEvent]{
			Producer: producer,
			Topic:    "account-balance-alert",
			Log:      log,
		},
	}
}

func (p *TransactionProducer) SendTransactionCreated(event *model.TransactionEvent) error {
	return p.CompletedProducer.Send(event)
}

func (p *TransactionProducer) SendBalanceAlert(event *model.BalanceAlertEvent) error {
	return p.BalanceAlertProducer.Send(event)
}
