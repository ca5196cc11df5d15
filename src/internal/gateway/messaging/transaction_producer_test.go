package messaging

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	k "gopkg.in/confluentinc/confluent-kafka-go.v1/kafka"

	"tolleasy-service/src/internal/model"
	"tolleasy-service/src/pkg/log"
)

type capturingProducer struct {
	messages []*k.Message
}

func (c *capturingProducer) Publish(message *k.Message) error {
	c.messages = append(c.messages, message)
	return nil
}

func (c *capturingProducer) Close() {}

func TestNewTransactionProducerDisabled(t *testing.T) {
	assert.Nil(t, NewTransactionProducer(nil, log.Log{}))
}

func TestSendTransactionCreated(t *testing.T) {
	inner := &capturingProducer{}
	producer := NewTransactionProducer(inner, log.Log{})
	require.NotNil(t, producer)

	event := &model.TransactionEvent{
		ID:      "TXN-1",
		Message: model.TransactionResponse{ID: 9, Amount: 120, ReferenceID: "TXN-1"},
	}
	require.NoError(t, producer.SendTransactionCreated(event))

	require.Len(t, inner.messages, 1)
	message := inner.messages[0]
	assert.Equal(t, "toll-transaction-created", *message.TopicPartition.Topic)
	assert.Equal(t, []byte("TXN-1"), message.Key)

	var decoded model.TransactionEvent
	require.NoError(t, json.Unmarshal(message.Value, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestSendBalanceAlert(t *testing.T) {
	inner := &capturingProducer{}
	producer := NewTransactionProducer(inner, log.Log{})
	require.NotNil(t, producer)

	alert := &model.BalanceAlertEvent{ID: "ACC-7", UserID: 4, Balance: 6.5}
	require.NoError(t, producer.SendBalanceAlert(alert))

	require.Len(t, inner.messages, 1)
	assert.Equal(t, "account-balance-alert", *inner.messages[0].TopicPartition.Topic)
	assert.Equal(t, []byte("ACC-7"), inner.messages[0].Key)
}
