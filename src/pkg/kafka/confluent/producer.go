package kafka

import (
	"fmt"

	k "gopkg.in/confluentinc/confluent-kafka-go.v1/kafka"

	"tolleasy-service/src/pkg/log"
)

type producer struct {
	kafkaProducer *k.Producer
	log           log.Log
}

func NewProducer(config *k.ConfigMap, logger log.Log) (Producer, error) {
	p, err := k.NewProducer(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	prod := &producer{kafkaProducer: p, log: logger}
	go prod.handleDeliveryReports()
	return prod, nil
}

func (p *producer) handleDeliveryReports() {
	for e := range p.kafkaProducer.Events() {
		if m, ok := e.(*k.Message); ok && m.TopicPartition.Error != nil {
			p.log.Error("kafka-producer", m.TopicPartition.Error.Error(), "delivery", *m.TopicPartition.Topic)
		}
	}
}

func (p *producer) Publish(message *k.Message) error {
	return p.kafkaProducer.Produce(message, nil)
}

func (p *producer) Close() {
	p.kafkaProducer.Flush(5000)
	p.kafkaProducer.Close()
}
