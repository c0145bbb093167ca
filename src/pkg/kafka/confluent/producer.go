package kafka

import (
	"fmt"

	"payout-service/src/pkg/log"

	k "gopkg.in/confluentinc/confluent-kafka-go.v1/kafka"
)

type kafkaProducer struct {
	producer *k.Producer
	log      log.Log
}

// NewProducer creates the confluent producer and drains its delivery reports
// in the background. Delivery failures are logged only; publishing is
// best-effort from the caller's point of view.
func NewProducer(config *k.ConfigMap, logger log.Log) (Producer, error) {
	producer, err := k.NewProducer(config)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	p := &kafkaProducer{
		producer: producer,
		log:      logger,
	}

	go func() {
		for e := range producer.Events() {
			switch ev := e.(type) {
			case *k.Message:
				if ev.TopicPartition.Error != nil {
					p.log.Error("kafka-producer", fmt.Sprintf("Delivery failed: %v", ev.TopicPartition.Error), "deliveryReport", "")
				}
			case k.Error:
				p.log.Error("kafka-producer", ev.Error(), "deliveryReport", "")
			}
		}
	}()

	return p, nil
}

func (p *kafkaProducer) Publish(message *k.Message) error {
	return p.producer.Produce(message, nil)
}

func (p *kafkaProducer) PublishChannel(topic string, message []byte) {
	p.producer.ProduceChannel() <- &k.Message{
		TopicPartition: k.TopicPartition{Topic: &topic, Partition: k.PartitionAny},
		Value:          message,
	}
}
