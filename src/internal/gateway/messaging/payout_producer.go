package messaging

import (
	"payout-service/src/internal/model"
	kafka "payout-service/src/pkg/kafka/confluent"
	"payout-service/src/pkg/log"
)

type PayoutProducer struct {
	PayoutCompletedProducer Producer[*model.PayoutEvent]
}

func NewPayoutProducer(producer kafka.Producer, log log.Log) *PayoutProducer {
	return &PayoutProducer{
		PayoutCompletedProducer: Producer[*model.PayoutEvent]{
			Producer: producer,
			Topic:    "payout-completed",
			Log:      log,
		},
	}
}

func (u *PayoutProducer) SendPayoutCompleted(event *model.PayoutEvent) error {
	return u.PayoutCompletedProducer.Send(event)
}
