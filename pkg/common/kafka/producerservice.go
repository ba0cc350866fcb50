package kafkacommon

import (
	"encoding/json"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	log "github.com/sirupsen/logrus"
)

// ProducerServiceInterface produces lifecycle events onto kafka topics
type ProducerServiceInterface interface {
	ProduceEvent(topic string, key string, event FleetCloudEvent) error
}

// ProducerService is the default implementation of a ProducerServiceInterface
type ProducerService struct{}

// NewProducerService returns a new service for producing events
func NewProducerService() ProducerServiceInterface {
	return &ProducerService{}
}

// ProduceEvent sends an event to the topic. When no brokers are configured
// the event is dropped silently, eventing is best effort.
func (p *ProducerService) ProduceEvent(topic string, key string, event FleetCloudEvent) error {
	producer := GetInstance()
	if producer == nil {
		return nil
	}

	value, err := json.Marshal(event)
	if err != nil {
		log.WithField("error", err.Error()).Error("Error marshalling event")
		return err
	}

	return producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Key:            []byte(key),
		Value:          value,
	}, nil)
}
