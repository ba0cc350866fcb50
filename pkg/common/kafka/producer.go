package kafkacommon

import (
	"sync"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	log "github.com/sirupsen/logrus"

	"github.com/fleetdesk/fleet-api/config"
)

var lock = &sync.Mutex{}

var singleInstance *kafka.Producer

// GetInstance returns the kafka producer instance, or nil when no brokers
// are configured (eventing is optional)
func GetInstance() *kafka.Producer {
	if singleInstance == nil {
		lock.Lock()
		defer lock.Unlock()
		cfg := config.Get()
		if singleInstance == nil && cfg.KafkaBrokers != "" {
			p, err := kafka.NewProducer(&kafka.ConfigMap{
				"bootstrap.servers": cfg.KafkaBrokers,
			})
			if err != nil {
				log.WithField("error", err).Error("Failed to create kafka producer")
				return nil
			}
			singleInstance = p
		}
	}
	return singleInstance
}
