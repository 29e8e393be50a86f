package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/teatime-labs/moodgate/pkg/app/escalation"
)

const PublisherName = "kafka"

type Config struct {
	Host  string `mapstructure:"host"`
	Port  string `mapstructure:"port"`
	Topic string `mapstructure:"topic"`
}

// DecodeConfig reads and checks the publisher settings from the events
// section of the config file.
func DecodeConfig(settings map[string]interface{}) (Config, error) {
	var conf Config
	if err := mapstructure.Decode(settings, &conf); err != nil {
		return Config{}, fmt.Errorf("invalid kafka config: %w", err)
	}
	if conf.Host == "" {
		return Config{}, errors.New("kafka host is required")
	}
	if conf.Port == "" {
		return Config{}, errors.New("kafka port is required")
	}
	if conf.Topic == "" {
		return Config{}, errors.New("kafka topic is required")
	}
	return conf, nil
}

type Publisher struct {
	logger   *logrus.Logger
	cfg      Config
	producer *kafka.Producer
}

func NewPublisher(logger *logrus.Logger, settings map[string]interface{}) (*Publisher, error) {
	conf, err := DecodeConfig(settings)
	if err != nil {
		return nil, err
	}
	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": fmt.Sprintf("%s:%s", conf.Host, conf.Port),
		"acks":              "all",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	logger.WithFields(logrus.Fields{
		"brokers": fmt.Sprintf("%s:%s", conf.Host, conf.Port),
		"topic":   conf.Topic,
	}).Info("flagged post events go to kafka")
	return &Publisher{
		logger:   logger,
		cfg:      conf,
		producer: producer,
	}, nil
}

// Publish waits for the broker acknowledgement. Events are keyed by post id.
func (p *Publisher) Publish(ctx context.Context, evt escalation.FlaggedEvent) error {
	if p.producer == nil {
		return errors.New("kafka producer is not initialized")
	}
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	deliveryChan := make(chan kafka.Event, 1)

	err = p.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &p.cfg.Topic, Partition: kafka.PartitionAny},
		Key:            []byte(evt.PostID.String()),
		Value:          data,
		Headers:        []kafka.Header{{Key: "type", Value: []byte(evt.Type)}},
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("failed to produce message: %w", err)
	}

	select {
	case e := <-deliveryChan:
		m, ok := e.(*kafka.Message)
		if !ok {
			return fmt.Errorf("unexpected delivery event: %v", e)
		}
		if m.TopicPartition.Error != nil {
			return fmt.Errorf("delivery failed: %w", m.TopicPartition.Error)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Publisher) Close() {
	if p.producer != nil {
		if remaining := p.producer.Flush(5000); remaining > 0 {
			p.logger.WithField("pending", remaining).Warn("kafka producer closed with undelivered events")
		}
		p.producer.Close()
	}
}
