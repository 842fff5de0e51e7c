// Package kafka consumes school domain events and hands them to the
// dispatch engine. Other backend services (auth, exams, finance)
// publish one message per notification-worthy occurrence.
package kafka

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/noshahi-devs/notification-service/internal/engine"
	"github.com/noshahi-devs/notification-service/internal/models"
)

// event is the wire format published by the other school services.
type event struct {
	Event          models.NotificationEvent `json:"event"`
	RecipientEmail string                   `json:"recipient_email"`
	RecipientName  string                   `json:"recipient_name"`
	Data           map[string]string        `json:"data"`
}

type Consumer struct {
	reader *kafka.Reader
	engine *engine.Engine
	logger *logrus.Logger
}

func NewConsumer(broker, topic, groupID string, eng *engine.Engine, logger *logrus.Logger) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  []string{broker},
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	return &Consumer{reader: reader, engine: eng, logger: logger}
}

// Start reads messages until ctx is cancelled. Dispatch is synchronous
// per message; a notification failure is already reduced to a logged
// outcome by the engine and never stalls the consumer.
func (c *Consumer) Start(ctx context.Context, wg *sync.WaitGroup) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.logger.Infof("Kafka consumer started on topic %s", c.reader.Config().Topic)
		for {
			msg, err := c.reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					c.logger.Infof("Kafka consumer stopped")
					return
				}
				c.logger.Errorf("Read message failed: %v", err)
				continue
			}

			var ev event
			if err := json.Unmarshal(msg.Value, &ev); err != nil {
				c.logger.Errorf("Unmarshal message failed: %v", err)
				continue
			}
			if !models.IsValidEvent(ev.Event) || ev.RecipientEmail == "" {
				c.logger.Errorf("Invalid message: event=%q recipient=%q", ev.Event, ev.RecipientEmail)
				continue
			}

			res := c.engine.SendNotification(ctx, ev.Event, ev.RecipientEmail, ev.RecipientName, ev.Data)
			c.logger.Infof("Processed %s for %s: %s", ev.Event, ev.RecipientEmail, res.Message)
		}
	}()
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
