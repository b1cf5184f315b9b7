package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/DRSN-tech/retail-core/internal/cfg"
	"github.com/DRSN-tech/retail-core/internal/domain"
	"github.com/DRSN-tech/retail-core/pkg/e"
	"github.com/DRSN-tech/retail-core/pkg/logger"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// EventSaleRecorded задаёт тип события о проведённой продаже.
const EventSaleRecorded = "sale.recorded"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer публикует события продаж в топик Kafka.
type Producer struct {
	writer messageWriter
	logger logger.Logger
	cfg    *cfg.KafkaCfg
	now    func() time.Time
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    10,
		BatchTimeout: 500 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
	}

	return newProducer(writer, logger, cfg)
}

func newProducer(writer messageWriter, logger logger.Logger, cfg *cfg.KafkaCfg) *Producer {
	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
		now:    time.Now,
	}
}

// WriteSaleEvent публикует продажу с номером накладной в качестве ключа,
// поэтому все события одной накладной попадают в одну партицию.
func (p *Producer) WriteSaleEvent(ctx context.Context, sale domain.Sale) error {
	value, err := EncodeSaleEvent(uuid.NewString(), p.now(), sale)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(sale.InvoiceNumber),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(EventSaleRecorded)},
		},
	})
}

// EnsureTopic создаёт топик, если его ещё нет.
func (p *Producer) EnsureTopic(timeout time.Duration) error {
	conn, err := kafka.Dial(p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(p.cfg.Topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- conn.CreateTopics(kafka.TopicConfig{
			Topic:             p.cfg.Topic,
			NumPartitions:     p.cfg.Partitions,
			ReplicationFactor: p.cfg.ReplicationFactor,
		})
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("failed to create topic %s: %w", p.cfg.Topic, err))
		}
		p.logger.Infof("kafka topic %s created", p.cfg.Topic)
		return nil
	case <-time.After(timeout):
		_ = conn.Close()
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("timeout: %v, topic: %s", timeout, p.cfg.Topic))
	}
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

// EncodeSaleEvent сериализует продажу в protobuf google.protobuf.Struct.
// Денежные суммы передаются строками, чтобы не терять точность.
func EncodeSaleEvent(eventID string, at time.Time, sale domain.Sale) ([]byte, error) {
	items := make([]any, 0, len(sale.Items))
	for _, item := range sale.Items {
		items = append(items, map[string]any{
			"productId": item.ProductID,
			"name":      item.Name,
			"quantity":  item.Quantity,
			"price":     item.Price.String(),
		})
	}

	event, err := structpb.NewStruct(map[string]any{
		"eventId":    eventID,
		"eventType":  EventSaleRecorded,
		"occurredAt": at.UTC().Format(time.RFC3339Nano),
		"sale": map[string]any{
			"id":            sale.ID,
			"invoiceNumber": sale.InvoiceNumber,
			"customerId":    sale.CustomerID,
			"customerName":  sale.CustomerName,
			"paymentMethod": string(sale.PaymentMethod),
			"subtotal":      sale.Subtotal.String(),
			"discount":      sale.Discount.String(),
			"tax":           sale.Tax.String(),
			"total":         sale.Total.String(),
			"profit":        sale.Profit.String(),
			"timestamp":     sale.Timestamp.UTC().Format(time.RFC3339Nano),
			"items":         items,
		},
	})
	if err != nil {
		return nil, e.Wrap("kafka.EncodeSaleEvent", err)
	}

	return proto.Marshal(event)
}

// DecodeSaleEvent разбирает сообщение, записанное EncodeSaleEvent.
func DecodeSaleEvent(payload []byte) (*structpb.Struct, error) {
	event := &structpb.Struct{}
	if err := proto.Unmarshal(payload, event); err != nil {
		return nil, e.Wrap("kafka.DecodeSaleEvent", err)
	}
	return event, nil
}
