package kafka

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/retail-core/internal/domain"
	"github.com/DRSN-tech/retail-core/internal/usecase"
	"github.com/DRSN-tech/retail-core/pkg/jitter"
	"github.com/DRSN-tech/retail-core/pkg/logger"
	"github.com/segmentio/kafka-go"
)

var _ usecase.SaleObserver = (*SaleEventWorker)(nil)

type saleWriter interface {
	WriteSaleEvent(ctx context.Context, sale domain.Sale) error
}

// SaleEventWorker получает продажи от хранилища и публикует их в фоне.
// Хранилище не ждёт Kafka: при переполнении очереди событие отбрасывается с предупреждением.
type SaleEventWorker struct {
	producer   saleWriter
	logger     logger.Logger
	queue      chan domain.Sale
	backoff    *jitter.Backoff
	maxRetries int
	stop       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

func NewSaleEventWorker(
	producer saleWriter,
	logger logger.Logger,
	queueSize int,
	maxRetries int,
	backoff *jitter.Backoff,
) *SaleEventWorker {
	if queueSize < 1 {
		queueSize = 1
	}
	if backoff == nil {
		backoff = jitter.NewBackoff(200*time.Millisecond, 10*time.Second, jitter.DefaultJitter)
	}

	return &SaleEventWorker{
		producer:   producer,
		logger:     logger,
		queue:      make(chan domain.Sale, queueSize),
		backoff:    backoff,
		maxRetries: maxRetries,
		stop:       make(chan struct{}),
	}
}

// SaleRecorded ставит продажу в очередь на публикацию. Не блокирует.
func (w *SaleEventWorker) SaleRecorded(sale domain.Sale) {
	select {
	case w.queue <- sale:
	default:
		w.logger.Warnf("sale event queue is full, dropping event for %s", sale.InvoiceNumber)
	}
}

func (w *SaleEventWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.run(ctx)
	}()
}

// Stop останавливает воркер, дав ему опубликовать то, что уже в очереди.
// Ожидание ограничено ctx.
func (w *SaleEventWorker) Stop(ctx context.Context) error {
	w.stopOnce.Do(func() { close(w.stop) })

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *SaleEventWorker) run(ctx context.Context) {
	for {
		select {
		case sale := <-w.queue:
			w.publish(ctx, sale)
		case <-w.stop:
			w.drain(ctx)
			w.logger.Infof("sale event worker stopped")
			return
		case <-ctx.Done():
			w.logger.Infof("sale event worker stopped by context cancellation")
			return
		}
	}
}

func (w *SaleEventWorker) drain(ctx context.Context) {
	for {
		select {
		case sale := <-w.queue:
			w.publish(ctx, sale)
		default:
			return
		}
	}
}

func (w *SaleEventWorker) publish(ctx context.Context, sale domain.Sale) {
	for attempt := 0; ; attempt++ {
		err := w.producer.WriteSaleEvent(ctx, sale)
		if err == nil {
			w.logger.Debugf("sale event published: %s", sale.InvoiceNumber)
			return
		}

		if !isRetryableError(err) || attempt >= w.maxRetries {
			w.logger.Errorf(err, "sale event for %s dropped after %d attempt(s)", sale.InvoiceNumber, attempt+1)
			return
		}

		delay := w.backoff.Next(attempt)
		w.logger.Warnf("temporary kafka failure for %s, retry in %s: %v", sale.InvoiceNumber, delay, err)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return
		}
	}
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var kerr kafka.Error
	if errors.As(err, &kerr) {
		return kerr.Temporary()
	}

	errStr := strings.ToLower(err.Error())
	retryablePhrases := []string{
		"connection refused",
		"i/o timeout",
		"network is unreachable",
		"broker not available",
		"connection reset",
		"broken pipe",
		"no such host",
	}
	for _, phrase := range retryablePhrases {
		if strings.Contains(errStr, phrase) {
			return true
		}
	}
	return false
}
