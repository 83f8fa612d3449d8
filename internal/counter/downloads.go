package counter

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/zehraz1/portfolio/internal/log"
	"github.com/zehraz1/portfolio/internal/pubsub"
)

// Downloads is the simulated download counter. Each Download adds a random
// 1..3 and broadcasts the new total.
type Downloads struct {
	store  Store
	broker *pubsub.Broker[int64]
	// Rand returns a value in [0, n). Tests replace it.
	Rand func(n int) int
}

// NewDownloads creates the service over store.
func NewDownloads(store Store) *Downloads {
	return &Downloads{
		store:  store,
		broker: pubsub.NewBroker[int64](),
		Rand:   rand.IntN,
	}
}

// Count returns the current total.
func (d *Downloads) Count(ctx context.Context) (int64, error) {
	return d.store.Get(ctx, DownloadsKey)
}

// Download records one simulated download and returns the new total.
func (d *Downloads) Download(ctx context.Context) (int64, error) {
	delta := int64(1 + d.Rand(3))
	total, err := d.store.Add(ctx, DownloadsKey, delta)
	if err != nil {
		return 0, fmt.Errorf("recording download: %w", err)
	}
	log.Info(log.CatCounter, "download", "delta", delta, "total", total)
	d.broker.Publish(pubsub.UpdatedEvent, total)
	return total, nil
}

// Subscribe delivers every new total until ctx is cancelled.
func (d *Downloads) Subscribe(ctx context.Context) <-chan pubsub.Event[int64] {
	return d.broker.Subscribe(ctx)
}

// Broker exposes the update broker for tea listeners.
func (d *Downloads) Broker() *pubsub.Broker[int64] { return d.broker }

// Close stops broadcasting and closes the store.
func (d *Downloads) Close() error {
	d.broker.Close()
	return d.store.Close()
}

// FormatCompact renders n the way marketplace badges do: 1.2M+, 3.4K+, 999.
func FormatCompact(n int64) string {
	switch {
	case n >= 1_000_000:
		return oneDecimal(float64(n)/1_000_000) + "M+"
	case n >= 1_000:
		return oneDecimal(float64(n)/1_000) + "K+"
	default:
		return strconv.FormatInt(n, 10)
	}
}

func oneDecimal(f float64) string {
	return strings.TrimSuffix(strconv.FormatFloat(f, 'f', 1, 64), ".0")
}
