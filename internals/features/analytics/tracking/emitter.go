// file: internals/features/analytics/tracking/emitter.go
package tracking

import (
	"context"
	"log"
	"time"

	"github.com/bytedance/sonic"
)

// Event satu hit analytics.
type Event struct {
	Name      string         `json:"name"`
	SessionID string         `json:"session_id"`
	Timestamp time.Time      `json:"timestamp"`
	Params    map[string]any `json:"params"`
}

// Emitter tujuan event (GA, log, queue...). Implementasi di luar core.
type Emitter interface {
	Emit(ctx context.Context, ev Event) error
}

// LogEmitter tulis event sebagai JSON satu baris ke log standar.
type LogEmitter struct{}

func (LogEmitter) Emit(_ context.Context, ev Event) error {
	payload, err := sonic.Marshal(ev.Params)
	if err != nil {
		return err
	}
	log.Printf("[EVENT] %s session=%s %s", ev.Name, ev.SessionID, payload)
	return nil
}

// NopEmitter buang semua event (TRACKING_ENABLED=false).
type NopEmitter struct{}

func (NopEmitter) Emit(context.Context, Event) error { return nil }
