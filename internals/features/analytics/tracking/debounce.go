// file: internals/features/analytics/tracking/debounce.go
package tracking

import (
	"sync"
	"time"
)

// SearchDebouncer lapor query setelah user berhenti mengetik selama delay.
// Submit baru selalu membatalkan timer sebelumnya.
type SearchDebouncer struct {
	mu     sync.Mutex
	delay  time.Duration
	timer  *time.Timer
	gen    uint64
	report func(query string)
}

func NewSearchDebouncer(delay time.Duration, report func(query string)) *SearchDebouncer {
	return &SearchDebouncer{delay: delay, report: report}
}

// Submit query dengan panjang (setelah trim) <= 2 cuma membatalkan yang pending.
func (d *SearchDebouncer) Submit(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if trimmedLen(query) <= 2 {
		return
	}

	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		stale := gen != d.gen
		d.mu.Unlock()
		if !stale {
			d.report(query)
		}
	})
}

// Stop batalkan laporan yang masih pending.
func (d *SearchDebouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
