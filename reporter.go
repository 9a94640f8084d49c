package qlife

import "sync"

// Progress is one search status report: the generation just completed,
// the best fitness seen so far, and a copy of the rule that earned it.
type Progress struct {
	Generation  int
	BestFitness float64
	Best        Params
}

/*
Reporter distributes search progress to any number of subscribers and
keeps the latest report for pollers. Sends never block: a subscriber
that stops draining its channel loses reports rather than stalling the
search.
*/
type Reporter struct {
	mu sync.RWMutex

	subscribers map[string]chan Progress
	latest      Progress

	// Delivery counters, mostly useful in tests.
	Sent    int64
	Dropped int64
}

const reporterQueueSize = 16

// NewReporter returns a hub with no subscribers.
func NewReporter() *Reporter {
	return &Reporter{subscribers: make(map[string]chan Progress)}
}

// Subscribe registers a named subscriber and returns its channel.
// Subscribing an existing name replaces the old channel.
func (r *Reporter) Subscribe(id string) <-chan Progress {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch := make(chan Progress, reporterQueueSize)
	r.subscribers[id] = ch
	return ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (r *Reporter) Unsubscribe(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ch, ok := r.subscribers[id]; ok {
		close(ch)
		delete(r.subscribers, id)
	}
}

// Publish records the report for pollers and fans it out to every
// subscriber whose queue has room.
func (r *Reporter) Publish(p Progress) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.latest = p
	for _, ch := range r.subscribers {
		select {
		case ch <- p:
			r.Sent++
		default:
			r.Dropped++
		}
	}
}

// Latest returns the most recent report.
func (r *Reporter) Latest() Progress {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.latest
}
