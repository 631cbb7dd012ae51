package monitor

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/axellelanca/linkbundles/internal/logger"
	"github.com/axellelanca/linkbundles/internal/models"
)

// BundleLister is the part of the bundle store the monitor reads.
type BundleLister interface {
	ListAll(ctx context.Context) ([]models.LinkBundle, error)
}

// LinkMonitor periodically checks that the links of every bundle are
// reachable and logs when a link changes state.
type LinkMonitor struct {
	bundles     BundleLister
	interval    time.Duration
	workerCount int
	httpClient  *http.Client

	mu          sync.Mutex
	knownStates map[string]bool // bundle id + link URL -> accessible
}

// NewLinkMonitor creates a monitor running workerCount concurrent checks.
func NewLinkMonitor(bundles BundleLister, interval time.Duration, workerCount int) *LinkMonitor {
	if workerCount < 1 {
		workerCount = 1
	}
	return &LinkMonitor{
		bundles:     bundles,
		interval:    interval,
		workerCount: workerCount,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		knownStates: make(map[string]bool),
	}
}

// Start checks immediately, then on every tick until ctx is cancelled.
func (m *LinkMonitor) Start(ctx context.Context) {
	log := logger.New().WithField("component", "monitor")
	log.Infof("starting link monitor with interval of %v", m.interval)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.CheckOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			log.Info("link monitor stopped")
			return
		case <-ticker.C:
			m.CheckOnce(ctx)
		}
	}
}

// checkJob is one link of one bundle.
type checkJob struct {
	bundleID  string
	vanityURL string
	url       string
}

func (j checkJob) key() string {
	return j.bundleID + "|" + j.url
}

// CheckOnce runs a single pass over all bundles and returns the number of
// links checked.
func (m *LinkMonitor) CheckOnce(ctx context.Context) int {
	log := logger.New().WithField("component", "monitor")

	bundles, err := m.bundles.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("failed to list link bundles")
		return 0
	}

	jobs := make(chan checkJob)
	var wg sync.WaitGroup
	for i := 0; i < m.workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.worker(ctx, jobs)
		}()
	}

	checked := 0
enqueue:
	for _, b := range bundles {
		for _, l := range b.Links {
			if l.URL == "" {
				continue
			}
			select {
			case jobs <- checkJob{bundleID: b.ID, vanityURL: b.VanityURL, url: l.URL}:
				checked++
			case <-ctx.Done():
				break enqueue
			}
		}
	}
	close(jobs)
	wg.Wait()

	log.WithField("links", checked).Debug("link verification completed")
	return checked
}

// worker processes jobs until the channel is closed.
func (m *LinkMonitor) worker(ctx context.Context, jobs <-chan checkJob) {
	for job := range jobs {
		m.record(job, m.isAccessible(ctx, job.url))
	}
}

// record stores the new state and logs transitions.
func (m *LinkMonitor) record(job checkJob, current bool) {
	m.mu.Lock()
	previous, seen := m.knownStates[job.key()]
	m.knownStates[job.key()] = current
	m.mu.Unlock()

	log := logger.New().WithFields(map[string]interface{}{
		"component": "monitor",
		"vanityUrl": job.vanityURL,
		"url":       job.url,
	})
	switch {
	case !seen:
		log.Debugf("initial state: %s", formatState(current))
	case previous != current:
		log.Warnf("link changed from %s to %s", formatState(previous), formatState(current))
	}
}

// State returns the last known state of a link of a bundle.
func (m *LinkMonitor) State(bundleID, url string) (accessible, known bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	accessible, known = m.knownStates[checkJob{bundleID: bundleID, url: url}.key()]
	return accessible, known
}

// isAccessible sends a HEAD request; 2xx and 3xx count as accessible.
func (m *LinkMonitor) isAccessible(ctx context.Context, url string) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	resp, err := m.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 400
}

func formatState(accessible bool) string {
	if accessible {
		return "ACCESSIBLE"
	}
	return "INACCESSIBLE"
}
