package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/nutrio-app/progress-engine/internal/core/domain"
)

var _ domain.MetricsSource = (*BackendClient)(nil)

// BackendClient fetches raw metric records from the upstream nutrition
// backend. Degrade rules: a non-2xx status or an undecodable body empties
// that one list; a transport failure on any sub-call empties the whole
// bundle and reports the error. Callers aggregate whatever comes back.
type BackendClient struct {
	baseURL string
	client  *http.Client
}

// NewBackendClient builds a client for the given base URL. A zero timeout
// means no client-side deadline; callers bound individual calls through the
// context where they need to.
func NewBackendClient(baseURL string, timeout time.Duration) *BackendClient {
	return &BackendClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *BackendClient) Fetch(ctx context.Context, username string, r domain.DateRange) (domain.BackendMetrics, error) {
	var (
		metrics  domain.BackendMetrics
		mu       sync.Mutex
		firstErr error
	)

	setErr := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		entries, err := c.FetchCalories(ctx, username, r)
		if err != nil {
			setErr(err)
			return
		}
		metrics.Calories = entries
	}()

	go func() {
		defer wg.Done()
		var entries []domain.WeightEntry
		if err := c.getList(ctx, "/progress/weight", username, r, &entries); err != nil {
			setErr(err)
			return
		}
		metrics.Weights = entries
	}()

	go func() {
		defer wg.Done()
		var entries []domain.WorkoutEntry
		if err := c.getList(ctx, "/progress/workouts", username, r, &entries); err != nil {
			setErr(err)
			return
		}
		metrics.Workouts = entries
	}()

	wg.Wait()

	if firstErr != nil {
		// one transport failure degrades the whole triple, matching the
		// all-or-nothing settle of the sub-calls
		return domain.BackendMetrics{}, firstErr
	}

	return metrics, nil
}

func (c *BackendClient) FetchCalories(ctx context.Context, username string, r domain.DateRange) ([]domain.CalorieEntry, error) {
	var entries []domain.CalorieEntry
	if err := c.getList(ctx, "/progress/calories", username, r, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// getList performs one scoped GET. It only returns an error for transport
// failures; non-2xx and malformed bodies leave the target slice empty.
func (c *BackendClient) getList(ctx context.Context, path, username string, r domain.DateRange, out any) error {
	q := url.Values{}
	q.Set("user", username)
	q.Set("start", r.Start.Format("2006-01-02"))
	q.Set("end", r.End.Format("2006-01-02"))

	endpoint := fmt.Sprintf("%s%s?%s", c.baseURL, path, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[SOURCE] %s returned %d for user %s, treating as empty", path, resp.StatusCode, username)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Printf("[SOURCE] %s returned undecodable body for user %s, treating as empty: %v", path, username, err)
	}

	return nil
}
