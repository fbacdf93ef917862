package gcalendar

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API as a read-only busy-time source.
// The scheduler treats calendar events as additional occupied intervals
// during conflict detection and slot search.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a Service
// Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw Service
// Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListEvents returns the events within [TimeMin, TimeMax], recurring events
// expanded to single instances.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	call := c.service.Events.List(calendarID).
		ShowDeleted(false).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339)).
		Context(ctx)
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	items, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(items.Items))
	for _, item := range items.Items {
		ev, err := fromAPIEvent(item)
		if err != nil {
			continue // skip events with unparseable times
		}
		events = append(events, ev)
	}
	return events, nil
}

func fromAPIEvent(item *calendar.Event) (Event, error) {
	ev := Event{ID: item.Id, Summary: item.Summary}

	start, end := item.Start, item.End
	if start == nil || end == nil {
		return Event{}, fmt.Errorf("event %s has no time bounds", item.Id)
	}

	if start.DateTime != "" {
		s, err := time.Parse(time.RFC3339, start.DateTime)
		if err != nil {
			return Event{}, err
		}
		e, err := time.Parse(time.RFC3339, end.DateTime)
		if err != nil {
			return Event{}, err
		}
		ev.StartTime, ev.EndTime = s, e
		return ev, nil
	}

	// all-day events carry only a date
	s, err := time.Parse("2006-01-02", start.Date)
	if err != nil {
		return Event{}, err
	}
	e, err := time.Parse("2006-01-02", end.Date)
	if err != nil {
		return Event{}, err
	}
	ev.StartTime, ev.EndTime, ev.AllDay = s, e, true
	return ev, nil
}
