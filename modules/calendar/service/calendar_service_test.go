package service

import (
	"context"
	"testing"
	"time"

	"meetbook/core/constants"
	bookingRepo "meetbook/modules/booking/repository"
	eventEntity "meetbook/modules/event/entity"

	"github.com/google/uuid"
)

type fakeCalendarRepo struct {
	rows  []bookingRepo.MeetingDetailRow
	calls int
}

func (f *fakeCalendarRepo) ListMeetingsForUser(ctx context.Context, userID uuid.UUID) ([]bookingRepo.MeetingDetailRow, error) {
	f.calls++
	return f.rows, nil
}

type fakeEventRepo struct {
	rows  []eventEntity.EventWithRegistration
	calls int
}

func (f *fakeEventRepo) Create(ctx context.Context, event *eventEntity.Event) error { return nil }
func (f *fakeEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*eventEntity.Event, error) {
	return nil, nil
}
func (f *fakeEventRepo) ListWithRegistration(ctx context.Context, userID uuid.UUID) ([]eventEntity.EventWithRegistration, error) {
	f.calls++
	return f.rows, nil
}
func (f *fakeEventRepo) Register(ctx context.Context, eventID, userID uuid.UUID) error   { return nil }
func (f *fakeEventRepo) Unregister(ctx context.Context, eventID, userID uuid.UUID) error { return nil }

// memoryCache is a map-backed stand-in for the Redis cache.
type memoryCache struct {
	data map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, ok := c.data[key]
	return v, ok, nil
}
func (c *memoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.data[key] = value
	return nil
}
func (c *memoryCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}
func (c *memoryCache) Close() error { return nil }

func meetingRow(code string, start time.Time) bookingRepo.MeetingDetailRow {
	email := code + "@example.com"
	return bookingRepo.MeetingDetailRow{
		ID:          uuid.New(),
		Code:        code,
		SlotID:      uuid.New(),
		SlotStart:   start,
		SlotEnd:     start.Add(time.Hour),
		HostID:      uuid.New(),
		HostEmail:   "host-" + email,
		ClientID:    uuid.New(),
		ClientEmail: "client-" + email,
	}
}

func eventRow(title string, registered bool) eventEntity.EventWithRegistration {
	ev := eventEntity.EventWithRegistration{IsRegistered: registered}
	ev.ID = uuid.New()
	ev.HostID = uuid.New()
	ev.Title = title
	ev.Slug = title
	ev.EventDate = time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	return ev
}

func TestGetCalendarAssemblesMeetingsAndEvents(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	repo := &fakeCalendarRepo{rows: []bookingRepo.MeetingDetailRow{
		meetingRow("alpha", base),
		meetingRow("beta", base.Add(2*time.Hour)),
	}}
	events := &fakeEventRepo{rows: []eventEntity.EventWithRegistration{
		eventRow("launch-party", true),
		eventRow("meetup", false),
	}}
	svc := NewCalendarService(repo, events, nil)

	resp, appErr := svc.GetCalendar(context.Background(), uuid.New())
	if appErr != nil {
		t.Fatalf("GetCalendar: %v", appErr)
	}
	if len(resp.Meetings) != 2 {
		t.Fatalf("meetings = %d, want 2", len(resp.Meetings))
	}
	if resp.Meetings[0].Code != "alpha" || resp.Meetings[1].Code != "beta" {
		t.Errorf("meeting order = %s, %s", resp.Meetings[0].Code, resp.Meetings[1].Code)
	}
	if resp.Meetings[0].Host.Photo != constants.DefaultUserPhoto {
		t.Errorf("host photo = %s, want default placeholder", resp.Meetings[0].Host.Photo)
	}
	if len(resp.Events) != 2 {
		t.Fatalf("events = %d, want 2", len(resp.Events))
	}
	if !resp.Events[0].IsRegistered || resp.Events[1].IsRegistered {
		t.Error("is_registered flags not carried through")
	}
}

func TestGetCalendarIsIdempotent(t *testing.T) {
	repo := &fakeCalendarRepo{rows: []bookingRepo.MeetingDetailRow{
		meetingRow("alpha", time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)),
	}}
	events := &fakeEventRepo{}
	svc := NewCalendarService(repo, events, nil)
	userID := uuid.New()

	first, appErr := svc.GetCalendar(context.Background(), userID)
	if appErr != nil {
		t.Fatalf("first read: %v", appErr)
	}
	second, appErr := svc.GetCalendar(context.Background(), userID)
	if appErr != nil {
		t.Fatalf("second read: %v", appErr)
	}
	if len(first.Meetings) != len(second.Meetings) || first.Meetings[0].ID != second.Meetings[0].ID {
		t.Error("repeated reads disagree")
	}
}

func TestGetCalendarServesFromCache(t *testing.T) {
	repo := &fakeCalendarRepo{rows: []bookingRepo.MeetingDetailRow{
		meetingRow("alpha", time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)),
	}}
	events := &fakeEventRepo{}
	cache := newMemoryCache()
	svc := NewCalendarService(repo, events, cache)
	userID := uuid.New()

	if _, appErr := svc.GetCalendar(context.Background(), userID); appErr != nil {
		t.Fatalf("first read: %v", appErr)
	}
	if _, appErr := svc.GetCalendar(context.Background(), userID); appErr != nil {
		t.Fatalf("second read: %v", appErr)
	}
	if repo.calls != 1 {
		t.Errorf("repository calls = %d, want 1 (second read cached)", repo.calls)
	}

	// Invalidation forces the next read back to storage.
	if err := cache.Delete(context.Background(), CacheKey(userID)); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, appErr := svc.GetCalendar(context.Background(), userID); appErr != nil {
		t.Fatalf("third read: %v", appErr)
	}
	if repo.calls != 2 {
		t.Errorf("repository calls = %d, want 2 after invalidation", repo.calls)
	}
}
