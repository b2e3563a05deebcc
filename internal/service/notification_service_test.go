package service

import (
	"context"
	"testing"
	"time"

	"estate-backoffice/internal/models"
)

type fakeNotificationRepo struct {
	notifications []models.Notification
	purged        time.Time
}

func (f *fakeNotificationRepo) Create(n *models.Notification) error {
	n.ID = uint(len(f.notifications) + 1)
	f.notifications = append(f.notifications, *n)
	return nil
}

func (f *fakeNotificationRepo) GetForUser(userID uint, offset, limit int, unreadOnly bool) ([]models.Notification, int64, error) {
	var out []models.Notification
	for _, n := range f.notifications {
		if n.UserID == userID && (!unreadOnly || !n.Read) {
			out = append(out, n)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeNotificationRepo) UnreadCount(userID uint) (int64, error) {
	var count int64
	for _, n := range f.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) MarkRead(id, userID uint) error {
	for i := range f.notifications {
		if f.notifications[i].ID == id && f.notifications[i].UserID == userID {
			f.notifications[i].Read = true
		}
	}
	return nil
}

func (f *fakeNotificationRepo) MarkAllRead(userID uint) error {
	for i := range f.notifications {
		if f.notifications[i].UserID == userID {
			f.notifications[i].Read = true
		}
	}
	return nil
}

func (f *fakeNotificationRepo) DeleteReadBefore(cutoff time.Time) (int64, error) {
	f.purged = cutoff
	return 2, nil
}

func TestNotifyPublishesUnreadCountWithEvent(t *testing.T) {
	repo := &fakeNotificationRepo{}
	bus := NewEvents()
	svc := NewNotificationService(repo, bus)

	var events []Event
	bus.Subscribe(func(e Event) { events = append(events, e) })

	if _, err := svc.Notify(5, "participant_invited", "New participant", "Someone was invited"); err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	if _, err := svc.Notify(5, "brochure_generated", "Brochure ready", "PDF available"); err != nil {
		t.Fatalf("notify failed: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	last := events[1]
	if last.Type != EventNotificationCreated || last.UserID != 5 {
		t.Fatalf("unexpected event: %+v", last)
	}
	if got := last.Payload["unread_count"]; got != int64(2) {
		t.Fatalf("expected unread_count 2 in payload, got %v", got)
	}
}

func TestMarkReadScopesToOwner(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, NewEvents())

	created, err := svc.Notify(5, "test", "Title", "Message")
	if err != nil {
		t.Fatalf("notify failed: %v", err)
	}

	if err := svc.MarkRead(created.ID, 99); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	if count, _ := svc.UnreadCount(5); count != 1 {
		t.Fatalf("another user's mark-read must not apply, unread=%d", count)
	}

	if err := svc.MarkRead(created.ID, 5); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	if count, _ := svc.UnreadCount(5); count != 0 {
		t.Fatalf("expected zero unread after owner mark-read, got %d", count)
	}
}

func TestPurgeReadUsesRetentionCutoff(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, NewEvents())

	removed, err := svc.PurgeRead(context.Background(), 90*24*time.Hour)
	if err != nil {
		t.Fatalf("purge failed: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected repo result to pass through, got %d", removed)
	}

	expected := time.Now().UTC().Add(-90 * 24 * time.Hour)
	if diff := repo.purged.Sub(expected); diff < -time.Minute || diff > time.Minute {
		t.Fatalf("cutoff %v not near expected %v", repo.purged, expected)
	}
}
