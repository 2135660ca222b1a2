package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type fakeRepo struct {
	saved   []*Message
	failErr error
}

func (f *fakeRepo) Create(ctx context.Context, msg *Message) error {
	if f.failErr != nil {
		return f.failErr
	}
	cp := *msg
	f.saved = append(f.saved, &cp)
	return nil
}

type fakeNotifier struct {
	calls   int
	failErr error
}

func (f *fakeNotifier) SendContactNotification(ctx context.Context, studioEmail, name, fromEmail, phone, message string) error {
	f.calls++
	return f.failErr
}

func submitRequest() *SubmitRequest {
	return &SubmitRequest{
		Name:    "Dana",
		Email:   "dana@example.com",
		Phone:   "+7 777 000 11 22",
		Message: "Do you shoot weddings in September?",
	}
}

func TestSubmit(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{}
	svc := NewService(repo, notifier, "studio@example.com")

	resp, err := svc.Submit(context.Background(), submitRequest())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if resp.ID == uuid.Nil {
		t.Fatal("expected message id")
	}
	if !resp.EmailSent {
		t.Fatal("expected email_sent true")
	}
	if len(repo.saved) != 1 {
		t.Fatalf("expected 1 saved message, got %d", len(repo.saved))
	}
	if notifier.calls != 1 {
		t.Fatalf("expected 1 notification, got %d", notifier.calls)
	}
}

func TestSubmit_EmailFailureStillPersists(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{failErr: errors.New("sendgrid down")}
	svc := NewService(repo, notifier, "studio@example.com")

	resp, err := svc.Submit(context.Background(), submitRequest())
	if err != nil {
		t.Fatalf("submit must not fail when only the email fails: %v", err)
	}
	if resp.EmailSent {
		t.Fatal("expected email_sent false")
	}
	if len(repo.saved) != 1 {
		t.Fatalf("message must stay saved, got %d", len(repo.saved))
	}
}

func TestSubmit_RepoFailure(t *testing.T) {
	repo := &fakeRepo{failErr: errors.New("db down")}
	notifier := &fakeNotifier{}
	svc := NewService(repo, notifier, "studio@example.com")

	if _, err := svc.Submit(context.Background(), submitRequest()); err == nil {
		t.Fatal("expected error from repo")
	}
	if notifier.calls != 0 {
		t.Fatalf("notifier must not be called when save fails, got %d calls", notifier.calls)
	}
}

func TestSubmit_NoNotifier(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nil, "")

	resp, err := svc.Submit(context.Background(), submitRequest())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if resp.EmailSent {
		t.Fatal("expected email_sent false without a notifier")
	}
	if len(repo.saved) != 1 {
		t.Fatalf("expected 1 saved message, got %d", len(repo.saved))
	}
}
