package service

import (
	"errors"
	"testing"

	"github.com/iWEX-Infomatics/iWebsite/internal/core"
)

func TestSubscribe_InvalidEmail(t *testing.T) {
	for _, email := range []string{"", "   ", "not-an-email", "a@"} {
		repo := newFakeNewsletterRepo()
		svc := NewNewsletterService(repo)

		err := svc.Subscribe(email)

		var verr *core.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Subscribe(%q): expected ValidationError, got %v", email, err)
		}
		if verr.Reason != "Invalid email address" {
			t.Errorf("Subscribe(%q): message = %q", email, verr.Reason)
		}
		if len(repo.members[NewsletterGroup]) != 0 {
			t.Errorf("Subscribe(%q): no member should be created", email)
		}
	}
}

func TestSubscribe_CreatesGroupAndMember(t *testing.T) {
	repo := newFakeNewsletterRepo()
	svc := NewNewsletterService(repo)

	if err := svc.Subscribe("a@b.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.groups[NewsletterGroup] {
		t.Error("Newsletter group should have been created lazily")
	}
	members := repo.members[NewsletterGroup]
	if len(members) != 1 || members[0] != "a@b.com" {
		t.Errorf("members = %v; want exactly [a@b.com]", members)
	}
}

func TestSubscribe_DuplicateRejected(t *testing.T) {
	repo := newFakeNewsletterRepo()
	svc := NewNewsletterService(repo)

	if err := svc.Subscribe("a@b.com"); err != nil {
		t.Fatalf("first subscribe failed: %v", err)
	}

	err := svc.Subscribe("a@b.com")
	var verr *core.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError on duplicate, got %v", err)
	}
	if verr.Reason != "You are already subscribed to our newsletter" {
		t.Errorf("message = %q", verr.Reason)
	}
	if len(repo.members[NewsletterGroup]) != 1 {
		t.Errorf("duplicate must not add a member, got %d", len(repo.members[NewsletterGroup]))
	}
}

func TestSubscribe_DistinctEmails(t *testing.T) {
	repo := newFakeNewsletterRepo()
	svc := NewNewsletterService(repo)

	for _, email := range []string{"a@b.com", "c@d.com"} {
		if err := svc.Subscribe(email); err != nil {
			t.Fatalf("Subscribe(%q) failed: %v", email, err)
		}
	}
	if len(repo.members[NewsletterGroup]) != 2 {
		t.Errorf("got %d members; want 2", len(repo.members[NewsletterGroup]))
	}
}

func TestSubscribe_StoreErrorPropagates(t *testing.T) {
	repo := newFakeNewsletterRepo()
	repo.err = errors.New("db down")
	svc := NewNewsletterService(repo)

	err := svc.Subscribe("a@b.com")
	if err == nil {
		t.Fatal("expected error")
	}
	var verr *core.ValidationError
	if errors.As(err, &verr) {
		t.Error("infrastructure failure must not be a ValidationError")
	}
}
