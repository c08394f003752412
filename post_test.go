package postlist

import (
	"testing"
	"time"
)

// TestNewPostDefaults tests that NewPost() returns a Post with:
// - the given ID, user ID and creation date,
// - empty title and content,
// - approved set to false.
func TestNewPostDefaults(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	p := NewPost(7, 3, createdAt)

	if p == nil {
		t.Fatalf("NewPost() returned nil")
	}

	if got := p.ID(); got != 7 {
		t.Errorf("NewPost() ID = %d, want %d", got, 7)
	}

	if got := p.UserID(); got != 3 {
		t.Errorf("NewPost() UserID = %d, want %d", got, 3)
	}

	if got := p.CreatedAt(); !got.Equal(createdAt) {
		t.Errorf("NewPost() CreatedAt = %v, want %v", got, createdAt)
	}

	if got := p.Title(); got != "" {
		t.Errorf("NewPost() Title = %q, want empty", got)
	}

	if got := p.Content(); got != "" {
		t.Errorf("NewPost() Content = %q, want empty", got)
	}

	if p.IsApproved() {
		t.Errorf("NewPost() IsApproved() = true, want false")
	}
}

func TestNewPostZeroCreatedAtUsesNow(t *testing.T) {
	before := time.Now().Add(-time.Second)
	p := NewPost(1, 1, time.Time{})
	after := time.Now().Add(time.Second)

	if p.CreatedAt().IsZero() {
		t.Fatalf("NewPost() with zero time must set CreatedAt")
	}

	if p.CreatedAt().Before(before) || p.CreatedAt().After(after) {
		t.Errorf("NewPost() CreatedAt = %v, want between %v and %v", p.CreatedAt(), before, after)
	}
}

func TestPostSetters(t *testing.T) {
	p := NewPost(1, 1, time.Now()).
		SetTitle("Java Basics").
		SetContent("Learn Java fundamentals").
		SetApproved(true)

	if got := p.Title(); got != "Java Basics" {
		t.Errorf("Title() = %q, want %q", got, "Java Basics")
	}

	if got := p.Content(); got != "Learn Java fundamentals" {
		t.Errorf("Content() = %q, want %q", got, "Learn Java fundamentals")
	}

	if !p.Approved() || !p.IsApproved() {
		t.Errorf("Approved() = false, want true")
	}

	p.SetApproved(false)
	if p.IsApproved() {
		t.Errorf("IsApproved() = true after SetApproved(false)")
	}
}

func TestPostSlugAndCreatedAtCarbon(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	p := NewPost(1, 1, createdAt).SetTitle("Hello World Post")

	if got := p.Slug(); got == "" {
		t.Errorf("Slug() must not be empty")
	}

	if got := p.CreatedAtCarbon().StdTime(); !got.Equal(createdAt) {
		t.Errorf("CreatedAtCarbon() = %v, want %v", got, createdAt)
	}
}
