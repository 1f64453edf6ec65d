package upvote

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestUpvoteOptimisticSuccess(t *testing.T) {
	tr := NewTracker()
	id := uuid.New()

	shown, err := tr.Upvote(context.Background(), id, 4, func(ctx context.Context, observed int) error {
		if observed != 4 {
			t.Fatalf("write saw observed %d, want 4", observed)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("upvote: %v", err)
	}
	if shown != 5 {
		t.Fatalf("shown = %d, want 5", shown)
	}
	if got := tr.Displayed(id, 4); got != 5 {
		t.Fatalf("displayed = %d, want 5", got)
	}
}

func TestUpvoteRollbackOnWriteFailure(t *testing.T) {
	tr := NewTracker()
	id := uuid.New()

	observedDuringWrite := -1
	_, err := tr.Upvote(context.Background(), id, 7, func(ctx context.Context, observed int) error {
		observedDuringWrite = tr.Displayed(id, 7)
		return errors.New("store down")
	})
	if err == nil {
		t.Fatal("expected write error")
	}
	if observedDuringWrite != 8 {
		t.Fatalf("display during pending write = %d, want 8", observedDuringWrite)
	}
	if got := tr.Displayed(id, 7); got != 7 {
		t.Fatalf("display after failed write = %d, want pre-click 7", got)
	}
}

func TestUpvoteChainedClicks(t *testing.T) {
	tr := NewTracker()
	id := uuid.New()

	for want := 1; want <= 3; want++ {
		shown, err := tr.Upvote(context.Background(), id, 0, func(ctx context.Context, observed int) error {
			return nil
		})
		if err != nil {
			t.Fatalf("click %d: %v", want, err)
		}
		if shown != want {
			t.Fatalf("click %d shown = %d", want, shown)
		}
	}
	if got := tr.Displayed(id, 0); got != 3 {
		t.Fatalf("displayed = %d, want 3", got)
	}
}

func TestUpvoteRollbackKeepsEarlierClicks(t *testing.T) {
	tr := NewTracker()
	id := uuid.New()

	if _, err := tr.Upvote(context.Background(), id, 2, func(context.Context, int) error { return nil }); err != nil {
		t.Fatalf("first click: %v", err)
	}
	_, err := tr.Upvote(context.Background(), id, 2, func(context.Context, int) error {
		return errors.New("write rejected")
	})
	if err == nil {
		t.Fatal("expected write error")
	}
	if got := tr.Displayed(id, 2); got != 3 {
		t.Fatalf("displayed = %d, want 3 from the committed click", got)
	}
}

func TestResetDropsOverrides(t *testing.T) {
	tr := NewTracker()
	id := uuid.New()

	if _, err := tr.Upvote(context.Background(), id, 9, func(context.Context, int) error { return nil }); err != nil {
		t.Fatalf("upvote: %v", err)
	}
	tr.Reset()
	if got := tr.Displayed(id, 9); got != 9 {
		t.Fatalf("displayed after reset = %d, want server count 9", got)
	}
}
