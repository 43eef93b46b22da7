package menu

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestPrompterQuantityStopsRetryingOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	var out strings.Builder
	p := NewPrompter(pr, &out)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := p.Quantity(ctx, "Choose an option:")
		done <- err
	}()

	// An invalid answer keeps the prompt in its retry loop.
	if _, err := io.WriteString(pw, "abc\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Quantity kept waiting after cancel")
	}
}

func TestPrompterEndOfInputIsSticky(t *testing.T) {
	p := NewPrompter(strings.NewReader("last"), io.Discard)
	ctx := context.Background()

	got, err := p.Text(ctx, "first:")
	if err != nil || got != "last" {
		t.Fatalf("expected %q, got %q (err=%v)", "last", got, err)
	}
	if _, err := p.Text(ctx, "second:"); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if _, err := p.Amount(ctx, "third:"); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF from Amount, got %v", err)
	}
}

func TestPrompterRetriesUntilValid(t *testing.T) {
	var out strings.Builder
	p := NewPrompter(strings.NewReader("x\n-1\n4,5\n"), &out)

	v, err := p.Amount(context.Background(), "Unit price:")
	if err != nil || v != 4.5 {
		t.Fatalf("expected 4.5, got %v (err=%v)", v, err)
	}
	if n := strings.Count(out.String(), "Invalid number."); n != 2 {
		t.Fatalf("expected 2 retries, got %d:\n%s", n, out.String())
	}
}
