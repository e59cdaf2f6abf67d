package webhooklog

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"
)

func entry(source string) Entry {
	return Entry{
		Source:     source,
		ReceivedAt: time.Now(),
		Payload:    json.RawMessage(`{}`),
	}
}

func TestLog_RecentNewestFirst(t *testing.T) {
	l := New(10)
	l.Append(entry("a"))
	l.Append(entry("b"))
	l.Append(entry("c"))

	recent := l.Recent()
	if len(recent) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(recent))
	}
	if recent[0].Source != "c" || recent[2].Source != "a" {
		t.Errorf("expected newest first, got %s..%s", recent[0].Source, recent[2].Source)
	}
}

func TestLog_BoundedOverwritesOldest(t *testing.T) {
	l := New(3)
	for i := 0; i < 5; i++ {
		l.Append(entry(fmt.Sprintf("e%d", i)))
	}

	if l.Len() != 3 {
		t.Fatalf("expected capacity 3, got %d", l.Len())
	}

	recent := l.Recent()
	if recent[0].Source != "e4" {
		t.Errorf("expected newest e4, got %s", recent[0].Source)
	}
	if recent[2].Source != "e2" {
		t.Errorf("expected oldest retained e2, got %s", recent[2].Source)
	}
}

func TestLog_EmptyRecent(t *testing.T) {
	l := New(5)
	if got := l.Recent(); len(got) != 0 {
		t.Errorf("expected no entries, got %d", len(got))
	}
}

func TestLog_ConcurrentAppends(t *testing.T) {
	l := New(16)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			l.Append(entry(fmt.Sprintf("g%d", n)))
		}(i)
	}
	wg.Wait()

	if l.Len() != 16 {
		t.Errorf("expected full buffer of 16, got %d", l.Len())
	}
}
