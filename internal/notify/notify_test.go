package notify

import (
	"sync"
	"testing"
)

func TestNotifierDelivery(t *testing.T) {
	n := New()
	defer n.Close()

	var got []PlayerNotification
	n.Subscribe(func(note PlayerNotification) { got = append(got, note) })

	ready := ImeReady{Purpose: PurposePassword, CursorArea: ImeCursorArea{X: 1, Y: 2, Width: 3, Height: 4}}
	n.Notify(ready)
	n.Notify(ImeNotReady{})

	if len(got) != 2 {
		t.Fatalf("got %d notifications, want 2", len(got))
	}
	if got[0] != PlayerNotification(ready) {
		t.Errorf("first = %#v, want %#v", got[0], ready)
	}
	if _, ok := got[1].(ImeNotReady); !ok {
		t.Errorf("second = %T, want ImeNotReady", got[1])
	}
}

func TestNotifierOrderAndUnsubscribe(t *testing.T) {
	n := New()
	defer n.Close()

	var order []int
	n.Subscribe(func(PlayerNotification) { order = append(order, 1) })
	sub := n.Subscribe(func(PlayerNotification) { order = append(order, 2) })
	n.Subscribe(func(PlayerNotification) { order = append(order, 3) })

	n.Notify(ImeNotReady{})
	sub.Unsubscribe()
	sub.Unsubscribe()
	n.Notify(ImeNotReady{})

	want := []int{1, 2, 3, 1, 3}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestNotifierAsync(t *testing.T) {
	n := New(WithAsync(4))

	var mu sync.Mutex
	var count int
	n.Subscribe(func(PlayerNotification) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	for i := 0; i < 10; i++ {
		n.Notify(ImePurposeUpdated{Purpose: PurposeStandard})
	}
	n.Close()

	mu.Lock()
	defer mu.Unlock()
	if count != 10 {
		t.Errorf("delivered %d, want 10", count)
	}
}

func TestNotifierClosed(t *testing.T) {
	n := New()
	called := false
	n.Subscribe(func(PlayerNotification) { called = true })
	n.Close()
	n.Close()
	n.Notify(ImeNotReady{})
	if called {
		t.Error("Notify after Close should be a no-op")
	}
}

func TestImeNotificationSet(t *testing.T) {
	notes := []ImeNotification{
		ImeReady{},
		ImePurposeUpdated{},
		ImeCursorAreaUpdated{},
		ImeNotReady{},
	}
	for _, note := range notes {
		if Describe(note) == "<nil>" {
			t.Errorf("Describe(%T) not handled", note)
		}
	}
	if PurposePassword.String() != "password" || PurposeStandard.String() != "standard" {
		t.Error("unexpected purpose names")
	}
}
