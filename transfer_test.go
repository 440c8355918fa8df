package bindref

import (
	"testing"

	"go.uber.org/goleak"
)

// The transferable owner may hop goroutines; tags are per goroutine, so a
// window opened by the owner on one goroutine reveals nothing to observers
// polling from another.

func TestOwner_TransferAcrossGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	owner := New(41)
	ref := owner.NewRef()

	handoff := make(chan *Owner[int])
	done := make(chan struct{})

	go func() {
		defer close(done)
		o := <-handoff
		o.Enter(func(v *int) {
			*v++
			if got, ok := ref.Get(); !ok || *got != 42 {
				panic("expected observer access inside the worker's window")
			}
			ref.Release()
		})
		o.Close()
	}()

	handoff <- owner
	<-done

	if _, ok := ref.Get(); ok {
		t.Fatal("Expected absence after the worker closed the owner")
	}
}

func TestRef_WindowIsPerGoroutine(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	owner := New(1)
	ref := owner.NewRef()

	inWindow := make(chan struct{})
	observed := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		owner.Enter(func(*int) {
			close(inWindow)
			<-observed
			ref.Release()
		})
		owner.Close()
	}()

	<-inWindow
	// The worker's window is open, but that grants nothing here.
	if _, ok := ref.Get(); ok {
		t.Error("Expected absence on a goroutine without a window")
	}
	close(observed)
	<-done
}

func TestRef_GetRacesCloseSafely(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	owner := New(1)
	ref := owner.NewRef()

	// Get is total and may poll from any goroutine while the owner closes on
	// another; run it under the race detector.
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-stop:
				return
			default:
				if _, ok := ref.Get(); ok {
					panic("expected absence on a goroutine without a window")
				}
			}
		}
	}()

	owner.Close()
	close(stop)
	<-done

	if _, ok := ref.Get(); ok {
		t.Fatal("Expected absence after close")
	}
}

func TestRef_TravelsBetweenGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	owner := New("shared")
	ref := owner.NewRef()

	carry := make(chan *Ref[string])
	back := make(chan *Ref[string])
	done := make(chan struct{})

	// The ref itself transfers freely; only its usability is gated.
	go func() {
		defer close(done)
		r := <-carry
		if _, ok := r.Get(); ok {
			panic("expected absence on the carrying goroutine")
		}
		back <- r
	}()

	carry <- ref
	returned := <-back
	<-done

	owner.Enter(func(*string) {
		if v, ok := returned.Get(); !ok || *v != "shared" {
			t.Errorf("Expected the returned ref to observe the payload, got (%v, %v)", v, ok)
		}
		returned.Release()
	})
	owner.Close()
}
