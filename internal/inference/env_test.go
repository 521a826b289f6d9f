package inference

import (
	"errors"
	"testing"
)

func fakeEnvironment(alreadyInitialized bool) (*environment, *int, *int) {
	inits := 0
	destroys := 0
	e := &environment{
		initialize:  func() error { inits++; return nil },
		destroy:     func() error { destroys++; return nil },
		initialized: func() bool { return alreadyInitialized },
	}
	return e, &inits, &destroys
}

func TestEnvironment_SharedAcrossSessions(t *testing.T) {
	e, inits, destroys := fakeEnvironment(false)

	if err := e.acquire(); err != nil {
		t.Fatalf("first acquire failed: %v", err)
	}
	if err := e.acquire(); err != nil {
		t.Fatalf("second acquire failed: %v", err)
	}
	if *inits != 1 {
		t.Errorf("initialize called %d times, want 1", *inits)
	}

	// Closing one session must not tear the environment down under the
	// other.
	if err := e.release(); err != nil {
		t.Fatalf("release failed: %v", err)
	}
	if *destroys != 0 {
		t.Errorf("destroy called with a session still open")
	}

	if err := e.release(); err != nil {
		t.Fatalf("final release failed: %v", err)
	}
	if *destroys != 1 {
		t.Errorf("destroy called %d times after last release, want 1", *destroys)
	}

	// Extra release is a no-op.
	if err := e.release(); err != nil {
		t.Fatalf("extra release failed: %v", err)
	}
	if *destroys != 1 {
		t.Errorf("destroy called %d times after extra release, want 1", *destroys)
	}
}

func TestEnvironment_Reinitializes(t *testing.T) {
	e, inits, destroys := fakeEnvironment(false)

	if err := e.acquire(); err != nil {
		t.Fatal(err)
	}
	if err := e.release(); err != nil {
		t.Fatal(err)
	}
	if err := e.acquire(); err != nil {
		t.Fatal(err)
	}
	if err := e.release(); err != nil {
		t.Fatal(err)
	}

	if *inits != 2 || *destroys != 2 {
		t.Errorf("inits=%d destroys=%d, want 2/2", *inits, *destroys)
	}
}

func TestEnvironment_ExternallyInitialized(t *testing.T) {
	e, inits, destroys := fakeEnvironment(true)

	if err := e.acquire(); err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	if err := e.release(); err != nil {
		t.Fatalf("release failed: %v", err)
	}

	// An environment someone else set up is neither re-initialized nor
	// destroyed.
	if *inits != 0 {
		t.Errorf("initialize called %d times, want 0", *inits)
	}
	if *destroys != 0 {
		t.Errorf("destroy called %d times, want 0", *destroys)
	}
}

func TestEnvironment_InitFailure(t *testing.T) {
	initErr := errors.New("no shared library")
	calls := 0
	e := &environment{
		initialize:  func() error { calls++; return initErr },
		destroy:     func() error { return nil },
		initialized: func() bool { return false },
	}

	if err := e.acquire(); !errors.Is(err, initErr) {
		t.Fatalf("acquire error = %v, want wrapped %v", err, initErr)
	}

	// A failed acquire holds no reference; the next one retries.
	if err := e.acquire(); !errors.Is(err, initErr) {
		t.Fatalf("second acquire error = %v, want wrapped %v", err, initErr)
	}
	if calls != 2 {
		t.Errorf("initialize called %d times, want 2", calls)
	}
}
