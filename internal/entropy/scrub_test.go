package entropy

import (
	"errors"
	"testing"
)

// patternSource fills buffers with a fixed byte so tests can tell a
// scrubbed buffer from a never-written one.
type patternSource struct {
	last []byte
}

func (s *patternSource) Generate(n int) ([]byte, error) {
	s.last = make([]byte, n)
	for i := range s.last {
		s.last[i] = 0xA5
	}
	return s.last, nil
}

// failSource always fails to generate.
type failSource struct{}

func (failSource) Generate(int) ([]byte, error) {
	return nil, ErrNoSecureRandom
}

func assertZeroed(t *testing.T, b []byte) {
	t.Helper()
	for i, v := range b {
		if v != 0 {
			t.Fatalf("buffer byte %d = %#x, want 0", i, v)
		}
	}
}

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	Zero(b)
	assertZeroed(t, b)
}

func TestWithEntropy_ScrubsOnSuccess(t *testing.T) {
	src := &patternSource{}
	err := WithEntropy(src, 32, func(buf []byte) error {
		if len(buf) != 32 {
			t.Errorf("body buffer length = %d, want 32", len(buf))
		}
		if buf[0] != 0xA5 {
			t.Error("body should see the generated bytes")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithEntropy() error: %v", err)
	}
	assertZeroed(t, src.last)
}

func TestWithEntropy_ScrubsOnError(t *testing.T) {
	src := &patternSource{}
	wantErr := errors.New("encode failed")
	err := WithEntropy(src, 16, func([]byte) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("WithEntropy() error = %v, want %v", err, wantErr)
	}
	assertZeroed(t, src.last)
}

func TestWithEntropy_ScrubsOnPanic(t *testing.T) {
	src := &patternSource{}
	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected panic to propagate")
			}
		}()
		_ = WithEntropy(src, 16, func([]byte) error {
			panic("mid-derivation failure")
		})
	}()
	assertZeroed(t, src.last)
}

func TestWithEntropy_GenerateFailure(t *testing.T) {
	called := false
	err := WithEntropy(failSource{}, 16, func([]byte) error {
		called = true
		return nil
	})
	if !errors.Is(err, ErrNoSecureRandom) {
		t.Errorf("WithEntropy() error = %v, want ErrNoSecureRandom", err)
	}
	if called {
		t.Error("body must not run when generation fails")
	}
}
