package lcus

import "bytes"

// fakeTransport is an in-memory relay module good enough for driving the
// Controller: it records every write and feeds back canned status replies,
// one per 0xFF query, in order. A Read with nothing pending behaves like
// an expired read timeout (0, nil), matching the real transport.
type fakeTransport struct {
	writes   [][]byte // every Write, verbatim
	replies  [][]byte // queued status replies, consumed per 0xFF query
	pending  []byte   // bytes waiting to be Read
	chunk    int      // max bytes returned per Read; 0 means unlimited
	writeErr error
	closed   bool
}

func (f *fakeTransport) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	f.writes = append(f.writes, append([]byte(nil), p...))
	if len(p) == 1 && p[0] == statusQuery && len(f.replies) > 0 {
		f.pending = append(f.pending, f.replies[0]...)
		f.replies = f.replies[1:]
	}
	return len(p), nil
}

func (f *fakeTransport) Read(p []byte) (int, error) {
	if len(f.pending) == 0 {
		return 0, nil
	}
	limit := len(p)
	if f.chunk > 0 && f.chunk < limit {
		limit = f.chunk
	}
	n := copy(p[:limit], f.pending)
	f.pending = f.pending[n:]
	return n, nil
}

func (f *fakeTransport) Close() error {
	f.closed = true
	return nil
}

// frames returns the subset of writes that are 4-byte command frames.
func (f *fakeTransport) frames() [][]byte {
	var out [][]byte
	for _, w := range f.writes {
		if len(w) == 4 && w[0] == frameStart {
			out = append(out, w)
		}
	}
	return out
}

// queries counts the 0xFF status requests written so far.
func (f *fakeTransport) queries() int {
	count := 0
	for _, w := range f.writes {
		if bytes.Equal(w, []byte{statusQuery}) {
			count++
		}
	}
	return count
}
