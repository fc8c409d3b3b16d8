package entropy

// zeroFunc does the actual overwrite. The indirection through a
// function variable keeps the compiler from proving the writes are dead
// stores and eliding them.
var zeroFunc = func(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Zero overwrites b with zero bytes. Every buffer that held entropy or
// other secret material must pass through here once it is no longer
// needed; the garbage collector gives no such guarantee.
func Zero(b []byte) {
	zeroFunc(b)
}

// WithEntropy generates n random bytes from src, hands them to body,
// and zeroes the buffer on every exit path from body — normal return,
// error or panic — before control returns to the caller. The buffer
// must not be retained past body.
func WithEntropy(src Source, n int, body func(buf []byte) error) error {
	buf, err := src.Generate(n)
	if err != nil {
		return err
	}
	defer Zero(buf)
	return body(buf)
}
