package mnemonic

import "crypto/sha256"

// DigestProvider computes the checksum digest over entropy. It is
// injected so tests can substitute a failing or recording provider.
//
// BIP-39 interoperability depends on the digest being exactly SHA-256;
// production code always uses the SHA256 provider.
type DigestProvider interface {
	Sum(b []byte) ([sha256.Size]byte, error)
}

// SHA256 is the production DigestProvider. Pure and stateless.
type SHA256 struct{}

// Sum returns the SHA-256 digest of b.
func (SHA256) Sum(b []byte) ([sha256.Size]byte, error) {
	return sha256.Sum256(b), nil
}
