package driver

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest identifies file content in the digest cache.
type Digest [32]byte

func digestOf(data []byte) Digest {
	return Digest(sha256.Sum256(data))
}

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

