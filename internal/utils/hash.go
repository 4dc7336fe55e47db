package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HMACSigner computes keyed HMAC-SHA256 signatures, reusing hash instances
// through a sync.Pool. It is safe for concurrent use.
type HMACSigner struct {
	pool sync.Pool
}

// NewHMACSigner returns a signer keyed with key.
//
// Example usage:
//
//	signer := utils.NewHMACSigner("my-secret-key")
//	signature := signer.SignHex(body)
func NewHMACSigner(key string) *HMACSigner {
	return &HMACSigner{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, []byte(key))
			},
		},
	}
}

// Sign returns the raw HMAC-SHA256 digest of data.
func (s *HMACSigner) Sign(data []byte) []byte {
	h := s.pool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	s.pool.Put(h)

	return sum
}

// SignHex returns the hex encoded HMAC-SHA256 digest of data.
func (s *HMACSigner) SignHex(data []byte) string {
	return hex.EncodeToString(s.Sign(data))
}

// VerifyHex reports whether signature is the hex encoded digest of data.
func (s *HMACSigner) VerifyHex(data []byte, signature string) bool {
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	return hmac.Equal(expected, s.Sign(data))
}
