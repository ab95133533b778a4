package models

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// contentDigest хеширует поля контента через SHA256 и возвращает hex строку.
// Каждое поле записывается с длиной-префиксом, чтобы сериализация была
// однозначной: ("ab","c") и ("a","bc") дают разные дайджесты.
func contentDigest(fields ...string) string {
	h := sha256.New()

	var lenBuf [8]byte
	for _, field := range fields {
		binary.BigEndian.PutUint64(lenBuf[:], uint64(len(field)))
		h.Write(lenBuf[:])
		h.Write([]byte(field))
	}

	return hex.EncodeToString(h.Sum(nil))
}
