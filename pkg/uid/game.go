package uid

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"io"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	// source is swapped in tests
	source   io.Reader = rand.Reader
	fallback atomic.Uint64
)

func generate(size int) string {
	bytes := make([]byte, size)
	if _, err := io.ReadFull(source, bytes); err != nil {
		log.Error().Str("component", "uid").Err(err).Msg("random source failed, using clock-based id")
		fillFromClock(bytes)
	}
	return hex.EncodeToString(bytes)
}

// fillFromClock derives bytes from the wall clock and a process counter so
// ids stay distinct within the process even without randomness.
func fillFromClock(bytes []byte) {
	var block [16]byte
	binary.BigEndian.PutUint64(block[:8], uint64(time.Now().UnixNano()))
	binary.BigEndian.PutUint64(block[8:], fallback.Add(1))
	// short ids keep the counter end of the block
	copy(bytes[max(0, len(bytes)-len(block)):], block[max(0, len(block)-len(bytes)):])
}

// GenerateGameID returns a random identifier for a local game session.
func GenerateGameID() string {
	return generate(16)
}

// GenerateRequestID tags a single analysis request in logs and responses.
func GenerateRequestID() string {
	return generate(8)
}
