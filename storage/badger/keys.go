package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/poiesic/newsrank/core"
)

// Key prefixes for different data types
const (
	articlePrefix     = "artrec"
	articleDatePrefix = "artrecd"
)

// makeArticleKey generates a key for an article by ID.
func makeArticleKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", articlePrefix, id))
}

// makeArticleDateKey generates a composite key for the published-date index.
// Format: prefix:timestamp:id
// Articles without a published date index at timestamp zero so they sort last
// when iterating newest-first.
func makeArticleDateKey(published time.Time, id core.ID) []byte {
	prefix := articleDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for timestamp + 8 bytes for ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], timestampValue(published))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialArticleDateKey generates a partial key for date-ordered seeks.
// Format: prefix:timestamp
func makePartialArticleDateKey(published time.Time) []byte {
	prefix := articleDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for timestamp
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], timestampValue(published))
	return buf
}

func timestampValue(t time.Time) uint64 {
	if t.IsZero() {
		return 0
	}
	return uint64(t.UnixMicro())
}
