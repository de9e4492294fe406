package httpfs

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"
)

// newConnID returns a short id that ties a connection's log lines together.
func newConnID() string {
	var b [6]byte
	if _, err := rand.Read(b[:]); err == nil {
		return hex.EncodeToString(b[:])
	}
	return strconv.FormatInt(time.Now().UnixNano(), 16)
}
