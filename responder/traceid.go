package responder

import (
	mathrand "math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// HeaderRequestID is reused as the trace ID when a caller supplies one.
const HeaderRequestID = "X-Request-ID"

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(mathrand.New(mathrand.NewSource(time.Now().UnixNano())), 0)
)

func traceID(req *http.Request) string {
	if req != nil {
		if id := req.Header.Get(HeaderRequestID); id != "" {
			return id
		}
	}
	return newTraceID()
}

func newTraceID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
