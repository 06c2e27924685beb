package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/kataras/iris/v12"
)

// RequestID tags every request with an id (caller-supplied or generated),
// echoes it back, and logs the access line once the handler returns.
func RequestID(ctx iris.Context) {
	rid := ctx.GetHeader("X-Request-Id")
	if rid == "" {
		rid = uuid.NewString()
	}
	ctx.Header("X-Request-Id", rid)

	start := time.Now()
	ctx.Next()

	logger.Debugf("%s %s %d %s rid:%s",
		ctx.Method(), ctx.Path(), ctx.GetStatusCode(), time.Since(start), rid,
	)
}
