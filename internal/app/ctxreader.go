package app

import (
	"context"
	"io"
)

// ctxReader makes reads from a blocking source (a terminal on stdin)
// return as soon as ctx is done. A read abandoned that way keeps its
// goroutine until the source yields; its data is dropped.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

type readResult struct {
	buf []byte
	err error
}

func newCtxReader(ctx context.Context, r io.Reader) io.Reader {
	return &ctxReader{ctx: ctx, r: r}
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	done := make(chan readResult, 1)
	go func(n int) {
		buf := make([]byte, n)
		k, err := c.r.Read(buf)
		done <- readResult{buf: buf[:k], err: err}
	}(len(p))

	select {
	case <-c.ctx.Done():
		return 0, c.ctx.Err()
	case res := <-done:
		return copy(p, res.buf), res.err
	}
}
