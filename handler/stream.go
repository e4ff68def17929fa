package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Stream reads records from r and hands them to h one at a time, in
// order. It returns nil at the end of input. Read and write failures
// stop the stream; records that fail to decode never do, since the
// formatter passes them through.
func Stream(ctx context.Context, r io.Reader, h Handler) error {
	lr := NewLineReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		record, err := lr.ReadRecord()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read line %d: %w", lr.Line+1, err)
		}

		if err := h.Handle(record); err != nil {
			return fmt.Errorf("write line %d: %w", lr.Line, err)
		}
	}
}
