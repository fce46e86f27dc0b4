package worker

import (
	"context"

	"basegraph.app/blueprint/internal/model"
	"basegraph.app/blueprint/internal/queue"
)

// Consumer abstracts the message queue for testability.
type Consumer interface {
	Read(ctx context.Context) ([]queue.Message, error)
	Ack(ctx context.Context, msg queue.Message) error
	Requeue(ctx context.Context, msg queue.Message, errMsg string) error
	SendDLQ(ctx context.Context, msg queue.Message, errMsg string) error
}

// JobProcessor runs one generation job and returns the stored document id.
type JobProcessor interface {
	Process(ctx context.Context, job model.GenerationJob) (string, error)
}
