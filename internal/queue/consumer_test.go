package queue_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"

	"basegraph.app/blueprint/internal/model"
	"basegraph.app/blueprint/internal/queue"
)

var _ = Describe("ParseMessage", func() {
	It("parses a complete job message", func() {
		msg, err := queue.ParseMessage(redis.XMessage{
			ID: "1700000000000-0",
			Values: map[string]any{
				"job_id":           "42",
				"context_id":       "ctx00001",
				"include_guidance": "true",
				"attempt":          "2",
				"trace_id":         "abc123",
				"requested_at":     "2026-01-05T09:00:00Z",
			},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(msg.ID).To(Equal("1700000000000-0"))
		Expect(msg.JobID).To(Equal(int64(42)))
		Expect(msg.ContextID).To(Equal("ctx00001"))
		Expect(msg.IncludeGuidance).To(BeTrue())
		Expect(msg.Attempt).To(Equal(2))
		Expect(msg.TraceID).To(Equal("abc123"))
		Expect(msg.RequestedAt).To(Equal(time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)))
	})

	It("defaults the attempt to one", func() {
		msg, err := queue.ParseMessage(redis.XMessage{
			ID:     "1-0",
			Values: map[string]any{"job_id": "7", "context_id": "ctx00001"},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(msg.Attempt).To(Equal(1))
		Expect(msg.IncludeGuidance).To(BeFalse())
		Expect(msg.RequestedAt.IsZero()).To(BeTrue())
	})

	DescribeTable("rejects malformed messages",
		func(values map[string]any, message string) {
			_, err := queue.ParseMessage(redis.XMessage{ID: "1-0", Values: values})
			Expect(err).To(MatchError(ContainSubstring(message)))
		},
		Entry("missing job id", map[string]any{"context_id": "ctx00001"}, "missing job_id"),
		Entry("non-numeric job id", map[string]any{"job_id": "x", "context_id": "ctx00001"}, "parsing job_id"),
		Entry("missing context", map[string]any{"job_id": "1"}, "missing context_id"),
		Entry("empty context", map[string]any{"job_id": "1", "context_id": ""}, "missing context_id"),
		Entry("bad flag", map[string]any{"job_id": "1", "context_id": "c", "include_guidance": "maybe"}, "parsing include_guidance"),
		Entry("bad attempt", map[string]any{"job_id": "1", "context_id": "c", "attempt": "two"}, "parsing attempt"),
		Entry("bad timestamp", map[string]any{"job_id": "1", "context_id": "c", "requested_at": "yesterday"}, "parsing requested_at"),
	)

	It("rebuilds the queued job", func() {
		msg := queue.Message{JobID: 9, ContextID: "ctx00002", IncludeGuidance: true, Attempt: 3}
		Expect(msg.Job()).To(Equal(model.GenerationJob{
			ID:              9,
			ContextID:       "ctx00002",
			IncludeGuidance: true,
			Status:          model.JobStatusQueued,
			Attempt:         3,
		}))
	})
})

var _ = Describe("JobStatusStore", func() {
	It("reports redis failures", func() {
		client := redis.NewClient(&redis.Options{
			Addr:        "127.0.0.1:1",
			DialTimeout: 50 * time.Millisecond,
			MaxRetries:  -1,
		})
		DeferCleanup(client.Close)

		statuses := queue.NewRedisJobStatusStore(client, time.Minute)
		ctx := context.Background()

		Expect(statuses.Put(ctx, model.GenerationJob{ID: 1})).To(MatchError(ContainSubstring("storing job 1")))

		_, err := statuses.Get(ctx, 1)
		Expect(err).To(MatchError(ContainSubstring("loading job 1")))
		Expect(err).NotTo(MatchError(queue.ErrJobNotFound))
	})
})
