package aggregator_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/blueprint/internal/aggregator"
	"basegraph.app/blueprint/internal/model"
	"basegraph.app/blueprint/internal/store"
)

type failingHistory struct{ store.HistoryStore }

func (failingHistory) Append(context.Context, model.HistoryEntry) error {
	return errors.New("disk full")
}

var _ = Describe("Aggregator", func() {
	var (
		ctx    context.Context
		stores *store.Stores
		agg    *aggregator.Aggregator
		fixed  time.Time
		ids    []string
	)

	nextID := func() string {
		next := ids[0]
		ids = ids[1:]
		return next
	}

	BeforeEach(func() {
		ctx = context.Background()
		stores = store.NewMemoryStores(100, 50)
		fixed = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		ids = []string{"ctx00001", "ctx00002", "ctx00003", "ctx00004"}
		agg = aggregator.New(stores.Contexts(), stores.History(),
			aggregator.WithClock(func() time.Time { return fixed }),
			aggregator.WithIDSource(nextID))
	})

	Describe("Process", func() {
		It("stores a full context and records success", func() {
			res := agg.Process(ctx, "We need to track customer orders and generate invoices. Managers approve payments.", map[string]any{"team": "sales"})

			Expect(res.Success).To(BeTrue())
			Expect(res.ContextID).To(Equal("ctx00001"))
			Expect(res.Context.Timestamp).To(Equal(fixed))
			Expect(res.Context.EntityTypes()).To(ContainElements("customer", "order", "invoice"))
			Expect(res.Context.Summary.SentenceCount).To(Equal(2))
			Expect(res.Context.UserContext).To(HaveKeyWithValue("team", "sales"))

			stored, err := agg.Get(ctx, "ctx00001")
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.OriginalRequirement).To(Equal(res.Context.OriginalRequirement))

			history, err := agg.History(ctx, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(history).To(HaveLen(1))
			Expect(history[0].ContextID).To(Equal("ctx00001"))
			Expect(history[0].ProcessingResult).To(Equal(model.ProcessingSuccess))
		})

		It("does not keep a reference to the caller's annotations", func() {
			annotations := map[string]any{"team": "sales"}
			res := agg.Process(ctx, "customer list", annotations)
			annotations["team"] = "ops"

			stored, err := agg.Get(ctx, res.ContextID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.UserContext).To(HaveKeyWithValue("team", "sales"))
		})

		It("starts with empty annotations when none are given", func() {
			res := agg.Process(ctx, "customer list", nil)
			Expect(res.Context.UserContext).NotTo(BeNil())
			Expect(res.Context.UserContext).To(BeEmpty())
		})

		It("regenerates the id when it collides", func() {
			Expect(stores.Contexts().Create(ctx, &model.Context{ID: "ctx00001"})).To(Succeed())

			res := agg.Process(ctx, "customer list", nil)
			Expect(res.Success).To(BeTrue())
			Expect(res.ContextID).To(Equal("ctx00002"))
		})

		It("gives up after repeated collisions", func() {
			ids = []string{"dup", "dup", "dup"}
			Expect(stores.Contexts().Create(ctx, &model.Context{ID: "dup"})).To(Succeed())

			res := agg.Process(ctx, "customer list", nil)
			Expect(res.Success).To(BeFalse())
			Expect(res.PartialContext).NotTo(BeNil())
		})

		It("returns a fallback for malformed input and records the failure", func() {
			res := agg.Process(ctx, "\xff\xfe buyer order", nil)

			Expect(res.Success).To(BeFalse())
			Expect(res.Error).NotTo(BeEmpty())
			Expect(res.Context).To(BeNil())
			Expect(res.PartialContext.ProcessingStatus).To(Equal(model.ProcessingPartial))
			Expect(res.PartialContext.BasicAnalysis.WordCount).To(Equal(3))
			Expect(res.PartialContext.BasicAnalysis.ContainsBusinessTerms).To(BeTrue())

			history, err := agg.History(ctx, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(history).To(HaveLen(1))
			Expect(history[0].ProcessingResult).To(Equal(model.ProcessingFailed))
			Expect(history[0].ContextID).To(BeEmpty())
			Expect(history[0].Error).NotTo(BeEmpty())
		})

		It("processes without a configured snowflake node", func() {
			agg = aggregator.New(stores.Contexts(), stores.History())

			var res model.ProcessResult
			Expect(func() { res = agg.Process(ctx, "We need a customer portal", nil) }).NotTo(Panic())
			Expect(res.Success).To(BeTrue())

			history, err := agg.History(ctx, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(history).To(HaveLen(1))
			Expect(history[0].ID).NotTo(BeZero())
		})

		It("keeps history id failures inside its boundary", func() {
			agg = aggregator.New(stores.Contexts(), stores.History(),
				aggregator.WithIDSource(nextID),
				aggregator.WithHistoryIDSource(func() int64 { panic("no node") }))

			var res model.ProcessResult
			Expect(func() { res = agg.Process(ctx, "customer list", nil) }).NotTo(Panic())
			Expect(res.Success).To(BeTrue())
			Expect(res.ContextID).To(Equal("ctx00001"))

			history, err := agg.History(ctx, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(history).To(BeEmpty())
		})

		It("uses the injected history ids", func() {
			agg = aggregator.New(stores.Contexts(), stores.History(),
				aggregator.WithIDSource(nextID),
				aggregator.WithHistoryIDSource(func() int64 { return 7001 }))

			agg.Process(ctx, "customer list", nil)

			history, err := agg.History(ctx, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(history).To(HaveLen(1))
			Expect(history[0].ID).To(Equal(int64(7001)))
		})

		It("analyzes an empty requirement instead of falling back", func() {
			res := agg.Process(ctx, "", nil)

			Expect(res.Success).To(BeTrue())
			Expect(res.PartialContext).To(BeNil())
			Expect(res.Context.Entities).To(BeEmpty())
			Expect(res.Context.Complexity.Level).To(Equal(model.ComplexityLow))
			Expect(res.Context.Industry.Industry).To(Equal("general"))

			history, err := agg.History(ctx, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(history[0].ProcessingResult).To(Equal(model.ProcessingSuccess))
		})

		It("still succeeds when history cannot be written", func() {
			agg = aggregator.New(stores.Contexts(), failingHistory{stores.History()},
				aggregator.WithIDSource(nextID))

			res := agg.Process(ctx, "customer list", nil)
			Expect(res.Success).To(BeTrue())
		})
	})

	Describe("Update", func() {
		It("merges annotations into an existing context", func() {
			res := agg.Process(ctx, "customer list", map[string]any{"team": "sales"})

			ok, err := agg.Update(ctx, res.ContextID, map[string]any{"owner": "ana"})
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			stored, err := agg.Get(ctx, res.ContextID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.UserContext).To(HaveKeyWithValue("team", "sales"))
			Expect(stored.UserContext).To(HaveKeyWithValue("owner", "ana"))
			Expect(stored.Entities).To(Equal(res.Context.Entities))
		})

		It("reports false for an unknown context", func() {
			ok, err := agg.Update(ctx, "missing", map[string]any{"a": 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})
	})

	Describe("Get", func() {
		It("wraps not found", func() {
			_, err := agg.Get(ctx, "missing")
			Expect(err).To(MatchError(store.ErrNotFound))
		})
	})

	Describe("History", func() {
		It("returns the most recent entries oldest first", func() {
			for _, req := range []string{"customer one", "customer two", "customer three"} {
				agg.Process(ctx, req, nil)
			}

			history, err := agg.History(ctx, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(history).To(HaveLen(2))
			Expect(history[0].Requirement).To(Equal("customer two"))
			Expect(history[1].Requirement).To(Equal("customer three"))
		})
	})
})

var _ = Describe("Fallback", func() {
	It("counts words and spots business terms", func() {
		fb := aggregator.Fallback("ship the product today")
		Expect(fb.BasicAnalysis.WordCount).To(Equal(4))
		Expect(fb.BasicAnalysis.ContainsBusinessTerms).To(BeTrue())
		Expect(aggregator.Fallback("hello world").BasicAnalysis.ContainsBusinessTerms).To(BeFalse())
	})
})
