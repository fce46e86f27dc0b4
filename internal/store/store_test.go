package store_test

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"basegraph.app/blueprint/internal/model"
	"basegraph.app/blueprint/internal/store"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var base = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newContext(id string) *model.Context {
	return &model.Context{
		ID:                  id,
		Timestamp:           base,
		OriginalRequirement: "manage customers",
		Industry:            model.IndustryClassification{Industry: "retail"},
		Complexity:          model.ComplexityAssessment{Level: model.ComplexityLow, Score: 12},
		UserContext:         map[string]any{"owner": "ops"},
		Extraction: model.Extraction{
			Entities: []model.EntityMatch{{Type: "customer", DisplayName: "Customer", Occurrences: 1, Priority: 95}},
		},
	}
}

func newPRD(id string, at time.Time) *model.PRD {
	return &model.PRD{
		ID:          id,
		ContextID:   "ctx1",
		GeneratedAt: at,
		Version:     "1.0",
		Status:      model.PRDStatusDraft,
		Metadata:    model.Metadata{ProjectName: "Customer Management System"},
	}
}

// behavesLikeStores runs the shared repository contract against a backend.
func behavesLikeStores(newStores func() *store.Stores) {
	var (
		ctx    context.Context
		stores *store.Stores
	)

	BeforeEach(func() {
		ctx = context.Background()
		stores = newStores()
	})

	Describe("contexts", func() {
		It("round-trips a context", func() {
			Expect(stores.Contexts().Create(ctx, newContext("abc12345"))).To(Succeed())

			got, err := stores.Contexts().GetByID(ctx, "abc12345")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.OriginalRequirement).To(Equal("manage customers"))
			Expect(got.Entities).To(HaveLen(1))
			Expect(got.Entities[0].Priority).To(Equal(95))
			Expect(got.UserContext).To(HaveKeyWithValue("owner", "ops"))
		})

		It("rejects a colliding id", func() {
			Expect(stores.Contexts().Create(ctx, newContext("dup"))).To(Succeed())
			Expect(stores.Contexts().Create(ctx, newContext("dup"))).To(MatchError(store.ErrAlreadyExists))
		})

		It("reports missing contexts", func() {
			_, err := stores.Contexts().GetByID(ctx, "missing")
			Expect(err).To(MatchError(store.ErrNotFound))
			Expect(stores.Contexts().MergeUserContext(ctx, "missing", map[string]any{"a": "b"})).
				To(MatchError(store.ErrNotFound))
		})

		It("merges only into user context", func() {
			Expect(stores.Contexts().Create(ctx, newContext("merge"))).To(Succeed())
			Expect(stores.Contexts().MergeUserContext(ctx, "merge", map[string]any{"team": "sales"})).To(Succeed())

			got, err := stores.Contexts().GetByID(ctx, "merge")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.UserContext).To(HaveKeyWithValue("owner", "ops"))
			Expect(got.UserContext).To(HaveKeyWithValue("team", "sales"))
			Expect(got.OriginalRequirement).To(Equal("manage customers"))
		})
	})

	Describe("history", func() {
		It("lists the newest entries oldest first", func() {
			for i := 1; i <= 5; i++ {
				Expect(stores.History().Append(ctx, model.HistoryEntry{
					ID:               int64(i),
					Timestamp:        base.Add(time.Duration(i) * time.Minute),
					Requirement:      fmt.Sprintf("req %d", i),
					ProcessingResult: model.ProcessingSuccess,
				})).To(Succeed())
			}

			entries, err := stores.History().ListRecent(ctx, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(2))
			Expect(entries[0].Requirement).To(Equal("req 4"))
			Expect(entries[1].Requirement).To(Equal("req 5"))
		})

		It("keeps failure details", func() {
			Expect(stores.History().Append(ctx, model.HistoryEntry{
				ID:               9,
				Timestamp:        base,
				Requirement:      "bad",
				ProcessingResult: model.ProcessingFailed,
				Error:            "boom",
			})).To(Succeed())

			entries, err := stores.History().ListRecent(ctx, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].ProcessingResult).To(Equal(model.ProcessingFailed))
			Expect(entries[0].Error).To(Equal("boom"))
			Expect(entries[0].ContextID).To(BeEmpty())
		})
	})

	Describe("prds", func() {
		It("saves, fetches and lists newest first", func() {
			Expect(stores.PRDs().Save(ctx, newPRD("PRD-00000001", base))).To(Succeed())
			Expect(stores.PRDs().Save(ctx, newPRD("PRD-00000002", base.Add(time.Hour)))).To(Succeed())

			got, err := stores.PRDs().GetByID(ctx, "PRD-00000001")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Metadata.ProjectName).To(Equal("Customer Management System"))

			listings, err := stores.PRDs().List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(listings).To(HaveLen(2))
			Expect(listings[0].PRDID).To(Equal("PRD-00000002"))
			Expect(listings[0].Status).To(Equal(model.PRDStatusDraft))
			Expect(listings[1].CreatedAt.Equal(base)).To(BeTrue())
		})

		It("reports missing documents", func() {
			_, err := stores.PRDs().GetByID(ctx, "PRD-FFFFFFFF")
			Expect(err).To(MatchError(store.ErrNotFound))
		})
	})
}

var _ = Describe("memory stores", func() {
	behavesLikeStores(func() *store.Stores { return store.NewMemoryStores(0, 0) })

	It("evicts the oldest history entries past the limit", func() {
		ctx := context.Background()
		stores := store.NewMemoryStores(3, 0)
		for i := 1; i <= 5; i++ {
			Expect(stores.History().Append(ctx, model.HistoryEntry{ID: int64(i), Requirement: fmt.Sprint(i)})).To(Succeed())
		}

		entries, err := stores.History().ListRecent(ctx, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(3))
		Expect(entries[0].Requirement).To(Equal("3"))
	})

	It("evicts the oldest documents past the limit", func() {
		ctx := context.Background()
		stores := store.NewMemoryStores(0, 2)
		for i := 1; i <= 3; i++ {
			Expect(stores.PRDs().Save(ctx, newPRD(fmt.Sprintf("PRD-%08d", i), base))).To(Succeed())
		}

		_, err := stores.PRDs().GetByID(ctx, "PRD-00000001")
		Expect(err).To(MatchError(store.ErrNotFound))
		listings, _ := stores.PRDs().List(ctx)
		Expect(listings).To(HaveLen(2))
	})

	It("hands out copies of user context", func() {
		ctx := context.Background()
		stores := store.NewMemoryStores(0, 0)
		Expect(stores.Contexts().Create(ctx, newContext("copy"))).To(Succeed())

		got, _ := stores.Contexts().GetByID(ctx, "copy")
		got.UserContext["owner"] = "someone else"

		again, _ := stores.Contexts().GetByID(ctx, "copy")
		Expect(again.UserContext).To(HaveKeyWithValue("owner", "ops"))
	})

	It("is safe for concurrent writers", func() {
		ctx := context.Background()
		stores := store.NewMemoryStores(0, 0)

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				defer GinkgoRecover()
				Expect(stores.Contexts().Create(ctx, newContext(fmt.Sprintf("c%d", i)))).To(Succeed())
				Expect(stores.History().Append(ctx, model.HistoryEntry{ID: int64(i)})).To(Succeed())
			}(i)
		}
		wg.Wait()

		entries, err := stores.History().ListRecent(ctx, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(50))
	})
})

var _ = Describe("sqlite stores", func() {
	var sqlDB *sql.DB

	behavesLikeStores(func() *store.Stores {
		var err error
		sqlDB, err = store.OpenSQLite(context.Background(), ":memory:")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(sqlDB.Close)
		return store.NewSQLiteStores(sqlDB)
	})
})
