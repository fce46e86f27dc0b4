package store_test

import (
	"context"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/blueprint/core/config"
	"basegraph.app/blueprint/internal/store"
)

var _ = Describe("Open", func() {
	ctx := context.Background()

	It("opens the memory backend", func() {
		stores, closeFn, err := store.Open(ctx, config.Config{
			Store: config.StoreConfig{Backend: config.StoreMemory},
		})
		Expect(err).NotTo(HaveOccurred())
		defer closeFn()

		Expect(stores.Contexts().Create(ctx, newContext("ctx_open1"))).To(Succeed())
	})

	It("opens a sqlite file", func() {
		stores, closeFn, err := store.Open(ctx, config.Config{
			Store:  config.StoreConfig{Backend: config.StoreSQLite},
			SQLite: config.SQLiteConfig{Path: filepath.Join(GinkgoT().TempDir(), "data", "blueprint.db")},
		})
		Expect(err).NotTo(HaveOccurred())
		defer closeFn()

		Expect(stores.Contexts().Create(ctx, newContext("ctx_open2"))).To(Succeed())
		got, err := stores.Contexts().GetByID(ctx, "ctx_open2")
		Expect(err).NotTo(HaveOccurred())
		Expect(got.OriginalRequirement).To(Equal("manage customers"))
	})

	It("rejects unknown backends", func() {
		_, closeFn, err := store.Open(ctx, config.Config{
			Store: config.StoreConfig{Backend: "mongo"},
		})
		Expect(err).To(MatchError(ContainSubstring("mongo")))
		Expect(closeFn).NotTo(BeNil())
	})
})
