package id

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("New before Init", func() {
	BeforeEach(func() {
		mu.Lock()
		saved := node
		node = nil
		mu.Unlock()

		DeferCleanup(func() {
			mu.Lock()
			node = saved
			mu.Unlock()
		})
	})

	It("falls back to the default node", func() {
		Expect(New()).To(BeNumerically(">", 0))
		Expect(node.Generate().Node()).To(Equal(int64(DefaultNodeID)))
	})

	It("keeps the fallback node when Init runs later", func() {
		first := New()
		Expect(Init(42)).To(Succeed())
		Expect(New()).To(BeNumerically(">", first))
		Expect(node.Generate().Node()).To(Equal(int64(DefaultNodeID)))
	})
})
