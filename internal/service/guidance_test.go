package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/blueprint/internal/model"
	"basegraph.app/blueprint/internal/service"
)

var _ = Describe("GuidanceService", func() {
	svc := service.NewGuidanceService()

	It("falls back to general guidance for unknown industries", func() {
		Expect(svc.Industry("aerospace", "").Industry).To(Equal("general"))
	})

	It("lists industries including the default", func() {
		Expect(svc.Industries()).To(ContainElement("general"))
	})

	It("rates a plain requirement as highly feasible", func() {
		f, err := svc.Feasibility(context.Background(), "Customers create invoices.")
		Expect(err).NotTo(HaveOccurred())
		Expect(f.OverallFeasibility).To(Equal(model.ComplexityHigh))
	})

	It("returns general practices for unknown topics", func() {
		Expect(svc.BestPractices("astrology")).To(Equal(svc.BestPractices("general")))
	})
})
