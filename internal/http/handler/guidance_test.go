package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/blueprint/internal/assistant"
	"basegraph.app/blueprint/internal/http/handler"
	"basegraph.app/blueprint/internal/model"
	"basegraph.app/blueprint/internal/service"
)

var _ = Describe("GuidanceHandler", func() {
	var router *gin.Engine

	BeforeEach(func() {
		router = gin.New()
		h := handler.NewGuidanceHandler(service.NewGuidanceService())

		router.GET("/guidance/industries", h.Industries)
		router.GET("/guidance/industries/:industry", h.Industry)
		router.POST("/guidance/doctypes", h.DocType)
		router.GET("/guidance/processes/:process", h.Process)
		router.GET("/guidance/best-practices/:topic", h.BestPractices)
		router.POST("/guidance/feasibility", h.Feasibility)
	})

	It("lists industries", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guidance/industries", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)["industries"]).To(ContainElement("general"))
	})

	It("falls back to general guidance", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guidance/industries/aerospace", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)["industry"]).To(Equal("general"))
	})

	It("suggests a doctype", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodPost, "/guidance/doctypes", map[string]any{"entity": "customers"}))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)["doctype_name"]).To(Equal("Customer"))
	})

	It("requires an entity", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodPost, "/guidance/doctypes", map[string]any{}))

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns a generic process for unknown types", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guidance/processes/juggling", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		resp := decode(w)
		Expect(resp["process_type"]).To(Equal("generic"))
		Expect(resp["industry"]).To(Equal("general"))
	})

	It("returns best practices", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guidance/best-practices/general", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)).NotTo(BeEmpty())
	})

	It("checks feasibility", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodPost, "/guidance/feasibility", map[string]any{
			"requirement": "Customers create invoices.",
		}))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)["overall_feasibility"]).To(Equal(string(model.ComplexityHigh)))
	})
})

var _ = Describe("AssistantHandler", func() {
	var (
		router *gin.Engine
		mock   *mockAssistant
	)

	BeforeEach(func() {
		router = gin.New()
		mock = &mockAssistant{healthy: true}
		h := handler.NewAssistantHandler(mock)

		router.POST("/assistant/prompt", h.Prompt)
		router.POST("/assistant/analyze", h.Analyze)
		router.POST("/assistant/doctype", h.DocType)
		router.POST("/assistant/workflow", h.Workflow)
		router.GET("/assistant/health", h.Health)
	})

	It("sends the prompt", func() {
		mock.sendPromptFn = func(_ context.Context, _, userPrompt string, _ map[string]any) model.AssistantReply {
			return model.AssistantReply{Success: true, Response: map[string]any{"summary": userPrompt}}
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodPost, "/assistant/prompt", map[string]any{"user_prompt": "hello"}))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)["response"]).To(HaveKeyWithValue("summary", "hello"))
	})

	It("answers 200 with the failure when the model errors", func() {
		mock.analyzeFn = func(context.Context, string, map[string]any) model.AssistantReply {
			return model.AssistantReply{Success: false, Error: "rate limited"}
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodPost, "/assistant/analyze", map[string]any{"requirement": "Track stock."}))

		Expect(w.Code).To(Equal(http.StatusOK))
		resp := decode(w)
		Expect(resp["success"]).To(BeFalse())
		Expect(resp["error"]).To(Equal("rate limited"))
	})

	It("forwards doctype design requests", func() {
		mock.docTypeFn = func(_ context.Context, req assistant.DocTypeRequest) model.AssistantReply {
			Expect(req.Name).To(Equal("Warranty Claim"))
			Expect(req.RelatedEntities).To(ConsistOf("Customer", "Item"))
			return model.AssistantReply{Success: true}
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodPost, "/assistant/doctype", map[string]any{
			"name":             "Warranty Claim",
			"related_entities": []string{"Customer", "Item"},
		}))

		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("requires a process name", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodPost, "/assistant/workflow", map[string]any{}))

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("reports health", func() {
		mock.healthy = false

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/assistant/health", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)["healthy"]).To(BeFalse())
	})
})
