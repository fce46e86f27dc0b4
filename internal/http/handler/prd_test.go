package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/blueprint/internal/export"
	"basegraph.app/blueprint/internal/http/handler"
	"basegraph.app/blueprint/internal/model"
	"basegraph.app/blueprint/internal/service"
)

var _ = Describe("PRDHandler", func() {
	var (
		router *gin.Engine
		svc    *mockPRDService
	)

	BeforeEach(func() {
		router = gin.New()
		svc = &mockPRDService{}
		h := handler.NewPRDHandler(svc)

		router.POST("/prds", h.Create)
		router.GET("/prds", h.List)
		router.GET("/prds/:id", h.Get)
		router.GET("/prds/:id/summary", h.Summary)
		router.GET("/prds/:id/export", h.Export)
		router.GET("/jobs/:id", h.Job)
	})

	Describe("Create", func() {
		It("generates synchronously", func() {
			svc.generateFn = func(_ context.Context, contextID string, includeGuidance bool) (model.GenerateResult, error) {
				Expect(contextID).To(Equal("ctx_1"))
				Expect(includeGuidance).To(BeTrue())
				return model.GenerateResult{Success: true, PRDID: "prd_1"}, nil
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, jsonRequest(http.MethodPost, "/prds", map[string]any{
				"context_id":       "ctx_1",
				"include_guidance": true,
			}))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["prd_id"]).To(Equal("prd_1"))
		})

		It("answers 200 when assembly fails", func() {
			svc.generateFn = func(context.Context, string, bool) (model.GenerateResult, error) {
				return model.GenerateResult{Success: false, Error: "no entities"}, nil
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, jsonRequest(http.MethodPost, "/prds", map[string]any{"context_id": "ctx_1"}))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["success"]).To(BeFalse())
		})

		It("queues the job when async is set", func() {
			svc.enqueueFn = func(_ context.Context, contextID string, _ bool) (*model.GenerationJob, error) {
				return &model.GenerationJob{ID: 77, ContextID: contextID, Status: model.JobStatusQueued}, nil
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, jsonRequest(http.MethodPost, "/prds", map[string]any{
				"context_id": "ctx_1",
				"async":      true,
			}))

			Expect(w.Code).To(Equal(http.StatusAccepted))
			resp := decode(w)
			Expect(resp["status_url"]).To(Equal("/api/v1/jobs/77"))
			Expect(resp["job"]).To(HaveKeyWithValue("status", "queued"))
		})

		It("requires a context id", func() {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, jsonRequest(http.MethodPost, "/prds", map[string]any{}))

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		DescribeTable("maps service errors",
			func(async bool, err error, status int) {
				svc.generateFn = func(context.Context, string, bool) (model.GenerateResult, error) {
					return model.GenerateResult{}, err
				}
				svc.enqueueFn = func(context.Context, string, bool) (*model.GenerationJob, error) {
					return nil, err
				}

				w := httptest.NewRecorder()
				router.ServeHTTP(w, jsonRequest(http.MethodPost, "/prds", map[string]any{
					"context_id": "ctx_1",
					"async":      async,
				}))

				Expect(w.Code).To(Equal(status))
			},
			Entry("unknown context", false, service.ErrContextNotFound, http.StatusNotFound),
			Entry("unknown context async", true, service.ErrContextNotFound, http.StatusNotFound),
			Entry("no queue", true, service.ErrQueueUnavailable, http.StatusServiceUnavailable),
			Entry("store failure", false, errors.New("disk full"), http.StatusInternalServerError),
		)
	})

	It("lists documents", func() {
		svc.listFn = func(context.Context) ([]model.PRDListing, error) {
			return []model.PRDListing{{PRDID: "prd_1", ProjectName: "Order Management"}}, nil
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/prds", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)["count"]).To(BeNumerically("==", 1))
	})

	It("returns 404 for an unknown document", func() {
		svc.getFn = func(context.Context, string) (*model.PRD, error) {
			return nil, service.ErrPRDNotFound
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/prds/prd_x", nil))

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("returns the summary", func() {
		svc.summaryFn = func(context.Context, string) (*model.PRDSummary, error) {
			return &model.PRDSummary{ProjectName: "Order Management", Complexity: model.ComplexityMedium}, nil
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/prds/prd_1/summary", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)["project_name"]).To(Equal("Order Management"))
	})

	Describe("Export", func() {
		It("streams the workbook as an attachment", func() {
			svc.exportFn = func(_ context.Context, _ string, w io.Writer) error {
				_, err := w.Write([]byte("xlsx-bytes"))
				return err
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/prds/prd_1/export", nil))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(Equal(export.ContentType))
			Expect(w.Header().Get("Content-Disposition")).To(ContainSubstring(`filename="prd_1.xlsx"`))
			Expect(w.Body.String()).To(Equal("xlsx-bytes"))
		})

		It("returns 404 for an unknown document", func() {
			svc.exportFn = func(context.Context, string, io.Writer) error {
				return service.ErrPRDNotFound
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/prds/prd_x/export", nil))

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("Job", func() {
		It("returns the job status", func() {
			svc.jobFn = func(_ context.Context, jobID int64) (*model.GenerationJob, error) {
				return &model.GenerationJob{ID: jobID, Status: model.JobStatusCompleted, PRDID: "prd_1"}, nil
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs/77", nil))

			Expect(w.Code).To(Equal(http.StatusOK))
			resp := decode(w)
			Expect(resp["status"]).To(Equal("completed"))
			Expect(resp["prd_id"]).To(Equal("prd_1"))
		})

		It("rejects a non-numeric id", func() {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs/abc", nil))

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 404 for an unknown job", func() {
			svc.jobFn = func(context.Context, int64) (*model.GenerationJob, error) {
				return nil, service.ErrJobNotFound
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs/5", nil))

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})
})
