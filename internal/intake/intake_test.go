package intake_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	"basegraph.app/blueprint/internal/intake"
)

func workbook(sheets map[string][][]any) []byte {
	f := excelize.NewFile()
	defer f.Close()

	for name, rows := range sheets {
		if name != "Sheet1" {
			_, err := f.NewSheet(name)
			Expect(err).NotTo(HaveOccurred())
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			Expect(err).NotTo(HaveOccurred())
			Expect(f.SetSheetRow(name, cell, &row)).To(Succeed())
		}
	}

	buf, err := f.WriteToBuffer()
	Expect(err).NotTo(HaveOccurred())
	return buf.Bytes()
}

var _ = Describe("Intake", func() {
	DescribeTable("FormatOf",
		func(name string, expected intake.Format) {
			format, err := intake.FormatOf(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(format).To(Equal(expected))
		},
		Entry("pdf", "brief.pdf", intake.FormatPDF),
		Entry("upper-case pdf", "BRIEF.PDF", intake.FormatPDF),
		Entry("xlsx", "backlog.xlsx", intake.FormatSpreadsheet),
	)

	It("rejects unknown formats", func() {
		_, err := intake.Extract("notes.txt", []byte("customers place orders"))
		Expect(err).To(MatchError(intake.ErrUnsupportedFormat))
	})

	Context("spreadsheets", func() {
		It("turns each non-empty row into a sentence", func() {
			data := workbook(map[string][][]any{
				"Sheet1": {
					{"Customers", "place orders"},
					{},
					{"Managers approve invoices."},
				},
			})

			text, err := intake.Extract("backlog.xlsx", data)
			Expect(err).NotTo(HaveOccurred())
			Expect(text).To(Equal("Customers place orders. Managers approve invoices."))
		})

		It("reads every sheet", func() {
			data := workbook(map[string][][]any{
				"Sheet1": {{"Track inventory"}},
				"Extra":  {{"Ship products"}},
			})

			text, err := intake.Extract("backlog.xlsx", data)
			Expect(err).NotTo(HaveOccurred())
			Expect(text).To(ContainSubstring("Track inventory."))
			Expect(text).To(ContainSubstring("Ship products."))
		})

		It("reports a workbook without text", func() {
			data := workbook(map[string][][]any{"Sheet1": {}})

			_, err := intake.Extract("empty.xlsx", data)
			Expect(err).To(MatchError(intake.ErrEmptyDocument))
		})

		It("fails on a corrupt workbook", func() {
			_, err := intake.Extract("broken.xlsx", []byte("not a zip"))
			Expect(err).To(HaveOccurred())
		})
	})

	It("fails on a corrupt PDF", func() {
		_, err := intake.Extract("broken.pdf", []byte("not a pdf"))
		Expect(err).To(HaveOccurred())
	})

	Context("gitlab issues", func() {
		var (
			server *httptest.Server
			body   string
		)

		BeforeEach(func() {
			body = `{"id":1,"iid":7,"title":"Order approvals","description":"Managers approve orders over 500."}`
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if !strings.HasSuffix(r.URL.Path, "/projects/42/issues/7") {
					http.NotFound(w, r)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(body))
			}))
			DeferCleanup(server.Close)
		})

		It("joins title and description", func() {
			source, err := intake.NewGitLabIssueSource(server.URL, "token")
			Expect(err).NotTo(HaveOccurred())

			text, err := source.Requirement(context.Background(), "42", 7)
			Expect(err).NotTo(HaveOccurred())
			Expect(text).To(Equal("Order approvals. Managers approve orders over 500."))
		})

		It("uses the title alone when the description is blank", func() {
			body = `{"id":1,"iid":7,"title":"Track stock levels","description":""}`
			source, err := intake.NewGitLabIssueSource(server.URL, "token")
			Expect(err).NotTo(HaveOccurred())

			text, err := source.Requirement(context.Background(), "42", 7)
			Expect(err).NotTo(HaveOccurred())
			Expect(text).To(Equal("Track stock levels."))
		})

		It("wraps tracker errors", func() {
			source, err := intake.NewGitLabIssueSource(server.URL, "token")
			Expect(err).NotTo(HaveOccurred())

			_, err = source.Requirement(context.Background(), "42", 8)
			Expect(err).To(MatchError(ContainSubstring("fetching issue from gitlab")))
		})
	})
})
