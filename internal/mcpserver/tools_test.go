package mcpserver_test

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/blueprint/internal/mcpserver"
	"basegraph.app/blueprint/internal/service"
	"basegraph.app/blueprint/internal/store"
)

func makeReq(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(r *mcp.CallToolResult) string {
	for _, c := range r.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func resultJSON(r *mcp.CallToolResult) map[string]any {
	var out map[string]any
	Expect(json.Unmarshal([]byte(resultText(r)), &out)).To(Succeed())
	return out
}

var _ = Describe("tools", func() {
	var (
		ctx      context.Context
		services *service.Services
		tools    map[string]mcpserver.Tool
	)

	call := func(name string, args map[string]any) *mcp.CallToolResult {
		t, ok := tools[name]
		Expect(ok).To(BeTrue(), "missing tool %s", name)
		res, err := t.Handle(ctx, makeReq(args))
		Expect(err).NotTo(HaveOccurred())
		return res
	}

	BeforeEach(func() {
		ctx = context.Background()
		services = service.NewServices(store.NewMemoryStores(0, 0))
		tools = map[string]mcpserver.Tool{}
		for _, t := range mcpserver.Tools(services) {
			tools[t.Definition().Name] = t
		}
	})

	It("registers every tool with its required arguments", func() {
		Expect(tools).To(HaveLen(7))
		Expect(tools["process_requirement"].Definition().InputSchema.Required).To(ContainElement("requirement"))
		Expect(tools["generate_prd"].Definition().InputSchema.Required).To(ContainElement("context_id"))
		Expect(tools["list_prds"].Definition().InputSchema.Required).To(BeEmpty())
	})

	It("parses without storing", func() {
		res := call("parse_requirement", map[string]any{"text": "Customers place orders for products."})
		Expect(res.IsError).To(BeFalse())
		Expect(resultJSON(res)["success"]).To(BeTrue())

		history, err := services.Requirements().History(ctx, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(history).To(BeEmpty())
	})

	It("rejects missing arguments", func() {
		res := call("process_requirement", map[string]any{})
		Expect(res.IsError).To(BeTrue())
		Expect(resultText(res)).To(ContainSubstring("'requirement' is required"))
	})

	It("processes, generates and fetches a document", func() {
		res := call("process_requirement", map[string]any{
			"requirement": "Customers place orders for products. Managers approve each order.",
			"industry":    "retail",
		})
		Expect(res.IsError).To(BeFalse())
		contextID := resultJSON(res)["context_id"].(string)

		stored, err := services.Requirements().Context(ctx, contextID)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.UserContext).To(HaveKeyWithValue("industry", "retail"))

		res = call("generate_prd", map[string]any{"context_id": contextID})
		Expect(res.IsError).To(BeFalse())
		prdID := resultJSON(res)["prd_id"].(string)

		res = call("get_prd", map[string]any{"prd_id": prdID, "summary_only": true})
		Expect(res.IsError).To(BeFalse())
		Expect(resultJSON(res)).To(HaveKey("project_name"))

		res = call("get_prd", map[string]any{"prd_id": prdID})
		Expect(resultJSON(res)["prd_id"]).To(Equal(prdID))

		res = call("list_prds", nil)
		Expect(resultText(res)).To(ContainSubstring(prdID))
	})

	It("reports unknown contexts and documents as tool errors", func() {
		res := call("generate_prd", map[string]any{"context_id": "missing"})
		Expect(res.IsError).To(BeTrue())
		Expect(resultText(res)).To(ContainSubstring("not found"))

		res = call("get_prd", map[string]any{"prd_id": "PRD-00000000"})
		Expect(res.IsError).To(BeTrue())
	})

	It("returns general guidance for unknown industries", func() {
		res := call("industry_guidance", map[string]any{"industry": "aerospace"})
		Expect(resultJSON(res)["industry"]).To(Equal("general"))
	})

	It("checks feasibility", func() {
		res := call("check_feasibility", map[string]any{"requirement": "Customers create invoices."})
		Expect(res.IsError).To(BeFalse())
		Expect(resultJSON(res)).To(HaveKey("overall_feasibility"))
	})

	It("builds a server", func() {
		Expect(mcpserver.New(services)).NotTo(BeNil())
	})
})
