package service

import (
	"basegraph.app/blueprint/internal/aggregator"
	"basegraph.app/blueprint/internal/assistant"
	"basegraph.app/blueprint/internal/intake"
	"basegraph.app/blueprint/internal/prd"
	"basegraph.app/blueprint/internal/queue"
	"basegraph.app/blueprint/internal/store"
)

type Services struct {
	stores     *store.Stores
	aggregator *aggregator.Aggregator
	assembler  *prd.Assembler
	assistant  assistant.Assistant
	graph      GraphSink
	issues     intake.IssueSource
	producer   queue.Producer
	statuses   queue.JobStatusStore
}

type Option func(*Services)

// WithAssistant replaces the offline assistant.
func WithAssistant(a assistant.Assistant) Option {
	return func(s *Services) { s.assistant = a }
}

func WithGraphSink(g GraphSink) Option {
	return func(s *Services) { s.graph = g }
}

func WithIssueSource(src intake.IssueSource) Option {
	return func(s *Services) { s.issues = src }
}

// WithQueue enables async generation.
func WithQueue(producer queue.Producer) Option {
	return func(s *Services) { s.producer = producer }
}

func WithJobStatuses(statuses queue.JobStatusStore) Option {
	return func(s *Services) { s.statuses = statuses }
}

func NewServices(stores *store.Stores, opts ...Option) *Services {
	s := &Services{
		stores:     stores,
		aggregator: aggregator.New(stores.Contexts(), stores.History()),
		assembler:  prd.New(),
		assistant:  assistant.New(nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Services) Requirements() RequirementService {
	return NewRequirementService(s.aggregator, s.graph, s.issues)
}

func (s *Services) PRDs() PRDService {
	return NewPRDService(s.aggregator, s.assembler, s.stores.PRDs(), s.producer, s.statuses)
}

func (s *Services) Guidance() GuidanceService {
	return NewGuidanceService()
}

func (s *Services) Assistant() assistant.Assistant {
	return s.assistant
}
