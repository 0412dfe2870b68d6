// Package pipeline runs post-processing rules over resolved requests.
package pipeline

import (
	"context"

	"go.trai.ch/starter/internal/core/domain"
	"go.trai.ch/starter/internal/core/ports"
	"go.trai.ch/zerr"
)

// Pipeline applies an ordered list of rules to each request exactly once.
// It holds no per-request state and may process distinct requests concurrently.
type Pipeline struct {
	tracer ports.Tracer
	rules  []ports.RequestPostProcessor
}

// New creates a Pipeline running rules in the given order.
func New(tracer ports.Tracer, rules ...ports.RequestPostProcessor) *Pipeline {
	return &Pipeline{
		tracer: tracer,
		rules:  append([]ports.RequestPostProcessor(nil), rules...),
	}
}

// Rules returns the rules in application order.
func (p *Pipeline) Rules() []ports.RequestPostProcessor {
	return append([]ports.RequestPostProcessor(nil), p.rules...)
}

// Process applies every rule to req. Cancellation is checked between rules.
// A panicking rule stops the pipeline with domain.ErrRuleFailed.
func (p *Pipeline) Process(ctx context.Context, req *domain.ProjectRequest, metadata *domain.Metadata) error {
	ctx, span := p.tracer.Start(ctx, "post-process")
	defer span.End()

	span.SetAttribute("starter.request", req.Name)
	span.SetAttribute("starter.rules", len(p.rules))

	before := req.Resolved.Len()
	for _, rule := range p.rules {
		if err := ctx.Err(); err != nil {
			err = zerr.Wrap(err, "post-processing cancelled")
			span.RecordError(err)
			return err
		}
		if err := p.apply(ctx, rule, req, metadata); err != nil {
			span.RecordError(err)
			return err
		}
	}

	span.SetAttribute("starter.added", req.Resolved.Len()-before)
	return nil
}

func (p *Pipeline) apply(ctx context.Context, rule ports.RequestPostProcessor, req *domain.ProjectRequest, metadata *domain.Metadata) (err error) {
	name := rule.Name()
	_, span := p.tracer.Start(ctx, "rule."+name)
	defer span.End()

	defer zerr.Defer(func(recovered error) {
		err = zerr.With(domain.WithMeta(domain.ErrRuleFailed, "rule", name), "panic", recovered.Error())
		span.RecordError(err)
	})

	before := req.Resolved.Len()
	rule.Apply(req, metadata)

	if added := req.Resolved.Len() - before; added > 0 {
		span.SetAttribute("starter.added", added)
		span.AddEvent("dependencies.added")
	}
	return nil
}
