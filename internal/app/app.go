// Package app implements the application layer for starter.
package app

import (
	"context"
	"io"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/starter/internal/adapters/cas" //nolint:depguard // Fingerprints are computed in the app layer
	"go.trai.ch/starter/internal/core/domain"
	"go.trai.ch/starter/internal/core/ports"
	"go.trai.ch/starter/internal/engine/pipeline"
	"go.trai.ch/starter/internal/engine/resolver"
	"go.trai.ch/starter/internal/rules"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	metadataLoader ports.MetadataLoader
	requestLoader  ports.RequestLoader
	resolver       *resolver.Resolver
	registry       *rules.Registry
	store          ports.ResultStore
	renderer       ports.BuildRenderer
	tracer         ports.Tracer
	logger         ports.Logger

	now   func() time.Time
	newID func() string
}

// New creates a new App instance.
func New(
	metadataLoader ports.MetadataLoader,
	requestLoader ports.RequestLoader,
	res *resolver.Resolver,
	registry *rules.Registry,
	store ports.ResultStore,
	renderer ports.BuildRenderer,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		metadataLoader: metadataLoader,
		requestLoader:  requestLoader,
		resolver:       res,
		registry:       registry,
		store:          store,
		renderer:       renderer,
		tracer:         tracer,
		logger:         log,
		now:            time.Now,
		newID:          uuid.NewString,
	}
}

// WithClock replaces the clock used to timestamp results.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// WithIDGenerator replaces the generator of request ids.
func (a *App) WithIDGenerator(newID func() string) *App {
	a.newID = newID
	return a
}

// GenerateOptions configures Generate and GenerateAll.
type GenerateOptions struct {
	// MetadataPath is the catalog file. Empty selects starter.yaml.
	MetadataPath string
	// Format is the build file format to render. Empty skips rendering.
	Format string
	// Output receives the rendered build files.
	Output io.Writer
	// NoCache bypasses result store lookups. Results are still stored.
	NoCache bool
}

// LoadRequests reads the request files at paths.
func (a *App) LoadRequests(paths []string) ([]*domain.ProjectRequest, error) {
	reqs := make([]*domain.ProjectRequest, 0, len(paths))
	for _, path := range paths {
		req, err := a.requestLoader.LoadRequest(path)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// Generate resolves, post-processes, stores and renders a single request.
func (a *App) Generate(ctx context.Context, req *domain.ProjectRequest, opts GenerateOptions) (*domain.GenerationResult, error) {
	results, err := a.GenerateAll(ctx, []*domain.ProjectRequest{req}, opts)
	if err != nil {
		return nil, err
	}
	return results[0], nil
}

// GenerateAll processes reqs concurrently against one catalog load.
// Each request is owned by exactly one worker. Results are returned, and rendered,
// in the order of reqs.
func (a *App) GenerateAll(ctx context.Context, reqs []*domain.ProjectRequest, opts GenerateOptions) ([]*domain.GenerationResult, error) {
	if len(reqs) == 0 {
		return nil, domain.ErrNoRequests
	}

	metadata, err := a.metadataLoader.Load(opts.MetadataPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load catalog")
	}

	ruleList, err := a.registry.For(metadata)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build rules")
	}
	pipe := pipeline.New(a.tracer, ruleList...)

	specs := make([]domain.RuleSpec, len(ruleList))
	for i, r := range ruleList {
		specs[i] = describe(r)
	}
	digests := inputDigests{catalog: cas.CatalogDigest(metadata), rules: cas.RuleDigest(specs)}

	results := make([]*domain.GenerationResult, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, req := range reqs {
		g.Go(func() error {
			res, genErr := a.generate(gctx, pipe, metadata, digests, req, opts.NoCache)
			if genErr != nil {
				return zerr.With(zerr.Wrap(genErr, domain.ErrGenerationFailed.Error()), "request", req.Name)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.Format != "" && opts.Output != nil {
		for _, res := range results {
			if err := a.renderer.Render(opts.Output, opts.Format, res); err != nil {
				return nil, err
			}
		}
	}

	return results, nil
}

// inputDigests identify the catalog and rule list a batch runs against.
type inputDigests struct {
	catalog string
	rules   string
}

func (a *App) generate(
	ctx context.Context,
	pipe *pipeline.Pipeline,
	metadata *domain.Metadata,
	digests inputDigests,
	req *domain.ProjectRequest,
	noCache bool,
) (*domain.GenerationResult, error) {
	if req.ID == "" {
		req.ID = a.newID()
	}
	if req.Name == "" {
		req.Name = domain.DefaultProjectName
	}

	ctx, span := a.tracer.Start(ctx, "generate "+req.Name)
	defer span.End()
	span.SetAttribute("starter.request_id", req.ID)

	if err := a.resolver.Resolve(req, metadata); err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("starter.boot_version", req.BootVersion)

	fingerprint := cas.Fingerprint(req.BootVersion, req.Selected, digests.catalog, digests.rules)
	span.SetAttribute("starter.fingerprint", fingerprint)

	if !noCache {
		cached, err := a.store.Get(fingerprint)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		if cached != nil {
			span.SetAttribute("starter.cached", true)
			hit := *cached
			hit.RequestID = req.ID
			hit.Name = req.Name
			hit.BootVersion = req.BootVersion
			hit.Cached = true
			return &hit, nil
		}
	}

	if err := pipe.Process(ctx, req, metadata); err != nil {
		span.RecordError(err)
		return nil, err
	}

	result := domain.GenerationResult{
		RequestID:    req.ID,
		Name:         req.Name,
		BootVersion:  req.BootVersion,
		Fingerprint:  fingerprint,
		Dependencies: req.Resolved.All(),
		Timestamp:    a.now().UTC(),
	}

	if err := a.store.Put(result); err != nil {
		span.RecordError(err)
		return nil, err
	}

	return &result, nil
}

// RuleInfo describes a registered rule.
type RuleInfo struct {
	Name       string
	Triggers   []string
	MinVersion string
	Implies    *domain.Dependency
}

type describer interface {
	Describe() domain.RuleSpec
}

// describe returns the declaration of r, or just its name when r does not expose one.
func describe(r ports.RequestPostProcessor) domain.RuleSpec {
	if d, ok := r.(describer); ok {
		return d.Describe()
	}
	return domain.RuleSpec{Name: r.Name()}
}

// Rules lists the rules applied to requests resolved against the catalog at metadataPath.
func (a *App) Rules(metadataPath string) ([]RuleInfo, error) {
	metadata, err := a.metadataLoader.Load(metadataPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load catalog")
	}

	ruleList, err := a.registry.For(metadata)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build rules")
	}

	infos := make([]RuleInfo, 0, len(ruleList))
	for _, r := range ruleList {
		info := RuleInfo{Name: r.Name()}
		if _, ok := r.(describer); ok {
			spec := describe(r)
			info.Triggers = spec.Triggers
			info.MinVersion = spec.MinVersion
			info.Implies = &spec.Implies
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Clean removes all stored results.
func (a *App) Clean() error {
	if err := a.store.Clean(); err != nil {
		return err
	}
	a.logger.Info("removed stored results")
	return nil
}
