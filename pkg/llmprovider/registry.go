package llmprovider

import (
	"context"
	"strings"

	"study-assistant/pkg/log"
)

// Registry maps model identifiers to Provider instances and is the single
// dispatch boundary: one provider, one call, no fallback chain.
type Registry struct {
	providers map[string]Provider // keyed by model identifier
	order     []string            // registration order, for listings
	logger    log.Logger
}

// ModelStatus describes one configured model choice for catalog listings.
type ModelStatus struct {
	Model    string
	Provider string
	Ready    bool
}

// NewRegistry creates a Registry over the given providers. Later
// registrations for the same model identifier are ignored.
func NewRegistry(providers []Provider, logger log.Logger) *Registry {
	r := &Registry{
		providers: make(map[string]Provider, len(providers)),
		logger:    logger,
	}
	for _, p := range providers {
		if _, exists := r.providers[p.Model()]; exists {
			continue
		}
		r.providers[p.Model()] = p
		r.order = append(r.order, p.Model())
	}
	return r
}

// Lookup returns the provider serving the given model identifier.
func (r *Registry) Lookup(model string) (Provider, bool) {
	p, ok := r.providers[model]
	return p, ok
}

// Ready reports whether the given model is served by a usable backend.
func (r *Registry) Ready(model string) bool {
	p, ok := r.providers[model]
	return ok && p.Ready()
}

// Models lists all configured model choices in registration order.
func (r *Registry) Models() []ModelStatus {
	out := make([]ModelStatus, 0, len(r.order))
	for _, m := range r.order {
		p := r.providers[m]
		out = append(out, ModelStatus{Model: m, Provider: p.Name(), Ready: p.Ready()})
	}
	return out
}

// Generate resolves the model to its provider and performs exactly one
// generation call. The returned text is trimmed; every failure is wrapped
// into a ProviderError so callers see one error shape.
func (r *Registry) Generate(ctx context.Context, model string, req *Request) (*Response, error) {
	p, ok := r.providers[model]
	if !ok {
		return nil, ErrUnknownModel
	}
	if !p.Ready() {
		return nil, ErrMissingCredential
	}

	resp, err := p.GenerateContent(ctx, req)
	if err != nil {
		r.logger.Warnf(ctx, "llm generation failed: provider=%s model=%s: %v", p.Name(), p.Model(), err)
		return nil, &ProviderError{Provider: p.Name(), Err: err}
	}

	resp.Text = strings.TrimSpace(resp.Text)

	if resp.Usage != nil {
		r.logger.Infof(ctx, "llm generation ok: provider=%s model=%s tokens=%d",
			p.Name(), p.Model(), resp.Usage.TotalTokens)
	}

	return resp, nil
}
