package usecase

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/bnema/webwindow/internal/application/port"
	"github.com/bnema/webwindow/internal/domain/entity"
	"github.com/bnema/webwindow/internal/logging"
	"github.com/rs/zerolog"
)

// HostPolicyConfig lists navigation rules. Host patterns match exactly or,
// with a leading "*.", any subdomain.
type HostPolicyConfig struct {
	AllowHosts   []string
	DenyHosts    []string
	DenyPrefixes []string
}

// HostPolicy is a navigation decider driven by host allow and deny lists.
// Only http(s) navigations are subject to host rules; deny prefixes apply
// to every URL.
type HostPolicy struct {
	mu     sync.RWMutex
	cfg    HostPolicyConfig
	logger zerolog.Logger
}

var _ port.NavigationDecider = (*HostPolicy)(nil)

// NewHostPolicy creates a policy from cfg.
func NewHostPolicy(ctx context.Context, cfg HostPolicyConfig) *HostPolicy {
	p := &HostPolicy{logger: logging.FromContext(ctx).With().Str("component", "navigation-policy").Logger()}
	p.Update(cfg)
	return p
}

// Update replaces the rules.
func (p *HostPolicy) Update(cfg HostPolicyConfig) {
	norm := HostPolicyConfig{
		AllowHosts:   normalizeHosts(cfg.AllowHosts),
		DenyHosts:    normalizeHosts(cfg.DenyHosts),
		DenyPrefixes: append([]string(nil), cfg.DenyPrefixes...),
	}
	p.mu.Lock()
	p.cfg = norm
	p.mu.Unlock()
}

// DecidePolicy implements port.NavigationDecider synchronously.
func (p *HostPolicy) DecidePolicy(_ context.Context, action entity.NavigationAction, decide func(entity.NavigationDecision)) {
	decide(p.Decide(action))
}

// Decide evaluates action against the rules.
func (p *HostPolicy) Decide(action entity.NavigationAction) entity.NavigationDecision {
	p.mu.RLock()
	cfg := p.cfg
	p.mu.RUnlock()

	for _, prefix := range cfg.DenyPrefixes {
		if prefix != "" && strings.HasPrefix(action.URL, prefix) {
			p.logger.Debug().Str("url", action.URL).Str("prefix", prefix).Msg("navigation denied by prefix")
			return entity.NavigationCancel
		}
	}

	scheme := action.Scheme()
	if scheme != "http" && scheme != "https" {
		return entity.NavigationAllow
	}

	u, err := url.Parse(action.URL)
	if err != nil {
		return entity.NavigationCancel
	}
	host := strings.ToLower(u.Hostname())

	if matchHost(cfg.DenyHosts, host) {
		p.logger.Debug().Str("host", host).Msg("navigation denied by host")
		return entity.NavigationCancel
	}
	if len(cfg.AllowHosts) > 0 && !matchHost(cfg.AllowHosts, host) {
		p.logger.Debug().Str("host", host).Msg("navigation outside allow list")
		return entity.NavigationCancel
	}
	return entity.NavigationAllow
}

func normalizeHosts(hosts []string) []string {
	out := make([]string, 0, len(hosts))
	for _, h := range hosts {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" {
			out = append(out, h)
		}
	}
	return out
}

func matchHost(patterns []string, host string) bool {
	for _, pattern := range patterns {
		if suffix, ok := strings.CutPrefix(pattern, "*."); ok {
			if host == suffix || strings.HasSuffix(host, "."+suffix) {
				return true
			}
			continue
		}
		if host == pattern {
			return true
		}
	}
	return false
}
