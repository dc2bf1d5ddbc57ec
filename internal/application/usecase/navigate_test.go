package usecase

import (
	"context"
	"testing"

	"github.com/bnema/webwindow/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestHostPolicy_Decide(t *testing.T) {
	cfg := HostPolicyConfig{
		AllowHosts:   []string{"Example.com", "*.wails.io"},
		DenyHosts:    []string{"ads.wails.io"},
		DenyPrefixes: []string{"app://admin/"},
	}

	tests := []struct {
		name string
		url  string
		want entity.NavigationDecision
	}{
		{"allowed host", "https://example.com/docs", entity.NavigationAllow},
		{"host match ignores case", "https://EXAMPLE.com/", entity.NavigationAllow},
		{"wildcard subdomain", "https://docs.wails.io/", entity.NavigationAllow},
		{"wildcard apex", "http://wails.io", entity.NavigationAllow},
		{"deny wins over allow", "https://ads.wails.io/track", entity.NavigationCancel},
		{"outside allow list", "https://evil.test/", entity.NavigationCancel},
		{"lookalike suffix", "https://notexample.com/", entity.NavigationCancel},
		{"custom scheme ignores host rules", "app://index.html", entity.NavigationAllow},
		{"deny prefix", "app://admin/panel", entity.NavigationCancel},
		{"about blank", "about:blank", entity.NavigationAllow},
	}

	p := NewHostPolicy(context.Background(), cfg)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Decide(entity.NavigationAction{URL: tt.url, MainFrame: true})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHostPolicy_EmptyAllowsEverything(t *testing.T) {
	p := NewHostPolicy(context.Background(), HostPolicyConfig{})

	var got []entity.NavigationDecision
	p.DecidePolicy(context.Background(), entity.NavigationAction{URL: "https://anything.test/"}, func(d entity.NavigationDecision) {
		got = append(got, d)
	})

	assert.Equal(t, []entity.NavigationDecision{entity.NavigationAllow}, got)
}

func TestHostPolicy_Update(t *testing.T) {
	p := NewHostPolicy(context.Background(), HostPolicyConfig{})
	action := entity.NavigationAction{URL: "https://blocked.test/"}
	assert.Equal(t, entity.NavigationAllow, p.Decide(action))

	p.Update(HostPolicyConfig{DenyHosts: []string{" blocked.test "}})

	assert.Equal(t, entity.NavigationCancel, p.Decide(action))
}
