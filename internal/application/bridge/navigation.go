package bridge

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/webwindow/internal/domain/entity"
)

// DecidePolicyForNavigation gates a top-level or subframe navigation.
// Custom schemes without a handler are cancelled and reported without
// consulting the policy. decide is called exactly once on the UI thread.
func (b *Bridge) DecidePolicyForNavigation(action entity.NavigationAction, decide func(entity.NavigationDecision)) {
	action.WindowID = b.windowID
	if b.tornDown {
		decide(entity.NavigationCancel)
		return
	}

	scheme := action.Scheme()
	if !IsBuiltinScheme(scheme) {
		if _, ok := b.handlers[scheme]; !ok {
			b.fault(entity.FaultSchemeNotRegistered, action.URL, scheme,
				fmt.Errorf("navigate %s: %w", action.URL, entity.ErrSchemeNotRegistered))
			decide(entity.NavigationCancel)
			return
		}
	}

	if b.decider == nil {
		decide(entity.NavigationAllow)
		return
	}

	d := &pendingDecision{}
	b.decider.DecidePolicy(b.ctx, action, func(decision entity.NavigationDecision) {
		if d.answer(decision) {
			b.sched.Post(func() { b.finishDecision(action, decision, decide) })
		}
	})
	if decision, ok := d.returned(); ok {
		b.finishDecision(action, decision, decide)
	}
}

func (b *Bridge) finishDecision(action entity.NavigationAction, decision entity.NavigationDecision, decide func(entity.NavigationDecision)) {
	if b.tornDown {
		decision = entity.NavigationCancel
	}
	b.logger.Debug().
		Str("url", action.URL).
		Str("type", action.Type.String()).
		Bool("main_frame", action.MainFrame).
		Str("decision", decision.String()).
		Msg("navigation decided")
	decide(decision)
}

// pendingDecision tracks whether the policy answered before DecidePolicy
// returned (synchronous) or afterwards (deferred). Only the first answer
// counts.
type pendingDecision struct {
	mu       sync.Mutex
	answered bool
	done     bool
	early    *entity.NavigationDecision
}

// answer records decision and reports whether it must be posted.
func (p *pendingDecision) answer(decision entity.NavigationDecision) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.answered {
		return false
	}
	p.answered = true
	if !p.done {
		p.early = &decision
		return false
	}
	return true
}

func (p *pendingDecision) returned() (entity.NavigationDecision, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done = true
	if p.early == nil {
		return 0, false
	}
	return *p.early, true
}

// DidCommitNavigation records a committed document. A main-frame commit
// replaces the surface's document: drag regions and every frame's message
// numbering belong to the previous one and are dropped. A subframe commit
// only restarts that frame's numbering.
func (b *Bridge) DidCommitNavigation(frameID, url string, mainFrame bool) {
	if b.tornDown {
		return
	}
	if !mainFrame {
		delete(b.sequences, frameID)
		b.logger.Trace().Str("frame", frameID).Str("url", url).Msg("subframe committed")
		return
	}
	b.document++
	b.currentURL = url
	b.regions = nil
	b.sequences = make(map[string]uint64)
	b.logger.Debug().Str("url", url).Msg("navigation committed")
	if b.callbacks.OnNavigationCommitted != nil {
		b.callbacks.OnNavigationCommitted(b.windowID, url)
	}
}

// DidFailNavigation surfaces a failed load. Failures the bridge itself
// caused have already been reported.
func (b *Bridge) DidFailNavigation(url string, err error) {
	if errors.Is(err, entity.ErrSchemeNotRegistered) || errors.Is(err, entity.ErrHandlerFault) {
		return
	}
	b.fault(entity.FaultLoad, url, entity.SchemeOf(url), err)
}
