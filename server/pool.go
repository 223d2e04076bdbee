package server

import (
	"sync"

	liberr "github.com/nabbar/netkit/errors"
	"github.com/nabbar/netkit/executor"
)

// Pool keeps a set of named Servers and starts/stops them together,
// grounded on nabbar-golib/httpserver/pool.go's PoolServer (Add/Get/Del/
// Has/Len plus aggregate Listen/Shutdown), simplified to this toolkit's
// scope: no bind-address merge semantics, no HTTP status reporting.
type Pool struct {
	mu      sync.Mutex
	byName  map[string]*Server
	ordered []*Server
}

// NewPool builds a Pool seeded with srv.
func NewPool(srv ...*Server) *Pool {
	p := &Pool{byName: make(map[string]*Server)}
	p.Add(srv...)
	return p
}

// Add registers srv, replacing any prior server of the same name.
func (p *Pool) Add(srv ...*Server) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, s := range srv {
		if _, exists := p.byName[s.Name()]; !exists {
			p.ordered = append(p.ordered, s)
		} else {
			for i, o := range p.ordered {
				if o.Name() == s.Name() {
					p.ordered[i] = s
					break
				}
			}
		}
		p.byName[s.Name()] = s
	}
}

// Get returns the server registered under name, or nil.
func (p *Pool) Get(name string) *Server {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.byName[name]
}

// Del removes and shuts down the server registered under name.
func (p *Pool) Del(name string) {
	p.mu.Lock()
	s, ok := p.byName[name]
	if !ok {
		p.mu.Unlock()
		return
	}
	delete(p.byName, name)
	for i, o := range p.ordered {
		if o.Name() == name {
			p.ordered = append(p.ordered[:i], p.ordered[i+1:]...)
			break
		}
	}
	p.mu.Unlock()

	s.Shutdown()
}

// Has reports whether name is registered.
func (p *Pool) Has(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.byName[name]
	return ok
}

// Len returns the number of registered servers.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.ordered)
}

// Run starts every registered server against the shared executor pool. A
// Mandatory server's start failure aborts Run and returns that error; an
// optional server's start failure is collected and returned alongside any
// others once every server has been attempted, following
// nabbar-golib/httpserver/pool.go's ListenMultiHandler accumulate-then-
// report pattern, but fails fast on a mandatory server instead of always
// running the whole set.
func (p *Pool) Run(ex executor.Pool) liberr.Error {
	p.mu.Lock()
	servers := append([]*Server(nil), p.ordered...)
	p.mu.Unlock()

	var accumulated liberr.Error
	for _, s := range servers {
		if err := s.Run(ex); err != nil {
			if s.settings.Mandatory {
				p.Shutdown()
				return err
			}
			if accumulated == nil {
				accumulated = liberr.UnknownError.Errorf("one or more optional servers failed to start")
			}
			accumulated.AddParent(err)
		}
	}
	return accumulated
}

// Shutdown stops every registered server, each on its own goroutine, and
// waits for all to finish closing their listener.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	servers := append([]*Server(nil), p.ordered...)
	p.mu.Unlock()

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s *Server) {
			defer wg.Done()
			s.Shutdown()
		}(s)
	}
	wg.Wait()
}

// IsRunning reports whether at least one registered server is running
// when atLeast is true, or whether every registered server is running
// when atLeast is false.
func (p *Pool) IsRunning(atLeast bool) bool {
	p.mu.Lock()
	servers := append([]*Server(nil), p.ordered...)
	p.mu.Unlock()

	if len(servers) == 0 {
		return false
	}

	running := false
	for _, s := range servers {
		if s.IsRunning() {
			running = true
			continue
		}
		if !atLeast {
			return false
		}
	}
	return running
}
