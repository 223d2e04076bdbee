// Package server wires transport, router, and filter into a runnable
// HTTP/1.1 server and a pool of named servers, grounded on
// nabbar-golib/httpserver's Settings/Server/Pool layering
// (config.go/server.go/pool.go).
package server

import (
	"time"

	"github.com/go-playground/validator/v10"

	liberr "github.com/nabbar/netkit/errors"
	"github.com/nabbar/netkit/filter"
	"github.com/nabbar/netkit/logger"
	"github.com/nabbar/netkit/router"
	"github.com/nabbar/netkit/tlsconfig"
	"github.com/nabbar/netkit/transport"
)

// Settings is the per-server configuration: header/body byte limits,
// read timeout, and the ordered filter list, plus the listen
// address/mode this toolkit needs to actually bind a socket. Validated
// with go-playground/validator/v10 struct tags, following
// nabbar-golib/httpserver.ServerConfig.Validate().
type Settings struct {
	Name string `validate:"required"`

	Address string `validate:"required,hostname_rfc1123|ip"`
	Port    uint16 `validate:"required"`

	Mode transport.Mode

	TLS *tlsconfig.Config

	ReuseAddress bool

	HeaderLimitBytes int           `validate:"gte=0"`
	BodyLimitBytes   int           `validate:"gte=0"`
	ReadTimeout      time.Duration `validate:"gte=0"`

	Filters []filter.Filter

	// Mandatory makes this server's start failure abort Pool.Run: the
	// pool is shut down and that error returned at once. An optional
	// server's start failure does not stop the remaining servers from
	// starting; it is collected into the error Pool.Run returns.
	Mandatory bool
}

var validate = validator.New()

// Validate checks Settings' struct tags and, when Mode is ModeTLS or
// ModeDetect, that a TLS config was supplied and is itself valid.
func (s Settings) Validate() liberr.Error {
	if err := validate.Struct(s); err != nil {
		return liberr.ErrConfigValidate.Error(err)
	}

	if (s.Mode == transport.ModeTLS || s.Mode == transport.ModeDetect) && s.TLS == nil {
		return liberr.ErrConfigValidate.Errorf("server %q: TLS config required for this mode", s.Name)
	}
	if s.TLS != nil {
		if err := s.TLS.Validate(); err != nil {
			return liberr.ErrConfigValidate.Error(err)
		}
	}

	return nil
}

// limits derives transport.Limits from Settings, substituting the
// documented defaults for zero values.
func (s Settings) limits() transport.Limits {
	l := transport.DefaultLimits()
	if s.HeaderLimitBytes > 0 {
		l.HeaderBytes = s.HeaderLimitBytes
	}
	if s.BodyLimitBytes > 0 {
		l.BodyBytes = s.BodyLimitBytes
	}
	if s.ReadTimeout > 0 {
		l.ReadTimeout = s.ReadTimeout
	}
	return l
}

func (s Settings) pipeline(r *router.Router, log logger.Logger) *transport.Pipeline {
	return &transport.Pipeline{
		Router:  r,
		Filters: filter.NewChain(s.Filters...),
		Limits:  s.limits(),
		Log:     log,
	}
}
