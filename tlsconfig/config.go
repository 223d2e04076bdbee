// Package tlsconfig supplies the validated configuration surface an
// embedder needs to hand a working *tls.Config to
// transport.NewSslConnection; handshake, shutdown, and encrypted record I/O
// stay entirely inside crypto/tls. Grounded on
// github.com/nabbar/golib/certificates.Config's validated-struct idiom.
package tlsconfig

import (
	"crypto/tls"
	"fmt"

	validator "github.com/go-playground/validator/v10"

	liberr "github.com/nabbar/netkit/errors"
)

// Config describes the certificate material and negotiation bounds for a
// server-side TLS listener.
type Config struct {
	// CertFile / KeyFile are PEM paths for the server certificate pair.
	CertFile string `validate:"required,file"`
	KeyFile  string `validate:"required,file"`

	// ClientCAFile, when set, enables client-certificate verification.
	ClientCAFile string

	// VersionMin / VersionMax bound the negotiated TLS version. Zero means
	// "let crypto/tls decide" for that bound.
	VersionMin uint16
	VersionMax uint16
}

// Validate checks struct tags via go-playground/validator, following
// nabbar-golib/httpserver.ServerConfig.Validate and
// nabbar-golib/certificates.Config's use of the same library.
func (c Config) Validate() liberr.Error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		if ve, ok := err.(*validator.InvalidValidationError); ok {
			return liberr.ErrConfigValidate.Error(ve)
		}
		out := liberr.ErrConfigValidate.Error(nil)
		for _, fe := range err.(validator.ValidationErrors) {
			//nolint:goerr113
			out.AddParent(fmt.Errorf("config field '%s' fails constraint '%s'", fe.Field(), fe.ActualTag()))
		}
		return out
	}
	return nil
}

// TLSConfig builds a server-ready *tls.Config from the validated
// certificate material. Handshake, shutdown, and record I/O stay entirely
// inside crypto/tls and the transport package; this is pure construction.
func (c Config) TLSConfig() (*tls.Config, liberr.Error) {
	cert, err := tls.LoadX509KeyPair(c.CertFile, c.KeyFile)
	if err != nil {
		return nil, liberr.ErrHandshake.Error(err)
	}

	cfg := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   c.VersionMin,
		MaxVersion:   c.VersionMax,
	}

	if c.ClientCAFile != "" {
		pool, e := loadCertPool(c.ClientCAFile)
		if e != nil {
			return nil, liberr.ErrHandshake.Error(e)
		}
		cfg.ClientCAs = pool
		cfg.ClientAuth = tls.RequireAndVerifyClientCert
	}

	return cfg, nil
}
