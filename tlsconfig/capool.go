package tlsconfig

import (
	"crypto/x509"
	"os"
)

func loadCertPool(path string) (*x509.CertPool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	pool := x509.NewCertPool()
	pool.AppendCertsFromPEM(raw)
	return pool, nil
}
