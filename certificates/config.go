/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package certificates builds a *tls.Config for the connection stream from a
// small, immutable configuration: whether TLS is enabled, the expected server
// name, an optional CA bundle file, and an optional min/max version pin.
//
// Mixing a custom CA bundle with the system root pool is deliberately not
// supported: if CAFile is set, only those roots are trusted.
package certificates

import (
	"crypto/tls"
	"crypto/x509"
	"os"

	"github.com/nabbar/iggytcp/certificates/ca"
	"github.com/nabbar/iggytcp/certificates/tlsversion"
)

// Config describes how to build the TLS client configuration for one connection.
type Config struct {
	// Enable turns the TLS wrapping on. When false, Build returns (nil, nil).
	Enable bool

	// ServerName is the expected certificate name (SNI). Required when Enable is true.
	ServerName string

	// CAFile, if non-empty, is a PEM file of root CAs to trust exclusively.
	// When empty, the platform's system root pool is used instead.
	CAFile string

	// VersionMin/VersionMax optionally pin the negotiated TLS version range.
	// Zero values leave crypto/tls's defaults in place.
	VersionMin tlsversion.Version
	VersionMax tlsversion.Version
}

// Build constructs a *tls.Config ready for use by the connection stream.
// It returns (nil, nil) when TLS is disabled.
func (c Config) Build() (*tls.Config, error) {
	if !c.Enable {
		return nil, nil
	}

	if c.ServerName == "" {
		return nil, ErrInvalidTlsDomain
	}

	pool, err := c.rootPool()
	if err != nil {
		return nil, err
	}

	cfg := &tls.Config{
		ServerName: c.ServerName,
		RootCAs:    pool,
		MinVersion: c.VersionMin.TLS(),
		MaxVersion: c.VersionMax.TLS(),
	}

	return cfg, nil
}

func (c Config) rootPool() (*x509.CertPool, error) {
	if c.CAFile == "" {
		pool, err := x509.SystemCertPool()
		if err != nil || pool == nil {
			return x509.NewCertPool(), nil
		}
		return pool, nil
	}

	raw, err := os.ReadFile(c.CAFile)
	if err != nil {
		return nil, ErrInvalidTlsCertificatePath
	}

	bundle, err := ca.ParseByte(raw)
	if err != nil {
		return nil, ErrInvalidTlsCertificate
	}

	pool := x509.NewCertPool()
	bundle.AppendPool(pool)
	return pool, nil
}
