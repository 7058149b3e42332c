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

// Package ca parses a PEM-encoded root CA bundle and exposes it as an
// x509.CertPool builder, for use by the certificates package when a caller
// supplies tls_ca_file instead of trusting the system root set.
package ca

import (
	"crypto/x509"
	"encoding/pem"
	"errors"
)

// ErrInvalidCertificate is returned when a PEM block cannot be parsed as a certificate.
var ErrInvalidCertificate = errors.New("ca: invalid certificate")

// Cert is a parsed chain of one or more CA certificates.
type Cert interface {
	// Len returns the number of certificates in the chain.
	Len() int
	// AppendPool adds every certificate in the chain to p.
	AppendPool(p *x509.CertPool)
	// AppendBytes parses and appends a PEM-encoded chain to the existing one.
	AppendBytes(p []byte) error
	// AppendString is AppendBytes over a string.
	AppendString(s string) error
}

type chain struct {
	c []*x509.Certificate
}

// Parse parses a PEM-encoded CA chain.
func Parse(s string) (Cert, error) {
	return ParseByte([]byte(s))
}

// ParseByte parses a PEM-encoded CA chain.
func ParseByte(p []byte) (Cert, error) {
	c := &chain{c: make([]*x509.Certificate, 0)}
	if e := c.AppendBytes(p); e != nil {
		return nil, e
	}
	return c, nil
}

func (o *chain) Len() int {
	if o == nil {
		return 0
	}
	return len(o.c)
}

func (o *chain) AppendPool(p *x509.CertPool) {
	if o == nil || p == nil {
		return
	}
	for _, c := range o.c {
		p.AddCert(c)
	}
}

func (o *chain) AppendBytes(p []byte) error {
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(p) {
		return ErrInvalidCertificate
	}

	certs, err := parseAllPEM(p)
	if err != nil {
		return err
	}

	o.c = append(o.c, certs...)
	return nil
}

func (o *chain) AppendString(s string) error {
	return o.AppendBytes([]byte(s))
}

func parseAllPEM(p []byte) ([]*x509.Certificate, error) {
	var (
		res   = make([]*x509.Certificate, 0)
		rest  = p
		block *pem.Block
	)

	for {
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}

		if block.Type != "CERTIFICATE" {
			continue
		}

		c, e := x509.ParseCertificate(block.Bytes)
		if e != nil {
			return nil, e
		}

		res = append(res, c)
	}

	if len(res) == 0 {
		return nil, ErrInvalidCertificate
	}

	return res, nil
}
