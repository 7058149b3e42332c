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

// Package config aggregates everything the client needs to open and maintain
// a connection into one immutable value: the endpoint, TLS settings, the
// reconnection policy, the socket profile, and the auto-login credentials.
// A Config is built directly, via Parse on a connection string, or decoded
// from JSON/YAML.
package config

import (
	"github.com/google/uuid"

	"github.com/nabbar/iggytcp/certificates"
	"github.com/nabbar/iggytcp/config/authmode"
	"github.com/nabbar/iggytcp/duration"
	"github.com/nabbar/iggytcp/sockopt"
)

// Reconnection controls the Reconnect Policy's retry loop.
type Reconnection struct {
	// Enabled turns automatic reconnection on. When false, a failed connect
	// attempt surfaces CannotEstablishConnection immediately, without retries.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// MaxRetries bounds the number of tcp_connect attempts after the first.
	// Nil means unlimited retries.
	MaxRetries *uint64 `json:"max_retries,omitempty" yaml:"max_retries,omitempty"`

	// Interval is the sleep between failed connect attempts.
	Interval duration.Duration `json:"interval" yaml:"interval"`

	// ReestablishAfter is the minimum time that must elapse since the last
	// successful connect before a fresh connect attempt is allowed to run
	// immediately; shorter gaps sleep out the remainder of the window first.
	ReestablishAfter duration.Duration `json:"reestablish_after" yaml:"reestablish_after"`
}

// Credentials carries the auto-login material selected by AuthMode.
type Credentials struct {
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
	Password string `json:"password,omitempty" yaml:"password,omitempty"`
	Token    string `json:"token,omitempty" yaml:"token,omitempty"`
}

// Config is the immutable configuration aggregate. Once constructed it is
// shared by reference across the client and its reconnect loop without
// further synchronization.
type Config struct {
	// ClientID identifies this client instance in diagnostic events and logs.
	ClientID uuid.UUID `json:"client_id" yaml:"client_id"`

	// Address is the broker endpoint, host:port.
	Address string `json:"address" yaml:"address"`

	// TLS describes whether and how the connection is wrapped in TLS.
	TLS certificates.Config `json:"tls" yaml:"tls"`

	// AuthMode selects the auto-login policy applied after each connect.
	AuthMode    authmode.Policy `json:"auth_mode" yaml:"auth_mode"`
	Credentials Credentials     `json:"credentials,omitempty" yaml:"credentials,omitempty"`

	// HeartbeatInterval drives the background Ping loop. Zero or negative
	// disables the heartbeat entirely.
	HeartbeatInterval duration.Duration `json:"heartbeat_interval" yaml:"heartbeat_interval"`

	// Reconnection controls the retry loop.
	Reconnection Reconnection `json:"reconnection" yaml:"reconnection"`

	// Socket is the profile applied to every dialed connection.
	Socket sockopt.Profile `json:"socket" yaml:"socket"`

	// DisableAdaptiveFlush opts out of the sleep-then-flush latency
	// refinement of spec.md's flush policy; every write flushes immediately.
	DisableAdaptiveFlush bool `json:"disable_adaptive_flush,omitempty" yaml:"disable_adaptive_flush,omitempty"`
}

// Default returns a Config with the usual defaults: TLS disabled, reconnection
// enabled with unlimited retries and a 1s interval, a 10s reestablish window,
// a 5s heartbeat, and the Balanced socket profile.
func Default(address string) Config {
	return Config{
		ClientID: uuid.New(),
		Address:  address,
		Reconnection: Reconnection{
			Enabled:          true,
			Interval:         duration.Seconds(1),
			ReestablishAfter: duration.Seconds(10),
		},
		HeartbeatInterval: duration.Seconds(5),
		Socket:            sockopt.Default(),
	}
}
