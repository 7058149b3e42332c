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

package config

import (
	"net/url"
	"strconv"
	"strings"

	liberr "github.com/nabbar/iggytcp/errors"

	"github.com/nabbar/iggytcp/certificates/tlsversion"
	"github.com/nabbar/iggytcp/config/authmode"
	"github.com/nabbar/iggytcp/duration"
	"github.com/nabbar/iggytcp/sockopt/mode"
)

// Parse builds a Config from a connection string of the form
// "iggy[+tls]://[creds@]host:port[?option=value&...]", where creds is
// "user:password" or "pat:token". Recognized query options are tls_domain,
// tls_ca_file, tls_min_version, tls_max_version, heartbeat_interval,
// reconnection_enabled, reconnection_max_retries, reconnection_interval,
// reestablish_after, nodelay, and socket_profile.
func Parse(raw string) (Config, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Config{}, liberr.ErrInvalidConnectionString.WithParent(err)
	}

	c := Default("")

	switch u.Scheme {
	case "iggy":
		c.TLS.Enable = false
	case "iggy+tls":
		c.TLS.Enable = true
	default:
		return Config{}, liberr.ErrInvalidConnectionString
	}

	if u.Host == "" {
		return Config{}, liberr.ErrInvalidConnectionString
	}
	c.Address = u.Host

	if u.User != nil {
		user := u.User.Username()
		pass, _ := u.User.Password()

		if user == "pat" {
			c.AuthMode = authmode.PersonalAccessToken
			c.Credentials.Token = pass
		} else {
			c.AuthMode = authmode.UsernamePassword
			c.Credentials.Username = user
			c.Credentials.Password = pass
		}
	}

	q := u.Query()

	if v := q.Get("tls_domain"); v != "" {
		c.TLS.ServerName = v
	}
	if v := q.Get("tls_ca_file"); v != "" {
		c.TLS.CAFile = v
	}
	if v := q.Get("tls_min_version"); v != "" {
		c.TLS.VersionMin = tlsversion.Parse(v)
	}
	if v := q.Get("tls_max_version"); v != "" {
		c.TLS.VersionMax = tlsversion.Parse(v)
	}
	if c.TLS.Enable && c.TLS.ServerName == "" {
		return Config{}, liberr.ErrInvalidTlsDomain
	}

	if v := q.Get("heartbeat_interval"); v != "" {
		d, err := duration.Parse(v)
		if err != nil {
			return Config{}, liberr.ErrInvalidConnectionString.WithParent(err)
		}
		c.HeartbeatInterval = d
	}

	if v := q.Get("reconnection_enabled"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, liberr.ErrInvalidConnectionString.WithParent(err)
		}
		c.Reconnection.Enabled = b
	}

	if v := q.Get("reconnection_max_retries"); v != "" {
		if strings.EqualFold(v, "unlimited") {
			c.Reconnection.MaxRetries = nil
		} else {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return Config{}, liberr.ErrInvalidConnectionString.WithParent(err)
			}
			c.Reconnection.MaxRetries = &n
		}
	}

	if v := q.Get("reconnection_interval"); v != "" {
		d, err := duration.Parse(v)
		if err != nil {
			return Config{}, liberr.ErrInvalidConnectionString.WithParent(err)
		}
		c.Reconnection.Interval = d
	}

	if v := q.Get("reestablish_after"); v != "" {
		d, err := duration.Parse(v)
		if err != nil {
			return Config{}, liberr.ErrInvalidConnectionString.WithParent(err)
		}
		c.Reconnection.ReestablishAfter = d
	}

	if v := q.Get("nodelay"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, liberr.ErrInvalidConnectionString.WithParent(err)
		}
		c.Socket.NoDelay = b
	}

	if v := q.Get("socket_profile"); v != "" {
		c.Socket.Mode = mode.Parse(v)
	}

	return c, nil
}
