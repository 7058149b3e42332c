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

package errors

// Discriminants for every error kind the core surfaces, per spec.md §7.
const (
	CodeUnknown CodeError = iota

	// CodeClientShutdown: operation invoked after terminal shutdown.
	CodeClientShutdown
	// CodeNotConnected: operation invoked in Disconnected or Connecting.
	CodeNotConnected
	// CodeDisconnected: peer or transport dropped during an exchange.
	CodeDisconnected
	// CodeUnauthenticated: request rejected for missing auth.
	CodeUnauthenticated
	// CodeEmptyResponse: fewer than 8 bytes returned for the response header.
	CodeEmptyResponse
	// CodeStaleClient: server signalled the session is no longer valid.
	CodeStaleClient
	// CodeCannotEstablishConnection: retries exhausted or reconnection disabled.
	CodeCannotEstablishConnection
	// CodeInvalidTlsCertificatePath: the configured CA file could not be read.
	CodeInvalidTlsCertificatePath
	// CodeInvalidTlsCertificate: the CA file did not contain a valid certificate.
	CodeInvalidTlsCertificate
	// CodeInvalidTlsDomain: TLS enabled without a server name.
	CodeInvalidTlsDomain
	// CodeInvalidNumberEncoding: header bytes failed to decode.
	CodeInvalidNumberEncoding
	// CodeTcpError: generic platform socket error.
	CodeTcpError
	// CodeCommandStatus: a non-zero wire status with no more specific mapping.
	CodeCommandStatus
	// CodeInvalidConnectionString: the connection string did not match the
	// iggy[+tls]://[creds@]host:port[?option=value&...] grammar.
	CodeInvalidConnectionString
)

// retryable is the set of errors that SendWithResponseRetrying treats as
// worth one reconnect-and-retry cycle, per spec.md §4.6.
var retryable = map[CodeError]bool{
	CodeDisconnected:    true,
	CodeEmptyResponse:   true,
	CodeUnauthenticated: true,
	CodeStaleClient:     true,
}

// IsRetryable reports whether err belongs to the retry class.
func IsRetryable(err error) bool {
	e, ok := err.(Error)
	if !ok {
		return false
	}
	return retryable[e.Code()]
}

var (
	ErrClientShutdown           = New(CodeClientShutdown, "client is shut down")
	ErrNotConnected             = New(CodeNotConnected, "client is not connected")
	ErrDisconnected             = New(CodeDisconnected, "connection was dropped")
	ErrUnauthenticated          = New(CodeUnauthenticated, "client is not authenticated")
	ErrEmptyResponse            = New(CodeEmptyResponse, "response header was incomplete")
	ErrStaleClient              = New(CodeStaleClient, "server rejected the session as stale")
	ErrCannotEstablishConnection = New(CodeCannotEstablishConnection, "cannot establish connection")
	ErrInvalidTlsCertificatePath = New(CodeInvalidTlsCertificatePath, "invalid TLS CA certificate path")
	ErrInvalidTlsCertificate    = New(CodeInvalidTlsCertificate, "invalid TLS CA certificate")
	ErrInvalidTlsDomain         = New(CodeInvalidTlsDomain, "invalid TLS server name")
	ErrInvalidNumberEncoding    = New(CodeInvalidNumberEncoding, "invalid number encoding in response header")
	ErrTcpError                 = New(CodeTcpError, "transport error")
	ErrInvalidConnectionString  = New(CodeInvalidConnectionString, "invalid connection string")
)
