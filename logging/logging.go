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

// Package logging gives every component a small, nil-safe logging surface
// backed by logrus, so an embedding application can route the client's logs
// into its own structured logger instead of a package-global one.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/nabbar/iggytcp/logging/level"
)

// Logger is the logging surface every component accepts. A nil *Logger is
// valid and discards everything, per New's zero-value contract below: use
// Discard() to get an explicit no-op instance instead of a bare nil when a
// value is required.
type Logger struct {
	entry *logrus.Entry
}

// New wraps an existing *logrus.Logger. If l is nil, a discard logger is
// returned.
func New(l *logrus.Logger, fields logrus.Fields) *Logger {
	if l == nil {
		return Discard()
	}
	return &Logger{entry: l.WithFields(fields)}
}

// Discard returns a Logger that drops every message.
func Discard() *Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &Logger{entry: logrus.NewEntry(l)}
}

// WithField returns a derived Logger carrying an additional structured
// field, for call sites that want to annotate a local address or command
// code without repeating it on every call.
func (g *Logger) WithField(key string, value interface{}) *Logger {
	if g == nil || g.entry == nil {
		return Discard()
	}
	return &Logger{entry: g.entry.WithField(key, value)}
}

func (g *Logger) log(lvl level.Level, args ...interface{}) {
	if g == nil || g.entry == nil {
		return
	}
	g.entry.Log(lvl.Logrus(), args...)
}

func (g *Logger) Debug(args ...interface{})   { g.log(level.DebugLevel, args...) }
func (g *Logger) Info(args ...interface{})    { g.log(level.InfoLevel, args...) }
func (g *Logger) Warning(args ...interface{}) { g.log(level.WarningLevel, args...) }
func (g *Logger) Error(args ...interface{})   { g.log(level.ErrorLevel, args...) }
