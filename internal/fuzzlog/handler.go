/*
 * ARM fuzzer - slog.Handler for operator-facing diagnostics.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package fuzzlog provides the slog.Handler used for all operator-facing
// diagnostic output: startup banner, configuration errors, oracle errors,
// execution anomalies, and child-respawn notices.
package fuzzlog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Handler writes leveled, timestamped lines to an underlying writer and,
// for warnings and above (or when debug is enabled), mirrors them to stderr.
type Handler struct {
	out   io.Writer
	h     slog.Handler
	mu    *sync.Mutex
	debug bool
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{out: h.out, h: h.h.WithAttrs(attrs), mu: h.mu, debug: h.debug}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{out: h.out, h: h.h.WithGroup(name), mu: h.mu, debug: h.debug}
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	level := r.Level.String() + ":"
	formattedTime := r.Time.Format("2006/01/02 15:04:05")

	strs := []string{formattedTime, level, r.Message}

	if r.NumAttrs() != 0 {
		r.Attrs(func(a slog.Attr) bool {
			strs = append(strs, a.Key+"="+a.Value.String())
			return true
		})
	}
	result := strings.Join(strs, " ") + "\n"
	b := []byte(result)

	h.mu.Lock()
	defer h.mu.Unlock()

	var err error
	if h.out != nil {
		_, err = h.out.Write(b)
	}

	if h.debug || r.Level >= slog.LevelWarn {
		_, err = os.Stderr.Write(b)
	}
	return err
}

// SetDebug toggles mirroring of every record to stderr regardless of level.
func (h *Handler) SetDebug(debug bool) {
	h.debug = debug
}

// NewHandler wraps out (which may be nil to discard file output) in a
// Handler honoring opts.Level. opts.AddSource has no effect: records never
// carry a source location.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	w := out
	if w == nil {
		w = io.Discard
	}
	return &Handler{
		out: out,
		h: slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:     opts.Level,
			AddSource: opts.AddSource,
		}),
		mu: &sync.Mutex{},
	}
}
