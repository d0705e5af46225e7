// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"github.com/kataras/golog"

	"github.com/uibridge/uibridge/io/input"
)

// Option configures a Platform.
type Option func(p *Platform)

// DefaultScrollScale is the number of points scrolled per wheel notch.
const DefaultScrollScale = 32

// WithLogger replaces the package logger.
func WithLogger(l *golog.Logger) Option {
	return func(p *Platform) {
		if l != nil {
			p.log = l
		}
	}
}

// WithContext drives ctx instead of a new input.Router.
func WithContext(ctx input.Context) Option {
	return func(p *Platform) {
		if ctx != nil {
			p.ctx = ctx
		}
	}
}

// WithScrollScale sets the points scrolled per wheel notch.
// Non-positive values are ignored.
func WithScrollScale(s float32) Option {
	return func(p *Platform) {
		if s > 0 {
			p.scrollScale = s
		}
	}
}
