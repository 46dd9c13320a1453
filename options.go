/*
 * options.go, part of cgfeat.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package cgfeat

import (
	"log/slog"

	"gopkg.in/yaml.v3"
)

// Options contains the settings for the index generation and the
// feature engine. It is given explicitly to NewGeometry and NewGeometryFeature.
// Each setting has a method that returns the current value, and sets it
// if a valid value is given.
type Options struct {
	clampEps float64
	nanCheck bool
	cutoff   float64
	logger   *slog.Logger
}

// DefaultOptions returns an Options with the default settings.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.clampEps = 1e-12
	ret.nanCheck = false
	ret.cutoff = 0
	ret.logger = slog.Default()
	return ret
}

// ClampEpsilon returns the tolerance used to snap cosines slightly
// beyond ±1 (because of floating point errors) to ±1 before taking the
// arccos. It sets the value to the one given, if it is not negative.
func (o *Options) ClampEpsilon(e ...float64) float64 {
	ret := o.clampEps
	if len(e) > 0 && e[0] >= 0 {
		o.clampEps = e[0]
	}
	return ret
}

// NaNCheck returns whether the engine fails with ErrNaN when a computed
// feature is NaN, and sets it to the value given, if any. When false, NaNs
// (from zero-length bond vectors) are returned to the caller.
func (o *Options) NaNCheck(check ...bool) bool {
	ret := o.nanCheck
	if len(check) > 0 {
		o.nanCheck = check[0]
	}
	return ret
}

// Cutoff returns the default cutoff for neighbor lists, and sets it if
// a non-negative value is given. 0 means no cutoff.
func (o *Options) Cutoff(c ...float64) float64 {
	ret := o.cutoff
	if len(c) > 0 && c[0] >= 0 {
		o.cutoff = c[0]
	}
	return ret
}

// Logger returns the logger used by the engine and sets it if a non-nil
// one is given.
func (o *Options) Logger(l ...*slog.Logger) *slog.Logger {
	ret := o.logger
	if len(l) > 0 && l[0] != nil {
		o.logger = l[0]
	}
	return ret
}

// OptionsFromYAML returns the default options, modified by the
// keys present in the YAML document data. The recognized keys are
// clamp_epsilon, nan_check and cutoff.
func OptionsFromYAML(data []byte) (*Options, error) {
	var y struct {
		ClampEpsilon *float64 `yaml:"clamp_epsilon"`
		NaNCheck     *bool    `yaml:"nan_check"`
		Cutoff       *float64 `yaml:"cutoff"`
	}
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil, &CError{msg: "cgfeat: can't parse options: " + err.Error(), deco: []string{"OptionsFromYAML"}, kind: err}
	}
	o := DefaultOptions()
	if y.ClampEpsilon != nil {
		if *y.ClampEpsilon < 0 {
			return nil, newError(ErrOption, "OptionsFromYAML", "clamp_epsilon must not be negative, got %g", *y.ClampEpsilon)
		}
		o.ClampEpsilon(*y.ClampEpsilon)
	}
	if y.NaNCheck != nil {
		o.NaNCheck(*y.NaNCheck)
	}
	if y.Cutoff != nil {
		if *y.Cutoff < 0 {
			return nil, newError(ErrOption, "OptionsFromYAML", "cutoff must not be negative, got %g", *y.Cutoff)
		}
		o.Cutoff(*y.Cutoff)
	}
	return o, nil
}

// options returns o, or the default options if o is nil.
func options(o *Options) *Options {
	if o == nil {
		return DefaultOptions()
	}
	return o
}
