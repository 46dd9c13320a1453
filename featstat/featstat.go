/*
 * featstat.go, part of cgfeat.
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

// Package featstat computes statistics over the geometrical features of a
// set of frames: per-feature means and standard deviations, z-scores, harmonic
// prior constants and histograms.
package featstat

import (
	"fmt"
	"math"
	"strings"

	"github.com/rmera/cgfeat"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const (
	kBoltzmann = 1.38064852e-23                   //J/K
	avogadro   = 6.022140857e23                   //1/mol
	jPerKcal   = 4184.0                           //J/kcal
	kB         = kBoltzmann * avogadro / jPerKcal //kcal/(mol K)
)

// Options for the statistics.
type Options struct {
	temperature float64
}

// DefaultOptions returns the default options: a temperature of 300 K.
func DefaultOptions() *Options {
	return &Options{temperature: 300}
}

// Temperature returns the temperature, in K, used for the prior constants, and sets
// it to the value given, if positive.
func (o *Options) Temperature(t ...float64) float64 {
	ret := o.temperature
	if len(t) > 0 && t[0] > 0 {
		o.temperature = t[0]
	}
	return ret
}

// Error is the error type for this package.
type Error struct {
	message string
	deco    []string
}

func (err *Error) Error() string {
	if len(err.deco) == 0 {
		return err.message
	}
	return fmt.Sprintf("%s [%s]", err.message, strings.Join(err.deco, " <- "))
}

// Decorate adds dec to the decoration of the error and returns the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func newError(caller, format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf("featstat: "+format, args...), deco: []string{caller}}
}

// GroupStats contains the mean and the population standard deviation of each column
// of a feature group.
type GroupStats struct {
	Mean []float64
	Std  []float64
}

// Stats contains the statistics for every non-empty group of a Features.
type Stats struct {
	Groups       map[string]*GroupStats
	Descriptions map[string][]cgfeat.Tuple
	order        []string
	frames       int
	kT           float64
}

// Compute returns the statistics for each column of each non-empty group in f.
// o can be nil.
func Compute(f *cgfeat.Features, o *Options) (*Stats, error) {
	if o == nil {
		o = DefaultOptions()
	}
	if f == nil || len(f.Groups()) == 0 {
		return nil, newError("Compute", "no features given")
	}
	S := &Stats{
		Groups:       make(map[string]*GroupStats),
		Descriptions: make(map[string][]cgfeat.Tuple, len(f.Descriptions)),
		order:        f.Groups(),
		frames:       f.NFrames(),
		kT:           kB * o.Temperature(),
	}
	for k, d := range f.Descriptions {
		S.Descriptions[k] = cgfeat.CopyTuples(d)
	}
	for _, k := range S.order {
		m := f.Group(k)
		_, c := m.Dims()
		gs := &GroupStats{Mean: make([]float64, c), Std: make([]float64, c)}
		col := make([]float64, S.frames)
		for j := 0; j < c; j++ {
			mat.Col(col, j, m)
			mean, variance := stat.PopMeanVariance(col, nil)
			gs.Mean[j] = mean
			gs.Std[j] = math.Sqrt(variance)
		}
		S.Groups[k] = gs
	}
	return S, nil
}

// Order returns the names of the groups in the statistics, in the order used by ZScores.
func (S *Stats) Order() []string {
	return S.order
}

// NFrames returns the number of frames the statistics were computed from.
func (S *Stats) NFrames() int {
	return S.frames
}

// KT returns the thermal energy, in kcal/mol, used for the prior constants.
func (S *Stats) KT() float64 {
	return S.kT
}

// ZScores returns a matrix with the same layout as f.All(), where each value
// is replaced by its z-score: its distance to the mean of its column in
// standard deviations. Columns with zero deviation give 0.
// f must have the same groups and columns as the features the statistics
// were computed from.
func (S *Stats) ZScores(f *cgfeat.Features) (*mat.Dense, error) {
	if f == nil {
		return nil, newError("ZScores", "no features given")
	}
	groups := f.Groups()
	if len(groups) != len(S.order) {
		return nil, newError("ZScores", "%d feature groups given, statistics have %d", len(groups), len(S.order))
	}
	var means, stds []float64
	for i, k := range groups {
		if k != S.order[i] {
			return nil, newError("ZScores", "group %s given where %s was expected", k, S.order[i])
		}
		_, c := f.Group(k).Dims()
		if c != len(S.Groups[k].Mean) {
			return nil, newError("ZScores", "group %s has %d columns, statistics have %d", k, c, len(S.Groups[k].Mean))
		}
		means = append(means, S.Groups[k].Mean...)
		stds = append(stds, S.Groups[k].Std...)
	}
	ret := f.All()
	ret.Apply(func(i, j int, v float64) float64 {
		if stds[j] == 0 {
			return 0
		}
		return (v - means[j]) / stds[j]
	}, ret)
	return ret, nil
}

// Prior contains the constants of a harmonic prior for each feature in a group:
// U = K/2 (x-X0)^2. K is in kcal/mol divided by the squared units of the feature.
type Prior struct {
	K  []float64
	X0 []float64
}

// Prior returns the harmonic constants for the given group, such that
// the Boltzmann distribution of the harmonic potential reproduces the
// mean and variance of each feature: K = kT/variance, X0 = mean.
// Features with zero variance get an infinite K.
func (S *Stats) Prior(group string) (*Prior, error) {
	gs, ok := S.Groups[group]
	if !ok {
		return nil, newError("Prior", "no statistics for group %q", group)
	}
	P := &Prior{K: make([]float64, len(gs.Std)), X0: make([]float64, len(gs.Mean))}
	copy(P.X0, gs.Mean)
	for i, s := range gs.Std {
		P.K[i] = S.kT / (s * s)
	}
	return P, nil
}
