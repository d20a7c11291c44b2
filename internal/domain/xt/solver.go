package xt

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Counts are per-zone event tallies and the zone-to-zone move counts.
type Counts struct {
	Shots       [NumZones]float64
	Goals       [NumZones]float64
	Moves       [NumZones]float64
	Transitions *mat.Dense
}

// Count tallies shots and completed moves.
func Count(actions []Action, shots []Shot) Counts {
	c := Counts{Transitions: mat.NewDense(NumZones, NumZones, nil)}
	for _, s := range shots {
		z := Zone(s.X, s.Y)
		c.Shots[z]++
		if s.IsGoal {
			c.Goals[z]++
		}
	}
	for _, a := range actions {
		if !a.Completed {
			continue
		}
		from, to := Zone(a.StartX, a.StartY), Zone(a.EndX, a.EndY)
		c.Moves[from]++
		c.Transitions.Set(from, to, c.Transitions.At(from, to)+1)
	}
	return c
}

type SolveOptions struct {
	MaxIterations int
	Tolerance     float64
}

func DefaultSolveOptions() SolveOptions {
	return SolveOptions{MaxIterations: 100, Tolerance: 1e-6}
}

// Grid is a solved xT surface with its convergence diagnostics.
type Grid struct {
	PShot      [NumZones]float64
	PMove      [NumZones]float64
	PGoal      [NumZones]float64
	Values     [NumZones]float64
	Iterations int
	Converged  bool
	MaxDelta   float64
}

// Solve runs value iteration from zero until the largest zone change drops
// below the tolerance or the iteration cap is hit:
//
//	xT(z) = p_shot(z)*p_goal(z) + p_move(z) * sum_z' T(z,z')*xT(z')
func Solve(c Counts, opts SolveOptions) Grid {
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultSolveOptions().MaxIterations
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultSolveOptions().Tolerance
	}

	var g Grid
	reward := mat.NewVecDense(NumZones, nil)
	for z := 0; z < NumZones; z++ {
		g.PShot[z] = c.Shots[z] / (c.Shots[z] + c.Moves[z] + Epsilon)
		g.PMove[z] = 1 - g.PShot[z]
		g.PGoal[z] = c.Goals[z] / (c.Shots[z] + Epsilon)
		reward.SetVec(z, g.PShot[z]*g.PGoal[z])
	}

	transitions := normalizeRows(c.Transitions)
	current := mat.NewVecDense(NumZones, nil)
	next := mat.NewVecDense(NumZones, nil)
	for g.Iterations < opts.MaxIterations {
		g.Iterations++
		next.MulVec(transitions, current)

		maxDelta := 0.0
		for z := 0; z < NumZones; z++ {
			v := reward.AtVec(z) + g.PMove[z]*next.AtVec(z)
			maxDelta = math.Max(maxDelta, math.Abs(v-current.AtVec(z)))
			next.SetVec(z, v)
		}
		current, next = next, current
		g.MaxDelta = maxDelta
		if maxDelta < opts.Tolerance {
			g.Converged = true
			break
		}
	}

	for z := 0; z < NumZones; z++ {
		g.Values[z] = current.AtVec(z)
	}
	return g
}

// normalizeRows turns counts into probabilities. Zones without departures
// keep an all-zero row.
func normalizeRows(counts *mat.Dense) *mat.Dense {
	out := mat.NewDense(NumZones, NumZones, nil)
	if counts == nil {
		return out
	}
	for z := 0; z < NumZones; z++ {
		row := counts.RawRowView(z)
		total := 0.0
		for _, v := range row {
			total += v
		}
		if total == 0 {
			continue
		}
		for to, v := range row {
			if v != 0 {
				out.Set(z, to, v/total)
			}
		}
	}
	return out
}

// ValueAt returns the solved value of the zone holding (x, y).
func (g *Grid) ValueAt(x, y float64) float64 {
	return g.Values[Zone(x, y)]
}

// Added is the xT credit of an action. Incomplete actions earn nothing.
func (g *Grid) Added(a Action) (float64, bool) {
	if !a.Completed {
		return 0, false
	}
	return g.ValueAt(a.EndX, a.EndY) - g.ValueAt(a.StartX, a.StartY), true
}
