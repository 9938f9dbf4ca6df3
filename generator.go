package anyon

import (
	"context"
	"fmt"
	"io"
	"math/cmplx"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/theapemachine/errnie"
)

/*
Generator is the matrix of a braiding generator σ_Index in the basis of a
fusion space. Matrix[f][i] is the amplitude of reaching Basis[f] (or
States[f]) from Basis[i] (or States[i]).

Single-qudit generators fill Basis, multi-qudit generators fill States.
*/
type Generator struct {
	Index    int
	Anyons   int
	Qudits   int
	QuditLen int
	Matrix   [][]complex128
	Basis    []Qudit
	States   []State
}

type options struct {
	config   *Config
	renderer Renderer
	out      io.Writer
	show     *bool
}

// Option configures how a generator is assembled.
type Option func(*options)

func WithConfig(config *Config) Option {
	return func(o *options) {
		o.config = config
	}
}

// WithRenderer sets the collaborator used when the generator is shown.
func WithRenderer(renderer Renderer, out io.Writer) Option {
	return func(o *options) {
		o.renderer = renderer
		o.out = out
	}
}

// WithShow overrides Config.Show.
func WithShow(show bool) Option {
	return func(o *options) {
		o.show = &show
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.config == nil {
		o.config = NewConfig()
	}
	if o.renderer == nil {
		o.renderer = NewTableRenderer(o.config.Tolerance)
	}
	if o.out == nil {
		o.out = os.Stdout
	}
	if o.show == nil {
		o.show = &o.config.Show
	}

	return o
}

/*
BraidingGenerator computes σ_index on nAnyons τ anyons fused left to right,
exchanging anyon index with anyon index+1.
*/
func BraidingGenerator(ctx context.Context, index, nAnyons int, opts ...Option) (*Generator, error) {
	o := newOptions(opts)

	if index < 1 || index > nAnyons-1 {
		return nil, fmt.Errorf("%w: σ_%d on %d anyons", ErrInvalidIndex, index, nAnyons)
	}

	basis, err := FindBasis(nAnyons)
	if err != nil {
		return nil, err
	}

	errnie.Info("BraidingGenerator - index %d, anyons %d, dimension %d", index, nAnyons, len(basis))

	matrix, err := assemble(ctx, o.config, basis, func(final, initial Qudit) (complex128, error) {
		return Sigma(index, final, initial)
	})
	if err != nil {
		return nil, err
	}

	generator := &Generator{
		Index:    index,
		Anyons:   nAnyons,
		Qudits:   1,
		QuditLen: nAnyons - 1,
		Matrix:   matrix,
		Basis:    basis,
	}

	o.display(generator)
	return generator, nil
}

/*
MultiBraidingGenerator computes σ_index on nQudits qudits of quditLen
outcomes each (quditLen+1 anyons per qudit), fused qudit by qudit.
*/
func MultiBraidingGenerator(ctx context.Context, index, nQudits, quditLen int, opts ...Option) (*Generator, error) {
	o := newOptions(opts)

	nAnyons := nQudits * (quditLen + 1)
	if index < 1 || index > nAnyons-1 {
		return nil, fmt.Errorf("%w: σ_%d on %d qudits of %d anyons", ErrInvalidIndex, index, nQudits, quditLen+1)
	}

	states, err := FindMultiBasis(nQudits, quditLen)
	if err != nil {
		return nil, err
	}

	errnie.Info(
		"MultiBraidingGenerator - index %d, qudits %d, qudit length %d, dimension %d",
		index, nQudits, quditLen, len(states),
	)

	matrix, err := assemble(ctx, o.config, states, func(final, initial State) (complex128, error) {
		return MultiSigma(index, final, initial)
	})
	if err != nil {
		return nil, err
	}

	generator := &Generator{
		Index:    index,
		Anyons:   nAnyons,
		Qudits:   nQudits,
		QuditLen: quditLen,
		Matrix:   matrix,
		States:   states,
	}

	o.display(generator)
	return generator, nil
}

/*
assemble evaluates cell for every (final, initial) pair of basis, one row per
job on a pool that lives for this call only. The first failing row aborts
the whole matrix.
*/
func assemble[T any](
	ctx context.Context, config *Config, basis []T, cell func(final, initial T) (complex128, error),
) ([][]complex128, error) {
	pool := newPool(ctx, config, len(basis))
	defer pool.Close()

	pending := make([]chan Result, len(basis))
	for f := range basis {
		pending[f] = pool.Schedule(uuid.NewString(), func() (any, error) {
			row := make([]complex128, len(basis))
			for i := range basis {
				amplitude, err := cell(basis[f], basis[i])
				if err != nil {
					return nil, fmt.Errorf("row %d, column %d: %w", f, i, err)
				}
				row[i] = amplitude
			}
			return row, nil
		})
	}

	matrix := make([][]complex128, len(basis))
	for f, ch := range pending {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case result := <-ch:
			if result.Error != nil {
				return nil, result.Error
			}
			matrix[f] = result.Value.([]complex128)
		}
	}

	return matrix, nil
}

func (o *options) display(g *Generator) {
	if !*o.show {
		return
	}

	if err := o.renderer.Render(o.out, g); err != nil {
		errnie.Info("failed to render σ_%d: %v", g.Index, err)
	}
}

func (g *Generator) Len() int {
	return len(g.Matrix)
}

// Labels returns a printable name for every basis state, in matrix order.
func (g *Generator) Labels() []string {
	labels := make([]string, 0, g.Len())
	for _, qudit := range g.Basis {
		labels = append(labels, qudit.String())
	}
	for _, state := range g.States {
		labels = append(labels, state.String())
	}
	return labels
}

// Apply returns the image of vector under the generator.
func (g *Generator) Apply(vector Amplitudes) (Amplitudes, error) {
	if len(vector) != g.Len() {
		return nil, fmt.Errorf("%w: vector of length %d for dimension %d", ErrInvalidShape, len(vector), g.Len())
	}

	out := make(Amplitudes, g.Len())
	for f, row := range g.Matrix {
		for i, amplitude := range row {
			out[f] += amplitude * vector[i]
		}
	}
	return out, nil
}

/*
Inverse returns the conjugate transpose of g, which is σ_Index⁻¹ since braid
generators are unitary. The inverse reports its index as -Index.
*/
func (g *Generator) Inverse() *Generator {
	inverse := *g
	inverse.Index = -g.Index
	inverse.Matrix = make([][]complex128, g.Len())

	for f := range g.Matrix {
		inverse.Matrix[f] = make([]complex128, g.Len())
		for i := range g.Matrix {
			inverse.Matrix[f][i] = cmplx.Conj(g.Matrix[i][f])
		}
	}

	return &inverse
}

// ColumnNorms returns Σ_f |M[f][i]|² for every column i.
func (g *Generator) ColumnNorms() []float64 {
	norms := make([]float64, g.Len())
	for _, row := range g.Matrix {
		for i, prob := range Amplitudes(row).Probabilities() {
			norms[i] += prob
		}
	}
	return norms
}

// IsUnitary reports whether M†M is the identity within tol.
func (g *Generator) IsUnitary(tol float64) bool {
	n := g.Len()
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			var sum complex128
			for k := 0; k < n; k++ {
				sum += cmplx.Conj(g.Matrix[k][a]) * g.Matrix[k][b]
			}

			var want complex128
			if a == b {
				want = 1
			}
			if cmplx.Abs(sum-want) > tol {
				return false
			}
		}
	}
	return true
}

// Dump returns a deep, human-readable dump of g for debugging.
func (g *Generator) Dump() string {
	return spew.Sdump(g)
}
