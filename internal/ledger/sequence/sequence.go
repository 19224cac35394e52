// Package sequence provides a monotonic id generator over a caller-owned
// counter, so the counter can live wherever the owning collection persists.
package sequence

type Generator struct {
	counter *int
}

func New(counter *int) *Generator {
	return &Generator{counter: counter}
}

func (g *Generator) Next() int {
	*g.counter++

	return *g.counter
}
