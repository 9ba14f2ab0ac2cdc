package mock

import "github.com/jackalderton/contentrec"

var _ contentrec.Assembler = (*Assembler)(nil)

// Assembler is a mock implementation of contentrec.Assembler.
type Assembler struct {
	AssembleFn func(template []byte, meta contentrec.Meta, lines []string) ([]byte, error)
}

func (a *Assembler) Assemble(template []byte, meta contentrec.Meta, lines []string) ([]byte, error) {
	return a.AssembleFn(template, meta, lines)
}
