package transformers

import (
	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/ports"
)

// Identity returns its input unchanged. It carries no learned state.
type Identity struct{}

// NewIdentity creates the identity transformer.
func NewIdentity() *Identity {
	return &Identity{}
}

// Clone returns a fresh identity transformer.
func (i *Identity) Clone() ports.Transformer {
	return NewIdentity()
}

// FitTransform returns tbl unchanged.
func (i *Identity) FitTransform(tbl, y domain.Table) (domain.Table, error) {
	return tbl, nil
}

// Transform returns tbl unchanged.
func (i *Identity) Transform(tbl domain.Table) (domain.Table, error) {
	return tbl, nil
}
