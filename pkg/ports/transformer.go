package ports

import "github.com/aretw0/graft/pkg/domain"

// Transformer is a transformation strategy applied to a block of selected
// columns as one joint input. Any concrete strategy (scaling, aggregation,
// encoding) implements this interface; the applier depends only on it.
//
// The applier clones its configured template before every fit, so a
// Transformer holds learned state from exactly one fit. Errors returned
// from FitTransform and Transform propagate to the caller unchanged.
type Transformer interface {
	// Clone returns a fresh instance with the same configuration and no
	// learned state, independent of the receiver.
	Clone() Transformer

	// FitTransform learns from tbl (and the optional target y, which may
	// be nil) and returns the transformed table in one pass.
	FitTransform(tbl, y domain.Table) (domain.Table, error)

	// Transform applies the learned state to a new table.
	Transform(tbl domain.Table) (domain.Table, error)
}
