/*
Package transformers provides reference transformation strategies for the
Graft applier.

Each strategy implements ports.Transformer and receives the selected
columns as one joint block:

  - Identity: returns the block unchanged. Useful for plumbing tests and
    for recipes that only reshape or rename.
  - Center: learns the mean of every numeric column at fit time and
    shifts cells by it at transform time (stateful).
  - RowStats: computes per-row aggregates (mean, sum, min, max) across
    the whole block (stateless, fit equals transform).

None of these is an encoder or an imputation strategy; they exist to
exercise the selection, naming and replay machinery with realistic
column arithmetic.
*/
package transformers
