/*
Package ports defines the driven ports (interfaces) for the Graft applier.

These interfaces decouple the core logic from concrete tabular
representations and transformation strategies, allowing the applier to
work with any backend and any transformer that honors the contracts.

# Key Interfaces

  - Backend: The primitive operation set over one tabular representation
    (list columns, select, concatenate, rename, copy row identity).
  - Transformer: A cloneable transformation strategy applied to a block
    of selected columns as one joint input.

RunBackendContract is a reusable test suite that verifies a Backend
implementation against the semantics the applier relies on.
*/
package ports
