/*
Package domain contains the core domain models for the Graft applier.

It defines the vocabulary shared by every layer: the opaque Table value,
the frozen FitRecord produced by a successful fit, the error kinds the
applier reports, and the lifecycle events it emits. This package is kept
pure and free of external dependencies like I/O or persistence, following
Hexagonal Architecture principles.

# Key Entities

  - Table: An opaque tabular value, owned by exactly one backend.
  - FitRecord: The frozen column bookkeeping of one successful fit.
  - LifecycleHooks: Callbacks observing fit and transform calls.
  - SelectionError, ColumnNotFoundError, OutputTypeError: typed failures.
*/
package domain
