package domain

// Table is an opaque tabular value: an ordered sequence of named,
// equal-length columns, possibly carrying row-identity metadata.
//
// Concrete representations live in backend packages (columnar, records);
// everything above the backend layer treats tables as opaque and reaches
// them only through ports.Backend primitives. Tables are never mutated in
// place: every operation returns a new derived table.
type Table any
