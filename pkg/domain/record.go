package domain

import "slices"

// FitRecord is the frozen result of one successful fit.
//
// It is owned by exactly one applier instance and replaced wholesale on
// re-fit, never mutated field by field. Output order is always the
// passthrough columns (in their fit-time table order) followed by the
// created columns (in the wrapped transformer's output order).
type FitRecord struct {
	// AllInputs lists the column names of the fit-time table, in order.
	AllInputs []string `json:"all_inputs"`

	// UsedInputs is the frozen selection: the columns routed to the
	// wrapped transformer, in resolution order.
	UsedInputs []string `json:"used_inputs"`

	// AllOutputs lists the output column names, passthrough first.
	AllOutputs []string `json:"all_outputs"`

	// CreatedOutputs lists the final names of the transformed block only.
	CreatedOutputs []string `json:"created_outputs"`
}

// Clone returns a deep copy of the record.
func (r *FitRecord) Clone() *FitRecord {
	if r == nil {
		return nil
	}
	return &FitRecord{
		AllInputs:      slices.Clone(r.AllInputs),
		UsedInputs:     slices.Clone(r.UsedInputs),
		AllOutputs:     slices.Clone(r.AllOutputs),
		CreatedOutputs: slices.Clone(r.CreatedOutputs),
	}
}

// PassthroughInputs returns the fit-time columns that were not selected,
// in their original relative order. These are the columns a transform-time
// table must still carry when the original columns are not kept.
func (r *FitRecord) PassthroughInputs() []string {
	var names []string
	for _, name := range r.AllInputs {
		if !slices.Contains(r.UsedInputs, name) {
			names = append(names, name)
		}
	}
	return names
}
