package core

import "context"

// Decision is the user's answer to a part warning.
type Decision int

const (
	Abort Decision = iota
	Proceed
)

func (d Decision) String() string {
	if d == Proceed {
		return "proceed"
	}

	return "abort"
}

// Warning asks the user to confirm a part that only fits some slots.
type Warning struct {
	// Slot is the zero-based part slot the name came from
	Slot    int
	Part    string
	Message string
}

// Confirmer puts warnings to the user. Confirm blocks until answered.
type Confirmer interface {
	Confirm(ctx context.Context, w Warning) (Decision, error)
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(ctx context.Context, w Warning) (Decision, error)

func (f ConfirmerFunc) Confirm(ctx context.Context, w Warning) (Decision, error) {
	return f(ctx, w)
}

// ProceedAll accepts every warning. Used when the user passed --yes.
var ProceedAll = ConfirmerFunc(func(context.Context, Warning) (Decision, error) {
	return Proceed, nil
})

// AbortAll declines every warning. Used when nobody can answer a prompt.
var AbortAll = ConfirmerFunc(func(context.Context, Warning) (Decision, error) {
	return Abort, nil
})
