// Package admin instantiates the crud controller for each administrative
// screen: room types, rooms, utility services, service usage and
// contracts. Each resource contributes its wire record, its form draft,
// the field validation rules and a constructor that wires the REST client
// and query cache together.
package admin

import (
	"dormdesk/pkg/client"
	"dormdesk/pkg/crud"
)

// Options carries the cross-screen collaborators: where the API lives,
// how to authenticate, how to confirm destructive actions and who
// observes state changes.
type Options struct {
	BaseURL    string
	Token      string
	TimeoutSec int

	// Confirm is consulted before any delete. Nil declines all deletes.
	Confirm func(id int64) bool
	// OnChange, when set, observes form phase transitions.
	OnChange func(crud.Phase)
}

func newController[T any, D any](resource string, o Options, validate func(D) crud.FieldErrors, seed func(T) D, defaults func() D) (*crud.Controller[T, D], *client.Client[T, D], error) {
	cl := client.New[T, D](o.BaseURL, resource, o.Token, o.TimeoutSec)
	ctrl, err := crud.NewController(crud.Config[T, D]{
		Resource: resource,
		Fetcher:  cl,
		Mutator:  cl,
		Validate: validate,
		Seed:     seed,
		Defaults: defaults,
		Confirm:  o.Confirm,
		OnChange: o.OnChange,
	})
	if err != nil {
		return nil, nil, err
	}
	return ctrl, cl, nil
}
