package crud

import (
	"context"
	"errors"
	"fmt"
)

// Phase is the controller's form lifecycle state:
// Idle -> Editing (dialog open) -> Submitting -> Idle | Error.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseEditing
	PhaseSubmitting
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseEditing:
		return "editing"
	case PhaseSubmitting:
		return "submitting"
	case PhaseError:
		return "error"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

var (
	// ErrValidation is returned by Submit when the draft has field errors.
	// The per-field messages are available via Errors().
	ErrValidation = errors.New("draft has validation errors")

	// ErrPending is returned when a mutation is already in flight; the
	// submit control stays disabled until it settles.
	ErrPending = errors.New("a mutation is already pending")

	// ErrNotEditing is returned by Submit when no dialog is open.
	ErrNotEditing = errors.New("no draft is being edited")
)

// Config wires a Controller's collaborators. Fetcher, Mutator, Validate,
// Seed and Defaults are required; Cache defaults to a fresh MemoryCache.
type Config[T any, D any] struct {
	// Resource names the collection; it prefixes the cache keys.
	Resource string
	Fetcher  Fetcher[T]
	Mutator  Mutator[D]
	Cache    Cache[T]
	// Validate returns the field error set for a draft.
	Validate func(D) FieldErrors
	// Seed builds a draft from an existing record for editing.
	Seed func(T) D
	// Defaults builds the initial draft for a create form.
	Defaults func() D
	// Confirm is asked before a delete executes. Nil declines every
	// delete, which keeps destructive actions opt-in.
	Confirm func(id int64) bool
	// OnChange, when set, observes phase transitions.
	OnChange func(Phase)
}

// Controller owns pagination state, the form draft and the mutation
// lifecycle for one resource's admin screen. It is driven from a single
// event loop and is not safe for concurrent use; only its Cache is.
type Controller[T any, D any] struct {
	cfg Config[T, D]

	page  int
	size  int
	items []T
	total int
	pages int

	draft  D
	errs   FieldErrors
	editID int64 // 0 while creating
	phase  Phase

	loadErr error
}

// NewController creates a controller in the Idle phase on page 1.
func NewController[T any, D any](cfg Config[T, D]) (*Controller[T, D], error) {
	if cfg.Resource == "" {
		return nil, errors.New("crud: Resource is required")
	}
	if cfg.Fetcher == nil || cfg.Mutator == nil {
		return nil, errors.New("crud: Fetcher and Mutator are required")
	}
	if cfg.Validate == nil || cfg.Seed == nil || cfg.Defaults == nil {
		return nil, errors.New("crud: Validate, Seed and Defaults are required")
	}
	if cfg.Cache == nil {
		cfg.Cache = NewMemoryCache[T]()
	}
	return &Controller[T, D]{
		cfg:   cfg,
		page:  1,
		size:  DefaultPageSize,
		draft: cfg.Defaults(),
	}, nil
}

// Load fetches the current page through the query cache. A failure is
// kept as the banner error until the next successful load.
func (c *Controller[T, D]) Load(ctx context.Context) error {
	key := Key{Resource: c.cfg.Resource, Page: c.page, Size: c.size}
	page, err := c.cfg.Cache.GetOrFetch(ctx, key, func(ctx context.Context) (Page[T], error) {
		return c.cfg.Fetcher.List(ctx, key.Page, key.Size)
	})
	if err != nil {
		c.loadErr = err
		return err
	}
	c.loadErr = nil
	c.items = page.Items
	c.total = page.Total
	c.pages = page.Pages
	return nil
}

// SetPage moves to the given page (clamped to 1) and reloads.
func (c *Controller[T, D]) SetPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	c.page = page
	return c.Load(ctx)
}

// SetPageSize changes the page size and resets to page 1. Sizes outside
// PageSizes fall back to the default.
func (c *Controller[T, D]) SetPageSize(ctx context.Context, size int) error {
	p := ListParams{Page: 1, Size: size}
	p.Normalize()
	c.size = p.Size
	c.page = 1
	return c.Load(ctx)
}

// New opens the create dialog with a default draft.
func (c *Controller[T, D]) New() {
	c.draft = c.cfg.Defaults()
	c.errs = nil
	c.editID = 0
	c.setPhase(PhaseEditing)
}

// Edit opens the edit dialog with a draft seeded from the record.
func (c *Controller[T, D]) Edit(id int64, record T) {
	c.draft = c.cfg.Seed(record)
	c.errs = nil
	c.editID = id
	c.setPhase(PhaseEditing)
}

// Validate runs the resource's field rules against the current draft and
// stores the resulting error set.
func (c *Controller[T, D]) Validate() FieldErrors {
	c.errs = c.cfg.Validate(c.draft)
	return c.errs
}

// Submit validates the draft and executes the create or update mutation.
// On success the collection cache is invalidated, the form resets and the
// page reloads. On failure the dialog stays open in the Error phase; there
// is no automatic rollback.
func (c *Controller[T, D]) Submit(ctx context.Context) error {
	switch c.phase {
	case PhaseSubmitting:
		return ErrPending
	case PhaseEditing, PhaseError:
		// proceed
	default:
		return ErrNotEditing
	}

	if !c.Validate().Valid() {
		c.setPhase(PhaseEditing)
		return ErrValidation
	}

	c.setPhase(PhaseSubmitting)

	var err error
	if c.editID == 0 {
		err = c.cfg.Mutator.Create(ctx, c.draft)
	} else {
		err = c.cfg.Mutator.Update(ctx, c.editID, c.draft)
	}
	if err != nil {
		c.setPhase(PhaseError)
		return err
	}

	c.cfg.Cache.Invalidate(c.cfg.Resource)
	c.ResetForm()
	return c.Load(ctx)
}

// Delete asks the confirm collaborator and, if accepted, executes the
// delete mutation and invalidates the collection. Declining leaves the
// list and the cache untouched. Returns whether the delete ran.
func (c *Controller[T, D]) Delete(ctx context.Context, id int64) (bool, error) {
	if c.phase == PhaseSubmitting {
		return false, ErrPending
	}
	if c.cfg.Confirm == nil || !c.cfg.Confirm(id) {
		return false, nil
	}

	if err := c.cfg.Mutator.Delete(ctx, id); err != nil {
		c.loadErr = err
		return false, err
	}

	c.cfg.Cache.Invalidate(c.cfg.Resource)
	return true, c.Load(ctx)
}

// ResetForm restores the default draft, clears errors and closes the
// dialog.
func (c *Controller[T, D]) ResetForm() {
	c.draft = c.cfg.Defaults()
	c.errs = nil
	c.editID = 0
	c.setPhase(PhaseIdle)
}

func (c *Controller[T, D]) setPhase(p Phase) {
	c.phase = p
	if c.cfg.OnChange != nil {
		c.cfg.OnChange(p)
	}
}

// Accessors for the rendering collaborator.

// Items returns the currently loaded page of records.
func (c *Controller[T, D]) Items() []T { return c.items }

// Total returns the server-reported collection size.
func (c *Controller[T, D]) Total() int { return c.total }

// Pages returns the server-reported page count.
func (c *Controller[T, D]) Pages() int { return c.pages }

// Params returns the client-owned page window.
func (c *Controller[T, D]) Params() ListParams { return ListParams{Page: c.page, Size: c.size} }

// Draft returns the working copy for the form to bind to.
func (c *Controller[T, D]) Draft() *D { return &c.draft }

// Errors returns the current field error set.
func (c *Controller[T, D]) Errors() FieldErrors { return c.errs }

// EditingID returns the record being edited, or 0 when creating.
func (c *Controller[T, D]) EditingID() int64 { return c.editID }

// Phase returns the form lifecycle phase.
func (c *Controller[T, D]) Phase() Phase { return c.phase }

// DialogOpen reports whether the create/edit dialog is showing.
func (c *Controller[T, D]) DialogOpen() bool { return c.phase != PhaseIdle }

// LoadError returns the banner error from the last failed load, if any.
func (c *Controller[T, D]) LoadError() error { return c.loadErr }
