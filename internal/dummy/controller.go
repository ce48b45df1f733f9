package dummy

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// ErrControllerFailure is returned by RaiseException.
var ErrControllerFailure = errors.New("dummy error in controller")

// Controller is the business logic behind the dummy commands.
type Controller interface {
	GetPageByFilter(ctx context.Context, correlationID string, filter Filter, paging Paging) (Page, error)
	GetOneByID(ctx context.Context, correlationID, id string) (*Dummy, error)
	Create(ctx context.Context, correlationID string, d Dummy) (Dummy, error)
	Update(ctx context.Context, correlationID string, d Dummy) (*Dummy, error)
	DeleteByID(ctx context.Context, correlationID, id string) (*Dummy, error)
	RaiseException(ctx context.Context, correlationID string) error
	Ping(ctx context.Context) (bool, error)
}

// MemoryController keeps dummies in memory, in creation order.
//
// Concurrency: MemoryController is safe for concurrent use.
type MemoryController struct {
	mu      sync.RWMutex
	entries []Dummy
	newID   func() string
}

var _ Controller = (*MemoryController)(nil)

// NewMemoryController creates an empty controller.
func NewMemoryController() *MemoryController {
	return &MemoryController{newID: uuid.NewString}
}

// GetPageByFilter returns the matching dummies within the requested window.
func (c *MemoryController) GetPageByFilter(ctx context.Context, _ string, filter Filter, paging Paging) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	matched := make([]Dummy, 0, len(c.entries))
	for _, d := range c.entries {
		if filter.matches(d) {
			matched = append(matched, d)
		}
	}

	page := Page{}
	if paging.Total {
		total := int64(len(matched))
		page.Total = &total
	}

	n := int64(len(matched))
	take := paging.Take
	if take <= 0 {
		take = DefaultTake
	}
	start := min(max(paging.Skip, 0), n)
	end := n
	if take < n-start {
		end = start + take
	}
	page.Data = matched[start:end]
	return page, nil
}

// GetOneByID returns the dummy with id, or nil.
func (c *MemoryController) GetOneByID(ctx context.Context, _ string, id string) (*Dummy, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(id); i >= 0 {
		d := c.entries[i]
		return &d, nil
	}
	return nil, nil
}

// Create stores d, assigning a new id when d has none.
func (c *MemoryController) Create(ctx context.Context, _ string, d Dummy) (Dummy, error) {
	if err := ctx.Err(); err != nil {
		return Dummy{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if d.ID == "" {
		d.ID = c.newID()
	}
	c.entries = append(c.entries, d)
	return d, nil
}

// Update replaces the stored dummy with the same id. It returns nil when
// there is none.
func (c *MemoryController) Update(ctx context.Context, _ string, d Dummy) (*Dummy, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(d.ID)
	if i < 0 {
		return nil, nil
	}
	c.entries[i] = d
	return &d, nil
}

// DeleteByID removes the dummy with id and returns it, or nil.
func (c *MemoryController) DeleteByID(ctx context.Context, _ string, id string) (*Dummy, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	d := c.entries[i]
	c.entries = slices.Delete(c.entries, i, i+1)
	return &d, nil
}

// RaiseException always fails with ErrControllerFailure.
func (c *MemoryController) RaiseException(_ context.Context, _ string) error {
	return ErrControllerFailure
}

// Ping reports that the controller is alive.
func (c *MemoryController) Ping(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return true, nil
}

// Len returns the number of stored dummies.
func (c *MemoryController) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *MemoryController) indexOf(id string) int {
	return slices.IndexFunc(c.entries, func(d Dummy) bool { return d.ID == id })
}
