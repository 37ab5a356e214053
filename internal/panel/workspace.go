package panel

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/Paintersrp/activities/internal/activity"
)

// Workspace tracks the open panels so a settings change can reach all of them.
type Workspace struct {
	panels []*Panel
}

func NewWorkspace() *Workspace {
	return &Workspace{}
}

// Open registers p and renders it. Opening an already open panel re-renders it.
func (w *Workspace) Open(ctx context.Context, p *Panel) error {
	if !slices.Contains(w.panels, p) {
		w.panels = append(w.panels, p)
	}
	return p.OnOpen(ctx)
}

// Close unregisters p and clears its container.
func (w *Workspace) Close(p *Panel) {
	idx := slices.Index(w.panels, p)
	if idx < 0 {
		return
	}
	w.panels = slices.Delete(w.panels, idx, idx+1)
	p.OnClose()
}

// CloseAll closes every open panel.
func (w *Workspace) CloseAll() {
	for len(w.panels) > 0 {
		w.Close(w.panels[len(w.panels)-1])
	}
}

// Panels returns the open panels in the order they were opened.
func (w *Workspace) Panels() []*Panel {
	return slices.Clone(w.panels)
}

func (w *Workspace) Len() int {
	return len(w.panels)
}

// RefreshAll re-renders every open panel. Errors are collected so that one
// failing panel does not keep the others stale.
func (w *Workspace) RefreshAll(ctx context.Context) error {
	var errs []error
	for _, p := range w.Panels() {
		if err := p.Render(ctx); err != nil {
			errs = append(errs, fmt.Errorf("panel %s: %w", p.ID(), err))
		}
	}
	return errors.Join(errs...)
}

// OnSettingsChanged matches the settings listener signature.
func (w *Workspace) OnSettingsChanged(ctx context.Context, _ activity.DisplaySettings) error {
	return w.RefreshAll(ctx)
}
