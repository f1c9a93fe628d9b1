package cli

import (
	"context"

	"github.com/lmonteiro/studa/internal/domain"
	"github.com/lmonteiro/studa/internal/store"
)

// App holds the stores shared by every command.
type App struct {
	Subjects *store.SubjectStore
	Goals    *store.Store[domain.Goal]
	Sessions *store.Store[domain.StudySession]
	Focus    *store.FocusStore

	// IsInteractive reports whether stdin is a terminal; interactive forms
	// are offered only when it returns true.
	IsInteractive func() bool
}

// LoadAll performs the one-time initial load of every store. Mutations
// before this completes would be suppressed by the stores.
func (a *App) LoadAll(ctx context.Context) {
	a.Subjects.Load(ctx)
	a.Goals.Load(ctx)
	a.Sessions.Load(ctx)
	a.Focus.Load(ctx)
}

// Flush waits for all scheduled persistence writes. One-shot commands
// would otherwise exit before their own background writes land.
func (a *App) Flush() {
	a.Subjects.Flush()
	a.Goals.Flush()
	a.Sessions.Flush()
	a.Focus.Flush()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
