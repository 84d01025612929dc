package helpdesk

import (
	"net/url"
	"sync"
	"time"
)

// DefaultDebounce is how long UserFilter waits after the last keystroke
// before firing.
const DefaultDebounce = 300 * time.Millisecond

// UserFilter mirrors the user-list filter inputs into a query string,
// debouncing rapid edits so only the settled value triggers a fetch.
type UserFilter struct {
	mu    sync.Mutex
	nome  string
	email string
	tipo  string

	debounce time.Duration
	timer    *time.Timer
	onChange func(url.Values)
}

func NewUserFilter(onChange func(url.Values)) *UserFilter {
	return &UserFilter{
		debounce: DefaultDebounce,
		onChange: onChange,
	}
}

// SetDebounce overrides the debounce interval; tests use a short one.
func (f *UserFilter) SetDebounce(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.debounce = d
}

func (f *UserFilter) SetNome(nome string) {
	f.mu.Lock()
	f.nome = nome
	f.scheduleLocked()
	f.mu.Unlock()
}

func (f *UserFilter) SetEmail(email string) {
	f.mu.Lock()
	f.email = email
	f.scheduleLocked()
	f.mu.Unlock()
}

func (f *UserFilter) SetTipo(tipo string) {
	f.mu.Lock()
	f.tipo = tipo
	f.scheduleLocked()
	f.mu.Unlock()
}

// Values returns the current filter as a query string with only the
// non-empty keys, so the result is shareable as a URL.
func (f *UserFilter) Values() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.valuesLocked()
}

func (f *UserFilter) valuesLocked() url.Values {
	query := url.Values{}
	if f.nome != "" {
		query.Set("nome", f.nome)
	}
	if f.email != "" {
		query.Set("email", f.email)
	}
	if f.tipo != "" {
		query.Set("tipo", f.tipo)
	}
	return query
}

// scheduleLocked restarts the debounce timer; each edit pushes the firing
// moment back.
func (f *UserFilter) scheduleLocked() {
	if f.onChange == nil {
		return
	}
	if f.timer != nil {
		f.timer.Stop()
	}
	f.timer = time.AfterFunc(f.debounce, func() {
		f.mu.Lock()
		values := f.valuesLocked()
		f.mu.Unlock()
		f.onChange(values)
	})
}

// Stop cancels any pending debounce firing.
func (f *UserFilter) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.timer != nil {
		f.timer.Stop()
	}
}
