package catalog

import (
	"fmt"
	"log"
	"sync"

	"github.com/lunarok/pokedex-cli/internal/api"
)

// DefaultLimit bounds the load cycle to the original 151-entry roster.
const DefaultLimit = 151

// Loader runs the single load cycle of a session: one list request, then a
// concurrent detail fetch per reference, reassembled in reference order.
type Loader struct {
	client *api.Client
	limit  int
	logger *log.Logger
}

// NewLoader builds a loader over the given client. Limit values below one
// fall back to DefaultLimit.
func NewLoader(client *api.Client, limit int) *Loader {
	if limit < 1 {
		limit = DefaultLimit
	}
	return &Loader{
		client: client,
		limit:  limit,
		logger: log.Default(),
	}
}

// SetLogger redirects the failure sink. The TUI points this at bubbletea's
// log file so screen output stays clean.
func (l *Loader) SetLogger(logger *log.Logger) {
	if logger != nil {
		l.logger = logger
	}
}

// Load runs an all-or-nothing load cycle: any failed request invalidates
// the whole batch, the failure is logged once, and no list is produced.
func (l *Loader) Load() ([]Entry, error) {
	entries, _, err := l.run(false)
	return entries, err
}

// LoadPartial runs a best-effort load cycle: failed detail fetches are
// dropped, survivors keep reference order, and the dropped count is
// returned alongside the list. A failed list request still fails the load.
func (l *Loader) LoadPartial() ([]Entry, int, error) {
	return l.run(true)
}

func (l *Loader) run(partial bool) ([]Entry, int, error) {
	refs, err := l.client.ListPokemon(l.limit)
	if err != nil {
		err = fmt.Errorf("list pokemon: %w", err)
		l.logger.Printf("catalog load failed: %v", err)
		return nil, 0, err
	}

	// Fork-join fan-out: one goroutine per reference, each writing only its
	// own slot so the assembled order matches reference order no matter how
	// completions interleave.
	results := make([]*Entry, len(refs))
	errs := make([]error, len(refs))
	var wg sync.WaitGroup
	for i, ref := range refs {
		wg.Add(1)
		go func(i int, ref api.PokemonRef) {
			defer wg.Done()
			p, err := l.client.GetPokemon(ref.URL)
			if err != nil {
				errs[i] = fmt.Errorf("get %s: %w", ref.Name, err)
				return
			}
			entry := NewEntry(*p)
			results[i] = &entry
		}(i, ref)
	}
	wg.Wait()

	failed := 0
	var firstErr error
	for _, err := range errs {
		if err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if failed > 0 && !partial {
		l.logger.Printf("catalog load failed: %v (%d of %d fetches failed)", firstErr, failed, len(refs))
		return nil, 0, firstErr
	}
	if failed > 0 {
		l.logger.Printf("catalog load incomplete: %d of %d fetches failed (first: %v)", failed, len(refs), firstErr)
	}

	entries := make([]Entry, 0, len(refs))
	for _, r := range results {
		if r != nil {
			entries = append(entries, *r)
		}
	}
	return entries, failed, nil
}
