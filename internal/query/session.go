package query

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/memeverse/memeverse/internal/model"
	"github.com/memeverse/memeverse/internal/pkg/debounce"
)

type Options struct {
	PageSize    int
	PageStep    int
	SearchDelay time.Duration
}

func (o Options) withDefaults() Options {
	if o.PageSize <= 0 {
		o.PageSize = 12
	}
	if o.PageStep <= 0 {
		o.PageStep = 8
	}
	return o
}

// Session holds one client's explore state. Any change to filter,
// search or sort resets the reveal cursor to its initial size; search
// commits go through the debouncer so rapid keystrokes coalesce into
// one query-state change after the quiet window.
type Session struct {
	mu        sync.Mutex
	params    Params
	sortState SortState
	cursor    Cursor
	search    *debounce.Debouncer
	lastTotal int
}

func NewSession(opts Options) *Session {
	opts = opts.withDefaults()
	return &Session{
		params:    Params{Filter: FilterAll, SortKey: SortNone, SortOrder: OrderDesc},
		sortState: NewSortState(),
		cursor:    NewCursor(opts.PageSize, opts.PageStep),
		search:    debounce.New(opts.SearchDelay),
	}
}

func (s *Session) SetFilter(filter string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if filter == "" {
		filter = FilterAll
	}
	if s.params.Filter == filter {
		return
	}
	s.params.Filter = filter
	s.cursor.Reset()
}

// SetSearch schedules a debounced commit of the search term. The
// commit happens after the configured quiet window; a zero delay
// commits synchronously.
func (s *Session) SetSearch(term string) {
	s.search.Trigger(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.params.Search == term {
			return
		}
		s.params.Search = term
		s.cursor.Reset()
	})
}

// FlushSearch commits a pending search term immediately.
func (s *Session) FlushSearch() {
	s.search.Flush()
}

// SelectSort applies the sort-button semantics. Both a key change and
// a direction flip reorder the result set, so the cursor resets.
func (s *Session) SelectSort(key SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortState.Select(key)
	s.params.SortKey = s.sortState.Key
	s.params.SortOrder = s.sortState.Order
	s.cursor.Reset()
}

// More tells the session the client has scrolled to the end of the
// current window.
func (s *Session) More() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor.Grow(s.lastTotal)
}

// View runs the pipeline over the catalog and returns the revealed
// window, the total result count and the committed params.
func (s *Session) View(catalog []model.Meme) ([]model.Meme, int, Params) {
	s.mu.Lock()
	params := s.params
	s.mu.Unlock()

	result := Apply(catalog, params)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastTotal = len(result)
	window := s.cursor.Window(len(result))
	return result[:window], len(result), params
}

// Manager keeps explore sessions keyed by client id in an expiring LRU
// so abandoned sessions age out on their own.
type Manager struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *Session]
	opts     Options
}

func NewManager(opts Options, maxSessions int, ttl time.Duration) *Manager {
	if maxSessions <= 0 {
		maxSessions = 1024
	}
	return &Manager{
		sessions: expirable.NewLRU[string, *Session](maxSessions, nil, ttl),
		opts:     opts.withDefaults(),
	}
}

// Get returns the session for id, creating it on first sight.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if session, ok := m.sessions.Get(id); ok {
		return session
	}
	session := NewSession(m.opts)
	m.sessions.Add(id, session)
	return session
}
