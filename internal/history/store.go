// Package history persists navigation so a session can resume where the
// previous one stopped.
package history

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"github.com/jask/pageshell/core/nav"
	"github.com/jask/pageshell/internal/database/repository"
	"github.com/jask/pageshell/internal/logging"
)

const writeTimeout = 2 * time.Second

// Store is a nav.LocationStore backed by MemoryHistory that records every
// change to sqlite. Write failures are logged and never block navigation.
type Store struct {
	mem     *nav.MemoryHistory
	repo    *repository.HistoryRepo
	session string
	logger  *zap.Logger
}

var _ nav.LocationStore = (*Store)(nil)

// Options configures Open.
type Options struct {
	// Initial is used when Resume is false or nothing has been recorded.
	Initial string
	// Resume starts at the last recorded location of any earlier session.
	Resume bool
	Logger *zap.Logger
}

// Open builds a Store over db, which must already be migrated.
func Open(ctx context.Context, db *sql.DB, opts Options) (*Store, error) {
	logger := logging.OrNop(opts.Logger)
	repo := repository.NewHistoryRepo(db)
	initial := opts.Initial
	if opts.Resume {
		last, err := repo.Last(ctx)
		if err != nil {
			return nil, err
		}
		if last != nil {
			initial = nav.Location{Path: last.Path, RawQuery: last.RawQuery}.String()
			logger.Info("resuming history", zap.String("location", initial), zap.String("from_session", last.Session))
		}
	}
	s := &Store{
		mem:     nav.NewMemoryHistory(initial),
		repo:    repo,
		session: repository.NewSession(),
		logger:  logger,
	}
	s.record(ctx, "start", s.mem.Current())
	return s, nil
}

// Session identifies the rows written by this store.
func (s *Store) Session() string { return s.session }

func (s *Store) Current() nav.Location { return s.mem.Current() }

func (s *Store) Subscribe(fn func(nav.Location)) func() { return s.mem.Subscribe(fn) }

func (s *Store) Navigate(path string) error {
	return s.apply("push", func() error { return s.mem.Navigate(path) })
}

func (s *Store) Replace(path string) error {
	return s.apply("replace", func() error { return s.mem.Replace(path) })
}

func (s *Store) Back() bool {
	moved := s.mem.Back()
	if moved {
		s.record(context.Background(), "back", s.mem.Current())
	}
	return moved
}

func (s *Store) Forward() bool {
	moved := s.mem.Forward()
	if moved {
		s.record(context.Background(), "forward", s.mem.Current())
	}
	return moved
}

// Entries exposes the in-memory stack.
func (s *Store) Entries() ([]nav.Location, int) { return s.mem.Entries() }

func (s *Store) apply(kind string, fn func() error) error {
	before := s.mem.Current()
	if err := fn(); err != nil {
		return err
	}
	if after := s.mem.Current(); after != before {
		s.record(context.Background(), kind, after)
	}
	return nil
}

func (s *Store) record(ctx context.Context, kind string, loc nav.Location) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	_, err := s.repo.Append(ctx, repository.HistoryEntry{
		Session:  s.session,
		Kind:     kind,
		Path:     loc.Path,
		RawQuery: loc.RawQuery,
	})
	if err != nil {
		s.logger.Warn("record history", zap.String("kind", kind), zap.String("location", loc.String()), zap.Error(err))
	}
}
