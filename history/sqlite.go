package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("history: sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) SaveRun(ctx context.Context, run Run) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO runs (id, started, seed, population_size, frame_budget, mode, level)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			started = excluded.started,
			seed = excluded.seed,
			population_size = excluded.population_size,
			frame_budget = excluded.frame_budget,
			mode = excluded.mode,
			level = excluded.level
	`, run.ID, run.Started.UnixNano(), int64(run.Seed), run.PopulationSize, run.FrameBudget, run.Mode, run.Level)
	return err
}

func (s *SQLiteStore) GetRun(ctx context.Context, id string) (Run, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return Run{}, false, err
	}

	row := db.QueryRowContext(ctx, `
		SELECT id, started, seed, population_size, frame_budget, mode, level
		FROM runs WHERE id = ?
	`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, false, nil
	}
	if err != nil {
		return Run{}, false, err
	}
	return run, true, nil
}

func (s *SQLiteStore) ListRuns(ctx context.Context) ([]Run, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, started, seed, population_size, frame_budget, mode, level
		FROM runs ORDER BY started, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (s *SQLiteStore) AppendGeneration(ctx context.Context, gen Generation) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	var known int
	err = db.QueryRowContext(ctx, `SELECT COUNT(1) FROM runs WHERE id = ?`, gen.RunID).Scan(&known)
	if err != nil {
		return err
	}
	if known == 0 {
		return fmt.Errorf("%w: %s", ErrUnknownRun, gen.RunID)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO generations (
			run_id, idx, mode, best, mean, worst, diversity,
			completed, key_holders, dead, best_moves, elapsed_ns
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id, idx) DO UPDATE SET
			mode = excluded.mode,
			best = excluded.best,
			mean = excluded.mean,
			worst = excluded.worst,
			diversity = excluded.diversity,
			completed = excluded.completed,
			key_holders = excluded.key_holders,
			dead = excluded.dead,
			best_moves = excluded.best_moves,
			elapsed_ns = excluded.elapsed_ns
	`, gen.RunID, gen.Index, gen.Mode, gen.Best, gen.Mean, gen.Worst, gen.Diversity,
		gen.Completed, gen.KeyHolders, gen.Dead, gen.BestMoves, int64(gen.Elapsed))
	if err != nil {
		return fmt.Errorf("history: append generation %d: %w", gen.Index, err)
	}
	return nil
}

func (s *SQLiteStore) GetGenerations(ctx context.Context, runID string) ([]Generation, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, false, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT run_id, idx, mode, best, mean, worst, diversity,
			completed, key_holders, dead, best_moves, elapsed_ns
		FROM generations WHERE run_id = ? ORDER BY idx
	`, runID)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	var gens []Generation
	for rows.Next() {
		var (
			g       Generation
			elapsed int64
		)
		if err := rows.Scan(&g.RunID, &g.Index, &g.Mode, &g.Best, &g.Mean, &g.Worst, &g.Diversity,
			&g.Completed, &g.KeyHolders, &g.Dead, &g.BestMoves, &elapsed); err != nil {
			return nil, false, err
		}
		g.Elapsed = time.Duration(elapsed)
		gens = append(gens, g)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}
	if len(gens) == 0 {
		return nil, false, nil
	}
	return gens, true, nil
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrNotInitialized
	}
	return s.db, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var (
		run     Run
		started int64
		seed    int64
	)
	if err := row.Scan(&run.ID, &started, &seed, &run.PopulationSize, &run.FrameBudget, &run.Mode, &run.Level); err != nil {
		return Run{}, err
	}
	run.Started = time.Unix(0, started).UTC()
	run.Seed = uint64(seed)
	return run, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			population_size INTEGER NOT NULL,
			frame_budget INTEGER NOT NULL,
			mode TEXT NOT NULL,
			level TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS generations (
			run_id TEXT NOT NULL REFERENCES runs(id),
			idx INTEGER NOT NULL,
			mode TEXT NOT NULL,
			best REAL NOT NULL,
			mean REAL NOT NULL,
			worst REAL NOT NULL,
			diversity REAL NOT NULL,
			completed INTEGER NOT NULL,
			key_holders INTEGER NOT NULL,
			dead INTEGER NOT NULL,
			best_moves TEXT NOT NULL,
			elapsed_ns INTEGER NOT NULL,
			PRIMARY KEY (run_id, idx)
		);
	`)
	return err
}
