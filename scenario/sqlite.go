package scenario

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/coder2754/Smart-AutoClicker/core"
	"github.com/coder2754/Smart-AutoClicker/observable"
)

// SQLiteStore is a durable ScenarioStore backed by a SQLite database. The
// tutorial mode toggle itself stays in memory: it is a visibility gate for
// the lifetime of one tutorial session, not persistent state.
type SQLiteStore struct {
	mu           sync.Mutex
	db           *sql.DB
	tutorialMode bool
	successList  *observable.Value[[]core.TutorialSuccess]
}

const schema = `
CREATE TABLE IF NOT EXISTS scenarios (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	detection_quality INTEGER NOT NULL,
	end_condition_or INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS tutorial_success (
	tutorial_index INTEGER PRIMARY KEY,
	scenario_id INTEGER NOT NULL REFERENCES scenarios(id),
	completed INTEGER NOT NULL
);`

// OpenSQLiteStore opens (creating if needed) a scenario database at the given
// path and loads the current success list.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	s := &SQLiteStore{db: db, successList: observable.New[[]core.TutorialSuccess](nil)}
	list, err := s.loadSuccessList()
	if err != nil {
		db.Close()
		return nil, err
	}
	s.successList.Set(list)
	return s, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// TutorialSuccessList exposes the ordered success records as an observable
// state stream.
func (s *SQLiteStore) TutorialSuccessList() *observable.Value[[]core.TutorialSuccess] {
	return s.successList
}

// StartTutorialMode segregates normal scenario visibility.
func (s *SQLiteStore) StartTutorialMode() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tutorialMode = true
}

// StopTutorialMode restores normal scenario visibility.
func (s *SQLiteStore) StopTutorialMode() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tutorialMode = false
}

// IsTutorialModeActive reports whether tutorial mode is currently on.
func (s *SQLiteStore) IsTutorialModeActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tutorialMode
}

// AddScenario inserts a scenario row and returns its assigned id.
func (s *SQLiteStore) AddScenario(spec core.ScenarioSpec) (core.ScenarioID, error) {
	endOr := 0
	if spec.EndConditionOr {
		endOr = 1
	}
	res, err := s.db.Exec(
		`INSERT INTO scenarios (name, detection_quality, end_condition_or) VALUES (?, ?, ?)`,
		spec.Name, spec.DetectionQuality, endOr,
	)
	if err != nil {
		return 0, fmt.Errorf("insert scenario: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("scenario id: %w", err)
	}
	return core.ScenarioID(id), nil
}

// Scenario returns the spec stored under the given id.
func (s *SQLiteStore) Scenario(id core.ScenarioID) (core.ScenarioSpec, bool, error) {
	var spec core.ScenarioSpec
	var endOr int
	err := s.db.QueryRow(
		`SELECT name, detection_quality, end_condition_or FROM scenarios WHERE id = ?`, int64(id),
	).Scan(&spec.Name, &spec.DetectionQuality, &endOr)
	if err == sql.ErrNoRows {
		return core.ScenarioSpec{}, false, nil
	}
	if err != nil {
		return core.ScenarioSpec{}, false, fmt.Errorf("query scenario: %w", err)
	}
	spec.EndConditionOr = endOr != 0
	return spec, true, nil
}

// TutorialScenarioID returns the scenario id recorded for the tutorial at the
// given index.
func (s *SQLiteStore) TutorialScenarioID(index int) (core.ScenarioID, bool, error) {
	var id int64
	err := s.db.QueryRow(
		`SELECT scenario_id FROM tutorial_success WHERE tutorial_index = ?`, index,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("query tutorial scenario: %w", err)
	}
	return core.ScenarioID(id), true, nil
}

// IsTutorialSucceed reports whether a success is recorded for the index.
func (s *SQLiteStore) IsTutorialSucceed(index int) (bool, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM tutorial_success WHERE tutorial_index = ?`, index,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("query tutorial success: %w", err)
	}
	return count > 0, nil
}

// SetTutorialSuccess upserts the outcome of a tutorial run and republishes
// the success list.
func (s *SQLiteStore) SetTutorialSuccess(index int, id core.ScenarioID, completed bool) error {
	done := 0
	if completed {
		done = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO tutorial_success (tutorial_index, scenario_id, completed) VALUES (?, ?, ?)
		 ON CONFLICT(tutorial_index) DO UPDATE SET scenario_id = excluded.scenario_id, completed = excluded.completed`,
		index, int64(id), done,
	)
	if err != nil {
		return fmt.Errorf("record tutorial success: %w", err)
	}
	list, err := s.loadSuccessList()
	if err != nil {
		return err
	}
	s.successList.Set(list)
	return nil
}

func (s *SQLiteStore) loadSuccessList() ([]core.TutorialSuccess, error) {
	rows, err := s.db.Query(
		`SELECT tutorial_index, scenario_id, completed FROM tutorial_success ORDER BY tutorial_index`,
	)
	if err != nil {
		return nil, fmt.Errorf("load success list: %w", err)
	}
	defer rows.Close()

	var list []core.TutorialSuccess
	for rows.Next() {
		var record core.TutorialSuccess
		var id int64
		var done int
		if err := rows.Scan(&record.TutorialIndex, &id, &done); err != nil {
			return nil, fmt.Errorf("scan success record: %w", err)
		}
		record.ScenarioID = core.ScenarioID(id)
		record.Completed = done != 0
		list = append(list, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate success list: %w", err)
	}
	return list, nil
}
