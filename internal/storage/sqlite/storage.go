package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/minewars/sessiontrack/internal/model"
	"github.com/minewars/sessiontrack/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS players (
	username      TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	surname       TEXT NOT NULL DEFAULT '',
	gender        TEXT NOT NULL DEFAULT '',
	birth_date    TEXT NOT NULL DEFAULT '',
	age           INTEGER NOT NULL DEFAULT 0,
	address       TEXT NOT NULL DEFAULT '',
	email         TEXT NOT NULL DEFAULT '',
	password_hash TEXT NOT NULL,
	icon_id       INTEGER NOT NULL DEFAULT 0,
	created_at    INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS matches (
	id         TEXT PRIMARY KEY,
	status     TEXT NOT NULL,
	visibility TEXT NOT NULL,
	pass_hash  TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS participants (
	match_id  TEXT NOT NULL REFERENCES matches(id),
	username  TEXT NOT NULL REFERENCES players(username),
	team      TEXT NOT NULL,
	role1     TEXT NOT NULL DEFAULT '',
	role2     TEXT NOT NULL DEFAULT '',
	role3     TEXT NOT NULL DEFAULT '',
	result    TEXT NOT NULL DEFAULT '',
	joined_at INTEGER NOT NULL,
	seq       INTEGER NOT NULL,
	PRIMARY KEY (match_id, username)
);

CREATE TABLE IF NOT EXISTS icons (
	id   INTEGER PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS achievements (
	id          INTEGER PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS achievement_grants (
	username       TEXT NOT NULL REFERENCES players(username),
	achievement_id INTEGER NOT NULL REFERENCES achievements(id),
	granted_at     INTEGER NOT NULL,
	PRIMARY KEY (username, achievement_id)
);
`

// toMillis normalizes timestamps into millisecond precision for storage
func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// fromMillis restores millisecond precision and keeps UTC normalization
func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Storage is a SQLite-backed implementation of the storage interface.
//
// A single database file backs all entities so every match mutation can run
// inside one SQL transaction; SQLite's writer serialization makes the
// check-then-act sequences in UpdateMatch race-free.
type Storage struct {
	db *sql.DB
}

// Open opens a SQLite store at the given path and applies the schema.
// The special path ":memory:" opens an in-process database (for testing).
func Open(path string) (*Storage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// A single connection keeps transactions serialized and is required for
	// :memory: databases, which exist per connection
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close releases the underlying database
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM players WHERE username = ?`, string(player.Username),
		).Scan(&exists)
		if err != nil {
			return err
		}
		if exists > 0 {
			return model.ErrUsernameExists
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO players (username, name, surname, gender, birth_date, age, address, email, password_hash, icon_id, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			string(player.Username), player.Name, player.Surname, string(player.Gender),
			player.BirthDate, player.Age, player.Address, player.Email,
			player.PasswordHash, player.IconID, toMillis(player.CreatedAt),
		)
		return err
	})
}

func (s *Storage) GetPlayer(ctx context.Context, username model.Username) (*model.Player, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT username, name, surname, gender, birth_date, age, address, email, password_hash, icon_id, created_at
		FROM players WHERE username = ?`, string(username))
	return scanPlayer(row)
}

func scanPlayer(row *sql.Row) (*model.Player, error) {
	var p model.Player
	var username, gender string
	var createdAt int64
	err := row.Scan(&username, &p.Name, &p.Surname, &gender, &p.BirthDate,
		&p.Age, &p.Address, &p.Email, &p.PasswordHash, &p.IconID, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}
	p.Username = model.Username(username)
	p.Gender = model.Gender(gender)
	p.CreatedAt = fromMillis(createdAt)
	return &p, nil
}

// Match operations

func (s *Storage) CreateMatch(ctx context.Context, match *model.Match) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM matches WHERE id = ?`, string(match.ID),
		).Scan(&exists)
		if err != nil {
			return err
		}
		if exists > 0 {
			return model.ErrMatchExists
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO matches (id, status, visibility, pass_hash, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			string(match.ID), string(match.Status), string(match.Visibility),
			match.PassHash, toMillis(match.CreatedAt), toMillis(match.UpdatedAt),
		); err != nil {
			return err
		}

		return insertParticipants(ctx, tx, match)
	})
}

func (s *Storage) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	var match *model.Match
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		var err error
		match, err = loadMatch(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return match, nil
}

func (s *Storage) MatchExists(ctx context.Context, id model.MatchID) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM matches WHERE id = ?`, string(id),
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateMatch applies fn inside a SQL transaction: the load, the mutation,
// and the write-back either all commit or all roll back.
func (s *Storage) UpdateMatch(ctx context.Context, id model.MatchID, fn func(*model.Match) error) (*model.Match, error) {
	var updated *model.Match
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		match, err := loadMatch(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := fn(match); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `
			UPDATE matches SET status = ?, visibility = ?, pass_hash = ?, updated_at = ?
			WHERE id = ?`,
			string(match.Status), string(match.Visibility), match.PassHash,
			toMillis(match.UpdatedAt), string(match.ID),
		); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx,
			`DELETE FROM participants WHERE match_id = ?`, string(match.ID),
		); err != nil {
			return err
		}
		if err := insertParticipants(ctx, tx, match); err != nil {
			return err
		}

		updated = match
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Storage) MatchesForPlayer(ctx context.Context, username model.Username) ([]*model.Match, error) {
	var matches []*model.Match
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT match_id FROM participants WHERE username = ? ORDER BY match_id`,
			string(username))
		if err != nil {
			return err
		}
		var ids []model.MatchID
		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return err
			}
			ids = append(ids, model.MatchID(id))
		}
		if err := rows.Close(); err != nil {
			return err
		}

		matches = make([]*model.Match, 0, len(ids))
		for _, id := range ids {
			match, err := loadMatch(ctx, tx, id)
			if err != nil {
				return err
			}
			matches = append(matches, match)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func loadMatch(ctx context.Context, tx *sql.Tx, id model.MatchID) (*model.Match, error) {
	var match model.Match
	var matchID, status, visibility string
	var createdAt, updatedAt int64
	err := tx.QueryRowContext(ctx, `
		SELECT id, status, visibility, pass_hash, created_at, updated_at
		FROM matches WHERE id = ?`, string(id),
	).Scan(&matchID, &status, &visibility, &match.PassHash, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrMatchNotFound
		}
		return nil, err
	}
	match.ID = model.MatchID(matchID)
	match.Status = model.MatchStatus(status)
	match.Visibility = model.Visibility(visibility)
	match.CreatedAt = fromMillis(createdAt)
	match.UpdatedAt = fromMillis(updatedAt)

	rows, err := tx.QueryContext(ctx, `
		SELECT username, team, role1, role2, role3, result, joined_at
		FROM participants WHERE match_id = ? ORDER BY seq`, string(id))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p model.Participant
		var username, team, role1, role2, role3, result string
		var joinedAt int64
		if err := rows.Scan(&username, &team, &role1, &role2, &role3, &result, &joinedAt); err != nil {
			return nil, err
		}
		p.Username = model.Username(username)
		p.Team = model.Team(team)
		p.Roles = [model.RoundCount]model.Role{model.Role(role1), model.Role(role2), model.Role(role3)}
		p.Result = model.Result(result)
		p.JoinedAt = fromMillis(joinedAt)
		match.Participants = append(match.Participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &match, nil
}

func insertParticipants(ctx context.Context, tx *sql.Tx, match *model.Match) error {
	for i := range match.Participants {
		p := &match.Participants[i]
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO participants (match_id, username, team, role1, role2, role3, result, joined_at, seq)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			string(match.ID), string(p.Username), string(p.Team),
			string(p.Roles[0]), string(p.Roles[1]), string(p.Roles[2]),
			string(p.Result), toMillis(p.JoinedAt), i,
		); err != nil {
			return err
		}
	}
	return nil
}

// Catalog operations

func (s *Storage) SaveIcon(ctx context.Context, icon *model.Icon) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO icons (id, name) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name`,
		icon.ID, icon.Name)
	return err
}

func (s *Storage) GetIcon(ctx context.Context, id int64) (*model.Icon, error) {
	var icon model.Icon
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name FROM icons WHERE id = ?`, id,
	).Scan(&icon.ID, &icon.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrIconNotFound
		}
		return nil, err
	}
	return &icon, nil
}

func (s *Storage) ListIcons(ctx context.Context) ([]*model.Icon, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM icons ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	icons := []*model.Icon{}
	for rows.Next() {
		var icon model.Icon
		if err := rows.Scan(&icon.ID, &icon.Name); err != nil {
			return nil, err
		}
		icons = append(icons, &icon)
	}
	return icons, rows.Err()
}

func (s *Storage) SaveAchievement(ctx context.Context, achievement *model.Achievement) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO achievements (id, name, description) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, description = excluded.description`,
		achievement.ID, achievement.Name, achievement.Description)
	return err
}

func (s *Storage) GetAchievement(ctx context.Context, id int64) (*model.Achievement, error) {
	var a model.Achievement
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, description FROM achievements WHERE id = ?`, id,
	).Scan(&a.ID, &a.Name, &a.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrAchievementNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (s *Storage) ListAchievements(ctx context.Context) ([]*model.Achievement, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, description FROM achievements ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	achievements := []*model.Achievement{}
	for rows.Next() {
		var a model.Achievement
		if err := rows.Scan(&a.ID, &a.Name, &a.Description); err != nil {
			return nil, err
		}
		achievements = append(achievements, &a)
	}
	return achievements, rows.Err()
}

// Achievement grant operations

func (s *Storage) CreateGrant(ctx context.Context, grant *model.AchievementGrant) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM achievement_grants WHERE username = ? AND achievement_id = ?`,
			string(grant.Username), grant.AchievementID,
		).Scan(&exists)
		if err != nil {
			return err
		}
		if exists > 0 {
			return model.ErrAchievementGranted
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO achievement_grants (username, achievement_id, granted_at) VALUES (?, ?, ?)`,
			string(grant.Username), grant.AchievementID, toMillis(grant.GrantedAt))
		return err
	})
}

func (s *Storage) GrantsForPlayer(ctx context.Context, username model.Username) ([]*model.AchievementGrant, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT username, achievement_id, granted_at
		FROM achievement_grants WHERE username = ? ORDER BY achievement_id`,
		string(username))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grants []*model.AchievementGrant
	for rows.Next() {
		var g model.AchievementGrant
		var user string
		var grantedAt int64
		if err := rows.Scan(&user, &g.AchievementID, &grantedAt); err != nil {
			return nil, err
		}
		g.Username = model.Username(user)
		g.GrantedAt = fromMillis(grantedAt)
		grants = append(grants, &g)
	}
	return grants, rows.Err()
}

// inTx runs fn inside a transaction, rolling back on error
func (s *Storage) inTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
