package repository

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"claymaster/internal/models"
)

// Repository provides data access methods
type Repository struct {
	db *sql.DB
}

// New creates a new Repository. The default admin account is seeded with
// adminPassword on first initialization.
func New(dbPath, adminPassword string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// WAL improves concurrent read behavior during audience polling
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, err
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, err
	}

	// SQLite works best with a single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	repo := &Repository{db: db}

	if err := repo.migrate(adminPassword); err != nil {
		return nil, err
	}

	return repo, nil
}

// DB returns the underlying database connection (for transactions)
func (r *Repository) DB() *sql.DB {
	return r.db
}

// Close closes the database connection
func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping checks if the database connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// migrate runs database migrations and seeds the default admin account
func (r *Repository) migrate(adminPassword string) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS participants (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			avatar TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS admins (
			username TEXT PRIMARY KEY,
			password TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS topic_pool (
			id TEXT PRIMARY KEY,
			image_url TEXT NOT NULL,
			contributor_id TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS rounds (
			id TEXT PRIMARY KEY,
			round_number INTEGER NOT NULL,
			topic_image TEXT NOT NULL,
			is_topic_revealed INTEGER NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'UPCOMING'
		)`,
		`CREATE TABLE IF NOT EXISTS round_participants (
			round_id TEXT NOT NULL,
			participant_id TEXT NOT NULL,
			PRIMARY KEY (round_id, participant_id),
			FOREIGN KEY (round_id) REFERENCES rounds(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS submissions (
			id TEXT PRIMARY KEY,
			participant_id TEXT NOT NULL,
			round_id TEXT NOT NULL,
			image_url TEXT NOT NULL DEFAULT '',
			timestamp INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS scores (
			submission_id TEXT NOT NULL,
			voter_nickname TEXT NOT NULL,
			score INTEGER NOT NULL,
			PRIMARY KEY (submission_id, voter_nickname),
			FOREIGN KEY (submission_id) REFERENCES submissions(id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_pool_contributor ON topic_pool(contributor_id)`,
		`CREATE INDEX IF NOT EXISTS idx_submissions_round ON submissions(round_id)`,
		`CREATE INDEX IF NOT EXISTS idx_scores_submission ON scores(submission_id)`,
	}

	for _, migration := range migrations {
		if _, err := r.db.Exec(migration); err != nil {
			return err
		}
	}

	// Seed the permanent default admin if not exists
	_, err := r.db.Exec(`INSERT OR IGNORE INTO admins (username, password) VALUES (?, ?)`,
		"admin", adminPassword)
	return err
}

// ==================== Participant Methods ====================

// ListParticipants returns all participants
func (r *Repository) ListParticipants(ctx context.Context) ([]models.Participant, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, avatar FROM participants ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []models.Participant
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.Name, &p.Avatar); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

// GetParticipant retrieves a participant by exact id
func (r *Repository) GetParticipant(ctx context.Context, id string) (*models.Participant, error) {
	var p models.Participant
	err := r.db.QueryRowContext(ctx, `SELECT id, name, avatar FROM participants WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.Avatar)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetParticipantByLogin retrieves a participant matching the id case-insensitively
func (r *Repository) GetParticipantByLogin(ctx context.Context, id string) (*models.Participant, error) {
	var p models.Participant
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, avatar FROM participants WHERE LOWER(id) = LOWER(?)`, id).
		Scan(&p.ID, &p.Name, &p.Avatar)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ParticipantExists checks if a participant with the given id exists
func (r *Repository) ParticipantExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM participants WHERE id = ?)`, id).Scan(&exists)
	return exists, err
}

// CreateParticipant creates a new participant
func (r *Repository) CreateParticipant(ctx context.Context, p models.Participant) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO participants (id, name, avatar) VALUES (?, ?, ?)`, p.ID, p.Name, p.Avatar)
	return err
}

// RenameParticipant updates a participant's display name
func (r *Repository) RenameParticipant(ctx context.Context, id, name string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE participants SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteParticipant removes a participant together with their topic pool
// contributions, all-or-nothing.
func (r *Repository) DeleteParticipant(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM participants WHERE id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM topic_pool WHERE contributor_id = ?`, id); err != nil {
		return err
	}

	return tx.Commit()
}

// ==================== Admin Methods ====================

// ListAdmins returns all admin accounts
func (r *Repository) ListAdmins(ctx context.Context) ([]models.AdminAccount, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT username, password FROM admins ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []models.AdminAccount
	for rows.Next() {
		var a models.AdminAccount
		if err := rows.Scan(&a.Username, &a.Password); err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

// GetAdmin retrieves an admin account by username
func (r *Repository) GetAdmin(ctx context.Context, username string) (*models.AdminAccount, error) {
	var a models.AdminAccount
	err := r.db.QueryRowContext(ctx,
		`SELECT username, password FROM admins WHERE username = ?`, username).
		Scan(&a.Username, &a.Password)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// AdminExists checks if an admin with the given username exists
func (r *Repository) AdminExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM admins WHERE username = ?)`, username).Scan(&exists)
	return exists, err
}

// CreateAdmin creates a new admin account
func (r *Repository) CreateAdmin(ctx context.Context, username, password string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO admins (username, password) VALUES (?, ?)`, username, password)
	return err
}

// UpdateAdminPassword updates an admin account's password
func (r *Repository) UpdateAdminPassword(ctx context.Context, username, password string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE admins SET password = ? WHERE username = ?`, password, username)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAdmin removes an admin account
func (r *Repository) DeleteAdmin(ctx context.Context, username string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM admins WHERE username = ?`, username)
	return err
}

// ==================== Topic Pool Methods ====================

// ListPoolItems returns every topic pool item, used or not
func (r *Repository) ListPoolItems(ctx context.Context) ([]models.PoolItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, image_url, contributor_id FROM topic_pool ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.PoolItem
	for rows.Next() {
		var item models.PoolItem
		if err := rows.Scan(&item.ID, &item.ImageURL, &item.ContributorID); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ListAvailablePoolItems returns pool items whose image has not been consumed
// as any round's topic. Availability is derived, never stored.
func (r *Repository) ListAvailablePoolItems(ctx context.Context) ([]models.PoolItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, image_url, contributor_id FROM topic_pool
		WHERE image_url NOT IN (SELECT topic_image FROM rounds)
		ORDER BY rowid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.PoolItem
	for rows.Next() {
		var item models.PoolItem
		if err := rows.Scan(&item.ID, &item.ImageURL, &item.ContributorID); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// CreatePoolItem adds a topic image to the pool
func (r *Repository) CreatePoolItem(ctx context.Context, item models.PoolItem) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO topic_pool (id, image_url, contributor_id) VALUES (?, ?, ?)`,
		item.ID, item.ImageURL, item.ContributorID)
	return err
}

// DeletePoolItem removes a pool item. Deleting an absent item is a no-op.
func (r *Repository) DeletePoolItem(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM topic_pool WHERE id = ?`, id)
	return err
}

// ==================== Round Methods ====================

// attachParticipants loads a round's ordered participant ids
func (r *Repository) attachParticipants(ctx context.Context, round *models.Round) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT participant_id FROM round_participants WHERE round_id = ? ORDER BY rowid`, round.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var pid string
		if err := rows.Scan(&pid); err != nil {
			return err
		}
		round.ParticipantIDs = append(round.ParticipantIDs, pid)
	}
	return rows.Err()
}

// ListRounds returns all rounds in round number order, each with its
// ordered participant set.
func (r *Repository) ListRounds(ctx context.Context) ([]models.Round, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, round_number, topic_image, is_topic_revealed, status
		FROM rounds ORDER BY round_number
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rounds []models.Round
	for rows.Next() {
		var round models.Round
		if err := rows.Scan(&round.ID, &round.RoundNumber, &round.TopicImage,
			&round.IsTopicRevealed, &round.Status); err != nil {
			return nil, err
		}
		rounds = append(rounds, round)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range rounds {
		if err := r.attachParticipants(ctx, &rounds[i]); err != nil {
			return nil, err
		}
	}
	return rounds, nil
}

// GetRound retrieves a round by id with its participant set
func (r *Repository) GetRound(ctx context.Context, id string) (*models.Round, error) {
	var round models.Round
	err := r.db.QueryRowContext(ctx, `
		SELECT id, round_number, topic_image, is_topic_revealed, status
		FROM rounds WHERE id = ?
	`, id).Scan(&round.ID, &round.RoundNumber, &round.TopicImage,
		&round.IsTopicRevealed, &round.Status)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := r.attachParticipants(ctx, &round); err != nil {
		return nil, err
	}
	return &round, nil
}

// ActiveRoundID returns the id of the currently ACTIVE round, if any
func (r *Repository) ActiveRoundID(ctx context.Context) (string, bool, error) {
	var id string
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM rounds WHERE status = ? ORDER BY round_number LIMIT 1`,
		models.RoundActive).Scan(&id)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return id, true, nil
}

// CreateRound inserts a round and its participant set in one transaction.
// The round number is assigned inside the transaction as MAX+1 so concurrent
// creations cannot produce duplicates.
func (r *Repository) CreateRound(ctx context.Context, id, topicImage string, participantIDs []string) (*models.Round, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var roundNumber int
	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(round_number), 0) + 1 FROM rounds`).Scan(&roundNumber); err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO rounds (id, round_number, topic_image, is_topic_revealed, status)
		VALUES (?, ?, ?, 0, ?)
	`, id, roundNumber, topicImage, models.RoundUpcoming); err != nil {
		return nil, err
	}

	for _, pid := range participantIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO round_participants (round_id, participant_id) VALUES (?, ?)`,
			id, pid); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &models.Round{
		ID:              id,
		RoundNumber:     roundNumber,
		TopicImage:      topicImage,
		IsTopicRevealed: false,
		Status:          models.RoundUpcoming,
		ParticipantIDs:  participantIDs,
	}, nil
}

// RevealRound marks the round ACTIVE with its topic revealed and creates one
// empty submission slot per participant, all-or-nothing. Slot creation uses
// INSERT OR IGNORE so revealing twice neither duplicates nor resets slots.
func (r *Repository) RevealRound(ctx context.Context, roundID string, timestamp int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE rounds SET is_topic_revealed = 1, status = ? WHERE id = ?`,
		models.RoundActive, roundID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	rows, err := tx.QueryContext(ctx,
		`SELECT participant_id FROM round_participants WHERE round_id = ? ORDER BY rowid`, roundID)
	if err != nil {
		return err
	}
	var pids []string
	for rows.Next() {
		var pid string
		if err := rows.Scan(&pid); err != nil {
			rows.Close()
			return err
		}
		pids = append(pids, pid)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, pid := range pids {
		if _, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO submissions (id, participant_id, round_id, image_url, timestamp)
			VALUES (?, ?, ?, '', ?)
		`, SubmissionID(roundID, pid), pid, roundID, timestamp); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// CompleteRound marks a round COMPLETED
func (r *Repository) CompleteRound(ctx context.Context, roundID string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE rounds SET status = ? WHERE id = ?`, models.RoundCompleted, roundID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ==================== Submission Methods ====================

// SubmissionID derives the deterministic submission id for a (round, participant) pair
func SubmissionID(roundID, participantID string) string {
	return "sub-" + roundID + "-" + participantID
}

func (r *Repository) scanSubmissions(rows *sql.Rows) ([]models.Submission, error) {
	var submissions []models.Submission
	for rows.Next() {
		var s models.Submission
		if err := rows.Scan(&s.ID, &s.ParticipantID, &s.RoundID, &s.ImageURL, &s.Timestamp); err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}

// ListSubmissions returns all submissions with their scores attached
func (r *Repository) ListSubmissions(ctx context.Context) ([]models.Submission, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, participant_id, round_id, image_url, timestamp
		FROM submissions ORDER BY rowid
	`)
	if err != nil {
		return nil, err
	}
	submissions, err := r.scanSubmissions(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}

	scoreRows, err := r.db.QueryContext(ctx,
		`SELECT submission_id, voter_nickname, score FROM scores`)
	if err != nil {
		return nil, err
	}
	defer scoreRows.Close()

	scoresBySubmission := make(map[string]map[string]int)
	for scoreRows.Next() {
		var subID, nickname string
		var score int
		if err := scoreRows.Scan(&subID, &nickname, &score); err != nil {
			return nil, err
		}
		if scoresBySubmission[subID] == nil {
			scoresBySubmission[subID] = make(map[string]int)
		}
		scoresBySubmission[subID][nickname] = score
	}
	if err := scoreRows.Err(); err != nil {
		return nil, err
	}

	for i := range submissions {
		scores := scoresBySubmission[submissions[i].ID]
		if scores == nil {
			scores = map[string]int{}
		}
		submissions[i].Scores = scores
	}
	return submissions, nil
}

// GetSubmission retrieves a submission by id, scores included
func (r *Repository) GetSubmission(ctx context.Context, id string) (*models.Submission, error) {
	var s models.Submission
	err := r.db.QueryRowContext(ctx, `
		SELECT id, participant_id, round_id, image_url, timestamp
		FROM submissions WHERE id = ?
	`, id).Scan(&s.ID, &s.ParticipantID, &s.RoundID, &s.ImageURL, &s.Timestamp)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT voter_nickname, score FROM scores WHERE submission_id = ?`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	s.Scores = make(map[string]int)
	for rows.Next() {
		var nickname string
		var score int
		if err := rows.Scan(&nickname, &score); err != nil {
			return nil, err
		}
		s.Scores[nickname] = score
	}
	return &s, rows.Err()
}

// SetSubmissionImage overwrites the work image and refreshes the timestamp
// for the (round, participant) submission slot
func (r *Repository) SetSubmissionImage(ctx context.Context, roundID, participantID, imageURL string, timestamp int64) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE submissions SET image_url = ?, timestamp = ?
		WHERE round_id = ? AND participant_id = ?
	`, imageURL, timestamp, roundID, participantID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ==================== Score Methods ====================

// SaveScore records a voter's rating for a submission, overwriting any
// previous rating by the same voter
func (r *Repository) SaveScore(ctx context.Context, submissionID, voterNickname string, score int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO scores (submission_id, voter_nickname, score)
		VALUES (?, ?, ?)
	`, submissionID, voterNickname, score)
	return err
}

// ==================== Stats Methods ====================

// GetCompetitionStats returns overall competition statistics
func (r *Repository) GetCompetitionStats(ctx context.Context) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	counts := []struct {
		key   string
		query string
	}{
		{"total_participants", `SELECT COUNT(*) FROM participants`},
		{"total_rounds", `SELECT COUNT(*) FROM rounds`},
		{"total_submissions", `SELECT COUNT(*) FROM submissions`},
		{"total_ballots", `SELECT COUNT(*) FROM scores`},
		{"pool_size", `SELECT COUNT(*) FROM topic_pool`},
	}
	for _, c := range counts {
		var n int
		if err := r.db.QueryRowContext(ctx, c.query).Scan(&n); err != nil {
			return nil, err
		}
		stats[c.key] = n
	}

	var activeRound sql.NullInt64
	if err := r.db.QueryRowContext(ctx,
		`SELECT round_number FROM rounds WHERE status = ? ORDER BY round_number LIMIT 1`,
		models.RoundActive).Scan(&activeRound); err != nil && err != sql.ErrNoRows {
		return nil, err
	}
	if activeRound.Valid {
		stats["active_round"] = int(activeRound.Int64)
	}

	return stats, nil
}
