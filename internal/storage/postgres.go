package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/ayra-my/ayra/internal/models"
)

//go:embed migrations.sql
var migrations embed.FS

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	UseInMemory bool
}

type PostgresStorage struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresStorage(config DatabaseConfig, logger *zap.Logger) (*PostgresStorage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	s := &PostgresStorage{db: db, logger: logger}

	if err := s.initializeSchema(); err != nil {
		return nil, fmt.Errorf("error initializing database schema: %w", err)
	}

	return s, nil
}

func (s *PostgresStorage) initializeSchema() error {
	migrationSQL, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("error reading migrations file: %w", err)
	}

	if _, err := s.db.Exec(string(migrationSQL)); err != nil {
		return fmt.Errorf("error executing migrations: %w", err)
	}

	return nil
}

func (s *PostgresStorage) SaveTurn(ctx context.Context, turn *models.Turn) error {
	query := `
		INSERT INTO conversations (id, timestamp, user_message, assistant_message, mood_score, backend)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.db.ExecContext(ctx, query,
		turn.ID,
		turn.CreatedAt,
		turn.UserText,
		turn.ReplyText,
		turn.MoodScore,
		turn.Backend,
	)
	if err != nil {
		return fmt.Errorf("error saving turn: %w", err)
	}

	return nil
}

func (s *PostgresStorage) GetRecentTurns(ctx context.Context, n int) ([]*models.Turn, error) {
	query := `
		SELECT id, timestamp, user_message, assistant_message, mood_score, backend
		FROM conversations
		ORDER BY timestamp DESC
		LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("error querying recent turns: %w", err)
	}
	defer rows.Close()

	var turns []*models.Turn
	for rows.Next() {
		turn := &models.Turn{}
		err := rows.Scan(
			&turn.ID,
			&turn.CreatedAt,
			&turn.UserText,
			&turn.ReplyText,
			&turn.MoodScore,
			&turn.Backend,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning turn: %w", err)
		}
		turns = append(turns, turn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating turns: %w", err)
	}

	// Query is newest-first for the LIMIT; callers want oldest-first.
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}

	return turns, nil
}

func (s *PostgresStorage) GetProfile(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM profile WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("error reading profile key %q: %w", key, err)
	}
	return value, nil
}

func (s *PostgresStorage) SetProfile(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO profile (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	if _, err := s.db.ExecContext(ctx, query, key, value, time.Now()); err != nil {
		return fmt.Errorf("error setting profile key %q: %w", key, err)
	}
	return nil
}

func (s *PostgresStorage) SaveStory(ctx context.Context, title, content string) (int64, error) {
	query := `
		INSERT INTO stories (title, content, created_at, last_continued)
		VALUES ($1, $2, $3, $3)
		RETURNING id`

	var id int64
	if err := s.db.QueryRowContext(ctx, query, title, content, time.Now()).Scan(&id); err != nil {
		return 0, fmt.Errorf("error saving story: %w", err)
	}
	return id, nil
}

func (s *PostgresStorage) GetLatestStory(ctx context.Context) (*models.Story, error) {
	query := `
		SELECT id, title, content, created_at, last_continued
		FROM stories
		ORDER BY last_continued DESC
		LIMIT 1`

	story := &models.Story{}
	err := s.db.QueryRowContext(ctx, query).Scan(
		&story.ID,
		&story.Title,
		&story.Content,
		&story.CreatedAt,
		&story.LastContinued,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error querying latest story: %w", err)
	}
	return story, nil
}

func (s *PostgresStorage) AppendStory(ctx context.Context, storyID int64, content string) error {
	query := `
		UPDATE stories
		SET content = content || $1, last_continued = $2
		WHERE id = $3`

	result, err := s.db.ExecContext(ctx, query, content, time.Now(), storyID)
	if err != nil {
		return fmt.Errorf("error appending to story: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("story %d not found", storyID)
	}

	return nil
}

func (s *PostgresStorage) SaveDream(ctx context.Context, text string) error {
	query := `INSERT INTO dreams (dream_text, date) VALUES ($1, $2)`
	if _, err := s.db.ExecContext(ctx, query, text, time.Now()); err != nil {
		return fmt.Errorf("error saving dream: %w", err)
	}
	return nil
}

func (s *PostgresStorage) GetRandomDream(ctx context.Context) (*models.Dream, error) {
	query := `SELECT id, dream_text, date FROM dreams ORDER BY random() LIMIT 1`

	dream := &models.Dream{}
	err := s.db.QueryRowContext(ctx, query).Scan(&dream.ID, &dream.Text, &dream.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error querying random dream: %w", err)
	}
	return dream, nil
}

func (s *PostgresStorage) IncrementStat(ctx context.Context, key string, delta int64) error {
	query := `
		INSERT INTO stats (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = stats.value + EXCLUDED.value`

	if _, err := s.db.ExecContext(ctx, query, key, delta); err != nil {
		return fmt.Errorf("error incrementing stat %q: %w", key, err)
	}
	return nil
}

func (s *PostgresStorage) GetStat(ctx context.Context, key string) (int64, error) {
	var value int64
	err := s.db.QueryRowContext(ctx, `SELECT value FROM stats WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("error reading stat %q: %w", key, err)
	}
	return value, nil
}

func (s *PostgresStorage) LogCrisisEvent(ctx context.Context, userText, keyword string) error {
	query := `INSERT INTO crisis_log (timestamp, user_message, detected_keyword) VALUES ($1, $2, $3)`

	if _, err := s.db.ExecContext(ctx, query, time.Now(), truncateCrisisText(userText), keyword); err != nil {
		return fmt.Errorf("error logging crisis event: %w", err)
	}
	return nil
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}
