package storage

import (
	"fmt"
	"time"
)

// LessonResult is the outcome of one run through a clue pack.
type LessonResult struct {
	ID             int64
	PackID         string
	Difficulty     string
	Score          int
	WordsCompleted int
	TotalWords     int
	CreatedAt      time.Time
}

// Finished reports whether every word in the pack was spelled.
func (r LessonResult) Finished() bool {
	return r.TotalWords > 0 && r.WordsCompleted >= r.TotalWords
}

// SaveLessonResult records a lesson outcome and returns its ID.
func (s *Store) SaveLessonResult(r LessonResult) (int64, error) {
	if r.PackID == "" {
		return 0, fmt.Errorf("storage: lesson result without pack id")
	}
	res, err := s.db.Exec(
		`INSERT INTO lesson_results (pack_id, difficulty, score, words_completed, total_words)
		 VALUES (?, ?, ?, ?, ?)`,
		r.PackID, r.Difficulty, r.Score, r.WordsCompleted, r.TotalWords,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save lesson result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentLessons returns the latest lesson results, newest first.
func (s *Store) RecentLessons(limit int) ([]LessonResult, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryLessons(
		`SELECT id, pack_id, difficulty, score, words_completed, total_words, created_at
		 FROM lesson_results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// BestPerPack returns the highest-scoring result for every pack and
// difficulty that has been played, ordered by pack then difficulty.
func (s *Store) BestPerPack() ([]LessonResult, error) {
	return s.queryLessons(
		`SELECT l.id, l.pack_id, l.difficulty, l.score, l.words_completed, l.total_words, l.created_at
		 FROM lesson_results l
		 WHERE l.id = (
			SELECT b.id FROM lesson_results b
			WHERE b.pack_id = l.pack_id AND b.difficulty = l.difficulty
			ORDER BY b.score DESC, b.id ASC
			LIMIT 1
		 )
		 ORDER BY l.pack_id, l.difficulty`,
	)
}

func (s *Store) queryLessons(query string, args ...any) ([]LessonResult, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query lesson results: %w", err)
	}
	defer rows.Close()

	var results []LessonResult
	for rows.Next() {
		var r LessonResult
		var createdAt any
		if err := rows.Scan(&r.ID, &r.PackID, &r.Difficulty, &r.Score, &r.WordsCompleted, &r.TotalWords, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}
