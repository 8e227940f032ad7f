package database

import (
	"context"
	"errors"
	"time"

	"github.com/angristan/todo-music-api/internal/app/services/songs"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type songRow struct {
	UserID    string    `gorm:"primaryKey;size:128"`
	TrackID   string    `gorm:"primaryKey;size:64"`
	CreatedAt time.Time `gorm:"not null"`
}

func (songRow) TableName() string {
	return "songs"
}

type SongRepository struct {
	db *gorm.DB
}

func NewSongRepository(db *gorm.DB) *SongRepository {
	return &SongRepository{db: db}
}

// Put inserts the song and ignores duplicates.
func (r *SongRepository) Put(ctx context.Context, song songs.Song) error {
	row := songRow{
		UserID:    song.UserID,
		TrackID:   song.TrackID,
		CreatedAt: song.CreatedAt,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error
}

func (r *SongRepository) Get(ctx context.Context, userID, trackID string) (*songs.Song, error) {
	var row songRow
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND track_id = ?", userID, trackID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	song := row.toSong()
	return &song, nil
}

func (r *SongRepository) ListByUser(ctx context.Context, userID string) ([]songs.Song, error) {
	var rows []songRow
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]songs.Song, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toSong())
	}

	return out, nil
}

func (r *SongRepository) Delete(ctx context.Context, userID, trackID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND track_id = ?", userID, trackID).
		Delete(&songRow{}).Error
}

func (row songRow) toSong() songs.Song {
	return songs.Song{
		UserID:    row.UserID,
		TrackID:   row.TrackID,
		CreatedAt: row.CreatedAt,
	}
}
