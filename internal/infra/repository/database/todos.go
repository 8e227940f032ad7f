package database

import (
	"context"
	"errors"
	"time"

	"github.com/angristan/todo-music-api/internal/app/services/todos"
	"gorm.io/gorm"
)

type todoRow struct {
	UserID        string    `gorm:"primaryKey;size:128"`
	TodoID        string    `gorm:"primaryKey;size:36"`
	CreatedAt     time.Time `gorm:"not null;index"`
	Name          string    `gorm:"size:255;not null"`
	DueDate       string    `gorm:"size:64"`
	Done          bool      `gorm:"not null;default:false"`
	AttachmentURL string    `gorm:"size:1024"`
}

func (todoRow) TableName() string {
	return "todos"
}

type TodoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) ListByUser(ctx context.Context, userID string) ([]todos.TodoItem, error) {
	var rows []todoRow
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]todos.TodoItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toItem())
	}

	return items, nil
}

func (r *TodoRepository) Get(ctx context.Context, userID, todoID string) (*todos.TodoItem, error) {
	var row todoRow
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND todo_id = ?", userID, todoID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	item := row.toItem()
	return &item, nil
}

func (r *TodoRepository) Create(ctx context.Context, item todos.TodoItem) error {
	row := todoRow{
		UserID:        item.UserID,
		TodoID:        item.TodoID,
		CreatedAt:     item.CreatedAt,
		Name:          item.Name,
		DueDate:       item.DueDate,
		Done:          item.Done,
		AttachmentURL: item.AttachmentURL,
	}

	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *TodoRepository) Update(ctx context.Context, userID, todoID string, update todos.TodoUpdate) error {
	return r.db.WithContext(ctx).Model(&todoRow{}).
		Where("user_id = ? AND todo_id = ?", userID, todoID).
		Updates(map[string]interface{}{
			"name":     update.Name,
			"due_date": update.DueDate,
			"done":     update.Done,
		}).Error
}

func (r *TodoRepository) SetAttachmentURL(ctx context.Context, userID, todoID, attachmentURL string) error {
	return r.db.WithContext(ctx).Model(&todoRow{}).
		Where("user_id = ? AND todo_id = ?", userID, todoID).
		Update("attachment_url", attachmentURL).Error
}

func (r *TodoRepository) Delete(ctx context.Context, userID, todoID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND todo_id = ?", userID, todoID).
		Delete(&todoRow{}).Error
}

func (row todoRow) toItem() todos.TodoItem {
	return todos.TodoItem{
		UserID:        row.UserID,
		TodoID:        row.TodoID,
		CreatedAt:     row.CreatedAt,
		Name:          row.Name,
		DueDate:       row.DueDate,
		Done:          row.Done,
		AttachmentURL: row.AttachmentURL,
	}
}
