package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/todo-tracker/internal/logger"
	"github.com/sbilibin2017/todo-tracker/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=todo.go -destination=mock_todo.go -package=services

// ErrTodoNotFound is returned when the todo does not exist or belongs to another user.
var ErrTodoNotFound = models.ErrTodoNotFound

// TodoReader defines todo read operations.
type TodoReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.TodoDB, error)
}

// TodoWriter defines todo write operations. Update and Delete are scoped to
// the owning user and return models.ErrTodoNotFound on a miss.
type TodoWriter interface {
	Create(ctx context.Context, userID uuid.UUID, title string, at time.Time) (*models.TodoDB, error)
	Update(ctx context.Context, userID, todoID uuid.UUID, title string, completed bool, at time.Time) (*models.TodoDB, error)
	Delete(ctx context.Context, userID, todoID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// TodoService handles todo operations and publishes todo events.
type TodoService struct {
	reader      TodoReader
	writer      TodoWriter
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewTodoService creates a TodoService. kafkaWriter may be nil.
func NewTodoService(reader TodoReader, writer TodoWriter, kafkaWriter KafkaWriter, now func() time.Time) *TodoService {
	if now == nil {
		now = time.Now
	}
	return &TodoService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
		now:         now,
	}
}

// timestamp matches the microsecond precision Postgres stores.
func (s *TodoService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func (s *TodoService) publish(ctx context.Context, eventType string, todoID, userID uuid.UUID) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "type", eventType, "todo_id", todoID)
		return
	}

	event := models.TodoEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		TodoID:    todoID.String(),
		UserID:    userID.String(),
		Timestamp: s.now().Unix(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal todo event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}
	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish todo event", "event_id", event.EventID, "error", err)
		return
	}
	logger.Log.Infow("Todo event published", "event_id", event.EventID, "type", eventType)
}

// List returns the user's todos, newest first.
func (s *TodoService) List(ctx context.Context, userID uuid.UUID) ([]models.TodoDB, error) {
	todos, err := s.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list todos", "userID", userID, "error", err)
		return nil, err
	}
	return todos, nil
}

// Create adds an uncompleted todo for the user.
func (s *TodoService) Create(ctx context.Context, userID uuid.UUID, title string) (*models.TodoDB, error) {
	todo, err := s.writer.Create(ctx, userID, title, s.timestamp())
	if err != nil {
		logger.Log.Errorw("failed to create todo", "userID", userID, "error", err)
		return nil, err
	}
	s.publish(ctx, models.TodoCreated, todo.TodoID, userID)
	return todo, nil
}

// Update sets the title and completion state. completed_at is stamped on the
// transition to completed, kept while completed, and cleared otherwise.
func (s *TodoService) Update(ctx context.Context, userID, todoID uuid.UUID, title string, completed bool) (*models.TodoDB, error) {
	at := s.timestamp()
	todo, err := s.writer.Update(ctx, userID, todoID, title, completed, at)
	if err != nil {
		if !errors.Is(err, ErrTodoNotFound) {
			logger.Log.Errorw("failed to update todo", "userID", userID, "todoID", todoID, "error", err)
		}
		return nil, err
	}

	eventType := models.TodoUpdated
	if todo.Completed && todo.CompletedAt != nil && todo.CompletedAt.Equal(at) {
		eventType = models.TodoCompleted
	}
	s.publish(ctx, eventType, todoID, userID)
	return todo, nil
}

// Delete removes the user's todo.
func (s *TodoService) Delete(ctx context.Context, userID, todoID uuid.UUID) error {
	if err := s.writer.Delete(ctx, userID, todoID); err != nil {
		if !errors.Is(err, ErrTodoNotFound) {
			logger.Log.Errorw("failed to delete todo", "userID", userID, "todoID", todoID, "error", err)
		}
		return err
	}
	s.publish(ctx, models.TodoDeleted, todoID, userID)
	return nil
}
