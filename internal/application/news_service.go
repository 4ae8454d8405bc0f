package application

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/gr36/clubactiv/internal/domain/entity"
	repo "github.com/gr36/clubactiv/internal/domain/repository"
)

const (
	defaultNewsPage = 20
	maxNewsPage     = 100
)

// NewsIndex is the full-text index kept next to the news table.
type NewsIndex interface {
	Index(ctx context.Context, n *entity.News) error
	Remove(ctx context.Context, id int64) error
	Search(ctx context.Context, q string, size int) ([]entity.News, error)
}

// EventPublisher emits news lifecycle events.
type EventPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// ImageStore uploads news images and returns their public URL.
type ImageStore interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, objectPath string) error
}

// NewsEvent is the payload published for news lifecycle changes.
type NewsEvent struct {
	Type       string    `json:"type"`
	NewsID     int64     `json:"news_id"`
	Title      string    `json:"title,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

const (
	EventNewsCreated = "news.created"
	EventNewsDeleted = "news.deleted"
)

type NewsService struct {
	Repo   repo.NewsRepository
	Index  NewsIndex
	Events EventPublisher
	Images ImageStore
	Logger *logrus.Logger
}

func NewNewsService(repo repo.NewsRepository, index NewsIndex, events EventPublisher, images ImageStore, logger *logrus.Logger) *NewsService {
	return &NewsService{
		Repo:   repo,
		Index:  index,
		Events: events,
		Images: images,
		Logger: logger,
	}
}

type CreateNewsInput struct {
	Title       string
	Description string
	CreatedBy   string
}

// GetByID returns the news item or a *NewsNotFoundError.
func (s *NewsService) GetByID(ctx context.Context, id int64) (*entity.News, error) {
	n, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		newsNotFoundTotal.Inc()
		return nil, NewNewsNotFound(id)
	}
	return n, nil
}

// List returns news newest first.
func (s *NewsService) List(ctx context.Context, limit, offset int) ([]entity.News, error) {
	if limit <= 0 {
		limit = defaultNewsPage
	}
	if limit > maxNewsPage {
		limit = maxNewsPage
	}
	if offset < 0 {
		offset = 0
	}
	return s.Repo.List(ctx, limit, offset)
}

func (s *NewsService) Create(ctx context.Context, in CreateNewsInput) (*entity.News, error) {
	n := &entity.News{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		CreatedBy:   in.CreatedBy,
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		return nil, err
	}
	newsCreatedTotal.Inc()

	s.index(ctx, n)
	s.publish(ctx, NewsEvent{Type: EventNewsCreated, NewsID: n.ID, Title: n.Title, OccurredAt: time.Now().UTC()})
	return n, nil
}

func (s *NewsService) Delete(ctx context.Context, id int64) error {
	ok, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		newsNotFoundTotal.Inc()
		return NewNewsNotFound(id)
	}
	if s.Index != nil {
		if err := s.Index.Remove(ctx, id); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("news_id", id).Warn("es delete failed")
		}
	}
	s.publish(ctx, NewsEvent{Type: EventNewsDeleted, NewsID: id, OccurredAt: time.Now().UTC()})
	return nil
}

// Search queries the news index. Without an index it returns no hits.
func (s *NewsService) Search(ctx context.Context, q string, size int) ([]entity.News, error) {
	if s.Index == nil {
		return []entity.News{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	return s.Index.Search(ctx, q, size)
}

// UploadImage stores the image under news/<id>/ and records its URL.
func (s *NewsService) UploadImage(ctx context.Context, id int64, r io.Reader, filename, contentType string) (string, error) {
	if s.Images == nil {
		return "", ErrStorageNotConfigured
	}
	n, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := fmt.Sprintf("news/%d/%s%s", id, uuid.NewString(), ext)
	url, err := s.Images.Upload(ctx, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	ok, err := s.Repo.SetImageURL(ctx, id, url)
	if err != nil || !ok {
		s.discardImage(ctx, id, objectPath)
		if err != nil {
			return "", err
		}
		return "", NewNewsNotFound(id)
	}
	n.ImageURL = url
	s.index(ctx, n)
	return url, nil
}

// discardImage removes an uploaded object whose URL could not be recorded.
func (s *NewsService) discardImage(ctx context.Context, id int64, objectPath string) {
	if err := s.Images.Delete(context.WithoutCancel(ctx), objectPath); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithFields(logrus.Fields{"news_id": id, "object": objectPath}).
			Error("orphaned news image, delete it manually")
	}
}

func (s *NewsService) index(ctx context.Context, n *entity.News) {
	if s.Index == nil {
		return
	}
	if err := s.Index.Index(ctx, n); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("news_id", n.ID).Warn("es index failed")
	}
}

func (s *NewsService) publish(ctx context.Context, ev NewsEvent) {
	if s.Events == nil {
		return
	}
	if err := s.Events.PublishJSON(ctx, ev); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("event", ev.Type).Warn("failed to publish news event")
	}
}
