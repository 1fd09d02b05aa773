package notification

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/arkanhealth/jadwal_backend/internal/repo"
	entnotif "github.com/arkanhealth/jadwal_backend/internal/repo/notification"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	RecipientID uuid.UUID
	Type        string
	Title       string
	Data        map[string]any
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, centerID uuid.UUID, req CreateRequest) (*repo.Notification, error)
	List(ctx context.Context, centerID, recipientID uuid.UUID, unreadOnly bool, page, perPage int) ([]*repo.Notification, error)
	MarkRead(ctx context.Context, centerID, notifID, recipientID uuid.UUID) error
	MarkAllRead(ctx context.Context, centerID, recipientID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type notificationService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &notificationService{db: db}
}

func (s *notificationService) Create(ctx context.Context, centerID uuid.UUID, req CreateRequest) (*repo.Notification, error) {
	c := s.db.Notification.Create().
		SetCenterID(centerID).
		SetRecipientID(req.RecipientID).
		SetType(req.Type).
		SetTitle(req.Title)
	if req.Data != nil {
		c = c.SetData(req.Data)
	}

	n, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return n, nil
}

func (s *notificationService) List(ctx context.Context, centerID, recipientID uuid.UUID, unreadOnly bool, page, perPage int) ([]*repo.Notification, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	q := s.db.Notification.Query().
		Where(entnotif.CenterID(centerID), entnotif.RecipientID(recipientID))

	if unreadOnly {
		q = q.Where(entnotif.IsRead(false))
	}

	notifs, err := q.
		Order(entnotif.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifs, nil
}

func (s *notificationService) MarkRead(ctx context.Context, centerID, notifID, recipientID uuid.UUID) error {
	n, err := s.db.Notification.Query().
		Where(
			entnotif.ID(notifID),
			entnotif.CenterID(centerID),
			entnotif.RecipientID(recipientID),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get notification: %w", err)
	}

	return s.db.Notification.UpdateOne(n).
		SetIsRead(true).
		Exec(ctx)
}

func (s *notificationService) MarkAllRead(ctx context.Context, centerID, recipientID uuid.UUID) error {
	return s.db.Notification.Update().
		Where(
			entnotif.CenterID(centerID),
			entnotif.RecipientID(recipientID),
			entnotif.IsRead(false),
		).
		SetIsRead(true).
		Exec(ctx)
}
