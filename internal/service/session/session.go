package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/arkanhealth/jadwal_backend/internal/repo"
	entsession "github.com/arkanhealth/jadwal_backend/internal/repo/therapysession"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type ListRequest struct {
	Page    int
	PerPage int

	TherapistID  *uuid.UUID
	EnrollmentID *uuid.UUID
	StudentID    *uuid.UUID
	Status       *string
	From         *time.Time
	To           *time.Time
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Get(ctx context.Context, centerID, sessionID uuid.UUID) (*repo.TherapySession, error)
	List(ctx context.Context, centerID uuid.UUID, req ListRequest) (*PaginatedResult[*repo.TherapySession], error)

	// Complete marks a scheduled session as held, with optional notes.
	Complete(ctx context.Context, centerID, sessionID uuid.UUID, notes string) (*repo.TherapySession, error)

	// Cancel marks a scheduled session as cancelled with a reason. Completed
	// sessions cannot be cancelled.
	Cancel(ctx context.Context, centerID, sessionID uuid.UUID, reason string) (*repo.TherapySession, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type sessionService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &sessionService{db: db}
}

func (s *sessionService) Get(ctx context.Context, centerID, sessionID uuid.UUID) (*repo.TherapySession, error) {
	sess, err := s.db.TherapySession.Query().
		Where(entsession.ID(sessionID), entsession.CenterID(centerID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

func (s *sessionService) List(ctx context.Context, centerID uuid.UUID, req ListRequest) (*PaginatedResult[*repo.TherapySession], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 200 {
		req.PerPage = 50
	}
	if req.From != nil && req.To != nil && !req.To.After(*req.From) {
		return nil, ErrInvalidRange
	}

	q := s.db.TherapySession.Query().Where(entsession.CenterID(centerID))
	if req.TherapistID != nil {
		q = q.Where(entsession.TherapistID(*req.TherapistID))
	}
	if req.EnrollmentID != nil {
		q = q.Where(entsession.EnrollmentID(*req.EnrollmentID))
	}
	if req.StudentID != nil {
		q = q.Where(entsession.StudentID(*req.StudentID))
	}
	if req.Status != nil {
		q = q.Where(entsession.StatusEQ(entsession.Status(*req.Status)))
	}
	if req.From != nil {
		q = q.Where(entsession.StartTimeGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entsession.StartTimeLT(*req.To))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}

	data, err := q.
		Order(entsession.ByStartTime(sql.OrderAsc())).
		Offset((req.Page - 1) * req.PerPage).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	return &PaginatedResult[*repo.TherapySession]{
		Data:       data,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: (total + req.PerPage - 1) / req.PerPage,
	}, nil
}

func (s *sessionService) Complete(ctx context.Context, centerID, sessionID uuid.UUID, notes string) (*repo.TherapySession, error) {
	sess, err := s.Get(ctx, centerID, sessionID)
	if err != nil {
		return nil, err
	}
	switch sess.Status {
	case entsession.StatusCompleted:
		return nil, ErrAlreadyDone
	case entsession.StatusScheduled:
	default:
		return nil, ErrNotScheduled
	}

	upd := s.db.TherapySession.UpdateOne(sess).
		SetStatus(entsession.StatusCompleted).
		SetCompletedAt(time.Now())
	if notes != "" {
		upd = upd.SetNotes(notes)
	}
	sess, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete session: %w", err)
	}
	return sess, nil
}

func (s *sessionService) Cancel(ctx context.Context, centerID, sessionID uuid.UUID, reason string) (*repo.TherapySession, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrReasonRequired
	}
	sess, err := s.Get(ctx, centerID, sessionID)
	if err != nil {
		return nil, err
	}
	switch sess.Status {
	case entsession.StatusCompleted:
		return nil, ErrAlreadyDone
	case entsession.StatusScheduled, entsession.StatusConflict:
	default:
		return nil, ErrNotScheduled
	}

	sess, err = s.db.TherapySession.UpdateOne(sess).
		SetStatus(entsession.StatusCancelled).
		SetCancelledAt(time.Now()).
		SetCancellationReason(reason).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("cancel session: %w", err)
	}
	return sess, nil
}
