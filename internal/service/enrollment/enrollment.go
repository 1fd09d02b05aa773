package enrollment

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/arkanhealth/jadwal_backend/config"
	"github.com/arkanhealth/jadwal_backend/internal/repo"
	entenroll "github.com/arkanhealth/jadwal_backend/internal/repo/enrollment"
	entfreeze "github.com/arkanhealth/jadwal_backend/internal/repo/freezewindow"
	entroom "github.com/arkanhealth/jadwal_backend/internal/repo/room"
	enttherapist "github.com/arkanhealth/jadwal_backend/internal/repo/therapist"
	"github.com/arkanhealth/jadwal_backend/internal/schema"
	"github.com/arkanhealth/jadwal_backend/pkg/crypto"
)

// defaultRegion resolves nationally formatted guardian phones.
const defaultRegion = "SA"

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
	Page        int
	PerPage     int
	Status      *string
	TherapistID *uuid.UUID
	StudentID   *uuid.UUID
}

type CreateRequest struct {
	StudentID          uuid.UUID
	TherapistID        uuid.UUID
	RoomID             *uuid.UUID
	GuardianPhone      string
	StartDate          time.Time
	EndDate            time.Time
	SessionCount       int
	SessionsPerWeek    int
	SessionDurationMin int
	PreferredDays      []int
	AvoidDays          []int
	PreferredWindows   []schema.TimeWindow
	AvoidWindows       []schema.TimeWindow
	Flexibility        float64
}

type UpdateRequest struct {
	TherapistID      *uuid.UUID
	RoomID           *uuid.UUID
	GuardianPhone    *string
	EndDate          *time.Time
	PreferredDays    []int
	AvoidDays        []int
	PreferredWindows []schema.TimeWindow
	AvoidWindows     []schema.TimeWindow
	Flexibility      *float64
	Status           *string
}

type CreateFreezeRequest struct {
	StartsOn time.Time
	EndsOn   time.Time
	Reason   string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, centerID uuid.UUID, req CreateRequest) (*repo.Enrollment, error)
	Get(ctx context.Context, centerID, enrollmentID uuid.UUID) (*repo.Enrollment, error)
	List(ctx context.Context, centerID uuid.UUID, req ListRequest) (*PaginatedResult[*repo.Enrollment], error)
	Update(ctx context.Context, centerID, enrollmentID uuid.UUID, req UpdateRequest) (*repo.Enrollment, error)
	Cancel(ctx context.Context, centerID, enrollmentID uuid.UUID) error

	// GuardianPhone decrypts the stored guardian phone; empty when unset.
	GuardianPhone(enr *repo.Enrollment) (string, error)

	CreateFreeze(ctx context.Context, centerID, enrollmentID uuid.UUID, req CreateFreezeRequest) (*repo.FreezeWindow, error)
	ListFreezes(ctx context.Context, centerID, enrollmentID uuid.UUID) ([]*repo.FreezeWindow, error)
	CancelFreeze(ctx context.Context, centerID, freezeID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type enrollmentService struct {
	db     *repo.Client
	encKey []byte
}

func New(db *repo.Client, cfg *config.Config) (Service, error) {
	encKey, err := crypto.KeyFromHex(cfg.Authentication.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("parse encryption key: %w", err)
	}
	return &enrollmentService{db: db, encKey: encKey}, nil
}

func (s *enrollmentService) Create(ctx context.Context, centerID uuid.UUID, req CreateRequest) (*repo.Enrollment, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, ErrInvalidDateRange
	}
	if req.Flexibility < 0 || req.Flexibility > 1 {
		return nil, ErrInvalidFlexibility
	}
	if err := validWindows(req.PreferredWindows, req.AvoidWindows); err != nil {
		return nil, err
	}

	exists, err := s.db.Therapist.Query().
		Where(
			enttherapist.ID(req.TherapistID),
			enttherapist.CenterID(centerID),
			enttherapist.IsActive(true),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check therapist: %w", err)
	}
	if !exists {
		return nil, ErrTherapistNotFound
	}

	if req.RoomID != nil {
		exists, err = s.db.Room.Query().
			Where(entroom.ID(*req.RoomID), entroom.CenterID(centerID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check room: %w", err)
		}
		if !exists {
			return nil, ErrRoomNotFound
		}
	}

	c := s.db.Enrollment.Create().
		SetCenterID(centerID).
		SetStudentID(req.StudentID).
		SetTherapistID(req.TherapistID).
		SetNillableRoomID(req.RoomID).
		SetStartDate(req.StartDate).
		SetEndDate(req.EndDate).
		SetSessionCount(req.SessionCount).
		SetSessionsPerWeek(req.SessionsPerWeek).
		SetPreferredDays(req.PreferredDays).
		SetAvoidDays(req.AvoidDays).
		SetPreferredWindows(req.PreferredWindows).
		SetAvoidWindows(req.AvoidWindows).
		SetFlexibility(req.Flexibility)
	if req.SessionDurationMin > 0 {
		c = c.SetSessionDurationMin(req.SessionDurationMin)
	}
	if req.GuardianPhone != "" {
		enc, perr := s.encryptPhone(req.GuardianPhone)
		if perr != nil {
			return nil, perr
		}
		c = c.SetGuardianPhoneEnc(enc)
	}

	enr, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create enrollment: %w", err)
	}
	return enr, nil
}

func (s *enrollmentService) Get(ctx context.Context, centerID, enrollmentID uuid.UUID) (*repo.Enrollment, error) {
	enr, err := s.db.Enrollment.Query().
		Where(entenroll.ID(enrollmentID), entenroll.CenterID(centerID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get enrollment: %w", err)
	}
	return enr, nil
}

func (s *enrollmentService) List(ctx context.Context, centerID uuid.UUID, req ListRequest) (*PaginatedResult[*repo.Enrollment], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}

	q := s.db.Enrollment.Query().Where(entenroll.CenterID(centerID))
	if req.Status != nil {
		q = q.Where(entenroll.StatusEQ(entenroll.Status(*req.Status)))
	}
	if req.TherapistID != nil {
		q = q.Where(entenroll.TherapistID(*req.TherapistID))
	}
	if req.StudentID != nil {
		q = q.Where(entenroll.StudentID(*req.StudentID))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count enrollments: %w", err)
	}

	data, err := q.
		Order(entenroll.ByCreatedAt(sql.OrderDesc())).
		Offset((req.Page - 1) * req.PerPage).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}

	return &PaginatedResult[*repo.Enrollment]{
		Data:       data,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: (total + req.PerPage - 1) / req.PerPage,
	}, nil
}

func (s *enrollmentService) Update(ctx context.Context, centerID, enrollmentID uuid.UUID, req UpdateRequest) (*repo.Enrollment, error) {
	enr, err := s.Get(ctx, centerID, enrollmentID)
	if err != nil {
		return nil, err
	}
	if req.Flexibility != nil && (*req.Flexibility < 0 || *req.Flexibility > 1) {
		return nil, ErrInvalidFlexibility
	}
	if err = validWindows(req.PreferredWindows, req.AvoidWindows); err != nil {
		return nil, err
	}

	upd := s.db.Enrollment.UpdateOne(enr)
	if req.TherapistID != nil {
		exists, terr := s.db.Therapist.Query().
			Where(enttherapist.ID(*req.TherapistID), enttherapist.CenterID(centerID)).
			Exist(ctx)
		if terr != nil {
			return nil, fmt.Errorf("check therapist: %w", terr)
		}
		if !exists {
			return nil, ErrTherapistNotFound
		}
		upd = upd.SetTherapistID(*req.TherapistID)
	}
	if req.RoomID != nil {
		upd = upd.SetRoomID(*req.RoomID)
	}
	if req.GuardianPhone != nil {
		enc, perr := s.encryptPhone(*req.GuardianPhone)
		if perr != nil {
			return nil, perr
		}
		upd = upd.SetGuardianPhoneEnc(enc)
	}
	if req.EndDate != nil {
		if !req.EndDate.After(enr.StartDate) {
			return nil, ErrInvalidDateRange
		}
		upd = upd.SetEndDate(*req.EndDate)
	}
	if req.PreferredDays != nil {
		upd = upd.SetPreferredDays(req.PreferredDays)
	}
	if req.AvoidDays != nil {
		upd = upd.SetAvoidDays(req.AvoidDays)
	}
	if req.PreferredWindows != nil {
		upd = upd.SetPreferredWindows(req.PreferredWindows)
	}
	if req.AvoidWindows != nil {
		upd = upd.SetAvoidWindows(req.AvoidWindows)
	}
	if req.Flexibility != nil {
		upd = upd.SetFlexibility(*req.Flexibility)
	}
	if req.Status != nil {
		upd = upd.SetStatus(entenroll.Status(*req.Status))
	}

	enr, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update enrollment: %w", err)
	}
	return enr, nil
}

func (s *enrollmentService) Cancel(ctx context.Context, centerID, enrollmentID uuid.UUID) error {
	n, err := s.db.Enrollment.Update().
		Where(entenroll.ID(enrollmentID), entenroll.CenterID(centerID)).
		SetStatus(entenroll.StatusCancelled).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("cancel enrollment: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *enrollmentService) GuardianPhone(enr *repo.Enrollment) (string, error) {
	if enr.GuardianPhoneEnc == nil || *enr.GuardianPhoneEnc == "" {
		return "", nil
	}
	phone, err := crypto.Decrypt(s.encKey, *enr.GuardianPhoneEnc)
	if err != nil {
		return "", fmt.Errorf("decrypt guardian phone: %w", err)
	}
	return phone, nil
}

// ---------------------------------------------------------------------------
// Freeze windows
// ---------------------------------------------------------------------------

func (s *enrollmentService) CreateFreeze(ctx context.Context, centerID, enrollmentID uuid.UUID, req CreateFreezeRequest) (*repo.FreezeWindow, error) {
	enr, err := s.Get(ctx, centerID, enrollmentID)
	if err != nil {
		return nil, err
	}
	if enr.Status != entenroll.StatusActive {
		return nil, ErrNotActive
	}
	if req.EndsOn.Before(req.StartsOn) {
		return nil, ErrInvalidDateRange
	}
	if req.StartsOn.Before(enr.StartDate) || req.StartsOn.After(enr.EndDate) {
		return nil, ErrFreezeOutsideTerm
	}

	overlap, err := s.db.FreezeWindow.Query().
		Where(
			entfreeze.EnrollmentID(enr.ID),
			entfreeze.StatusIn(entfreeze.StatusPending, entfreeze.StatusApplied),
			entfreeze.StartsOnLTE(req.EndsOn),
			entfreeze.EndsOnGTE(req.StartsOn),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check freeze overlap: %w", err)
	}
	if overlap {
		return nil, ErrFreezeOverlapsActive
	}

	fw, err := s.db.FreezeWindow.Create().
		SetCenterID(centerID).
		SetEnrollmentID(enr.ID).
		SetStartsOn(req.StartsOn).
		SetEndsOn(req.EndsOn).
		SetReason(req.Reason).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create freeze window: %w", err)
	}
	return fw, nil
}

func (s *enrollmentService) ListFreezes(ctx context.Context, centerID, enrollmentID uuid.UUID) ([]*repo.FreezeWindow, error) {
	freezes, err := s.db.FreezeWindow.Query().
		Where(entfreeze.CenterID(centerID), entfreeze.EnrollmentID(enrollmentID)).
		Order(entfreeze.ByStartsOn()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list freeze windows: %w", err)
	}
	return freezes, nil
}

func (s *enrollmentService) CancelFreeze(ctx context.Context, centerID, freezeID uuid.UUID) error {
	fw, err := s.db.FreezeWindow.Query().
		Where(entfreeze.ID(freezeID), entfreeze.CenterID(centerID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrFreezeNotFound
		}
		return fmt.Errorf("get freeze window: %w", err)
	}
	if fw.Status != entfreeze.StatusPending {
		return ErrFreezeNotPending
	}
	if err = s.db.FreezeWindow.UpdateOne(fw).
		SetStatus(entfreeze.StatusCancelled).
		Exec(ctx); err != nil {
		return fmt.Errorf("cancel freeze window: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *enrollmentService) encryptPhone(raw string) (string, error) {
	num, err := phonenumbers.Parse(raw, defaultRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	e164 := phonenumbers.Format(num, phonenumbers.E164)
	enc, err := crypto.Encrypt(s.encKey, e164)
	if err != nil {
		return "", fmt.Errorf("encrypt guardian phone: %w", err)
	}
	return enc, nil
}

func validWindows(groups ...[]schema.TimeWindow) error {
	for _, ws := range groups {
		for _, w := range ws {
			if w.EndMin <= w.StartMin || w.StartMin < 0 || w.EndMin > 24*60 {
				return ErrInvalidWindow
			}
		}
	}
	return nil
}
