package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"meetbook/core/constants"
	"meetbook/core/database"
	"meetbook/core/errors"
	"meetbook/modules/availability/dto"
	"meetbook/modules/availability/entity"
	userEntity "meetbook/modules/user/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type fakeDB struct{}

func (f *fakeDB) ExecContext(ctx context.Context, query string, args ...any) error { return nil }
func (f *fakeDB) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	return sql.ErrNoRows
}
func (f *fakeDB) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	return nil
}
func (f *fakeDB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return nil
}
func (f *fakeDB) NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error) {
	return nil, nil
}
func (f *fakeDB) SQLx() *sqlx.DB { return nil }
func (f *fakeDB) WithinTx(ctx context.Context, fn func(tx database.Querier) error) error {
	return fn(f)
}

type fakeUserRepo struct {
	users map[uuid.UUID]*userEntity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *userEntity.User) error { return nil }
func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*userEntity.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*userEntity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) GetByIDForUpdate(ctx context.Context, q database.Querier, id uuid.UUID) (*userEntity.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) UpdatePhotoURL(ctx context.Context, id uuid.UUID, photoURL string) error {
	return nil
}

type fakeLedger struct {
	rows []entity.AvailabilityInterval
}

func (f *fakeLedger) Insert(ctx context.Context, q database.Querier, interval *entity.AvailabilityInterval) error {
	interval.ID = uuid.New()
	f.rows = append(f.rows, *interval)
	return nil
}

func (f *fakeLedger) FindOverlappingForUpdate(ctx context.Context, q database.Querier, hostID uuid.UUID, start, end time.Time) ([]entity.AvailabilityInterval, error) {
	var out []entity.AvailabilityInterval
	for _, r := range f.rows {
		if r.HostID == hostID && r.StartTime.Before(end) && start.Before(r.EndTime) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLedger) FindCoveringForUpdate(ctx context.Context, q database.Querier, hostID uuid.UUID, start, end time.Time) (*entity.AvailabilityInterval, error) {
	for _, r := range f.rows {
		if r.HostID == hostID && !r.StartTime.After(start) && !r.EndTime.Before(end) {
			row := r
			return &row, nil
		}
	}
	return nil, nil
}

func (f *fakeLedger) Replace(ctx context.Context, q database.Querier, consumed *entity.AvailabilityInterval, remainders ...entity.Interval) error {
	return nil
}

func (f *fakeLedger) ListByHost(ctx context.Context, hostID uuid.UUID) ([]entity.AvailabilityInterval, error) {
	var out []entity.AvailabilityInterval
	for _, r := range f.rows {
		if r.HostID == hostID {
			out = append(out, r)
		}
	}
	return out, nil
}

type availabilityFixture struct {
	ledger *fakeLedger
	users  *fakeUserRepo
	svc    AvailabilityServiceInterface

	partnerID uuid.UUID
	memberID  uuid.UUID
}

func newAvailabilityFixture(t *testing.T) *availabilityFixture {
	t.Helper()

	partnerID := uuid.New()
	memberID := uuid.New()

	partner := &userEntity.User{Email: "partner@example.com", Role: constants.RolePartner}
	partner.ID = partnerID
	member := &userEntity.User{Email: "member@example.com", Role: constants.RoleMember}
	member.ID = memberID

	f := &availabilityFixture{
		ledger: &fakeLedger{},
		users: &fakeUserRepo{users: map[uuid.UUID]*userEntity.User{
			partnerID: partner,
			memberID:  member,
		}},
		partnerID: partnerID,
		memberID:  memberID,
	}
	f.svc = NewAvailabilityService(&fakeDB{}, f.ledger, f.users)
	return f
}

func TestDeclareInsertsWindow(t *testing.T) {
	f := newAvailabilityFixture(t)

	resp, appErr := f.svc.Declare(context.Background(), f.partnerID, &dto.DeclareAvailabilityRequest{
		Start: "2026-03-01T09:00:00Z",
		End:   "2026-03-01T17:00:00Z",
	})
	if appErr != nil {
		t.Fatalf("Declare: %v", appErr)
	}
	if resp.HostID != f.partnerID.String() {
		t.Errorf("host_id = %s, want %s", resp.HostID, f.partnerID)
	}
	if len(f.ledger.rows) != 1 {
		t.Fatalf("ledger rows = %d, want 1", len(f.ledger.rows))
	}
}

func TestDeclareKeepsLedgerDisjoint(t *testing.T) {
	f := newAvailabilityFixture(t)

	declare := func(start, end string) *errors.AppError {
		_, appErr := f.svc.Declare(context.Background(), f.partnerID, &dto.DeclareAvailabilityRequest{
			Start: start, End: end,
		})
		return appErr
	}

	if appErr := declare("2026-03-01T09:00:00Z", "2026-03-01T12:00:00Z"); appErr != nil {
		t.Fatalf("first declare: %v", appErr)
	}

	// Overlapping windows are rejected, touching windows are fine.
	appErr := declare("2026-03-01T11:00:00Z", "2026-03-01T13:00:00Z")
	if appErr == nil || appErr.Code != errors.ErrOverlapConflict {
		t.Fatalf("error = %v, want code %s", appErr, errors.ErrOverlapConflict)
	}
	if appErr := declare("2026-03-01T12:00:00Z", "2026-03-01T13:00:00Z"); appErr != nil {
		t.Fatalf("adjacent declare: %v", appErr)
	}
	if len(f.ledger.rows) != 2 {
		t.Errorf("ledger rows = %d, want 2", len(f.ledger.rows))
	}
}

func TestDeclareErrors(t *testing.T) {
	strangerID := uuid.New()

	tests := []struct {
		name     string
		hostID   func(f *availabilityFixture) uuid.UUID
		start    string
		end      string
		wantCode errors.ErrorCode
	}{
		{
			name:     "member cannot declare",
			hostID:   func(f *availabilityFixture) uuid.UUID { return f.memberID },
			start:    "2026-03-01T09:00:00Z",
			end:      "2026-03-01T17:00:00Z",
			wantCode: errors.ErrNotEligibleHost,
		},
		{
			name:     "unknown host",
			hostID:   func(f *availabilityFixture) uuid.UUID { return strangerID },
			start:    "2026-03-01T09:00:00Z",
			end:      "2026-03-01T17:00:00Z",
			wantCode: errors.ErrHostNotFound,
		},
		{
			name:     "inverted range",
			hostID:   func(f *availabilityFixture) uuid.UUID { return f.partnerID },
			start:    "2026-03-01T17:00:00Z",
			end:      "2026-03-01T09:00:00Z",
			wantCode: errors.ErrInvalidRange,
		},
		{
			name:     "empty range",
			hostID:   func(f *availabilityFixture) uuid.UUID { return f.partnerID },
			start:    "2026-03-01T09:00:00Z",
			end:      "2026-03-01T09:00:00Z",
			wantCode: errors.ErrInvalidRange,
		},
		{
			name:     "missing start",
			hostID:   func(f *availabilityFixture) uuid.UUID { return f.partnerID },
			start:    "",
			end:      "2026-03-01T17:00:00Z",
			wantCode: errors.ErrInvalidInput,
		},
		{
			name:     "malformed timestamp",
			hostID:   func(f *availabilityFixture) uuid.UUID { return f.partnerID },
			start:    "next tuesday",
			end:      "2026-03-01T17:00:00Z",
			wantCode: errors.ErrInvalidInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAvailabilityFixture(t)
			_, appErr := f.svc.Declare(context.Background(), tt.hostID(f), &dto.DeclareAvailabilityRequest{
				Start: tt.start, End: tt.end,
			})
			if appErr == nil {
				t.Fatal("expected error, got nil")
			}
			if appErr.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", appErr.Code, tt.wantCode)
			}
			if len(f.ledger.rows) != 0 {
				t.Error("ledger changed on a rejected declaration")
			}
		})
	}
}

func TestGetMyAvailability(t *testing.T) {
	f := newAvailabilityFixture(t)

	if _, appErr := f.svc.Declare(context.Background(), f.partnerID, &dto.DeclareAvailabilityRequest{
		Start: "2026-03-01T09:00:00Z",
		End:   "2026-03-01T12:00:00Z",
	}); appErr != nil {
		t.Fatalf("Declare: %v", appErr)
	}

	resp, appErr := f.svc.GetMyAvailability(context.Background(), f.partnerID)
	if appErr != nil {
		t.Fatalf("GetMyAvailability: %v", appErr)
	}
	if !resp.IsPartner {
		t.Error("IsPartner = false for a partner")
	}
	if len(resp.Availability) != 1 {
		t.Errorf("availability size = %d, want 1", len(resp.Availability))
	}
}

func TestGetMyAvailabilityForMember(t *testing.T) {
	f := newAvailabilityFixture(t)

	resp, appErr := f.svc.GetMyAvailability(context.Background(), f.memberID)
	if appErr != nil {
		t.Fatalf("GetMyAvailability: %v", appErr)
	}
	if resp.IsPartner {
		t.Error("IsPartner = true for a member")
	}
	if len(resp.Availability) != 0 {
		t.Errorf("availability size = %d, want 0", len(resp.Availability))
	}
}

func TestGetMyAvailabilityUnknownUser(t *testing.T) {
	f := newAvailabilityFixture(t)

	_, appErr := f.svc.GetMyAvailability(context.Background(), uuid.New())
	if appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Fatalf("error = %v, want code %s", appErr, errors.ErrNotFound)
	}
}
