package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confprogram/internal/delivery/http/helpers"
	"confprogram/internal/delivery/http/middleware"
	"confprogram/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeProgramService implements domain.ProgramService for handler tests.
type fakeProgramService struct {
	createSessionErr    error
	getSessionErr       error
	getSessionResult    *domain.ProgramSession
	getSessionPres      []*domain.Presentation
	listSessionsErr     error
	listSessionsResult  []*domain.ProgramSession
	updateContentErr    error
	updateContentResult *domain.ProgramSession
	deleteSessionErr    error

	moveSessionErr       error
	moveSessionResult    *domain.ProgramSession
	moveSessionConflicts []domain.Conflict
	lastMoveSessionID    string
	lastMove             domain.ScheduleMove

	createPresentationErr error
	updatePresErr         error
	updatePresResult      *domain.Presentation
	deletePresErr         error
	movePresErr           error
	movePresResult        *domain.Presentation
	movePresConflicts     []domain.Conflict

	dayConflictsErr    error
	dayConflictsResult *domain.ConflictReport

	autoArrangeErr    error
	autoArrangeResult *domain.AutoArrangeResult
	lastArrangeReq    domain.AutoArrangeRequest
}

func (f *fakeProgramService) CreateSession(ctx context.Context, orgID, eventID, dayID, callerID string, sess *domain.ProgramSession) error {
	if f.createSessionErr != nil {
		return f.createSessionErr
	}
	sess.ID = "sess-created"
	sess.Version = 1
	return nil
}

func (f *fakeProgramService) GetSession(ctx context.Context, orgID, eventID, sessionID, callerID string) (*domain.ProgramSession, []*domain.Presentation, error) {
	if f.getSessionErr != nil {
		return nil, nil, f.getSessionErr
	}
	return f.getSessionResult, f.getSessionPres, nil
}

func (f *fakeProgramService) ListDaySessions(ctx context.Context, orgID, eventID, dayID, callerID string) ([]*domain.ProgramSession, error) {
	if f.listSessionsErr != nil {
		return nil, f.listSessionsErr
	}
	return f.listSessionsResult, nil
}

func (f *fakeProgramService) UpdateSessionContent(ctx context.Context, orgID, eventID, sessionID, callerID string, upd domain.SessionContentUpdate) (*domain.ProgramSession, error) {
	if f.updateContentErr != nil {
		return nil, f.updateContentErr
	}
	return f.updateContentResult, nil
}

func (f *fakeProgramService) DeleteSession(ctx context.Context, orgID, eventID, sessionID, callerID string) error {
	return f.deleteSessionErr
}

func (f *fakeProgramService) MoveSession(ctx context.Context, orgID, eventID, sessionID, callerID string, mv domain.ScheduleMove) (*domain.ProgramSession, []domain.Conflict, error) {
	f.lastMoveSessionID = sessionID
	f.lastMove = mv
	if f.moveSessionErr != nil {
		return nil, nil, f.moveSessionErr
	}
	if len(f.moveSessionConflicts) > 0 {
		return nil, f.moveSessionConflicts, nil
	}
	return f.moveSessionResult, nil, nil
}

func (f *fakeProgramService) CreatePresentation(ctx context.Context, orgID, eventID, sessionID, callerID string, p *domain.Presentation) error {
	if f.createPresentationErr != nil {
		return f.createPresentationErr
	}
	p.ID = "pres-created"
	p.Version = 1
	return nil
}

func (f *fakeProgramService) UpdatePresentationContent(ctx context.Context, orgID, eventID, presentationID, callerID string, title, abstract *string, speakerIDs []string) (*domain.Presentation, error) {
	if f.updatePresErr != nil {
		return nil, f.updatePresErr
	}
	return f.updatePresResult, nil
}

func (f *fakeProgramService) DeletePresentation(ctx context.Context, orgID, eventID, presentationID, callerID string) error {
	return f.deletePresErr
}

func (f *fakeProgramService) MovePresentation(ctx context.Context, orgID, eventID, presentationID, callerID string, mv domain.ScheduleMove) (*domain.Presentation, []domain.Conflict, error) {
	if f.movePresErr != nil {
		return nil, nil, f.movePresErr
	}
	if len(f.movePresConflicts) > 0 {
		return nil, f.movePresConflicts, nil
	}
	return f.movePresResult, nil, nil
}

func (f *fakeProgramService) DayConflicts(ctx context.Context, orgID, eventID, dayID, callerID string) (*domain.ConflictReport, error) {
	if f.dayConflictsErr != nil {
		return nil, f.dayConflictsErr
	}
	return f.dayConflictsResult, nil
}

func (f *fakeProgramService) AutoArrange(ctx context.Context, orgID, eventID, dayID, callerID string, req domain.AutoArrangeRequest) (*domain.AutoArrangeResult, error) {
	f.lastArrangeReq = req
	if f.autoArrangeErr != nil {
		return nil, f.autoArrangeErr
	}
	return f.autoArrangeResult, nil
}

func authedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req.WithContext(middleware.SetUserID(req.Context(), "user-123"))
}

func TestProgramController_MoveSession(t *testing.T) {
	moved := &domain.ProgramSession{ID: "sess-1", Title: "Opening", Version: 4}
	conflicts := []domain.Conflict{{
		Type:           domain.ConflictSessionOverlap,
		ResourceID:     "venue-1",
		ResourceName:   "Main Hall",
		FirstID:        "sess-1",
		SecondID:       "sess-2",
		OverlapMinutes: 30,
	}}

	tests := []struct {
		name         string
		body         string
		fake         *fakeProgramService
		wantStatus   int
		wantErrCode  string
		wantConflict bool
	}{
		{
			name:       "clean move commits",
			body:       `{"venue_id":"venue-1","start_time":"09:00","end_time":"10:00","version":3}`,
			fake:       &fakeProgramService{moveSessionResult: moved},
			wantStatus: http.StatusOK,
		},
		{
			name:         "conflicting move returns 409 with conflicts",
			body:         `{"venue_id":"venue-1","start_time":"09:00","end_time":"10:00","version":3}`,
			fake:         &fakeProgramService{moveSessionConflicts: conflicts},
			wantStatus:   http.StatusConflict,
			wantConflict: true,
		},
		{
			name:        "stale version returns 409 version_mismatch",
			body:        `{"start_time":"09:00","version":1}`,
			fake:        &fakeProgramService{moveSessionErr: domain.ErrVersionMismatch},
			wantStatus:  http.StatusConflict,
			wantErrCode: helpers.ErrCodeVersionMismatch,
		},
		{
			name:        "bad time format",
			body:        `{"start_time":"9am","version":1}`,
			fake:        &fakeProgramService{},
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
		{
			name:        "missing version",
			body:        `{"start_time":"09:00"}`,
			fake:        &fakeProgramService{},
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
		{
			name:        "session not found",
			body:        `{"start_time":"09:00","version":1}`,
			fake:        &fakeProgramService{moveSessionErr: domain.ErrNotFound},
			wantStatus:  http.StatusNotFound,
			wantErrCode: helpers.ErrCodeNotFound,
		},
		{
			name:        "caller not a member",
			body:        `{"start_time":"09:00","version":1}`,
			fake:        &fakeProgramService{moveSessionErr: domain.ErrForbidden},
			wantStatus:  http.StatusForbidden,
			wantErrCode: helpers.ErrCodeForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewProgramController(testLogger, tt.fake)
			req := authedRequest(http.MethodPost, "/orgs/org-1/events/ev-1/sessions/sess-1/move", tt.body)
			req.SetPathValue("orgID", "org-1")
			req.SetPathValue("eventID", "ev-1")
			req.SetPathValue("sessionID", "sess-1")
			rr := httptest.NewRecorder()

			ctrl.MoveSession(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantConflict {
				require.Nil(t, envelope.Error)
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var resp MoveConflictResponse
				require.NoError(t, json.Unmarshal(dataBytes, &resp))
				assert.True(t, resp.HasConflicts)
				require.Len(t, resp.Conflicts, 1)
				assert.Equal(t, domain.ConflictSessionOverlap, resp.Conflicts[0].Type)
				assert.Equal(t, 30, resp.Conflicts[0].OverlapMinutes)
				return
			}
			if tt.wantErrCode != "" {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantErrCode, envelope.Error.Code)
				return
			}
			require.Nil(t, envelope.Error)
			dataBytes, err := json.Marshal(envelope.Data)
			require.NoError(t, err)
			var sess domain.ProgramSession
			require.NoError(t, json.Unmarshal(dataBytes, &sess))
			assert.Equal(t, "sess-1", sess.ID)
			assert.Equal(t, 4, sess.Version)
		})
	}
}

func TestProgramController_MoveSession_passes_move_to_service(t *testing.T) {
	fake := &fakeProgramService{moveSessionResult: &domain.ProgramSession{ID: "sess-1"}}
	ctrl := NewProgramController(testLogger, fake)
	body := `{"venue_id":"venue-2","start_time":"10:30","end_time":"11:15","version":7,"force":true}`
	req := authedRequest(http.MethodPost, "/orgs/org-1/events/ev-1/sessions/sess-1/move", body)
	req.SetPathValue("orgID", "org-1")
	req.SetPathValue("eventID", "ev-1")
	req.SetPathValue("sessionID", "sess-1")
	rr := httptest.NewRecorder()

	ctrl.MoveSession(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "sess-1", fake.lastMoveSessionID)
	require.NotNil(t, fake.lastMove.VenueID)
	assert.Equal(t, "venue-2", *fake.lastMove.VenueID)
	require.NotNil(t, fake.lastMove.Start)
	assert.Equal(t, "10:30", fake.lastMove.Start.String())
	require.NotNil(t, fake.lastMove.End)
	assert.Equal(t, "11:15", fake.lastMove.End.String())
	assert.Equal(t, 7, fake.lastMove.Version)
	assert.True(t, fake.lastMove.Force)
}

func TestProgramController_CreateSession(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		fakeErr     error
		wantStatus  int
		wantErrCode string
	}{
		{
			name:       "success",
			body:       `{"title":"Opening Keynote","description":"Welcome"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:        "missing title",
			body:        `{"description":"Welcome"}`,
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
		{
			name:        "unknown field rejected",
			body:        `{"title":"Opening","venue_id":"venue-1"}`,
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
		{
			name:        "day not found",
			body:        `{"title":"Opening"}`,
			fakeErr:     domain.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantErrCode: helpers.ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeProgramService{createSessionErr: tt.fakeErr}
			ctrl := NewProgramController(testLogger, fake)
			req := authedRequest(http.MethodPost, "/orgs/org-1/events/ev-1/days/day-1/sessions", tt.body)
			req.SetPathValue("orgID", "org-1")
			req.SetPathValue("eventID", "ev-1")
			req.SetPathValue("dayID", "day-1")
			rr := httptest.NewRecorder()

			ctrl.CreateSession(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error)
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var sess domain.ProgramSession
				require.NoError(t, json.Unmarshal(dataBytes, &sess))
				assert.Equal(t, "sess-created", sess.ID)
				assert.Equal(t, 1, sess.Version)
				assert.Nil(t, sess.Start, "new sessions start unscheduled")
			} else if tt.wantErrCode != "" {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantErrCode, envelope.Error.Code)
			}
		})
	}
}

func TestProgramController_DayConflicts(t *testing.T) {
	report := &domain.ConflictReport{
		HasConflicts: true,
		Conflicts: []domain.Conflict{{
			Type:       domain.ConflictSessionOverlap,
			ResourceID: "venue-1",
			FirstID:    "sess-1",
			SecondID:   "sess-2",
		}},
		Venues: []*domain.VenueCapacityView{{VenueID: "venue-1", Name: "Main Hall", SessionCount: 2, UtilizationPct: 20}},
	}
	fake := &fakeProgramService{dayConflictsResult: report}
	ctrl := NewProgramController(testLogger, fake)
	req := authedRequest(http.MethodGet, "/orgs/org-1/events/ev-1/days/day-1/conflicts", "")
	req.SetPathValue("orgID", "org-1")
	req.SetPathValue("eventID", "ev-1")
	req.SetPathValue("dayID", "day-1")
	rr := httptest.NewRecorder()

	ctrl.DayConflicts(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	require.Nil(t, envelope.Error)
	dataBytes, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var got domain.ConflictReport
	require.NoError(t, json.Unmarshal(dataBytes, &got))
	assert.True(t, got.HasConflicts)
	require.Len(t, got.Venues, 1)
	assert.Equal(t, 20, got.Venues[0].UtilizationPct)
}

func TestProgramController_AutoArrange(t *testing.T) {
	result := &domain.AutoArrangeResult{
		ScheduledCount: 2,
		Assignments: []domain.ProposedAssignment{
			{SessionID: "sess-1", VenueID: "venue-1"},
			{SessionID: "sess-2", VenueID: "venue-1"},
		},
		Preview: true,
	}

	tests := []struct {
		name        string
		body        string
		fake        *fakeProgramService
		wantStatus  int
		wantErrCode string
		checkReq    func(t *testing.T, req domain.AutoArrangeRequest)
	}{
		{
			name:       "preview run",
			body:       `{"strategy":"minimize_gaps","preview":true}`,
			fake:       &fakeProgramService{autoArrangeResult: result},
			wantStatus: http.StatusOK,
			checkReq: func(t *testing.T, req domain.AutoArrangeRequest) {
				assert.Equal(t, domain.StrategyMinimizeGaps, req.Strategy)
				assert.True(t, req.Preview)
			},
		},
		{
			name:       "custom window and slot",
			body:       `{"slot_minutes":45,"window_start":"09:00","window_end":"17:00"}`,
			fake:       &fakeProgramService{autoArrangeResult: result},
			wantStatus: http.StatusOK,
			checkReq: func(t *testing.T, req domain.AutoArrangeRequest) {
				assert.Equal(t, 45, req.SlotMinutes)
				assert.Equal(t, "09:00", req.WindowStart.String())
				assert.Equal(t, "17:00", req.WindowEnd.String())
			},
		},
		{
			name:        "unknown strategy rejected before service",
			body:        `{"strategy":"magic"}`,
			fake:        &fakeProgramService{},
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewProgramController(testLogger, tt.fake)
			req := authedRequest(http.MethodPost, "/orgs/org-1/events/ev-1/days/day-1/auto-arrange", tt.body)
			req.SetPathValue("orgID", "org-1")
			req.SetPathValue("eventID", "ev-1")
			req.SetPathValue("dayID", "day-1")
			rr := httptest.NewRecorder()

			ctrl.AutoArrange(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			if tt.wantErrCode != "" {
				var envelope helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantErrCode, envelope.Error.Code)
				return
			}
			if tt.checkReq != nil {
				tt.checkReq(t, tt.fake.lastArrangeReq)
			}
		})
	}
}

func TestProgramController_unauthenticated(t *testing.T) {
	ctrl := NewProgramController(testLogger, &fakeProgramService{})
	req := httptest.NewRequest(http.MethodGet, "/orgs/org-1/events/ev-1/days/day-1/conflicts", nil)
	req.SetPathValue("orgID", "org-1")
	req.SetPathValue("eventID", "ev-1")
	req.SetPathValue("dayID", "day-1")
	rr := httptest.NewRecorder()

	ctrl.DayConflicts(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}
