package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confprogram/internal/delivery/http/helpers"
	"confprogram/internal/domain"
)

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	createErr   error
	getErr      error
	getEvent    *domain.Event
	getDays     []*domain.EventDay
	getVenues   []*domain.Venue
	listErr     error
	listResult  []*domain.Event
	updateErr   error
	updateEvent *domain.Event
	lastUpdate  domain.EventUpdate
	deleteErr   error

	addDayErr    error
	addDayResult *domain.EventDay
	lastDayDate  time.Time
	lastDayLabel string
	listDaysErr  error
	listDays     []*domain.EventDay
	deleteDayErr error
}

func (f *fakeEventService) CreateEvent(ctx context.Context, orgID, callerID string, event *domain.Event) error {
	if f.createErr != nil {
		return f.createErr
	}
	event.ID = "ev-created"
	return nil
}

func (f *fakeEventService) GetEvent(ctx context.Context, orgID, eventID, callerID string) (*domain.Event, []*domain.EventDay, []*domain.Venue, error) {
	if f.getErr != nil {
		return nil, nil, nil, f.getErr
	}
	return f.getEvent, f.getDays, f.getVenues, nil
}

func (f *fakeEventService) ListEvents(ctx context.Context, orgID, callerID string) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

func (f *fakeEventService) UpdateEvent(ctx context.Context, orgID, eventID, callerID string, upd domain.EventUpdate) (*domain.Event, error) {
	f.lastUpdate = upd
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateEvent, nil
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, orgID, eventID, callerID string) error {
	return f.deleteErr
}

func (f *fakeEventService) AddEventDay(ctx context.Context, orgID, eventID, callerID string, date time.Time, label string, sortOrder int) (*domain.EventDay, error) {
	f.lastDayDate = date
	f.lastDayLabel = label
	if f.addDayErr != nil {
		return nil, f.addDayErr
	}
	return f.addDayResult, nil
}

func (f *fakeEventService) ListEventDays(ctx context.Context, orgID, eventID, callerID string) ([]*domain.EventDay, error) {
	if f.listDaysErr != nil {
		return nil, f.listDaysErr
	}
	return f.listDays, nil
}

func (f *fakeEventService) DeleteEventDay(ctx context.Context, orgID, eventID, dayID, callerID string) error {
	return f.deleteDayErr
}

func TestEventController_Create(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		fakeErr     error
		wantStatus  int
		wantErrCode string
	}{
		{
			name:       "success",
			body:       `{"name":"GopherCon 2026","slug":"gophercon-2026","starts_on":"2026-11-09","ends_on":"2026-11-11","location":"Berlin"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:        "missing slug",
			body:        `{"name":"GopherCon 2026"}`,
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
		{
			name:        "bad date format",
			body:        `{"name":"GopherCon","slug":"gophercon","starts_on":"11/09/2026"}`,
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
		{
			name:        "duplicate slug",
			body:        `{"name":"GopherCon","slug":"gophercon"}`,
			fakeErr:     domain.ErrDuplicateSlug,
			wantStatus:  http.StatusConflict,
			wantErrCode: helpers.ErrCodeConflict,
		},
		{
			name:        "caller not a member",
			body:        `{"name":"GopherCon","slug":"gophercon"}`,
			fakeErr:     domain.ErrForbidden,
			wantStatus:  http.StatusForbidden,
			wantErrCode: helpers.ErrCodeForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{createErr: tt.fakeErr}
			ctrl := NewEventController(testLogger, fake)
			req := authedRequest(http.MethodPost, "/orgs/org-1/events", tt.body)
			req.SetPathValue("orgID", "org-1")
			rr := httptest.NewRecorder()

			ctrl.Create(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantErrCode != "" {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantErrCode, envelope.Error.Code)
				return
			}
			require.Nil(t, envelope.Error)
			dataBytes, err := json.Marshal(envelope.Data)
			require.NoError(t, err)
			var ev domain.Event
			require.NoError(t, json.Unmarshal(dataBytes, &ev))
			assert.Equal(t, "ev-created", ev.ID)
		})
	}
}

func TestEventController_Get(t *testing.T) {
	fake := &fakeEventService{
		getEvent:  &domain.Event{ID: "ev-1", Name: "GopherCon 2026", Slug: "gophercon-2026"},
		getDays:   []*domain.EventDay{{ID: "day-1", Label: "Day 1"}},
		getVenues: []*domain.Venue{{ID: "venue-1", Name: "Main Hall"}},
	}
	ctrl := NewEventController(testLogger, fake)
	req := authedRequest(http.MethodGet, "/orgs/org-1/events/ev-1", "")
	req.SetPathValue("orgID", "org-1")
	req.SetPathValue("eventID", "ev-1")
	rr := httptest.NewRecorder()

	ctrl.Get(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	require.Nil(t, envelope.Error)
	dataBytes, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var resp GetEventResponse
	require.NoError(t, json.Unmarshal(dataBytes, &resp))
	require.NotNil(t, resp.Event)
	assert.Equal(t, "ev-1", resp.Event.ID)
	require.Len(t, resp.Days, 1)
	require.Len(t, resp.Venues, 1)
}

func TestEventController_Update_partial(t *testing.T) {
	fake := &fakeEventService{updateEvent: &domain.Event{ID: "ev-1", Name: "Renamed"}}
	ctrl := NewEventController(testLogger, fake)
	req := authedRequest(http.MethodPatch, "/orgs/org-1/events/ev-1", `{"name":"Renamed","starts_on":"2026-11-10"}`)
	req.SetPathValue("orgID", "org-1")
	req.SetPathValue("eventID", "ev-1")
	rr := httptest.NewRecorder()

	ctrl.Update(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, fake.lastUpdate.Name)
	assert.Equal(t, "Renamed", *fake.lastUpdate.Name)
	require.NotNil(t, fake.lastUpdate.StartsOn)
	assert.Equal(t, "2026-11-10", fake.lastUpdate.StartsOn.Format("2006-01-02"))
	assert.Nil(t, fake.lastUpdate.Description, "omitted fields stay nil")
	assert.Nil(t, fake.lastUpdate.EndsOn)
}

func TestEventController_AddDay(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		fake        *fakeEventService
		wantStatus  int
		wantErrCode string
	}{
		{
			name: "success",
			body: `{"date":"2026-11-09","label":"Workshop Day","sort_order":1}`,
			fake: &fakeEventService{addDayResult: &domain.EventDay{
				ID: "day-created", EventID: "ev-1", Label: "Workshop Day",
			}},
			wantStatus: http.StatusCreated,
		},
		{
			name:        "missing date",
			body:        `{"label":"Workshop Day"}`,
			fake:        &fakeEventService{},
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
		{
			name:        "event not found",
			body:        `{"date":"2026-11-09"}`,
			fake:        &fakeEventService{addDayErr: domain.ErrNotFound},
			wantStatus:  http.StatusNotFound,
			wantErrCode: helpers.ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewEventController(testLogger, tt.fake)
			req := authedRequest(http.MethodPost, "/orgs/org-1/events/ev-1/days", tt.body)
			req.SetPathValue("orgID", "org-1")
			req.SetPathValue("eventID", "ev-1")
			rr := httptest.NewRecorder()

			ctrl.AddDay(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantErrCode != "" {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantErrCode, envelope.Error.Code)
				return
			}
			require.Nil(t, envelope.Error)
			assert.Equal(t, "2026-11-09", tt.fake.lastDayDate.Format("2006-01-02"))
			assert.Equal(t, "Workshop Day", tt.fake.lastDayLabel)
		})
	}
}
