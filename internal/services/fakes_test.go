package services

import (
	"context"
	"fmt"

	"confprogram/internal/domain"
)

// In-memory repositories shared by the service tests.

type fakeOrgRepo struct {
	orgs    map[string]*domain.Organization
	members map[string]string // orgID+":"+userID -> role
	nextID  int
}

func newFakeOrgRepo() *fakeOrgRepo {
	return &fakeOrgRepo{
		orgs:    make(map[string]*domain.Organization),
		members: make(map[string]string),
		nextID:  1,
	}
}

func (f *fakeOrgRepo) seedOrg(name string, ownerID string) *domain.Organization {
	org := &domain.Organization{Name: name, Slug: name}
	_ = f.Create(context.Background(), org)
	_ = f.AddMember(context.Background(), org.ID, ownerID, domain.OrgRoleOwner)
	return org
}

func (f *fakeOrgRepo) Create(ctx context.Context, org *domain.Organization) error {
	for _, o := range f.orgs {
		if o.Slug == org.Slug {
			return domain.ErrDuplicateSlug
		}
	}
	org.ID = fmt.Sprintf("org-%d", f.nextID)
	f.nextID++
	f.orgs[org.ID] = org
	return nil
}

func (f *fakeOrgRepo) GetByID(ctx context.Context, id string) (*domain.Organization, error) {
	if o, ok := f.orgs[id]; ok {
		return o, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeOrgRepo) GetBySlug(ctx context.Context, slug string) (*domain.Organization, error) {
	for _, o := range f.orgs {
		if o.Slug == slug {
			return o, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeOrgRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.Organization, error) {
	var out []*domain.Organization
	for id, o := range f.orgs {
		if _, ok := f.members[id+":"+userID]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrgRepo) AddMember(ctx context.Context, orgID, userID, role string) error {
	key := orgID + ":" + userID
	if _, ok := f.members[key]; ok {
		return domain.ErrAlreadyMember
	}
	f.members[key] = role
	return nil
}

func (f *fakeOrgRepo) GetMemberRole(ctx context.Context, orgID, userID string) (string, error) {
	if role, ok := f.members[orgID+":"+userID]; ok {
		return role, nil
	}
	return "", domain.ErrNotFound
}

func (f *fakeOrgRepo) ListMembers(ctx context.Context, orgID string) ([]*domain.OrganizationMember, error) {
	var out []*domain.OrganizationMember
	for key, role := range f.members {
		if len(key) > len(orgID)+1 && key[:len(orgID)+1] == orgID+":" {
			out = append(out, &domain.OrganizationMember{OrgID: orgID, UserID: key[len(orgID)+1:], Role: role})
		}
	}
	return out, nil
}

func (f *fakeOrgRepo) RemoveMember(ctx context.Context, orgID, userID string) error {
	key := orgID + ":" + userID
	if _, ok := f.members[key]; !ok {
		return domain.ErrNotFound
	}
	delete(f.members, key)
	return nil
}

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User), nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	f.nextID++
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, u *domain.User) error {
	f.byEmail[u.Email] = u
	return nil
}

type fakeEventRepo struct {
	events map[string]*domain.Event
	days   map[string]*domain.EventDay
	nextID int
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		events: make(map[string]*domain.Event),
		days:   make(map[string]*domain.EventDay),
		nextID: 1,
	}
}

func (f *fakeEventRepo) seedEvent(orgID, name string) *domain.Event {
	e := &domain.Event{OrgID: orgID, Name: name, Slug: name}
	_ = f.Create(context.Background(), e)
	return e
}

func (f *fakeEventRepo) seedDay(eventID string) *domain.EventDay {
	day := &domain.EventDay{EventID: eventID}
	_ = f.CreateDay(context.Background(), day)
	return day
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	e.ID = fmt.Sprintf("event-%d", f.nextID)
	f.nextID++
	f.events[e.ID] = e
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, orgID, id string) (*domain.Event, error) {
	if e, ok := f.events[id]; ok && e.OrgID == orgID {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) ListByOrgID(ctx context.Context, orgID string) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, e := range f.events {
		if e.OrgID == orgID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, orgID, id string, upd domain.EventUpdate) (*domain.Event, error) {
	e, err := f.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		e.Name = *upd.Name
	}
	if upd.Description != nil {
		e.Description = *upd.Description
	}
	if upd.StartsOn != nil {
		e.StartsOn = upd.StartsOn
	}
	if upd.EndsOn != nil {
		e.EndsOn = upd.EndsOn
	}
	if upd.Location != nil {
		e.Location = *upd.Location
	}
	return e, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, orgID, id string) error {
	if _, err := f.GetByID(ctx, orgID, id); err != nil {
		return err
	}
	delete(f.events, id)
	return nil
}

func (f *fakeEventRepo) CreateDay(ctx context.Context, day *domain.EventDay) error {
	day.ID = fmt.Sprintf("day-%d", f.nextID)
	f.nextID++
	f.days[day.ID] = day
	return nil
}

func (f *fakeEventRepo) GetDayByID(ctx context.Context, eventID, dayID string) (*domain.EventDay, error) {
	if d, ok := f.days[dayID]; ok && d.EventID == eventID {
		return d, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) ListDaysByEventID(ctx context.Context, eventID string) ([]*domain.EventDay, error) {
	var out []*domain.EventDay
	for _, d := range f.days {
		if d.EventID == eventID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) DeleteDay(ctx context.Context, eventID, dayID string) error {
	if _, err := f.GetDayByID(ctx, eventID, dayID); err != nil {
		return err
	}
	delete(f.days, dayID)
	return nil
}

type fakeVenueRepo struct {
	venues []*domain.Venue
	nextID int
}

func newFakeVenueRepo() *fakeVenueRepo { return &fakeVenueRepo{nextID: 1} }

func (f *fakeVenueRepo) seedVenue(eventID, name string, capacity int) *domain.Venue {
	v := &domain.Venue{EventID: eventID, Name: name, Capacity: capacity, SortOrder: f.nextID}
	_ = f.Create(context.Background(), v)
	return v
}

func (f *fakeVenueRepo) Create(ctx context.Context, v *domain.Venue) error {
	v.ID = fmt.Sprintf("venue-%d", f.nextID)
	f.nextID++
	f.venues = append(f.venues, v)
	return nil
}

func (f *fakeVenueRepo) GetByID(ctx context.Context, eventID, id string) (*domain.Venue, error) {
	for _, v := range f.venues {
		if v.ID == id && v.EventID == eventID {
			return v, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeVenueRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.Venue, error) {
	var out []*domain.Venue
	for _, v := range f.venues {
		if v.EventID == eventID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVenueRepo) Update(ctx context.Context, eventID, id string, upd domain.VenueUpdate) (*domain.Venue, error) {
	v, err := f.GetByID(ctx, eventID, id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		v.Name = *upd.Name
	}
	if upd.Capacity != nil {
		v.Capacity = *upd.Capacity
	}
	return v, nil
}

func (f *fakeVenueRepo) Delete(ctx context.Context, eventID, id string) error {
	for i, v := range f.venues {
		if v.ID == id && v.EventID == eventID {
			f.venues = append(f.venues[:i], f.venues[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeSessionRepo struct {
	sessions map[string]*domain.ProgramSession
	nextID   int
	// afterList runs at the end of ListByDayID, letting tests mutate
	// state between a service's snapshot read and its commit.
	afterList func()
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*domain.ProgramSession), nextID: 1}
}

func (f *fakeSessionRepo) seedSession(dayID, title string, venueID *string, start, end *domain.TimeOfDay) *domain.ProgramSession {
	sess := &domain.ProgramSession{EventDayID: dayID, Title: title, VenueID: venueID, Start: start, End: end, SortOrder: f.nextID}
	_ = f.Create(context.Background(), sess)
	sess.VenueID = venueID
	sess.Start = start
	sess.End = end
	return sess
}

func (f *fakeSessionRepo) Create(ctx context.Context, sess *domain.ProgramSession) error {
	sess.ID = fmt.Sprintf("sess-%d", f.nextID)
	f.nextID++
	sess.Version = 1
	f.sessions[sess.ID] = sess
	return nil
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id string) (*domain.ProgramSession, error) {
	if s, ok := f.sessions[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSessionRepo) ListByDayID(ctx context.Context, dayID string) ([]*domain.ProgramSession, error) {
	var out []*domain.ProgramSession
	for _, s := range f.sessions {
		if s.EventDayID == dayID {
			cp := *s
			out = append(out, &cp)
		}
	}
	if f.afterList != nil {
		f.afterList()
	}
	return out, nil
}

func (f *fakeSessionRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.ProgramSession, error) {
	return nil, nil
}

func (f *fakeSessionRepo) UpdateContent(ctx context.Context, id string, upd domain.SessionContentUpdate) (*domain.ProgramSession, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Title != nil {
		s.Title = *upd.Title
	}
	if upd.Description != nil {
		s.Description = *upd.Description
	}
	if upd.SortOrder != nil {
		s.SortOrder = *upd.SortOrder
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSessionRepo) UpdateSchedule(ctx context.Context, id string, venueID *string, start, end domain.NullTimeOfDay, expectedVersion int) (*domain.ProgramSession, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if s.Version != expectedVersion {
		return nil, domain.ErrVersionMismatch
	}
	s.VenueID = venueID
	s.Start = start.Ptr()
	s.End = end.Ptr()
	s.Version++
	cp := *s
	return &cp, nil
}

func (f *fakeSessionRepo) ApplySchedule(ctx context.Context, assignments []domain.ScheduleAssignment) error {
	// All-or-nothing, matching the transactional repo: validate the
	// whole batch before touching any session.
	for _, a := range assignments {
		s, ok := f.sessions[a.SessionID]
		if !ok {
			return domain.ErrNotFound
		}
		if s.Version != a.ExpectedVersion {
			return domain.ErrVersionMismatch
		}
	}
	for _, a := range assignments {
		s := f.sessions[a.SessionID]
		s.VenueID = a.VenueID
		s.Start = a.Start.Ptr()
		s.End = a.End.Ptr()
		s.Version++
	}
	return nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.sessions[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.sessions, id)
	return nil
}

type fakePresentationRepo struct {
	presentations map[string]*domain.Presentation
	nextID        int
}

func newFakePresentationRepo() *fakePresentationRepo {
	return &fakePresentationRepo{presentations: make(map[string]*domain.Presentation), nextID: 1}
}

func (f *fakePresentationRepo) seedPresentation(sessionID, title string, start, end *domain.TimeOfDay) *domain.Presentation {
	p := &domain.Presentation{SessionID: sessionID, Title: title, Start: start, End: end, SortOrder: f.nextID}
	_ = f.Create(context.Background(), p)
	return p
}

func (f *fakePresentationRepo) Create(ctx context.Context, p *domain.Presentation) error {
	p.ID = fmt.Sprintf("pres-%d", f.nextID)
	f.nextID++
	p.Version = 1
	f.presentations[p.ID] = p
	return nil
}

func (f *fakePresentationRepo) GetByID(ctx context.Context, id string) (*domain.Presentation, error) {
	if p, ok := f.presentations[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakePresentationRepo) ListBySessionID(ctx context.Context, sessionID string) ([]*domain.Presentation, error) {
	var out []*domain.Presentation
	for _, p := range f.presentations {
		if p.SessionID == sessionID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakePresentationRepo) UpdateContent(ctx context.Context, id string, title, abstract *string, speakerIDs []string) (*domain.Presentation, error) {
	p, ok := f.presentations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if title != nil {
		p.Title = *title
	}
	if abstract != nil {
		p.Abstract = *abstract
	}
	if speakerIDs != nil {
		p.SpeakerIDs = speakerIDs
	}
	cp := *p
	return &cp, nil
}

func (f *fakePresentationRepo) UpdateSchedule(ctx context.Context, id string, start, end domain.NullTimeOfDay, expectedVersion int) (*domain.Presentation, error) {
	p, ok := f.presentations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.Version != expectedVersion {
		return nil, domain.ErrVersionMismatch
	}
	p.Start = start.Ptr()
	p.End = end.Ptr()
	p.Version++
	cp := *p
	return &cp, nil
}

func (f *fakePresentationRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.presentations[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.presentations, id)
	return nil
}
