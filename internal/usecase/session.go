package usecase

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/scorehub/scorehub/internal/domain/area"
	"github.com/scorehub/scorehub/internal/domain/competition"
	"github.com/scorehub/scorehub/internal/domain/match"
	"github.com/scorehub/scorehub/internal/domain/standing"
	"github.com/scorehub/scorehub/internal/domain/team"
	"github.com/scorehub/scorehub/internal/platform/cache"
	"github.com/scorehub/scorehub/internal/platform/logging"
)

// DataSource is the upstream football data surface the session consumes.
// Implemented by external/footballdata.
type DataSource interface {
	Areas(ctx context.Context) ([]area.Area, error)
	Area(ctx context.Context, id int64) (area.Area, error)
	AllCompetitions(ctx context.Context) ([]competition.Competition, error)
	Competitions(ctx context.Context, areaID int64) ([]competition.Competition, error)
	CompetitionMatches(ctx context.Context, competitionID int64) ([]match.Match, error)
	MatchesByDate(ctx context.Context, date string) ([]match.Match, error)
	Match(ctx context.Context, id int64) (match.Match, bool, error)
	Head2Head(ctx context.Context, matchID int64) (team.Head2Head, error)
	Standings(ctx context.Context, competitionID int64) ([]standing.Standing, error)
	CompetitionTeams(ctx context.Context, competitionID int64) ([]team.CompetitionTeam, error)
	Scorers(ctx context.Context, competitionID int64) ([]standing.Scorer, error)
	Team(ctx context.Context, id int64) (team.Detail, error)
	TeamMatches(ctx context.Context, id int64) ([]match.Match, error)
	Person(ctx context.Context, id int64) (team.Person, error)
}

// SummaryProvider generates best-effort narrative summaries. Implemented by
// external/summarizer; it never fails, only degrades.
type SummaryProvider interface {
	Summarize(ctx context.Context, m match.Match) string
}

// CompetitionTab names the active panel inside the competition detail view.
type CompetitionTab string

const (
	TabMatches   CompetitionTab = "matches"
	TabStandings CompetitionTab = "standings"
	TabTeams     CompetitionTab = "teams"
	TabScorers   CompetitionTab = "scorers"
)

// Polling keys. Minute timers are scoped separately for the match detail and
// the day view so tearing one view down never silences the other.
const (
	pollCompetitionMatches = "competition-matches"
	pollMatchDetail        = "match-detail"
	pollDayMatches         = "day-matches"
	pollDetailMinuteTick   = "minute-tick:detail"
	pollDetailMinuteEst    = "minute-estimate:detail"
	pollDayMinuteTick      = "minute-tick:day"
	pollDayMinuteEst       = "minute-estimate:day"
)

// PollIntervals carries every refresh cadence. Zero values fall back to the
// defaults below.
type PollIntervals struct {
	CompetitionMatches time.Duration
	MatchDetail        time.Duration
	DayMatches         time.Duration
	MinuteTick         time.Duration
	MinuteEstimate     time.Duration
}

func (p PollIntervals) withDefaults() PollIntervals {
	if p.CompetitionMatches <= 0 {
		p.CompetitionMatches = time.Minute
	}
	if p.MatchDetail <= 0 {
		p.MatchDetail = 15 * time.Second
	}
	if p.DayMatches <= 0 {
		p.DayMatches = time.Minute
	}
	if p.MinuteTick <= 0 {
		p.MinuteTick = time.Minute
	}
	if p.MinuteEstimate <= 0 {
		p.MinuteEstimate = 30 * time.Second
	}
	return p
}

type SessionConfig struct {
	Source    DataSource
	Summaries SummaryProvider
	Scheduler *Scheduler
	Logger    *logging.Logger
	Store     *cache.Store
	Intervals PollIntervals
	// Now is the clock; tests inject a fixed one.
	Now func() time.Time
}

// Session owns the navigation state, the in-memory caches, the loading and
// error slots, and the polling lifecycles. The view layer only reads
// snapshots and dispatches intents; it never mutates session state directly.
//
// Every fetch commits its result only if the parameters that issued it still
// match the current navigation state, so a slow response landing after the
// user navigated away is discarded instead of clobbering an unrelated view.
type Session struct {
	source    DataSource
	summaries SummaryProvider
	scheduler *Scheduler
	logger    *logging.Logger
	store     *cache.Store
	intervals PollIntervals
	now       func() time.Time

	mu         sync.Mutex
	nav        NavigationState
	ready      bool
	startupErr string
	viewErr    string
	h2hErr     string
	loading    map[string]bool

	areas        []area.Area
	continents   []area.Area
	topCountries []area.Area
	compAreaIDs  map[int64]struct{}
	featured     []competition.Competition
	index        SearchIndex

	compTab CompetitionTab
	// current enriched match detail plus whether it runs into extra time,
	// which raises the estimated-minute cap.
	currentMatch   *match.Match
	matchExtraTime bool
}

func NewSession(cfg SessionConfig) (*Session, error) {
	if cfg.Source == nil {
		return nil, fmt.Errorf("%w: data source is required", ErrInvalidInput)
	}
	if cfg.Scheduler == nil {
		return nil, fmt.Errorf("%w: scheduler is required", ErrInvalidInput)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	store := cfg.Store
	if store == nil {
		store = cache.NewStore(0)
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Session{
		source:    cfg.Source,
		summaries: cfg.Summaries,
		scheduler: cfg.Scheduler,
		logger:    logger,
		store:     store,
		intervals: cfg.Intervals.withDefaults(),
		now:       now,
		// The session opens on today's day view, not on Home.
		nav:     NavigationState{MatchesView: true},
		loading: map[string]bool{},
	}, nil
}

// Start performs the startup load: the area taxonomy and the full
// competition index, fetched in parallel, then today's match list for the
// opening day view. Taxonomy or index failure leaves the session in a
// blocking error state where nothing else renders; a day-list failure is
// scoped to the day view like any later one.
func (s *Session) Start(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "Session.Start")
	defer span.End()

	var (
		areas []area.Area
		comps []competition.Competition
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		fetched, err := s.source.Areas(ctx)
		if err != nil {
			return fmt.Errorf("load areas: %w", err)
		}
		areas = fetched
		return nil
	})
	p.Go(func(ctx context.Context) error {
		fetched, err := s.source.AllCompetitions(ctx)
		if err != nil {
			return fmt.Errorf("load competition index: %w", err)
		}
		comps = fetched
		return nil
	})

	if err := p.Wait(); err != nil {
		s.mu.Lock()
		s.startupErr = "Could not load initial data. Please try again later."
		s.mu.Unlock()
		s.logger.ErrorContext(ctx, "startup load failed", "error", err)
		return fmt.Errorf("%w: %v", ErrDependencyUnavailable, err)
	}

	s.mu.Lock()
	s.areas = areas
	s.continents = area.Continents(areas)
	s.topCountries = area.TopCountries(areas)
	s.compAreaIDs = competition.AreaIDs(comps)
	s.featured = competition.Featured(comps)
	s.index.Build(comps)
	s.ready = true
	s.startupErr = ""
	s.nav = s.nav.SelectMatches(s.now())
	date := s.nav.Date
	s.mu.Unlock()

	s.startDayPolling()
	if err := s.loadDay(ctx, date); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "session started",
		"areas", len(areas),
		"competitions", len(comps),
	)
	return nil
}

// Close tears down every polling loop.
func (s *Session) Close() {
	s.scheduler.StopAll()
}

func (s *Session) requireReady() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return fmt.Errorf("%w: session has not completed startup", ErrDependencyUnavailable)
	}
	return nil
}

func (s *Session) setLoading(key string, on bool) {
	s.mu.Lock()
	if on {
		s.loading[key] = true
	} else {
		delete(s.loading, key)
	}
	s.mu.Unlock()
}

// activeLeafLocked resolves the currently rendered view for poll guards.
// Caller holds s.mu.
func (s *Session) activeLeafLocked() View {
	return s.nav.ActiveView(s.startupErr != "" || s.viewErr != "")
}

// stopListPolling pauses the list-view loops while a detail view covers
// them. GoBack rewires whatever the user returns to.
func (s *Session) stopListPolling() {
	for _, key := range []string{
		pollCompetitionMatches,
		pollDayMatches,
		pollDayMinuteTick,
		pollDayMinuteEst,
	} {
		s.scheduler.StopPolling(key)
	}
}

// stopViewPolling tears down every view-scoped loop. Called on transitions
// that leave the current leaf; timers must never outlive their view.
func (s *Session) stopViewPolling() {
	for _, key := range []string{
		pollCompetitionMatches,
		pollMatchDetail,
		pollDayMatches,
		pollDetailMinuteTick,
		pollDetailMinuteEst,
		pollDayMinuteTick,
		pollDayMinuteEst,
	} {
		s.scheduler.StopPolling(key)
	}
}

// SelectContinent enters the region drill-down and loads its country list.
func (s *Session) SelectContinent(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "Session.SelectContinent")
	defer span.End()

	if id <= 0 {
		return fmt.Errorf("%w: continent id must be positive", ErrInvalidInput)
	}
	if err := s.requireReady(); err != nil {
		return err
	}

	s.mu.Lock()
	s.nav = s.nav.SelectContinent(id)
	s.viewErr = ""
	s.currentMatch = nil
	s.mu.Unlock()
	s.stopViewPolling()

	return s.loadCountries(ctx, id)
}

func (s *Session) loadCountries(ctx context.Context, continentID int64) error {
	key := "countries:" + formatID(continentID)
	s.setLoading("countries", true)
	defer s.setLoading("countries", false)

	_, err := s.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		detail, err := s.source.Area(ctx, continentID)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		ids := s.compAreaIDs
		s.mu.Unlock()
		return area.CountriesWithCompetitions(detail.ChildAreas, ids), nil
	})
	if err != nil {
		s.commitViewError(func(n NavigationState) bool { return n.ContinentID == continentID },
			"Could not load countries for this region.")
		s.logger.WarnContext(ctx, "country list load failed", "continent_id", continentID, "error", err)
	}
	return nil
}

// SelectTopCountry jumps to a country from the home shortcuts.
func (s *Session) SelectTopCountry(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "Session.SelectTopCountry")
	defer span.End()

	if id <= 0 {
		return fmt.Errorf("%w: country id must be positive", ErrInvalidInput)
	}
	if err := s.requireReady(); err != nil {
		return err
	}

	s.mu.Lock()
	s.nav = s.nav.SelectTopCountry(id)
	s.viewErr = ""
	s.currentMatch = nil
	s.mu.Unlock()
	s.stopViewPolling()

	return s.loadCompetitions(ctx, id)
}

// SelectCountry drills into a country inside the current continent.
func (s *Session) SelectCountry(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "Session.SelectCountry")
	defer span.End()

	if id <= 0 {
		return fmt.Errorf("%w: country id must be positive", ErrInvalidInput)
	}
	if err := s.requireReady(); err != nil {
		return err
	}

	s.mu.Lock()
	s.nav = s.nav.SelectCountry(id)
	s.viewErr = ""
	s.mu.Unlock()

	return s.loadCompetitions(ctx, id)
}

func (s *Session) loadCompetitions(ctx context.Context, countryID int64) error {
	key := "competitions:" + formatID(countryID)
	s.setLoading("competitions", true)
	defer s.setLoading("competitions", false)

	_, err := s.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.source.Competitions(ctx, countryID)
	})
	if err != nil {
		s.commitViewError(func(n NavigationState) bool { return n.CountryID == countryID },
			"Could not load competitions for this country.")
		s.logger.WarnContext(ctx, "competition list load failed", "country_id", countryID, "error", err)
	}
	return nil
}

// SelectCompetition opens a competition from a country list or from search
// results, back-filling the continent so Back lands on the right region.
func (s *Session) SelectCompetition(ctx context.Context, id int64) error {
	return s.selectCompetition(ctx, id, false)
}

// SelectFeaturedCompetition opens a competition from the home shortlist;
// Back returns to Home.
func (s *Session) SelectFeaturedCompetition(ctx context.Context, id int64) error {
	return s.selectCompetition(ctx, id, true)
}

func (s *Session) selectCompetition(ctx context.Context, id int64, featured bool) error {
	ctx, span := startUsecaseSpan(ctx, "Session.SelectCompetition")
	defer span.End()

	if id <= 0 {
		return fmt.Errorf("%w: competition id must be positive", ErrInvalidInput)
	}
	if err := s.requireReady(); err != nil {
		return err
	}

	s.mu.Lock()
	comp, ok := s.index.Find(id)
	if !ok {
		// The startup index and the lazily-fetched country lists can drift;
		// the list the user clicked in is still authoritative for it.
		comp, ok = s.findKnownCompetition(ctx, id)
	}
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: competition %d is unknown", ErrNotFound, id)
	}

	if featured {
		s.nav = s.nav.SelectFeaturedCompetition(comp)
	} else {
		continentID := int64(0)
		if country, found := area.FindByID(s.areas, comp.Area.ID); found {
			continentID = country.ParentAreaID
		}
		s.nav = s.nav.SelectCompetition(comp, continentID)
	}

	tab := TabMatches
	if competition.IsTournament(comp.Name) {
		tab = TabStandings
	}
	s.compTab = tab
	s.viewErr = ""
	s.mu.Unlock()
	s.stopViewPolling()

	return s.loadCompetitionTab(ctx, comp.ID, tab)
}

// SelectCompetitionTab switches the detail panel and (re)wires the matches
// poll, which only runs while the matches tab is showing.
func (s *Session) SelectCompetitionTab(ctx context.Context, tab CompetitionTab) error {
	ctx, span := startUsecaseSpan(ctx, "Session.SelectCompetitionTab")
	defer span.End()

	switch tab {
	case TabMatches, TabStandings, TabTeams, TabScorers:
	default:
		return fmt.Errorf("%w: unknown competition tab %q", ErrInvalidInput, tab)
	}

	s.mu.Lock()
	if s.nav.Competition == nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: no competition selected", ErrInvalidInput)
	}
	compID := s.nav.Competition.ID
	s.compTab = tab
	s.h2hErr = ""
	s.mu.Unlock()

	return s.loadCompetitionTab(ctx, compID, tab)
}

func (s *Session) loadCompetitionTab(ctx context.Context, compID int64, tab CompetitionTab) error {
	if tab == TabMatches {
		s.scheduler.StartPolling(pollCompetitionMatches, s.intervals.CompetitionMatches, s.refreshCompetitionMatches)
	} else {
		s.scheduler.StopPolling(pollCompetitionMatches)
	}

	s.setLoading("competition:"+string(tab), true)
	defer s.setLoading("competition:"+string(tab), false)

	var err error
	switch tab {
	case TabMatches:
		_, err = s.store.GetOrLoad(ctx, "competition-matches:"+formatID(compID), func(ctx context.Context) (any, error) {
			return s.source.CompetitionMatches(ctx, compID)
		})
	case TabStandings:
		_, err = s.store.GetOrLoad(ctx, "standings:"+formatID(compID), func(ctx context.Context) (any, error) {
			return s.source.Standings(ctx, compID)
		})
	case TabTeams:
		_, err = s.store.GetOrLoad(ctx, "competition-teams:"+formatID(compID), func(ctx context.Context) (any, error) {
			return s.source.CompetitionTeams(ctx, compID)
		})
	case TabScorers:
		_, err = s.store.GetOrLoad(ctx, "scorers:"+formatID(compID), func(ctx context.Context) (any, error) {
			return s.source.Scorers(ctx, compID)
		})
	}
	if err != nil {
		s.commitViewError(func(n NavigationState) bool {
			return n.Competition != nil && n.Competition.ID == compID
		}, "Could not load "+string(tab)+" for this competition.")
		s.logger.WarnContext(ctx, "competition tab load failed",
			"competition_id", compID,
			"tab", string(tab),
			"error", err,
		)
	}
	return nil
}

// refreshCompetitionMatches is the 60s matches-tab poll. Failures leave the
// last-good list in place.
func (s *Session) refreshCompetitionMatches(ctx context.Context) error {
	s.mu.Lock()
	if s.activeLeafLocked() != ViewCompetition || s.compTab != TabMatches {
		s.mu.Unlock()
		return nil
	}
	compID := s.nav.Competition.ID
	s.mu.Unlock()

	matches, err := s.source.CompetitionMatches(ctx, compID)
	if err != nil {
		return fmt.Errorf("refresh competition matches id=%d: %w", compID, err)
	}

	s.mu.Lock()
	stillCurrent := s.activeLeafLocked() == ViewCompetition &&
		s.nav.Competition.ID == compID && s.compTab == TabMatches
	s.mu.Unlock()
	if stillCurrent {
		s.store.Set(ctx, "competition-matches:"+formatID(compID), matches)
	}
	return nil
}

// SelectMatch opens a match detail and enriches it with the event timeline.
// If the enrich fetch fails, the previously-known match from the surrounding
// list is shown unchanged.
func (s *Session) SelectMatch(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "Session.SelectMatch")
	defer span.End()

	if id <= 0 {
		return fmt.Errorf("%w: match id must be positive", ErrInvalidInput)
	}
	if err := s.requireReady(); err != nil {
		return err
	}

	s.mu.Lock()
	prior := s.findKnownMatch(ctx, id)
	s.nav = s.nav.SelectMatch(id)
	s.h2hErr = ""
	s.currentMatch = prior
	s.matchExtraTime = false
	s.mu.Unlock()

	// The surrounding list is no longer showing; its loops pause until Back.
	s.stopListPolling()

	s.setLoading("match", true)
	enriched, extraTime, err := s.source.Match(ctx, id)
	s.setLoading("match", false)

	s.mu.Lock()
	if s.nav.MatchID != id {
		// User already moved on; discard.
		s.mu.Unlock()
		return nil
	}
	if err != nil {
		s.logger.WarnContext(ctx, "match detail enrich failed", "match_id", id, "error", err)
		if prior == nil {
			s.viewErr = "Could not load this match."
		}
	} else {
		s.currentMatch = &enriched
		s.matchExtraTime = extraTime
	}
	inPlay := s.currentMatch != nil && s.currentMatch.Status.InPlay()
	s.mu.Unlock()

	if inPlay {
		s.startMatchPolling(id)
	}
	return nil
}

// startMatchPolling wires the detail poll and the local minute timers for an
// open live match.
func (s *Session) startMatchPolling(id int64) {
	s.scheduler.StartPolling(pollMatchDetail, s.intervals.MatchDetail, func(ctx context.Context) error {
		return s.refreshMatchDetail(ctx, id)
	})
	s.scheduler.StartPolling(pollDetailMinuteTick, s.intervals.MinuteTick, func(context.Context) error {
		s.tickDetailMinute()
		return nil
	})
	s.scheduler.StartPolling(pollDetailMinuteEst, s.intervals.MinuteEstimate, func(context.Context) error {
		s.estimateDetailMinute()
		return nil
	})
}

// refreshMatchDetail is the 15s live poll. Once the match goes terminal the
// poll and the minute timers tear themselves down.
func (s *Session) refreshMatchDetail(ctx context.Context, id int64) error {
	s.mu.Lock()
	if s.activeLeafLocked() != ViewMatch || s.nav.MatchID != id {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	enriched, extraTime, err := s.source.Match(ctx, id)
	if err != nil {
		return fmt.Errorf("refresh match id=%d: %w", id, err)
	}

	s.mu.Lock()
	if s.nav.MatchID != id {
		s.mu.Unlock()
		return nil
	}
	s.currentMatch = &enriched
	s.matchExtraTime = extraTime
	terminal := enriched.Status.Terminal()
	s.mu.Unlock()

	if terminal {
		s.scheduler.StopPolling(pollMatchDetail)
		s.scheduler.StopPolling(pollDetailMinuteTick)
		s.scheduler.StopPolling(pollDetailMinuteEst)
	}
	return nil
}

func (s *Session) tickDetailMinute() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeLeafLocked() != ViewMatch {
		return
	}
	m := s.currentMatch
	if m == nil || !m.Status.InPlay() || m.Minute == nil {
		return
	}
	next := match.TickMinute(*m.Minute)
	m.Minute = &next
}

func (s *Session) estimateDetailMinute() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeLeafLocked() != ViewMatch {
		return
	}
	m := s.currentMatch
	if m == nil || m.Status != match.StatusLive || m.Minute != nil {
		return
	}
	est := match.EstimateMinute(m.Date, s.now(), s.matchExtraTime)
	m.Minute = &est
}

// findKnownCompetition looks a competition up in the country list currently
// showing. Caller holds s.mu.
func (s *Session) findKnownCompetition(ctx context.Context, id int64) (competition.Competition, bool) {
	if s.nav.CountryID == 0 {
		return competition.Competition{}, false
	}
	comps, ok := cache.Lookup[[]competition.Competition](ctx, s.store, "competitions:"+formatID(s.nav.CountryID))
	if !ok {
		return competition.Competition{}, false
	}
	for _, comp := range comps {
		if comp.ID == id {
			return comp, true
		}
	}
	return competition.Competition{}, false
}

// findKnownMatch looks the match up in the lists the user could have clicked
// it in. Caller holds s.mu.
func (s *Session) findKnownMatch(ctx context.Context, id int64) *match.Match {
	var lists [][]match.Match
	if s.nav.MatchesView && s.nav.Date != "" {
		if day, ok := cache.Lookup[[]match.Match](ctx, s.store, "day-matches:"+s.nav.Date); ok {
			lists = append(lists, day)
		}
	}
	if s.nav.Competition != nil {
		if comp, ok := cache.Lookup[[]match.Match](ctx, s.store, "competition-matches:"+formatID(s.nav.Competition.ID)); ok {
			lists = append(lists, comp)
		}
	}
	for _, list := range lists {
		for i := range list {
			if list[i].ID == id {
				found := list[i]
				return &found
			}
		}
	}
	return nil
}

// LoadHead2Head fetches the historical record for the open match. A failure
// is scoped to the head-to-head tab, never the whole view.
func (s *Session) LoadHead2Head(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "Session.LoadHead2Head")
	defer span.End()

	s.mu.Lock()
	id := s.nav.MatchID
	s.mu.Unlock()
	if id == 0 {
		return fmt.Errorf("%w: no match selected", ErrInvalidInput)
	}

	_, err := s.store.GetOrLoad(ctx, "h2h:"+formatID(id), func(ctx context.Context) (any, error) {
		return s.source.Head2Head(ctx, id)
	})
	if err != nil {
		s.mu.Lock()
		if s.nav.MatchID == id {
			s.h2hErr = "Could not load head-to-head data."
		}
		s.mu.Unlock()
		s.logger.WarnContext(ctx, "head2head load failed", "match_id", id, "error", err)
	}
	return nil
}

// SelectTeam opens a team detail view.
func (s *Session) SelectTeam(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "Session.SelectTeam")
	defer span.End()

	if id <= 0 {
		return fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}
	if err := s.requireReady(); err != nil {
		return err
	}

	s.mu.Lock()
	s.nav = s.nav.SelectTeam(id)
	s.mu.Unlock()
	// Covers the match detail as well as any list view underneath.
	s.stopViewPolling()

	s.setLoading("team", true)
	defer s.setLoading("team", false)

	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		_, err := s.store.GetOrLoad(ctx, "team:"+formatID(id), func(ctx context.Context) (any, error) {
			return s.source.Team(ctx, id)
		})
		return err
	})
	p.Go(func(ctx context.Context) error {
		_, err := s.store.GetOrLoad(ctx, "team-matches:"+formatID(id), func(ctx context.Context) (any, error) {
			return s.source.TeamMatches(ctx, id)
		})
		return err
	})
	if err := p.Wait(); err != nil {
		s.commitViewError(func(n NavigationState) bool { return n.TeamID == id },
			"Could not load this team.")
		s.logger.WarnContext(ctx, "team detail load failed", "team_id", id, "error", err)
	}
	return nil
}

// SelectPlayer opens a player detail view.
func (s *Session) SelectPlayer(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "Session.SelectPlayer")
	defer span.End()

	if id <= 0 {
		return fmt.Errorf("%w: player id must be positive", ErrInvalidInput)
	}
	if err := s.requireReady(); err != nil {
		return err
	}

	s.mu.Lock()
	s.nav = s.nav.SelectPlayer(id)
	s.mu.Unlock()
	s.stopViewPolling()

	s.setLoading("player", true)
	defer s.setLoading("player", false)

	_, err := s.store.GetOrLoad(ctx, "person:"+formatID(id), func(ctx context.Context) (any, error) {
		return s.source.Person(ctx, id)
	})
	if err != nil {
		s.commitViewError(func(n NavigationState) bool { return n.PlayerID == id },
			"Could not load this player.")
		s.logger.WarnContext(ctx, "player detail load failed", "player_id", id, "error", err)
	}
	return nil
}

// SetSearchQuery filters the competition index. Search is unavailable until
// the startup index is built.
func (s *Session) SetSearchQuery(query string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if query != "" && !s.index.Ready() {
		return fmt.Errorf("%w: search index is still loading", ErrDependencyUnavailable)
	}
	s.nav = s.nav.SetQuery(query)
	return nil
}

// SelectMatches switches to the by-date view (defaulting to today) and
// starts the day poll plus the local minute timers.
func (s *Session) SelectMatches(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "Session.SelectMatches")
	defer span.End()

	if err := s.requireReady(); err != nil {
		return err
	}

	s.mu.Lock()
	s.nav = s.nav.SelectMatches(s.now())
	s.viewErr = ""
	s.currentMatch = nil
	date := s.nav.Date
	s.mu.Unlock()
	s.stopViewPolling()

	s.startDayPolling()
	return s.loadDay(ctx, date)
}

// SelectDate changes the day-view date.
func (s *Session) SelectDate(ctx context.Context, date string) error {
	ctx, span := startUsecaseSpan(ctx, "Session.SelectDate")
	defer span.End()

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if err := s.requireReady(); err != nil {
		return err
	}

	s.mu.Lock()
	s.nav = s.nav.SelectDate(date)
	s.viewErr = ""
	s.mu.Unlock()

	return s.loadDay(ctx, date)
}

func (s *Session) startDayPolling() {
	s.scheduler.StartPolling(pollDayMatches, s.intervals.DayMatches, s.refreshDay)
	s.scheduler.StartPolling(pollDayMinuteTick, s.intervals.MinuteTick, func(ctx context.Context) error {
		s.tickDayMinutes(ctx)
		return nil
	})
	s.scheduler.StartPolling(pollDayMinuteEst, s.intervals.MinuteEstimate, func(ctx context.Context) error {
		s.estimateDayMinutes(ctx)
		return nil
	})
}

func (s *Session) loadDay(ctx context.Context, date string) error {
	s.setLoading("day", true)
	defer s.setLoading("day", false)

	_, err := s.store.GetOrLoad(ctx, "day-matches:"+date, func(ctx context.Context) (any, error) {
		return s.source.MatchesByDate(ctx, date)
	})
	if err != nil {
		s.mu.Lock()
		if s.nav.MatchesView && s.nav.Date == date {
			s.viewErr = "Could not load matches for this day."
		}
		s.mu.Unlock()
		s.logger.WarnContext(ctx, "day matches load failed", "date", date, "error", err)
	}
	return nil
}

// refreshDay is the 60s day-view poll; it refreshes whatever date is
// currently showing.
func (s *Session) refreshDay(ctx context.Context) error {
	s.mu.Lock()
	if s.activeLeafLocked() != ViewMatchesByDate || s.nav.Date == "" {
		s.mu.Unlock()
		return nil
	}
	date := s.nav.Date
	s.mu.Unlock()

	matches, err := s.source.MatchesByDate(ctx, date)
	if err != nil {
		return fmt.Errorf("refresh day matches date=%s: %w", date, err)
	}

	s.mu.Lock()
	stillCurrent := s.activeLeafLocked() == ViewMatchesByDate && s.nav.Date == date
	s.mu.Unlock()
	if stillCurrent {
		s.store.Set(ctx, "day-matches:"+date, matches)
	}
	return nil
}

func (s *Session) tickDayMinutes(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeLeafLocked() != ViewMatchesByDate || s.nav.Date == "" {
		return
	}
	key := "day-matches:" + s.nav.Date
	matches, ok := cache.Lookup[[]match.Match](ctx, s.store, key)
	if !ok {
		return
	}
	for i := range matches {
		if matches[i].Status.InPlay() && matches[i].Minute != nil {
			next := match.TickMinute(*matches[i].Minute)
			matches[i].Minute = &next
		}
	}
	s.store.Set(ctx, key, matches)
}

func (s *Session) estimateDayMinutes(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeLeafLocked() != ViewMatchesByDate || s.nav.Date == "" {
		return
	}
	key := "day-matches:" + s.nav.Date
	matches, ok := cache.Lookup[[]match.Match](ctx, s.store, key)
	if !ok {
		return
	}
	now := s.now()
	for i := range matches {
		if matches[i].Status != match.StatusLive || matches[i].Minute != nil {
			continue
		}
		est := match.EstimateMinute(matches[i].Date, now, false)
		matches[i].Minute = &est
	}
	s.store.Set(ctx, key, matches)
}

// GoBack pops one navigation level and tears down polling owned by the view
// being left.
func (s *Session) GoBack(ctx context.Context) error {
	_, span := startUsecaseSpan(ctx, "Session.GoBack")
	defer span.End()

	s.mu.Lock()
	old := s.nav
	s.nav = s.nav.Back()
	s.viewErr = ""
	leftMatch := old.MatchID != 0 && s.nav.MatchID == 0
	leftCompetition := old.Competition != nil && s.nav.Competition == nil
	leftDay := old.MatchesView && !s.nav.MatchesView
	if leftMatch {
		s.currentMatch = nil
		s.matchExtraTime = false
		s.h2hErr = ""
	}
	s.mu.Unlock()

	if leftMatch {
		s.scheduler.StopPolling(pollMatchDetail)
		s.scheduler.StopPolling(pollDetailMinuteTick)
		s.scheduler.StopPolling(pollDetailMinuteEst)
	}
	if leftCompetition {
		s.scheduler.StopPolling(pollCompetitionMatches)
	}
	if leftDay {
		s.scheduler.StopPolling(pollDayMatches)
		s.scheduler.StopPolling(pollDayMinuteTick)
		s.scheduler.StopPolling(pollDayMinuteEst)
	}

	// Rewire whatever view the pop uncovered; its loops were paused while a
	// detail covered it. StartPolling can wait on a loop teardown, so it
	// runs outside the session lock.
	s.mu.Lock()
	view := s.activeLeafLocked()
	resumeMatchID := int64(0)
	if view == ViewMatch && s.currentMatch != nil && s.currentMatch.Status.InPlay() {
		resumeMatchID = s.nav.MatchID
	}
	resumeMatchesTab := view == ViewCompetition && s.compTab == TabMatches
	s.mu.Unlock()

	switch {
	case resumeMatchID != 0:
		s.startMatchPolling(resumeMatchID)
	case resumeMatchesTab:
		s.scheduler.StartPolling(pollCompetitionMatches, s.intervals.CompetitionMatches, s.refreshCompetitionMatches)
	case view == ViewMatchesByDate:
		s.startDayPolling()
	}
	return nil
}

// GoHome returns to the top-competitions view and stops every view poll.
func (s *Session) GoHome(ctx context.Context) error {
	_, span := startUsecaseSpan(ctx, "Session.GoHome")
	defer span.End()

	s.mu.Lock()
	s.nav = s.nav.GoHome()
	s.viewErr = ""
	s.h2hErr = ""
	s.currentMatch = nil
	s.matchExtraTime = false
	s.mu.Unlock()
	s.stopViewPolling()
	return nil
}

// MatchSummary produces the narrative summary for the given match. The
// provider is best-effort; this only fails when the match is unknown.
func (s *Session) MatchSummary(ctx context.Context, id int64) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "Session.MatchSummary")
	defer span.End()

	if id <= 0 {
		return "", fmt.Errorf("%w: match id must be positive", ErrInvalidInput)
	}
	if s.summaries == nil {
		return "", fmt.Errorf("%w: no summary provider configured", ErrDependencyUnavailable)
	}

	s.mu.Lock()
	var subject *match.Match
	if s.currentMatch != nil && s.currentMatch.ID == id {
		copied := *s.currentMatch
		subject = &copied
	} else {
		subject = s.findKnownMatch(ctx, id)
	}
	s.mu.Unlock()

	if subject == nil {
		enriched, _, err := s.source.Match(ctx, id)
		if err != nil {
			return "", fmt.Errorf("%w: match %d", ErrNotFound, id)
		}
		subject = &enriched
	}

	return s.summaries.Summarize(ctx, *subject), nil
}

// commitViewError records a scoped error only if the issuing parameters
// still match the current navigation state.
func (s *Session) commitViewError(stillCurrent func(NavigationState) bool, message string) {
	s.mu.Lock()
	if stillCurrent(s.nav) {
		s.viewErr = message
	}
	s.mu.Unlock()
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
