package match

import (
	"sort"
	"time"
)

// Status is the closed application-side match status set. Upstream statuses
// are folded into it at the mapping boundary.
type Status string

const (
	StatusUpcoming  Status = "UPCOMING"
	StatusLive      Status = "LIVE"
	StatusHalfTime  Status = "HT"
	StatusExtraTime Status = "ET"
	StatusBreak     Status = "BREAK"
	StatusFullTime  Status = "FT"
	StatusPostponed Status = "POSTPONED"
	StatusSuspended Status = "SUSPENDED"
	StatusCancelled Status = "CANCELLED"
)

// InPlay reports whether the match is in a state that still produces score
// and event updates.
func (s Status) InPlay() bool {
	switch s {
	case StatusLive, StatusHalfTime, StatusExtraTime, StatusBreak:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further transitions are expected. The upstream
// source stays authoritative and may in principle revert, but terminal
// statuses stop all local refresh.
func (s Status) Terminal() bool {
	switch s {
	case StatusFullTime, StatusPostponed, StatusSuspended, StatusCancelled:
		return true
	default:
		return false
	}
}

type EventType string

const (
	EventGoal         EventType = "GOAL"
	EventYellowCard   EventType = "YELLOW_CARD"
	EventRedCard      EventType = "RED_CARD"
	EventSubstitution EventType = "SUBSTITUTION"
)

// Event is one timeline entry. Event lists are regenerated wholesale on each
// detail refetch, never merged incrementally.
type Event struct {
	Minute int       `json:"minute"`
	Type   EventType `json:"type"`
	Player string    `json:"player"`
	TeamID int64     `json:"teamId"`
	Detail string    `json:"detail,omitempty"`
}

type TeamRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type AreaRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Flag string `json:"flag,omitempty"`
}

// Match is the mutable live representation of one fixture. Scores are nil
// exactly while the match is upcoming.
type Match struct {
	ID            int64     `json:"id"`
	HomeTeam      TeamRef   `json:"homeTeam"`
	AwayTeam      TeamRef   `json:"awayTeam"`
	HomeScore     *int      `json:"homeScore"`
	AwayScore     *int      `json:"awayScore"`
	HomePenalties *int      `json:"homePenalties,omitempty"`
	AwayPenalties *int      `json:"awayPenalties,omitempty"`
	Status        Status    `json:"status"`
	Minute        *int      `json:"minute"`
	Date          time.Time `json:"date"`
	League        string    `json:"league"`
	Area          *AreaRef  `json:"area,omitempty"`
	Events        []Event   `json:"events,omitempty"`
}

// SortEvents orders a timeline ascending by minute, keeping the original
// relative order of same-minute events.
func SortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Minute < events[j].Minute
	})
}

const (
	regulationMinuteCap = 90
	extraTimeMinuteCap  = 120
)

// TickMinute advances a known live minute by one between polls so the clock
// does not look frozen. Capped so stale data cannot run away.
func TickMinute(minute int) int {
	if minute >= extraTimeMinuteCap {
		return extraTimeMinuteCap
	}
	return minute + 1
}

// EstimateMinute derives an approximate elapsed minute from wall clock when
// the upstream has not provided one. The result is provisional: an upstream
// minute always replaces it.
func EstimateMinute(kickoff, now time.Time, extraTime bool) int {
	elapsed := int(now.Sub(kickoff).Minutes())
	if elapsed < 1 {
		return 1
	}
	limit := regulationMinuteCap
	if extraTime {
		limit = extraTimeMinuteCap
	}
	if elapsed > limit {
		return limit
	}
	return elapsed
}
