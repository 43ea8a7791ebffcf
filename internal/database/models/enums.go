package models

// ScheduleType defines the types of calendar events a team can plan
type ScheduleType string

const (
	ScheduleTypeScrim      ScheduleType = "scrim"
	ScheduleTypePractice   ScheduleType = "practice"
	ScheduleTypeVodReview  ScheduleType = "vod_review"
	ScheduleTypeTournament ScheduleType = "tournament"
	ScheduleTypeMeeting    ScheduleType = "meeting"
)

// ScheduleStatus defines the lifecycle of a calendar event
type ScheduleStatus string

const (
	ScheduleStatusScheduled ScheduleStatus = "scheduled"
	ScheduleStatusCompleted ScheduleStatus = "completed"
	ScheduleStatusCancelled ScheduleStatus = "cancelled"
)

// AttendanceStatus defines a member's RSVP for a calendar event
type AttendanceStatus string

const (
	AttendanceStatusAttending AttendanceStatus = "attending"
	AttendanceStatusAbsent    AttendanceStatus = "absent"
	AttendanceStatusLate      AttendanceStatus = "late"
	AttendanceStatusTentative AttendanceStatus = "tentative"
)

// TimeSector buckets a round kill by how much of the 100s round clock remained.
// Postplant overrides the clock sectors once the spike is down.
type TimeSector string

const (
	TimeSectorFirst     TimeSector = "first"
	TimeSectorPrepare   TimeSector = "prepare"
	TimeSectorSecond    TimeSector = "second"
	TimeSectorLate      TimeSector = "late"
	TimeSectorPostplant TimeSector = "postplant"
)

// IsValid checks if the ScheduleType is valid
func (s ScheduleType) IsValid() bool {
	switch s {
	case ScheduleTypeScrim, ScheduleTypePractice, ScheduleTypeVodReview, ScheduleTypeTournament, ScheduleTypeMeeting:
		return true
	}
	return false
}

// IsValid checks if the ScheduleStatus is valid
func (s ScheduleStatus) IsValid() bool {
	switch s {
	case ScheduleStatusScheduled, ScheduleStatusCompleted, ScheduleStatusCancelled:
		return true
	}
	return false
}

// IsValid checks if the AttendanceStatus is valid
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendanceStatusAttending, AttendanceStatusAbsent, AttendanceStatusLate, AttendanceStatusTentative:
		return true
	}
	return false
}

// IsValid checks if the TimeSector is valid
func (s TimeSector) IsValid() bool {
	switch s {
	case TimeSectorFirst, TimeSectorPrepare, TimeSectorSecond, TimeSectorLate, TimeSectorPostplant:
		return true
	}
	return false
}

// TimeSectors lists every sector in display order.
var TimeSectors = []TimeSector{TimeSectorFirst, TimeSectorPrepare, TimeSectorSecond, TimeSectorLate, TimeSectorPostplant}
