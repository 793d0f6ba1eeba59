package models

// HackathonMode defines how a hackathon is held
type HackathonMode string

const (
	HackathonModeOnline  HackathonMode = "online"
	HackathonModeOffline HackathonMode = "offline"
	HackathonModeHybrid  HackathonMode = "hybrid"
)

// IsValid checks if the HackathonMode is valid
func (m HackathonMode) IsValid() bool {
	switch m {
	case HackathonModeOnline, HackathonModeOffline, HackathonModeHybrid:
		return true
	}
	return false
}

// RegistrationMode selects the individual or pre-formed team registration path
type RegistrationMode string

const (
	RegistrationModeIndividual RegistrationMode = "individual"
	RegistrationModeTeam       RegistrationMode = "team"
)

// IsValid checks if the RegistrationMode is valid
func (m RegistrationMode) IsValid() bool {
	switch m {
	case RegistrationModeIndividual, RegistrationModeTeam:
		return true
	}
	return false
}

// ApplicantStatus is the review status of an individual or team applicant
type ApplicantStatus string

const (
	ApplicantStatusPending  ApplicantStatus = "pending"
	ApplicantStatusApproved ApplicantStatus = "approved"
	ApplicantStatusRejected ApplicantStatus = "rejected"
)

// applicantTransitions lists the allowed next states per state. Approved and rejected are terminal.
var applicantTransitions = map[ApplicantStatus][]ApplicantStatus{
	ApplicantStatusPending:  {ApplicantStatusApproved, ApplicantStatusRejected},
	ApplicantStatusApproved: {},
	ApplicantStatusRejected: {},
}

// IsValid checks if the ApplicantStatus is valid
func (s ApplicantStatus) IsValid() bool {
	_, ok := applicantTransitions[s]
	return ok
}

// IsTerminal reports whether no further transition is possible
func (s ApplicantStatus) IsTerminal() bool {
	return len(applicantTransitions[s]) == 0
}

// CanTransitionTo reports whether moving from s to next is allowed
func (s ApplicantStatus) CanTransitionTo(next ApplicantStatus) bool {
	for _, allowed := range applicantTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// RegistrationSource records how a student reached the registered roster
type RegistrationSource string

const (
	RegistrationSourceIndividual    RegistrationSource = "individual"
	RegistrationSourceTeam          RegistrationSource = "team"
	RegistrationSourceTemporaryTeam RegistrationSource = "temporary_team"
)

// IsValid checks if the RegistrationSource is valid
func (s RegistrationSource) IsValid() bool {
	switch s {
	case RegistrationSourceIndividual, RegistrationSourceTeam, RegistrationSourceTemporaryTeam:
		return true
	}
	return false
}

// Timeframe selects hackathons relative to the current time. A hackathon is upcoming until its end date passes.
type Timeframe string

const (
	TimeframeAll      Timeframe = "all"
	TimeframeUpcoming Timeframe = "upcoming"
	TimeframePast     Timeframe = "past"
)

// IsValid checks if the Timeframe is valid
func (t Timeframe) IsValid() bool {
	switch t {
	case TimeframeAll, TimeframeUpcoming, TimeframePast:
		return true
	}
	return false
}
