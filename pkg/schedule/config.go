package schedule

const (
	// DefaultSemesterCredits is the target load of a semester term.
	DefaultSemesterCredits = 15.0
	// DefaultQuarterCredits is the target load of a quarter term.
	DefaultQuarterCredits = 15.0

	// SemesterTerms is the length of a four-year semester plan.
	SemesterTerms = 8
	// QuarterTerms is the length of a four-year quarter plan.
	QuarterTerms = 12

	semesterHeadroom = 6.0
	quarterHeadroom  = 4.0
)

// Config controls term sizes and the initial plan length.
type Config struct {
	// TargetCredits is the preferred credit load of a term.
	TargetCredits float64 `json:"target_credits"`

	// MaxCredits is the hard credit limit of a term. Only a single group
	// heavier than this limit may exceed it.
	MaxCredits float64 `json:"max_credits"`

	// Terms is the number of terms the plan starts with.
	Terms int `json:"terms"`

	// Quarter selects quarter labels instead of semester labels.
	Quarter bool `json:"quarter"`
}

// Semester returns the configuration of a semester calendar with the given
// target load. The maximum is six credits above the target.
func Semester(target float64) Config {
	return Config{
		TargetCredits: target,
		MaxCredits:    target + semesterHeadroom,
		Terms:         SemesterTerms,
	}
}

// Quarter returns the configuration of a quarter calendar with the given
// target load. The maximum is four credits above the target.
func Quarter(target float64) Config {
	return Config{
		TargetCredits: target,
		MaxCredits:    target + quarterHeadroom,
		Terms:         QuarterTerms,
		Quarter:       true,
	}
}

// DefaultConfig returns a 15-credit semester configuration.
func DefaultConfig() Config {
	return Semester(DefaultSemesterCredits)
}

// ForSystem returns the Quarter or Semester configuration. A target of zero
// or less selects the calendar's default load.
func ForSystem(quarter bool, target float64) Config {
	if quarter {
		if target <= 0 {
			target = DefaultQuarterCredits
		}
		return Quarter(target)
	}
	if target <= 0 {
		target = DefaultSemesterCredits
	}
	return Semester(target)
}
