package devtool

import "strconv"

// Status is the Developer Tool authorization status of the current process.
// Values outside the named range are kept as-is and report Known() == false.
type Status int

const (
	// NotDetermined means the user has not made a choice for this process.
	NotDetermined Status = 0
	// Restricted means the process may not be granted access.
	Restricted Status = 1
	// Denied means the user declined access.
	Denied Status = 2
	// Authorized means the process runs with Developer Tool privileges.
	Authorized Status = 3
)

// Known reports whether s is one of the named statuses.
func (s Status) Known() bool {
	return s >= NotDetermined && s <= Authorized
}

func (s Status) String() string {
	switch s {
	case NotDetermined:
		return "not determined"
	case Restricted:
		return "restricted"
	case Denied:
		return "denied"
	case Authorized:
		return "authorized"
	default:
		return "unknown (" + strconv.Itoa(int(s)) + ")"
	}
}
