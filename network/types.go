package network

// Professional represents one person in a connection network.
//
// Identity is the *Professional pointer: two people with the same name
// and company are still distinct nodes. Connections are directed
// references; mutual connection means each holds the other.
type Professional struct {
	// Name identifies the person (informational only; no algorithm
	// keys on it).
	Name string

	// Company is the name of the person's employer.
	Company string

	// Connections lists the people this person links to directly.
	Connections []*Professional
}

// NewProfessional constructs a Professional with the given direct
// connections. Mutual or cyclic links are built by appending to
// Connections after construction.
func NewProfessional(name, company string, connections ...*Professional) *Professional {
	return &Professional{Name: name, Company: company, Connections: connections}
}
