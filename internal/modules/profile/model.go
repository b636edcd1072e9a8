package profile

// Profile is the customer's contact record. Only its presence matters for
// navigation: it gates the catalog, it does not authenticate anyone.
type Profile struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	AltPhone string `json:"altPhone"`
}

// GateState is the application-wide navigation state.
type GateState string

const (
	// Ungated: no profile yet, only the profile entry view is reachable.
	Ungated GateState = "UNGATED"
	// Gated: a profile exists and the catalog is reachable. There is no way
	// back to Ungated from normal navigation.
	Gated GateState = "GATED"
)
