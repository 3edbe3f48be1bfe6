package models

// RegisterRequest is the profile submission payload. Fields the form does not
// collect (year, hobbies, music, artists) are defaulted at the service layer,
// mirroring the original client.
type RegisterRequest struct {
	Name        string   `json:"name"`
	Password    string   `json:"password"`
	Branch      string   `json:"branch"`
	Bio         string   `json:"bio"`
	Interests   []string `json:"interests"`
	MovieGenres []string `json:"movieGenres"`

	Lifestyle Lifestyle `json:"lifestyle"`
}

// LoginRequest carries login credentials. Name matches either the username or
// the display name of a stored profile.
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// OwnerRequest carries the owner credential for gated administrative
// operations (database reset, owner verification).
type OwnerRequest struct {
	Credential string `json:"credential"`
}

// OwnerResponse reports the outcome of a gated administrative operation.
type OwnerResponse struct {
	OK bool `json:"ok"`
}

// VibeRequest names the two profiles the oracle should compare.
type VibeRequest struct {
	ProfileID string `json:"profileId"`
	TargetID  string `json:"targetId"`
}

// BatchVibeRequest names the reference profile for a batch oracle comparison
// against every other listed profile.
type BatchVibeRequest struct {
	ProfileID string `json:"profileId"`
}

// CompareResponse is the local comparison grid: heuristic scores of each
// requested candidate against the reference profile.
type CompareResponse struct {
	ReferenceID string         `json:"referenceId"`
	Entries     []CompareEntry `json:"entries"`
}
