package models

// Credentials is the login form forwarded to the registry backend
type Credentials struct {
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Role     UserRole `json:"role,omitempty"`
}

// AuthData is the payload returned by the backend on a successful login
type AuthData struct {
	AccessToken            string   `json:"accessToken"`
	AccessTokenExpiration  string   `json:"accessTokenExpiration"`
	RefreshToken           string   `json:"refreshToken"`
	RefreshTokenExpiration string   `json:"refreshTokenExpiration"`
	Email                  string   `json:"email"`
	NomComplet             string   `json:"nomComplet"` // may be empty
	Roles                  []string `json:"roles"`
}

// SessionInfo describes the authenticated session exposed to views
type SessionInfo struct {
	Authenticated bool     `json:"authenticated"`
	Role          UserRole `json:"role,omitempty"`
	FullName      string   `json:"fullName,omitempty"`
}
