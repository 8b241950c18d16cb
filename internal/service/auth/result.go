package auth

import "github.com/whiskerlog/catcare-backend/internal/domain"

// AuthResult is the token pair plus user handed back by Register,
// LoginWithPassword and Refresh. RefreshToken is the raw secret; only
// its hash ever reaches storage.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         *domain.User
}
