package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenResponse is the JSON document returned by the auth service for a
// successful client-credentials grant.
type TokenResponse struct {
	// AccessToken is the opaque bearer credential used to authorize
	// subsequent requests. Its lifetime is one program run; it is never
	// cached or refreshed.
	AccessToken string `json:"access_token"`

	// TokenType is the authorization scheme, normally "Bearer".
	TokenType string `json:"token_type,omitempty"`

	// ExpiresIn is the token lifetime in seconds as reported by the
	// auth service.
	ExpiresIn int64 `json:"expires_in,omitempty"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// ClientID is a cached copy of the "sub" (subject) claim. The stub server
// issues tokens with the API key as subject, so this identifies the client
// the token was granted to.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the compact
	// string form is meaningful outside the issuing process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// ClientID is the client identifier extracted from the "sub" claim.
	ClientID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
