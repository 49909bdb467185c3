package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"codecamp/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// jwtClaims is the caller identity the host puts in a bearer token.
// Perms maps a module id to the actions granted on it.
type jwtClaims struct {
	jwt.RegisteredClaims
	Superuser bool                `json:"superuser,omitempty"`
	Roles     []string            `json:"roles,omitempty"`
	Perms     map[string][]string `json:"perms,omitempty"`
	TimeZone  string              `json:"tz,omitempty"`
}

var errInvalidSubject = errors.New("token subject is not a user id")

type jwtIssuer struct {
	secret    []byte
	adminRole string
}

// NewJWTIssuer returns a TokenIssuer that signs caller tokens with HS256.
// An AdminRole capability is written as adminRole in the roles claim.
func NewJWTIssuer(secret, adminRole string) domain.TokenIssuer {
	return &jwtIssuer{secret: []byte(secret), adminRole: adminRole}
}

func (i *jwtIssuer) Issue(caller domain.Caller, tz string, expiry time.Duration) (string, error) {
	if !caller.IsAuthenticated() {
		return "", errInvalidSubject
	}
	now := time.Now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(caller.UserID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		TimeZone: tz,
	}
	for _, c := range caller.Capabilities {
		switch c := c.(type) {
		case domain.Superuser:
			claims.Superuser = true
		case domain.AdminRole:
			claims.Roles = append(claims.Roles, i.adminRole)
		case domain.ModulePermission:
			if claims.Perms == nil {
				claims.Perms = make(map[string][]string)
			}
			key := strconv.Itoa(c.ModuleID)
			claims.Perms[key] = append(claims.Perms[key], string(c.Action))
		}
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

type jwtVerifier struct {
	secret    []byte
	adminRole string
}

// NewJWTVerifier returns a TokenVerifier for tokens signed by NewJWTIssuer with the same secret.
func NewJWTVerifier(secret, adminRole string) domain.TokenVerifier {
	return &jwtVerifier{secret: []byte(secret), adminRole: adminRole}
}

// Verify checks signature and expiry and maps the claims onto a Caller. Unknown actions,
// non-numeric module ids and unloadable time zones are ignored.
func (v *jwtVerifier) Verify(tokenString string) (domain.Caller, error) {
	var claims jwtClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return domain.Caller{}, fmt.Errorf("verify token: %w", err)
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil || userID <= 0 {
		return domain.Caller{}, errInvalidSubject
	}

	caller := domain.Caller{UserID: userID}
	if claims.Superuser {
		caller.Capabilities = append(caller.Capabilities, domain.Superuser{})
	}
	for _, role := range claims.Roles {
		if role == v.adminRole {
			caller.Capabilities = append(caller.Capabilities, domain.AdminRole{})
			break
		}
	}
	for key, actions := range claims.Perms {
		moduleID, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		for _, a := range actions {
			switch action := domain.Action(a); action {
			case domain.ActionView, domain.ActionEdit:
				caller.Capabilities = append(caller.Capabilities, domain.ModulePermission{ModuleID: moduleID, Action: action})
			}
		}
	}
	if claims.TimeZone != "" {
		if loc, err := time.LoadLocation(claims.TimeZone); err == nil {
			caller.Location = loc
		}
	}
	return caller, nil
}
