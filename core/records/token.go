package records

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

var (
	nowFunc = time.Now // mockable

	ErrInvalidToken = errors.New("invalid token")
)

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.StandardClaims
	Role      Role `json:"role,omitempty"`
	IsStudent bool `json:"is_student,omitempty"` // -> STUDENT PORTAL
	IsFaculty bool `json:"is_faculty,omitempty"` // -> FACULTY PORTAL
	IsAdmin   bool `json:"is_admin,omitempty"`   // -> ADMIN PORTAL
}

// Login validates the credentials and, on success, returns a signed token the
// presentation layer can hold for the session.
func (st *Store) Login(role Role, id, secret string) (string, error) {
	if !st.ValidateLogin(role, id, secret) {
		return "", ErrAuthenticationFailed
	}
	return generateToken(st.getClaims(role, id), st.conf.SecretKey)
}

func (st *Store) getClaims(role Role, id string) *Claims {
	now := nowFunc()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    st.conf.AppName,
			Subject:   id,
			Audience:  "Academia",
			ExpiresAt: now.Add(st.conf.TokenExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		Role:      role,
		IsStudent: role == RoleStudent,
		IsFaculty: role == RoleFaculty,
		IsAdmin:   role == RoleAdmin,
	}
}

// generateToken generates a signed JWT token string representing the Claims.
func generateToken(claims *Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := token.SignedString(key)
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

// ParseToken verifies a token string and returns its Claims.
func ParseToken(tokenStr string, key []byte) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return key, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
