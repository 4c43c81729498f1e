package delivery

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/docflowhq/docflow/internal/entity"
)

// ApplyAuth sets the Authorization header per the receiver's auth descriptor.
func ApplyAuth(req *http.Request, r *entity.Receiver, now time.Time) error {
	switch r.AuthKind {
	case entity.AuthNone, "":
		return nil
	case entity.AuthBasic:
		req.SetBasicAuth(r.AuthUser, r.AuthToken)
		return nil
	case entity.AuthBearer:
		req.Header.Set("Authorization", "Bearer "+r.AuthToken)
		return nil
	case entity.AuthJWT:
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"iss": "docflow",
			"aud": r.Name,
			"iat": now.Unix(),
			"exp": now.Add(5 * time.Minute).Unix(),
		})
		signed, err := token.SignedString([]byte(r.AuthToken))
		if err != nil {
			return fmt.Errorf("mint jwt for receiver %s: %w", r.ID, err)
		}
		req.Header.Set("Authorization", "Bearer "+signed)
		return nil
	default:
		return fmt.Errorf("receiver %s: unknown auth kind %q", r.ID, r.AuthKind)
	}
}
