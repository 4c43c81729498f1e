package entity

import (
	"time"

	"github.com/google/uuid"
)

// Auth descriptor kinds for outbound delivery.
const (
	AuthNone   = "none"
	AuthBasic  = "basic"
	AuthBearer = "bearer"
	AuthJWT    = "jwt" // HS256 token minted per request from the receiver secret
)

// Receiver is a registered downstream webhook endpoint. The pipeline treats it
// as read-only configuration; it is resolved from the task's rule at delivery
// time so configuration changes apply prospectively.
type Receiver struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Endpoint      string    `json:"endpoint"`
	AuthKind      string    `json:"auth_kind"`
	AuthUser      string    `json:"auth_user,omitempty"`
	AuthToken     string    `json:"auth_token,omitempty"`
	SigningSecret string    `json:"-"`
	BodyTemplate  string    `json:"body_template"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
}
