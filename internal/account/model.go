// Package account implements the account store: durable, per-device
// credential records under a user-granted storage root, plus the single
// active session and its durable snapshot.
package account

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

// Plan tiers. New accounts start on PlanFree.
const (
	PlanFree = "free"
	PlanPro  = "pro"
)

// Account is one registered user. The normalized email is the sole identity
// key; DisplayName carries no uniqueness constraint.
//
// The JSON form is the on-disk record format (account.json in the account's
// sub-directory) as well as the session snapshot payload. Readers must
// tolerate unknown fields, which encoding/json does by default.
type Account struct {
	ID           string    `json:"id,omitempty"`
	DisplayName  string    `json:"displayName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Salt         string    `json:"salt,omitempty"`       // hex; only set by the salted scheme
	HashScheme   string    `json:"hashScheme,omitempty"` // "" or "sha256" is legacy unsalted
	AvatarRef    string    `json:"avatarRef,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	Plan         string    `json:"plan"`

	// Avatar holds the loaded image bytes for the active session. It is
	// populated on login, best-effort, and travels with the snapshot.
	Avatar []byte `json:"avatar,omitempty"`
}

// Hash scheme labels stored in account records.
const (
	SchemeSHA256   = "sha256"
	SchemeArgon2id = "argon2id"
)

// Registration is the input to Store.CreateAccount.
type Registration struct {
	DisplayName string
	Email       string
	Password    []byte

	// Avatar optionally carries an image payload, either plain base64 or
	// a data URL ("data:image/png;base64,...."). Decoding or storing it
	// is best-effort; a bad payload never fails the registration.
	Avatar string
}

// SanitizeEmailKey maps an email address to its storage key: every rune
// outside [A-Za-z0-9@.-] becomes '_', then the whole key is lower-cased.
// The function is total and deterministic; distinct emails that differ only
// in replaced runes may collide, which is an accepted limitation.
func SanitizeEmailKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '@', r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return strings.ToLower(b.String())
}

// decodeAvatar turns an avatar payload into raw image bytes. Data URLs have
// their "data:...;base64," prefix stripped first.
func decodeAvatar(payload string) ([]byte, error) {
	s := payload
	if strings.HasPrefix(s, "data:") {
		i := strings.Index(s, ",")
		if i < 0 {
			return nil, fmt.Errorf("malformed data url")
		}
		s = s[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode avatar payload: %w", err)
	}
	return data, nil
}
