package session

import (
	"bytes"
	"dr-portal/internal/app/models"
	"errors"

	"github.com/goccy/go-json"
)

var errMissingToken = errors.New("login payload carries no token or role")

type loginPayload struct {
	Token json.RawMessage `json:"token"`
	Role  string          `json:"role"`
}

type tokenObject struct {
	UserID    flexibleID `json:"user_id"`
	Role      string     `json:"role"`
	DoctorID  flexibleID `json:"doctor_id"`
	PatientID flexibleID `json:"patient_id"`
}

// flexibleID accepts identifiers sent either as JSON numbers or strings.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		err := json.Unmarshal(data, &s)
		if err != nil {
			return err
		}
		*f = flexibleID(s)
		return nil
	}
	*f = flexibleID(bytes.TrimSpace(data))
	return nil
}

// ParseLoginPayload extracts the session from a login reply. The DB API
// either sends "token" as a string next to "role", or as an object holding
// the role and the user identifiers. In the second form the compact object
// itself is kept as the token.
func ParseLoginPayload(payload json.RawMessage) (models.Session, error) {
	var reply loginPayload
	err := json.Unmarshal(payload, &reply)
	if err != nil {
		return models.Session{}, err
	}

	raw := bytes.TrimSpace(reply.Token)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return models.Session{}, errMissingToken
	}

	var session models.Session
	switch raw[0] {
	case '"':
		var token string
		err = json.Unmarshal(raw, &token)
		if err != nil {
			return models.Session{}, err
		}
		session = models.Session{Token: token, Role: models.Role(reply.Role)}
	case '{':
		var object tokenObject
		err = json.Unmarshal(raw, &object)
		if err != nil {
			return models.Session{}, err
		}
		var compact bytes.Buffer
		err = json.Compact(&compact, raw)
		if err != nil {
			return models.Session{}, err
		}
		role := object.Role
		if role == "" {
			role = reply.Role
		}
		session = models.Session{
			Token: compact.String(),
			Role:  models.Role(role),
			Profile: models.Profile{
				UserID:    string(object.UserID),
				DoctorID:  string(object.DoctorID),
				PatientID: string(object.PatientID),
			},
		}
	default:
		session = models.Session{Token: string(raw), Role: models.Role(reply.Role)}
	}

	if session.Token == "" || session.Role == models.RoleNone {
		return models.Session{}, errMissingToken
	}
	return session, nil
}
