package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DigitString decodes either a JSON string or a bare JSON number, keeping the
// number's literal digits so leading zeros and length survive.
type DigitString string

func (d *DigitString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*d = ""
		return nil
	}
	if trimmed[0] == '"' {
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		*d = DigitString(value)
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(trimmed, &number); err != nil {
		return fmt.Errorf("expected string or number: %w", err)
	}
	*d = DigitString(number.String())
	return nil
}

type RegisterVoterRequest struct {
	RegistrationNumber DigitString `json:"numeroColegiado"`
	Name               string      `json:"nombre"`
	Email              string      `json:"email"`
	IdentityDocument   DigitString `json:"dpi"`
	BirthDate          string      `json:"fechaNacimiento"`
	Secret             string      `json:"contrasena"`
}

type LoginRequest struct {
	RegistrationNumber DigitString `json:"numeroColegiado"`
	IdentityDocument   DigitString `json:"dpi"`
	BirthDate          string      `json:"fechaNacimiento"`
	Secret             string      `json:"contrasena"`
}

type VoterResponse struct {
	RegistrationNumber string    `json:"numeroColegiado"`
	Name               string    `json:"nombre"`
	Email              string    `json:"email"`
	IdentityDocument   string    `json:"dpi"`
	BirthDate          string    `json:"fechaNacimiento"`
	RegisteredAt       time.Time `json:"registradoEn"`
}
