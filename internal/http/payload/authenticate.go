package payload

import (
	"regexp"

	"afriledger/internal/core"

	"github.com/jellydator/validation"
)

var phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

type AuthRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	PIN         string `json:"pin"`
}

func (a AuthRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.PhoneNumber, validation.Required, validation.Match(phoneRegex)),
		validation.Field(&a.PIN, validation.Required, validation.Length(4, 8)),
	)
}

func (a AuthRequest) ToCoreAuthMessage() core.AuthMessage {
	return core.AuthMessage{
		PhoneNumber: a.PhoneNumber,
		PIN:         a.PIN,
	}
}
