package payload

import (
	"regexp"

	"github.com/jellydator/validation"
)

var amountRegex = regexp.MustCompile(`^[1-9][0-9]*$`)
var addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// SendRequest moves Amount (minor units, decimal string) to the account
// behind RecipientPhone.
type SendRequest struct {
	RecipientPhone string `json:"recipientPhone"`
	Amount         string `json:"amount"`
}

func (s SendRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.RecipientPhone, validation.Required, validation.Match(phoneRegex)),
		validation.Field(&s.Amount, validation.Required, validation.Match(amountRegex)),
	)
}

type FundRequest struct {
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Method      string `json:"method"`
	ExternalRef string `json:"externalRef"`
}

func (f FundRequest) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Amount, validation.Required, validation.Match(amountRegex)),
		validation.Field(&f.Currency, validation.Required, validation.Length(3, 8)),
		validation.Field(&f.Method, validation.Required),
	)
}

type DepositAddressRequest struct {
	Address string `json:"address"`
}

func (d DepositAddressRequest) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Address, validation.Required, validation.Match(addressRegex)),
	)
}
