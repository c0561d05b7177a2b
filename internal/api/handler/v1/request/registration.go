package request

import (
	"errors"
	"strings"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/agusvaldes/popup-api/internal/domain"
)

// Same shape the original form enforced: something@something.tld, no spaces.
var emailRegex = regexp2.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`, regexp2.None)

func validEmail(value interface{}) error {
	email, _ := value.(string)

	ok, err := emailRegex.MatchString(email)
	if err != nil || !ok {
		return errors.New("Email inválido")
	}

	return nil
}

type SubmitRegistrationRequest struct {
	EventID        uint   `json:"eventId"`
	Name           string `json:"name"`
	Surname        string `json:"surname"`
	Email          string `json:"email"`
	Gender         string `json:"gender"`
	TicketQuantity int    `json:"ticketQuantity"`
}

// Normalize trims the text fields and lower-cases the email before any
// validation, comparison or storage.
func (req *SubmitRegistrationRequest) Normalize() {
	req.Name = strings.TrimSpace(req.Name)
	req.Surname = strings.TrimSpace(req.Surname)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Gender = strings.TrimSpace(req.Gender)
}

func (req *SubmitRegistrationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID,
			validation.Required.Error("ID de evento inválido"),
			validation.Min(uint(1)).Error("ID de evento inválido")),
		validation.Field(&req.Name,
			validation.Required.Error("El nombre debe tener entre 1 y 100 caracteres"),
			validation.Length(1, 100).Error("El nombre debe tener entre 1 y 100 caracteres")),
		validation.Field(&req.Surname,
			validation.Required.Error("El apellido debe tener entre 1 y 100 caracteres"),
			validation.Length(1, 100).Error("El apellido debe tener entre 1 y 100 caracteres")),
		validation.Field(&req.Email,
			validation.Required.Error("Email inválido"),
			validation.Length(1, 255).Error("Email inválido"),
			validation.By(validEmail)),
		validation.Field(&req.Gender,
			validation.Required.Error("Género inválido"),
			validation.In(domain.GenderMasculino, domain.GenderFemenino, domain.GenderOtro).Error("Género inválido")),
		validation.Field(&req.TicketQuantity,
			validation.Required.Error("La cantidad de tickets debe ser 1 o 2"),
			validation.In(1, 2).Error("La cantidad de tickets debe ser 1 o 2")),
	)
}
