package main

import (
	"github.com/medpoint/clinic-api/internal/validator"
)

// Validation rules

func validatePageWindow(v *validator.Validator, page, limit int) {
	v.CheckField(page >= 1, "page", "must be greater than or equal to 1")
	v.CheckField(limit >= 1, "limit", "must be greater than or equal to 1")
}

func validateRequestRegister(v *validator.Validator, request requestRegister) {
	v.CheckField(validator.NotBlank(request.FirstName), "firstName", "cannot be blank")
	v.CheckField(validator.NotBlank(request.LastName), "lastName", "cannot be blank")
	v.CheckField(validator.NotBlank(request.Email), "email", "cannot be blank")
	v.CheckField(validator.IsEmail(request.Email), "email", "must be a valid email address")
	v.CheckField(validator.NotBlank(request.Password), "password", "cannot be blank")
}

func validateRequestLogin(v *validator.Validator, request requestLogin) {
	v.CheckField(validator.NotBlank(request.Email), "email", "cannot be blank")
	v.CheckField(validator.NotBlank(request.Password), "password", "cannot be blank")
}

func validateRequestPatient(v *validator.Validator, request requestPatient) {
	v.CheckField(validator.NotBlank(request.Name), "name", "cannot be blank")
	v.CheckField(validator.NotBlank(request.IDNumber), "idNumber", "cannot be blank")
	v.CheckField(validator.NotBlank(request.Gender), "gender", "cannot be blank")
	v.CheckField(validator.NotBlank(request.Contact), "contact", "cannot be blank")
	v.CheckField(validator.NotBlank(request.DateOfBirth), "dateOfBirth", "cannot be blank")
}

func validateRequestVisit(v *validator.Validator, request requestVisit) {
	v.CheckField(validator.NotBlank(request.VisitDate), "visitDate", "cannot be blank")
	v.CheckField(validator.NotBlank(request.Diagnosis), "diagnosis", "cannot be blank")
	v.CheckField(validator.NotBlank(request.Medications), "medications", "cannot be blank")
}
