package validation

// UserPayload is the wire shape of user registration requests. The password
// is plaintext at validation time and hashed before storage.
type UserPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// UserInput is a validated, normalized registration request.
type UserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// ValidateUser checks a registration payload.
func ValidateUser(payload *UserPayload) (*UserInput, error) {
	input := &UserInput{}
	var err error

	if input.FirstName, err = requiredString("firstName", payload.FirstName, 3, 50); err != nil {
		return nil, err
	}
	if input.LastName, err = requiredString("lastName", payload.LastName, 3, 50); err != nil {
		return nil, err
	}
	if input.Email, err = requiredEmail("email", payload.Email, 3, 255); err != nil {
		return nil, err
	}
	if input.Password, err = requiredString("password", payload.Password, 3, 255); err != nil {
		return nil, err
	}
	return input, nil
}

// CredentialsPayload is the wire shape of login requests.
type CredentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidateCredentials checks a login payload.
func ValidateCredentials(payload *CredentialsPayload) error {
	if _, err := requiredEmail("email", payload.Email, 3, 255); err != nil {
		return err
	}
	if _, err := requiredString("password", payload.Password, 3, 255); err != nil {
		return err
	}
	return nil
}
