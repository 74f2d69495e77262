package identity

// Tokens is the credential set issued by the identity provider on sign-in.
// The fields are returned to the caller verbatim.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	IDToken      string `json:"id_token"`
}

// Claims is the identity extracted from a verified access token.
type Claims struct {
	Subject string
	Email   string
	Name    string
}

// Provider is the external identity collaborator backing signup, signin,
// signout and token verification. SignUp returns the provider-issued subject
// identifier, which becomes the local user's ID.
type Provider interface {
	SignUp(name, email, password string) (string, error)
	ConfirmSignUp(email, code string) error
	SignIn(email, password string) (*Tokens, error)
	SignOut(accessToken string) error
	VerifyToken(accessToken string) (*Claims, error)
}
