package api

import (
	"net/http"

	"landscapehub/internal/auth"
	"landscapehub/internal/manager"
)

// scope is only called behind Authenticator.Middleware.
func scope(r *http.Request) auth.Scope {
	s, _ := auth.ScopeFrom(r.Context())
	return s
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// @Summary Register a company and its first admin
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body manager.RegisterInput true "Company and admin details"
// @Success 201 {object} manager.Session
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /auth/register [post]
func (a *API) Register(w http.ResponseWriter, r *http.Request) {
	in, err := decodeJSON[manager.RegisterInput](w, r, a.settings.MaxBodyBytes)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	sess, err := a.svc.Tenants.RegisterCompany(r.Context(), in)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

// @Summary Log in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "Credentials"
// @Success 200 {object} manager.Session
// @Failure 401 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Router /auth/login [post]
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	in, err := decodeJSON[loginRequest](w, r, a.settings.MaxBodyBytes)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	sess, err := a.svc.Auth.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// @Summary Current user and company
// @Tags Auth
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} manager.Profile
// @Router /auth/profile [get]
func (a *API) Profile(w http.ResponseWriter, r *http.Request) {
	p, err := a.svc.Auth.Profile(r.Context(), scope(r))
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// @Summary Change the caller's password
// @Tags Auth
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body manager.ChangePasswordInput true "Current and new password"
// @Success 200 {object} messageResponse
// @Failure 401 {object} errorResponse
// @Router /auth/password [put]
func (a *API) ChangePassword(w http.ResponseWriter, r *http.Request) {
	in, err := decodeJSON[manager.ChangePasswordInput](w, r, a.settings.MaxBodyBytes)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	if err := a.svc.Auth.ChangePassword(r.Context(), scope(r), in); err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Password updated successfully"})
}

// @Summary Get the caller's company
// @Tags Company
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} model.Company
// @Router /company [get]
func (a *API) GetCompany(w http.ResponseWriter, r *http.Request) {
	c, err := a.svc.Company.Get(r.Context(), scope(r))
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// @Summary Update company details
// @Description Blank fields keep their current value.
// @Tags Company
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body manager.CompanyUpdate true "Company fields"
// @Success 200 {object} model.Company
// @Router /company [put]
func (a *API) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	in, err := decodeJSON[manager.CompanyUpdate](w, r, a.settings.MaxBodyBytes)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	c, err := a.svc.Company.Update(r.Context(), scope(r), in)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

type logoResponse struct {
	Message string `json:"message"`
	LogoURL string `json:"logoUrl"`
}

// @Summary Upload the company logo
// @Tags Company
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param logo formData file true "Logo image"
// @Success 200 {object} logoResponse
// @Router /company/logo [post]
func (a *API) UploadLogo(w http.ResponseWriter, r *http.Request) {
	u, cleanup, err := a.readSingleUpload(w, r, "logo")
	defer cleanup()
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	c, err := a.svc.Company.UploadLogo(r.Context(), scope(r), u)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, logoResponse{Message: "Logo uploaded successfully", LogoURL: c.LogoURL})
}

// @Summary List the company's users
// @Tags Company
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} model.User
// @Router /company/team [get]
func (a *API) ListTeam(w http.ResponseWriter, r *http.Request) {
	users, err := a.svc.Company.Team(r.Context(), scope(r))
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// @Summary Invite a user to the company
// @Description The temporary password is only returned in this response.
// @Tags Company
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body manager.InviteInput true "New user"
// @Success 201 {object} manager.Invitation
// @Failure 409 {object} errorResponse
// @Router /company/team/invite [post]
func (a *API) InviteUser(w http.ResponseWriter, r *http.Request) {
	in, err := decodeJSON[manager.InviteInput](w, r, a.settings.MaxBodyBytes)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	inv, err := a.svc.Company.Invite(r.Context(), scope(r), in)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, inv)
}
