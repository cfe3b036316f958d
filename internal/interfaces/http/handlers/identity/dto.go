package identity

import "github.com/automationyuli-li/RobotCare-sub001/internal/application/identity/usecases"

type RegisterRequest struct {
	OrgName  string `json:"org_name" binding:"required,max=200"`
	OrgType  string `json:"org_type" binding:"required,oneof=service_provider end_customer"`
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,max=100"`
	Password string `json:"password" binding:"required"`
}

func (r *RegisterRequest) ToCommand() usecases.RegisterCommand {
	return usecases.RegisterCommand{
		OrgName:  r.OrgName,
		OrgType:  r.OrgType,
		Email:    r.Email,
		Name:     r.Name,
		Password: r.Password,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,max=100"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=service_admin service_engineer end_admin end_engineer"`
}

// RegisterResponse is the body of a successful registration.
type RegisterResponse struct {
	User                interface{} `json:"user"`
	Organization        interface{} `json:"organization"`
	ReconciledContracts int         `json:"reconciled_contracts"`
}
