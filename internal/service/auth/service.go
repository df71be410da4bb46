package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/emsuite/ems-backend-go/internal/config"
	"github.com/emsuite/ems-backend-go/internal/domain/auth"
	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	admin config.AdminConfig
	jwt.Service
	employee.EmployeeRepository
}

func NewService(admin config.AdminConfig, jwtService jwt.Service, employeeRepository employee.EmployeeRepository) *Service {
	return &Service{
		admin:              admin,
		Service:            jwtService,
		EmployeeRepository: employeeRepository,
	}
}

// Login authenticates the single configured admin account first, then falls
// back to the employee registry with a bcrypt check. Both failure paths
// collapse into ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	if req.Email == s.admin.Email {
		if req.Password != s.admin.Password {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return s.issueToken("admin", s.admin.Email, "Administrator", auth.RoleAdmin)
	}

	emp, err := s.EmployeeRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if emp.PasswordHash == "" {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueToken(emp.ID, emp.Email, emp.Name, auth.RoleEmployee)
}

func (s *Service) issueToken(userID, email, name string, role auth.Role) (auth.LoginResponse, error) {
	token, expiresAt, err := s.GenerateAccessToken(userID, email, name, role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User: auth.UserInfo{
			ID:    userID,
			Email: email,
			Name:  name,
			Role:  role,
		},
	}, nil
}
