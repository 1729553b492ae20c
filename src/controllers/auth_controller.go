package controllers

import (
	"portfolio-backend/src/models"
	authSvc "portfolio-backend/src/services/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthService interface {
	Login(email, password string) (*authSvc.LoginResult, error)
}

type AuthController struct {
	svc AuthService
	log *zap.Logger
}

func NewAuthController(svc AuthService, log *zap.Logger) *AuthController {
	return &AuthController{svc: svc, log: log}
}

// Login godoc
// @Summary      Admin login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      models.LoginRequest  true  "Credentials"
// @Success      200   {object}  auth.LoginResult
// @Failure      400   {object}  models.ErrorResponse
// @Failure      401   {object}  models.ErrorResponse
// @Failure      429   {object}  models.ErrorResponse
// @Router       /api/admin/login [post]
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var in models.LoginRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	res, err := ctl.svc.Login(in.Email, in.Password)
	if err != nil {
		ctl.log.Warn("admin login rejected", zap.String("ip", c.IP()), zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(res)
}
