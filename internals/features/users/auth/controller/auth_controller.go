// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"shuan_backend/internals/configs"
	"shuan_backend/internals/constants"
	helper "shuan_backend/internals/helpers"
)

/* =========================================================
   LOGIN 管理職 (kepala sekolah / wakil)
   Satu kredensial bersama dari ENV:
   - ADMIN_PASSWORD_HASH (bcrypt) bila diset, atau
   - ADMIN_PASSWORD (plaintext, untuk dev)
   Nama pemohon dibawa ke claim "sub" dan dipakai sebagai
   approved_by saat menyetujui rencana.
   ========================================================= */

type AuthController struct{}

type LoginRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=120"`
	Password string `json:"password" validate:"required"`
}

const tokenTTL = 12 * time.Hour

// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if !checkAdminPassword(req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "Password salah")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  req.Name,
		"role": constants.RoleAdmin,
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": signed,
		"token_type":   "Bearer",
		"expires_in":   int(tokenTTL.Seconds()),
	})
}

func checkAdminPassword(password string) bool {
	if hash := configs.AdminPasswordHash; hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}
	plain := configs.AdminPassword
	return plain != "" && password == plain
}
