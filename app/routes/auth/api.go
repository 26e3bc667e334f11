package auth

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/SoulShadow8326/Arista/app/config"
	"github.com/SoulShadow8326/Arista/app/database"
	"github.com/SoulShadow8326/Arista/app/validation"
)

func SigninAPI(c *fiber.Ctx) error {
	type SigninRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	var req SigninRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	user, err := database.GetUserByEmail(config.GetDB(), req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		return err
	}

	if !CheckPasswordHash(req.Password, user.PasswordHash) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := IssueToken(user.ID)
	if err != nil {
		return err
	}
	SetAuthCookie(c, token)

	return c.JSON(fiber.Map{
		"user": user,
		"school": fiber.Map{
			"name": user.SchoolName,
			"code": user.SchoolCode,
		},
	})
}

func SignoutAPI(c *fiber.Ctx) error {
	clearAuthCookie(c)
	return c.JSON(fiber.Map{"message": "Signed out"})
}

func MeAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"user": CurrentUser(c)})
}
