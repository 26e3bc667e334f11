package schools

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/SoulShadow8326/Arista/app/config"
	"github.com/SoulShadow8326/Arista/app/database"
	"github.com/SoulShadow8326/Arista/app/models"
	"github.com/SoulShadow8326/Arista/app/routes/auth"
	"github.com/SoulShadow8326/Arista/app/validation"
)

// RegisterSchoolAPI creates a school with a fresh join code and its first
// admin account, then signs the admin in.
func RegisterSchoolAPI(c *fiber.Ctx) error {
	type RegisterRequest struct {
		Name       string  `json:"name" validate:"required"`
		AdminEmail string  `json:"admin_email" validate:"required,email"`
		Password   string  `json:"password" validate:"required"`
		Address    *string `json:"address"`
		Phone      *string `json:"phone"`
		Website    *string `json:"website"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	db := config.GetDB()

	code, err := NewSchoolCode(db)
	if err != nil {
		return err
	}

	school := &models.School{
		Name:       req.Name,
		Code:       code,
		AdminEmail: req.AdminEmail,
		Address:    req.Address,
		Phone:      req.Phone,
		Website:    req.Website,
	}
	if err := database.CreateSchool(db, school); err != nil {
		return err
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	userID, err := database.CreateAdminUser(db, school.ID, "Admin User", req.AdminEmail, passwordHash)
	if err != nil {
		return err
	}

	token, err := auth.IssueToken(userID)
	if err != nil {
		return err
	}
	auth.SetAuthCookie(c, token)

	return c.JSON(fiber.Map{
		"message":     "School registered successfully",
		"school_code": code,
		"user": fiber.Map{
			"id":        userID,
			"email":     req.AdminEmail,
			"name":      "Admin User",
			"role":      models.RoleAdmin,
			"school_id": school.ID,
		},
	})
}

// ValidateSchoolCodeAPI checks a join code against the active schools. Only
// a missing or inactive school reads as invalid; storage failures surface as
// errors.
func ValidateSchoolCodeAPI(c *fiber.Ctx) error {
	school, err := database.GetActiveSchoolByCode(config.GetDB(), c.Params("code"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(fiber.Map{"valid": false})
		}
		return err
	}
	return c.JSON(fiber.Map{"valid": true, "school_name": school.Name})
}
