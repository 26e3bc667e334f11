package students

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/SoulShadow8326/Arista/app/config"
	"github.com/SoulShadow8326/Arista/app/database"
	"github.com/SoulShadow8326/Arista/app/routes/auth"
	"github.com/SoulShadow8326/Arista/app/validation"
)

// RegisterStudentAPI self-registers a student into the school matching the
// supplied join code.
func RegisterStudentAPI(c *fiber.Ctx) error {
	type RegisterRequest struct {
		SchoolCode    string `json:"school_code" validate:"required"`
		Email         string `json:"email" validate:"required,email"`
		Password      string `json:"password" validate:"required"`
		FirstName     string `json:"first_name" validate:"required"`
		LastName      string `json:"last_name" validate:"required"`
		Grade         string `json:"grade" validate:"required"`
		Section       string `json:"section" validate:"required"`
		GuardianName  string `json:"guardian_name" validate:"required"`
		GuardianPhone string `json:"guardian_phone" validate:"required"`
		MedicalNotes  string `json:"medical_notes"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	db := config.GetDB()

	school, err := database.GetActiveSchoolByCode(db, req.SchoolCode)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid school code")
		}
		return err
	}

	exists, err := database.UserExistsInSchool(db, school.ID, req.Email)
	if err != nil {
		return err
	}
	if exists {
		return fiber.NewError(fiber.StatusBadRequest, "Email already registered for this school")
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	fullName := req.FirstName + " " + req.LastName
	_, err = database.CreateStudentUser(db, school.ID, fullName, req.Email, passwordHash, database.StudentProfile{
		Grade:         req.Grade,
		Section:       req.Section,
		GuardianName:  req.GuardianName,
		GuardianPhone: req.GuardianPhone,
		MedicalNotes:  req.MedicalNotes,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":     "Student registered successfully",
		"school_name": school.Name,
	})
}
