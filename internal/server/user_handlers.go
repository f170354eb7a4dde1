package server

import (
	"huddle/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateAccount registers a new user from a multipart form (profile fields
// plus an optional "image" avatar file).
func (s *Server) CreateAccount(c *fiber.Ctx) error {
	avatar, err := formImage(c, "image")
	if err != nil {
		return respondServiceError(c, err)
	}

	profile, err := s.userService.CreateAccount(c.UserContext(), service.CreateAccountInput{
		Username: c.FormValue("username"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
		Phone:    c.FormValue("phone"),
		Avatar:   avatar,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(profile)
}

// TestLogin authenticates with email and password query parameters and
// returns the profile with a bearer token.
func (s *Server) TestLogin(c *fiber.Ctx) error {
	profile, token, err := s.userService.LogIn(c.UserContext(), c.Query("email"), c.Query("password"))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":  profile,
		"token": token,
	})
}

// UpdateProfile updates the authenticated user's profile from a multipart
// form. A present-but-blank phone field clears the stored number; an absent
// field leaves it untouched.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	avatar, err := formImage(c, "image")
	if err != nil {
		return respondServiceError(c, err)
	}

	in := service.UpdateProfileInput{
		UserID:   userID,
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
		Avatar:   avatar,
	}
	if form, ferr := c.MultipartForm(); ferr == nil && form != nil {
		if values, ok := form.Value["phone"]; ok && len(values) > 0 {
			phone := values[0]
			in.Phone = &phone
		}
	}

	profile, err := s.userService.UpdateProfile(c.UserContext(), in)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

// DeleteAccount soft-deletes the account identified by the email query
// parameter.
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	if err := s.userService.DeleteAccount(c.UserContext(), c.Query("email")); err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Account deleted",
	})
}
