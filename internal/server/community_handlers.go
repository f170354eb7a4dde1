package server

import (
	"huddle/internal/models"
	"huddle/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createCommunityRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	CreatorEmail string `json:"creatorEmail"`
}

// CreateCommunity registers a new community.
func (s *Server) CreateCommunity(c *fiber.Ctx) error {
	var req createCommunityRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	view, err := s.communityService.Create(c.UserContext(), service.CreateCommunityInput{
		Name:         req.Name,
		Description:  req.Description,
		CreatorEmail: req.CreatorEmail,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(view)
}

// JoinCommunity enrolls the user into the community named by the query
// parameters. Re-joining reports already_member instead of failing.
func (s *Server) JoinCommunity(c *fiber.Ctx) error {
	status, err := s.communityService.Join(c.UserContext(),
		c.Query("userEmail"), c.Query("communityName"))
	if err != nil {
		return respondServiceError(c, err)
	}

	message := "Joined community"
	if status == service.JoinStatusAlreadyMember {
		message = "Already a member of this community"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  status,
		"message": message,
	})
}

// DeleteCommunity soft-deletes a community on behalf of its creator.
func (s *Server) DeleteCommunity(c *fiber.Ctx) error {
	err := s.communityService.Delete(c.UserContext(),
		c.Query("userEmail"), c.Query("communityName"))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Community deleted",
	})
}

// CommunityDetails returns a single community by name.
func (s *Server) CommunityDetails(c *fiber.Ctx) error {
	view, err := s.communityService.Details(c.UserContext(), c.Query("communityName"))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(view)
}

// GetCommunities lists communities with pagination.
func (s *Server) GetCommunities(c *fiber.Ctx) error {
	p := parsePagination(c, 20)
	views, err := s.communityService.List(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(views)
}
