package server

import (
	"huddle/internal/models"
	"huddle/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost creates a post from a multipart form (title, content,
// communityName, optional "image" file). The author is the authenticated
// user.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	image, err := formImage(c, "image")
	if err != nil {
		return respondServiceError(c, err)
	}

	view, err := s.postService.Create(c.UserContext(), service.CreatePostInput{
		Title:         c.FormValue("title"),
		Content:       c.FormValue("content"),
		UserID:        userID,
		CommunityName: c.FormValue("communityName"),
		Image:         image,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(view)
}

// GetPost returns a single post by the postId query parameter.
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := s.parseQueryID(c, "postId")
	if err != nil {
		return nil
	}

	view, err := s.postService.Get(c.UserContext(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(view)
}

// GetCommunityPosts lists a community's posts, newest first.
func (s *Server) GetCommunityPosts(c *fiber.Ctx) error {
	name := c.Query("communityName")
	if name == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("communityName is required"))
	}

	views, err := s.postService.ListByCommunity(c.UserContext(), name)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(views)
}

// GetUserPosts lists the posts authored by the user with the given email.
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("email is required"))
	}

	views, err := s.postService.ListByUser(c.UserContext(), email)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(views)
}

// GetAllPosts lists posts across all communities with pagination.
func (s *Server) GetAllPosts(c *fiber.Ctx) error {
	p := parsePagination(c, 20)
	views, err := s.postService.List(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(views)
}

// DeletePost permanently removes a post.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parseQueryID(c, "postId")
	if err != nil {
		return nil
	}

	if err := s.postService.Delete(c.UserContext(), postID); err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post deleted",
	})
}
