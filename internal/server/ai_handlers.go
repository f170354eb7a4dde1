package server

import (
	"github.com/gofiber/fiber/v2"
)

// SummarizePost asks the AI proxy to summarize a single post. The response
// is always 200 with a summary or a descriptive message; upstream failures
// never surface as 5xx here.
func (s *Server) SummarizePost(c *fiber.Ctx) error {
	postID, err := s.parseQueryID(c, "postId")
	if err != nil {
		return nil
	}

	result := s.summaryService.SummarizePost(c.UserContext(), postID)
	return c.Status(fiber.StatusOK).JSON(result)
}

// SummarizeAllPosts asks the AI proxy for a combined summary of every post.
func (s *Server) SummarizeAllPosts(c *fiber.Ctx) error {
	result := s.summaryService.SummarizeAll(c.UserContext())
	return c.Status(fiber.StatusOK).JSON(result)
}
