package server

import (
	"huddle/internal/models"
	"huddle/internal/service"

	"github.com/gofiber/fiber/v2"
)

type addCommentRequest struct {
	Content string `json:"content"`
	PostID  uint   `json:"postId"`
}

// AddComment attaches a comment to a post. The author is the authenticated
// user.
func (s *Server) AddComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req addCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	view, err := s.commentService.Add(c.UserContext(), service.AddCommentInput{
		Content: req.Content,
		PostID:  req.PostID,
		UserID:  userID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(view)
}

type updateCommentRequest struct {
	CommentID uint   `json:"commentId"`
	Content   string `json:"content"`
}

// UpdateComment replaces a comment's content; the comment is flagged as
// edited in every subsequent read.
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	var req updateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	view, err := s.commentService.Update(c.UserContext(), service.UpdateCommentInput{
		CommentID: req.CommentID,
		Content:   req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(view)
}

// GetPostComments lists a post's comments. A missing post is 404; a post
// with no comments is an empty array.
func (s *Server) GetPostComments(c *fiber.Ctx) error {
	postID, err := s.parseQueryID(c, "postId")
	if err != nil {
		return nil
	}

	views, err := s.commentService.ListForPost(c.UserContext(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(views)
}

// UpVote increments a comment's vote tally.
func (s *Server) UpVote(c *fiber.Ctx) error {
	commentID, err := s.parseQueryID(c, "commentId")
	if err != nil {
		return nil
	}

	if err := s.commentService.UpVote(c.UserContext(), commentID); err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Vote recorded",
	})
}

// DownVote decrements a comment's vote tally.
func (s *Server) DownVote(c *fiber.Ctx) error {
	commentID, err := s.parseQueryID(c, "commentId")
	if err != nil {
		return nil
	}

	if err := s.commentService.DownVote(c.UserContext(), commentID); err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Vote recorded",
	})
}
