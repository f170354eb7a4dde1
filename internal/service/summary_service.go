package service

import (
	"context"
	"fmt"
	"strings"

	"huddle/internal/gemini"
	"huddle/internal/middleware"
	"huddle/internal/models"
	"huddle/internal/repository"
)

const (
	postPromptTemplate = "You are an AI assistant for a community discussion platform. " +
		"Summarize the following post content in a concise and clear way:\n\n%s"
	allPostsPromptHeader = "Summarize all the following posts from a community discussion platform:\n\n"
)

// PostSummary is the response for a single-post summarization. Exactly one
// of Summary or Message is populated.
type PostSummary struct {
	Summary string `json:"summary,omitempty"`
	Message string `json:"message,omitempty"`
}

// AllPostsSummary is the response for the summarize-everything request.
type AllPostsSummary struct {
	Summary    string `json:"summary,omitempty"`
	TotalPosts int    `json:"totalPosts"`
	Message    string `json:"message"`
}

// SummaryService proxies post content to the generative-AI API. All
// failure modes are converted to descriptive message strings; callers
// always get a well-formed result.
type SummaryService struct {
	postRepo repository.PostRepository
	client   *gemini.Client
}

func NewSummaryService(postRepo repository.PostRepository, client *gemini.Client) *SummaryService {
	return &SummaryService{postRepo: postRepo, client: client}
}

// SummarizePost summarizes a single post's content. Missing posts and
// empty posts short-circuit without touching the upstream API.
func (s *SummaryService) SummarizePost(ctx context.Context, postID uint) PostSummary {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		middleware.SummaryRequests.WithLabelValues("not_found").Inc()
		return PostSummary{Message: "Post not found"}
	}

	if strings.TrimSpace(post.Content) == "" {
		middleware.SummaryRequests.WithLabelValues("no_content").Inc()
		return PostSummary{Message: "This post has no content to summarize."}
	}

	prompt := fmt.Sprintf(postPromptTemplate, post.Content)
	summary, err := s.client.Generate(ctx, prompt)
	if err != nil {
		middleware.SummaryRequests.WithLabelValues("upstream_error").Inc()
		middleware.Logger.WarnContext(ctx, "post summarization failed",
			"post_id", postID, "error", err)
		return PostSummary{Message: upstreamMessage(err)}
	}

	middleware.SummaryRequests.WithLabelValues("ok").Inc()
	return PostSummary{Summary: summary}
}

// SummarizeAll builds one prompt out of every post and asks for a combined
// summary.
func (s *SummaryService) SummarizeAll(ctx context.Context) AllPostsSummary {
	posts, err := s.postRepo.ListAll(ctx)
	if err != nil {
		middleware.SummaryRequests.WithLabelValues("upstream_error").Inc()
		return AllPostsSummary{Message: "Could not load posts to summarize."}
	}
	if len(posts) == 0 {
		middleware.SummaryRequests.WithLabelValues("no_content").Inc()
		return AllPostsSummary{Message: "There are no posts to summarize."}
	}

	var sb strings.Builder
	sb.WriteString(allPostsPromptHeader)
	for i, post := range posts {
		fmt.Fprintf(&sb, "Post %d: %s\nContent: %s\n\n", i+1, post.Title, post.Content)
	}

	summary, err := s.client.Generate(ctx, sb.String())
	if err != nil {
		middleware.SummaryRequests.WithLabelValues("upstream_error").Inc()
		middleware.Logger.WarnContext(ctx, "bulk summarization failed", "error", err)
		return AllPostsSummary{TotalPosts: len(posts), Message: upstreamMessage(err)}
	}

	middleware.SummaryRequests.WithLabelValues("ok").Inc()
	return AllPostsSummary{
		Summary:    summary,
		TotalPosts: len(posts),
		Message:    fmt.Sprintf("Summarized %d posts.", len(posts)),
	}
}

func upstreamMessage(err error) string {
	if appErr, ok := err.(*models.AppError); ok {
		return appErr.Message
	}
	return "Summarization is temporarily unavailable."
}
