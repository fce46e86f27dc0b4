package intake

import (
	"context"
	"fmt"
	"strings"

	gitlab "gitlab.com/gitlab-org/api/client-go"
)

type IssueSource interface {
	Requirement(ctx context.Context, project string, issueIID int64) (string, error)
}

type gitLabIssueSource struct {
	client *gitlab.Client
}

func NewGitLabIssueSource(baseURL, token string) (IssueSource, error) {
	client, err := newGitLabClient(baseURL, token)
	if err != nil {
		return nil, fmt.Errorf("creating gitlab client: %w", err)
	}
	return &gitLabIssueSource{client: client}, nil
}

// Requirement reads an issue and returns its title followed by its description.
func (s *gitLabIssueSource) Requirement(ctx context.Context, project string, issueIID int64) (string, error) {
	issue, _, err := s.client.Issues.GetIssue(
		project,
		issueIID,
		nil,
		gitlab.WithContext(ctx),
	)
	if err != nil {
		return "", fmt.Errorf("fetching issue from gitlab: %w", err)
	}

	return IssueText(issue.Title, issue.Description)
}

// IssueText joins an issue title and description into one requirement.
func IssueText(title, description string) (string, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	switch {
	case title == "" && description == "":
		return "", ErrEmptyDocument
	case description == "":
		return terminate(title), nil
	case title == "":
		return description, nil
	}
	return terminate(title) + " " + description, nil
}

func newGitLabClient(baseURL, token string) (*gitlab.Client, error) {
	if baseURL == "" {
		return gitlab.NewClient(token)
	}
	apiURL := strings.TrimSuffix(baseURL, "/") + "/api/v4"
	return gitlab.NewClient(token, gitlab.WithBaseURL(apiURL))
}
