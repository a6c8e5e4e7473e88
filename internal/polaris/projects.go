package polaris

import (
	"context"
	"strings"

	clierrors "github.com/salmonumbrella/polaris-cli/internal/errors"
)

// DefaultProjectName is the project Polaris provisions for every org.
const DefaultProjectName = "default"

// Projects lists all projects in the organization.
func (c *Client) Projects(ctx context.Context) ([]map[string]any, error) {
	var envelope valuesEnvelope
	if err := c.getJSON(ctx, Endpoints.Projects, nil, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Values, nil
}

// Project returns the project with the given name (case-insensitive), or
// nil if the project is not defined.
func (c *Client) Project(ctx context.Context, name string) (map[string]any, error) {
	projects, err := c.Projects(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		if strings.EqualFold(projectName(p), name) {
			return p, nil
		}
	}
	return nil, nil
}

// DefaultProject returns the org's default project, or nil if none exists.
func (c *Client) DefaultProject(ctx context.Context) (map[string]any, error) {
	projects, err := c.Projects(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		if projectName(p) == DefaultProjectName {
			return p, nil
		}
	}
	return nil, nil
}

// SetProject selects the project SQL queries run against.
func (c *Client) SetProject(ctx context.Context, name string) error {
	proj, err := c.Project(ctx, name)
	if err != nil {
		return err
	}
	if proj == nil {
		return clierrors.NotFoundError("project", name)
	}
	c.projectID = projectUID(proj)
	return nil
}

// inferProject picks a project when none was selected: the only project if
// there is exactly one, else the default project, else an error asking the
// caller to choose.
func (c *Client) inferProject(ctx context.Context) error {
	projects, err := c.Projects(ctx)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		return clierrors.NewUserError("no projects found", "")
	}
	if len(projects) == 1 {
		c.projectID = projectUID(projects[0])
		return nil
	}
	for _, p := range projects {
		if projectName(p) == DefaultProjectName {
			c.projectID = projectUID(p)
			return nil
		}
	}
	return clierrors.NewUserError("more than one project defined",
		"Select one with 'pol project use <name>' or --project")
}

func projectMetadata(p map[string]any) map[string]any {
	meta, _ := p["metadata"].(map[string]any)
	return meta
}

func projectName(p map[string]any) string {
	return stringField(projectMetadata(p), "name")
}

func projectUID(p map[string]any) string {
	return stringField(projectMetadata(p), "uid")
}
