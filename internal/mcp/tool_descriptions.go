package mcp

import "strings"

// Tool names
const (
	ToolPush        = "push_to_github"
	ToolStatus      = "git_status"
	ToolSetRepoPath = "set_repo_path"
)

// ToolDescription is the long-form description sent to clients
type ToolDescription struct {
	Description string
	WhenToUse   []string
	Examples    []string
}

var toolDescriptions = map[string]ToolDescription{
	ToolPush: {
		Description: "Stage, commit, and push local changes to GitHub. Runs `git add .`, then commits with the given message and pushes the current branch to origin/main with upstream tracking. Returns a success message or the git error",
		WhenToUse: []string{
			"When the user asks to save, commit or push their work",
			"After finishing a change that should reach the remote",
		},
		Examples: []string{
			`push_to_github(commit_message: "fix typo in README")`,
			`push_to_github()`,
		},
	},
	ToolStatus: {
		Description: "Check the current git status of the repository. Returns the short status lines, or a note that the working tree is clean",
		WhenToUse: []string{
			"Before pushing, to see what would be committed",
			"When asked which files changed",
		},
		Examples: []string{
			`git_status()`,
		},
	},
	ToolSetRepoPath: {
		Description: "Update the repository path used by the other tools. The path must exist and contain a .git directory; otherwise the current path is kept",
		WhenToUse: []string{
			"When the user wants to work on a different repository",
			"When another tool reports that the repository path does not exist",
		},
		Examples: []string{
			`set_repo_path(new_path: "/home/me/projects/site")`,
		},
	},
}

// GetEnhancedDescription returns the description of a tool with usage hints
func GetEnhancedDescription(toolName string) string {
	desc, ok := toolDescriptions[toolName]
	if !ok {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(desc.Description)
	sb.WriteString("\n\nWHEN TO USE THIS TOOL:\n")
	for _, when := range desc.WhenToUse {
		sb.WriteString("- " + when + "\n")
	}
	if len(desc.Examples) > 0 {
		sb.WriteString("\nEXAMPLES:\n")
		for _, example := range desc.Examples {
			sb.WriteString(example + "\n")
		}
	}
	return sb.String()
}

// ToolSummary is a tool name with its one-line description
type ToolSummary struct {
	Name    string
	Summary string
}

// ToolSummaries lists the registered tools in registration order
func ToolSummaries() []ToolSummary {
	names := []string{ToolPush, ToolStatus, ToolSetRepoPath}
	summaries := make([]ToolSummary, 0, len(names))
	for _, name := range names {
		summary, _, _ := strings.Cut(toolDescriptions[name].Description, ". ")
		summaries = append(summaries, ToolSummary{Name: name, Summary: summary})
	}
	return summaries
}
