package gitsim

// Tip is a usage card for one command.
type Tip struct {
	Command     string `json:"command"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

// Convention is one row of a naming convention table. Prefix is a branch
// prefix ("feature/") or a commit type ("feat:").
type Convention struct {
	Prefix      string `json:"prefix"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

// Guide bundles a convention table with general advice.
type Guide struct {
	Patterns      []Convention `json:"patterns"`
	BestPractices []string     `json:"bestPractices"`
}

var tips = map[CommandKind]Tip{
	CommandClone: {
		Command:     "git clone",
		Title:       "Clone a repository",
		Description: "Creates a copy of a remote repository on your local machine.",
		Example:     "git clone https://github.com/company/project.git",
	},
	CommandInit: {
		Command:     "git init",
		Title:       "Initialize a repository",
		Description: "Creates a new Git repository in the current directory.",
		Example:     "git init",
	},
	CommandStatus: {
		Command:     "git status",
		Title:       "Check repository status",
		Description: "Shows which files have been modified, staged, or are untracked.",
		Example:     "git status",
	},
	CommandAdd: {
		Command:     "git add",
		Title:       "Stage changes",
		Description: "Adds files to the staging area for the next commit.",
		Example:     "git add src/feature.ts  # Stage specific file\ngit add .  # Stage all changes",
	},
	CommandCommit: {
		Command:     "git commit",
		Title:       "Commit changes",
		Description: "Records staged changes with a descriptive message.",
		Example:     `git commit -m "Add user authentication feature"`,
	},
	CommandPush: {
		Command:     "git push",
		Title:       "Push to remote",
		Description: "Uploads local commits to the remote repository.",
		Example:     "git push origin feature/login",
	},
	CommandPull: {
		Command:     "git pull",
		Title:       "Pull from remote",
		Description: "Downloads and merges changes from the remote repository.",
		Example:     "git pull origin main",
	},
	CommandBranch: {
		Command:     "git branch",
		Title:       "Manage branches",
		Description: "Creates, lists, or deletes branches.",
		Example:     "git branch feature/new-feature  # Create branch\ngit branch -d old-branch  # Delete branch",
	},
	CommandCheckout: {
		Command:     "git checkout",
		Title:       "Switch branches",
		Description: "Switches to a different branch or restores files.",
		Example:     "git checkout -b feature/login  # Create and switch to new branch\ngit checkout main  # Switch to existing branch",
	},
	CommandMerge: {
		Command:     "git merge",
		Title:       "Merge branches",
		Description: "Combines changes from another branch into the current branch.",
		Example:     "git merge feature/login  # Merge feature branch into current branch",
	},
	CommandLog: {
		Command:     "git log",
		Title:       "View commit history",
		Description: "Shows the commit history of the repository.",
		Example:     "git log --oneline  # Compact view\ngit log -n 5  # Last 5 commits",
	},
	CommandDiff: {
		Command:     "git diff",
		Title:       "View changes",
		Description: "Shows differences between commits, branches, or working tree.",
		Example:     "git diff  # Unstaged changes\ngit diff --staged  # Staged changes",
	},
	CommandFetch: {
		Command:     "git fetch",
		Title:       "Fetch from remote",
		Description: "Downloads changes from remote without merging.",
		Example:     "git fetch origin",
	},
	CommandStash: {
		Command:     "git stash",
		Title:       "Stash changes",
		Description: "Temporarily stores uncommitted changes.",
		Example:     "git stash  # Save changes\ngit stash pop  # Restore changes",
	},
}

var branchConventions = []Convention{
	{Prefix: "feature/", Description: "For new features", Example: "feature/PROJ-123-user-login"},
	{Prefix: "bugfix/", Description: "For bug fixes", Example: "bugfix/PROJ-456-fix-null-error"},
	{Prefix: "hotfix/", Description: "For urgent production fixes", Example: "hotfix/PROJ-789-security-patch"},
	{Prefix: "refactor/", Description: "For code refactoring", Example: "refactor/PROJ-101-cleanup-utils"},
	{Prefix: "chore/", Description: "For maintenance tasks", Example: "chore/PROJ-202-update-deps"},
}

var branchPractices = []string{
	"Use lowercase letters and hyphens",
	"Include ticket ID when available",
	"Keep names short but descriptive",
	"Avoid special characters",
}

var commitConventions = []Convention{
	{Prefix: "feat:", Description: "New feature", Example: "feat: add user authentication"},
	{Prefix: "fix:", Description: "Bug fix", Example: "fix: resolve null pointer in login"},
	{Prefix: "docs:", Description: "Documentation", Example: "docs: update README setup guide"},
	{Prefix: "style:", Description: "Formatting", Example: "style: format code with prettier"},
	{Prefix: "refactor:", Description: "Code refactoring", Example: "refactor: simplify auth middleware"},
	{Prefix: "test:", Description: "Adding tests", Example: "test: add unit tests for user service"},
	{Prefix: "chore:", Description: "Maintenance", Example: "chore: update dependencies"},
}

var commitPractices = []string{
	"Use imperative mood (add, not added)",
	"Keep subject line under 50 characters",
	"Separate subject from body with blank line",
	"Explain what and why, not how",
}

// GetTip returns the usage card for a command kind.
func GetTip(kind CommandKind) (Tip, bool) {
	tip, ok := tips[kind]
	return tip, ok
}

// Tips returns every usage card in command order.
func Tips() []Tip {
	out := make([]Tip, 0, len(commandKinds))
	for _, kind := range commandKinds {
		out = append(out, tips[kind])
	}
	return out
}

// BranchNamingGuide returns the branch prefix conventions.
func BranchNamingGuide() Guide {
	return Guide{
		Patterns:      append([]Convention{}, branchConventions...),
		BestPractices: append([]string{}, branchPractices...),
	}
}

// CommitMessageGuide returns the conventional commit types.
func CommitMessageGuide() Guide {
	return Guide{
		Patterns:      append([]Convention{}, commitConventions...),
		BestPractices: append([]string{}, commitPractices...),
	}
}

func example(kind CommandKind) string {
	return tips[kind].Example
}
