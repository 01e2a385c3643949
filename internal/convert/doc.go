// Package convert turns the Cursor artifact tree (.cursor/rules, .cursor/agents,
// .cursor/prompts) into the layouts of other IDEs. Each target IDE is a
// Converter; Run sequences one Converter over a source and destination root.
//
// Supported targets:
//
//	Claude Code      .claude/rules, .claude/CLAUDE.md, .claude/agents,
//	                 .claude/commands, .claude/settings.json
//	VS Code/Copilot  .github/instructions, .github/agents, .github/prompts,
//	                 .vscode/settings.json
//
// Missing optional sources are skipped. Only a missing rules directory and an
// already-populated destination are errors.
package convert
