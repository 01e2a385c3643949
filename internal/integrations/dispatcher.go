package integrations

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aamad-labs/aamad/internal/agentsmd"
	"github.com/aamad-labs/aamad/internal/bundle"
	"github.com/aamad-labs/aamad/internal/convert"
	"github.com/aamad-labs/aamad/internal/logger"
)

// InstallOptions configures Install.
type InstallOptions struct {
	Overwrite     bool
	DryRun        bool
	MergeSettings bool
	RuleStyle     convert.RuleStyle
	// Version is recorded in the install stamp.
	Version string
	// Bundle overrides the embedded bundle.
	Bundle *bundle.Installer
}

// Install materializes the artifact bundle into dest for tool and returns
// every created path, or every path that would be created with DryRun:
// bundle members, the converted layout, AGENTS.md and the install stamp.
func Install(ctx context.Context, tool ToolName, dest string, opts InstallOptions) ([]string, error) {
	if _, ok := toolRegistry[tool]; !ok {
		return nil, fmt.Errorf("unknown IDE: %s", tool)
	}
	dest, err := filepath.Abs(dest)
	if err != nil {
		return nil, fmt.Errorf("resolving destination %s: %w", dest, err)
	}

	log := logger.L.WithField("ide", tool).WithField("dest", dest)

	installer := opts.Bundle
	if installer == nil {
		installer = bundle.Default()
	}

	c := Converter(tool)
	if c != nil && !opts.Overwrite && !opts.DryRun {
		if err := convert.Preflight(c, dest); err != nil {
			return nil, err
		}
	}

	paths, err := installer.Extract(ctx, dest, opts.Overwrite, opts.DryRun)
	if err != nil {
		return paths, fmt.Errorf("extracting bundle: %w", err)
	}
	log.WithField("files", len(paths)).Debug("bundle ready")

	if c != nil {
		if opts.DryRun {
			paths = append(paths, c.Planned(dest, opts.RuleStyle)...)
		} else {
			converted, err := convert.Run(ctx, c, convert.Options{
				Source:        dest,
				Dest:          dest,
				Overwrite:     opts.Overwrite,
				MergeSettings: opts.MergeSettings,
				RuleStyle:     opts.RuleStyle,
			})
			paths = append(paths, converted...)
			if err != nil {
				return paths, err
			}
		}
	}

	agents, err := agentsmd.Write(dest, AgentsDirNote(tool), opts.Overwrite, opts.DryRun)
	if err != nil {
		return paths, err
	}
	paths = append(paths, agents)

	if opts.DryRun {
		return append(paths, bundle.StampPath(dest)), nil
	}

	stamp, err := bundle.WriteStamp(dest, bundle.Stamp{
		Version:     opts.Version,
		IDE:         string(tool),
		InstalledAt: time.Now().UTC(),
		Files:       relativeTo(dest, paths),
	})
	if err != nil {
		return paths, err
	}
	log.WithField("files", len(paths)).Info("install complete")
	return append(paths, stamp), nil
}

func relativeTo(base string, paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if rel, err := filepath.Rel(base, p); err == nil {
			p = filepath.ToSlash(rel)
		}
		out = append(out, p)
	}
	return out
}
