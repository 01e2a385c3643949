package convert

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aamad-labs/aamad/internal/catalog"
	"github.com/aamad-labs/aamad/internal/logger"
)

// Options configures a conversion run.
type Options struct {
	// Source is the project root containing .cursor/.
	Source string
	// Dest is the root the target layout is written under.
	Dest string
	// Overwrite allows writing into output roots that already hold files.
	Overwrite bool
	// MergeSettings keeps unrelated keys of an existing settings document.
	MergeSettings bool
	// RuleStyle is used by converters that support more than one rule layout.
	// Empty means StyleSplit.
	RuleStyle RuleStyle
}

// Run converts the Cursor tree under opts.Source into c's layout under
// opts.Dest: rules, then agents and the prompt when their directories
// exist, then settings. It returns every written path in that order.
//
// A missing rules directory fails with ErrSourceNotFound. Unless
// opts.Overwrite is set, an output root of c that already contains a file
// fails with ErrAlreadyExists before anything is written.
func Run(ctx context.Context, c Converter, opts Options) ([]string, error) {
	dest, err := filepath.Abs(opts.Dest)
	if err != nil {
		return nil, fmt.Errorf("resolving destination %s: %w", opts.Dest, err)
	}
	style := opts.RuleStyle
	if style == "" {
		style = StyleSplit
	}

	rulesDir := filepath.Join(opts.Source, catalog.RulesDir)
	if !isDir(rulesDir) {
		return nil, fmt.Errorf("rules directory %s: %w", rulesDir, ErrSourceNotFound)
	}

	if !opts.Overwrite {
		if err := Preflight(c, dest); err != nil {
			return nil, err
		}
	}

	log := logger.L.WithField("ide", c.Name())

	created, err := c.ConvertRules(ctx, rulesDir, dest, style)
	if err != nil {
		return created, fmt.Errorf("converting rules: %w", err)
	}

	agentsDir := filepath.Join(opts.Source, catalog.AgentsDir)
	if isDir(agentsDir) {
		paths, err := c.ConvertAgents(ctx, agentsDir, dest)
		created = append(created, paths...)
		if err != nil {
			return created, fmt.Errorf("converting agents: %w", err)
		}
	} else {
		log.Debug("no agents directory, skipping agents")
	}

	promptsDir := filepath.Join(opts.Source, catalog.PromptsDir)
	if isDir(promptsDir) {
		paths, err := c.ConvertPrompt(ctx, promptsDir, dest)
		created = append(created, paths...)
		if err != nil {
			return created, fmt.Errorf("converting prompt: %w", err)
		}
	} else {
		log.Debug("no prompts directory, skipping prompt")
	}

	settings, err := c.WriteSettings(dest, opts.MergeSettings)
	if err != nil {
		return created, fmt.Errorf("writing settings: %w", err)
	}
	created = append(created, settings)

	log.WithField("files", len(created)).Info("conversion complete")
	return created, nil
}

// Preflight fails with ErrAlreadyExists when any of c's output roots under
// dest contains at least one regular file.
func Preflight(c Converter, dest string) error {
	for _, root := range c.OutputRoots() {
		dir := filepath.Join(dest, root)
		populated, err := hasFiles(dir)
		if err != nil {
			return fmt.Errorf("checking %s: %w", dir, err)
		}
		if populated {
			return fmt.Errorf("%s contains files, use overwrite to replace them: %w", dir, ErrAlreadyExists)
		}
	}
	return nil
}

func hasFiles(dir string) (bool, error) {
	found := false
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			found = true
			return fs.SkipAll
		}
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return found, err
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
