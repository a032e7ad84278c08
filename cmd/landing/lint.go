package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-landing/pkg/content"
	"github.com/goliatone/go-landing/pkg/validation"
)

type violation struct {
	file  string
	issue validation.Issue
}

func newLintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Check content files for missing or suspicious fields",
		Long: `lint reports empty titles, labels and marquee words as errors, and
duplicate card keys or unknown button variants as warnings. Without paths it
checks the configured content file, or the embedded defaults.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 && a.cfg.Content != "" {
				paths = []string{a.cfg.Content}
			}

			var violations []violation
			invalid := false
			if len(paths) == 0 {
				result := validation.ValidateYAML(content.DefaultYAML())
				invalid = !result.Valid
				violations = appendIssues(violations, "defaults", result)
			}
			for _, path := range paths {
				raw, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("lint %s: %w", path, err)
				}
				result := validation.ValidateYAML(raw)
				if !result.Valid {
					invalid = true
				}
				violations = appendIssues(violations, path, result)
			}

			sort.SliceStable(violations, func(i, j int) bool {
				if violations[i].file == violations[j].file {
					return violations[i].issue.Path < violations[j].issue.Path
				}
				return violations[i].file < violations[j].file
			})
			for _, v := range violations {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s %s -> %s\n", v.file, v.issue.Severity, v.issue.Field, v.issue.Message)
			}
			if invalid {
				return fmt.Errorf("lint: %d issue(s) found", len(violations))
			}
			return nil
		},
	}
}

func appendIssues(out []violation, file string, result validation.Result) []violation {
	for _, issue := range result.Issues {
		out = append(out, violation{file: file, issue: issue})
	}
	return out
}
