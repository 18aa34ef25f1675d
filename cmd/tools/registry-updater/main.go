// cmd/tools/registry-updater/main.go
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"scholarship-matcher/internal/common/validation"
	"scholarship-matcher/pkg/registry"
)

const defaultPath = "configs/activity-registry.json"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var path string

	root := &cobra.Command{
		Use:           "registry-updater",
		Short:         "Maintain the activity registry read by the worker manager",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&path, "path", defaultPath, "Path to the registry file")

	root.AddCommand(
		exportCmd(&path),
		updateCmd(&path),
		validateCmd(&path),
	)
	return root
}

func exportCmd(path *string) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the built-in activity registry to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := registry.Default()
			reg.LastUpdated = time.Now().UTC().Format(time.RFC3339)
			if err := saveRegistry(reg, *path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d activities to %s\n", len(reg.Activities), *path)
			return nil
		},
	}
}

func updateCmd(path *string) *cobra.Command {
	var taskType, field, value string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a field of one activity",
		Long: `Update a field of one activity in the registry file.

Examples:
  registry-updater update --task-type match-scholarships --field timeout --value 60s
  registry-updater update --task-type notify-scholarship-matches --field retries --value 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := updateActivity(*path, taskType, field, value); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s = %s\n", taskType, field, value)
			return nil
		},
	}
	cmd.Flags().StringVar(&taskType, "task-type", "", "Task type to update")
	cmd.Flags().StringVar(&field, "field", "", "Field to update (version, description, timeout, retries)")
	cmd.Flags().StringVar(&value, "value", "", "New value for the field")
	_ = cmd.MarkFlagRequired("task-type")
	_ = cmd.MarkFlagRequired("field")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}

func validateCmd(path *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate a registry file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := validateRegistry(*path)
			if err != nil {
				return fmt.Errorf("registry validation failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registry validation passed. Found %d activities.\n", n)
			return nil
		},
	}
}

func updateActivity(path, taskType, field, value string) error {
	reg, err := registry.LoadRegistry(path)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	var target *registry.Activity
	for i := range reg.Activities {
		if reg.Activities[i].TaskType == taskType {
			target = &reg.Activities[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("activity with task type %s not found", taskType)
	}

	switch field {
	case "version":
		target.Version = value
	case "description":
		target.Description = value
	case "timeout":
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid timeout value: %w", err)
		}
		target.Timeout = value
	case "retries":
		retries, err := strconv.Atoi(value)
		if err != nil || retries < 0 {
			return fmt.Errorf("invalid retries value %q", value)
		}
		target.Retries = retries
	default:
		return fmt.Errorf("unknown field: %s", field)
	}

	reg.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	return saveRegistry(reg, path)
}

// validateRegistry checks task types and that every input schema compiles.
func validateRegistry(path string) (int, error) {
	reg, err := registry.LoadRegistry(path)
	if err != nil {
		return 0, fmt.Errorf("failed to load registry: %w", err)
	}

	seen := make(map[string]bool)
	for _, a := range reg.Activities {
		if seen[a.TaskType] {
			return 0, fmt.Errorf("duplicate task type: %s", a.TaskType)
		}
		seen[a.TaskType] = true

		if err := validation.ValidateTaskType(a.TaskType); err != nil {
			return 0, fmt.Errorf("activity %s: %w", a.ID, err)
		}
		if a.Timeout != "" {
			if _, err := time.ParseDuration(a.Timeout); err != nil {
				return 0, fmt.Errorf("activity %s: invalid timeout %q", a.ID, a.Timeout)
			}
		}
		if _, err := validation.ValidateInput(map[string]interface{}{}, a.InputSchema); err != nil {
			return 0, fmt.Errorf("activity %s: input schema: %w", a.ID, err)
		}
	}
	return len(reg.Activities), nil
}

func saveRegistry(reg *registry.ActivityRegistry, path string) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write registry file: %w", err)
	}
	return nil
}
