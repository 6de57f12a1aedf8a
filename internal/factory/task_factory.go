package factory

import (
	"fmt"

	"FlowVet/internal/config"
	"FlowVet/internal/model"

	"github.com/rs/zerolog"
)

// TaskGroup is a logical grouping of tasks and their associated writers.
type TaskGroup struct {
	Tasks   []model.Task
	Writers []model.Writer
}

// TaskFactory defines a function that creates a group of tasks and their writers.
type TaskFactory func(cfg *config.Config, log zerolog.Logger) (*TaskGroup, error)

// registry holds the mapping of task types to their factory functions.
var registry = make(map[string]TaskFactory)

// RegisterTaskType registers a new task type with its factory function.
func RegisterTaskType(name string, factory TaskFactory) {
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("task type '%s' already registered", name))
	}
	registry[name] = factory
}

// Create creates a list of TaskGroups based on the provided config.
func Create(cfg *config.Config, log zerolog.Logger) ([]TaskGroup, error) {
	var taskGroups []TaskGroup

	for _, taskType := range cfg.Engine.Types {
		log.Info().Str("type", taskType).Msg("Creating tasks and writers")

		factory, ok := registry[taskType]
		if !ok {
			return nil, fmt.Errorf("unknown task type: '%s'", taskType)
		}

		group, err := factory(cfg, log)
		if err != nil {
			return nil, fmt.Errorf("error creating task type '%s': %w", taskType, err)
		}

		taskGroups = append(taskGroups, *group)
	}

	return taskGroups, nil
}
