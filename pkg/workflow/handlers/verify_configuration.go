// Package handlers contains the built-in workflow definitions shipped with
// the master. Each handler is registered by operation type and constructed
// fresh per invocation.
package handlers

import (
	"context"
	"fmt"

	"github.com/sitekeeper/sitekeeper/pkg/models"
	"github.com/sitekeeper/sitekeeper/pkg/workflow"
)

// Register binds all built-in workflows into the registry.
func Register(reg *workflow.HandlerRegistry) {
	reg.Register(models.OpVerifyConfiguration, func() workflow.Handler {
		return &VerifyConfiguration{}
	})
	reg.Register(models.OpTestOrchestration, func() workflow.Handler {
		return &TestOrchestration{}
	})
}

// VerifyConfiguration fans a configuration check out to every online agent
// and aggregates the per-node verification results.
type VerifyConfiguration struct {
	filesChecked    int
	deviationsFound int
}

func (h *VerifyConfiguration) Execute(ctx context.Context, run *workflow.MasterActionContext) error {
	run.InitializeProgress(2)

	if err := h.prepare(ctx, run); err != nil {
		return err
	}

	stage := run.BeginStage(ctx, "Verify configuration", nil)
	defer stage.Close(ctx)

	res, err := stage.RunNodeAction(ctx, workflow.NodeActionSpec{
		ActionName: "verify-configuration",
		TaskType:   models.TaskTypeVerifyConfiguration,
		Nodes:      targetNodes(run.Action.Parameters),
	})
	if err != nil {
		return err
	}

	for _, task := range res.FinalState.Tasks {
		h.filesChecked += intResult(task.Result, "filesChecked")
		h.deviationsFound += intResult(task.Result, "deviationsFound")
	}
	summary := map[string]any{
		"filesChecked":    h.filesChecked,
		"deviationsFound": h.deviationsFound,
		"nodesChecked":    len(res.FinalState.Tasks),
	}
	stage.SetCustomResult(summary)
	run.Action.SetResult(summary)

	if !res.Success {
		run.SetFailed(ctx, res.FinalState.StatusMessage)
		return nil
	}
	if h.deviationsFound > 0 {
		run.SetFailed(ctx, fmt.Sprintf("%d configuration deviations found", h.deviationsFound))
		return nil
	}
	run.SetCompleted(ctx, fmt.Sprintf("%d files verified on %d nodes",
		h.filesChecked, len(res.FinalState.Tasks)))
	return nil
}

func (h *VerifyConfiguration) prepare(ctx context.Context, run *workflow.MasterActionContext) error {
	stage := run.BeginStage(ctx, "Preparation", nil)
	defer stage.Close(ctx)

	stage.Log(ctx, models.LevelInformation, "Resolving verification targets", nil)
	stage.ReportProgress(100, "targets resolved")
	return nil
}

// targetNodes reads the optional "node" parameter. An absent or empty value
// targets all online agents.
func targetNodes(params map[string]string) []string {
	node, ok := params["node"]
	if !ok || node == "" {
		return nil
	}
	return []string{node}
}

func intResult(result map[string]any, key string) int {
	switch v := result[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}
