package handlers

import (
	"context"
	"fmt"

	"github.com/sitekeeper/sitekeeper/pkg/models"
	"github.com/sitekeeper/sitekeeper/pkg/workflow"
)

// TestOrchestration runs a multi-stage smoke sequence across the fleet: a
// sequential dispatch to every online agent, then two parallel node-actions,
// verifying readiness, dispatch, progress and flush end to end without
// touching any managed service.
type TestOrchestration struct {
	sequentialOK bool
	parallelOK   bool
}

func (h *TestOrchestration) Execute(ctx context.Context, run *workflow.MasterActionContext) error {
	run.InitializeProgress(3)

	if err := h.sequentialStage(ctx, run); err != nil {
		return err
	}
	if err := h.parallelStage(ctx, run); err != nil {
		return err
	}

	stage := run.BeginStage(ctx, "Summary", nil)
	defer stage.Close(ctx)

	summary := map[string]any{
		"sequentialPassed": h.sequentialOK,
		"parallelPassed":   h.parallelOK,
	}
	stage.SetCustomResult(summary)
	run.Action.SetResult(summary)
	stage.ReportProgress(100, "summary recorded")

	if !h.sequentialOK || !h.parallelOK {
		run.SetFailed(ctx, fmt.Sprintf("orchestration smoke failed: sequential=%t parallel=%t",
			h.sequentialOK, h.parallelOK))
		return nil
	}
	run.SetCompleted(ctx, "orchestration smoke passed")
	return nil
}

func (h *TestOrchestration) sequentialStage(ctx context.Context, run *workflow.MasterActionContext) error {
	stage := run.BeginStage(ctx, "Sequential dispatch", nil)
	defer stage.Close(ctx)

	res, err := stage.RunNodeAction(ctx, workflow.NodeActionSpec{
		ActionName: "smoke-sequential",
		TaskType:   models.TaskTypeTestOrchestration,
	})
	if err != nil {
		return err
	}
	h.sequentialOK = res.Success
	stage.Log(ctx, models.LevelInformation,
		fmt.Sprintf("Sequential smoke: %s", res.FinalState.StatusMessage), nil)
	return nil
}

func (h *TestOrchestration) parallelStage(ctx context.Context, run *workflow.MasterActionContext) error {
	stage := run.BeginStage(ctx, "Parallel dispatch", nil)
	defer stage.Close(ctx)

	results, err := stage.RunNodeActionsInParallel(ctx, []workflow.NodeActionSpec{
		{ActionName: "smoke-parallel-a", TaskType: models.TaskTypeTestOrchestration},
		{ActionName: "smoke-parallel-b", TaskType: models.TaskTypeTestOrchestration},
	})
	if err != nil {
		return err
	}

	h.parallelOK = true
	for _, res := range results {
		if !res.Success {
			h.parallelOK = false
			stage.Log(ctx, models.LevelWarning,
				fmt.Sprintf("Parallel smoke action %s failed: %s",
					res.FinalState.ActionName, res.FinalState.StatusMessage), nil)
		}
	}
	return nil
}
