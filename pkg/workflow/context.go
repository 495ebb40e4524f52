package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sitekeeper/sitekeeper/pkg/coordinator"
	"github.com/sitekeeper/sitekeeper/pkg/journal"
	"github.com/sitekeeper/sitekeeper/pkg/logrouter"
	"github.com/sitekeeper/sitekeeper/pkg/models"
)

// NodeLister provides the set of currently online agents. Implemented by the
// agent registry.
type NodeLister interface {
	OnlineNodes() []string
}

// MasterActionContext is the stateful context a workflow handler executes
// against. It owns the master action, scopes logging to the action, tracks
// stage progression for overall progress math, and bridges the handler to
// the coordinator, journal and log router.
type MasterActionContext struct {
	Action *models.MasterAction

	log     *slog.Logger
	journal *journal.Service
	router  *logrouter.Router
	coord   *coordinator.Coordinator
	nodes   NodeLister

	mu          sync.Mutex
	totalStages int
	stageIndex  int // index of the most recently begun stage, 1-based
}

func newMasterActionContext(
	action *models.MasterAction,
	journalSvc *journal.Service,
	router *logrouter.Router,
	coord *coordinator.Coordinator,
	nodes NodeLister,
) *MasterActionContext {
	return &MasterActionContext{
		Action:  action,
		log:     slog.With("action_id", action.ID, "operation_type", action.OperationType),
		journal: journalSvc,
		router:  router,
		coord:   coord,
		nodes:   nodes,
	}
}

// InitializeProgress declares the number of stages the workflow will run.
// Called once by the handler before its first BeginStage.
func (c *MasterActionContext) InitializeProgress(totalStages int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.totalStages = totalStages
}

// BeginStage opens the next stage of the action, journals the stage-initiated
// record, and returns the stage context. The caller must close the stage on
// every exit path; Close journals the stage-completed record.
func (c *MasterActionContext) BeginStage(ctx context.Context, name string, input map[string]any) *StageContext {
	c.mu.Lock()
	c.stageIndex++
	index := c.stageIndex
	c.mu.Unlock()

	c.journal.StageInitiated(ctx, c.Action.ID, index, name, input)
	c.log.Info("Stage initiated", "stage_index", index, "stage_name", name)

	return &StageContext{
		run: c,
		stage: &models.Stage{
			Name:   name,
			Index:  index,
			Input:  input,
			Status: models.StatusRunning,
		},
		log: c.log.With("stage_index", index, "stage_name", name),
	}
}

// SetCompleted marks the action Succeeded and journals the terminal record.
func (c *MasterActionContext) SetCompleted(ctx context.Context, msg string) {
	c.complete(ctx, models.StatusSucceeded, msg)
}

// SetFailed marks the action Failed and journals the terminal record.
func (c *MasterActionContext) SetFailed(ctx context.Context, msg string) {
	c.complete(ctx, models.StatusFailed, msg)
}

// SetCancelled marks the action Cancelled and journals the terminal record.
func (c *MasterActionContext) SetCancelled(ctx context.Context, msg string) {
	c.complete(ctx, models.StatusCancelled, msg)
}

func (c *MasterActionContext) complete(ctx context.Context, status models.OperationStatus, msg string) {
	if !c.Action.Complete(status) {
		c.log.Warn("Terminal setter called on already-terminal action",
			"requested_status", status, "current_status", c.Action.Status())
		return
	}
	c.appendLocalLog(models.LevelInformation, fmt.Sprintf("Action %s: %s", status, msg))
	c.log.Info("Action reached terminal status", "status", status, "message", msg)

	result, _ := c.Action.Result().(map[string]any)
	c.journal.ActionCompleted(ctx, c.Action.ID, status, result)
}

// reportStageProgress converts stage-local progress for the n-th of N stages
// into the action's overall percent: floor(((n-1)*100 + p) / N).
func (c *MasterActionContext) reportStageProgress(stageIndex, percent int) {
	c.mu.Lock()
	total := c.totalStages
	c.mu.Unlock()
	if total <= 0 {
		return
	}
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}
	overall := ((stageIndex-1)*100 + percent) / total
	c.Action.UpdateProgress(overall)
}

// appendLocalLog pushes a master-side line onto the action's recent-log
// buffer, formatted like routed agent lines.
func (c *MasterActionContext) appendLocalLog(level models.LogLevel, msg string) {
	c.Action.AppendLog(fmt.Sprintf("%s [%s] master: %s",
		time.Now().UTC().Format(time.RFC3339), level, msg))
}
