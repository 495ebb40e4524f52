package coordinator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/sitekeeper/sitekeeper/pkg/models"
	"github.com/sitekeeper/sitekeeper/pkg/registry"
)

// mailboxBuffer sizes the per-action event mailbox. Posting blocks when
// full, which backpressures the per-agent read loops instead of dropping
// protocol events.
const mailboxBuffer = 256

type eventKind int

const (
	evReadiness eventKind = iota
	evProgress
	evConnectivity
)

// event is one unit of work for an action's mailbox.
type event struct {
	kind      eventKind
	readiness models.ReportTaskReadiness
	progress  models.ReportTaskProgress
	conn      registry.ConnectivityEvent
}

// actionRun is the state machine of one active node-action. All task state
// is owned by the loop goroutine; nothing else touches it until the future
// resolves.
type actionRun struct {
	c          *Coordinator
	action     *models.NodeAction
	stageIndex int
	progress   ProgressFunc
	future     *Future
	mailbox    chan event
	tasks      map[string]*models.NodeTask
	log        *slog.Logger

	cancelling bool
}

func (r *actionRun) post(evt event) {
	r.mailbox <- evt
}

// loop drives the action from readiness checks to a resolved verdict.
func (r *actionRun) loop(parentCtx context.Context) {
	defer r.c.remove(r.action.ID)

	r.action.Status = models.StatusAwaitingNodeReadiness
	r.action.StartedAt = time.Now().UTC()
	r.sendReadinessChecks()
	r.recomputeAggregate()

	readinessTimer := time.NewTimer(r.c.timeouts.Readiness)
	defer readinessTimer.Stop()
	readinessC := readinessTimer.C

	// graceC stays nil until cancellation starts.
	var graceTimer *time.Timer
	var graceC <-chan time.Time
	defer func() {
		if graceTimer != nil {
			graceTimer.Stop()
		}
	}()
	ctxDone := parentCtx.Done()

	for !r.allTerminal() {
		select {
		case evt := <-r.mailbox:
			switch evt.kind {
			case evReadiness:
				r.applyReadiness(evt.readiness)
			case evProgress:
				r.applyProgress(evt.progress)
			case evConnectivity:
				r.applyConnectivity(evt.conn)
			}
		case <-readinessC:
			readinessC = nil
			r.expireReadiness()
		case <-ctxDone:
			ctxDone = nil
			r.beginCancellation()
			graceTimer = time.NewTimer(r.c.timeouts.CancellationGrace)
			graceC = graceTimer.C
		case <-graceC:
			graceC = nil
			r.forceCancel()
		}
		r.recomputeAggregate()
	}

	r.finalize()
}

// sendReadinessChecks issues PrepareForTask to every task's node.
func (r *actionRun) sendReadinessChecks() {
	for _, task := range r.action.Tasks {
		task.Status = models.TaskReadinessCheckSent
		task.UpdatedAt = time.Now().UTC()

		env, err := models.NewEnvelope(models.MsgPrepareForTask, models.PrepareForTask{
			ActionID:         r.action.ID,
			TaskID:           task.ID,
			ExpectedTaskType: task.TaskType,
			PrepParamsJSON:   marshalPayload(task.Payload),
		})
		if err == nil {
			err = r.c.sender.Send(task.Node, env)
		}
		if err != nil {
			r.log.Warn("Readiness check undeliverable",
				"task_id", task.ID, "node", task.Node, "error", err)
			r.setTerminal(task, models.TaskNotReadyForTask,
				fmt.Sprintf("readiness check could not be delivered: %v", err), time.Now().UTC())
		}
	}
}

// expireReadiness times out tasks whose node never answered the check.
func (r *actionRun) expireReadiness() {
	now := time.Now().UTC()
	for _, task := range r.action.Tasks {
		if task.Status == models.TaskReadinessCheckSent {
			r.log.Warn("Readiness check timed out", "task_id", task.ID, "node", task.Node)
			r.setTerminal(task, models.TaskReadinessCheckTimedOut,
				"node did not answer the readiness check in time", now)
		}
	}
}

// applyReadiness handles a ReportTaskReadiness event. Only tasks still in
// ReadinessCheckSent react; duplicates and late reports are no-ops.
func (r *actionRun) applyReadiness(rep models.ReportTaskReadiness) {
	task, ok := r.tasks[rep.TaskID]
	if !ok {
		r.log.Warn("Readiness report for unknown task", "task_id", rep.TaskID)
		return
	}
	if task.Status != models.TaskReadinessCheckSent {
		return
	}
	now := time.Now().UTC()

	if !rep.Ready {
		r.setTerminal(task, models.TaskNotReadyForTask, rep.Reason, now)
		return
	}

	task.Status = models.TaskReadyToExecute
	task.UpdatedAt = now

	env, err := models.NewEnvelope(models.MsgAssignSlaveTask, models.AssignSlaveTask{
		ActionID:   r.action.ID,
		TaskID:     task.ID,
		TaskType:   task.TaskType,
		ParamsJSON: marshalPayload(task.Payload),
	})
	if err == nil {
		err = r.c.sender.Send(task.Node, env)
	}
	if err != nil {
		r.log.Warn("Task dispatch failed", "task_id", task.ID, "node", task.Node, "error", err)
		r.setTerminal(task, models.TaskFailed,
			fmt.Sprintf("task dispatch failed: %v", err), now)
		return
	}

	task.Status = models.TaskDispatched
	task.UpdatedAt = time.Now().UTC()
	if r.action.Status == models.StatusAwaitingNodeReadiness {
		r.action.Status = models.StatusRunning
	}
}

// applyProgress handles a ReportTaskProgress event. Terminal sub-statuses
// are sticky: updates for an already-terminal task are dropped.
func (r *actionRun) applyProgress(rep models.ReportTaskProgress) {
	task, ok := r.tasks[rep.TaskID]
	if !ok {
		r.log.Warn("Progress update for unknown task", "task_id", rep.TaskID)
		return
	}
	if task.Status.IsTerminal() {
		return
	}

	status, err := models.ParseNodeTaskStatus(rep.Status)
	if err != nil {
		r.log.Warn("Progress update with unknown status",
			"task_id", rep.TaskID, "status", rep.Status)
		return
	}

	if rep.Percent != nil {
		task.Progress = clampPercent(*rep.Percent)
	}
	task.Status = status
	task.StatusMessage = rep.Message
	task.UpdatedAt = rep.Timestamp

	if !status.IsTerminal() {
		return
	}

	if status == models.TaskSucceeded {
		task.Progress = 100
	}
	endedAt := rep.Timestamp
	task.EndedAt = &endedAt
	if rep.ResultJSON != "" {
		result := make(map[string]any)
		if err := json.Unmarshal([]byte(rep.ResultJSON), &result); err != nil {
			r.log.Warn("Task result payload undecodable, leaving empty",
				"task_id", task.ID, "error", err)
		} else {
			task.Result = result
		}
	}
	r.c.journal.NodeTaskResult(context.Background(), r.action.ID, r.stageIndex, task)
}

// applyConnectivity marks non-terminal tasks on a lost node terminal.
func (r *actionRun) applyConnectivity(evt registry.ConnectivityEvent) {
	for _, task := range r.action.Tasks {
		if task.Node != evt.Node || task.Status.IsTerminal() {
			continue
		}
		r.log.Warn("Node lost during task",
			"task_id", task.ID, "node", task.Node, "connectivity", evt.State)
		r.setTerminal(task, models.TaskNodeOfflineDuringTask, string(evt.State), evt.At)
	}
}

// beginCancellation starts the cancellation protocol: every non-terminal
// task transitions to Cancelling and its node receives CancelTask.
func (r *actionRun) beginCancellation() {
	r.cancelling = true
	r.action.Status = models.StatusCancelling
	r.log.Info("Cancellation signalled, notifying nodes")

	for _, task := range r.action.Tasks {
		if task.Status.IsTerminal() {
			continue
		}
		task.Status = models.TaskCancelling
		task.UpdatedAt = time.Now().UTC()

		env, err := models.NewEnvelope(models.MsgCancelTask, models.CancelTask{
			ActionID: r.action.ID,
			TaskID:   task.ID,
			Reason:   "master action cancelled",
		})
		if err == nil {
			err = r.c.sender.Send(task.Node, env)
		}
		if err != nil {
			// The node is gone; a connectivity event or the grace window
			// will settle this task.
			r.log.Warn("Cancel request undeliverable",
				"task_id", task.ID, "node", task.Node, "error", err)
		}
	}
}

// forceCancel settles tasks that did not confirm within the grace window.
func (r *actionRun) forceCancel() {
	now := time.Now().UTC()
	for _, task := range r.action.Tasks {
		if task.Status.IsTerminal() {
			continue
		}
		r.log.Warn("Task did not confirm cancellation in time, forcing",
			"task_id", task.ID, "node", task.Node)
		r.setTerminal(task, models.TaskCancelled,
			"cancellation grace period elapsed without confirmation", now)
	}
}

// setTerminal applies a master-side terminal transition and journals the
// task result.
func (r *actionRun) setTerminal(task *models.NodeTask, status models.NodeTaskStatus, message string, at time.Time) {
	task.Status = status
	task.StatusMessage = message
	task.UpdatedAt = at
	task.EndedAt = &at
	r.c.journal.NodeTaskResult(context.Background(), r.action.ID, r.stageIndex, task)
}

func (r *actionRun) allTerminal() bool {
	for _, task := range r.action.Tasks {
		if !task.Status.IsTerminal() {
			return false
		}
	}
	return true
}

// recomputeAggregate refreshes the action's progress and status message and
// reports them upward.
func (r *actionRun) recomputeAggregate() {
	sum := 0
	for _, task := range r.action.Tasks {
		sum += task.Progress
	}
	r.action.Progress = sum / len(r.action.Tasks)
	r.action.StatusMessage = r.aggregateMessage()
	r.progress(r.action.Progress, r.action.StatusMessage)
}

func (r *actionRun) aggregateMessage() string {
	var inProgress, succeeded, failed int
	for _, task := range r.action.Tasks {
		switch {
		case !task.Status.IsTerminal():
			inProgress++
		case task.Status == models.TaskSucceeded:
			succeeded++
		default:
			failed++
		}
	}
	return fmt.Sprintf("In progress: %d, Succeeded: %d, Failed/Cancelled: %d",
		inProgress, succeeded, failed)
}

// finalize computes the verdict, runs the flush barrier, and resolves the
// future.
func (r *actionRun) finalize() {
	verdict := models.StatusSucceeded
	anyCancelled := false
	anyNotSucceeded := false
	for _, task := range r.action.Tasks {
		switch task.Status {
		case models.TaskCancelled, models.TaskCancelling:
			anyCancelled = true
		case models.TaskSucceeded:
		default:
			anyNotSucceeded = true
		}
	}
	switch {
	case anyCancelled:
		verdict = models.StatusCancelled
	case anyNotSucceeded:
		verdict = models.StatusFailed
	}

	now := time.Now().UTC()
	r.action.Status = verdict
	r.action.Progress = 100
	r.action.EndedAt = &now
	r.action.StatusMessage = r.aggregateMessage()
	r.progress(100, r.action.StatusMessage)

	r.log.Info("Node-action converged", "verdict", verdict,
		"status_message", r.action.StatusMessage)

	// Flush barrier: every participating node syncs its logs before the
	// owning stage may journal completion. Uses a background context — the
	// barrier must run even when the parent was cancelled.
	nodes := r.participatingNodes()
	if err := r.c.flusher.RequestFlush(r.action.ID, nodes); err != nil {
		r.log.Warn("Flush barrier could not start", "error", err)
	} else if _, err := r.c.flusher.WaitForFlush(context.Background(), r.action.ID); err != nil {
		r.log.Warn("Flush barrier wait failed", "error", err)
	}

	r.future.resolve(models.NodeActionResult{
		Success:    verdict == models.StatusSucceeded,
		FinalState: r.action,
	})
}

func (r *actionRun) participatingNodes() []string {
	seen := make(map[string]bool, len(r.action.Tasks))
	nodes := make([]string, 0, len(r.action.Tasks))
	for _, task := range r.action.Tasks {
		if !seen[task.Node] {
			seen[task.Node] = true
			nodes = append(nodes, task.Node)
		}
	}
	return nodes
}

func marshalPayload(payload map[string]string) string {
	if len(payload) == 0 {
		return ""
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return ""
	}
	return string(raw)
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
