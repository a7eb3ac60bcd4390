package todo

import "github.com/sirupsen/logrus"

// AddTask appends a task to a project, selects that project, and saves.
// The task's ProjectID is set to projectID. ok is false when the project
// does not exist.
func (r *Repository) AddTask(t Task, projectID string) (Task, bool, error) {
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	if err := ValidateTask(&t); err != nil {
		return Task{}, false, err
	}

	i := r.projectIndex(projectID)
	if i < 0 {
		r.logger.WithField("project_id", projectID).Warn("could not add task; project not found")
		return Task{}, false, nil
	}
	r.currentID = r.projects[i].ID

	if t.ID == "" {
		t.ID = NewID()
	}
	t.ProjectID = r.projects[i].ID
	r.projects[i].AddTask(t)

	r.logger.WithFields(logrus.Fields{
		"project_id": t.ProjectID,
		"task_id":    t.ID,
	}).Info("task added")
	return t, true, r.save()
}

// RemoveTask removes a task from a project. Nothing is saved unless a task
// was removed.
func (r *Repository) RemoveTask(taskID, projectID string) (bool, error) {
	i := r.projectIndex(projectID)
	if i < 0 {
		r.logger.WithField("project_id", projectID).Warn("could not remove task; project not found")
		return false, nil
	}

	fields := logrus.Fields{"project_id": projectID, "task_id": taskID}
	if !r.projects[i].RemoveTask(taskID) {
		r.logger.WithFields(fields).Warn("could not remove task; task not found")
		return false, nil
	}

	r.logger.WithFields(fields).Info("task removed")
	return true, r.save()
}

// ToggleTaskComplete flips a task's completion state and saves.
func (r *Repository) ToggleTaskComplete(taskID, projectID string) (Task, bool, error) {
	t, ok := r.task(taskID, projectID, "toggle")
	if !ok {
		return Task{}, false, nil
	}

	t.ToggleComplete()
	r.logger.WithFields(logrus.Fields{
		"project_id": projectID,
		"task_id":    taskID,
		"completed":  t.Completed,
	}).Info("task completion toggled")
	return *t, true, r.save()
}

// UpdateTask applies a partial update to a task and saves. The patch is
// validated before anything changes.
func (r *Repository) UpdateTask(taskID, projectID string, patch TaskPatch) (Task, bool, error) {
	if err := patch.validate(); err != nil {
		return Task{}, false, err
	}

	t, ok := r.task(taskID, projectID, "update")
	if !ok {
		return Task{}, false, nil
	}
	if patch.IsEmpty() {
		return *t, true, nil
	}

	patch.apply(t)
	r.logger.WithFields(logrus.Fields{
		"project_id": projectID,
		"task_id":    taskID,
	}).Info("task updated")
	return *t, true, r.save()
}

// FindTask returns the task with the given ID from any project.
func (r *Repository) FindTask(taskID string) (Task, bool) {
	for i := len(r.projects) - 1; i >= 0; i-- {
		if t, ok := r.projects[i].Task(taskID); ok {
			return t, true
		}
	}
	return Task{}, false
}

// task returns a pointer into the owning project's task list.
func (r *Repository) task(taskID, projectID, action string) (*Task, bool) {
	i := r.projectIndex(projectID)
	if i < 0 {
		r.logger.WithField("project_id", projectID).Warnf("could not %s task; project not found", action)
		return nil, false
	}

	j := r.projects[i].taskIndex(taskID)
	if j < 0 {
		r.logger.WithFields(logrus.Fields{
			"project_id": projectID,
			"task_id":    taskID,
		}).Warnf("could not %s task; task not found", action)
		return nil, false
	}
	return &r.projects[i].Todos[j], true
}
