package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ai-task-scheduler/internal/model"
	repo "ai-task-scheduler/internal/task/repository"
)

// Timestamps are stored as RFC3339 strings; lexicographic order matches
// chronological order as long as all rows share one UTC offset, so rows are
// normalized to UTC on write and returned in local time on read.

// Insert persists a new task row and returns the task with its assigned id.
func (r *implRepository) Insert(ctx context.Context, opt repo.InsertTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO tasks (title, description, time, created_at)
		VALUES (?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		opt.Title, opt.Description,
		opt.Time.UTC().Format(time.RFC3339), opt.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Insert"), err)
		return model.Task{}, fmt.Errorf("%w: %v", repo.ErrStorage, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		r.l.Errorf(ctx, "%s: last insert id: %v", r.dsn("Insert"), err)
		return model.Task{}, fmt.Errorf("%w: %v", repo.ErrStorage, err)
	}

	return model.Task{
		ID:          id,
		Title:       opt.Title,
		Description: opt.Description,
		Time:        opt.Time,
		CreatedAt:   opt.CreatedAt,
	}, nil
}

// Update overwrites the full record. Unknown ids are rejected with
// ErrNotFound rather than upserted.
func (r *implRepository) Update(ctx context.Context, task model.Task) error {
	const query = `
		UPDATE tasks
		SET title = ?, description = ?, time = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		task.Title, task.Description, task.Time.UTC().Format(time.RFC3339), task.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Update"), err)
		return fmt.Errorf("%w: %v", repo.ErrStorage, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s: rows affected: %v", r.dsn("Update"), err)
		return fmt.Errorf("%w: %v", repo.ErrStorage, err)
	}
	if affected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// Delete removes a task row. Idempotent: unknown ids are not an error.
func (r *implRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM tasks WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Delete"), err)
		return fmt.Errorf("%w: %v", repo.ErrStorage, err)
	}
	return nil
}

// Get returns a single task by id.
func (r *implRepository) Get(ctx context.Context, id int64) (model.Task, error) {
	const query = `
		SELECT id, title, description, time, created_at
		FROM tasks WHERE id = ?`

	task, err := r.scanTask(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Get"), err)
		return model.Task{}, fmt.Errorf("%w: %v", repo.ErrStorage, err)
	}
	return task, nil
}

// ListSorted returns every task ordered by time ascending, id ascending.
// The ORDER BY is explicit; idx_tasks_time only speeds it up.
func (r *implRepository) ListSorted(ctx context.Context) ([]model.Task, error) {
	const query = `
		SELECT id, title, description, time, created_at
		FROM tasks
		ORDER BY time ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSorted"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrStorage, err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := r.scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s: scan: %v", r.dsn("ListSorted"), err)
			return nil, fmt.Errorf("%w: %v", repo.ErrStorage, err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repo.ErrStorage, err)
	}
	return tasks, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanTask(s scanner) (model.Task, error) {
	var (
		task            model.Task
		timeStr, cAtStr string
	)
	if err := s.Scan(&task.ID, &task.Title, &task.Description, &timeStr, &cAtStr); err != nil {
		return model.Task{}, err
	}

	var err error
	if task.Time, err = time.Parse(time.RFC3339, timeStr); err != nil {
		return model.Task{}, fmt.Errorf("corrupt time column for task %d: %w", task.ID, err)
	}
	if task.CreatedAt, err = time.Parse(time.RFC3339, cAtStr); err != nil {
		return model.Task{}, fmt.Errorf("corrupt created_at column for task %d: %w", task.ID, err)
	}

	task.Time = task.Time.Local()
	task.CreatedAt = task.CreatedAt.Local()
	return task, nil
}
