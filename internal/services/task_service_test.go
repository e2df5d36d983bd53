package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/tareas/task-lifecycle-api/internal/models"
	"github.com/tareas/task-lifecycle-api/internal/policy"
	"github.com/tareas/task-lifecycle-api/internal/repository"
	"gorm.io/gorm"
)

// TaskServiceTestSuite defines the test suite for TaskService
type TaskServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	db      *gorm.DB
	store   repository.Store
	service *TaskService

	creator  policy.Actor
	assignee policy.Actor
	admin    policy.Actor
	stranger policy.Actor
}

// SetupTest runs before each test
func (s *TaskServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.db, s.store = newTestStore(s.T())
	s.service = NewTaskService(s.store)

	s.creator = createUser(s.T(), s.db, "creator", models.RoleUser)
	s.assignee = createUser(s.T(), s.db, "assignee", models.RoleUser)
	s.admin = createUser(s.T(), s.db, "admin", models.RoleAdmin)
	s.stranger = createUser(s.T(), s.db, "stranger", models.RoleUser)
}

func (s *TaskServiceTestSuite) TestCreateTask() {
	due := time.Date(2025, time.June, 1, 15, 0, 0, 0, time.UTC)

	task, err := s.service.CreateTask(s.ctx, CreateTaskInput{
		Title:        "  Preparar informe  ",
		Description:  ptr("trimestral"),
		DueDate:      &due,
		AssignedToID: s.assignee.ID,
	}, s.creator)
	s.Require().NoError(err)

	s.Equal("Preparar informe", task.Title)
	s.Equal(models.TaskStatusPending, task.Status)
	s.Equal(s.creator.ID, task.CreatedByID)
	s.Equal(s.assignee.ID, task.AssignedToID)
	s.Equal("creator", task.CreatedBy.Username)
	s.Equal("assignee", task.AssignedTo.Username)
	s.Require().NotNil(task.DueDate)
	s.True(due.Equal(*task.DueDate))
}

func (s *TaskServiceTestSuite) TestCreateTask_SelfAssigned() {
	task, err := s.service.CreateTask(s.ctx, CreateTaskInput{
		Title:        "Mine",
		AssignedToID: s.creator.ID,
	}, s.creator)
	s.Require().NoError(err)
	s.Equal(task.CreatedByID, task.AssignedToID)
}

func (s *TaskServiceTestSuite) TestCreateTask_Validation() {
	_, err := s.service.CreateTask(s.ctx, CreateTaskInput{Title: "   ", AssignedToID: s.assignee.ID}, s.creator)
	s.ErrorIs(err, ErrTitleRequired)
	s.ErrorIs(err, ErrBadRequest)

	_, err = s.service.CreateTask(s.ctx, CreateTaskInput{Title: "Task", AssignedToID: uuid.New()}, s.creator)
	s.ErrorIs(err, ErrAssigneeNotFound)
	s.ErrorIs(err, ErrNotFound)
}

func (s *TaskServiceTestSuite) TestGetTask_Visibility() {
	task := createTask(s.T(), s.db, "Task", s.creator.ID, s.assignee.ID, nil)

	for _, actor := range []policy.Actor{s.creator, s.assignee, s.admin} {
		got, err := s.service.GetTask(s.ctx, task.ID, actor)
		s.Require().NoError(err, actor.Username)
		s.Equal(task.ID, got.ID)
		s.Equal("creator", got.CreatedBy.Username)
	}

	_, err := s.service.GetTask(s.ctx, task.ID, s.stranger)
	s.ErrorIs(err, ErrCannotViewTask)
	s.ErrorIs(err, ErrForbidden)
}

func (s *TaskServiceTestSuite) TestGetTask_NotFoundBeforeForbidden() {
	_, err := s.service.GetTask(s.ctx, uuid.New(), s.stranger)
	s.ErrorIs(err, ErrTaskNotFound)
}

func (s *TaskServiceTestSuite) TestListCreatedBy_NewestFirst() {
	base := time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		task := &models.Task{
			Title:        title,
			CreatedByID:  s.creator.ID,
			AssignedToID: s.assignee.ID,
			CreatedAt:    base.Add(time.Duration(i) * time.Hour),
		}
		s.Require().NoError(s.db.Omit("CreatedBy", "AssignedTo").Create(task).Error)
	}
	createTask(s.T(), s.db, "other", s.stranger.ID, s.assignee.ID, nil)

	tasks, err := s.service.ListCreatedBy(s.ctx, s.creator.ID, TaskFilter{})
	s.Require().NoError(err)
	s.Require().Len(tasks, 3)
	s.Equal("third", tasks[0].Title)
	s.Equal("second", tasks[1].Title)
	s.Equal("first", tasks[2].Title)
}

func (s *TaskServiceTestSuite) TestListAssignedTo_SoonestDueFirst() {
	base := time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC)
	rows := []struct {
		title   string
		due     *time.Time
		created time.Time
	}{
		{"undated", nil, base.Add(4 * time.Hour)},
		{"late", ptr(base.AddDate(0, 0, 10)), base},
		{"soon-old", ptr(base.AddDate(0, 0, 2)), base.Add(time.Hour)},
		{"soon-new", ptr(base.AddDate(0, 0, 2)), base.Add(2 * time.Hour)},
	}
	for _, r := range rows {
		task := &models.Task{
			Title:        r.title,
			DueDate:      r.due,
			CreatedByID:  s.creator.ID,
			AssignedToID: s.assignee.ID,
			CreatedAt:    r.created,
		}
		s.Require().NoError(s.db.Omit("CreatedBy", "AssignedTo").Create(task).Error)
	}

	tasks, err := s.service.ListAssignedTo(s.ctx, s.assignee.ID, TaskFilter{})
	s.Require().NoError(err)
	s.Require().Len(tasks, 4)
	s.Equal("soon-new", tasks[0].Title)
	s.Equal("soon-old", tasks[1].Title)
	s.Equal("late", tasks[2].Title)
	s.Equal("undated", tasks[3].Title)
}

func (s *TaskServiceTestSuite) TestList_Filters() {
	day := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	createTask(s.T(), s.db, "morning", s.creator.ID, s.assignee.ID, ptr(day.Add(8*time.Hour)))
	createTask(s.T(), s.db, "night", s.creator.ID, s.assignee.ID, ptr(day.Add(23*time.Hour+59*time.Minute)))
	createTask(s.T(), s.db, "next day", s.creator.ID, s.assignee.ID, ptr(day.AddDate(0, 0, 1)))
	createTask(s.T(), s.db, "undated", s.creator.ID, s.assignee.ID, nil)

	tasks, err := s.service.ListCreatedBy(s.ctx, s.creator.ID, TaskFilter{DueDate: ptr(day.Add(12 * time.Hour))})
	s.Require().NoError(err)
	s.Len(tasks, 2)
	for _, task := range tasks {
		s.Contains([]string{"morning", "night"}, task.Title)
	}

	completed := createTask(s.T(), s.db, "done", s.creator.ID, s.assignee.ID, nil)
	s.Require().NoError(s.db.Model(completed).Update("status", models.TaskStatusCompleted).Error)

	tasks, err = s.service.ListAssignedTo(s.ctx, s.assignee.ID, TaskFilter{Status: ptr(models.TaskStatusCompleted)})
	s.Require().NoError(err)
	s.Require().Len(tasks, 1)
	s.Equal("done", tasks[0].Title)

	_, err = s.service.ListCreatedBy(s.ctx, s.creator.ID, TaskFilter{Status: ptr(models.TaskStatus("archivada"))})
	s.ErrorIs(err, ErrInvalidStatus)
}

func (s *TaskServiceTestSuite) TestListAll_AdminOnly() {
	createTask(s.T(), s.db, "a", s.creator.ID, s.assignee.ID, nil)
	createTask(s.T(), s.db, "b", s.stranger.ID, s.stranger.ID, nil)

	tasks, err := s.service.ListAll(s.ctx, s.admin, TaskFilter{})
	s.Require().NoError(err)
	s.Len(tasks, 2)

	_, err = s.service.ListAll(s.ctx, s.creator, TaskFilter{})
	s.ErrorIs(err, ErrAdminOnly)
}

func (s *TaskServiceTestSuite) TestList_EmptyIsNotNil() {
	tasks, err := s.service.ListAssignedTo(s.ctx, s.stranger.ID, TaskFilter{})
	s.Require().NoError(err)
	s.NotNil(tasks)
	s.Empty(tasks)
}

func (s *TaskServiceTestSuite) TestUpdateStatus_NotifiesCreator() {
	task := createTask(s.T(), s.db, "Informe", s.creator.ID, s.assignee.ID, nil)

	updated, err := s.service.UpdateStatus(s.ctx, task.ID, models.TaskStatusInProgress, s.assignee)
	s.Require().NoError(err)
	s.Equal(models.TaskStatusInProgress, updated.Status)
	s.Equal("assignee", updated.AssignedTo.Username)

	var notifications []models.Notification
	s.Require().NoError(s.db.Where("task_id = ?", task.ID).Find(&notifications).Error)
	s.Require().Len(notifications, 1)
	s.Equal(s.creator.ID, notifications[0].UserID)
	s.False(notifications[0].IsRead)
	s.Equal(`assignee cambió el estado de la tarea "Informe" a en_progreso`, notifications[0].Message)
}

func (s *TaskServiceTestSuite) TestUpdateStatus_SameStatusIsNoop() {
	task := createTask(s.T(), s.db, "Informe", s.creator.ID, s.assignee.ID, nil)

	for i := 0; i < 3; i++ {
		updated, err := s.service.UpdateStatus(s.ctx, task.ID, models.TaskStatusPending, s.assignee)
		s.Require().NoError(err)
		s.Equal(models.TaskStatusPending, updated.Status)
	}

	s.Zero(countNotifications(s.T(), s.db, task.ID))

	var stored models.Task
	s.Require().NoError(s.db.First(&stored, "id = ?", task.ID).Error)
	s.True(task.UpdatedAt.Equal(stored.UpdatedAt))
}

func (s *TaskServiceTestSuite) TestUpdateStatus_OnlyAssignee() {
	task := createTask(s.T(), s.db, "Informe", s.creator.ID, s.assignee.ID, nil)

	for _, actor := range []policy.Actor{s.creator, s.admin, s.stranger} {
		_, err := s.service.UpdateStatus(s.ctx, task.ID, models.TaskStatusCompleted, actor)
		s.ErrorIs(err, ErrCannotChangeStatus, actor.Username)
	}

	var stored models.Task
	s.Require().NoError(s.db.First(&stored, "id = ?", task.ID).Error)
	s.Equal(models.TaskStatusPending, stored.Status)
	s.Zero(countNotifications(s.T(), s.db, task.ID))
}

func (s *TaskServiceTestSuite) TestUpdateStatus_Errors() {
	_, err := s.service.UpdateStatus(s.ctx, uuid.New(), models.TaskStatusCompleted, s.assignee)
	s.ErrorIs(err, ErrTaskNotFound)

	task := createTask(s.T(), s.db, "Informe", s.creator.ID, s.assignee.ID, nil)
	_, err = s.service.UpdateStatus(s.ctx, task.ID, models.TaskStatus("archivada"), s.assignee)
	s.ErrorIs(err, ErrInvalidStatus)
}

func (s *TaskServiceTestSuite) TestUpdateStatus_Scenario() {
	task := createTask(s.T(), s.db, "Informe", s.creator.ID, s.assignee.ID, nil)

	_, err := s.service.UpdateStatus(s.ctx, task.ID, models.TaskStatusCompleted, s.assignee)
	s.Require().NoError(err)
	s.Equal(int64(1), countNotifications(s.T(), s.db, task.ID))

	_, err = s.service.UpdateStatus(s.ctx, task.ID, models.TaskStatusPending, s.creator)
	s.ErrorIs(err, ErrForbidden)

	tasks, err := s.service.ListAll(s.ctx, s.admin, TaskFilter{})
	s.Require().NoError(err)
	s.Require().Len(tasks, 1)
	s.Equal(models.TaskStatusCompleted, tasks[0].Status)
}

func (s *TaskServiceTestSuite) TestDeleteTask_CascadesAndForbids() {
	task := createTask(s.T(), s.db, "Informe", s.creator.ID, s.assignee.ID, nil)
	_, err := s.service.UpdateStatus(s.ctx, task.ID, models.TaskStatusInProgress, s.assignee)
	s.Require().NoError(err)
	_, err = NewCommentService(s.store).CreateComment(s.ctx, task.ID, "listo", s.assignee)
	s.Require().NoError(err)

	err = s.service.DeleteTask(s.ctx, task.ID, s.assignee)
	s.ErrorIs(err, ErrCannotDeleteTask)

	s.Require().NoError(s.service.DeleteTask(s.ctx, task.ID, s.creator))

	_, err = s.service.GetTask(s.ctx, task.ID, s.creator)
	s.ErrorIs(err, ErrTaskNotFound)

	var comments, notifications int64
	s.Require().NoError(s.db.Model(&models.Comment{}).Where("task_id = ?", task.ID).Count(&comments).Error)
	s.Require().NoError(s.db.Model(&models.Notification{}).Where("task_id = ?", task.ID).Count(&notifications).Error)
	s.Zero(comments)
	s.Zero(notifications)

	err = s.service.DeleteTask(s.ctx, task.ID, s.creator)
	s.ErrorIs(err, ErrTaskNotFound)
}

func (s *TaskServiceTestSuite) TestDeleteTask_Admin() {
	task := createTask(s.T(), s.db, "Informe", s.creator.ID, s.assignee.ID, nil)

	s.Require().NoError(s.service.DeleteTask(s.ctx, task.ID, s.admin))
	_, err := s.service.GetTask(s.ctx, task.ID, s.admin)
	s.True(errors.Is(err, ErrNotFound))
}

func (s *TaskServiceTestSuite) TestStatusChangeMessage_Truncated() {
	title := ""
	for i := 0; i < 300; i++ {
		title += "ñ"
	}

	msg := StatusChangeMessage("ana", title, models.TaskStatusCompleted)
	s.Equal(255, len([]rune(msg)))
}

// TestTaskServiceTestSuite runs the test suite
func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
