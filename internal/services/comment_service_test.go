package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/tareas/task-lifecycle-api/internal/models"
	"github.com/tareas/task-lifecycle-api/internal/policy"
	"gorm.io/gorm"
)

type CommentServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	db      *gorm.DB
	service *CommentService

	creator  policy.Actor
	assignee policy.Actor
	admin    policy.Actor
	stranger policy.Actor
	task     *models.Task
}

func (s *CommentServiceTestSuite) SetupTest() {
	s.ctx = context.Background()

	db, store := newTestStore(s.T())
	s.db = db
	s.service = NewCommentService(store)

	s.creator = createUser(s.T(), s.db, "creator", models.RoleUser)
	s.assignee = createUser(s.T(), s.db, "assignee", models.RoleUser)
	s.admin = createUser(s.T(), s.db, "admin", models.RoleAdmin)
	s.stranger = createUser(s.T(), s.db, "stranger", models.RoleUser)
	s.task = createTask(s.T(), s.db, "Informe", s.creator.ID, s.assignee.ID, nil)
}

func (s *CommentServiceTestSuite) TestCreateComment_Assignee() {
	comment, err := s.service.CreateComment(s.ctx, s.task.ID, "  en ello  ", s.assignee)
	s.Require().NoError(err)

	s.Equal("en ello", comment.Content)
	s.Equal(s.task.ID, comment.TaskID)
	s.Equal(s.assignee.ID, comment.UserID)
	s.Equal("assignee", comment.User.Username)
}

func (s *CommentServiceTestSuite) TestCreateComment_OnlyAssignee() {
	for _, actor := range []policy.Actor{s.creator, s.admin, s.stranger} {
		_, err := s.service.CreateComment(s.ctx, s.task.ID, "hola", actor)
		s.ErrorIs(err, ErrCannotComment, actor.Username)
	}

	var count int64
	s.Require().NoError(s.db.Model(&models.Comment{}).Count(&count).Error)
	s.Zero(count)
}

func (s *CommentServiceTestSuite) TestCreateComment_Validation() {
	_, err := s.service.CreateComment(s.ctx, s.task.ID, "   ", s.assignee)
	s.ErrorIs(err, ErrInvalidCommentContent)

	_, err = s.service.CreateComment(s.ctx, s.task.ID, strings.Repeat("a", 1001), s.assignee)
	s.ErrorIs(err, ErrInvalidCommentContent)

	_, err = s.service.CreateComment(s.ctx, s.task.ID, strings.Repeat("é", 1000), s.assignee)
	s.NoError(err)

	_, err = s.service.CreateComment(s.ctx, uuid.New(), "hola", s.assignee)
	s.ErrorIs(err, ErrTaskNotFound)
}

func (s *CommentServiceTestSuite) TestCreateComment_TaskCheckedBeforeContent() {
	_, err := s.service.CreateComment(s.ctx, uuid.New(), "", s.assignee)
	s.ErrorIs(err, ErrTaskNotFound)

	_, err = s.service.CreateComment(s.ctx, s.task.ID, "", s.creator)
	s.ErrorIs(err, ErrCannotComment)
}

func (s *CommentServiceTestSuite) TestListComments_OldestFirst() {
	base := time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC)
	for i, content := range []string{"uno", "dos", "tres"} {
		comment := &models.Comment{
			Content:   content,
			TaskID:    s.task.ID,
			UserID:    s.assignee.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		s.Require().NoError(s.db.Omit("Task", "User").Create(comment).Error)
	}

	for _, actor := range []policy.Actor{s.creator, s.assignee, s.admin} {
		comments, err := s.service.ListComments(s.ctx, s.task.ID, actor)
		s.Require().NoError(err, actor.Username)
		s.Require().Len(comments, 3)
		s.Equal("uno", comments[0].Content)
		s.Equal("dos", comments[1].Content)
		s.Equal("tres", comments[2].Content)
		s.Equal("assignee", comments[0].User.Username)
	}
}

func (s *CommentServiceTestSuite) TestListComments_Errors() {
	_, err := s.service.ListComments(s.ctx, s.task.ID, s.stranger)
	s.ErrorIs(err, ErrCannotViewComments)

	_, err = s.service.ListComments(s.ctx, uuid.New(), s.stranger)
	s.ErrorIs(err, ErrTaskNotFound)
}

func TestCommentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CommentServiceTestSuite))
}
