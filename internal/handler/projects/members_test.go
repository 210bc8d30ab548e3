package projects

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"project-hub/internal/database"
	"project-hub/internal/model"
	"project-hub/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newMemberCtx(e *echo.Echo, method, projectID, userID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/v1/projects/"+projectID+"/users/"+userID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/projects/:project_id/users/:user_id")
	c.SetParamNames("project_id", "user_id")
	c.SetParamValues(projectID, userID)
	return c, rec
}

func TestAddMemberHandler(t *testing.T) {
	e := newEcho()

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restore)
		addMember = func(_ context.Context, _ database.DB, projectID, userID int) error {
			require.Equal(t, 2, projectID)
			require.Equal(t, 7, userID)
			return nil
		}
		ctx, rec := newMemberCtx(e, http.MethodPost, "2", "7")
		require.NoError(t, AddMemberHandler(nil)(ctx))
		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("duplicate membership conflicts", func(t *testing.T) {
		t.Cleanup(restore)
		addMember = func(context.Context, database.DB, int, int) error {
			return &service.ConflictError{Message: "user '7' is already a member of project '2'"}
		}
		ctx, _ := newMemberCtx(e, http.MethodPost, "2", "7")
		err := AddMemberHandler(nil)(ctx)
		var conflict *service.ConflictError
		require.ErrorAs(t, err, &conflict)
	})

	t.Run("missing user", func(t *testing.T) {
		t.Cleanup(restore)
		addMember = func(context.Context, database.DB, int, int) error {
			return service.NewNotFound("user", 999)
		}
		ctx, _ := newMemberCtx(e, http.MethodPost, "2", "999")
		err := AddMemberHandler(nil)(ctx)
		var notFound *service.NotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("invalid user id", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, _ := newMemberCtx(e, http.MethodPost, "2", "abc")
		err := AddMemberHandler(nil)(ctx)
		var ve *service.ValidationError
		require.ErrorAs(t, err, &ve)
		require.Equal(t, "user_id", ve.Details[0].Field)
	})
}

func TestRemoveMemberHandler(t *testing.T) {
	e := newEcho()

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restore)
		removeMember = func(_ context.Context, _ database.DB, projectID, userID int) error {
			require.Equal(t, 2, projectID)
			require.Equal(t, 7, userID)
			return nil
		}
		ctx, rec := newMemberCtx(e, http.MethodDelete, "2", "7")
		require.NoError(t, RemoveMemberHandler(nil)(ctx))
		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("not a member", func(t *testing.T) {
		t.Cleanup(restore)
		removeMember = func(context.Context, database.DB, int, int) error {
			return &service.NotFoundError{Resource: "membership", Message: "user '7' is not a member of project '2'"}
		}
		ctx, _ := newMemberCtx(e, http.MethodDelete, "2", "7")
		err := RemoveMemberHandler(nil)(ctx)
		var notFound *service.NotFoundError
		require.ErrorAs(t, err, &notFound)
	})
}

func TestListMembersHandler(t *testing.T) {
	e := newEcho()

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restore)
		listProjectUsers = func(_ context.Context, _ database.DB, projectID int) ([]model.User, error) {
			require.Equal(t, 2, projectID)
			return []model.User{{ID: 7, Name: "Alice", Email: "alice@example.com"}}, nil
		}
		ctx, rec := newParamCtx(e, http.MethodGet, "2", "")
		require.NoError(t, ListMembersHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "alice@example.com")
	})

	t.Run("empty list is an array", func(t *testing.T) {
		t.Cleanup(restore)
		listProjectUsers = func(context.Context, database.DB, int) ([]model.User, error) {
			return []model.User{}, nil
		}
		ctx, rec := newParamCtx(e, http.MethodGet, "2", "")
		require.NoError(t, ListMembersHandler(nil)(ctx))
		require.Equal(t, "[]\n", rec.Body.String())
	})

	t.Run("missing project", func(t *testing.T) {
		t.Cleanup(restore)
		listProjectUsers = func(context.Context, database.DB, int) ([]model.User, error) {
			return nil, service.NewNotFound("project", 999)
		}
		ctx, _ := newParamCtx(e, http.MethodGet, "999", "")
		require.Error(t, ListMembersHandler(nil)(ctx))
	})
}

func TestListUserProjectsHandler(t *testing.T) {
	e := newEcho()

	newUserCtx := func(val string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, "/v1/projects/user/"+val+"/projects", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/v1/projects/user/:user_id/projects")
		c.SetParamNames("user_id")
		c.SetParamValues(val)
		return c, rec
	}

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restore)
		listUserProjects = func(_ context.Context, _ database.DB, userID int) ([]model.Project, error) {
			require.Equal(t, 7, userID)
			return []model.Project{{ID: 2, Name: "Apollo"}}, nil
		}
		ctx, rec := newUserCtx("7")
		require.NoError(t, ListUserProjectsHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Apollo")
	})

	t.Run("missing user", func(t *testing.T) {
		t.Cleanup(restore)
		listUserProjects = func(context.Context, database.DB, int) ([]model.Project, error) {
			return nil, service.NewNotFound("user", 999)
		}
		ctx, _ := newUserCtx("999")
		require.Error(t, ListUserProjectsHandler(nil)(ctx))
	})
}
