package app

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appctx "github.com/jsamuelsen11/assignment-schedule-service/internal/app/context"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain/company"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain/schedule"
	"github.com/jsamuelsen11/assignment-schedule-service/mocks"
)

func TestNewScheduleService_Defaults(t *testing.T) {
	t.Parallel()

	svc := NewScheduleService(mocks.NewMockPlatformClient(t), nil, WithMaxWorkers(0), WithRecorder(nil))
	if svc.logger == nil {
		t.Fatal("logger = nil, want discard logger")
	}
	if svc.maxWorkers != defaultMaxWorkers {
		t.Errorf("maxWorkers = %d, want %d", svc.maxWorkers, defaultMaxWorkers)
	}
	if _, ok := svc.recorder.(nopRecorder); !ok {
		t.Errorf("recorder = %T, want nopRecorder", svc.recorder)
	}
}

func TestScheduleService_ListCompanies(t *testing.T) {
	t.Parallel()

	t.Run("returns companies", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPlatformClient(t)
		svc := NewScheduleService(client, discardLogger())

		want := []company.Company{{ID: 7, Name: "Acme GmbH", Country: "DE"}}
		client.EXPECT().ListCompanies(mock.Anything, projectID).Return(want, nil)

		got, err := svc.ListCompanies(context.Background(), projectID)
		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ListCompanies() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("rejects missing project id", func(t *testing.T) {
		t.Parallel()
		svc := NewScheduleService(mocks.NewMockPlatformClient(t), discardLogger())

		_, err := svc.ListCompanies(context.Background(), 0)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("propagates client error", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPlatformClient(t)
		svc := NewScheduleService(client, discardLogger())

		client.EXPECT().ListCompanies(mock.Anything, projectID).Return(nil, domain.ErrNotFound)

		_, err := svc.ListCompanies(context.Background(), projectID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestScheduleService_GetSchedule(t *testing.T) {
	t.Parallel()

	t.Run("loads selected levels and evaluates", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPlatformClient(t)
		svc := NewScheduleService(client, discardLogger())

		expectProject(client)
		client.EXPECT().GetRange(mock.Anything, ref(schedule.LevelProject, projectID)).
			Return(rng(t, "2024-01-01", "2024-12-31"), nil)
		client.EXPECT().GetRange(mock.Anything, ref(schedule.LevelSubProject, subProjectID)).
			Return(rng(t, "2024-02-01", "2024-03-01"), nil)

		key := schedule.Key{ProjectID: projectID, SubProjectID: subProjectID, CompanyID: companyID}
		got, err := svc.GetSchedule(context.Background(), key)
		require.NoError(t, err)

		assert.True(t, got.Hierarchy.Project.Equal(rng(t, "2024-01-01", "2024-12-31")))
		assert.True(t, got.Hierarchy.SubProject.Equal(rng(t, "2024-02-01", "2024-03-01")))
		assert.True(t, got.Hierarchy.Task.IsEmpty())
		assert.True(t, got.Evaluation.Result.OK())
		assert.True(t, got.Evaluation.Bulk[schedule.BulkTasks])
	})

	t.Run("stored violations are reported not rejected", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPlatformClient(t)
		svc := NewScheduleService(client, discardLogger())

		expectProject(client)
		client.EXPECT().GetRange(mock.Anything, ref(schedule.LevelProject, projectID)).
			Return(schedule.DateRange{}, nil)
		client.EXPECT().GetRange(mock.Anything, ref(schedule.LevelSubProject, subProjectID)).
			Return(rng(t, "2024-02-01", "2024-03-01"), nil)

		key := schedule.Key{ProjectID: projectID, SubProjectID: subProjectID, CompanyID: companyID}
		got, err := svc.GetSchedule(context.Background(), key)
		require.NoError(t, err)
		assert.Equal(t, schedule.MsgMissingParent, got.Evaluation.Result.Message(schedule.LevelSubProject))
	})

	t.Run("rejects malformed key", func(t *testing.T) {
		t.Parallel()
		svc := NewScheduleService(mocks.NewMockPlatformClient(t), discardLogger())

		_, err := svc.GetSchedule(context.Background(), schedule.Key{ProjectID: projectID})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "company_id")
	})

	t.Run("unknown project", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPlatformClient(t)
		svc := NewScheduleService(client, discardLogger())

		client.EXPECT().GetProject(mock.Anything, projectID).Return(nil, domain.ErrNotFound)
		client.EXPECT().GetRange(mock.Anything, mock.Anything).Return(schedule.DateRange{}, nil).Maybe()

		_, err := svc.GetSchedule(context.Background(), schedule.Key{ProjectID: projectID, CompanyID: companyID})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestScheduleService_EvaluateSchedule(t *testing.T) {
	t.Parallel()
	svc := NewScheduleService(mocks.NewMockPlatformClient(t), discardLogger())

	ev := svc.EvaluateSchedule(context.Background(), schedule.Hierarchy{
		Project:    rng(t, "2024-01-01", "2024-06-30"),
		SubProject: rng(t, "2024-07-01", "2024-08-01"),
	})

	assert.Equal(t, schedule.MsgContainment, ev.Result.Message(schedule.LevelSubProject))
	pc, ok := ev.Picker(schedule.LevelTask, schedule.BoundaryStart)
	require.True(t, ok)
	assert.False(t, pc.Disabled)
}

func TestScheduleService_SaveSchedule(t *testing.T) {
	t.Parallel()

	fullKey := schedule.Key{ProjectID: projectID, SubProjectID: subProjectID, TaskID: taskID, CompanyID: companyID}

	t.Run("rejects invalid levels without writing", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPlatformClient(t)
		rec := newFakeRecorder()
		svc := NewScheduleService(client, discardLogger(), WithRecorder(rec))

		h := schedule.Hierarchy{
			Project:    rng(t, "2024-01-01", "2024-06-30"),
			SubProject: rng(t, "2024-07-01", "2024-08-01"),
		}
		client.EXPECT().GetRange(mock.Anything, ref(schedule.LevelProject, projectID)).Return(h.Project, nil)
		_, err := svc.SaveSchedule(context.Background(), fullKey, h, []schedule.Level{schedule.LevelSubProject})

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		if diff := cmp.Diff(map[string]string{"sub_project": "out of parent range"}, verr.Fields); diff != "" {
			t.Errorf("Fields mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, []string{"sub-project/containment"}, rec.violations)
	})

	t.Run("checks saved levels against stored parents", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPlatformClient(t)
		rec := newFakeRecorder()
		svc := NewScheduleService(client, discardLogger(), WithRecorder(rec))

		stored := schedule.Hierarchy{
			Project:    rng(t, "2024-01-01", "2024-12-31"),
			SubProject: rng(t, "2024-02-01", "2024-03-01"),
		}
		client.EXPECT().GetRange(mock.Anything, ref(schedule.LevelProject, projectID)).Return(stored.Project, nil)
		client.EXPECT().GetRange(mock.Anything, ref(schedule.LevelSubProject, subProjectID)).Return(stored.SubProject, nil)

		// The body claims a sub-project window that would admit the task.
		h := schedule.Hierarchy{
			Project:    stored.Project,
			SubProject: rng(t, "2024-06-01", "2024-09-01"),
			Task:       rng(t, "2024-07-01", "2024-07-15"),
		}
		_, err := svc.SaveSchedule(context.Background(), fullKey, h, []schedule.Level{schedule.LevelTask})

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, map[string]string{"task": "out of parent range"}, verr.Fields)
		assert.Equal(t, []string{"task/containment"}, rec.violations)
		client.AssertNotCalled(t, "SaveRange", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("saves child inside stored parent despite stale body parent", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPlatformClient(t)
		svc := NewScheduleService(client, discardLogger())

		taskRef := ref(schedule.LevelTask, taskID)
		client.EXPECT().GetRange(mock.Anything, ref(schedule.LevelProject, projectID)).
			Return(rng(t, "2024-01-01", "2024-12-31"), nil)
		client.EXPECT().GetRange(mock.Anything, ref(schedule.LevelSubProject, subProjectID)).
			Return(rng(t, "2024-02-01", "2024-03-01"), nil)

		h := schedule.Hierarchy{
			SubProject: rng(t, "2025-01-01", "2025-01-31"),
			Task:       rng(t, "2024-02-10", "2024-02-20"),
		}
		client.EXPECT().GetRange(mock.Anything, taskRef).Return(schedule.DateRange{}, nil)
		client.EXPECT().SaveRange(mock.Anything, taskRef, h.Task).Return(nil)

		got, err := svc.SaveSchedule(context.Background(), fullKey, h, []schedule.Level{schedule.LevelTask})
		require.NoError(t, err)
		assert.Equal(t, rng(t, "2024-02-01", "2024-03-01"), got.Hierarchy.SubProject)
	})

	t.Run("ignores violations of levels not being saved", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPlatformClient(t)
		svc := NewScheduleService(client, discardLogger())

		h := schedule.Hierarchy{
			Project: rng(t, "2024-01-01", "2024-12-31"),
			Task:    rng(t, "2024-02-01", "2024-02-10"),
		}
		projectRef := ref(schedule.LevelProject, projectID)
		client.EXPECT().GetRange(mock.Anything, projectRef).Return(schedule.DateRange{}, nil)
		client.EXPECT().SaveRange(mock.Anything, projectRef, h.Project).Return(nil)

		_, err := svc.SaveSchedule(context.Background(), fullKey, h, []schedule.Level{schedule.LevelProject})
		require.NoError(t, err)
	})

	t.Run("writes parent first", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPlatformClient(t)
		svc := NewScheduleService(client, discardLogger())

		h := schedule.Hierarchy{
			Project:    rng(t, "2024-01-01", "2024-12-31"),
			SubProject: rng(t, "2024-02-01", "2024-03-01"),
			Task:       rng(t, "", "2024-02-15"),
		}

		var order []schedule.Level
		for _, l := range schedule.Levels() {
			r, _ := fullKey.Ref(l)
			client.EXPECT().GetRange(mock.Anything, r).Return(schedule.DateRange{}, nil)
			client.EXPECT().SaveRange(mock.Anything, r, h.Range(l)).
				Run(func(_ context.Context, r schedule.Ref, _ schedule.DateRange) { order = append(order, r.Level) }).
				Return(nil)
		}

		// Levels given child first still run parent first.
		got, err := svc.SaveSchedule(context.Background(), fullKey, h,
			[]schedule.Level{schedule.LevelTask, schedule.LevelProject, schedule.LevelSubProject})
		require.NoError(t, err)

		if diff := cmp.Diff(schedule.Levels(), order); diff != "" {
			t.Errorf("write order mismatch (-want +got):\n%s", diff)
		}
		assert.True(t, got.Evaluation.Result.OK())
	})

	t.Run("skips levels whose stored range is unchanged", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPlatformClient(t)
		svc := NewScheduleService(client, discardLogger())

		h := schedule.Hierarchy{
			Project:    rng(t, "2024-01-01", "2024-12-31"),
			SubProject: rng(t, "2024-02-01", "2024-03-01"),
		}
		key := schedule.Key{ProjectID: projectID, SubProjectID: subProjectID, CompanyID: companyID}
		subRef := ref(schedule.LevelSubProject, subProjectID)
		client.EXPECT().GetRange(mock.Anything, ref(schedule.LevelProject, projectID)).
			Return(rng(t, "2024-01-01", "2024-12-31"), nil)
		client.EXPECT().GetRange(mock.Anything, subRef).Return(schedule.DateRange{}, nil)
		client.EXPECT().SaveRange(mock.Anything, subRef, h.SubProject).Return(nil).Once()

		_, err := svc.SaveSchedule(context.Background(), key, h, nil)
		require.NoError(t, err)
		client.AssertNotCalled(t, "SaveRange", mock.Anything, ref(schedule.LevelProject, projectID), mock.Anything)
	})

	t.Run("failed write restores earlier levels", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPlatformClient(t)
		svc := NewScheduleService(client, discardLogger())

		prev := schedule.Hierarchy{
			Project:    rng(t, "2023-01-01", "2023-12-31"),
			SubProject: rng(t, "2023-02-01", "2023-03-01"),
		}
		next := schedule.Hierarchy{
			Project:    rng(t, "2024-01-01", "2024-12-31"),
			SubProject: rng(t, "2024-02-01", "2024-03-01"),
			Task:       rng(t, "2024-02-10", "2024-02-20"),
		}

		for _, l := range schedule.Levels() {
			r, _ := fullKey.Ref(l)
			client.EXPECT().GetRange(mock.Anything, r).Return(prev.Range(l), nil)
		}
		client.EXPECT().SaveRange(mock.Anything, ref(schedule.LevelProject, projectID), next.Project).Return(nil).Once()
		client.EXPECT().SaveRange(mock.Anything, ref(schedule.LevelSubProject, subProjectID), next.SubProject).Return(nil).Once()
		client.EXPECT().SaveRange(mock.Anything, ref(schedule.LevelTask, taskID), next.Task).Return(domain.ErrUnavailable).Once()
		client.EXPECT().SaveRange(mock.Anything, ref(schedule.LevelSubProject, subProjectID), prev.SubProject).Return(nil).Once()
		client.EXPECT().SaveRange(mock.Anything, ref(schedule.LevelProject, projectID), prev.Project).Return(nil).Once()

		_, err := svc.SaveSchedule(context.Background(), fullKey, next, nil)
		assert.ErrorIs(t, err, domain.ErrUnavailable)
	})

	t.Run("uses the request context from ctx", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPlatformClient(t)
		svc := NewScheduleService(client, discardLogger())

		key := schedule.Key{ProjectID: projectID, CompanyID: companyID}
		h := schedule.Hierarchy{Project: rng(t, "2024-01-01", "2024-12-31")}
		projectRef := ref(schedule.LevelProject, projectID)

		rc := appctx.New(context.Background())
		_, _ = appctx.GetOrFetch(rc, rangeCacheKey(projectRef), func(context.Context) (schedule.DateRange, error) {
			return rng(t, "2020-01-01", "2020-12-31"), nil
		})
		client.EXPECT().SaveRange(mock.Anything, projectRef, h.Project).Return(nil)

		_, err := svc.SaveSchedule(appctx.WithRequestContext(context.Background(), rc), key, h, nil)
		require.NoError(t, err)
		client.AssertNotCalled(t, "GetRange", mock.Anything, mock.Anything)
	})

	t.Run("rejects level not selected by key", func(t *testing.T) {
		t.Parallel()
		svc := NewScheduleService(mocks.NewMockPlatformClient(t), discardLogger())

		key := schedule.Key{ProjectID: projectID, CompanyID: companyID}
		_, err := svc.SaveSchedule(context.Background(), key, schedule.Hierarchy{}, []schedule.Level{schedule.LevelTask})

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "levels")
	})

	t.Run("read failure aborts before writing", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPlatformClient(t)
		svc := NewScheduleService(client, discardLogger())

		key := schedule.Key{ProjectID: projectID, CompanyID: companyID}
		client.EXPECT().GetRange(mock.Anything, ref(schedule.LevelProject, projectID)).
			Return(schedule.DateRange{}, errors.New("connection reset"))

		_, err := svc.SaveSchedule(context.Background(), key,
			schedule.Hierarchy{Project: rng(t, "2024-01-01", "2024-12-31")}, nil)
		require.Error(t, err)
		client.AssertNotCalled(t, "SaveRange", mock.Anything, mock.Anything, mock.Anything)
	})
}
