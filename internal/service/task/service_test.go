package task

import (
	"context"
	"errors"
	"testing"

	"github.com/ashwinyue/dataset-hub/internal/access"
	"github.com/ashwinyue/dataset-hub/internal/model"
	"github.com/ashwinyue/dataset-hub/internal/repository"
	"github.com/ashwinyue/dataset-hub/internal/service/types"
	"github.com/ashwinyue/dataset-hub/internal/testutil"
)

func newTestService(t *testing.T) (*Service, *repository.Repositories) {
	t.Helper()
	repos := testutil.NewTestRepos(t)
	policy := access.NewConfigPolicy(map[string]bool{access.PermissionWorkspaceDatasets: false})
	guard := access.NewGuard(policy, repos.User)
	return NewService(repos, guard), repos
}

func mustCreate(t *testing.T, svc *Service, caller *model.User, form *Form) *model.DatasetTask {
	t.Helper()
	task, err := svc.Create(context.Background(), caller, form)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	return task
}

func TestCreate_GeneratesServerSideID(t *testing.T) {
	svc, repos := newTestService(t)
	admin := testutil.SeedUser(t, repos, "admin", model.RoleAdmin)

	first := mustCreate(t, svc, admin, &Form{DatasetID: "d1", Instruction: "summarize"})
	second := mustCreate(t, svc, admin, &Form{DatasetID: "d1", Instruction: "translate"})

	if first.ID == "" || second.ID == "" {
		t.Fatal("server must assign task ids")
	}
	if first.ID == second.ID {
		t.Errorf("ids must be unique, got %s twice", first.ID)
	}
	if first.UserID != admin.ID {
		t.Errorf("UserID = %s, want %s", first.UserID, admin.ID)
	}
	if first.CreatedAt == 0 || first.CreatedAt != first.UpdatedAt {
		t.Errorf("timestamps: created=%d updated=%d, want equal and non-zero", first.CreatedAt, first.UpdatedAt)
	}
}

func TestCreate_DanglingDatasetAccepted(t *testing.T) {
	svc, repos := newTestService(t)
	admin := testutil.SeedUser(t, repos, "admin", model.RoleAdmin)

	// dataset_id 是软引用，指向不存在的数据集也能创建
	task := mustCreate(t, svc, admin, &Form{DatasetID: "no-such-dataset", Instruction: "summarize"})
	if task.DatasetID != "no-such-dataset" {
		t.Errorf("DatasetID = %s, want no-such-dataset", task.DatasetID)
	}
}

func TestCreate_RequiresPermission(t *testing.T) {
	svc, repos := newTestService(t)
	plain := testutil.SeedUser(t, repos, "plain", model.RoleUser)

	_, err := svc.Create(context.Background(), plain, &Form{Instruction: "summarize"})
	if !errors.Is(err, types.ErrUnauthorized) {
		t.Fatalf("Create() error = %v, want ErrUnauthorized", err)
	}
}

func TestGet_MasksInaccessibleRecords(t *testing.T) {
	svc, repos := newTestService(t)
	admin := testutil.SeedUser(t, repos, "admin", model.RoleAdmin)
	stranger := testutil.SeedUser(t, repos, "stranger", model.RoleUser)
	member := testutil.SeedUser(t, repos, "member", model.RoleUser)
	testutil.SeedGroup(t, repos, "g1", "member")

	task := mustCreate(t, svc, admin, &Form{
		Instruction:   "summarize",
		AccessControl: &model.AccessControl{Read: model.PermissionGrant{GroupIDs: []string{"g1"}}},
	})

	if _, err := svc.Get(context.Background(), member, task.ID); err != nil {
		t.Errorf("group read grant failed: %v", err)
	}

	_, errStranger := svc.Get(context.Background(), stranger, task.ID)
	_, errMissing := svc.Get(context.Background(), stranger, "no-such-id")
	if !errors.Is(errStranger, types.ErrNotFound) || !errors.Is(errMissing, types.ErrNotFound) {
		t.Errorf("inaccessible=%v missing=%v, want ErrNotFound for both", errStranger, errMissing)
	}
}

func TestListByDataset_NoRecordFiltering(t *testing.T) {
	svc, repos := newTestService(t)
	admin := testutil.SeedUser(t, repos, "admin", model.RoleAdmin)
	stranger := testutil.SeedUser(t, repos, "stranger", model.RoleUser)

	mustCreate(t, svc, admin, &Form{DatasetID: "d1", Instruction: "one"})
	mustCreate(t, svc, admin, &Form{DatasetID: "d1", Instruction: "two"})
	mustCreate(t, svc, admin, &Form{DatasetID: "d2", Instruction: "other"})

	// 按数据集列出不做记录级过滤，非属主也能看到全部匹配行
	tasks, err := svc.ListByDataset(context.Background(), stranger, "d1")
	if err != nil {
		t.Fatalf("ListByDataset() failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Errorf("got %d tasks, want 2", len(tasks))
	}
	for _, task := range tasks {
		if task.DatasetID != "d1" {
			t.Errorf("task %s belongs to %s, want d1", task.ID, task.DatasetID)
		}
	}

	// 全量列表仍然走过滤
	visible, err := svc.List(context.Background(), stranger)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(visible) != 0 {
		t.Errorf("stranger full listing = %d rows, want 0", len(visible))
	}
}

func TestUpdate_Authorization(t *testing.T) {
	svc, repos := newTestService(t)
	admin := testutil.SeedUser(t, repos, "admin", model.RoleAdmin)
	stranger := testutil.SeedUser(t, repos, "stranger", model.RoleUser)
	writer := testutil.SeedUser(t, repos, "writer", model.RoleUser)

	task := mustCreate(t, svc, admin, &Form{
		Instruction:   "before",
		AccessControl: &model.AccessControl{Write: model.PermissionGrant{UserIDs: []string{"writer"}}},
	})

	if _, err := svc.Update(context.Background(), stranger, task.ID, &Form{Instruction: "x"}); !errors.Is(err, types.ErrUnauthorized) {
		t.Errorf("stranger update error = %v, want ErrUnauthorized", err)
	}
	if _, err := svc.Update(context.Background(), admin, "missing", &Form{Instruction: "x"}); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("missing id update error = %v, want ErrNotFound", err)
	}

	updated, err := svc.Update(context.Background(), writer, task.ID, &Form{
		DatasetID:         task.DatasetID,
		Instruction:       "after",
		Input:             "in",
		Output:            "out",
		IsTrainingExample: true,
		AccessControl:     task.AccessControl,
	})
	if err != nil {
		t.Fatalf("acl write grant update failed: %v", err)
	}
	if updated.Instruction != "after" || updated.Input != "in" || !updated.IsTrainingExample {
		t.Errorf("body not replaced: %+v", updated)
	}
	if updated.ID != task.ID || updated.UserID != task.UserID || updated.CreatedAt != task.CreatedAt {
		t.Error("id, owner and creation time must never change on update")
	}
}

func TestDelete(t *testing.T) {
	svc, repos := newTestService(t)
	admin := testutil.SeedUser(t, repos, "admin", model.RoleAdmin)
	stranger := testutil.SeedUser(t, repos, "stranger", model.RoleUser)

	task := mustCreate(t, svc, admin, &Form{Instruction: "summarize"})

	if _, err := svc.Delete(context.Background(), stranger, task.ID); !errors.Is(err, types.ErrUnauthorized) {
		t.Errorf("stranger delete error = %v, want ErrUnauthorized", err)
	}

	deleted, err := svc.Delete(context.Background(), admin, task.ID)
	if err != nil || !deleted {
		t.Fatalf("admin delete = (%v, %v), want (true, nil)", deleted, err)
	}
	if _, err := svc.Delete(context.Background(), admin, task.ID); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("repeat delete error = %v, want ErrNotFound", err)
	}
}
