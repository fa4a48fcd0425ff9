package roomtype

import (
	"context"
	"errors"
	"testing"

	"dormdesk/internal/cache"
	"dormdesk/internal/domain/room"
	"dormdesk/internal/domain/roomtype"
	"dormdesk/internal/services"
	"dormdesk/internal/store/repositories"
	"dormdesk/pkg/crud"
)

type fakeTypeRepo struct {
	byID   map[int64]*roomtype.RoomType
	nextID int64
}

func newFakeTypeRepo() *fakeTypeRepo {
	return &fakeTypeRepo{byID: make(map[int64]*roomtype.RoomType), nextID: 1}
}

func (r *fakeTypeRepo) Save(ctx context.Context, t *roomtype.RoomType) error {
	if t.ID == 0 {
		t.ID = r.nextID
		r.nextID++
	}
	r.byID[t.ID] = t
	return nil
}

func (r *fakeTypeRepo) FindByID(ctx context.Context, id int64) (*roomtype.RoomType, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return t, nil
}

func (r *fakeTypeRepo) List(ctx context.Context, limit, offset int) ([]*roomtype.RoomType, int, error) {
	all, _ := r.FindAll(ctx)
	if offset > len(all) {
		offset = len(all)
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], len(all), nil
}

func (r *fakeTypeRepo) FindAll(ctx context.Context) ([]*roomtype.RoomType, error) {
	out := make([]*roomtype.RoomType, 0, len(r.byID))
	for id := int64(1); id < r.nextID; id++ {
		if t, ok := r.byID[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTypeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeRoomRepo struct {
	countByType map[int64]int
}

func (r *fakeRoomRepo) Save(ctx context.Context, rm *room.Room) error { return nil }
func (r *fakeRoomRepo) FindByID(ctx context.Context, id int64) (*room.Room, error) {
	return nil, repositories.ErrNotFound
}
func (r *fakeRoomRepo) List(ctx context.Context, limit, offset int) ([]*room.Room, int, error) {
	return nil, 0, nil
}
func (r *fakeRoomRepo) FindAll(ctx context.Context) ([]*room.Room, error) { return nil, nil }
func (r *fakeRoomRepo) Delete(ctx context.Context, id int64) error        { return nil }
func (r *fakeRoomRepo) CountByRoomType(ctx context.Context, roomTypeID int64) (int, error) {
	return r.countByType[roomTypeID], nil
}

func newTestService() (*Service, *fakeTypeRepo, *fakeRoomRepo) {
	types := newFakeTypeRepo()
	rooms := &fakeRoomRepo{countByType: make(map[int64]int)}
	return NewService(types, rooms, cache.Noop{}), types, rooms
}

func TestCreateRoomType(t *testing.T) {
	svc, types, _ := newTestService()

	created, err := svc.Create(context.Background(), Request{
		Name:        "Double",
		Capacity:    2,
		MonthlyRate: 450000,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned ID")
	}
	if len(types.byID) != 1 {
		t.Fatalf("expected 1 stored record, got %d", len(types.byID))
	}
}

func TestCreateRoomTypeValidation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	cases := []struct {
		name  string
		req   Request
		field string
	}{
		{"missing name", Request{Capacity: 2, MonthlyRate: 100}, "name"},
		{"zero capacity", Request{Name: "Single", MonthlyRate: 100}, "capacity"},
		{"capacity over max", Request{Name: "Dorm", Capacity: 11, MonthlyRate: 100}, "capacity"},
		{"zero rate", Request{Name: "Single", Capacity: 1}, "monthlyRate"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.Create(ctx, c.req)
			var ve *services.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *services.ValidationError, got %v", err)
			}
			if ve.Field != c.field {
				t.Fatalf("expected field %q, got %q", c.field, ve.Field)
			}
		})
	}
}

func TestUpdateRoomType(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, Request{Name: "Single", Capacity: 1, MonthlyRate: 300000})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, Request{Name: "Deluxe", Capacity: 1, MonthlyRate: 350000})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Deluxe" || updated.MonthlyRate != 350000 {
		t.Fatalf("unexpected record: %+v", updated)
	}

	_, err = svc.Update(ctx, 999, Request{Name: "Ghost", Capacity: 1, MonthlyRate: 100})
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteRoomTypeInUse(t *testing.T) {
	svc, types, rooms := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, Request{Name: "Single", Capacity: 1, MonthlyRate: 300000})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	rooms.countByType[created.ID] = 3

	err = svc.Delete(ctx, created.ID)
	var ve *services.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *services.ValidationError, got %v", err)
	}
	if _, ok := types.byID[created.ID]; !ok {
		t.Fatal("expected record to survive refused delete")
	}

	rooms.countByType[created.ID] = 0
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := types.byID[created.ID]; ok {
		t.Fatal("expected record removed")
	}
}

func TestListRoomTypesPagination(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		_, err := svc.Create(ctx, Request{Name: "Type", Capacity: 1, MonthlyRate: 100})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	page, err := svc.List(ctx, crud.ListParams{Page: 2, Size: 5})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Total != 12 || page.Pages != 3 {
		t.Fatalf("unexpected meta: total %d pages %d", page.Total, page.Pages)
	}
	if len(page.Items) != 5 {
		t.Fatalf("expected 5 items on page 2, got %d", len(page.Items))
	}
	if page.Items[0].ID != 6 {
		t.Fatalf("expected page 2 to start at ID 6, got %d", page.Items[0].ID)
	}
}
