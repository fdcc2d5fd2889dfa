package featured

import (
	"errors"
	"testing"
	"time"
)

func liveCount(t *testing.T, repo Repository) int {
	t.Helper()
	slots, err := repo.GetAll()
	if err != nil {
		t.Fatalf("获取档期列表失败: %v", err)
	}
	cnt := 0
	for _, slot := range slots {
		if slot.IsLive {
			cnt++
		}
	}
	return cnt
}

func TestSetLiveExclusivity(t *testing.T) {
	repo := NewMemoryRepository()
	a := mustCreate(t, repo, "王敏", dayPtr(2025, time.January, 1), dayPtr(2025, time.January, 10))
	b := mustCreate(t, repo, "李芳", dayPtr(2025, time.January, 11), dayPtr(2025, time.January, 20))

	ctl := NewLiveSlotController(repo)

	if err := ctl.SetLive(a.ID); err != nil {
		t.Fatalf("上线 a 失败: %v", err)
	}
	if cnt := liveCount(t, repo); cnt != 1 {
		t.Fatalf("上线后应只有 1 个档期展示，实际 %d", cnt)
	}

	if err := ctl.SetLive(b.ID); err != nil {
		t.Fatalf("上线 b 失败: %v", err)
	}

	gotA, _ := repo.GetByID(a.ID)
	gotB, _ := repo.GetByID(b.ID)
	if gotA.IsLive || !gotB.IsLive {
		t.Fatalf("期望 a 下线 b 上线，实际 a=%v b=%v", gotA.IsLive, gotB.IsLive)
	}
	if cnt := liveCount(t, repo); cnt != 1 {
		t.Fatalf("切换后应只有 1 个档期展示，实际 %d", cnt)
	}
}

func TestSetLiveNotFoundLeavesStateUntouched(t *testing.T) {
	repo := NewMemoryRepository()
	a := mustCreate(t, repo, "王敏", dayPtr(2025, time.January, 1), dayPtr(2025, time.January, 10))

	ctl := NewLiveSlotController(repo)
	if err := ctl.SetLive(a.ID); err != nil {
		t.Fatalf("上线失败: %v", err)
	}

	if err := ctl.SetLive(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("期望 ErrNotFound，实际 %v", err)
	}

	gotA, _ := repo.GetByID(a.ID)
	if !gotA.IsLive {
		t.Fatal("上线失败时不应修改已有状态")
	}
}

func TestClearIdempotent(t *testing.T) {
	repo := NewMemoryRepository()
	a := mustCreate(t, repo, "王敏", dayPtr(2025, time.January, 1), dayPtr(2025, time.January, 10))

	ctl := NewLiveSlotController(repo)
	if err := ctl.SetLive(a.ID); err != nil {
		t.Fatalf("上线失败: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := ctl.Clear(); err != nil {
			t.Fatalf("第 %d 次下线失败: %v", i+1, err)
		}
		if cnt := liveCount(t, repo); cnt != 0 {
			t.Fatalf("下线后不应有展示中的档期，实际 %d", cnt)
		}
	}
}

func TestResolveForDateCoversWholeEndDay(t *testing.T) {
	repo := NewMemoryRepository()
	a := mustCreate(t, repo, "王敏", dayPtr(2025, time.January, 1), dayPtr(2025, time.January, 10))

	ctl := NewLiveSlotController(repo)

	// 结束日期当天的最后时刻仍在窗口内
	lateOnEndDay := time.Date(2025, time.January, 10, 23, 59, 59, 0, time.UTC)
	slot, err := ctl.ResolveForDate(lateOnEndDay)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if slot.ID != a.ID {
		t.Fatalf("期望解析到 %d，实际 %d", a.ID, slot.ID)
	}

	// 次日凌晨已经超出窗口
	if _, err := ctl.ResolveForDate(day(2025, time.January, 11)); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("期望 ErrNoMatch，实际 %v", err)
	}
}

func TestResolveForDateTieBreak(t *testing.T) {
	repo := NewMemoryRepository()
	// 三个档期都覆盖 1 月 15 日
	b := mustCreate(t, repo, "李芳", dayPtr(2025, time.January, 10), dayPtr(2025, time.January, 20))
	mustCreate(t, repo, "张静", dayPtr(2025, time.January, 12), dayPtr(2025, time.January, 18))
	mustCreate(t, repo, "刘丽", dayPtr(2025, time.January, 10), dayPtr(2025, time.January, 25))

	ctl := NewLiveSlotController(repo)
	slot, err := ctl.ResolveForDate(day(2025, time.January, 15))
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}

	// 开始日期最早的有两个，取 ID 较小的 b
	if slot.ID != b.ID {
		t.Fatalf("期望解析到 %d，实际 %d", b.ID, slot.ID)
	}
}

func TestResolveForDateSkipsUnschedulable(t *testing.T) {
	repo := NewMemoryRepository()
	mustCreate(t, repo, "王敏", dayPtr(2025, time.January, 1), nil)

	ctl := NewLiveSlotController(repo)
	if _, err := ctl.ResolveForDate(day(2025, time.January, 5)); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("期望 ErrNoMatch，实际 %v", err)
	}
}

func TestToggleOnNoCoverageLeavesStateUntouched(t *testing.T) {
	repo := NewMemoryRepository()
	mustCreate(t, repo, "王敏", dayPtr(2025, time.January, 1), dayPtr(2025, time.January, 10))
	mustCreate(t, repo, "李芳", dayPtr(2025, time.February, 1), dayPtr(2025, time.February, 10))

	ctl := NewLiveSlotController(repo)

	before, _ := repo.GetAll()
	if _, err := ctl.ToggleOn(day(2025, time.January, 25)); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("期望 ErrNoMatch，实际 %v", err)
	}
	after, _ := repo.GetAll()

	if len(before) != len(after) {
		t.Fatalf("档期数量不应变化")
	}
	for i := range before {
		if before[i].IsLive != after[i].IsLive || before[i].Version != after[i].Version {
			t.Fatalf("档期 %d 的状态不应变化", before[i].ID)
		}
	}
}

func TestToggleOnActivatesCoveringSlot(t *testing.T) {
	repo := NewMemoryRepository()
	a := mustCreate(t, repo, "王敏", dayPtr(2025, time.January, 1), dayPtr(2025, time.January, 10))

	ctl := NewLiveSlotController(repo)
	slot, err := ctl.ToggleOn(day(2025, time.January, 5))
	if err != nil {
		t.Fatalf("开启展示失败: %v", err)
	}

	if slot.ID != a.ID || !slot.IsLive {
		t.Fatalf("期望 %d 上线，实际 %+v", a.ID, slot)
	}
	if cnt := liveCount(t, repo); cnt != 1 {
		t.Fatalf("应只有 1 个档期展示，实际 %d", cnt)
	}
}
