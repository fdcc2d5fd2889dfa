package featured

import (
	"testing"
	"time"

	"github.com/zhanxing-dev/featured-manager/backend/internal/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(year int, month time.Month, d int) *time.Time {
	t := day(year, month, d)
	return &t
}

func mustCreate(t *testing.T, repo Repository, name string, start, end *time.Time) *domain.FeaturedSlot {
	t.Helper()
	slot := &domain.FeaturedSlot{
		Name:        name,
		Description: name + "的简介",
		StartDate:   start,
		EndDate:     end,
	}
	if err := repo.Create(slot); err != nil {
		t.Fatalf("创建档期失败: %v", err)
	}
	return slot
}

func TestFindOverlapsBoundaryInclusive(t *testing.T) {
	repo := NewMemoryRepository()
	a := mustCreate(t, repo, "王敏", dayPtr(2025, time.January, 1), dayPtr(2025, time.January, 10))
	b := mustCreate(t, repo, "李芳", dayPtr(2025, time.January, 11), dayPtr(2025, time.January, 20))

	checker := NewOverlapChecker(repo)
	overlaps, err := checker.FindOverlaps(day(2025, time.January, 9), day(2025, time.January, 12), 0)
	if err != nil {
		t.Fatalf("检测冲突失败: %v", err)
	}

	if len(overlaps) != 2 {
		t.Fatalf("期望 2 个冲突，实际 %d 个", len(overlaps))
	}
	if overlaps[0].ID != a.ID || overlaps[1].ID != b.ID {
		t.Fatalf("冲突档期不对: %+v", overlaps)
	}
}

func TestFindOverlapsDisjoint(t *testing.T) {
	repo := NewMemoryRepository()
	mustCreate(t, repo, "王敏", dayPtr(2025, time.January, 1), dayPtr(2025, time.January, 5))
	mustCreate(t, repo, "李芳", dayPtr(2025, time.January, 10), dayPtr(2025, time.January, 15))

	checker := NewOverlapChecker(repo)
	overlaps, err := checker.FindOverlaps(day(2025, time.January, 6), day(2025, time.January, 9), 0)
	if err != nil {
		t.Fatalf("检测冲突失败: %v", err)
	}

	if len(overlaps) != 0 {
		t.Fatalf("期望空结果，实际 %+v", overlaps)
	}
}

func TestFindOverlapsTouchingEndpointCounts(t *testing.T) {
	repo := NewMemoryRepository()
	a := mustCreate(t, repo, "王敏", dayPtr(2025, time.March, 1), dayPtr(2025, time.March, 10))

	checker := NewOverlapChecker(repo)
	// 候选窗口从 a 的结束当天开始，端点相接也要上报
	overlaps, err := checker.FindOverlaps(day(2025, time.March, 10), day(2025, time.March, 20), 0)
	if err != nil {
		t.Fatalf("检测冲突失败: %v", err)
	}

	if len(overlaps) != 1 || overlaps[0].ID != a.ID {
		t.Fatalf("期望上报端点相接的档期，实际 %+v", overlaps)
	}
}

func TestFindOverlapsExcludeID(t *testing.T) {
	repo := NewMemoryRepository()
	a := mustCreate(t, repo, "王敏", dayPtr(2025, time.January, 1), dayPtr(2025, time.January, 10))

	checker := NewOverlapChecker(repo)
	overlaps, err := checker.FindOverlaps(day(2025, time.January, 1), day(2025, time.January, 10), a.ID)
	if err != nil {
		t.Fatalf("检测冲突失败: %v", err)
	}

	if len(overlaps) != 0 {
		t.Fatalf("编辑时不应和自己冲突，实际 %+v", overlaps)
	}
}

func TestFindOverlapsSkipsUnschedulable(t *testing.T) {
	repo := NewMemoryRepository()
	mustCreate(t, repo, "王敏", dayPtr(2025, time.January, 1), nil)
	mustCreate(t, repo, "李芳", nil, nil)

	checker := NewOverlapChecker(repo)
	overlaps, err := checker.FindOverlaps(day(2025, time.January, 1), day(2025, time.January, 31), 0)
	if err != nil {
		t.Fatalf("检测冲突失败: %v", err)
	}

	if len(overlaps) != 0 {
		t.Fatalf("缺少日期的档期不应参与检测，实际 %+v", overlaps)
	}
}
