package featured

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/zhanxing-dev/featured-manager/backend/internal/domain"
)

func TestDistinctNamesKeepsCaseVariants(t *testing.T) {
	repo := NewMemoryRepository()
	mustCreate(t, repo, "Jane Doe", dayPtr(2025, time.January, 1), dayPtr(2025, time.January, 10))
	mustCreate(t, repo, "jane doe", dayPtr(2025, time.February, 1), dayPtr(2025, time.February, 10))
	mustCreate(t, repo, "Jane Doe", dayPtr(2025, time.March, 1), dayPtr(2025, time.March, 10))

	index := NewNameIndex(repo)
	names, err := index.DistinctNames()
	if err != nil {
		t.Fatalf("获取名称列表失败: %v", err)
	}

	// 去重大小写敏感，两种写法都保留，但重复写法只出现一次
	want := []string{"Jane Doe", "jane doe"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("期望 %v，实际 %v", want, names)
	}
}

func TestSuggestExcludesExactMatch(t *testing.T) {
	repo := NewMemoryRepository()
	mustCreate(t, repo, "Jane Doe", dayPtr(2025, time.January, 1), dayPtr(2025, time.January, 10))
	mustCreate(t, repo, "Jane Smith", dayPtr(2025, time.February, 1), dayPtr(2025, time.February, 10))

	index := NewNameIndex(repo)
	names, err := index.Suggest("jane doe")
	if err != nil {
		t.Fatalf("名称联想失败: %v", err)
	}

	// 操作员已经输入的名称不再提示，只提示其他包含 jane doe 的名称（这里没有）
	if len(names) != 0 {
		t.Fatalf("期望空结果，实际 %v", names)
	}

	names, err = index.Suggest("jane")
	if err != nil {
		t.Fatalf("名称联想失败: %v", err)
	}
	want := []string{"Jane Doe", "Jane Smith"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("期望 %v，实际 %v", want, names)
	}
}

func TestSuggestMatchesPinyin(t *testing.T) {
	repo := NewMemoryRepository()
	mustCreate(t, repo, "王敏", dayPtr(2025, time.January, 1), dayPtr(2025, time.January, 10))
	mustCreate(t, repo, "李芳", dayPtr(2025, time.February, 1), dayPtr(2025, time.February, 10))

	index := NewNameIndex(repo)
	names, err := index.Suggest("wangmin")
	if err != nil {
		t.Fatalf("名称联想失败: %v", err)
	}

	want := []string{"王敏"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("期望 %v，实际 %v", want, names)
	}
}

func TestPrefillReturnsOnlyDescriptiveFields(t *testing.T) {
	repo := NewMemoryRepository()
	slot := &domain.FeaturedSlot{
		Name:          "Jane Doe",
		Description:   "Reiki & Tarot",
		ImageRef:      "featured/jane.jpg",
		ContactNumber: "13800000000",
		SocialLinks:   domain.SocialLinks{Instagram: "https://instagram.com/janedoe"},
		StartDate:     dayPtr(2025, time.January, 1),
		EndDate:       dayPtr(2025, time.January, 10),
	}
	if err := repo.Create(slot); err != nil {
		t.Fatalf("创建档期失败: %v", err)
	}

	index := NewNameIndex(repo)
	fields, err := index.Prefill("jane doe")
	if err != nil {
		t.Fatalf("回填失败: %v", err)
	}

	want := &DescriptiveFields{
		Description:   "Reiki & Tarot",
		ImageRef:      "featured/jane.jpg",
		ContactNumber: "13800000000",
		SocialLinks:   domain.SocialLinks{Instagram: "https://instagram.com/janedoe"},
	}
	if !reflect.DeepEqual(fields, want) {
		t.Fatalf("期望 %+v，实际 %+v", want, fields)
	}
}

func TestPrefillPicksMostRecentlyCreated(t *testing.T) {
	repo := NewMemoryRepository()
	mustCreate(t, repo, "王敏", dayPtr(2025, time.January, 1), dayPtr(2025, time.January, 10))

	newer := &domain.FeaturedSlot{
		Name:        "王敏",
		Description: "最新的简介",
	}
	if err := repo.Create(newer); err != nil {
		t.Fatalf("创建档期失败: %v", err)
	}

	index := NewNameIndex(repo)
	fields, err := index.Prefill("王敏")
	if err != nil {
		t.Fatalf("回填失败: %v", err)
	}

	if fields.Description != "最新的简介" {
		t.Fatalf("期望回填最近创建的档期内容，实际 %q", fields.Description)
	}
}

func TestPrefillNotFound(t *testing.T) {
	repo := NewMemoryRepository()

	index := NewNameIndex(repo)
	if _, err := index.Prefill("不存在的名称"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("期望 ErrNotFound，实际 %v", err)
	}
}
